package directive

import (
	"fmt"
	"go/ast"
	"go/token"
	"path/filepath"
	"sort"
	"strings"

	"labelgen/internal/diagnostic"
	"labelgen/internal/match"
)

const (
	// Prefix starts every labelgen directive comment.
	Prefix = "//labelgen:"
	// Command is the only directive labelgen understands.
	Command = "generate_labels"

	argFile = "file"
)

// Directive is a labelgen comment found in a Go file.
type Directive struct {
	// Text is the comment after Prefix, e.g. `generate_labels(file = "a.toml")`.
	Text string
	// Pos is the position of the comment.
	Pos token.Pos
	// Decl is the declaration the comment documents, nil for a stray comment.
	Decl ast.Decl
	// Spec is the type or value spec the comment documents, if there is
	// exactly one.
	Spec ast.Spec
}

// Find returns every directive in file in source order. Directives that do
// not document a declaration are returned with a nil Decl.
func Find(file *ast.File) []Directive {
	var found []Directive

	seen := make(map[*ast.CommentGroup]bool)
	collect := func(cg *ast.CommentGroup, decl ast.Decl, spec ast.Spec) {
		if cg == nil || seen[cg] {
			return
		}

		seen[cg] = true

		for _, c := range cg.List {
			text, ok := strings.CutPrefix(c.Text, Prefix)
			if !ok {
				continue
			}

			found = append(found, Directive{
				Text: strings.TrimSpace(text),
				Pos:  c.Slash,
				Decl: decl,
				Spec: spec,
			})
		}
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			collect(d.Doc, d, soleSpec(d))

			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					collect(s.Doc, d, s)
				case *ast.ValueSpec:
					collect(s.Doc, d, s)
				}
			}
		case *ast.FuncDecl:
			collect(d.Doc, d, nil)
		}
	}

	for _, cg := range file.Comments {
		collect(cg, nil, nil)
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Pos < found[j].Pos
	})

	return found
}

// soleSpec returns the only spec of d, or nil for grouped declarations.
func soleSpec(d *ast.GenDecl) ast.Spec {
	if len(d.Specs) != 1 {
		return nil
	}

	return d.Specs[0]
}

// TypeSpec returns the type spec the directive documents, if any.
func (d Directive) TypeSpec() (*ast.TypeSpec, bool) {
	ts, ok := d.Spec.(*ast.TypeSpec)
	return ts, ok
}

// Arguments returns the raw argument text between the parentheses of
// generate_labels(...).
func (d Directive) Arguments() (string, error) {
	rest, ok := strings.CutPrefix(d.Text, Command)
	rest = strings.TrimSpace(rest)

	if !ok || !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return "", fmt.Errorf("unknown directive %q, want %s(...): %w", d.Text, Command, diagnostic.ErrArgumentFormat)
	}

	return rest[1 : len(rest)-1], nil
}

// ParseArgs extracts the mapping file path from the argument list of
// generate_labels. Exactly one `file = "path"` pair is accepted; quotes and
// commas inside the path cannot be escaped.
func ParseArgs(raw string) (string, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 1 {
		return "", fmt.Errorf("got %d arguments: %w", len(parts), diagnostic.ErrArgumentFormat)
	}

	arg := strings.TrimSpace(parts[0])

	key, value, ok := strings.Cut(arg, "=")
	if key = strings.TrimSpace(key); !ok || key != argFile {
		if hint, found := match.Closest(key, []string{argFile}); ok && found {
			return "", fmt.Errorf("invalid argument %q, did you mean %s: %w", arg, hint, diagnostic.ErrArgumentFormat)
		}

		return "", fmt.Errorf("invalid argument %q: %w", arg, diagnostic.ErrArgumentFormat)
	}

	return strings.Trim(strings.TrimSpace(value), `"`), nil
}

// MappingPath parses the directive and returns the mapping file path.
// Relative paths are resolved against the directory of the file holding the
// directive.
func (d Directive) MappingPath(fset *token.FileSet) (string, error) {
	args, err := d.Arguments()
	if err != nil {
		return "", err
	}

	path, err := ParseArgs(args)
	if err != nil {
		return "", err
	}

	if path == "" || filepath.IsAbs(path) {
		return path, nil
	}

	return filepath.Join(filepath.Dir(fset.Position(d.Pos).Filename), path), nil
}
