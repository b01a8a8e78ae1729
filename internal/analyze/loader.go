package analyze

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"labelgen/internal/diagnostic"
	"labelgen/internal/directive"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// GeneratedHeader marks files written by labelgen.
const GeneratedHeader = "// Code generated by labelgen. DO NOT EDIT."

// Loader loads the package in a directory and resolves its directives.
type Loader struct {
	// BuildFlags are passed to the go command, e.g. -tags.
	BuildFlags []string
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load loads the package in dir. Type errors do not fail the load: a package
// using labels usually references constants that are only declared once
// labelgen has run.
func (l *Loader) Load(ctx context.Context, dir string) (*Package, error) {
	cfg := &packages.Config{
		Context:    ctx,
		Mode:       LoadMode,
		Dir:        dir,
		BuildFlags: l.BuildFlags,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", diagnostic.ErrPackageLoad, dir, err)
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("%w %s: found %d packages, want 1", diagnostic.ErrPackageLoad, dir, len(pkgs))
	}

	pkg := pkgs[0]
	if len(pkg.Syntax) == 0 || pkg.Types == nil {
		return nil, fmt.Errorf("%w %s: %v", diagnostic.ErrPackageLoad, dir, pkg.Errors)
	}

	res := &Package{
		Name:     pkg.Name,
		Path:     pkg.PkgPath,
		Dir:      dir,
		Fset:     pkg.Fset,
		Declared: make(map[string]token.Position),
		Methods:  make(map[string]map[string]token.Position),
	}

	for _, e := range pkg.Errors {
		res.TypeErrors = append(res.TypeErrors, e)
	}

	if len(pkg.GoFiles) > 0 {
		res.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	generated := make(map[string]bool)

	for _, file := range pkg.Syntax {
		if IsGenerated(file) {
			generated[pkg.Fset.File(file.Pos()).Name()] = true
			continue
		}

		for _, d := range directive.Find(file) {
			res.Targets = append(res.Targets, resolveTarget(pkg, d))
		}
	}

	collectDeclared(pkg, res, generated)

	return res, nil
}

// IsGenerated reports whether file was written by labelgen.
func IsGenerated(file *ast.File) bool {
	for _, cg := range file.Comments {
		if cg.Pos() > file.Package {
			break
		}

		for _, c := range cg.List {
			if c.Text == GeneratedHeader {
				return true
			}
		}
	}

	return false
}

// collectDeclared records package-level names and the methods of every
// target type, skipping declarations from generated files.
func collectDeclared(pkg *packages.Package, res *Package, generated map[string]bool) {
	inGenerated := func(pos token.Pos) bool {
		f := pkg.Fset.File(pos)
		return f != nil && generated[f.Name()]
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if inGenerated(obj.Pos()) {
			continue
		}

		res.Declared[name] = pkg.Fset.Position(obj.Pos())
	}

	for _, t := range res.Targets {
		if t.Err != nil {
			continue
		}

		tn, ok := scope.Lookup(t.ID.Name).(*types.TypeName)
		if !ok {
			continue
		}

		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}

		methods := make(map[string]token.Position)

		for i := range named.NumMethods() {
			m := named.Method(i)
			if inGenerated(m.Pos()) {
				continue
			}

			methods[m.Name()] = pkg.Fset.Position(m.Pos())
		}

		res.Methods[t.ID.Name] = methods
	}
}

// resolveTarget checks that d documents a defined type whose underlying type
// is uint32.
func resolveTarget(pkg *packages.Package, d directive.Directive) *Target {
	t := &Target{
		Directive: d,
		Pos:       pkg.Fset.Position(d.Pos),
	}

	fail := func(format string, args ...any) *Target {
		t.Err = diagnostic.Errorf(t.Pos, "%w: "+format, append([]any{diagnostic.ErrTargetKind}, args...)...)
		return t
	}

	switch decl := d.Decl.(type) {
	case nil:
		return fail("directive does not document a declaration")
	case *ast.FuncDecl:
		return fail("%s is a function", decl.Name.Name)
	case *ast.GenDecl:
		if decl.Tok != token.TYPE {
			return fail("found a %s declaration", decl.Tok)
		}
	default:
		return fail("unsupported declaration")
	}

	ts, ok := d.TypeSpec()
	if !ok {
		return fail("directive on a grouped type declaration must document a single type")
	}

	t.ID = TypeID{PkgPath: pkg.PkgPath, Name: ts.Name.Name}

	if ts.Assign.IsValid() {
		return fail("%s is an alias", ts.Name.Name)
	}

	if ts.TypeParams != nil && len(ts.TypeParams.List) > 0 {
		return fail("%s is generic", ts.Name.Name)
	}

	var under types.Type
	if pkg.TypesInfo != nil {
		if obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName); ok {
			under = obj.Type().Underlying()
		}
	}

	if kind := describe(under, ts.Type); kind != "" {
		return fail("%s is %s", ts.Name.Name, kind)
	}

	return t
}

// describe returns "" when the type is uint32, and a short description of
// what it is otherwise. The AST is used when type information is missing.
func describe(under types.Type, expr ast.Expr) string {
	switch u := under.(type) {
	case *types.Basic:
		switch {
		case u.Kind() == types.Uint32:
			return ""
		case u.Kind() == types.Invalid:
			return describeExpr(expr)
		case u.Info()&types.IsInteger != 0:
			return fmt.Sprintf("an integer of type %s, want uint32", u.Name())
		default:
			return "a " + u.Name()
		}
	case *types.Struct:
		return "a struct"
	case *types.Interface:
		return "an interface"
	case *types.Signature:
		return "a function type"
	case *types.Map:
		return "a map"
	case *types.Slice:
		return "a slice"
	case *types.Array:
		return "an array"
	case *types.Pointer:
		return "a pointer"
	case *types.Chan:
		return "a channel"
	default:
		return describeExpr(expr)
	}
}

func describeExpr(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		if e.Name == "uint32" {
			return ""
		}

		return "of type " + e.Name + ", want uint32"
	case *ast.StructType:
		return "a struct"
	case *ast.InterfaceType:
		return "an interface"
	case *ast.FuncType:
		return "a function type"
	case *ast.MapType:
		return "a map"
	case *ast.ArrayType:
		return "an array or slice"
	case *ast.StarExpr:
		return "a pointer"
	case *ast.ChanType:
		return "a channel"
	default:
		return "not a uint32 type"
	}
}
