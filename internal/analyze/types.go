package analyze

import (
	"go/token"

	"labelgen/internal/directive"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "example.com/zoo/animals"
	Name    string // e.g., "Animal"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Target is a directive together with the enum type it documents.
type Target struct {
	// Directive is the directive comment.
	Directive directive.Directive
	// Pos is the position of the directive comment.
	Pos token.Position
	// ID names the enum type. Empty when Err is set before the type is known.
	ID TypeID
	// Err is set when the directive does not document a uint32 enum.
	Err error
}


// Package is a loaded package that holds labelgen directives.
type Package struct {
	// Name is the package name.
	Name string
	// Path is the package import path.
	Path string
	// Dir is the directory holding the package sources.
	Dir string
	// Fset positions every file of the package.
	Fset *token.FileSet
	// Targets lists the directives in source order.
	Targets []*Target
	// Declared maps package-level names to their declaration, excluding
	// files previously written by labelgen.
	Declared map[string]token.Position
	// Methods maps each target type name to the methods declared on it,
	// excluding files previously written by labelgen.
	Methods map[string]map[string]token.Position
	// TypeErrors holds type-checking errors. They are expected while the
	// package references constants that are not generated yet.
	TypeErrors []error
}

// Target returns the target for the named type, or nil.
func (p *Package) Target(name string) *Target {
	for _, t := range p.Targets {
		if t.ID.Name == name {
			return t
		}
	}

	return nil
}
