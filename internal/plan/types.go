package plan

import (
	"go/token"
	"log/slog"
	"strings"

	"labelgen/internal/analyze"
	"labelgen/internal/diagnostic"
	"labelgen/internal/naming"
)

// Names of the declarations generated for every enum.
const (
	MethodLabelNum    = "LabelNum"
	MethodFromLabelID = "FromLabelID"
	MethodLabelStr    = "LabelStr"
	MethodLabelID     = "LabelID"
	MethodIsUnknown   = "IsUnknown"
	MethodString      = "String"
	MethodGoString    = "GoString"
)

// GeneratedMethods lists the methods generated on every enum type.
var GeneratedMethods = []string{
	MethodLabelNum,
	MethodFromLabelID,
	MethodLabelStr,
	MethodLabelID,
	MethodIsUnknown,
	MethodString,
	MethodGoString,
}

// ReservedNames are referenced by generated files and cannot be redeclared
// by constants.
var ReservedNames = []string{"strconv", "uint32", "uint64", "string", "bool", "true", "false"}

// Config holds configuration for the resolution process.
type Config struct {
	// Naming controls how constant names are built.
	Naming naming.Options
	// Types restricts resolution to the named enum types. Empty means all.
	Types []string
	// Logger receives per-stage debug records.
	Logger *slog.Logger
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() Config {
	return Config{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// Variant is one constant of a generated enum.
type Variant struct {
	// Ident is the identifier derived from the key, e.g. "BigDog".
	Ident string
	// Const is the declared constant name, e.g. "BigDog" or "AnimalBigDog".
	Const string
	// ID is the numeric label id.
	ID uint32
	// Label is the raw mapping key, e.g. "big dog".
	Label string
	// Pos is the position of the key in the mapping file.
	Pos token.Position
	// Alias is set when an earlier variant has the same ID. Aliases are
	// declared as constants but never returned by LabelStr.
	Alias bool
}

// LabelSet is everything needed to generate the labels of one enum.
type LabelSet struct {
	// ID names the enum type.
	ID analyze.TypeID
	// PkgName is the name of the package declaring the enum.
	PkgName string
	// Dir is the directory of that package.
	Dir string
	// Pos is the position of the directive.
	Pos token.Position
	// MappingPath is the resolved mapping file path.
	MappingPath string
	// Variants are sorted ascending by ID. Ties keep mapping file order.
	Variants []Variant
	// Stage is the last stage the set reached.
	Stage Stage
}

// TypeName returns the enum type name.
func (s *LabelSet) TypeName() string {
	return s.ID.Name
}

// LabelNum returns the number of keys in the mapping, aliases included.
func (s *LabelSet) LabelNum() int {
	return len(s.Variants)
}

// Filename returns the base name of the generated file.
func (s *LabelSet) Filename() string {
	return strings.ToLower(s.ID.Name) + "_labels.go"
}

// LabelNumName returns the name of the package-level count constant.
func (s *LabelSet) LabelNumName() string {
	return s.ID.Name + MethodLabelNum
}

// FromLabelIDName returns the name of the package-level constructor.
func (s *LabelSet) FromLabelIDName() string {
	return s.ID.Name + MethodFromLabelID
}

// Failure records a directive that did not resolve.
type Failure struct {
	// TypeName is the enum type, empty when the directive has no type.
	TypeName string
	// Pos is the position of the directive.
	Pos token.Position
	// Stage is the stage that failed.
	Stage Stage
	// Err is the error reported for the directive.
	Err error
}

// ResolvedPlan is the result of resolving a package.
type ResolvedPlan struct {
	// Package is the analyzed package.
	Package *analyze.Package
	// LabelSets holds one set per successfully resolved directive, in
	// directive order.
	LabelSets []*LabelSet
	// Failures holds the directives that did not resolve.
	Failures []Failure
	// Diagnostics collects every error and warning.
	Diagnostics diagnostic.Diagnostics
}
