package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"slices"
	"strings"

	"labelgen/internal/common"
)

// Sentinel kinds. Every error produced by the pipeline wraps exactly one of
// these, so callers can classify failures with errors.Is.
var (
	ErrArgumentFormat      = errors.New(`expected format: file = "path"`)
	ErrFileRead            = errors.New("failed to read mapping file")
	ErrMappingParse        = errors.New("failed to parse mapping file")
	ErrTargetKind          = errors.New("this macro can only be used on enums")
	ErrInvalidIdentifier   = errors.New("invalid identifier")
	ErrIdentifierCollision = errors.New("identifier collision")
	ErrPackageLoad         = errors.New("failed to load package")
)

// Diagnostic codes, one per error kind.
const (
	CodeArgumentFormat      = "argument_format"
	CodeFileRead            = "file_read"
	CodeMappingParse        = "mapping_parse"
	CodeTargetKind          = "target_kind"
	CodeInvalidIdentifier   = "invalid_identifier"
	CodeIdentifierCollision = "identifier_collision"
	CodePackageLoad         = "package_load"
	CodeInternal            = "internal"
)

var kindCodes = []struct {
	kind error
	code string
}{
	{ErrArgumentFormat, CodeArgumentFormat},
	{ErrFileRead, CodeFileRead},
	{ErrMappingParse, CodeMappingParse},
	{ErrTargetKind, CodeTargetKind},
	{ErrInvalidIdentifier, CodeInvalidIdentifier},
	{ErrIdentifierCollision, CodeIdentifierCollision},
	{ErrPackageLoad, CodePackageLoad},
}

// CodeOf returns the diagnostic code for the kind err wraps.
func CodeOf(err error) string {
	for _, kc := range kindCodes {
		if errors.Is(err, kc.kind) {
			return kc.code
		}
	}

	return CodeInternal
}

// Error is an error attached to a position in the user's source.
type Error struct {
	Pos token.Position
	Err error
}

// Errorf formats an error at pos. The format should wrap one of the sentinel
// kinds with %w.
func Errorf(pos token.Position, format string, args ...any) *Error {
	return &Error{Pos: pos, Err: fmt.Errorf(format, args...)}
}

// At attaches pos to err. A *Error that already has a valid position is
// returned unchanged.
func At(pos token.Position, err error) error {
	if err == nil {
		return nil
	}

	var de *Error
	if errors.As(err, &de) && de.Pos.IsValid() {
		return err
	}

	return &Error{Pos: pos, Err: err}
}

// Error implements the error interface. A valid position is prepended.
func (e *Error) Error() string {
	if !e.Pos.IsValid() {
		return e.Err.Error()
	}

	return e.Pos.String() + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// Code returns the diagnostic code of the wrapped kind.
func (e *Error) Code() string { return CodeOf(e.Err) }

// Diagnostics holds all diagnostic information from a generation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Pos is where the diagnostic applies (may be invalid).
	Pos token.Position
	// TypeName is the enum type this relates to (if any).
	TypeName string
	// Err is the original error for error diagnostics.
	Err error
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError records err as an error diagnostic for typeName.
func (d *Diagnostics) AddError(typeName string, err error) {
	if err == nil {
		return
	}

	diag := Diagnostic{
		Severity: DiagnosticError,
		Code:     CodeOf(err),
		Message:  err.Error(),
		TypeName: typeName,
		Err:      err,
	}

	var de *Error
	if errors.As(err, &de) {
		diag.Pos = de.Pos
		diag.Message = de.Err.Error()
	}

	d.Errors = append(d.Errors, diag)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(pos token.Position, code, message, typeName string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Pos:      pos,
		TypeName: typeName,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(pos token.Position, code, message, typeName string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Pos:      pos,
		TypeName: typeName,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Sort orders every severity bucket by position so output is stable across
// runs.
func (d *Diagnostics) Sort() {
	for _, list := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		slices.SortStableFunc(list, compareDiagnostics)
	}
}

func compareDiagnostics(a, b Diagnostic) int {
	if c := strings.Compare(a.Pos.Filename, b.Pos.Filename); c != 0 {
		return c
	}

	if a.Pos.Line != b.Pos.Line {
		return a.Pos.Line - b.Pos.Line
	}

	return a.Pos.Column - b.Pos.Column
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
// The result matches every wrapped kind with errors.Is.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	errs := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		if e.Err != nil {
			errs = append(errs, e.Err)
			continue
		}

		errs = append(errs, errors.New(e.String()))
	}

	return errors.Join(errs...)
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Pos.IsValid() {
		prefix = append(prefix, d.Pos.String())
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
