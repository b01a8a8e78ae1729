package mapping

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"labelgen/internal/diagnostic"
)

// Format is the on-disk syntax of a mapping file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}

	return "toml"
}

// FormatOf picks the format from the file extension. Anything that is not
// .yaml or .yml is read as TOML.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// LoadFile reads and parses the mapping file at path. The whole file is read
// at once and must be valid UTF-8.
func LoadFile(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", diagnostic.ErrFileRead, path, err)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w %s: stream did not contain valid UTF-8", diagnostic.ErrFileRead, path)
	}

	return Parse(path, data)
}

// Parse parses mapping data. path selects the format and is used in
// diagnostics only.
func Parse(path string, data []byte) (*Mapping, error) {
	switch FormatOf(path) {
	case FormatYAML:
		return ParseYAML(path, data)
	default:
		return ParseTOML(path, data)
	}
}

// parseError builds a MappingParseError. A positive line attaches the
// position of the offending key.
func parseError(path string, line int, cause error) error {
	err := fmt.Errorf("%w %s: %w", diagnostic.ErrMappingParse, path, cause)
	if line <= 0 {
		return err
	}

	return &diagnostic.Error{
		Pos: token.Position{Filename: path, Line: line, Column: 1},
		Err: err,
	}
}
