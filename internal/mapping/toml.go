package mapping

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// ParseTOML parses a flat TOML table of `name = integer` pairs.
func ParseTOML(path string, data []byte) (*Mapping, error) {
	var raw map[string]any

	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return nil, parseError(path, perr.Position.Line, err)
		}

		return nil, parseError(path, 0, err)
	}

	lines := tomlKeyLines(string(data))
	m := &Mapping{Path: path, Format: FormatTOML}

	// md.Keys lists keys in document order. A dotted key such as big.dog
	// shows up only as its full path.
	for _, key := range md.Keys() {
		if len(key) != 1 {
			return nil, parseError(path, lines[key[0]],
				fmt.Errorf("key %q: nested tables are not supported", key.String()))
		}

		name := key[0]
		line := lines[name]

		id, err := tomlID(raw[name])
		if err != nil {
			return nil, parseError(path, line, fmt.Errorf("key %q: %w", name, err))
		}

		m.Entries = append(m.Entries, Entry{Name: name, ID: id, Line: line})
	}

	return m, nil
}

func tomlID(v any) (uint32, error) {
	switch x := v.(type) {
	case int64:
		if x < 0 || x > math.MaxUint32 {
			return 0, fmt.Errorf("value %d out of range for uint32", x)
		}

		return uint32(x), nil
	case map[string]any:
		return 0, errors.New("nested tables are not supported")
	case []any, []map[string]any:
		return 0, errors.New("arrays are not supported")
	default:
		return 0, fmt.Errorf("expected an unsigned 32-bit integer, got %s", tomlTypeName(v))
	}
}

func tomlTypeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case float64:
		return "float"
	case bool:
		return "boolean"
	default:
		return "datetime"
	}
}

// tomlKeyLines maps top-level keys to their 1-based line. It understands the
// flat `key = value` layout only; keys inside tables are skipped.
func tomlKeyLines(src string) map[string]int {
	lines := make(map[string]int)

	for i, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}

		if line[0] == '[' {
			break
		}

		key, ok := tomlLineKey(line)
		if !ok {
			continue
		}

		if _, seen := lines[key]; !seen {
			lines[key] = i + 1
		}
	}

	return lines
}

// tomlLineKey returns the key of a `key = value` line. Quoted keys are read
// up to their closing quote, so they may contain '='. A dotted key is
// returned by its first part.
func tomlLineKey(line string) (string, bool) {
	switch line[0] {
	case '"':
		end := 1
		for end < len(line) && line[end] != '"' {
			if line[end] == '\\' {
				end++
			}
			end++
		}

		if end >= len(line) {
			return "", false
		}

		key, err := strconv.Unquote(line[:end+1])

		return key, err == nil
	case '\'':
		end := strings.IndexByte(line[1:], '\'')
		if end < 0 {
			return "", false
		}

		return line[1 : end+1], true
	}

	key, _, ok := strings.Cut(line, "=")
	if !ok {
		return "", false
	}

	key, _, _ = strings.Cut(key, ".")

	return strings.TrimSpace(key), true
}
