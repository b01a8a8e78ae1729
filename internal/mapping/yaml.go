package mapping

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a flat YAML map of `name: integer` pairs.
func ParseYAML(path string, data []byte) (*Mapping, error) {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, parseError(path, 0, err)
	}

	m := &Mapping{Path: path, Format: FormatYAML}

	// An empty document decodes to a zero node.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return m, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return m, nil
	}

	if root.Kind != yaml.MappingNode {
		return nil, parseError(path, root.Line, errors.New("top level must be a map of names to integers"))
	}

	seen := make(map[string]int, len(root.Content)/2)

	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, parseError(path, k.Line, errors.New("keys must be strings"))
		}

		name := k.Value
		if prev, dup := seen[name]; dup {
			return nil, parseError(path, k.Line, fmt.Errorf("key %q already defined on line %d", name, prev))
		}

		seen[name] = k.Line

		id, err := yamlID(v)
		if err != nil {
			return nil, parseError(path, k.Line, fmt.Errorf("key %q: %w", name, err))
		}

		m.Entries = append(m.Entries, Entry{Name: name, ID: id, Line: k.Line})
	}

	return m, nil
}

func yamlID(v *yaml.Node) (uint32, error) {
	switch v.Kind {
	case yaml.MappingNode:
		return 0, errors.New("nested maps are not supported")
	case yaml.SequenceNode:
		return 0, errors.New("arrays are not supported")
	case yaml.ScalarNode:
	default:
		return 0, errors.New("expected an unsigned 32-bit integer")
	}

	if v.Tag != "!!int" {
		return 0, fmt.Errorf("expected an unsigned 32-bit integer, got %s", v.ShortTag())
	}

	var id uint32
	if err := v.Decode(&id); err != nil {
		return 0, err
	}

	return id, nil
}
