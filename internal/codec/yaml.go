package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML stores sections as a top level mapping of section names to
// mappings of scalar values:
//
//	DEFAULT:
//	  owner: me
//	MAIN:
//	  coreTopic: HouseIoT
//
// The node API is used instead of Go maps so that order survives a
// round trip.
type YAML struct{}

func (YAML) Parse(data []byte) ([]Section, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Format: "YAML", Err: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, yamlError(root, "top level must be a mapping of sections")
	}

	var sections []Section
	for i := 0; i+1 < len(root.Content); i += 2 {
		name, body := root.Content[i], root.Content[i+1]
		if name.Kind != yaml.ScalarNode {
			return nil, yamlError(name, "section name must be a scalar")
		}

		s := Section{Name: name.Value}
		switch {
		case body.Kind == yaml.ScalarNode && body.Tag == "!!null":
		case body.Kind == yaml.MappingNode:
			for j := 0; j+1 < len(body.Content); j += 2 {
				key, value := body.Content[j], body.Content[j+1]
				if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
					return nil, yamlError(key, fmt.Sprintf("section %q must only hold scalar values", s.Name))
				}
				v := value.Value
				if value.Tag == "!!null" {
					v = ""
				}
				s.Entries = append(s.Entries, Entry{Key: key.Value, Value: v})
			}
		default:
			return nil, yamlError(body, fmt.Sprintf("section %q must be a mapping", s.Name))
		}
		sections = append(sections, s)
	}
	return sections, nil
}

func (YAML) Serialize(sections []Section) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range sections {
		body := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range s.Entries {
			body.Content = append(body.Content, yamlString(e.Key), yamlString(e.Value))
		}
		root.Content = append(root.Content, yamlString(s.Name), body)
	}

	out, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("cannot encode YAML: %w", err)
	}
	return out, nil
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func yamlError(n *yaml.Node, msg string) error {
	return &ParseError{Format: "YAML", Err: fmt.Errorf("line %d: %s", n.Line, msg)}
}
