package tree

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler. Keys keep insertion order.
func (r *Record) MarshalYAML() (any, error) {
	return r.yamlNode(), nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	if !v.IsValid() {
		return nil, errors.New("cannot marshal absent value")
	}

	return v.yamlNode(), nil
}

func (r *Record) yamlNode() *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, e := range r.entriesOrNil() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.key},
			e.value.yamlNode(),
		)
	}

	return node
}

func (v Value) yamlNode() *yaml.Node {
	switch v.kind {
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.str}
	case KindRecord:
		return v.rec.yamlNode()
	case KindList:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.list.items {
			node.Content = append(node.Content, item.yamlNode())
		}

		return node
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// UnmarshalYAML implements yaml.Unmarshaler. Scalars other than null are kept
// as their literal text.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	v, err := valueFromYAML(node)
	if err != nil {
		return err
	}

	if v.kind != KindRecord {
		return fmt.Errorf("line %d: expected mapping, got %s", node.Line, v.kind)
	}

	*r = *v.rec

	return nil
}

func valueFromYAML(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}

		return valueFromYAML(node.Content[0])

	case yaml.AliasNode:
		return valueFromYAML(node.Alias)

	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return Null(), nil
		}

		return String(node.Value), nil

	case yaml.SequenceNode:
		list := ListOf()

		for _, item := range node.Content {
			v, err := valueFromYAML(item)
			if err != nil {
				return Value{}, err
			}

			list.list.Append(v)
		}

		return list, nil

	case yaml.MappingNode:
		rec := NewRecord()

		for i := 0; i+1 < len(node.Content); i += 2 {
			v, err := valueFromYAML(node.Content[i+1])
			if err != nil {
				return Value{}, err
			}

			rec.Set(node.Content[i].Value, v)
		}

		return RecordValue(rec), nil

	default:
		return Value{}, fmt.Errorf("line %d: unsupported YAML node kind %v", node.Line, node.Kind)
	}
}

// DecodeYAMLRecords reads a YAML document holding one mapping or a sequence of mappings.
func DecodeYAMLRecords(data []byte) ([]*Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if doc.Kind == 0 {
		return nil, nil
	}

	v, err := valueFromYAML(&doc)
	if err != nil {
		return nil, err
	}

	switch v.kind {
	case KindRecord:
		return []*Record{v.rec}, nil
	case KindNull:
		return nil, nil
	case KindList:
		records := make([]*Record, 0, v.list.Len())

		for i, item := range v.list.items {
			if item.kind != KindRecord {
				return nil, fmt.Errorf("element %d: expected mapping, got %s", i, item.kind)
			}

			records = append(records, item.rec)
		}

		return records, nil
	default:
		return nil, fmt.Errorf("expected mapping or sequence, got %s", v.kind)
	}
}
