package config

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ToYAML renders an element tree as YAML so configurations can be inspected
// or post-processed with standard tooling. Groups become mappings (sorted
// keys), lists become sequences, atoms become scalars.
func ToYAML(e Element) ([]byte, error) {
	node, err := toYAMLNode(e)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func toYAMLNode(e Element) (*yaml.Node, error) {
	switch v := e.(type) {
	case *Group:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range v.Keys() {
			child, err := v.Get(key)
			if err != nil {
				return nil, err
			}
			childNode, err := toYAMLNode(child)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				childNode,
			)
		}
		return node, nil
	case *List:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i := 0; i < v.Len(); i++ {
			child, err := v.Get(i)
			if err != nil {
				return nil, err
			}
			childNode, err := toYAMLNode(child)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, childNode)
		}
		return node, nil
	case *Atom:
		node := &yaml.Node{Kind: yaml.ScalarNode}
		switch v.Type() {
		case BoolKind:
			b, _ := v.AsBool()
			node.Tag = "!!bool"
			node.Value = strconv.FormatBool(b)
		case IntKind:
			i, _ := v.AsInt()
			node.Tag = "!!int"
			node.Value = strconv.FormatInt(i, 10)
		case FloatKind:
			f, _ := v.AsFloat()
			node.Tag = "!!float"
			node.Value = strconv.FormatFloat(f, 'g', -1, 64)
		default:
			s, _ := v.AsString()
			node.Tag = "!!str"
			node.Value = s
			node.Style = yaml.DoubleQuotedStyle
		}
		return node, nil
	default:
		return nil, fmt.Errorf("unsupported element kind %s", e.Kind())
	}
}

// FromYAML builds an element tree from YAML source. Mappings become groups,
// sequences become lists and scalars become atoms with their resolved YAML
// type (bool, int, float or string).
func FromYAML(data []byte) (Element, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return NewGroup(), nil
	}
	return fromYAMLNode(doc.Content[0])
}

func fromYAMLNode(node *yaml.Node) (Element, error) {
	switch node.Kind {
	case yaml.MappingNode:
		g := NewGroup()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			child, err := fromYAMLNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			g.Insert(key, child)
		}
		return g, nil
	case yaml.SequenceNode:
		l := NewList()
		for _, c := range node.Content {
			child, err := fromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			l.Append(child)
		}
		return l, nil
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return nil, fmt.Errorf("invalid YAML bool at line %d: %w", node.Line, err)
			}
			return BoolAtom(b), nil
		case "!!int":
			var i int64
			if err := node.Decode(&i); err != nil {
				return nil, fmt.Errorf("invalid YAML int at line %d: %w", node.Line, err)
			}
			return IntAtom(i), nil
		case "!!float":
			var f float64
			if err := node.Decode(&f); err != nil {
				return nil, fmt.Errorf("invalid YAML float at line %d: %w", node.Line, err)
			}
			return FloatAtom(f), nil
		default:
			return StringAtom(node.Value), nil
		}
	case yaml.AliasNode:
		return fromYAMLNode(node.Alias)
	default:
		return nil, fmt.Errorf("unsupported YAML node kind at line %d", node.Line)
	}
}
