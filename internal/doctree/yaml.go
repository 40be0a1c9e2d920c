package doctree

import (
	"fmt"
	"strconv"

	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// YAML serializes the tree as a YAML document. Mapping keys keep their
// insertion order, and scalars carry explicit tags so that, for example, a
// string that looks like a boolean round-trips quoted.
func (t *Tree) YAML() ([]byte, error) {
	root, err := t.root.yamlNode()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(root)
}

// yamlNode converts the node into a yaml.v3 document node.
func (n *Node) yamlNode() (*yaml.Node, error) {
	switch n.kind {
	case KindMapping:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range n.keys {
			child, err := n.entries[key].yamlNode()
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				child,
			)
		}
		return out, nil

	case KindSequence:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range n.items {
			child, err := item.yamlNode()
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, child)
		}
		return out, nil

	default:
		return scalarYAMLNode(n.value)
	}
}

// scalarYAMLNode maps a typed scalar onto a tagged YAML scalar node.
func scalarYAMLNode(value cty.Value) (*yaml.Node, error) {
	switch value.Type() {
	case cty.Bool:
		v := "false"
		if value.True() {
			v = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v}, nil

	case cty.Number:
		bf := value.AsBigFloat()
		if bf.IsInt() {
			i, _ := bf.Int64()
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(i, 10)}, nil
		}
		f, _ := bf.Float64()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(f, 'g', -1, 64)}, nil

	case cty.String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value.AsString()}, nil

	default:
		return nil, fmt.Errorf("unsupported scalar type %s", value.Type().FriendlyName())
	}
}
