package markdown

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// Default indentation in front matter
const Indent int = 2

var ErrFrontMatterNotMapping = errors.New("front matter is not a mapping")

// Date is a YYYY-MM-DD value written as a YAML timestamp (without quotes).
type Date string

// FrontMatter represents the Front Matter (without the --- delimiters)
type FrontMatter string

func (f FrontMatter) AsNode() (*yaml.Node, error) {
	var document = new(yaml.Node)
	if err := yaml.Unmarshal([]byte(f), document); err != nil {
		return nil, err
	}
	if document.Kind == 0 || len(document.Content) == 0 { // Happen when no Front Matter is present
		return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}, nil
	}
	root := document.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, ErrFrontMatterNotMapping
	}
	return root, nil
}

func (f FrontMatter) AsMap() (map[string]any, error) {
	var attributes = make(map[string]any)
	if err := yaml.Unmarshal([]byte(f), &attributes); err != nil {
		return nil, err
	}
	return attributes, nil
}

// Set defines an attribute. Existing keys keep their position, new keys are appended.
func (f FrontMatter) Set(key string, value any) (FrontMatter, error) {
	root, err := f.AsNode()
	if err != nil {
		return f, err
	}
	valueNode, err := encodeValue(value)
	if err != nil {
		return f, err
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == key {
			root.Content[i+1] = valueNode
			return encodeFrontMatter(root)
		}
	}
	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		valueNode)
	return encodeFrontMatter(root)
}

// Remove deletes an attribute. Removing a missing key is not an error.
func (f FrontMatter) Remove(key string) (FrontMatter, error) {
	root, err := f.AsNode()
	if err != nil {
		return f, err
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == key {
			root.Content = append(root.Content[:i], root.Content[i+2:]...)
			return encodeFrontMatter(root)
		}
	}
	return f, nil
}

func encodeValue(value any) (*yaml.Node, error) {
	if date, ok := value.(Date); ok {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!timestamp", Value: string(date)}, nil
	}
	valueNode := new(yaml.Node)
	if err := valueNode.Encode(value); err != nil {
		return nil, err
	}
	return valueNode, nil
}

func encodeFrontMatter(root *yaml.Node) (FrontMatter, error) {
	if len(root.Content) == 0 {
		return "", nil
	}
	var buf bytes.Buffer
	bufEncoder := yaml.NewEncoder(&buf)
	bufEncoder.SetIndent(Indent)
	if err := bufEncoder.Encode(root); err != nil {
		return "", err
	}
	if err := bufEncoder.Close(); err != nil {
		return "", err
	}
	return FrontMatter(buf.String()), nil
}
