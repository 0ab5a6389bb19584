// Package format renders token streams and syntax trees for the stellar
// command in text, JSON or YAML form.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Style selects an output encoding.
type Style int

const (
	StyleText Style = iota
	StyleJSON
	StyleYAML
)

var styleNames = map[Style]string{
	StyleText: "text",
	StyleJSON: "json",
	StyleYAML: "yaml",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle returns the style named name.
func ParseStyle(name string) (Style, error) {
	for style, n := range styleNames {
		if n == strings.ToLower(name) {
			return style, nil
		}
	}
	return StyleText, fmt.Errorf("unknown output format %q", name)
}

// Node is an encoding neutral view of a token or syntax tree node.
type Node struct {
	Kind     string  `json:"kind" yaml:"kind"`
	Value    string  `json:"value,omitempty" yaml:"value,omitempty"`
	Span     string  `json:"span,omitempty" yaml:"span,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Write encodes nodes to w in the given style.
func Write(w io.Writer, nodes []*Node, style Style) error {
	if nodes == nil {
		nodes = []*Node{}
	}

	switch style {
	case StyleText:
		return writeText(w, nodes)
	case StyleJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(nodes)
	case StyleYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nodes); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported style %s", style)
	}
}

// writeText prints one node per line, children indented by two spaces:
//
//	WaitStatement 1:0-6
//	  IntegerLiteral 1 1:5-6
func writeText(w io.Writer, nodes []*Node) error {
	var b strings.Builder
	for _, n := range nodes {
		writeTextNode(&b, n, 0)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTextNode(b *strings.Builder, n *Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Kind)
	if n.Value != "" {
		b.WriteByte(' ')
		b.WriteString(n.Value)
	}
	if n.Span != "" {
		b.WriteByte(' ')
		b.WriteString(n.Span)
	}
	b.WriteByte('\n')

	for _, child := range n.Children {
		writeTextNode(b, child, depth+1)
	}
}
