// Package treefile loads shimmer element trees from YAML layout files.
//
// A layout file declares named styles and a root node (or a list of root
// nodes):
//
//	styles:
//	  line: {height: 1, backgroundColor: "#eee", marginBottom: 1}
//	root:
//	  - type: text
//	    text: Placeholder Text
//	    style: line
//	  - type: view
//	    style: [{flexDirection: row}, {gap: 2}]
//	    children:
//	      - type: component
//	        component: Avatar
//	        repeat: 2
//
// A style is a mapping, the name of a declared style, or a list of either;
// lists merge left to right. Component nodes are looked up in a Registry.
package treefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/shimmer"
)

var (
	// ErrEmpty is returned for a layout with no root.
	ErrEmpty = errors.New("layout has no root")
	// ErrUnknownType is returned for a node whose type is not text, view or component.
	ErrUnknownType = errors.New("unknown node type")
	// ErrUnknownComponent is returned for a component missing from the registry.
	ErrUnknownComponent = errors.New("unknown component")
	// ErrUnknownStyle is returned for a reference to an undeclared style.
	ErrUnknownStyle = errors.New("unknown style")
	// ErrInvalidStyle is returned for a style that is not a mapping, name or list.
	ErrInvalidStyle = errors.New("invalid style")
)

// Node types.
const (
	TypeText      = "text"
	TypeView      = "view"
	TypeComponent = "component"
)

// Registry maps component names to render values accepted by
// shimmer.Component.
type Registry map[string]any

// File is the decoded form of a layout file.
type File struct {
	Styles map[string]shimmer.Style `yaml:"styles"`
	Root   yaml.Node                `yaml:"root"`
}

// NodeSpec is one node of a layout file.
type NodeSpec struct {
	Type      string         `yaml:"type"`
	Key       string         `yaml:"key"`
	Text      string         `yaml:"text"`
	Style     any            `yaml:"style"`
	Children  []NodeSpec     `yaml:"children"`
	Component string         `yaml:"component"`
	Props     map[string]any `yaml:"props"`
	Repeat    int            `yaml:"repeat"`
}

// Load reads and builds the layout at path.
func Load(path string, reg Registry) (shimmer.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}
	node, err := Parse(data, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}

// Parse builds the layout in data. A single root node is returned as is;
// a list of roots is returned as a []shimmer.Node sequence.
func Parse(data []byte, reg Registry) (shimmer.Node, error) {
	var f File
	if err := decodeStrict(data, &f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("decoding layout: %w", err)
	}

	b := builder{styles: f.Styles, reg: reg}
	switch f.Root.Kind {
	case 0:
		return nil, ErrEmpty
	case yaml.SequenceNode:
		var specs []NodeSpec
		if err := decodeNode(&f.Root, &specs); err != nil {
			return nil, fmt.Errorf("root: %w", err)
		}
		nodes, err := b.buildAll(specs, "root")
		if err != nil {
			return nil, err
		}
		return nodes, nil
	default:
		var spec NodeSpec
		if err := decodeNode(&f.Root, &spec); err != nil {
			return nil, fmt.Errorf("root: %w", err)
		}
		nodes, err := b.build(spec, "root")
		if err != nil {
			return nil, err
		}
		if len(nodes) == 1 {
			return nodes[0], nil
		}
		return nodes, nil
	}
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}

// decodeNode decodes a captured node with the same strictness as the
// document; yaml.Node.Decode does not check for unknown fields.
func decodeNode(n *yaml.Node, out any) error {
	data, err := yaml.Marshal(n)
	if err != nil {
		return err
	}
	return decodeStrict(data, out)
}

type builder struct {
	styles map[string]shimmer.Style
	reg    Registry
}

func (b builder) buildAll(specs []NodeSpec, path string) ([]shimmer.Node, error) {
	var out []shimmer.Node
	for i, spec := range specs {
		nodes, err := b.build(spec, path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		out = append(out, nodes...)
	}
	return out, nil
}

// build returns the nodes for spec; more than one when it repeats.
func (b builder) build(spec NodeSpec, path string) ([]shimmer.Node, error) {
	style, err := b.style(spec.Style, path+".style")
	if err != nil {
		return nil, err
	}
	children, err := b.buildAll(spec.Children, path+".children")
	if err != nil {
		return nil, err
	}

	n := max(spec.Repeat, 1)
	out := make([]shimmer.Node, 0, n)
	for i := 0; i < n; i++ {
		key := spec.Key
		if key != "" && n > 1 {
			key += "-" + strconv.Itoa(i)
		}

		switch spec.Type {
		case TypeText:
			out = append(out, shimmer.Text(spec.Text, shimmer.WithKey(key), shimmer.WithStyle(style)))
		case TypeView, "":
			out = append(out, shimmer.View(shimmer.WithKey(key), shimmer.WithStyle(style), shimmer.WithChildren(children...)))
		case TypeComponent:
			render, ok := b.reg[spec.Component]
			if !ok {
				return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownComponent, spec.Component)
			}
			props := make(shimmer.Props, len(spec.Props)+1)
			for k, v := range spec.Props {
				props[k] = v
			}
			if n > 1 {
				props["index"] = i
			}
			out = append(out, shimmer.Component(render, props, children...).WithKey(key))
		default:
			return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownType, spec.Type)
		}
	}
	return out, nil
}

// style turns a decoded style declaration into one shimmer.Resolve accepts.
func (b builder) style(raw any, path string) (any, error) {
	switch s := raw.(type) {
	case nil:
		return nil, nil
	case string:
		named, ok := b.styles[s]
		if !ok {
			return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownStyle, s)
		}
		return named, nil
	case map[string]any:
		return shimmer.Style(s), nil
	case []any:
		out := make([]any, 0, len(s))
		for i, entry := range s {
			decl, err := b.style(entry, path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			out = append(out, decl)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s: %w: %T", path, ErrInvalidStyle, raw)
	}
}
