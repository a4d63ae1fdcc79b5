package shimmer

import "reflect"

// Node is anything that can appear in an element tree. Elements and
// component references are the renderable nodes; a slice is a sequence
// (fragment), see Sequence; everything else (nil, strings, numbers, unknown values) is an
// opaque leaf that the classifier reports as KindOther.
type Node = any

// ElementType identifies which host primitive an Element is.
type ElementType uint8

const (
	// ElementText is the primitive text leaf.
	ElementText ElementType = iota
	// ElementView is the primitive container.
	ElementView
)

// String returns the primitive's name.
func (t ElementType) String() string {
	switch t {
	case ElementText:
		return "Text"
	case ElementView:
		return "View"
	default:
		return "Unknown"
	}
}

// Element is a host primitive: a text leaf or a container.
// Elements are immutable snapshots once constructed; every accessor
// returns the value the element was built with.
type Element struct {
	typ      ElementType
	key      string
	style    any // raw declaration, resolved on demand
	content  string
	children []Node
}

// Option configures an Element.
type Option func(*Element)

// Text creates a primitive text leaf displaying content.
func Text(content string, opts ...Option) *Element {
	e := &Element{typ: ElementText, content: content}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// View creates a primitive container.
func View(opts ...Option) *Element {
	e := &Element{typ: ElementView}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithKey sets the identity key used to reconcile the element across renders.
func WithKey(key string) Option {
	return func(e *Element) {
		e.key = key
	}
}

// WithStyle sets the raw style declaration. A single argument is stored as
// is; several arguments are stored as one composite declaration that is
// merged left-to-right on resolution.
func WithStyle(decls ...any) Option {
	return func(e *Element) {
		switch len(decls) {
		case 0:
			e.style = nil
		case 1:
			e.style = decls[0]
		default:
			e.style = append([]any(nil), decls...)
		}
	}
}

// WithChildren appends children. A child may itself be a sequence.
func WithChildren(children ...Node) Option {
	return func(e *Element) {
		e.children = append(e.children, children...)
	}
}

// Type returns which primitive this element is.
func (e *Element) Type() ElementType {
	return e.typ
}

// Key returns the identity key, or "" if none was set.
func (e *Element) Key() string {
	return e.key
}

// Style returns the raw, unresolved style declaration.
func (e *Element) Style() any {
	return e.style
}

// Content returns the text of a text leaf.
func (e *Element) Content() string {
	return e.content
}

// Children returns the declared children.
func (e *Element) Children() []Node {
	return e.children
}

// Sequence reports whether node is a sequence and returns its items. Any
// slice or array counts, so a []*Element built by a caller is a fragment
// just like a []Node. A []byte is an opaque leaf.
func Sequence(node Node) ([]Node, bool) {
	switch n := node.(type) {
	case nil:
		return nil, false
	case []Node:
		return n, true
	case []byte:
		return nil, false
	}
	v := reflect.ValueOf(node)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]Node, v.Len())
	for i := range items {
		items[i] = v.Index(i).Interface()
	}
	return items, true
}
