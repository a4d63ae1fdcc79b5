package shimmer

// PlaceholderKind identifies what a Placeholder draws.
type PlaceholderKind uint8

const (
	// PlaceholderBlock is a solid pulsing shape with no children.
	PlaceholderBlock PlaceholderKind = iota + 1
	// PlaceholderContainer is a layout-only node holding other placeholders.
	PlaceholderContainer
)

// String returns the kind's name.
func (k PlaceholderKind) String() string {
	switch k {
	case PlaceholderBlock:
		return "solid-block"
	case PlaceholderContainer:
		return "container"
	default:
		return "empty"
	}
}

// BlockLayout is the subset of resolved style a placeholder keeps: the
// attributes that affect where and how large things are drawn.
type BlockLayout struct {
	Width        Value
	Height       Value
	BorderRadius Value
	Margin       Edges
	Padding      Edges

	FlexDirection  Direction
	Gap            Value
	AlignItems     Align
	JustifyContent Justify
	Flex           Value
}

// layoutOf copies the layout-affecting attributes out of a resolved style.
func layoutOf(s ResolvedStyle) BlockLayout {
	return BlockLayout{
		Width:          s.Width,
		Height:         s.Height,
		BorderRadius:   s.BorderRadius,
		Margin:         s.Margin,
		Padding:        s.Padding,
		FlexDirection:  s.FlexDirection,
		Gap:            s.Gap,
		AlignItems:     s.AlignItems,
		JustifyContent: s.JustifyContent,
		Flex:           s.Flex,
	}
}

// Placeholder is a node of a synthesized loading tree. Placeholders are
// allocated fresh by every synthesis pass. An empty result is represented
// by the absence of a Placeholder, never by a node of its own.
type Placeholder struct {
	Kind   PlaceholderKind
	Key    string
	Layout BlockLayout

	// Color is the fill of a block.
	Color string
	// Pulse drives a block's opacity. Every block of one synthesis pass
	// shares the same source.
	Pulse PulseSource

	// Stretch asks the host to fill the cross axis so nested placeholders
	// stay visible inside a container with no declared size.
	Stretch bool
	// Direction is the writing direction of this subtree; unset inherits.
	Direction TextDirection

	Children []*Placeholder

	// Verbatim is a caller-supplied layout rendered as is in place of
	// synthesized children.
	Verbatim Node
}

// Opacity returns the block's current opacity, or 1 when nothing drives it.
func (p *Placeholder) Opacity() float64 {
	if p.Pulse == nil {
		return 1
	}
	return p.Pulse.Opacity()
}

// IsBlock reports whether p is a solid block.
func (p *Placeholder) IsBlock() bool {
	return p.Kind == PlaceholderBlock
}

// Walk visits p and its descendants depth-first, parents before children.
// Returning false from fn skips the node's children.
func (p *Placeholder) Walk(fn func(node *Placeholder, depth int) bool) {
	p.walk(fn, 0)
}

func (p *Placeholder) walk(fn func(*Placeholder, int) bool, depth int) {
	if p == nil {
		return
	}
	if !fn(p, depth) {
		return
	}
	for _, child := range p.Children {
		child.walk(fn, depth+1)
	}
}

// Blocks counts the solid blocks in the subtree rooted at p.
func (p *Placeholder) Blocks() int {
	n := 0
	p.Walk(func(node *Placeholder, _ int) bool {
		if node.IsBlock() {
			n++
		}
		return true
	})
	return n
}
