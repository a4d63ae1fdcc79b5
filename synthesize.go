package shimmer

import (
	"log/slog"
	"strconv"

	"github.com/grindlemire/shimmer/internal/debug"
)

const (
	// DefaultMaxDepth bounds how deep synthesis walks before giving up on a subtree.
	DefaultMaxDepth = 64
	// DefaultBlockColor is the neutral fill of every solid block.
	DefaultBlockColor = "#E0E0E0"
	// DefaultTextHeight is the height, in rows, of a text line placeholder.
	DefaultTextHeight = 1
	// DefaultTextWidthPercent is the width of a text line placeholder when
	// the text declares none.
	DefaultTextWidthPercent = 90
)

// textBlockRadius rounds text bars slightly; hosts without rounding ignore it.
var textBlockRadius = Fixed(1)

// Synthesizer turns an element tree into a tree of placeholders whose shape
// follows the original layout. A Synthesizer holds no per-tree state and may
// be reused; every call walks the tree afresh.
type Synthesizer struct {
	pulse      PulseSource
	maxDepth   int
	textHeight Value
	textWidth  Value
	color      string
	logger     *slog.Logger
}

// SynthOption configures a Synthesizer.
type SynthOption func(*Synthesizer)

// WithMaxDepth bounds recursion. Subtrees deeper than n synthesize to nothing.
func WithMaxDepth(n int) SynthOption {
	return func(s *Synthesizer) {
		if n > 0 {
			s.maxDepth = n
		}
	}
}

// WithTextHeight sets the height of text placeholders that declare none.
func WithTextHeight(v Value) SynthOption {
	return func(s *Synthesizer) {
		s.textHeight = v
	}
}

// WithTextWidth sets the width of text placeholders that declare none.
func WithTextWidth(v Value) SynthOption {
	return func(s *Synthesizer) {
		s.textWidth = v
	}
}

// WithBlockColor sets the fill of solid blocks.
func WithBlockColor(color string) SynthOption {
	return func(s *Synthesizer) {
		if color != "" {
			s.color = color
		}
	}
}

// WithLogger sets the logger for non-fatal synthesis diagnostics.
func WithLogger(logger *slog.Logger) SynthOption {
	return func(s *Synthesizer) {
		s.logger = logger
	}
}

// NewSynthesizer creates a Synthesizer whose blocks all read opacity from pulse.
func NewSynthesizer(pulse PulseSource, opts ...SynthOption) *Synthesizer {
	s := &Synthesizer{
		pulse:      pulse,
		maxDepth:   DefaultMaxDepth,
		textHeight: Fixed(DefaultTextHeight),
		textWidth:  Percent(DefaultTextWidthPercent),
		color:      DefaultBlockColor,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = debug.Logger()
	}
	return s
}

// Synthesize builds placeholders for node using default settings.
func Synthesize(node Node, pulse PulseSource) []*Placeholder {
	return NewSynthesizer(pulse).Synthesize(node)
}

// Synthesize builds the placeholders for node. A single node yields zero or
// one placeholder; a sequence yields the placeholders of its items in order.
// Synthesis never fails: nodes that cannot be represented are dropped.
func (s *Synthesizer) Synthesize(node Node) []*Placeholder {
	return s.synth(node, 0, 0)
}

func (s *Synthesizer) synth(node Node, index, depth int) []*Placeholder {
	if depth > s.maxDepth {
		s.logger.Warn("shimmer: tree exceeds max depth, dropping subtree", "max_depth", s.maxDepth)
		return nil
	}

	if seq, ok := Sequence(node); ok {
		return s.synthSeq(seq, depth)
	}

	switch Classify(node) {
	case KindText:
		return []*Placeholder{s.textBlock(node.(*Element), index)}
	case KindContainer:
		if p := s.container(node.(*Element), index, depth); p != nil {
			return []*Placeholder{p}
		}
		return nil
	case KindFunction, KindStateful:
		return s.component(node.(*ComponentElement), index, depth)
	case KindOther:
		return nil
	}
	return nil
}

func (s *Synthesizer) synthSeq(seq []Node, depth int) []*Placeholder {
	var out []*Placeholder
	for i, child := range seq {
		out = append(out, s.synth(child, i, depth+1)...)
	}
	return out
}

// textBlock renders a text leaf as one bar. The text itself never shows.
func (s *Synthesizer) textBlock(el *Element, index int) *Placeholder {
	style := resolveWith(el.Style(), s.logger)
	return &Placeholder{
		Kind: PlaceholderBlock,
		Key:  placeholderKey(el.Key(), index),
		Layout: BlockLayout{
			Width:        style.Width.OrNonZero(s.textWidth),
			Height:       style.Height.OrNonZero(s.textHeight),
			BorderRadius: textBlockRadius,
			Margin:       style.Margin,
		},
		Color: s.color,
		Pulse: s.pulse,
	}
}

// container keeps a container's layout and nests its children's
// placeholders. A colored, sized container with nothing inside collapses to
// a single block (an avatar or an image).
func (s *Synthesizer) container(el *Element, index, depth int) *Placeholder {
	style := resolveWith(el.Style(), s.logger)
	children := s.synthSeq(el.Children(), depth)
	key := placeholderKey(el.Key(), index)

	if style.HasBackgroundAndSize() && len(children) == 0 {
		return &Placeholder{
			Kind:   PlaceholderBlock,
			Key:    key,
			Layout: layoutOf(style),
			Color:  s.color,
			Pulse:  s.pulse,
		}
	}

	return &Placeholder{
		Kind:      PlaceholderContainer,
		Key:       key,
		Layout:    layoutOf(style),
		Stretch:   len(children) > 0 && !style.HasDimensions(),
		Direction: style.Direction,
		Children:  children,
	}
}

// component renders a user component and synthesizes its output. A failed
// render falls back to the declared children.
func (s *Synthesizer) component(c *ComponentElement, index, depth int) []*Placeholder {
	out, err := c.Render()
	if err != nil {
		s.logger.Warn("shimmer: component render failed, using declared children",
			"component", c.Name(), "error", err)
		return s.synthSeq(c.Children(), depth)
	}
	if out == nil {
		return nil
	}
	return s.synth(out, index, depth+1)
}

func placeholderKey(key string, index int) string {
	if key != "" {
		return key
	}
	return "shimmer-" + strconv.Itoa(index)
}
