package paint

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/grindlemire/shimmer"
	"github.com/grindlemire/shimmer/internal/debug"
)

// DefaultWidth is the number of columns painted when no width is given.
const DefaultWidth = 80

// Painter renders trees into strings. It is safe to reuse; each Paint call
// reads pulse opacity once per block, so repainting shows the pulse moving.
type Painter struct {
	width    int
	backdrop colorful.Color
	logger   *slog.Logger
}

// Option configures a Painter.
type Option func(*Painter)

// WithWidth sets the number of columns available to the root.
func WithWidth(n int) Option {
	return func(p *Painter) {
		if n > 0 {
			p.width = n
		}
	}
}

// WithBackdrop sets the color blocks fade into. Colors that do not parse
// are ignored.
func WithBackdrop(color string) Option {
	return func(p *Painter) {
		if c, ok := parseColor(color); ok {
			p.backdrop = c
		}
	}
}

// WithLogger sets the logger for render failures.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Painter) {
		p.logger = logger
	}
}

// New creates a Painter.
func New(opts ...Option) *Painter {
	backdrop, _ := parseColor(DefaultBackdrop)
	p := &Painter{
		width:    DefaultWidth,
		backdrop: backdrop,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = debug.Logger()
	}
	return p
}

// Width returns the number of columns available to the root.
func (p *Painter) Width() int {
	return p.width
}

// Paint renders node. It accepts everything a Loader renders: element
// trees, sequences, component elements and placeholder trees.
func (p *Painter) Paint(node shimmer.Node) string {
	return p.paint(node, frame{width: p.width, fill: true})
}

// frame is what a parent hands a child: the columns it may use and
// whether it should stretch across them.
type frame struct {
	width int
	fill  bool
	rtl   bool
}

func (p *Painter) paint(node shimmer.Node, f frame) string {
	if seq, ok := shimmer.Sequence(node); ok {
		return p.column(seq, f, 0, alignPos(shimmer.AlignUnset, f.rtl), false)
	}
	switch n := node.(type) {
	case nil:
		return ""
	case string:
		return p.text(n, shimmer.ResolvedStyle{}, f)
	case *shimmer.Placeholder:
		if n == nil {
			return ""
		}
		return p.placeholder(n, f)
	}

	switch shimmer.Classify(node) {
	case shimmer.KindText:
		el := node.(*shimmer.Element)
		return p.text(el.Content(), shimmer.Resolve(el.Style()), f)
	case shimmer.KindContainer:
		el := node.(*shimmer.Element)
		return p.container(specOf(shimmer.Resolve(el.Style())), el.Children(), f)
	case shimmer.KindFunction, shimmer.KindStateful:
		c := node.(*shimmer.ComponentElement)
		out, err := c.Render()
		if err != nil {
			p.logger.Warn("paint: component render failed, painting declared children",
				"component", c.Name(), "error", err)
			return p.paint(c.Children(), f)
		}
		return p.paint(out, f)
	}
	return ""
}

func (p *Painter) placeholder(ph *shimmer.Placeholder, f frame) string {
	if ph.Verbatim != nil {
		return p.container(specOfLayout(ph), []shimmer.Node{ph.Verbatim}, f)
	}
	switch ph.Kind {
	case shimmer.PlaceholderBlock:
		return p.block(ph, f)
	case shimmer.PlaceholderContainer:
		items := make([]shimmer.Node, len(ph.Children))
		for i, child := range ph.Children {
			items[i] = child
		}
		return p.container(specOfLayout(ph), items, f)
	}
	return ""
}

// block paints a solid rectangle in the block color blended over the
// backdrop at the block's current opacity.
func (p *Painter) block(ph *shimmer.Placeholder, f frame) string {
	l := ph.Layout
	mt, mr, mb, ml := l.Margin.Resolve(f.width)
	outer := max(f.width-ml-mr, 0)

	w := clamp(l.Width.Resolve(outer, outer), 0, outer)
	h := rows(l.Height, 1)
	if w == 0 || h == 0 {
		return ""
	}

	line := strings.Repeat(" ", w)
	body := strings.Repeat(line+"\n", h-1) + line
	return lipgloss.NewStyle().
		Background(blend(p.backdrop, ph.Color, ph.Opacity())).
		Margin(mt, mr, mb, ml).
		Render(body)
}

func (p *Painter) text(content string, s shimmer.ResolvedStyle, f frame) string {
	mt, mr, mb, ml := s.Margin.Resolve(f.width)
	pt, pr, pb, pl := s.Padding.Resolve(f.width)
	outer := max(f.width-ml-mr, 0)

	style := lipgloss.NewStyle().
		Margin(mt, mr, mb, ml).
		Padding(pt, pr, pb, pl)

	switch {
	case s.Width.IsSet() && !s.Width.IsAuto():
		style = style.Width(clamp(s.Width.Resolve(outer, outer), 0, outer))
	case lipgloss.Width(content)+pl+pr > outer:
		style = style.Width(outer)
	}
	if s.Height.Unit == shimmer.UnitFixed {
		style = style.Height(rows(s.Height, 0))
	}
	if bg, ok := background(s.BackgroundColor); ok {
		style = style.Background(bg)
	}
	if isRTL(s.Direction, f.rtl) {
		style = style.Align(lipgloss.Right)
	}
	return style.Render(content)
}

// spec is the layout of a container, shared by elements and placeholders.
type spec struct {
	width, height   shimmer.Value
	margin, padding shimmer.Edges
	flexDirection   shimmer.Direction
	gap             shimmer.Value
	align           shimmer.Align
	justify         shimmer.Justify
	background      string
	direction       shimmer.TextDirection
	stretch         bool
}

func specOf(s shimmer.ResolvedStyle) spec {
	return spec{
		width:         s.Width,
		height:        s.Height,
		margin:        s.Margin,
		padding:       s.Padding,
		flexDirection: s.FlexDirection,
		gap:           s.Gap,
		align:         s.AlignItems,
		justify:       s.JustifyContent,
		background:    s.BackgroundColor,
		direction:     s.Direction,
	}
}

func specOfLayout(ph *shimmer.Placeholder) spec {
	l := ph.Layout
	return spec{
		width:         l.Width,
		height:        l.Height,
		margin:        l.Margin,
		padding:       l.Padding,
		flexDirection: l.FlexDirection,
		gap:           l.Gap,
		align:         l.AlignItems,
		justify:       l.JustifyContent,
		direction:     ph.Direction,
		stretch:       ph.Stretch,
	}
}

func (p *Painter) container(s spec, items []shimmer.Node, f frame) string {
	f.rtl = isRTL(s.direction, f.rtl)

	mt, mr, mb, ml := s.margin.Resolve(f.width)
	outer := max(f.width-ml-mr, 0)

	width := -1
	switch {
	case s.width.IsSet() && !s.width.IsAuto():
		width = clamp(s.width.Resolve(outer, outer), 0, outer)
	case f.fill || s.stretch:
		width = outer
	}

	pt, pr, pb, pl := s.padding.Resolve(outer)
	inner := outer - pl - pr
	if width >= 0 {
		inner = width - pl - pr
	}
	inner = max(inner, 0)
	gap := s.gap.Resolve(inner, 0)

	var body string
	if s.flexDirection.IsRow() {
		body = p.row(items, s, inner, gap, f.rtl)
	} else {
		fill := s.align == shimmer.AlignUnset || s.align == shimmer.AlignStretch
		child := frame{width: inner, fill: fill, rtl: f.rtl}
		body = p.column(items, child, gap, alignPos(s.align, f.rtl), s.flexDirection == shimmer.ColumnReverse)
	}

	style := lipgloss.NewStyle().
		Margin(mt, mr, mb, ml).
		Padding(pt, pr, pb, pl)
	if width >= 0 {
		style = style.Width(width)
	}
	if s.height.Unit == shimmer.UnitFixed {
		style = style.Height(rows(s.height, 0))
	}
	if bg, ok := background(s.background); ok {
		style = style.Background(bg)
	}
	if f.rtl {
		style = style.Align(lipgloss.Right)
	}
	return style.Render(body)
}

// column stacks the painted items top to bottom with gap blank rows
// between them. Items that paint nothing take no space.
func (p *Painter) column(items []shimmer.Node, f frame, gap int, pos lipgloss.Position, reverse bool) string {
	var blocks []string
	for _, item := range items {
		if s := p.paint(item, f); s != "" {
			blocks = append(blocks, s)
		}
	}
	if len(blocks) == 0 {
		return ""
	}
	if reverse {
		reverseStrings(blocks)
	}
	return lipgloss.JoinVertical(pos, interleave(blocks, strings.Repeat("\n", max(gap-1, 0)), gap > 0)...)
}

// row lays items out left to right. Items declaring flex share the columns
// the others leave over, in proportion to their flex.
func (p *Painter) row(items []shimmer.Node, s spec, width, gap int, rtl bool) string {
	cells := make([]string, len(items))
	flexes := make([]float64, len(items))

	used, visible := 0, 0
	var total float64
	for i, item := range items {
		if fl := flexOf(item); fl > 0 {
			flexes[i] = fl
			total += fl
			visible++
			continue
		}
		cells[i] = p.paint(item, frame{width: width, rtl: rtl})
		if cells[i] != "" {
			used += lipgloss.Width(cells[i])
			visible++
		}
	}

	remaining := max(width-used-gap*max(visible-1, 0), 0)
	assigned := 0
	var seen float64
	for i, item := range items {
		if flexes[i] == 0 {
			continue
		}
		seen += flexes[i]
		share := int(float64(remaining)*seen/total) - assigned
		assigned += share
		cells[i] = p.paint(item, frame{width: share, fill: true, rtl: rtl})
	}

	var blocks []string
	for _, c := range cells {
		if c != "" {
			blocks = append(blocks, c)
		}
	}
	if len(blocks) == 0 {
		return ""
	}
	if (s.flexDirection == shimmer.RowReverse) != rtl {
		reverseStrings(blocks)
	}

	joined := lipgloss.JoinHorizontal(crossPos(s.align), interleave(blocks, strings.Repeat(" ", gap), gap > 0)...)
	if pos, ok := justifyPos(s.justify, rtl); ok && lipgloss.Width(joined) < width {
		joined = lipgloss.PlaceHorizontal(width, pos, joined)
	}
	return joined
}

// flexOf returns the flex factor a node declares, or 0.
func flexOf(node shimmer.Node) float64 {
	var v shimmer.Value
	switch n := node.(type) {
	case *shimmer.Placeholder:
		if n == nil {
			return 0
		}
		v = n.Layout.Flex
	case *shimmer.Element:
		if n == nil {
			return 0
		}
		v = shimmer.Resolve(n.Style()).Flex
	default:
		return 0
	}
	if v.Unit != shimmer.UnitFixed || v.Amount <= 0 {
		return 0
	}
	return v.Amount
}

func isRTL(d shimmer.TextDirection, inherited bool) bool {
	switch d {
	case shimmer.RTL:
		return true
	case shimmer.LTR:
		return false
	default:
		return inherited
	}
}

// alignPos maps cross-axis alignment of a column onto a horizontal position.
func alignPos(a shimmer.Align, rtl bool) lipgloss.Position {
	switch a {
	case shimmer.AlignCenter:
		return lipgloss.Center
	case shimmer.AlignEnd:
		if rtl {
			return lipgloss.Left
		}
		return lipgloss.Right
	default:
		if rtl {
			return lipgloss.Right
		}
		return lipgloss.Left
	}
}

// crossPos maps cross-axis alignment of a row onto a vertical position.
func crossPos(a shimmer.Align) lipgloss.Position {
	switch a {
	case shimmer.AlignCenter:
		return lipgloss.Center
	case shimmer.AlignEnd:
		return lipgloss.Bottom
	default:
		return lipgloss.Top
	}
}

// justifyPos reports where a row narrower than its container is placed.
// Distributed justification is approximated by centering.
func justifyPos(j shimmer.Justify, rtl bool) (lipgloss.Position, bool) {
	switch j {
	case shimmer.JustifyCenter, shimmer.JustifySpaceAround, shimmer.JustifySpaceEvenly:
		return lipgloss.Center, true
	case shimmer.JustifyEnd:
		if rtl {
			return lipgloss.Left, true
		}
		return lipgloss.Right, true
	default:
		if rtl {
			return lipgloss.Right, true
		}
		return lipgloss.Left, false
	}
}

func rows(v shimmer.Value, fallback int) int {
	if v.Unit != shimmer.UnitFixed {
		return fallback
	}
	return max(int(v.Amount), 0)
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}

func interleave(blocks []string, sep string, on bool) []string {
	if !on || len(blocks) < 2 {
		return blocks
	}
	out := make([]string, 0, 2*len(blocks)-1)
	for i, b := range blocks {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, b)
	}
	return out
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
