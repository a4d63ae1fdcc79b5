// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package shimmer

import "github.com/grindlemire/shimmer/internal/layout"

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	DirectionUnset = layout.DirectionUnset
	Row            = layout.Row
	Column         = layout.Column
	RowReverse     = layout.RowReverse
	ColumnReverse  = layout.ColumnReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyUnset        = layout.JustifyUnset
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignUnset    = layout.AlignUnset
	AlignStart    = layout.AlignStart
	AlignEnd      = layout.AlignEnd
	AlignCenter   = layout.AlignCenter
	AlignStretch  = layout.AlignStretch
	AlignBaseline = layout.AlignBaseline
)

// TextDirection is the writing direction of a subtree.
type TextDirection = layout.TextDirection

const (
	TextDirectionUnset = layout.TextDirectionUnset
	LTR                = layout.LTR
	RTL                = layout.RTL
)

// Value represents a declared dimension (unset, auto, fixed, or percent).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitUnset   = layout.UnitUnset
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Fixed creates a Value with a fixed cell count.
func Fixed(n float64) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// Unset creates a Value that was never declared.
func Unset() Value {
	return layout.Unset()
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(v Value) Edges {
	return layout.EdgeAll(v)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l Value) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
