package layout

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges struct {
	Top, Right, Bottom, Left Value
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(v Value) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(vertical, horizontal Value) Edges {
	return Edges{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l Value) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// IsSet returns true if any side is declared.
func (e Edges) IsSet() bool {
	return e.Top.IsSet() || e.Right.IsSet() || e.Bottom.IsSet() || e.Left.IsSet()
}

// Resolve converts each side to cells. Percentages resolve against the
// available width on every side, as CSS and flex hosts do.
func (e Edges) Resolve(available int) (top, right, bottom, left int) {
	return e.Top.Resolve(available, 0),
		e.Right.Resolve(available, 0),
		e.Bottom.Resolve(available, 0),
		e.Left.Resolve(available, 0)
}

// Horizontal returns the resolved left+right spacing.
func (e Edges) Horizontal(available int) int {
	_, r, _, l := e.Resolve(available)
	return l + r
}

// Vertical returns the resolved top+bottom spacing.
func (e Edges) Vertical(available int) int {
	t, _, b, _ := e.Resolve(available)
	return t + b
}
