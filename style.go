package shimmer

import (
	"fmt"
	"log/slog"

	"github.com/grindlemire/shimmer/internal/debug"
	"github.com/grindlemire/shimmer/internal/layout"
)

// Style is a raw style declaration: attribute names mapped to values the
// way a host layout system spells them ("width": 50, "width": "90%",
// "flexDirection": "row", "backgroundColor": "#aaa").
type Style map[string]any

// ResolvedStyle is the flattened view of one style declaration. Every field
// has an explicit unset zero value.
type ResolvedStyle struct {
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

	BackgroundColor string
	Direction       TextDirection
}

// HasDimensions reports whether a non-zero width, height or flex is
// declared. A fixed 0 counts as undeclared.
func (s ResolvedStyle) HasDimensions() bool {
	return s.Width.IsNonZero() || s.Height.IsNonZero() || s.Flex.IsNonZero()
}

// HasBackgroundAndSize reports whether a background color and at least one
// non-zero width or height are declared.
func (s ResolvedStyle) HasBackgroundAndSize() bool {
	return s.BackgroundColor != "" && (s.Width.IsNonZero() || s.Height.IsNonZero())
}

// Resolve flattens a raw style declaration into a ResolvedStyle.
//
// decl may be nil, a Style, a map[string]any, or a sequence ([]Style, []any)
// of any of these; sequences are merged left-to-right and later entries win
// on key collisions. false and nil entries inside a sequence are skipped so
// conditional declarations compose. Invalid attributes are treated as unset.
func Resolve(decl any) ResolvedStyle {
	return resolveWith(decl, debug.Logger())
}

func resolveWith(decl any, logger *slog.Logger) ResolvedStyle {
	attrs := make(map[string]any)
	flatten(decl, attrs, logger)

	r := resolver{attrs: attrs, logger: logger}
	return ResolvedStyle{
		Width:           r.value("width"),
		Height:          r.value("height"),
		BorderRadius:    r.value("borderRadius"),
		Margin:          r.edges("margin"),
		Padding:         r.edges("padding"),
		FlexDirection:   r.direction("flexDirection"),
		Gap:             r.value("gap"),
		AlignItems:      r.align("alignItems"),
		JustifyContent:  r.justify("justifyContent"),
		Flex:            r.value("flex"),
		BackgroundColor: r.color("backgroundColor"),
		Direction:       r.textDirection("direction"),
	}
}

// flatten merges decl into attrs, later keys overwriting earlier ones.
func flatten(decl any, attrs map[string]any, logger *slog.Logger) {
	switch d := decl.(type) {
	case nil:
	case bool:
		if d {
			logger.Debug("style: ignoring bare true declaration")
		}
	case Style:
		for k, v := range d {
			attrs[k] = v
		}
	case map[string]any:
		for k, v := range d {
			attrs[k] = v
		}
	case []Style:
		for _, s := range d {
			flatten(s, attrs, logger)
		}
	case []map[string]any:
		for _, s := range d {
			flatten(s, attrs, logger)
		}
	case []any:
		for _, s := range d {
			flatten(s, attrs, logger)
		}
	default:
		logger.Debug("style: ignoring unsupported declaration", "type", typeName(decl))
	}
}

// resolver reads typed attributes out of a flattened attribute map.
type resolver struct {
	attrs  map[string]any
	logger *slog.Logger
}

func (r resolver) value(key string) Value {
	raw, ok := r.attrs[key]
	if !ok {
		return Unset()
	}
	v, err := layout.ParseValue(raw)
	if err != nil {
		r.logger.Debug("style: invalid attribute", "key", key, "error", err)
		return Unset()
	}
	return v
}

// edges reads a four-sided spacing attribute. Per-side keys override the
// vertical/horizontal shorthands, which override the all-sides shorthand.
func (r resolver) edges(prefix string) Edges {
	all := r.value(prefix)
	vertical := r.value(prefix + "Vertical").Or(all)
	horizontal := r.value(prefix + "Horizontal").Or(all)
	return Edges{
		Top:    r.value(prefix + "Top").Or(vertical),
		Right:  r.value(prefix + "Right").Or(horizontal),
		Bottom: r.value(prefix + "Bottom").Or(vertical),
		Left:   r.value(prefix + "Left").Or(horizontal),
	}
}

func (r resolver) keyword(key string) (string, bool) {
	raw, ok := r.attrs[key]
	if !ok || raw == nil {
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		r.logger.Debug("style: keyword attribute is not a string", "key", key, "type", typeName(raw))
		return "", false
	}
	return s, true
}

func (r resolver) direction(key string) Direction {
	s, ok := r.keyword(key)
	if !ok {
		return DirectionUnset
	}
	d, err := layout.ParseDirection(s)
	if err != nil {
		r.logger.Debug("style: invalid attribute", "key", key, "error", err)
	}
	return d
}

func (r resolver) align(key string) Align {
	s, ok := r.keyword(key)
	if !ok {
		return AlignUnset
	}
	a, err := layout.ParseAlign(s)
	if err != nil {
		r.logger.Debug("style: invalid attribute", "key", key, "error", err)
	}
	return a
}

func (r resolver) justify(key string) Justify {
	s, ok := r.keyword(key)
	if !ok {
		return JustifyUnset
	}
	j, err := layout.ParseJustify(s)
	if err != nil {
		r.logger.Debug("style: invalid attribute", "key", key, "error", err)
	}
	return j
}

func (r resolver) textDirection(key string) TextDirection {
	s, ok := r.keyword(key)
	if !ok {
		return TextDirectionUnset
	}
	d, err := layout.ParseTextDirection(s)
	if err != nil {
		r.logger.Debug("style: invalid attribute", "key", key, "error", err)
	}
	return d
}

func (r resolver) color(key string) string {
	s, _ := r.keyword(key)
	return s
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
