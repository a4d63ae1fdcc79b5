package layout

import (
	"fmt"
	"strings"
)

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	DirectionUnset Direction = iota // Not declared; hosts treat it as Column
	Row                             // Children laid out left-to-right
	Column                          // Children laid out top-to-bottom
	RowReverse                      // Children laid out right-to-left
	ColumnReverse                   // Children laid out bottom-to-top
)

// IsRow returns true if the main axis is horizontal.
func (d Direction) IsRow() bool {
	return d == Row || d == RowReverse
}

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyUnset        Justify = iota // Not declared
	JustifyStart                       // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignUnset    Align = iota // Not declared
	AlignStart                 // Align to start of cross axis
	AlignEnd                   // Align to end of cross axis
	AlignCenter                // Center on cross axis
	AlignStretch               // Stretch to fill cross axis
	AlignBaseline              // Align text baselines
)

// TextDirection is the writing direction a subtree is laid out in.
type TextDirection uint8

const (
	TextDirectionUnset TextDirection = iota // Inherit from the parent
	LTR                                     // Left-to-right
	RTL                                     // Right-to-left
)

// ParseDirection reads a flexDirection keyword.
func ParseDirection(s string) (Direction, error) {
	switch normalize(s) {
	case "row":
		return Row, nil
	case "column":
		return Column, nil
	case "row-reverse":
		return RowReverse, nil
	case "column-reverse":
		return ColumnReverse, nil
	}
	return DirectionUnset, fmt.Errorf("unknown flex direction %q", s)
}

// ParseJustify reads a justifyContent keyword.
func ParseJustify(s string) (Justify, error) {
	switch normalize(s) {
	case "flex-start", "start":
		return JustifyStart, nil
	case "flex-end", "end":
		return JustifyEnd, nil
	case "center":
		return JustifyCenter, nil
	case "space-between":
		return JustifySpaceBetween, nil
	case "space-around":
		return JustifySpaceAround, nil
	case "space-evenly":
		return JustifySpaceEvenly, nil
	}
	return JustifyUnset, fmt.Errorf("unknown justify mode %q", s)
}

// ParseAlign reads an alignItems keyword.
func ParseAlign(s string) (Align, error) {
	switch normalize(s) {
	case "flex-start", "start":
		return AlignStart, nil
	case "flex-end", "end":
		return AlignEnd, nil
	case "center":
		return AlignCenter, nil
	case "stretch":
		return AlignStretch, nil
	case "baseline":
		return AlignBaseline, nil
	}
	return AlignUnset, fmt.Errorf("unknown align mode %q", s)
}

// ParseTextDirection reads a direction keyword ("ltr", "rtl" or "inherit").
func ParseTextDirection(s string) (TextDirection, error) {
	switch normalize(s) {
	case "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	case "inherit":
		return TextDirectionUnset, nil
	}
	return TextDirectionUnset, fmt.Errorf("unknown text direction %q", s)
}

// normalize lowercases s and maps camelCase/underscore spellings onto the
// dashed CSS keywords ("spaceBetween" and "space_between" both become
// "space-between").
func normalize(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	var prev rune
	for _, r := range s {
		switch {
		case r == '_':
			b.WriteByte('-')
		case r >= 'A' && r <= 'Z':
			if prev >= 'a' && prev <= 'z' {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}
