package shimmer

import "testing"

func TestResolve_Flattening(t *testing.T) {
	type tc struct {
		decl     any
		expected ResolvedStyle
	}

	tests := map[string]tc{
		"nil resolves to all unset": {
			decl:     nil,
			expected: ResolvedStyle{},
		},
		"single mapping": {
			decl: Style{"width": 50, "height": "50%", "backgroundColor": "red"},
			expected: ResolvedStyle{
				Width:           Fixed(50),
				Height:          Percent(50),
				BackgroundColor: "red",
			},
		},
		"plain map": {
			decl:     map[string]any{"flex": 1},
			expected: ResolvedStyle{Flex: Fixed(1)},
		},
		"later entries win": {
			decl:     []Style{{"width": 10, "height": 2}, {"width": 20}},
			expected: ResolvedStyle{Width: Fixed(20), Height: Fixed(2)},
		},
		"nested sequences flatten in order": {
			decl:     []any{Style{"gap": 1}, []any{Style{"gap": 2}, nil, false}, Style{"borderRadius": 3}},
			expected: ResolvedStyle{Gap: Fixed(2), BorderRadius: Fixed(3)},
		},
		"unsupported entries are skipped": {
			decl:     []any{Style{"height": 4}, "bogus", 12, true},
			expected: ResolvedStyle{Height: Fixed(4)},
		},
		"invalid values are unset": {
			decl:     Style{"width": "wide", "height": true, "flexDirection": 3, "backgroundColor": 255},
			expected: ResolvedStyle{},
		},
		"unknown keywords are unset": {
			decl:     Style{"flexDirection": "diagonal", "alignItems": "top", "justifyContent": "middle"},
			expected: ResolvedStyle{},
		},
		"layout keywords": {
			decl: Style{
				"flexDirection":  "row",
				"alignItems":     "center",
				"justifyContent": "space-between",
				"direction":      "rtl",
			},
			expected: ResolvedStyle{
				FlexDirection:  Row,
				AlignItems:     AlignCenter,
				JustifyContent: JustifySpaceBetween,
				Direction:      RTL,
			},
		},
		"zero resolves as fixed zero": {
			decl:     Style{"width": 0, "flex": 0},
			expected: ResolvedStyle{Width: Fixed(0), Flex: Fixed(0)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Resolve(tt.decl); got != tt.expected {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestResolve_EdgeShorthands(t *testing.T) {
	type tc struct {
		decl     Style
		expected Edges
	}

	tests := map[string]tc{
		"all sides": {
			decl:     Style{"margin": 2},
			expected: EdgeAll(Fixed(2)),
		},
		"axis overrides all": {
			decl:     Style{"margin": 2, "marginVertical": 1},
			expected: EdgeTRBL(Fixed(1), Fixed(2), Fixed(1), Fixed(2)),
		},
		"side overrides axis": {
			decl:     Style{"marginHorizontal": 3, "marginLeft": 0},
			expected: EdgeTRBL(Unset(), Fixed(3), Unset(), Fixed(0)),
		},
		"single side": {
			decl:     Style{"marginBottom": 8},
			expected: Edges{Bottom: Fixed(8)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Resolve(tt.decl)
			if got.Margin != tt.expected {
				t.Errorf("Margin = %+v, want %+v", got.Margin, tt.expected)
			}
			if got.Padding.IsSet() {
				t.Errorf("Padding = %+v, want unset", got.Padding)
			}
		})
	}
}

func TestResolve_Padding(t *testing.T) {
	got := Resolve(Style{"padding": 1, "paddingTop": 3})
	want := EdgeTRBL(Fixed(3), Fixed(1), Fixed(1), Fixed(1))
	if got.Padding != want {
		t.Errorf("Padding = %+v, want %+v", got.Padding, want)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	decl := []any{Style{"width": "90%", "margin": 1}, Style{"height": 2}}
	first := Resolve(decl)
	second := Resolve(decl)
	if first != second {
		t.Errorf("Resolve() is not deterministic: %+v != %+v", first, second)
	}
}

func TestResolvedStyle_Predicates(t *testing.T) {
	type tc struct {
		style         ResolvedStyle
		hasDimensions bool
		hasBgAndSize  bool
	}

	tests := map[string]tc{
		"empty": {
			style: ResolvedStyle{},
		},
		"flex only": {
			style:         ResolvedStyle{Flex: Fixed(1)},
			hasDimensions: true,
		},
		"background without size": {
			style: ResolvedStyle{BackgroundColor: "#aaa"},
		},
		"background with height": {
			style:         ResolvedStyle{BackgroundColor: "#aaa", Height: Fixed(3)},
			hasDimensions: true,
			hasBgAndSize:  true,
		},
		"zero width and height": {
			style: ResolvedStyle{BackgroundColor: "#aaa", Width: Fixed(0), Height: Fixed(0)},
		},
		"zero flex": {
			style: ResolvedStyle{Flex: Fixed(0)},
		},
		"zero percent is a size": {
			style:         ResolvedStyle{BackgroundColor: "#aaa", Width: Percent(0)},
			hasDimensions: true,
			hasBgAndSize:  true,
		},
		"background with flex only": {
			style:         ResolvedStyle{BackgroundColor: "#aaa", Flex: Fixed(1)},
			hasDimensions: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.style.HasDimensions(); got != tt.hasDimensions {
				t.Errorf("HasDimensions() = %v, want %v", got, tt.hasDimensions)
			}
			if got := tt.style.HasBackgroundAndSize(); got != tt.hasBgAndSize {
				t.Errorf("HasBackgroundAndSize() = %v, want %v", got, tt.hasBgAndSize)
			}
		})
	}
}
