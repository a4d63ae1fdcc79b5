package layout

import (
	"errors"
	"math"
	"testing"
)

func TestValue_Constructors(t *testing.T) {
	type tc struct {
		value  Value
		isSet  bool
		isAuto bool
		unit   Unit
		amount float64
	}

	tests := map[string]tc{
		"Unset": {
			value:  Unset(),
			isSet:  false,
			isAuto: false,
			unit:   UnitUnset,
			amount: 0,
		},
		"Auto": {
			value:  Auto(),
			isSet:  true,
			isAuto: true,
			unit:   UnitAuto,
			amount: 0,
		},
		"Fixed": {
			value:  Fixed(100),
			isSet:  true,
			isAuto: false,
			unit:   UnitFixed,
			amount: 100,
		},
		"Percent": {
			value:  Percent(50),
			isSet:  true,
			isAuto: false,
			unit:   UnitPercent,
			amount: 50,
		},
		"zero value is unset": {
			value:  Value{},
			isSet:  false,
			isAuto: false,
			unit:   UnitUnset,
			amount: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.IsSet(); got != tt.isSet {
				t.Errorf("IsSet() = %v, want %v", got, tt.isSet)
			}
			if got := tt.value.IsAuto(); got != tt.isAuto {
				t.Errorf("IsAuto() = %v, want %v", got, tt.isAuto)
			}
			if tt.value.Unit != tt.unit {
				t.Errorf("Unit = %v, want %v", tt.value.Unit, tt.unit)
			}
			if tt.value.Amount != tt.amount {
				t.Errorf("Amount = %v, want %v", tt.value.Amount, tt.amount)
			}
		})
	}
}

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value     Value
		available int
		fallback  int
		expected  int
	}

	tests := map[string]tc{
		"fixed ignores available": {
			value:     Fixed(50),
			available: 100,
			fallback:  999,
			expected:  50,
		},
		"fixed fraction truncates": {
			value:     Fixed(2.7),
			available: 100,
			fallback:  0,
			expected:  2,
		},
		"50 percent of 100": {
			value:     Percent(50),
			available: 100,
			fallback:  0,
			expected:  50,
		},
		"90 percent of 40": {
			value:     Percent(90),
			available: 40,
			fallback:  0,
			expected:  36,
		},
		"percent of zero available": {
			value:     Percent(50),
			available: 0,
			fallback:  50,
			expected:  0,
		},
		"auto returns fallback": {
			value:     Auto(),
			available: 100,
			fallback:  42,
			expected:  42,
		},
		"unset returns fallback": {
			value:     Unset(),
			available: 100,
			fallback:  7,
			expected:  7,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.value.Resolve(tt.available, tt.fallback)
			if got != tt.expected {
				t.Errorf("Resolve(%d, %d) = %d, want %d",
					tt.available, tt.fallback, got, tt.expected)
			}
		})
	}
}

func TestValue_Or(t *testing.T) {
	if got := Unset().Or(Percent(90)); got != Percent(90) {
		t.Errorf("Unset().Or(90%%) = %v, want 90%%", got)
	}
	if got := Fixed(0).Or(Percent(90)); got != Fixed(0) {
		t.Errorf("Fixed(0).Or(90%%) = %v, want 0", got)
	}
}

func TestValue_NonZero(t *testing.T) {
	type tc struct {
		value    Value
		nonZero  bool
		expected Value
	}

	fallback := Fixed(7)
	tests := map[string]tc{
		"unset":        {value: Unset(), expected: fallback},
		"fixed zero":   {value: Fixed(0), expected: fallback},
		"fixed":        {value: Fixed(3), nonZero: true, expected: Fixed(3)},
		"zero percent": {value: Percent(0), nonZero: true, expected: Percent(0)},
		"auto":         {value: Auto(), nonZero: true, expected: Auto()},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.IsNonZero(); got != tt.nonZero {
				t.Errorf("IsNonZero() = %v, want %v", got, tt.nonZero)
			}
			if got := tt.value.OrNonZero(fallback); got != tt.expected {
				t.Errorf("OrNonZero() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestValue_String(t *testing.T) {
	type tc struct {
		value    Value
		expected string
	}

	tests := map[string]tc{
		"unset":   {value: Unset(), expected: "unset"},
		"auto":    {value: Auto(), expected: "auto"},
		"fixed":   {value: Fixed(18), expected: "18"},
		"float":   {value: Fixed(1.5), expected: "1.5"},
		"percent": {value: Percent(90), expected: "90%"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	type tc struct {
		raw      any
		expected Value
		wantErr  bool
	}

	tests := map[string]tc{
		"nil is unset":          {raw: nil, expected: Unset()},
		"int":                   {raw: 30, expected: Fixed(30)},
		"int64":                 {raw: int64(12), expected: Fixed(12)},
		"uint8":                 {raw: uint8(4), expected: Fixed(4)},
		"float64":               {raw: 1.5, expected: Fixed(1.5)},
		"float32":               {raw: float32(2), expected: Fixed(2)},
		"zero is set":           {raw: 0, expected: Fixed(0)},
		"percent string":        {raw: "90%", expected: Percent(90)},
		"percent with spaces":   {raw: " 50 % ", expected: Percent(50)},
		"numeric string":        {raw: "18", expected: Fixed(18)},
		"auto":                  {raw: "auto", expected: Auto()},
		"AUTO":                  {raw: "AUTO", expected: Auto()},
		"value passes through":  {raw: Percent(25), expected: Percent(25)},
		"empty string":          {raw: "", wantErr: true},
		"garbage string":        {raw: "wide", wantErr: true},
		"garbage percent":       {raw: "x%", wantErr: true},
		"bool":                  {raw: true, wantErr: true},
		"map":                   {raw: map[string]any{}, wantErr: true},
		"NaN":                   {raw: math.NaN(), wantErr: true},
		"positive infinity":     {raw: math.Inf(1), wantErr: true},
		"infinite numeric text": {raw: "Inf", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseValue(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidValue) {
					t.Fatalf("ParseValue(%v) error = %v, want ErrInvalidValue", tt.raw, err)
				}
				if got.IsSet() {
					t.Errorf("ParseValue(%v) = %v, want unset on error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseValue(%v) unexpected error: %v", tt.raw, err)
			}
			if got != tt.expected {
				t.Errorf("ParseValue(%v) = %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}
