package shimmer

import (
	"reflect"
	"testing"
)

func TestText_Defaults(t *testing.T) {
	e := Text("hello")

	if e.Type() != ElementText {
		t.Errorf("Type() = %v, want %v", e.Type(), ElementText)
	}
	if e.Content() != "hello" {
		t.Errorf("Content() = %q, want %q", e.Content(), "hello")
	}
	if e.Key() != "" {
		t.Errorf("Key() = %q, want empty", e.Key())
	}
	if e.Style() != nil {
		t.Errorf("Style() = %v, want nil", e.Style())
	}
	if len(e.Children()) != 0 {
		t.Errorf("Text() should have no children, got %d", len(e.Children()))
	}
}

func TestView_WithOptions(t *testing.T) {
	type tc struct {
		opts  []Option
		check func(*Element) bool
	}

	child := Text("child")

	tests := map[string]tc{
		"WithKey": {
			opts:  []Option{WithKey("row-1")},
			check: func(e *Element) bool { return e.Key() == "row-1" },
		},
		"WithStyle single declaration is stored as is": {
			opts: []Option{WithStyle(Style{"width": 4})},
			check: func(e *Element) bool {
				return reflect.DeepEqual(e.Style(), Style{"width": 4})
			},
		},
		"WithStyle several declarations become a composite": {
			opts: []Option{WithStyle(Style{"width": 4}, Style{"height": 2})},
			check: func(e *Element) bool {
				return reflect.DeepEqual(e.Style(), []any{Style{"width": 4}, Style{"height": 2}})
			},
		},
		"WithStyle no declarations clears": {
			opts:  []Option{WithStyle(Style{"width": 4}), WithStyle()},
			check: func(e *Element) bool { return e.Style() == nil },
		},
		"WithChildren appends": {
			opts: []Option{WithChildren(child), WithChildren("tail")},
			check: func(e *Element) bool {
				return len(e.Children()) == 2 && e.Children()[0] == Node(child) && e.Children()[1] == "tail"
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := View(tt.opts...)
			if e.Type() != ElementView {
				t.Fatalf("Type() = %v, want %v", e.Type(), ElementView)
			}
			if !tt.check(e) {
				t.Errorf("option check failed for %s", name)
			}
		})
	}
}

func TestElementType_String(t *testing.T) {
	if ElementText.String() != "Text" || ElementView.String() != "View" {
		t.Errorf("unexpected names %q, %q", ElementText, ElementView)
	}
	if ElementType(9).String() != "Unknown" {
		t.Errorf("ElementType(9).String() = %q, want Unknown", ElementType(9))
	}
}

func TestSequence(t *testing.T) {
	type tc struct {
		node  Node
		isSeq bool
		items int
	}

	tests := map[string]tc{
		"nil":            {node: nil},
		"element":        {node: Text("a")},
		"string":         {node: "abc"},
		"bytes":          {node: []byte("abc")},
		"node slice":     {node: []Node{Text("a"), nil}, isSeq: true, items: 2},
		"element slice":  {node: []*Element{Text("a"), Text("b"), Text("c")}, isSeq: true, items: 3},
		"string slice":   {node: []string{"a"}, isSeq: true, items: 1},
		"element array":  {node: [2]*Element{Text("a"), Text("b")}, isSeq: true, items: 2},
		"empty sequence": {node: []Node{}, isSeq: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			items, ok := Sequence(tt.node)
			if ok != tt.isSeq {
				t.Fatalf("Sequence() ok = %v, want %v", ok, tt.isSeq)
			}
			if len(items) != tt.items {
				t.Errorf("Sequence() items = %d, want %d", len(items), tt.items)
			}
		})
	}
}
