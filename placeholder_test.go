package shimmer

import "testing"

func TestPlaceholderKind_String(t *testing.T) {
	type tc struct {
		kind     PlaceholderKind
		expected string
	}

	tests := map[string]tc{
		"block":     {kind: PlaceholderBlock, expected: "solid-block"},
		"container": {kind: PlaceholderContainer, expected: "container"},
		"zero":      {kind: 0, expected: "empty"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPlaceholder_Opacity(t *testing.T) {
	block := &Placeholder{Kind: PlaceholderBlock, Pulse: StaticPulse(0.3)}
	if got := block.Opacity(); got != 0.3 {
		t.Errorf("Opacity() = %v, want 0.3", got)
	}
	container := &Placeholder{Kind: PlaceholderContainer}
	if got := container.Opacity(); got != 1 {
		t.Errorf("Opacity() without pulse = %v, want 1", got)
	}
}

func TestPlaceholder_Walk(t *testing.T) {
	tree := &Placeholder{Kind: PlaceholderContainer, Key: "root", Children: []*Placeholder{
		{Kind: PlaceholderBlock, Key: "a"},
		{Kind: PlaceholderContainer, Key: "b", Children: []*Placeholder{
			{Kind: PlaceholderBlock, Key: "c"},
		}},
	}}

	var order []string
	var depths []int
	tree.Walk(func(p *Placeholder, depth int) bool {
		order = append(order, p.Key)
		depths = append(depths, depth)
		return true
	})

	want := []string{"root", "a", "b", "c"}
	wantDepths := []int{0, 1, 1, 2}
	for i := range want {
		if order[i] != want[i] || depths[i] != wantDepths[i] {
			t.Fatalf("visit %d = %s@%d, want %s@%d", i, order[i], depths[i], want[i], wantDepths[i])
		}
	}

	if got := tree.Blocks(); got != 2 {
		t.Errorf("Blocks() = %d, want 2", got)
	}

	visited := 0
	tree.Walk(func(p *Placeholder, depth int) bool {
		visited++
		return p.Key != "b"
	})
	if visited != 3 {
		t.Errorf("visited with pruning at b = %d, want 3", visited)
	}

	visited = 0
	tree.Walk(func(p *Placeholder, depth int) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Errorf("visited with pruning at root = %d, want 1", visited)
	}
}

func TestPlaceholder_WalkNil(t *testing.T) {
	var p *Placeholder
	p.Walk(func(*Placeholder, int) bool {
		t.Fatal("nil placeholder should not be visited")
		return true
	})
	if p.Blocks() != 0 {
		t.Error("nil placeholder has no blocks")
	}
}
