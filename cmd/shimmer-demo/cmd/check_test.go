package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/grindlemire/shimmer"
)

func TestPrintTree(t *testing.T) {
	node := shimmer.View(shimmer.WithChildren(
		shimmer.Text("a", shimmer.WithStyle(shimmer.Style{"height": 2})),
		shimmer.View(shimmer.WithStyle(shimmer.Style{"width": 5, "height": 3, "backgroundColor": "red"})),
	))

	var buf bytes.Buffer
	printTree(&buf, shimmer.Synthesize(node, shimmer.StaticPulse(1)))

	want := strings.Join([]string{
		"container shimmer-0 stretch",
		"  solid-block shimmer-0 90%x2",
		"  solid-block shimmer-1 5x3",
		"2 blocks",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("printTree() =\n%s\nwant\n%s", got, want)
	}
}
