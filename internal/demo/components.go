package demo

import (
	_ "embed"
	"strconv"

	"github.com/grindlemire/shimmer"
	"github.com/grindlemire/shimmer/internal/treefile"
)

//go:embed layout.yaml
var defaultLayout []byte

var rowText = shimmer.Style{"height": 1, "backgroundColor": "#eee"}

// Registry returns the components a layout file may reference.
func Registry() treefile.Registry {
	return treefile.Registry{
		"Avatar":  Avatar,
		"Profile": NewProfile,
	}
}

// Avatar is a round colored image stand-in.
func Avatar(p shimmer.Props) shimmer.Node {
	w, h := 5, 3
	if size := p.Int("size"); size > 0 {
		w, h = size, size
	}
	return shimmer.View(shimmer.WithStyle(shimmer.Style{
		"width":           w,
		"height":          h,
		"borderRadius":    h,
		"backgroundColor": "red",
	}))
}

// Profile is a stateful component holding the text shown in a row.
type Profile struct {
	name string
}

// NewProfile builds a Profile from props.
func NewProfile(p shimmer.Props) shimmer.Stateful {
	return &Profile{name: p.String("name")}
}

// Render implements shimmer.Stateful.
func (p *Profile) Render() shimmer.Node {
	return shimmer.Text(p.name, shimmer.WithStyle(rowText))
}

// Item wraps one copy of the item layout passed in the "layout" prop.
func Item(p shimmer.Props) shimmer.Node {
	return shimmer.View(
		shimmer.WithKey("item-"+strconv.Itoa(p.Int("index"))),
		shimmer.WithChildren(p["layout"]),
	)
}

// CustomShimmer is the hand-written layout shown in custom mode.
func CustomShimmer() shimmer.Node {
	return shimmer.View(
		shimmer.WithStyle(shimmer.Style{"padding": 1, "backgroundColor": "#ddd"}),
		shimmer.WithChildren(
			shimmer.View(shimmer.WithChildren(shimmer.Text("✨ Custom Shimmer Loading..."))),
			shimmer.View(shimmer.WithStyle(shimmer.Style{
				"height":          2,
				"width":           15,
				"backgroundColor": "#bbb",
				"marginTop":       1,
			})),
		),
	)
}

// LoadItem returns the item layout from path, or the bundled one when path
// is empty.
func LoadItem(path string) (shimmer.Node, error) {
	if path == "" {
		return treefile.Parse(defaultLayout, Registry())
	}
	return treefile.Load(path, Registry())
}

// List builds the demo content: n copies of item in a column whose
// writing direction follows rtl.
func List(item shimmer.Node, n int, rtl bool) shimmer.Node {
	direction := "ltr"
	if rtl {
		direction = "rtl"
	}

	items := make([]shimmer.Node, n)
	for i := range items {
		items[i] = shimmer.Component(Item, shimmer.Props{"index": i, "layout": item})
	}
	return shimmer.View(
		shimmer.WithStyle(shimmer.Style{"gap": 1, "direction": direction}),
		shimmer.WithChildren(items...),
	)
}
