// Package shimmer renders pulsing loading placeholders shaped like the
// content they stand in for.
//
// Callers describe the real content as an element tree of primitives
// ([Text], [View]) and user components ([Component]). While that content
// is loading, a [Loader] walks the tree, classifies every node, reads each
// node's style, and builds a parallel tree of [Placeholder] blocks and
// containers that follows the original layout. No separate skeleton
// description is needed.
//
//	loader := shimmer.NewLoader()
//	defer loader.Close()
//
//	out := loader.Render(shimmer.LoaderProps{
//	    IsLoading: true,
//	    Children: shimmer.View(shimmer.WithChildren(
//	        shimmer.Text("Title", shimmer.WithStyle(shimmer.Style{"height": 1})),
//	        shimmer.View(shimmer.WithStyle(shimmer.Style{
//	            "width": 10, "height": 3, "backgroundColor": "#aaa",
//	        })),
//	    )),
//	})
//
// All blocks of one render share a single [Pulse], so they fade in
// lockstep. The pulse runs in its own goroutine only while the loader is
// shimmering.
package shimmer
