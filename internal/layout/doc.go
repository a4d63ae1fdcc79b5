// Package layout holds the value types shared by style resolution and
// terminal painting: declared dimensions ([Value]), four-sided spacing
// ([Edges]) and the flex keywords ([Direction], [Justify], [Align],
// [TextDirection]).
//
// Every type has an explicit unset zero value so a resolved style can tell
// "declared as zero" apart from "never declared".
// Types are re-exported through the root shimmer package for public consumption.
package layout
