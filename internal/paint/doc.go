// Package paint draws shimmer element and placeholder trees as terminal
// text using lipgloss.
//
// Painting is a single top-down pass. Every node is given the number of
// columns available to it and returns a rendered block; containers join
// their children's blocks along their main axis. Sizes are in cells:
// fixed values are columns (or rows), percentages are of the available
// columns.
package paint
