// Package main runs the shimmer demo.
//
// Usage:
//
//	shimmer-demo [flags]              Run the interactive demo
//	shimmer-demo --static             Print one loading frame and exit
//	shimmer-demo check layout.yaml    Print the placeholder tree of a layout
package main

import "github.com/grindlemire/shimmer/cmd/shimmer-demo/cmd"

func main() {
	cmd.Execute()
}
