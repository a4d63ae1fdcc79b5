package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grindlemire/shimmer"
	"github.com/grindlemire/shimmer/internal/demo"
	"github.com/grindlemire/shimmer/internal/treefile"
)

var checkCmd = &cobra.Command{
	Use:   "check <layout.yaml>",
	Short: "Print the placeholder tree synthesized from a layout file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		node, err := treefile.Load(args[0], demo.Registry())
		if err != nil {
			return err
		}
		printTree(cmd.OutOrStdout(), shimmer.Synthesize(node, shimmer.StaticPulse(shimmer.MaxOpacity)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func printTree(w io.Writer, roots []*shimmer.Placeholder) {
	total := 0
	for _, root := range roots {
		root.Walk(func(p *shimmer.Placeholder, depth int) bool {
			indent := strings.Repeat("  ", depth)
			l := p.Layout
			switch p.Kind {
			case shimmer.PlaceholderBlock:
				total++
				fmt.Fprintf(w, "%s%s %s %sx%s\n", indent, p.Kind, p.Key, l.Width, l.Height)
			default:
				stretch := ""
				if p.Stretch {
					stretch = " stretch"
				}
				fmt.Fprintf(w, "%s%s %s%s\n", indent, p.Kind, p.Key, stretch)
			}
			return true
		})
	}
	fmt.Fprintf(w, "%d blocks\n", total)
}
