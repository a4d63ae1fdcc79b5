package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/grindlemire/shimmer/internal/config"
	"github.com/grindlemire/shimmer/internal/debug"
	"github.com/grindlemire/shimmer/internal/demo"
)

var cfg = config.FromEnv()

var rootCmd = &cobra.Command{
	Use:   "shimmer-demo",
	Short: "Pulsing loading placeholders shaped like the content they replace",
	Long: `shimmer-demo shows a list of items that flips between loading and
loaded. While loading, every item is replaced by placeholder blocks
synthesized from the item's own layout.

Keys: space toggles loading, r switches right-to-left, c shows a custom
loading layout, q quits.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return debug.Init(cfg.DebugLog)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		debug.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := demo.LoadItem(cfg.LayoutPath)
		if err != nil {
			return err
		}

		if cfg.Static {
			fmt.Fprintln(cmd.OutOrStdout(), demo.RenderStatic(cfg, item))
			return nil
		}

		app := demo.NewApp(cfg, item)
		defer app.Close()

		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running demo: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, demo.ShowError(err))
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.LayoutPath, "layout", cfg.LayoutPath, "YAML item layout (default: bundled layout)")
	flags.StringVar(&cfg.DebugLog, "debug-log", cfg.DebugLog, "write debug logs to this file")

	local := rootCmd.Flags()
	local.DurationVar(&cfg.Pulse, "pulse", cfg.Pulse, "half-period of the pulse (0 uses the default)")
	local.DurationVar(&cfg.Toggle, "toggle", cfg.Toggle, "interval between loading and loaded (0 disables)")
	local.IntVar(&cfg.Items, "items", cfg.Items, "number of list items")
	local.BoolVar(&cfg.RightToLeft, "rtl", false, "start in right-to-left mode")
	local.BoolVar(&cfg.Custom, "custom", false, "start with the custom loading layout")
	local.BoolVar(&cfg.Static, "static", false, "print one loading frame and exit")
	local.IntVar(&cfg.Width, "width", 0, "columns for --static output")
	local.StringVar(&cfg.Backdrop, "backdrop", cfg.Backdrop, "color blocks fade into")
}
