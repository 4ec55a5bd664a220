package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errorColor = color.New(color.FgRed, color.Bold)

// newRootCmd builds the command tree. Options are shared by every
// subcommand through the persistent flags.
func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "bigint",
		Short: "Arbitrary precision integer calculator",
		Long: `bigint evaluates integer expressions of any size.

Negative operands look like flags to the parser, separate them with "--":

  bigint eval -- -101 / 10`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&opts.cfg.Color, "color", "auto", "colorize output (auto|on|off)")

	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newPowCmd())
	rootCmd.AddCommand(newNegCmd())
	rootCmd.AddCommand(newStepCmd("inc", "Add one", opts))
	rootCmd.AddCommand(newStepCmd("dec", "Subtract one", opts))
	rootCmd.AddCommand(newBitsCmd())
	rootCmd.AddCommand(newEncodeCmd())
	rootCmd.AddCommand(newDecodeCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
