// Command numlab runs the demonstration-example catalog. Every example is
// independent; a failure in one is reported and never stops the rest.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	_ "numlab/examples"
	"numlab/pkg/runner"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "numlab",
		Short: "Runnable scientific-computing demonstration examples",
		Long: `numlab is a catalog of small, independent demonstration examples:
array construction, delimited-table round trips, aggregate statistics,
curve fitting, signal transforms, and rendered figures. Each example
builds its own dataset, optionally writes and re-reads a local file,
computes a derived value, and prints labeled results.`,
	}

	rootCmd.AddCommand(newListCmd(), newRunCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the example catalog",
		Run: func(cmd *cobra.Command, args []string) {
			group := ""
			for _, ex := range runner.All() {
				if ex.Group != group {
					group = ex.Group
					fmt.Printf("%s:\n", group)
				}
				fmt.Printf("  %-24s %s\n", ex.Name, ex.Title)
			}
		},
	}
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [example|group ...]",
		Short: "Run examples (all of them by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := runner.Load(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				cfg.Output, _ = cmd.Flags().GetString("output")
			}
			if cmd.Flags().Changed("plots") {
				cfg.Plots, _ = cmd.Flags().GetBool("plots")
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
			}

			examples := runner.All()
			if len(args) > 0 {
				examples, err = runner.Find(args...)
				if err != nil {
					return err
				}
			}

			if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			ctx := &runner.Context{
				Out:       os.Stdout,
				Dir:       cfg.Output,
				Plots:     cfg.Plots,
				Delimiter: rune(cfg.Delimiter[0]),
				Log:       runner.NewLogger(cfg.LogLevel, os.Stderr),
			}
			outcomes := runner.Run(ctx, examples)

			failed := 0
			fmt.Println("\nsummary:")
			for _, o := range outcomes {
				if o.Err != nil {
					failed++
					fmt.Printf("  FAIL %-24s %v\n", o.Name, o.Err)
					continue
				}
				fmt.Printf("  ok   %-24s %s\n", o.Name, o.Elapsed.Round(100*time.Microsecond))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d examples failed", failed, len(outcomes))
			}
			return nil
		},
	}
	cmd.Flags().String("config", "", "Path to YAML config file")
	cmd.Flags().String("output", "out", "Directory for example files and figures")
	cmd.Flags().Bool("plots", true, "Render figure examples")
	cmd.Flags().String("log-level", "info", "Log verbosity: info or debug")
	return cmd
}
