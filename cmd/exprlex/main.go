package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"exprlex/internal/version"
)

// errReported signals that diagnostics were already printed; main only sets the exit status.
var errReported = errors.New("diagnostics reported")

var rootCmd = &cobra.Command{
	Use:   "exprlex",
	Short: "Arithmetic expression tokenizer",
	Long: `exprlex splits arithmetic expressions into literal, operator and
variable tokens, folding unary minus into literals where it applies.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupTracing,
	PersistentPostRun: func(cmd *cobra.Command, _ []string) { closeTracing(cmd) },
}

// main registers subcommands and persistent flags, then executes the root command.
// Any error exits with status 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)

	addPersistentFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		closeTracing(rootCmd)
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// addPersistentFlags registers the global flags on root.
func addPersistentFlags(root *cobra.Command) {
	root.PersistentFlags().String("config", "", "path to exprlex.toml (default: search upwards from the working directory)")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	root.PersistentFlags().Bool("timings", false, "show timing information")
	root.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	root.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	root.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
