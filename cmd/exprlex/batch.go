package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"exprlex/internal/diagfmt"
	"exprlex/internal/driver"
	"exprlex/internal/source"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] file",
	Short: "Tokenize every line of a file as an independent expression",
	Long: `Batch tokenizes each non-blank line of file (- for stdin) in parallel.
Results are printed in input order; failing lines are reported individually
and make the command exit with status 1.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	addLexerFlags(batchCmd)
	batchCmd.Flags().IntP("jobs", "j", 0, "parallel workers (0 = GOMAXPROCS)")
	batchCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	mode, err := readUIMode(st.cfg.Batch.UI)
	if err != nil {
		return err
	}

	ctx, span := beginCommand(cmd, "batch")
	defer span.End("")
	timer := st.timer()

	readIdx := timer.Begin("read")
	file, err := openInput(args[0], cmd.InOrStdin())
	timer.End(readIdx, "")
	if err != nil {
		return err
	}
	items := driver.SplitBatch(file)

	// max_input проверяется для каждой строки отдельно
	opts := st.driverOptions(timer)

	var results []driver.BatchResult
	if shouldUseTUI(mode) && len(items) > 0 {
		results, err = runBatchWithUI(ctx, file.Name, items, opts, st.cfg.Batch.Jobs)
	} else {
		results, err = driver.TokenizeBatch(ctx, items, opts, st.cfg.Batch.Jobs, nil)
	}
	if err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}

	entries := make([]diagfmt.BatchEntry, len(results))
	failed := 0
	for i, r := range results {
		entries[i] = diagfmt.BatchEntry{
			Line:   r.Item.Line,
			File:   r.Result.File,
			Tokens: r.Result.Tokens,
			Bag:    r.Result.Bag,
		}
		if r.Result.Failed() {
			r.Result.Bag.Sort()
			failed++
		}
	}

	renderIdx := timer.Begin("render")
	err = renderBatch(cmd.OutOrStdout(), cmd.ErrOrStderr(), entries, st)
	timer.End(renderIdx, st.cfg.Output.Format)
	if err != nil {
		return err
	}

	if !st.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d expressions, %d failed\n", len(entries), failed)
	}
	printTimings(cmd.ErrOrStderr(), timer)
	if failed > 0 {
		return errReported
	}
	return nil
}

func renderBatch(out, errOut io.Writer, entries []diagfmt.BatchEntry, st *settings) error {
	switch st.cfg.Output.Format {
	case "json":
		return diagfmt.FormatBatchJSON(out, entries)
	case "msgpack":
		return diagfmt.FormatBatchMsgpack(out, entries)
	default:
		return diagfmt.FormatBatchPretty(out, errOut, entries, st.tokenOpts(), st.prettyOpts())
	}
}

// openInput reads a batch file; "-" reads stdin.
func openInput(path string, stdin io.Reader) (*source.File, error) {
	if path == "-" {
		return driver.ReadInput("<stdin>", stdin, 0)
	}
	file, err := source.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return file, nil
}

// runBatchWithUI runs the batch while a progress view renders on stderr.
func runBatchWithUI(ctx context.Context, title string, items []driver.BatchItem, opts driver.Options, jobs int) ([]driver.BatchResult, error) {
	return runWithProgress(ctx, os.Stderr, title, items, func(sink driver.ProgressSink) ([]driver.BatchResult, error) {
		return driver.TokenizeBatch(ctx, items, opts, jobs, sink)
	})
}
