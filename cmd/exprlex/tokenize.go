package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"exprlex/internal/diagfmt"
	"exprlex/internal/driver"
	"exprlex/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [expression]",
	Short: "Tokenize an arithmetic expression",
	Long: `Tokenize splits an expression into Literal, Operator and Variable tokens.
The expression is taken from the argument, from --file, or from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().StringP("file", "f", "", "read the expression from a file")
	addLexerFlags(tokenizeCmd)
}

func runTokenize(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	filePath, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}
	if filePath != "" && len(args) > 0 {
		return fmt.Errorf("give either an expression or --file, not both")
	}

	ctx, span := beginCommand(cmd, "tokenize")
	defer span.End("")
	timer := st.timer()

	// Чтение входа
	readIdx := timer.Begin("read")
	var file *source.File
	name := "<stdin>"
	switch {
	case len(args) == 1:
		file = source.NewFile("<input>", []byte(args[0]))
	case filePath != "":
		name = filePath
		file, err = driver.LoadFile(filePath, st.cfg.Lexer.MaxInput)
	default:
		file, err = driver.ReadInput(name, cmd.InOrStdin(), st.cfg.Lexer.MaxInput)
	}
	timer.End(readIdx, "")

	var res *driver.TokenizeResult
	if err != nil {
		res = driver.LoadFailed(name, err)
	} else {
		res = driver.TokenizeFile(ctx, file, st.driverOptions(timer))
	}

	renderIdx := timer.Begin("render")
	err = renderTokenizeResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), res, st)
	timer.End(renderIdx, st.cfg.Output.Format)
	if err != nil {
		return err
	}

	printTimings(cmd.ErrOrStderr(), timer)
	if res.Failed() {
		return errReported
	}
	return nil
}

// renderTokenizeResult prints tokens to out, or only the diagnostics to errOut on failure.
func renderTokenizeResult(out, errOut io.Writer, res *driver.TokenizeResult, st *settings) error {
	if res.Failed() {
		res.Bag.Sort()
		if st.cfg.Output.Format == "json" {
			return diagfmt.JSON(errOut, res.Bag, res.File, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
		}
		diagfmt.Pretty(errOut, res.Bag, res.File, st.prettyOpts())
		return nil
	}

	switch st.cfg.Output.Format {
	case "json":
		return diagfmt.FormatTokensJSON(out, res.Tokens)
	case "msgpack":
		return diagfmt.FormatTokensMsgpack(out, res.Tokens)
	default:
		return diagfmt.FormatTokensPretty(out, res.Tokens, res.File, st.tokenOpts())
	}
}
