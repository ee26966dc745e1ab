package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"exprlex/internal/driver"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Tokenize the built-in example expression",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	ctx, span := beginCommand(cmd, "demo")
	defer span.End("")
	timer := st.timer()

	res := driver.TokenizeExpr(ctx, driver.DemoExpression, st.driverOptions(timer))
	if !st.quiet && st.cfg.Output.Format == "pretty" {
		fmt.Fprintf(cmd.OutOrStdout(), "expression: %s\n", driver.DemoExpression)
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
