package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"exprlex/internal/trace"
)

// setupTracing inspects trace-related flags and attaches a tracer to the command context.
func setupTracing(cmd *cobra.Command, _ []string) error {
	root := cmd.Root()

	traceOutput, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := root.PersistentFlags().GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	// --trace без уровня включает phase
	if traceOutput != "" && !root.PersistentFlags().Changed("trace-level") {
		level = trace.LevelPhase
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(ctx, trace.Nop))
		return nil
	}

	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Format:     format,
		OutputPath: traceOutput,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}

	ctx = trace.WithTracer(ctx, tracer)
	cmd.SetContext(ctx)
	root.SetContext(ctx)
	return nil
}

// closeTracing flushes and closes the tracer.
// PersistentPostRun is skipped on error, so main calls it as well.
func closeTracing(cmd *cobra.Command) {
	ctx := cmd.Context()
	if ctx == nil {
		return
	}
	tracer := trace.FromContext(ctx)
	if tracer == trace.Nop || !tracer.Enabled() {
		return
	}
	if err := tracer.Flush(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
	}
	if err := tracer.Close(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
	}
	cmd.SetContext(trace.WithTracer(ctx, trace.Nop))
}

// beginCommand opens the driver-scope span for a subcommand and
// returns a context that carries it.
func beginCommand(cmd *cobra.Command, name string) (context.Context, *trace.Span) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	sp := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, name, 0)
	return trace.WithSpanContext(ctx, trace.SpanContext{SpanID: sp.ID()}), sp
}
