package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"exprlex/internal/config"
	"exprlex/internal/diagfmt"
	"exprlex/internal/driver"
	"exprlex/internal/observ"
)

// settings is exprlex.toml merged with the flags given on the command line.
type settings struct {
	cfg     config.Config
	path    string // config file used, "" for defaults
	quiet   bool
	timings bool
}

// loadSettings resolves the config file, then lets explicitly set flags win.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	root := cmd.Root().PersistentFlags()

	explicit, err := root.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, path, err := config.Resolve(explicit, ".")
	if err != nil {
		return nil, err
	}

	st := &settings{cfg: cfg, path: path}
	if st.quiet, err = root.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if st.timings, err = root.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}

	if root.Changed("color") {
		st.cfg.Output.Color, _ = root.GetString("color")
	}
	flags := cmd.Flags()
	if flags.Lookup("format") != nil && flags.Changed("format") {
		st.cfg.Output.Format, _ = flags.GetString("format")
	}
	if flags.Lookup("nfc") != nil && flags.Changed("nfc") {
		st.cfg.Lexer.NFC, _ = flags.GetBool("nfc")
	}
	if flags.Lookup("max-input") != nil && flags.Changed("max-input") {
		st.cfg.Lexer.MaxInput, _ = flags.GetInt("max-input")
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		st.cfg.Batch.Jobs, _ = flags.GetInt("jobs")
	}
	if flags.Lookup("ui") != nil && flags.Changed("ui") {
		st.cfg.Batch.UI, _ = flags.GetString("ui")
	}

	st.cfg.Output.Format = strings.ToLower(strings.TrimSpace(st.cfg.Output.Format))
	st.cfg.Output.Color = strings.ToLower(strings.TrimSpace(st.cfg.Output.Color))
	st.cfg.Batch.UI = strings.ToLower(strings.TrimSpace(st.cfg.Batch.UI))
	if err := st.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return st, nil
}

// addLexerFlags registers the flags shared by tokenize and batch.
func addLexerFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	cmd.Flags().Bool("nfc", false, "compose input to Unicode NFC before lexing")
	cmd.Flags().Int("max-input", driver.DefaultMaxInput, "maximum input size in bytes (0 = unlimited)")
}

func (st *settings) useColor(f *os.File) bool {
	switch st.cfg.Output.Color {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

func (st *settings) timer() *observ.Timer {
	if !st.timings {
		return nil
	}
	return observ.NewTimer()
}

func (st *settings) driverOptions(timer *observ.Timer) driver.Options {
	return driver.Options{
		NFC:      st.cfg.Lexer.NFC,
		MaxInput: st.cfg.Lexer.MaxInput,
		Timer:    timer,
	}
}

func (st *settings) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{Color: st.useColor(os.Stderr), ShowNotes: true}
}

func (st *settings) tokenOpts() diagfmt.TokenOpts {
	return diagfmt.TokenOpts{Color: st.useColor(os.Stdout), NameWidth: 32}
}
