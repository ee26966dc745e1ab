package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"exprlex/internal/diag"
	"exprlex/internal/lexer"
	"exprlex/internal/observ"
	"exprlex/internal/source"
	"exprlex/internal/token"
	"exprlex/internal/trace"
)

// DefaultMaxInput is the default input size limit in bytes.
const DefaultMaxInput = 1 << 20

// DemoExpression is tokenized by `exprlex demo`.
const DemoExpression = "1 + 2 - (4 * 5 + -20 - 40) / -60"

// ErrInputTooLarge is returned (wrapped) when an input exceeds Options.MaxInput.
var ErrInputTooLarge = errors.New("input too large")

// Options configures a tokenize run.
type Options struct {
	NFC            bool
	MaxInput       int // bytes, 0 = unlimited
	MaxDiagnostics int
	Timer          *observ.Timer // optional; receives the "lex" phase
}

func (o Options) bagSize() int {
	if o.MaxDiagnostics <= 0 {
		return 8
	}
	return o.MaxDiagnostics
}

// TokenizeResult holds the outcome for one input.
// Err is nil exactly when Tokens is the complete normalized sequence.
type TokenizeResult struct {
	File   *source.File
	Tokens []token.Token
	Bag    *diag.Bag
	Err    error
}

// Failed reports whether tokenization did not produce tokens.
func (r *TokenizeResult) Failed() bool { return r.Err != nil }

// TokenizeExpr tokenizes an expression given on the command line.
func TokenizeExpr(ctx context.Context, expr string, opts Options) *TokenizeResult {
	return TokenizeFile(ctx, source.NewFile("<input>", []byte(expr)), opts)
}

// TokenizeFile runs the lexer over a loaded file, recording diagnostics in the result bag.
func TokenizeFile(ctx context.Context, file *source.File, opts Options) *TokenizeResult {
	res := &TokenizeResult{File: file, Bag: diag.NewBag(opts.bagSize())}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	tr := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx).SpanID

	if err := checkSize(file.Name, len(file.Content), opts.MaxInput); err != nil {
		res.Bag.Add(ioDiagnostic(err))
		res.Err = err
		trace.Fail(tr, trace.ScopePass, "lex", parent, err)
		return res
	}

	if opts.NFC {
		res.File = lexer.ComposeNFC(file)
	}

	span := trace.Begin(tr, trace.ScopePass, "lex", parent).
		WithExtra("file", file.Name).
		WithExtra("bytes", strconv.Itoa(len(res.File.Content)))
	started := time.Now()

	toks, err := lexer.TokenizeFile(res.File, lexer.Options{Reporter: &diag.BagReporter{Bag: res.Bag}})
	opts.Timer.Add("lex", time.Since(started))

	if err != nil {
		res.Err = err
		span.End("failed")
		trace.Fail(tr, trace.ScopePass, "lex", span.ID(), err)
		return res
	}
	res.Tokens = toks
	span.WithExtra("tokens", strconv.Itoa(len(toks))).End("")
	return res
}

// LoadFailed wraps an error from LoadFile or ReadInput into a failed result,
// so the CLI can render it like any other diagnostic.
func LoadFailed(name string, err error) *TokenizeResult {
	res := &TokenizeResult{File: source.NewFile(name, nil), Bag: diag.NewBag(1), Err: err}
	res.Bag.Add(ioDiagnostic(err))
	return res
}

// ioDiagnostic has an empty span: the error concerns the input as a whole.
func ioDiagnostic(err error) diag.Diagnostic {
	code := diag.IOLoadFileError
	if errors.Is(err, ErrInputTooLarge) {
		code = diag.IOInputTooLarge
	}
	return diag.NewError(code, source.Span{}, err.Error())
}

// LoadFile reads path from disk, refusing files above maxInput bytes.
func LoadFile(path string, maxInput int) (*source.File, error) {
	if maxInput > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		if err := checkSize(path, int(info.Size()), maxInput); err != nil {
			return nil, err
		}
	}
	file, err := source.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return file, nil
}

// ReadInput reads at most maxInput bytes from r (stdin in the CLI).
func ReadInput(name string, r io.Reader, maxInput int) (*source.File, error) {
	if maxInput > 0 {
		r = io.LimitReader(r, int64(maxInput)+1)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := checkSize(name, len(content), maxInput); err != nil {
		return nil, err
	}
	return source.FromBytes(name, content), nil
}

func checkSize(name string, n, limit int) error {
	if limit > 0 && n > limit {
		return fmt.Errorf("%w: %s exceeds the %d byte limit", ErrInputTooLarge, name, limit)
	}
	return nil
}
