package token

import (
	"fmt"
	"math/big"

	"exprlex/internal/source"
)

var (
	// MaxLiteral is the largest literal value, 2^127-1.
	MaxLiteral = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	// MinLiteral is the smallest literal value, -2^127.
	MinLiteral = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// Token represents a single expression token with its location.
type Token struct {
	Kind  Kind
	Op    Op       // only for Operator
	Value *big.Int // only for Literal; treat as immutable
	Span  source.Span
	Text  string
}

// NewLiteral builds a Literal token. The value is not copied.
func NewLiteral(v *big.Int) Token {
	return Token{Kind: Literal, Value: v, Text: v.String()}
}

// Int builds a Literal token from an int64.
func Int(v int64) Token {
	return NewLiteral(big.NewInt(v))
}

// NewOperator builds an Operator token.
func NewOperator(op Op) Token {
	return Token{Kind: Operator, Op: op, Text: op.Symbol()}
}

// NewVariable builds a Variable token.
func NewVariable(name string) Token {
	return Token{Kind: Variable, Text: name}
}

// InRange reports whether v fits the literal range.
func InRange(v *big.Int) bool {
	return v.Cmp(MinLiteral) >= 0 && v.Cmp(MaxLiteral) <= 0
}

// IsLiteral reports whether the token is an integer literal.
func (t Token) IsLiteral() bool { return t.Kind == Literal }

// IsOperator reports whether the token is an operator of any kind.
func (t Token) IsOperator() bool { return t.Kind == Operator }

// IsOp reports whether the token is the given operator.
func (t Token) IsOp(op Op) bool { return t.Kind == Operator && t.Op == op }

// IsVariable reports whether the token is an identifier.
func (t Token) IsVariable() bool { return t.Kind == Variable }

// Name returns the identifier of a Variable token, "" otherwise.
func (t Token) Name() string {
	if !t.IsVariable() {
		return ""
	}
	return t.Text
}

// Equal compares tokens by kind and payload, ignoring spans and lexemes.
func Equal(a, b Token) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Literal:
		if a.Value == nil || b.Value == nil {
			return a.Value == b.Value
		}
		return a.Value.Cmp(b.Value) == 0
	case Operator:
		return a.Op == b.Op
	case Variable:
		return a.Text == b.Text
	default:
		return true
	}
}

// EqualSlices reports whether two sequences are pairwise Equal.
func EqualSlices(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (t Token) String() string {
	switch t.Kind {
	case Literal:
		if t.Value == nil {
			return "Literal(?)"
		}
		return fmt.Sprintf("Literal(%s)", t.Value.String())
	case Operator:
		return fmt.Sprintf("Operator(%s)", t.Op.Symbol())
	case Variable:
		return fmt.Sprintf("Variable(%s)", t.Text)
	default:
		return t.Kind.String()
	}
}
