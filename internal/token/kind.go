package token

// Kind represents the category of a token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the input.
	EOF

	// Literal represents a signed integer literal.
	Literal
	// Operator represents one of the six operator symbols.
	Operator
	// Variable represents an alphabetic identifier.
	Variable
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Literal:
		return "Literal"
	case Operator:
		return "Operator"
	case Variable:
		return "Variable"
	default:
		return "Kind(?)"
	}
}

// Op identifies an operator symbol. The zero value is not an operator.
type Op uint8

const (
	// OpNone is the Op of every non-operator token.
	OpNone Op = iota
	// LParen represents the open parenthesis.
	LParen // (
	// RParen represents the close parenthesis.
	RParen // )
	// Slash represents division.
	Slash // /
	// Star represents multiplication.
	Star // *
	// Minus represents subtraction.
	Minus // -
	// Plus represents addition.
	Plus // +
)

var opSymbols = map[rune]Op{
	'(': LParen,
	')': RParen,
	'/': Slash,
	'*': Star,
	'-': Minus,
	'+': Plus,
}

// LookupOp возвращает оператор для символа и bool, если символ распознан.
func LookupOp(r rune) (Op, bool) {
	op, ok := opSymbols[r]
	return op, ok
}

// Symbol returns the source spelling of the operator.
func (o Op) Symbol() string {
	switch o {
	case LParen:
		return "("
	case RParen:
		return ")"
	case Slash:
		return "/"
	case Star:
		return "*"
	case Minus:
		return "-"
	case Plus:
		return "+"
	default:
		return ""
	}
}

func (o Op) String() string {
	switch o {
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case Slash:
		return "Slash"
	case Star:
		return "Star"
	case Minus:
		return "Minus"
	case Plus:
		return "Plus"
	default:
		return "OpNone"
	}
}
