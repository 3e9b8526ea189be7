package tex

import "github.com/alecthomas/participle/v2/lexer"

// Kind discriminates the lexical token classes.
type Kind int

const (
	KindText Kind = iota
	KindCommand
	KindLBrace
	KindRBrace
	// KindUnrecognized marks a character no lexer rule accepts. The lexer
	// records it and keeps going; the parser fails if it ever has to
	// consume one.
	KindUnrecognized
)

// String returns a short name for the kind, used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindCommand:
		return "command"
	case KindLBrace:
		return "{"
	case KindRBrace:
		return "}"
	case KindUnrecognized:
		return "unrecognized"
	default:
		return "invalid"
	}
}

// Token is one lexeme with its byte span in the source. For commands,
// Value excludes the leading backslash.
type Token struct {
	Kind  Kind
	Value string
	Pos   lexer.Position // position of the first byte
	End   int            // byte offset one past the last byte
}

// Start returns the byte offset of the token's first byte.
func (t Token) Start() int { return t.Pos.Offset }
