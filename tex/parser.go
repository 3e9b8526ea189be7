package tex

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	// UnclosedGroup reports a '{' with no matching '}' before end of input.
	UnclosedGroup ErrorKind = iota
	// TrailingTokens reports an unmatched '}' left unconsumed at the top
	// level.
	TrailingTokens
	// UnexpectedToken reports a token no production accepts; in the
	// current grammar that is an unrecognized character the lexer passed
	// through.
	UnexpectedToken
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case UnclosedGroup:
		return "unclosed group"
	case TrailingTokens:
		return "trailing tokens"
	case UnexpectedToken:
		return "unexpected token"
	default:
		return "parse error"
	}
}

// ParseError is the terminal result of a failed parse. Pos locates the
// offending token, for UnclosedGroup the opening brace.
type ParseError struct {
	Kind  ErrorKind
	Pos   lexer.Position
	Token string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s at %d:%d", e.Kind, e.Pos.Line, e.Pos.Column)
	}
	return fmt.Sprintf("%s at %d:%d: %q", e.Kind, e.Pos.Line, e.Pos.Column, e.Token)
}

// Parse lexes source and parses it into a tree by recursive descent. The
// tree is exactly as deep as the brace nesting in the source; flattening
// is Expand's job. On failure the returned error is a *ParseError.
func Parse(source string) (Node, error) {
	toks, err := Lex(source)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	seq, err := p.sequence()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		tok := p.peek()
		return nil, &ParseError{Kind: TrailingTokens, Pos: tok.Pos, Token: tok.Value}
	}
	return seq, nil
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) eof() bool   { return p.pos >= len(p.toks) }
func (p *parser) peek() Token { return p.toks[p.pos] }

// sequence parses node* until a right brace or end of input; the closing
// brace itself is left for the caller.
func (p *parser) sequence() (Seq, error) {
	seq := Seq{}
	for !p.eof() && p.peek().Kind != KindRBrace {
		n, err := p.node()
		if err != nil {
			return nil, err
		}
		seq = append(seq, n)
	}
	return seq, nil
}

func (p *parser) node() (Node, error) {
	tok := p.peek()
	switch tok.Kind {
	case KindText:
		p.pos++
		return Text(tok.Value), nil
	case KindCommand:
		p.pos++
		var args []Node
		if !p.eof() && p.peek().Kind == KindLBrace {
			arg, err := p.group()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return Macro{Name: tok.Value, Args: args}, nil
	case KindLBrace:
		return p.group()
	default:
		return nil, &ParseError{Kind: UnexpectedToken, Pos: tok.Pos, Token: tok.Value}
	}
}

// group parses '{' sequence '}' and yields the inner sequence.
func (p *parser) group() (Node, error) {
	open := p.peek()
	p.pos++
	inner, err := p.sequence()
	if err != nil {
		return nil, err
	}
	if p.eof() || p.peek().Kind != KindRBrace {
		return nil, &ParseError{Kind: UnclosedGroup, Pos: open.Pos, Token: open.Value}
	}
	p.pos++
	return inner, nil
}
