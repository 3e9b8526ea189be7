package tex

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// texLexer defines the lexical grammar. Rules are tried in order at each
// position, so comments and whitespace win over text runs, and a command
// wins over the catch-all.
var texLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `%[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Command", Pattern: `\\[a-zA-Z]+`},
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
	{Name: "Text", Pattern: `[^\\{}%\s]+`},
	{Name: "Unrecognized", Pattern: `.`},
})

var kindBySymbol = invertSymbols(texLexer.Symbols())

func invertSymbols(symbols map[string]lexer.TokenType) map[lexer.TokenType]Kind {
	names := map[string]Kind{
		"Command":      KindCommand,
		"LBrace":       KindLBrace,
		"RBrace":       KindRBrace,
		"Text":         KindText,
		"Unrecognized": KindUnrecognized,
	}
	out := make(map[lexer.TokenType]Kind, len(names))
	for name, kind := range names {
		tt, ok := symbols[name]
		if !ok {
			panic("token " + name + " not defined")
		}
		out[tt] = kind
	}
	return out
}

// Lex splits source into tokens in source order. Comments (% to end of
// line) and whitespace runs are discarded. Lexing never halts on bad
// input: an unrecognized character becomes a KindUnrecognized token and
// lexing continues past it.
func Lex(source string) ([]Token, error) {
	lx, err := texLexer.LexString("", source)
	if err != nil {
		return nil, err
	}
	raw, err := lexer.ConsumeAll(lx)
	if err != nil {
		return nil, err
	}

	toks := make([]Token, 0, len(raw))
	for _, tok := range raw {
		if tok.EOF() {
			break
		}
		kind, ok := kindBySymbol[tok.Type]
		if !ok {
			continue // Comment or Whitespace
		}
		value := tok.Value
		if kind == KindCommand {
			value = strings.TrimPrefix(value, `\`)
		}
		toks = append(toks, Token{
			Kind:  kind,
			Value: value,
			Pos:   tok.Pos,
			End:   tok.Pos.Offset + len(tok.Value),
		})
	}
	return toks, nil
}
