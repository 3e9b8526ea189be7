package tex_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/vellumpdf/vellum/tex"
)

func seq(children ...tex.Node) tex.Seq { return tex.Seq(children) }

func text(s string) tex.Node { return tex.Text(s) }

func macro(name string, args ...tex.Node) tex.Node {
	return tex.Macro{Name: name, Args: args}
}

func TestParse(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output tex.Node
	}{
		{
			name:   "simple text",
			input:  "Hello",
			output: seq(text("Hello")),
		},
		{
			name:   "words split by the lexer",
			input:  "Hello world",
			output: seq(text("Hello"), text("world")),
		},
		{
			name:   "grouping",
			input:  "{A B}",
			output: seq(seq(text("A"), text("B"))),
		},
		{
			name:   "nested groups keep their depth",
			input:  "{A {B C}}",
			output: seq(seq(text("A"), seq(text("B"), text("C")))),
		},
		{
			name:   "command with group argument",
			input:  `\textbf{Bold}`,
			output: seq(macro("textbf", seq(text("Bold")))),
		},
		{
			name:   "command without argument",
			input:  `\par after`,
			output: seq(macro("par"), text("after")),
		},
		{
			name:   "whitespace before the argument group is ignored",
			input:  `\par {g}`,
			output: seq(macro("par", seq(text("g")))),
		},
		{
			name:   "empty group",
			input:  "{}",
			output: seq(seq()),
		},
		{
			name:   "empty input",
			input:  "",
			output: seq(),
		},
		{
			name:   "comment only",
			input:  "% nothing here",
			output: seq(),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tex.Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.input, err)
			}
			if diff := cmp.Diff(tc.output, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		kind   tex.ErrorKind
		offset int
	}{
		{
			name:   "unclosed group",
			input:  "{A",
			kind:   tex.UnclosedGroup,
			offset: 0,
		},
		{
			name:   "innermost unclosed group is reported first",
			input:  "{A {B",
			kind:   tex.UnclosedGroup,
			offset: 3,
		},
		{
			name:   "unclosed command argument",
			input:  `\textbf{Bold`,
			kind:   tex.UnclosedGroup,
			offset: 7,
		},
		{
			name:   "trailing close brace",
			input:  "A}",
			kind:   tex.TrailingTokens,
			offset: 1,
		},
		{
			name:   "lone close brace",
			input:  "}",
			kind:   tex.TrailingTokens,
			offset: 0,
		},
		{
			name:   "unrecognized character",
			input:  `ok \`,
			kind:   tex.UnexpectedToken,
			offset: 3,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tex.Parse(tc.input)
			if err == nil {
				t.Fatalf("Parse(%q): expected error", tc.input)
			}
			var perr *tex.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q): error %v is not a *ParseError", tc.input, err)
			}
			if perr.Kind != tc.kind {
				t.Errorf("kind: got %v want %v", perr.Kind, tc.kind)
			}
			if perr.Pos.Offset != tc.offset {
				t.Errorf("offset: got %d want %d", perr.Pos.Offset, tc.offset)
			}
		})
	}
}
