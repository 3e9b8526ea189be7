package tex

import "strings"

// styleCommands maps built-in styling commands to the style they apply.
// User-defined macros are not supported.
var styleCommands = map[string]Style{
	"textbf": StyleBold,
	"emph":   StyleItalic,
}

// Expand rewrites a parse tree into layout-ready form: nested sequences
// are spliced into their parent until no Seq directly contains another
// Seq, and a styling command with exactly one argument collapses into a
// StyledText leaf. Unrecognized commands pass through with their
// arguments expanded.
//
// Expand is pure and total, and idempotent: expanding an expanded tree
// returns an equal tree.
func Expand(n Node) Node {
	switch n := n.(type) {
	case Seq:
		return expandSeq(n)
	case Macro:
		args := make([]Node, len(n.Args))
		for i, arg := range n.Args {
			args[i] = Expand(arg)
		}
		if style, ok := styleCommands[n.Name]; ok && len(args) == 1 {
			return StyledText{Text: plainText(args[0]), Style: style}
		}
		return Macro{Name: n.Name, Args: splice(args)}
	default:
		return n
	}
}

func expandSeq(seq Seq) Seq {
	out := make(Seq, 0, len(seq))
	for _, child := range seq {
		expanded := Expand(child)
		if inner, ok := expanded.(Seq); ok {
			out = append(out, inner...)
		} else {
			out = append(out, expanded)
		}
	}
	return out
}

// splice flattens one level of Seq nesting in a macro argument list. The
// arguments are already expanded, so the spliced elements contain no
// further nested sequences.
func splice(args []Node) []Node {
	if len(args) == 0 {
		return nil
	}
	out := make([]Node, 0, len(args))
	for _, arg := range args {
		if inner, ok := arg.(Seq); ok {
			out = append(out, inner...)
		} else {
			out = append(out, arg)
		}
	}
	return out
}

// plainText joins the Text and StyledText leaves of a subtree depth-first
// with a single space between sibling leaves. Nested unresolved macros
// contribute nothing.
func plainText(n Node) string {
	var leaves []string
	collectLeaves(n, &leaves)
	return strings.Join(leaves, " ")
}

func collectLeaves(n Node, leaves *[]string) {
	switch n := n.(type) {
	case Text:
		*leaves = append(*leaves, string(n))
	case StyledText:
		*leaves = append(*leaves, n.Text)
	case Seq:
		for _, child := range n {
			collectLeaves(child, leaves)
		}
	case Macro:
		// dropped: only textual content survives a styling collapse
	}
}
