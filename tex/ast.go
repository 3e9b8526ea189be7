package tex

// Style selects the font face a renderer uses for a run of text.
type Style int

const (
	StyleNormal Style = iota
	StyleBold
	StyleItalic
)

// String returns the lowercase name of the style.
func (s Style) String() string {
	switch s {
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	default:
		return "normal"
	}
}

// Node is one variant of the parse tree. The set is closed: Text,
// StyledText, Macro and Seq. Consumers switch exhaustively over the four
// variants; each node exclusively owns its children.
type Node interface {
	node()
}

// Text is literal content, possibly containing internal whitespace. The
// layout pass splits it into words.
type Text string

// StyledText is text tagged with a style. It is produced only by Expand,
// never by the parser.
type StyledText struct {
	Text  string
	Style Style
}

// Macro is a command invocation. The grammar attaches at most one
// brace-group argument, but the representation allows any number.
type Macro struct {
	Name string
	Args []Node
}

// Seq is an ordered grouping: the body of a brace group, or the top-level
// document.
type Seq []Node

func (Text) node()       {}
func (StyledText) node() {}
func (Macro) node()      {}
func (Seq) node()        {}
