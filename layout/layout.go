package layout

import (
	"math"
	"strings"

	"github.com/vellumpdf/vellum/tex"
)

// Build lays out an expanded tree: flatten to boxes, break into lines,
// chunk into pages. It is total; degenerate inputs (empty tree, zero
// widths) yield zero or minimally sized pages, never an error. The tree
// is read only, never retained.
func Build(root tex.Node, opts Options) []Page {
	boxes := Flatten(root, opts)
	lines := breakLines(boxes, opts.LineWidth)
	return paginate(lines, opts)
}

// Flatten walks the tree depth-first and emits one HBox per word, with a
// glue box of SpaceWidth between successive words and between successive
// siblings of a Seq or Macro (not before the first or after the last).
func Flatten(root tex.Node, opts Options) []HBox {
	f := &flattener{charWidth: opts.CharWidth, spaceWidth: opts.SpaceWidth}
	f.node(root)
	return f.boxes
}

type flattener struct {
	charWidth  float64
	spaceWidth float64
	boxes      []HBox
}

func (f *flattener) glue() {
	f.boxes = append(f.boxes, HBox{
		Items: []LayoutNode{Glue{Width: f.spaceWidth}},
		Width: f.spaceWidth,
	})
}

func (f *flattener) node(n tex.Node) {
	switch n := n.(type) {
	case tex.Seq:
		for i, child := range n {
			if i > 0 {
				f.glue()
			}
			f.node(child)
		}
	case tex.Text:
		f.words(string(n), tex.StyleNormal)
	case tex.StyledText:
		f.words(n.Text, n.Style)
	case tex.Macro:
		// an uncollapsed macro contributes its arguments, never its name
		for i, arg := range n.Args {
			if i > 0 {
				f.glue()
			}
			f.node(arg)
		}
	}
}

func (f *flattener) words(s string, style tex.Style) {
	for i, word := range strings.Fields(s) {
		if i > 0 {
			f.glue()
		}
		f.boxes = append(f.boxes, HBox{
			Items: []LayoutNode{Run{StyledRun{Text: word, Style: style}}},
			Width: float64(len(word)) * f.charWidth,
		})
	}
}

// breakLines packs boxes greedily, left to right. A box that would push
// the running width strictly past lineWidth starts a new line, unless the
// current line is still empty: an oversized atom overflows on its own
// line rather than being split or dropped. Glue boxes count fully toward
// the width and may lead a line.
func breakLines(boxes []HBox, lineWidth float64) []Line {
	var lines []Line
	var curr []HBox
	width := 0.0
	for _, box := range boxes {
		if width+box.Width > lineWidth && len(curr) > 0 {
			lines = append(lines, Line{Boxes: curr, Width: width})
			curr = nil
			width = 0
		}
		width += box.Width
		curr = append(curr, box)
	}
	if len(curr) > 0 {
		lines = append(lines, Line{Boxes: curr, Width: width})
	}
	return lines
}

// paginate chunks lines into consecutive pages of at most
// floor(PageHeight/LineHeight) lines, in source order. A degenerate line
// height clamps to one line per page.
func paginate(lines []Line, opts Options) []Page {
	perPage := 1
	if opts.LineHeight > 0 {
		if n := int(math.Floor(opts.PageHeight / opts.LineHeight)); n > 1 {
			perPage = n
		}
	}
	var pages []Page
	for start := 0; start < len(lines); start += perPage {
		end := start + perPage
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, Page{Lines: lines[start:end]})
	}
	return pages
}
