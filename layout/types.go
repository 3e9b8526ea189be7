// Package layout flattens an expanded parse tree into a box-and-glue
// stream, packs the boxes into lines with a greedy breaker, and chunks
// lines into pages. All lengths share whatever unit system the caller
// picks through Options; the defaults are in points.
package layout

import "github.com/vellumpdf/vellum/tex"

// StyledRun is one word of renderable text with its style tag. The text
// contains no internal whitespace.
type StyledRun struct {
	Text  string    `json:"text"`
	Style tex.Style `json:"style"`
}

// LayoutNode is a typeset primitive: a styled run or inter-word glue.
type LayoutNode interface {
	layoutNode()
}

// Run wraps a StyledRun as a layout primitive.
type Run struct {
	StyledRun
}

// Glue is non-renderable spacing between runs. It participates in line
// width like any other content; there is no trailing-glue elision.
type Glue struct {
	Width float64 `json:"width"`
}

func (Run) layoutNode()  {}
func (Glue) layoutNode() {}

// HBox is the atomic unit the line-breaker packs; it is never split.
// Width is precomputed as the sum of the item widths.
type HBox struct {
	Items []LayoutNode `json:"items"`
	Width float64      `json:"width"`
}

// Line is one packed line of boxes.
type Line struct {
	Boxes []HBox  `json:"boxes"`
	Width float64 `json:"width"`
}

// Page is one packed page of lines.
type Page struct {
	Lines []Line `json:"lines"`
}
