// Package vellum compiles a small LaTeX-like markup language (plain
// text, brace groups, single-argument styling commands) into a
// page-structured, styled layout ready for rendering.
//
// The pipeline is lexer -> parser -> macro expander -> layout engine.
// Each stage is a pure function of its input; a compilation holds no
// process-wide state, so independent documents may be compiled
// concurrently without coordination.
package vellum

import (
	"fmt"

	"github.com/vellumpdf/vellum/layout"
	"github.com/vellumpdf/vellum/renderer"
	"github.com/vellumpdf/vellum/tex"
)

// CompileToLayout parses source, expands its macros and lays the result
// out into pages. It fails only when parsing fails (malformed group
// nesting or a stray closing brace); expansion and layout are total.
func CompileToLayout(source string, opts layout.Options) ([]layout.Page, error) {
	root, err := tex.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return layout.Build(tex.Expand(root), opts), nil
}

// Compile lays out source and renders the pages with r.
func Compile(source string, r renderer.Renderer, opts layout.Options) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("renderer must not be nil")
	}
	pages, err := CompileToLayout(source, opts)
	if err != nil {
		return nil, err
	}
	return r.Render(pages)
}
