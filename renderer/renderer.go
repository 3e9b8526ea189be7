// Package renderer defines the contract between the layout engine and
// concrete output backends.
package renderer

import "github.com/vellumpdf/vellum/layout"

// Renderer serializes laid-out pages into a final document, for example
// a PDF byte slice. Mapping styles to font faces and converting layout
// units to output coordinates is the renderer's responsibility.
type Renderer interface {
	Render(pages []layout.Page) ([]byte, error)
}
