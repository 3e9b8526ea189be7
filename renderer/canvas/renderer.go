// Package canvasrenderer renders layout pages to PDF via
// github.com/tdewolff/canvas.
package canvasrenderer

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/vellumpdf/vellum/layout"
	"github.com/vellumpdf/vellum/renderer"
	"github.com/vellumpdf/vellum/tex"
)

// Page geometry in millimeters (A4) and type size in points.
const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0
	marginMM     = 10.0
	fontSizePT   = 12.0
	lineHeightPT = fontSizePT * 1.2
)

// systemFonts are tried in order when no font resource is injected.
var systemFonts = []string{"DejaVu Sans", "Liberation Sans", "Arial", "Helvetica"}

// Renderer draws layout pages into a PDF. Layout widths are interpreted
// as points and converted to the canvas's millimeter coordinates at the
// boundary.
type Renderer struct {
	opts Options

	fontMu sync.Mutex
	family *canvas.FontFamily
	styles map[tex.Style]canvas.FontStyle
}

var _ renderer.Renderer = (*Renderer)(nil)

// Options configures font sources for the three text styles. A style
// with no resource falls back to Regular; with nothing injected at all
// the renderer tries a list of common system fonts.
type Options struct {
	Regular Resource
	Bold    Resource
	Italic  Resource
}

// Resource supplies font data either directly by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

func (r Resource) empty() bool { return len(r.Bytes) == 0 && r.Path == "" }

func (r Resource) load() ([]byte, error) {
	if len(r.Bytes) > 0 {
		return r.Bytes, nil
	}
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", r.Path, err)
	}
	return data, nil
}

// NewRenderer creates a renderer that resolves fonts from the system.
func NewRenderer() *Renderer { return NewRendererWithOptions(Options{}) }

// NewRendererWithOptions creates a renderer with injected font resources.
func NewRendererWithOptions(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render renders the pages into a PDF byte slice.
func (r *Renderer) Render(pages []layout.Page) ([]byte, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages to render")
	}

	faces, err := r.faces()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, pageWidthMM, pageHeightMM, nil)
	for i, page := range pages {
		if i > 0 {
			writer.NewPage(pageWidthMM, pageHeightMM)
		}
		c := canvas.New(pageWidthMM, pageHeightMM)
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianIV) // top-left origin, matching layout order

		drawPage(ctx, page, faces)
		c.RenderTo(writer)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func drawPage(ctx *canvas.Context, page layout.Page, faces map[tex.Style]*canvas.FontFace) {
	y := marginMM
	for _, line := range page.Lines {
		x := marginMM
		for _, box := range line.Boxes {
			for _, item := range box.Items {
				run, ok := item.(layout.Run)
				if !ok {
					continue // glue advances x via the box width below
				}
				face := faces[run.Style]
				baseline := y + face.Metrics().Ascent
				ctx.DrawText(x, baseline, canvas.NewTextLine(face, run.Text, canvas.Left))
			}
			x += box.Width * layout.PtToMm
		}
		y += lineHeightPT * layout.PtToMm
	}
}

func (r *Renderer) faces() (map[tex.Style]*canvas.FontFace, error) {
	family, styles, err := r.ensureFamily()
	if err != nil {
		return nil, err
	}
	faces := make(map[tex.Style]*canvas.FontFace, len(styles))
	for style, fontStyle := range styles {
		faces[style] = family.Face(fontSizePT, canvas.Black, fontStyle, canvas.FontNormal)
	}
	return faces, nil
}

// ensureFamily lazily builds the font family shared by all renders.
func (r *Renderer) ensureFamily() (*canvas.FontFamily, map[tex.Style]canvas.FontStyle, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	if r.family != nil {
		return r.family, r.styles, nil
	}

	family := canvas.NewFontFamily("vellum")
	var styles map[tex.Style]canvas.FontStyle
	var err error
	if r.opts.Regular.empty() {
		styles, err = loadSystemFamily(family)
	} else {
		styles, err = r.loadInjectedFamily(family)
	}
	if err != nil {
		return nil, nil, err
	}
	r.family = family
	r.styles = styles
	return family, styles, nil
}

func (r *Renderer) loadInjectedFamily(family *canvas.FontFamily) (map[tex.Style]canvas.FontStyle, error) {
	sources := []struct {
		res   Resource
		style canvas.FontStyle
		tag   tex.Style
	}{
		{r.opts.Regular, canvas.FontRegular, tex.StyleNormal},
		{r.opts.Bold, canvas.FontBold, tex.StyleBold},
		{r.opts.Italic, canvas.FontItalic, tex.StyleItalic},
	}
	styles := make(map[tex.Style]canvas.FontStyle, len(sources))
	for _, src := range sources {
		res := src.res
		if res.empty() {
			// reuse the regular face for missing styles
			styles[src.tag] = canvas.FontRegular
			continue
		}
		data, err := res.load()
		if err != nil {
			return nil, err
		}
		if err := family.LoadFont(data, 0, src.style); err != nil {
			return nil, fmt.Errorf("load %s font: %w", src.tag, err)
		}
		styles[src.tag] = src.style
	}
	return styles, nil
}

func loadSystemFamily(family *canvas.FontFamily) (map[tex.Style]canvas.FontStyle, error) {
	var lastErr error
	for _, name := range systemFonts {
		if err := family.LoadSystemFont(name, canvas.FontRegular); err != nil {
			lastErr = err
			continue
		}
		styles := map[tex.Style]canvas.FontStyle{
			tex.StyleNormal: canvas.FontRegular,
			tex.StyleBold:   canvas.FontRegular,
			tex.StyleItalic: canvas.FontRegular,
		}
		if err := family.LoadSystemFont(name, canvas.FontBold); err == nil {
			styles[tex.StyleBold] = canvas.FontBold
		}
		if err := family.LoadSystemFont(name, canvas.FontItalic); err == nil {
			styles[tex.StyleItalic] = canvas.FontItalic
		}
		return styles, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no candidates")
	}
	return nil, fmt.Errorf("no usable system font (tried %v): %w", systemFonts, lastErr)
}
