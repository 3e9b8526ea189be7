// Command vellum compiles a TeX-subset source file into a PDF.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/vellumpdf/vellum"
	"github.com/vellumpdf/vellum/layout"
	canvasrenderer "github.com/vellumpdf/vellum/renderer/canvas"
)

var cli struct {
	Input  string `arg:"" help:"Input source file." type:"existingfile"`
	Output string `short:"o" default:"out.pdf" help:"Output PDF path."`
	Debug  string `help:"Write layout debug JSON to this path." type:"path"`

	LineWidth  string `default:"170mm" help:"Maximum line width (pt/mm/cm/in)."`
	LineHeight string `default:"14.4pt" help:"Line height."`
	CharWidth  string `default:"6pt" help:"Nominal character advance."`
	SpaceWidth string `default:"6pt" help:"Inter-word glue width."`
	PageHeight string `default:"800pt" help:"Vertical page budget."`

	FontRegular string `help:"Font file for normal text." type:"existingfile"`
	FontBold    string `help:"Font file for bold text." type:"existingfile"`
	FontItalic  string `help:"Font file for italic text." type:"existingfile"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("vellum"),
		kong.Description("Compile a TeX-subset document to PDF."),
		kong.UsageOnError(),
	)
	if err := run(); err != nil {
		log.Fatalf("vellum: %v", err)
	}
	fmt.Printf("wrote %s\n", cli.Output)
}

func run() error {
	opts, err := layoutOptions()
	if err != nil {
		return err
	}

	source, err := os.ReadFile(cli.Input)
	if err != nil {
		return fmt.Errorf("read %s: %w", cli.Input, err)
	}

	pages, err := vellum.CompileToLayout(string(source), opts)
	if err != nil {
		return err
	}

	if cli.Debug != "" {
		if err := layout.WriteDebugJSON(pages, cli.Debug); err != nil {
			return fmt.Errorf("write debug JSON: %w", err)
		}
	}

	r := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{
		Regular: canvasrenderer.Resource{Path: cli.FontRegular},
		Bold:    canvasrenderer.Resource{Path: cli.FontBold},
		Italic:  canvasrenderer.Resource{Path: cli.FontItalic},
	})
	data, err := r.Render(pages)
	if err != nil {
		return fmt.Errorf("render PDF: %w", err)
	}

	if dir := filepath.Dir(cli.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(cli.Output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cli.Output, err)
	}
	return nil
}

// layoutOptions converts the unit-suffixed geometry flags to points.
func layoutOptions() (layout.Options, error) {
	var opts layout.Options
	for _, f := range []struct {
		value string
		dst   *float64
		name  string
	}{
		{cli.LineWidth, &opts.LineWidth, "line-width"},
		{cli.LineHeight, &opts.LineHeight, "line-height"},
		{cli.CharWidth, &opts.CharWidth, "char-width"},
		{cli.SpaceWidth, &opts.SpaceWidth, "space-width"},
		{cli.PageHeight, &opts.PageHeight, "page-height"},
	} {
		l, err := layout.ParseLength(f.value)
		if err != nil {
			return layout.Options{}, fmt.Errorf("--%s: %w", f.name, err)
		}
		*f.dst = l.ToPT()
	}
	return opts, nil
}
