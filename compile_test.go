package vellum_test

import (
	"errors"
	"testing"

	"github.com/vellumpdf/vellum"
	"github.com/vellumpdf/vellum/layout"
	"github.com/vellumpdf/vellum/tex"
)

func TestCompileToLayoutHelloWorld(t *testing.T) {
	pages, err := vellum.CompileToLayout("Hello world", layout.Options{
		LineWidth:  100,
		LineHeight: 20,
		CharWidth:  6,
		SpaceWidth: 6,
		PageHeight: 800,
	})
	if err != nil {
		t.Fatalf("CompileToLayout: %v", err)
	}
	if len(pages) != 1 || len(pages[0].Lines) != 1 {
		t.Fatalf("got %d pages, want 1 page with 1 line", len(pages))
	}
	boxes := pages[0].Lines[0].Boxes
	if len(boxes) != 3 {
		t.Fatalf("boxes: got %d want 3", len(boxes))
	}
	run, ok := boxes[0].Items[0].(layout.Run)
	if !ok || run.Text != "Hello" || run.Style != tex.StyleNormal {
		t.Errorf("first box: got %#v, want Run(%q, normal)", boxes[0].Items[0], "Hello")
	}
	glue, ok := boxes[1].Items[0].(layout.Glue)
	if !ok || glue.Width != 6 {
		t.Errorf("second box: got %#v, want Glue(6)", boxes[1].Items[0])
	}
	run, ok = boxes[2].Items[0].(layout.Run)
	if !ok || run.Text != "world" {
		t.Errorf("third box: got %#v, want Run(%q)", boxes[2].Items[0], "world")
	}
}

func TestCompileToLayoutStyling(t *testing.T) {
	pages, err := vellum.CompileToLayout(`\textbf{Bold} and \emph{italic}`, layout.Options{
		LineWidth:  1000,
		LineHeight: 20,
		CharWidth:  6,
		SpaceWidth: 6,
		PageHeight: 800,
	})
	if err != nil {
		t.Fatalf("CompileToLayout: %v", err)
	}
	var styles []tex.Style
	for _, line := range pages[0].Lines {
		for _, box := range line.Boxes {
			for _, item := range box.Items {
				if run, ok := item.(layout.Run); ok {
					styles = append(styles, run.Style)
				}
			}
		}
	}
	want := []tex.Style{tex.StyleBold, tex.StyleNormal, tex.StyleItalic}
	if len(styles) != len(want) {
		t.Fatalf("runs: got %d want %d", len(styles), len(want))
	}
	for i := range want {
		if styles[i] != want[i] {
			t.Errorf("run %d style: got %v want %v", i, styles[i], want[i])
		}
	}
}

func TestCompileToLayoutParseError(t *testing.T) {
	pages, err := vellum.CompileToLayout("{A", layout.DefaultOptions())
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if pages != nil {
		t.Errorf("no layout must be produced on failure, got %d pages", len(pages))
	}
	var perr *tex.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error %v does not wrap *tex.ParseError", err)
	}
	if perr.Kind != tex.UnclosedGroup {
		t.Errorf("kind: got %v want %v", perr.Kind, tex.UnclosedGroup)
	}
}

func TestCompileNilRenderer(t *testing.T) {
	if _, err := vellum.Compile("Hello", nil, layout.DefaultOptions()); err == nil {
		t.Fatal("expected error for nil renderer")
	}
}
