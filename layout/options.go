package layout

// Default geometry, in points: line width is A4 minus a 10 mm margin on
// each side; a 12 pt face with 1.2 leading; character and space advances
// of half the font size.
const (
	defaultFontSize   = 12.0
	defaultLineWidth  = (210.0 - 2*10.0) * MmToPt
	defaultLineHeight = defaultFontSize * 1.2
	defaultCharWidth  = defaultFontSize * 0.5
	defaultSpaceWidth = defaultCharWidth
	defaultPageHeight = 800.0
)

// Options configures the layout pass. All five lengths must share one
// unit system; the engine itself is unit-agnostic.
type Options struct {
	LineWidth  float64 `json:"lineWidth"`  // maximum line width
	LineHeight float64 `json:"lineHeight"` // fixed height of one line
	CharWidth  float64 `json:"charWidth"`  // nominal advance per character
	SpaceWidth float64 `json:"spaceWidth"` // width of inter-word glue
	PageHeight float64 `json:"pageHeight"` // vertical budget per page
}

// DefaultOptions returns the standard point-based geometry.
func DefaultOptions() Options {
	return Options{
		LineWidth:  defaultLineWidth,
		LineHeight: defaultLineHeight,
		CharWidth:  defaultCharWidth,
		SpaceWidth: defaultSpaceWidth,
		PageHeight: defaultPageHeight,
	}
}
