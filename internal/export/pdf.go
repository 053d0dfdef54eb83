// Package export writes the scene out as PDF or PNG files.
package export

import (
	"github.com/jung-kurt/gofpdf"

	"inkboard/internal/scene"
)

// pdfScale converts scene pixels to PDF millimetres.
const pdfScale = 3

// PDF writes every stroke in the scene to an A4 page at path. Eraser strokes
// are drawn in the page background color, which approximates their effect on
// a white document.
func PDF(path string, g *scene.Graph) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	for _, st := range g.Children() {
		if len(st.Points) < 2 {
			continue
		}
		r, gv, b := uint8(0), uint8(0), uint8(0)
		if st.IsEraser() {
			r, gv, b = 255, 255, 255
		} else if cr, cg, cb, ok := scene.ParseColor(st.Color); ok {
			r, gv, b = cr, cg, cb
		}
		p.SetDrawColor(int(r), int(gv), int(b))

		for i := 1; i < len(st.Points); i++ {
			a, c := st.Points[i-1], st.Points[i]
			p.SetLineWidth(float64(segmentWidth(st, i)) / pdfScale)
			p.Line(
				float64(a.X)/pdfScale, float64(a.Y)/pdfScale,
				float64(c.X)/pdfScale, float64(c.Y)/pdfScale,
			)
		}
	}
	return p.OutputFileAndClose(path)
}

// segmentWidth picks the width for the segment ending at point index i,
// preferring the per-point resolved width when present.
func segmentWidth(st *scene.Stroke, i int) float32 {
	if w := st.Points[i].W; w > 0 {
		return w
	}
	if w := st.Points[i-1].W; w > 0 {
		return w
	}
	return st.Width
}
