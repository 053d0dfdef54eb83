package export

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"

	"inkboard/internal/scene"
)

const pngMargin = 16 // px around the drawing's bounding box

// PNG rasterizes the scene and writes it to path. The image is sized to the
// drawing's bounding box plus a margin, on a white background. Eraser
// strokes paint the background color.
func PNG(path string, g *scene.Graph) error {
	strokes := g.Children()
	minX, minY, maxX, maxY := bounds(strokes)

	w := int(math.Ceil(float64(maxX-minX))) + 2*pngMargin
	h := int(math.Ceil(float64(maxY-minY))) + 2*pngMargin
	if w < 2*pngMargin {
		w = 2 * pngMargin
	}
	if h < 2*pngMargin {
		h = 2 * pngMargin
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff // white background
	}

	offX := pngMargin - minX
	offY := pngMargin - minY
	for _, st := range strokes {
		drawStroke(img, st, offX, offY)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// drawStroke fills each segment as a rectangle oriented along the segment,
// with polygonal discs at the joints for the round caps and joins.
func drawStroke(img *image.RGBA, st *scene.Stroke, offX, offY float32) {
	if len(st.Points) == 0 {
		return
	}

	col := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if !st.IsEraser() {
		col = color.RGBA{A: 0xff}
		if r, g, b, ok := scene.ParseColor(st.Color); ok {
			col = color.RGBA{R: r, G: g, B: b, A: 0xff}
		}
	}

	r := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	for i := 1; i < len(st.Points); i++ {
		a, b := st.Points[i-1], st.Points[i]
		half := segmentWidth(st, i) / 2
		quad(r, a.X+offX, a.Y+offY, b.X+offX, b.Y+offY, half)
	}
	for _, p := range st.Points {
		half := st.Width / 2
		if p.W > 0 {
			half = p.W / 2
		}
		disc(r, p.X+offX, p.Y+offY, half)
	}
	r.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{})
}

// quad adds the rectangle covering a segment of the given half-width.
func quad(r *vector.Rasterizer, x1, y1, x2, y2, half float32) {
	dx, dy := x2-x1, y2-y1
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	// unit normal
	nx, ny := -dy/length*half, dx/length*half

	r.MoveTo(x1+nx, y1+ny)
	r.LineTo(x2+nx, y2+ny)
	r.LineTo(x2-nx, y2-ny)
	r.LineTo(x1-nx, y1-ny)
	r.ClosePath()
}

// disc adds a 16-gon approximating a filled circle.
func disc(r *vector.Rasterizer, cx, cy, radius float32) {
	if radius <= 0 {
		return
	}
	const n = 16
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / n
		x := cx + radius*float32(math.Cos(a))
		y := cy + radius*float32(math.Sin(a))
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.ClosePath()
}

func bounds(strokes []*scene.Stroke) (minX, minY, maxX, maxY float32) {
	first := true
	for _, st := range strokes {
		for _, p := range st.Points {
			if first {
				minX, maxX = p.X, p.X
				minY, maxY = p.Y, p.Y
				first = false
				continue
			}
			minX = min(minX, p.X)
			maxX = max(maxX, p.X)
			minY = min(minY, p.Y)
			maxY = max(maxY, p.Y)
		}
	}
	return minX, minY, maxX, maxY
}
