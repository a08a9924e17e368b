package paper

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// bandHeight is the number of pixel rows rasterized at a time. Long slanted
// strokes are cut into bands so the coverage buffer only spans the pixels a
// band actually touches.
const bandHeight = 32

type point struct {
	x, y float64
}

// pen strokes antialiased lines onto dst, reusing one rasterizer.
type pen struct {
	dst *image.RGBA
	z   *vector.Rasterizer
}

func newPen(dst *image.RGBA) *pen {
	return &pen{dst: dst, z: vector.NewRasterizer(1, 1)}
}

// stroke fills the quad of the given width centred on the segment.
func (p *pen) stroke(x0, y0, x1, y1, width float64, src image.Image) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	quad := []point{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	}

	b := p.dst.Bounds()
	top := math.Max(math.Floor(math.Min(math.Min(quad[0].y, quad[1].y), math.Min(quad[2].y, quad[3].y))), float64(b.Min.Y))
	bottom := math.Min(math.Ceil(math.Max(math.Max(quad[0].y, quad[1].y), math.Max(quad[2].y, quad[3].y))), float64(b.Max.Y))
	for y := top; y < bottom; y += bandHeight {
		band := clipRect(quad, float64(b.Min.X), y, float64(b.Max.X), math.Min(y+bandHeight, bottom))
		p.fill(band, src)
	}
}

// fill rasterizes a polygon that lies entirely inside dst.
func (p *pen) fill(poly []point, src image.Image) {
	if len(poly) < 3 {
		return
	}
	minX, minY := poly[0].x, poly[0].y
	maxX, maxY := minX, minY
	for _, pt := range poly[1:] {
		minX, maxX = math.Min(minX, pt.x), math.Max(maxX, pt.x)
		minY, maxY = math.Min(minY, pt.y), math.Max(maxY, pt.y)
	}
	r := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	r = r.Intersect(p.dst.Bounds())
	if r.Empty() {
		return
	}

	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	p.z.Reset(r.Dx(), r.Dy())
	p.z.MoveTo(float32(poly[0].x-ox), float32(poly[0].y-oy))
	for _, pt := range poly[1:] {
		p.z.LineTo(float32(pt.x-ox), float32(pt.y-oy))
	}
	p.z.ClosePath()
	p.z.Draw(p.dst, r, src, r.Min)
}

// clipRect clips a convex polygon to the rectangle [x0,x1]×[y0,y1].
func clipRect(poly []point, x0, y0, x1, y1 float64) []point {
	poly = clipEdge(poly, func(p point) float64 { return p.x - x0 })
	poly = clipEdge(poly, func(p point) float64 { return x1 - p.x })
	poly = clipEdge(poly, func(p point) float64 { return p.y - y0 })
	return clipEdge(poly, func(p point) float64 { return y1 - p.y })
}

// clipEdge keeps the part of poly where dist is non-negative.
func clipEdge(poly []point, dist func(point) float64) []point {
	if len(poly) == 0 {
		return nil
	}
	out := make([]point, 0, len(poly)+2)
	prev := poly[len(poly)-1]
	dPrev := dist(prev)
	for _, cur := range poly {
		dCur := dist(cur)
		if (dPrev >= 0) != (dCur >= 0) {
			t := dPrev / (dPrev - dCur)
			out = append(out, point{prev.x + (cur.x-prev.x)*t, prev.y + (cur.y-prev.y)*t})
		}
		if dCur >= 0 {
			out = append(out, cur)
		}
		prev, dPrev = cur, dCur
	}
	return out
}
