// pkg/render/painter.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const ellipseSegments = 24

// Painter fills and strokes vector shapes through one reusable vertex buffer.
// Every shape takes a GeoM so entity drawing can work in local coordinates.
type Painter struct {
	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func NewPainter() *Painter {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &Painter{
		fillImg: fillImg,
		vs:      make([]ebiten.Vertex, 0, 64),
		is:      make([]uint16, 0, 128),
	}
}

// Fill draws the interior of a path.
func (p *Painter) Fill(dst *ebiten.Image, path *vector.Path, c color.RGBA, alpha float64) {
	if alpha <= 0 {
		return
	}
	p.vs, p.is = path.AppendVerticesAndIndicesForFilling(p.vs[:0], p.is[:0])
	p.draw(dst, c, alpha)
}

// Stroke draws the outline of a path.
func (p *Painter) Stroke(dst *ebiten.Image, path *vector.Path, width float32, c color.RGBA, alpha float64) {
	if alpha <= 0 {
		return
	}
	p.vs, p.is = path.AppendVerticesAndIndicesForStroke(p.vs[:0], p.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	p.draw(dst, c, alpha)
}

func (p *Painter) draw(dst *ebiten.Image, c color.RGBA, alpha float64) {
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255
	a := float32(c.A) / 255 * float32(math.Min(alpha, 1))
	for i := range p.vs {
		p.vs[i].SrcX, p.vs[i].SrcY = 0, 0
		p.vs[i].ColorR = r
		p.vs[i].ColorG = g
		p.vs[i].ColorB = b
		p.vs[i].ColorA = a
	}
	dst.DrawTriangles(p.vs, p.is, p.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// PolygonPath builds a closed path from x,y pairs mapped through geo.
func PolygonPath(geo ebiten.GeoM, pts ...float64) *vector.Path {
	path := &vector.Path{}
	for i := 0; i+1 < len(pts); i += 2 {
		x, y := geo.Apply(pts[i], pts[i+1])
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()
	return path
}

// EllipsePath approximates an axis-aligned ellipse in local space.
func EllipsePath(geo ebiten.GeoM, cx, cy, rx, ry float64) *vector.Path {
	pts := make([]float64, 0, ellipseSegments*2)
	for i := 0; i < ellipseSegments; i++ {
		a := float64(i) / ellipseSegments * 2 * math.Pi
		pts = append(pts, cx+math.Cos(a)*rx, cy+math.Sin(a)*ry)
	}
	return PolygonPath(geo, pts...)
}

// DiamondPath is an isometric tile outline with its top corner at (x, y).
func DiamondPath(x, y, w, h float64) *vector.Path {
	var geo ebiten.GeoM
	return PolygonPath(geo, x, y, x+w/2, y+h/2, x, y+h, x-w/2, y+h/2)
}

func (p *Painter) Polygon(dst *ebiten.Image, geo ebiten.GeoM, c color.RGBA, alpha float64, pts ...float64) {
	p.Fill(dst, PolygonPath(geo, pts...), c, alpha)
}

func (p *Painter) Rect(dst *ebiten.Image, geo ebiten.GeoM, x, y, w, h float64, c color.RGBA, alpha float64) {
	p.Polygon(dst, geo, c, alpha, x, y, x+w, y, x+w, y+h, x, y+h)
}

func (p *Painter) Ellipse(dst *ebiten.Image, geo ebiten.GeoM, cx, cy, rx, ry float64, c color.RGBA, alpha float64) {
	p.Fill(dst, EllipsePath(geo, cx, cy, rx, ry), c, alpha)
}

func (p *Painter) EllipseOutline(dst *ebiten.Image, geo ebiten.GeoM, cx, cy, rx, ry float64, width float32, c color.RGBA, alpha float64) {
	p.Stroke(dst, EllipsePath(geo, cx, cy, rx, ry), width, c, alpha)
}

// Line strokes a segment in local space.
func (p *Painter) Line(dst *ebiten.Image, geo ebiten.GeoM, x1, y1, x2, y2 float64, width float32, c color.RGBA, alpha float64) {
	ax, ay := geo.Apply(x1, y1)
	bx, by := geo.Apply(x2, y2)
	path := &vector.Path{}
	path.MoveTo(float32(ax), float32(ay))
	path.LineTo(float32(bx), float32(by))
	p.Stroke(dst, path, width, c, alpha)
}

// Local returns a transform that places local (0, 0) at screen (x, y)
// with the given uniform scale, mirrored horizontally when flip is set.
func Local(x, y, scale float64, flip bool) ebiten.GeoM {
	var geo ebiten.GeoM
	sx := scale
	if flip {
		sx = -scale
	}
	geo.Scale(sx, scale)
	geo.Translate(x, y)
	return geo
}

// Pivot rotates local space by angle around (px, py) before applying parent.
func Pivot(parent ebiten.GeoM, px, py, angle float64) ebiten.GeoM {
	var geo ebiten.GeoM
	geo.Translate(-px, -py)
	geo.Rotate(angle)
	geo.Translate(px, py)
	geo.Concat(parent)
	return geo
}
