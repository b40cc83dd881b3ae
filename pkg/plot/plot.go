package plot

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/jbeda/geom"

	"github.com/matzehuels/chaosgame/pkg/errors"
)

// Reference configuration.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
	DefaultMargin = 10
	DefaultExtent = 10000.0

	// DefaultMeshLines is the number of bold mesh divisions per axis.
	DefaultMeshLines = 10
	// DefaultMeshSubdivisions is the number of light divisions between bold lines.
	DefaultMeshSubdivisions = 10
)

// Mesh lines are black at low opacity so they never match the point color.
const (
	meshBoldAlpha  = 0.2
	meshLightAlpha = 0.1
)

// Option configures a Plot.
type Option func(*Plot)

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(p *Plot) { p.width, p.height = width, height }
}

// WithMargin sets the blank border between canvas edge and plot area.
func WithMargin(m int) Option {
	return func(p *Plot) { p.margin = m }
}

// WithDomain sets the data range shown on the x and y axes.
func WithDomain(r geom.Rect) Option {
	return func(p *Plot) { p.domain = r }
}

// WithSymmetricDomain shows [-extent, extent] on both axes.
func WithSymmetricDomain(extent float64) Option {
	return WithDomain(geom.Rect{
		Min: geom.Coord{X: -extent, Y: -extent},
		Max: geom.Coord{X: extent, Y: extent},
	})
}

// WithColors sets the background fill and point color.
func WithColors(background, foreground gg.RGBA) Option {
	return func(p *Plot) { p.background, p.foreground = background, foreground }
}

// WithMesh sets the mesh density. lines <= 0 disables the mesh.
func WithMesh(lines, subdivisions int) Option {
	return func(p *Plot) { p.meshLines, p.meshSub = lines, subdivisions }
}

// Plot maps data coordinates to canvas pixels and renders point clouds.
// A Plot is immutable after New and safe for concurrent use.
type Plot struct {
	width, height int
	margin        int
	domain        geom.Rect
	background    gg.RGBA
	foreground    gg.RGBA
	meshLines     int
	meshSub       int
}

// New returns a Plot with the reference configuration, modified by opts.
func New(opts ...Option) (*Plot, error) {
	p := &Plot{
		width:      DefaultWidth,
		height:     DefaultHeight,
		margin:     DefaultMargin,
		background: gg.White,
		foreground: gg.Black,
		meshLines:  DefaultMeshLines,
		meshSub:    DefaultMeshSubdivisions,
	}
	WithSymmetricDomain(DefaultExtent)(p)
	for _, opt := range opts {
		opt(p)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Plot) validate() error {
	if err := errors.ValidatePositive("width", p.width); err != nil {
		return err
	}
	if err := errors.ValidatePositive("height", p.height); err != nil {
		return err
	}
	if p.margin < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "margin must be non-negative, got %d", p.margin)
	}
	if p.width-2*p.margin <= 0 || p.height-2*p.margin <= 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"margin %d leaves no plot area on a %dx%d canvas", p.margin, p.width, p.height)
	}
	dx := p.domain.Max.X - p.domain.Min.X
	dy := p.domain.Max.Y - p.domain.Min.Y
	if !(dx > 0) || !(dy > 0) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "plot domain %v is empty or unbounded", p.domain)
	}
	return nil
}

// Width returns the canvas width in pixels.
func (p *Plot) Width() int { return p.width }

// Height returns the canvas height in pixels.
func (p *Plot) Height() int { return p.height }

// Domain returns the data range shown on the axes.
func (p *Plot) Domain() geom.Rect { return p.domain }

// areaSize returns the plot area size in pixels.
func (p *Plot) areaSize() (w, h int) {
	return p.width - 2*p.margin, p.height - 2*p.margin
}

// Map converts a data coordinate into a canvas pixel. Domain.Min.Y maps to
// the bottom of the plot area and Domain.Max.Y to the top. ok is false for
// points outside the domain.
func (p *Plot) Map(c geom.Coord) (x, y int, ok bool) {
	d := p.domain
	if c.X < d.Min.X || c.X > d.Max.X || c.Y < d.Min.Y || c.Y > d.Max.Y || math.IsNaN(c.X) || math.IsNaN(c.Y) {
		return 0, 0, false
	}
	w, h := p.areaSize()
	fx := (c.X - d.Min.X) / (d.Max.X - d.Min.X) * float64(w)
	fy := (d.Max.Y - c.Y) / (d.Max.Y - d.Min.Y) * float64(h)
	// The far edge of the domain lands on the last pixel, not one past it.
	x = p.margin + min(int(fx), w-1)
	y = p.margin + min(int(fy), h-1)
	return x, y, true
}

// Draw renders points onto a fresh canvas and returns it. The caller owns
// the returned context and should Close it. An empty cloud yields a canvas
// with only the background and mesh.
func (p *Plot) Draw(points []geom.Coord) (*gg.Context, error) {
	dc := gg.NewContext(p.width, p.height)
	dc.ClearWithColor(p.background)

	if err := p.drawMesh(dc); err != nil {
		_ = dc.Close()
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "draw mesh")
	}

	for _, pt := range points {
		if x, y, ok := p.Map(pt); ok {
			dc.SetPixel(x, y, p.foreground)
		}
	}
	return dc, nil
}

// drawMesh strokes the light grid first and the bold grid over it.
func (p *Plot) drawMesh(dc *gg.Context) error {
	if p.meshLines <= 0 {
		return nil
	}
	dc.SetLineWidth(1)

	if p.meshSub > 1 {
		total := p.meshLines * p.meshSub
		for i := 0; i <= total; i++ {
			if i%p.meshSub == 0 {
				continue
			}
			p.meshLine(dc, float64(i)/float64(total))
		}
		dc.SetRGBA(0, 0, 0, meshLightAlpha)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	for i := 0; i <= p.meshLines; i++ {
		p.meshLine(dc, float64(i)/float64(p.meshLines))
	}
	dc.SetRGBA(0, 0, 0, meshBoldAlpha)
	return dc.Stroke()
}

// meshLine adds one vertical and one horizontal line at fraction t of the
// domain to the current path. Lines are centered on pixels so they stay crisp.
func (p *Plot) meshLine(dc *gg.Context, t float64) {
	d := p.domain
	c := geom.Coord{
		X: math.Min(d.Min.X+t*(d.Max.X-d.Min.X), d.Max.X),
		Y: math.Min(d.Min.Y+t*(d.Max.Y-d.Min.Y), d.Max.Y),
	}
	x, y, ok := p.Map(c)
	if !ok {
		return
	}
	w, h := p.areaSize()
	left, top := float64(p.margin), float64(p.margin)
	right, bottom := left+float64(w), top+float64(h)

	dc.DrawLine(float64(x)+0.5, top, float64(x)+0.5, bottom)
	dc.DrawLine(left, float64(y)+0.5, right, float64(y)+0.5)
}
