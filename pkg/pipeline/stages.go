package pipeline

import (
	"github.com/jbeda/geom"

	"github.com/matzehuels/chaosgame/pkg/chaos"
	"github.com/matzehuels/chaosgame/pkg/errors"
	"github.com/matzehuels/chaosgame/pkg/plot"
	"github.com/matzehuels/chaosgame/pkg/polygon"
)

func buildPolygon(opts Options) ([]geom.Coord, error) {
	verts, err := polygon.Regular(opts.Edges, opts.Radius)
	if err != nil {
		return nil, err
	}
	if err := checkCoverage(verts, opts.domain()); err != nil {
		return nil, err
	}
	return verts, nil
}

// checkCoverage verifies that domain contains the bounding box of verts.
// Sampled points stay inside the convex hull, so a covered polygon means no
// point is clipped by the plot.
func checkCoverage(verts []geom.Coord, domain geom.Rect) error {
	b := polygon.Bounds(verts)
	if b.Min.X < domain.Min.X || b.Min.Y < domain.Min.Y || b.Max.X > domain.Max.X || b.Max.Y > domain.Max.Y {
		return errors.New(errors.ErrCodeInternal, "polygon bounds %v exceed plot domain %v", b, domain)
	}
	return nil
}

func samplePoints(verts []geom.Coord, opts Options) ([]geom.Coord, error) {
	return chaos.Sample(verts, opts.Iterations, opts.source())
}

// renderPoints plots onto the square [-Radius, Radius]².
func renderPoints(points []geom.Coord, opts Options) error {
	p, err := plot.New(opts.plotOptions()...)
	if err != nil {
		return err
	}
	return p.WriteFile(opts.Output, points)
}
