// Package polygon builds the vertex sets the chaos game jumps toward.
//
// Vertices lie on a circle centered at the origin. Vertex i sits at angle
// i·2π/N measured from the positive y axis, with x = R·sin(θ) and
// y = R·cos(θ), so vertex 0 is always (0, R) and the polygon points up.
package polygon

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"

	"github.com/matzehuels/chaosgame/pkg/errors"
)

// MinEdges is the smallest polygon Regular accepts.
const MinEdges = 3

// ErrTooFewEdges is the cause attached when fewer than MinEdges are requested.
var ErrTooFewEdges = fmt.Errorf("polygon needs at least %d edges", MinEdges)

// Regular returns the vertices of a regular polygon with the given number of
// edges, inscribed in a circle of the given radius.
//
// Requests for fewer than MinEdges edges are rejected with an INVALID_INPUT
// error wrapping ErrTooFewEdges.
func Regular(edges int, radius float64) ([]geom.Coord, error) {
	if edges < MinEdges {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, ErrTooFewEdges, "invalid edge count %d", edges)
	}
	if err := errors.ValidateFinitePositive("radius", radius); err != nil {
		return nil, err
	}

	step := 2 * math.Pi / float64(edges)
	out := make([]geom.Coord, 0, edges)
	for i := 0; i < edges; i++ {
		theta := float64(i) * step
		out = append(out, geom.Coord{
			X: radius * math.Sin(theta),
			Y: radius * math.Cos(theta),
		})
	}
	return out, nil
}

// Bounds returns the axis-aligned bounding box of vertices.
// The chaos game never leaves the convex hull of its vertices, so this box
// also bounds every sampled point. An empty slice yields the zero Rect.
func Bounds(vertices []geom.Coord) geom.Rect {
	if len(vertices) == 0 {
		return geom.Rect{}
	}
	r := geom.Rect{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		r.Min.X = math.Min(r.Min.X, v.X)
		r.Min.Y = math.Min(r.Min.Y, v.Y)
		r.Max.X = math.Max(r.Max.X, v.X)
		r.Max.Y = math.Max(r.Max.Y, v.Y)
	}
	return r
}
