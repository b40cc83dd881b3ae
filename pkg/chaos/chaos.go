// Package chaos runs the chaos game over a fixed vertex set.
//
// Starting from the first vertex, each step picks a vertex uniformly at
// random and moves the current point halfway toward it. Every landing point
// is recorded. Each point depends only on the one before it and a single
// draw, so the loop is inherently sequential.
//
// Randomness comes from a [Source]. Production runs use [Default], which is
// not reproducible; tests inject [Sequence] to replay exact draws.
package chaos

import (
	"fmt"

	"github.com/jbeda/geom"

	"github.com/matzehuels/chaosgame/pkg/errors"
)

// MaxIterations caps the point cloud at 2^28 points (4 GiB of coordinates).
// Larger requests are rejected before anything is allocated.
const MaxIterations = 1 << 28

// ErrNoVertices is the cause attached when Sample gets an empty vertex set.
var ErrNoVertices = fmt.Errorf("vertex set is empty")

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b geom.Coord) geom.Coord {
	return geom.Coord{
		X: (a.X + b.X) / 2,
		Y: (a.Y + b.Y) / 2,
	}
}

// Sample plays iterations rounds of the chaos game over vertices and returns
// the landing points in generation order. The result has exactly iterations
// elements. iterations must lie in [0, MaxIterations]. A nil src uses Default.
//
// An index outside [0, len(vertices)) from src is reported as an
// INTERNAL_ERROR rather than a panic.
func Sample(vertices []geom.Coord, iterations int, src Source) ([]geom.Coord, error) {
	if len(vertices) == 0 {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, ErrNoVertices, "cannot sample")
	}
	if iterations < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "iteration count must be non-negative, got %d", iterations)
	}
	if iterations > MaxIterations {
		return nil, errors.New(errors.ErrCodeInvalidInput, "iteration count %d exceeds the maximum of %d", iterations, MaxIterations)
	}
	if src == nil {
		src = Default()
	}

	n := len(vertices)
	out := make([]geom.Coord, 0, iterations)
	current := vertices[0]
	for i := 0; i < iterations; i++ {
		k := src.IntN(n)
		if k < 0 || k >= n {
			return nil, errors.New(errors.ErrCodeInternal, "source drew index %d outside [0, %d) at step %d", k, n, i)
		}
		current = Midpoint(current, vertices[k])
		out = append(out, current)
	}
	return out, nil
}
