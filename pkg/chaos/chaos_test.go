package chaos

import (
	"math"
	"testing"

	"github.com/jbeda/geom"

	"github.com/matzehuels/chaosgame/pkg/errors"
	"github.com/matzehuels/chaosgame/pkg/polygon"
)

const tolerance = 1e-9

func triangle(t *testing.T) []geom.Coord {
	t.Helper()
	verts, err := polygon.Regular(3, 10000)
	if err != nil {
		t.Fatalf("polygon.Regular: %v", err)
	}
	return verts
}

// inHull reports whether p lies inside or on the convex polygon verts.
// eps is a distance tolerance for points on an edge.
func inHull(verts []geom.Coord, p geom.Coord, eps float64) bool {
	sign := 0
	for i := range verts {
		a, b := verts[i], verts[(i+1)%len(verts)]
		edge := b.Minus(a)
		cross := edge.X*(p.Y-a.Y) - edge.Y*(p.X-a.X)
		tol := eps * edge.Magnitude()
		switch {
		case cross > tol:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < -tol:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}

func TestInHull(t *testing.T) {
	verts := triangle(t)

	tests := []struct {
		name string
		p    geom.Coord
		want bool
	}{
		{"origin", geom.Coord{}, true},
		{"vertex", verts[1], true},
		{"edge midpoint", Midpoint(verts[0], verts[2]), true},
		{"above apex", geom.Coord{X: 0, Y: 10001}, false},
		{"below base", geom.Coord{X: 0, Y: -5001}, false},
		{"outside left", geom.Coord{X: -9000, Y: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inHull(verts, tt.p, tolerance); got != tt.want {
				t.Errorf("inHull(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMidpoint(t *testing.T) {
	tests := []struct {
		a, b, want geom.Coord
	}{
		{geom.Coord{X: 0, Y: 0}, geom.Coord{X: 2, Y: 4}, geom.Coord{X: 1, Y: 2}},
		{geom.Coord{X: -3, Y: 5}, geom.Coord{X: 3, Y: -5}, geom.Coord{X: 0, Y: 0}},
		{geom.Coord{X: 1, Y: 1}, geom.Coord{X: 1, Y: 1}, geom.Coord{X: 1, Y: 1}},
	}
	for _, tt := range tests {
		if got := Midpoint(tt.a, tt.b); got != tt.want {
			t.Errorf("Midpoint(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSampleLength(t *testing.T) {
	verts := triangle(t)
	for _, k := range []int{0, 1, 2, 10, 1000} {
		points, err := Sample(verts, k, Seeded(1))
		if err != nil {
			t.Fatalf("Sample(k=%d) error: %v", k, err)
		}
		if len(points) != k {
			t.Errorf("Sample(k=%d) returned %d points", k, len(points))
		}
	}
}

func TestSampleStaysInHull(t *testing.T) {
	for _, n := range []int{3, 4, 5, 8} {
		verts, err := polygon.Regular(n, 10000)
		if err != nil {
			t.Fatal(err)
		}
		points, err := Sample(verts, 20000, Seeded(uint64(n)))
		if err != nil {
			t.Fatal(err)
		}
		for i, p := range points {
			if !inHull(verts, p, tolerance) {
				t.Fatalf("n=%d point %d = %v lies outside the hull", n, i, p)
			}
		}
	}
}

func TestSampleKnownDraws(t *testing.T) {
	verts := triangle(t)
	points, err := Sample(verts, 3, Sequence(1, 1, 2))
	if err != nil {
		t.Fatal(err)
	}

	p1 := geom.Coord{X: (verts[0].X + verts[1].X) / 2, Y: (verts[0].Y + verts[1].Y) / 2}
	p2 := geom.Coord{X: (p1.X + verts[1].X) / 2, Y: (p1.Y + verts[1].Y) / 2}
	p3 := geom.Coord{X: (p2.X + verts[2].X) / 2, Y: (p2.Y + verts[2].Y) / 2}

	// Closed form for R=10000: v1 = (5000√3, -5000), v2 = (-5000√3, -5000).
	s := 5000 * math.Sqrt(3)
	closed := []geom.Coord{
		{X: s / 2, Y: 2500},
		{X: 3 * s / 4, Y: -1250},
		{X: -s / 8, Y: -3125},
	}

	for i, want := range []geom.Coord{p1, p2, p3} {
		if points[i].DistanceFrom(want) > tolerance {
			t.Errorf("point %d = %v, want %v", i, points[i], want)
		}
		if math.Abs(points[i].X-closed[i].X) > 1e-6 || math.Abs(points[i].Y-closed[i].Y) > 1e-6 {
			t.Errorf("point %d = %v, want closed form %v", i, points[i], closed[i])
		}
	}
}

func TestSampleIsReplayable(t *testing.T) {
	verts := triangle(t)
	draws := []int{0, 2, 1, 1, 0, 2, 2, 1}

	a, err := Sample(verts, 64, Sequence(draws...))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Sample(verts, 64, Sequence(draws...))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs between replays: %v vs %v", i, a[i], b[i])
		}
	}

	c, _ := Sample(verts, 64, Seeded(7))
	d, _ := Sample(verts, 64, Seeded(7))
	for i := range c {
		if c[i] != d[i] {
			t.Fatalf("seeded point %d differs: %v vs %v", i, c[i], d[i])
		}
	}
}

func TestSampleRecurrence(t *testing.T) {
	verts := triangle(t)
	var drawn []int
	src := SourceFunc(func(n int) int {
		k := len(drawn) % n
		drawn = append(drawn, k)
		return k
	})

	points, err := Sample(verts, 30, src)
	if err != nil {
		t.Fatal(err)
	}
	prev := verts[0]
	for i, p := range points {
		if want := Midpoint(prev, verts[drawn[i]]); p != want {
			t.Fatalf("point %d = %v, want %v", i, p, want)
		}
		prev = p
	}
}

func TestSampleErrors(t *testing.T) {
	verts := triangle(t)

	tests := []struct {
		name     string
		vertices []geom.Coord
		k        int
		src      Source
		code     errors.Code
	}{
		{"no vertices", nil, 10, nil, errors.ErrCodeInvalidInput},
		{"negative iterations", verts, -1, nil, errors.ErrCodeInvalidInput},
		{"iterations past maximum", verts, MaxIterations + 1, Sequence(0), errors.ErrCodeInvalidInput},
		{"unallocatable iterations", verts, math.MaxInt, Sequence(0), errors.ErrCodeInvalidInput},
		{"index too large", verts, 5, Sequence(3), errors.ErrCodeInternal},
		{"negative index", verts, 5, Sequence(-1), errors.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sample(tt.vertices, tt.k, tt.src)
			if !errors.Is(err, tt.code) {
				t.Errorf("Sample() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestDefaultSource(t *testing.T) {
	src := Default()
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		k := src.IntN(3)
		if k < 0 || k >= 3 {
			t.Fatalf("Default().IntN(3) = %d", k)
		}
		seen[k] = true
	}
	if len(seen) != 3 {
		t.Errorf("Default() drew only %v in 1000 tries", seen)
	}
}

func TestSampleNilSourceUsesDefault(t *testing.T) {
	points, err := Sample(triangle(t), 100, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 100 {
		t.Errorf("got %d points, want 100", len(points))
	}
}

func TestSequenceEmpty(t *testing.T) {
	if got := Sequence().IntN(5); got != 0 {
		t.Errorf("empty Sequence().IntN = %d, want 0", got)
	}
}
