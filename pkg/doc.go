// Package pkg provides the libraries behind the chaosgame renderer.
//
// # Overview
//
// Chaosgame approximates a Sierpinski-like attractor with the chaos game:
// starting at a vertex of a regular polygon, it repeatedly jumps halfway
// toward a randomly chosen vertex and plots every landing point. The pkg
// directory is organized by stage:
//
//  1. [polygon] - Regular polygon vertex sets
//  2. [chaos] - The chaos game sampler and its random sources
//  3. [plot] - Rasterizing point clouds onto a gridded canvas
//  4. [pipeline] - Orchestration (polygon → sample → render)
//  5. [config] - TOML configuration files
//
// # Architecture
//
// Data flows strictly forward:
//
//	edges, radius
//	     ↓
//	[polygon] package (vertex set)
//	     ↓
//	[chaos] package (point cloud)
//	     ↓
//	[plot] package (PNG/JPEG/BMP/TIFF image)
//
// # Quick Start
//
// Render the reference Sierpinski triangle:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/chaosgame/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil)
//	result, err := runner.Execute(context.Background(), pipeline.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", result.Output)
//
// Or drive the stages yourself:
//
//	verts, _ := polygon.Regular(5, 10000)
//	points, _ := chaos.Sample(verts, 100000, chaos.Seeded(7))
//	p, _ := plot.New(plot.WithSymmetricDomain(10000))
//	err := p.WriteFile("pentagon.png", points)
//
// # Supporting Packages
//
//   - [errors] - Structured error codes shared by all stages
//   - [observability] - Pipeline hooks for metrics and tracing
//   - [buildinfo] - Version information set at build time
//
// [polygon]: https://pkg.go.dev/github.com/matzehuels/chaosgame/pkg/polygon
// [chaos]: https://pkg.go.dev/github.com/matzehuels/chaosgame/pkg/chaos
// [plot]: https://pkg.go.dev/github.com/matzehuels/chaosgame/pkg/plot
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/chaosgame/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/chaosgame/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/chaosgame/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/chaosgame/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/chaosgame/pkg/buildinfo
package pkg
