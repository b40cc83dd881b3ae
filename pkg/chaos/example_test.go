package chaos_test

import (
	"fmt"

	"github.com/jbeda/geom"

	"github.com/matzehuels/chaosgame/pkg/chaos"
)

func ExampleSample() {
	square := []geom.Coord{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 8}, {X: 0, Y: 8}}

	points, err := chaos.Sample(square, 3, chaos.Sequence(2, 2, 1))
	if err != nil {
		panic(err)
	}
	for _, p := range points {
		fmt.Println(p.X, p.Y)
	}
	// Output:
	// 4 4
	// 6 6
	// 7 3
}
