package distfield_test

import (
	"fmt"
	"strings"

	"github.com/PennIARC/GridTesting/distfield"
	"github.com/PennIARC/GridTesting/terrain"
)

// ExampleBuild partitions a 7×3 strip between two mines on the middle row.
// Cells print as distance/owner; the equidistant column goes to mine 0.
func ExampleBuild() {
	f, _ := distfield.Build(7, 3, []terrain.Point{{X: 0, Y: 1}, {X: 6, Y: 1}})
	for y := 0; y < f.Height; y++ {
		cells := make([]string, 0, f.Width)
		for x := 0; x < f.Width; x++ {
			d, _ := f.Distance(terrain.Point{X: x, Y: y})
			id, _ := f.Owner(terrain.Point{X: x, Y: y})
			cells = append(cells, fmt.Sprintf("%d/%d", d, id))
		}
		fmt.Println(strings.Join(cells, " "))
	}
	// Output:
	// 1/0 2/0 3/0 4/0 3/1 2/1 1/1
	// 0/0 1/0 2/0 3/0 2/1 1/1 0/1
	// 1/0 2/0 3/0 4/0 3/1 2/1 1/1
}
