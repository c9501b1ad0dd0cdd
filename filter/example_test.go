package filter_test

import (
	"fmt"

	"github.com/katalvlaran/rebalance/core"
	"github.com/katalvlaran/rebalance/filter"
)

// ExampleRequirements keeps the two largest bounds; 1 and 2 tie on value and
// the higher index ranks first.
func ExampleRequirements() {
	f, err := filter.NewRequirements(2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	out, err := f.Apply(0, core.Supply, filter.Candidates{1: 10, 2: 10, 5: 4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, k := range out.Keys() {
		fmt.Printf("%d:%d\n", k, out[k])
	}
	// Output:
	// 1:10
	// 2:10
}
