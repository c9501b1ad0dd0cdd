package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rebalance/core"
)

// ExampleNode_Receive shows that a move past capacity is refused, not clamped.
func ExampleNode_Receive() {
	n := &core.Node{Index: 3, Capacity: 10, Bikes: 8}

	err := n.Receive(2)
	fmt.Println(err, n.Bikes)
	err = n.Receive(1)
	fmt.Println(errors.Is(err, core.ErrInvariantViolation), n.Bikes)
	// Output:
	// <nil> 10
	// true 10
}
