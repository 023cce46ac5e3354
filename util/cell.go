package util

import "fmt"

// Cell is used as the return type for the testing framework.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Check panics on any non-nil error. Only used for plumbing failures that
// leave nothing sensible to recover to.
func Check(err error) {
	if err != nil {
		panic(err)
	}
}
