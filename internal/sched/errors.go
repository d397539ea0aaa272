package sched

import (
	"errors"
	"fmt"
)

// ErrCyclicGraph is returned when the workflow cannot be fully ordered.
// The dependency relation is an external precondition; rather than hanging
// or silently truncating the order, the sorter reports the violation.
var ErrCyclicGraph = errors.New("workflow contains a dependency cycle")

// InvalidMachineCountError is returned when scheduling is requested onto
// fewer than one machine.
type InvalidMachineCountError struct {
	Count int
}

func (e *InvalidMachineCountError) Error() string {
	return fmt.Sprintf("machine count must be at least 1, got %d", e.Count)
}
