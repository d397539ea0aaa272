package graph

import "fmt"

// DuplicateJobError is returned when adding a job whose name is already
// taken. The workflow is left unchanged.
type DuplicateJobError struct {
	Name string
}

func (e *DuplicateJobError) Error() string {
	return fmt.Sprintf("job %q already exists", e.Name)
}

// UnknownJobError is returned when a communication references a job name
// that has not been added. The workflow is left unchanged.
type UnknownJobError struct {
	Name string
}

func (e *UnknownJobError) Error() string {
	return fmt.Sprintf("unknown job %q", e.Name)
}
