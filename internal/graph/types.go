package graph

// Job is a single unit of work in a workflow. Its execution time is the
// cost of running it alone on one machine.
type Job struct {
	Name     string `json:"name"`
	ExecTime int    `json:"exec_time"`
}

// Comm is a directed data transfer from one job to another. CommTime is
// paid only when the two jobs execute on different machines. Endpoints
// are stored by job name; the Job values themselves live in the workflow
// arena.
type Comm struct {
	From     string `json:"from"`
	To       string `json:"to"`
	CommTime int    `json:"comm_time"`
}

// Workflow is a directed acyclic graph of jobs and communications.
// It is built once and read many times: there are no removal operations,
// and scheduling never mutates it, so a Workflow may be shared read-only
// across concurrent schedule computations.
type Workflow struct {
	jobs  map[string]*Job
	names []string // insertion order, for deterministic iteration
	out   map[string][]*Comm
	in    map[string][]*Comm
}
