package graph

import "fmt"

// New returns an empty workflow.
func New() *Workflow {
	return &Workflow{
		jobs: make(map[string]*Job),
		out:  make(map[string][]*Comm),
		in:   make(map[string][]*Comm),
	}
}

// AddJob inserts a job with the given name and execution time.
// Returns *DuplicateJobError if the name is taken.
func (w *Workflow) AddJob(name string, execTime int) error {
	if _, ok := w.jobs[name]; ok {
		return &DuplicateJobError{Name: name}
	}
	if execTime < 0 {
		return fmt.Errorf("job %q: execution time must be non-negative, got %d", name, execTime)
	}
	w.jobs[name] = &Job{Name: name, ExecTime: execTime}
	w.names = append(w.names, name)
	return nil
}

// AddComm inserts a directed communication edge between two existing jobs.
// Both endpoints are indexed, so in- and out-edge queries stay O(1).
// Returns *UnknownJobError if either endpoint is absent.
func (w *Workflow) AddComm(from, to string, commTime int) error {
	if _, ok := w.jobs[from]; !ok {
		return &UnknownJobError{Name: from}
	}
	if _, ok := w.jobs[to]; !ok {
		return &UnknownJobError{Name: to}
	}
	if commTime < 0 {
		return fmt.Errorf("communication %s -> %s: time must be non-negative, got %d", from, to, commTime)
	}
	c := &Comm{From: from, To: to, CommTime: commTime}
	w.out[from] = append(w.out[from], c)
	w.in[to] = append(w.in[to], c)
	return nil
}

// Job returns the job with the given name.
func (w *Workflow) Job(name string) (*Job, bool) {
	j, ok := w.jobs[name]
	return j, ok
}

// Jobs returns all jobs in insertion order.
func (w *Workflow) Jobs() []*Job {
	jobs := make([]*Job, len(w.names))
	for i, name := range w.names {
		jobs[i] = w.jobs[name]
	}
	return jobs
}

// JobCount returns the number of jobs in the workflow.
func (w *Workflow) JobCount() int {
	return len(w.names)
}

// OutEdges returns the outgoing communications of a job in insertion order.
func (w *Workflow) OutEdges(name string) []*Comm {
	return w.out[name]
}

// InEdges returns the incoming communications of a job in insertion order.
func (w *Workflow) InEdges(name string) []*Comm {
	return w.in[name]
}

// Successors returns the destination of every outgoing edge. A neighbor
// appears once per connecting edge, since each edge carries an independent
// communication cost.
func (w *Workflow) Successors(name string) []string {
	edges := w.out[name]
	succs := make([]string, len(edges))
	for i, c := range edges {
		succs[i] = c.To
	}
	return succs
}

// Predecessors returns the source of every incoming edge, one entry per
// edge as with Successors.
func (w *Workflow) Predecessors(name string) []string {
	edges := w.in[name]
	preds := make([]string, len(edges))
	for i, c := range edges {
		preds[i] = c.From
	}
	return preds
}

// Indegree returns the number of incoming edges of a job.
func (w *Workflow) Indegree(name string) int {
	return len(w.in[name])
}

// Indegrees returns a fresh name-to-indegree map. Callers may decrement
// the returned map freely; the workflow's own indices are untouched.
func (w *Workflow) Indegrees() map[string]int {
	deg := make(map[string]int, len(w.names))
	for _, name := range w.names {
		deg[name] = len(w.in[name])
	}
	return deg
}

// Roots returns jobs with no incoming edges, in insertion order.
func (w *Workflow) Roots() []string {
	var roots []string
	for _, name := range w.names {
		if len(w.in[name]) == 0 {
			roots = append(roots, name)
		}
	}
	return roots
}

// Terminals returns jobs with no outgoing edges, in insertion order.
func (w *Workflow) Terminals() []string {
	var terms []string
	for _, name := range w.names {
		if len(w.out[name]) == 0 {
			terms = append(terms, name)
		}
	}
	return terms
}

// TotalExecTime returns the sum of all execution times, i.e. the makespan
// of running the whole workflow on a single machine.
func (w *Workflow) TotalExecTime() int {
	total := 0
	for _, j := range w.jobs {
		total += j.ExecTime
	}
	return total
}

// DetectCycle returns the path of a dependency cycle if one exists, or nil
// if the workflow is acyclic. Uses DFS with coloring: white (unvisited),
// gray (in progress), black (done). Scheduling assumes an acyclic input;
// callers wanting a readable diagnostic instead of a scheduling error can
// run this first.
func (w *Workflow) DetectCycle() []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[string]int)
	parent := make(map[string]string)

	var dfs func(name string) []string
	dfs = func(name string) []string {
		color[name] = gray
		for _, next := range w.Successors(name) {
			if color[next] == gray {
				// Found a cycle, reconstruct it
				cycle := []string{next, name}
				cur := name
				for cur != next {
					cur = parent[cur]
					cycle = append(cycle, cur)
				}
				// Reverse to get forward order
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				return cycle
			}
			if color[next] == white {
				parent[next] = name
				if cycle := dfs(next); cycle != nil {
					return cycle
				}
			}
		}
		color[name] = black
		return nil
	}

	for _, name := range w.names {
		if color[name] == white {
			if cycle := dfs(name); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
