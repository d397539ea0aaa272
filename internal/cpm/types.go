package cpm

// Result holds the complete critical path analysis of a workflow.
type Result struct {
	Jobs          map[string]*JobTimes
	CriticalPath  []string // critical jobs in topological order
	TotalDuration int
	Waves         []Wave // groups of jobs sharing an earliest start
	TopoOrder     []string
}

// JobTimes holds the analysis values for a single job. All times assume
// unlimited machines with every communication cost paid, so they bound
// what any assignment onto finitely many machines can achieve.
type JobTimes struct {
	Name       string
	ES, EF     int // earliest start/finish
	LS, LF     int // latest start/finish
	Slack      int
	IsCritical bool
	Wave       int
}

// Wave is a group of jobs that share an earliest start time and could run
// in parallel given enough machines.
type Wave struct {
	Index      int
	Jobs       []string
	IsCritical bool // true if the wave contains critical path jobs
}
