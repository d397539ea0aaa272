package sched

// ScheduledJob records the placement of one job. ScheduleTime is the
// chosen machine's finish time before this job was placed; StartTime may
// be later when the job had to wait for data from another machine.
type ScheduledJob struct {
	Name         string `json:"name"`
	Machine      int    `json:"machine"`
	ScheduleTime int    `json:"schedule_time"`
	StartTime    int    `json:"start_time"`
	FinishTime   int    `json:"finish_time"`
}

// Schedule is the result of one scheduling run: every job placed in
// execution order, plus the makespan (the finish time of the last
// machine to go idle).
type Schedule struct {
	Machines int            `json:"machines"`
	Makespan int            `json:"makespan"`
	Jobs     []ScheduledJob `json:"jobs"`
}

// Order returns the job names in the order they were scheduled.
func (s *Schedule) Order() []string {
	order := make([]string, len(s.Jobs))
	for i, sj := range s.Jobs {
		order[i] = sj.Name
	}
	return order
}

// ByMachine groups the scheduled jobs per machine, preserving execution
// order within each machine.
func (s *Schedule) ByMachine() [][]ScheduledJob {
	lanes := make([][]ScheduledJob, s.Machines)
	for _, sj := range s.Jobs {
		lanes[sj.Machine] = append(lanes[sj.Machine], sj)
	}
	return lanes
}

// Job returns the placement record for a job name.
func (s *Schedule) Job(name string) (ScheduledJob, bool) {
	for _, sj := range s.Jobs {
		if sj.Name == name {
			return sj, true
		}
	}
	return ScheduledJob{}, false
}
