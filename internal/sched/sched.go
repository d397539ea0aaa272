// Package sched computes a heuristic placement of a workflow onto K
// identical machines. Finding an optimal schedule for a DAG with
// communication delays is NP-hard, so the package implements list
// scheduling: jobs are linearized by critical-weight priority, then each
// job is greedily committed to whichever machine finishes it earliest.
// The pass is strictly sequential and never revisits a placement; the
// result is a good schedule, not a provably optimal one.
package sched

import (
	"github.com/rfoley/makespan/internal/cpm"
	"github.com/rfoley/makespan/internal/graph"
)

// Run schedules the workflow onto the given number of machines.
// Deterministic for a fixed workflow and machine count: weight ties in
// the ordering fall back to readiness sequence, and machine ties go to
// the lowest index. The workflow is only read, so concurrent Run calls
// may share one workflow.
func Run(w *graph.Workflow, machines int) (*Schedule, error) {
	if machines < 1 {
		return nil, &InvalidMachineCountError{Count: machines}
	}

	weights := cpm.Weights(w)
	order, err := TopoOrder(w, weights)
	if err != nil {
		return nil, err
	}

	machineFinish := make([]int, machines)
	jobFinish := make(map[string]int, len(order))
	jobMachine := make(map[string]int, len(order))

	s := &Schedule{
		Machines: machines,
		Jobs:     make([]ScheduledJob, 0, len(order)),
	}

	for _, name := range order {
		job, _ := w.Job(name)

		// Evaluate every machine's earliest feasible start. A predecessor
		// on the same machine hands its data over for free; one on another
		// machine delays the start by the edge's communication time.
		bestMachine := -1
		bestStart := 0
		for m := 0; m < machines; m++ {
			start := machineFinish[m]
			for _, e := range w.InEdges(name) {
				avail := jobFinish[e.From]
				if jobMachine[e.From] != m {
					avail += e.CommTime
				}
				if avail > start {
					start = avail
				}
			}
			// Execution time is fixed, so the earliest finish is the
			// earliest start. Strict < keeps ties on the lowest index.
			if bestMachine == -1 || start < bestStart {
				bestMachine = m
				bestStart = start
			}
		}

		finish := bestStart + job.ExecTime
		s.Jobs = append(s.Jobs, ScheduledJob{
			Name:         name,
			Machine:      bestMachine,
			ScheduleTime: machineFinish[bestMachine],
			StartTime:    bestStart,
			FinishTime:   finish,
		})

		machineFinish[bestMachine] = finish
		jobFinish[name] = finish
		jobMachine[name] = bestMachine
	}

	for _, finish := range machineFinish {
		if finish > s.Makespan {
			s.Makespan = finish
		}
	}
	return s, nil
}
