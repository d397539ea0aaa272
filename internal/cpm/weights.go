package cpm

import (
	"github.com/gammazero/deque"

	"github.com/rfoley/makespan/internal/graph"
)

// Weight of a job = its execution time plus the heaviest outgoing
// commTime+weight chain, i.e. the longest accumulated cost over any path
// from the job to a terminal job. A terminal job's weight is its execution
// time. Weights are a static priority signal: they are computed from the
// graph alone and ignore machine assignments.

const (
	unvisited = iota
	visiting
	done
)

type frame struct {
	name     string
	expanded bool
}

// Weights computes the critical weight of every job in O(V+E) using an
// explicit depth-first stack with memoization, so deep chains cannot
// exhaust goroutine stack space. The input must be acyclic; on a cyclic
// input the walk still terminates but back edges contribute nothing.
func Weights(w *graph.Workflow) map[string]int {
	memo := make(map[string]int, w.JobCount())
	state := make(map[string]int, w.JobCount())

	var stack deque.Deque[frame]
	for _, j := range w.Jobs() {
		if state[j.Name] == done {
			continue
		}
		stack.PushBack(frame{name: j.Name})

		for stack.Len() > 0 {
			f := stack.PopBack()

			if f.expanded {
				// Children are memoized now; accumulate max, then add.
				best := 0
				for _, e := range w.OutEdges(f.name) {
					if cw, ok := memo[e.To]; ok && e.CommTime+cw > best {
						best = e.CommTime + cw
					}
				}
				job, _ := w.Job(f.name)
				memo[f.name] = job.ExecTime + best
				state[f.name] = done
				continue
			}

			if state[f.name] != unvisited {
				continue
			}
			state[f.name] = visiting
			stack.PushBack(frame{name: f.name, expanded: true})
			for _, e := range w.OutEdges(f.name) {
				if state[e.To] == unvisited {
					stack.PushBack(frame{name: e.To})
				}
			}
		}
	}
	return memo
}
