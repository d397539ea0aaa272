package sched

import (
	"cmp"
	"fmt"

	"github.com/addrummond/heap"

	"github.com/rfoley/makespan/internal/graph"
)

// readyJob is a heap entry for a job whose predecessors have all been
// ordered. seq is a monotonically increasing push counter used to break
// weight ties deterministically: of two equal weights, the job that
// became ready first wins.
type readyJob struct {
	name   string
	weight int
	seq    int
}

func (a *readyJob) Cmp(b *readyJob) int {
	if c := cmp.Compare(a.weight, b.weight); c != 0 {
		return c
	}
	return cmp.Compare(b.seq, a.seq)
}

// TopoOrder produces a linear execution order consistent with the
// dependency edges. Among simultaneously-ready jobs the one with the
// highest critical weight goes first, so the job gating the longest
// remaining chain of work is never needlessly delayed.
//
// Each of the V pops costs O(log V) and each of the E edges is consulted
// once, for O(V log V + E) total. Returns ErrCyclicGraph (wrapped) when
// fewer than V jobs can be ordered.
func TopoOrder(w *graph.Workflow, weights map[string]int) ([]string, error) {
	inDegree := w.Indegrees()

	var ready heap.Heap[readyJob, heap.Max]
	seq := 0
	push := func(name string) {
		heap.PushOrderable(&ready, readyJob{name: name, weight: weights[name], seq: seq})
		seq++
	}

	for _, j := range w.Jobs() {
		if inDegree[j.Name] == 0 {
			push(j.Name)
		}
	}

	order := make([]string, 0, w.JobCount())
	for {
		next, ok := heap.PopOrderable(&ready)
		if !ok {
			break
		}
		order = append(order, next.name)

		for _, succ := range w.Successors(next.name) {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				push(succ)
			}
		}
	}

	if len(order) != w.JobCount() {
		return nil, fmt.Errorf("%w (%d of %d jobs ordered)", ErrCyclicGraph, len(order), w.JobCount())
	}
	return order, nil
}
