package cpm

import (
	"fmt"
	"sort"

	"github.com/rfoley/makespan/internal/graph"
)

// Analyze performs critical path analysis on a workflow. Edge communication
// costs are always included, which makes the result a machine-free bound:
// no assignment can beat an earliest finish, and a job with zero slack gates
// the total duration no matter where it is placed.
func Analyze(w *graph.Workflow) (*Result, error) {
	order, err := topoSort(w)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Jobs:      make(map[string]*JobTimes, len(order)),
		TopoOrder: order,
	}
	for _, name := range order {
		result.Jobs[name] = &JobTimes{Name: name}
	}

	// Forward pass: ES = max over in edges of (EF of source + comm)
	for _, name := range order {
		jt := result.Jobs[name]
		es := 0
		for _, e := range w.InEdges(name) {
			if t := result.Jobs[e.From].EF + e.CommTime; t > es {
				es = t
			}
		}
		job, _ := w.Job(name)
		jt.ES = es
		jt.EF = es + job.ExecTime
	}

	totalDuration := 0
	for _, jt := range result.Jobs {
		if jt.EF > totalDuration {
			totalDuration = jt.EF
		}
	}
	result.TotalDuration = totalDuration

	// Backward pass in reverse topological order:
	// LF = min over out edges of (LS of destination - comm)
	for i := len(order) - 1; i >= 0; i-- {
		name := order[i]
		jt := result.Jobs[name]
		job, _ := w.Job(name)

		out := w.OutEdges(name)
		if len(out) == 0 {
			jt.LF = totalDuration
		} else {
			lf := totalDuration
			for _, e := range out {
				if t := result.Jobs[e.To].LS - e.CommTime; t < lf {
					lf = t
				}
			}
			jt.LF = lf
		}
		jt.LS = jt.LF - job.ExecTime

		jt.Slack = jt.LS - jt.ES
		jt.IsCritical = jt.Slack == 0
	}

	// Critical path = critical jobs in topological order
	for _, name := range order {
		if result.Jobs[name].IsCritical {
			result.CriticalPath = append(result.CriticalPath, name)
		}
	}

	result.Waves = computeWaves(result)

	return result, nil
}

// topoSort performs Kahn's algorithm, seeding the queue with zero-indegree
// jobs in insertion order for determinism.
func topoSort(w *graph.Workflow) ([]string, error) {
	inDegree := w.Indegrees()

	var queue []string
	for _, j := range w.Jobs() {
		if inDegree[j.Name] == 0 {
			queue = append(queue, j.Name)
		}
	}

	var order []string
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		order = append(order, name)

		for _, succ := range w.Successors(name) {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	if len(order) != w.JobCount() {
		return nil, fmt.Errorf("workflow has a dependency cycle (%d of %d jobs sorted)", len(order), w.JobCount())
	}
	return order, nil
}

// computeWaves groups jobs by their earliest start time.
func computeWaves(result *Result) []Wave {
	esGroups := make(map[int][]string)
	for _, name := range result.TopoOrder {
		es := result.Jobs[name].ES
		esGroups[es] = append(esGroups[es], name)
	}

	esValues := make([]int, 0, len(esGroups))
	for es := range esGroups {
		esValues = append(esValues, es)
	}
	sort.Ints(esValues)

	waves := make([]Wave, len(esValues))
	for i, es := range esValues {
		names := esGroups[es]

		hasCritical := false
		for _, name := range names {
			result.Jobs[name].Wave = i
			if result.Jobs[name].IsCritical {
				hasCritical = true
			}
		}

		// Critical jobs first within the wave
		sort.SliceStable(names, func(a, b int) bool {
			aCrit := result.Jobs[names[a]].IsCritical
			bCrit := result.Jobs[names[b]].IsCritical
			return aCrit && !bCrit
		})

		waves[i] = Wave{
			Index:      i,
			Jobs:       names,
			IsCritical: hasCritical,
		}
	}
	return waves
}
