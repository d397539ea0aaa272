package graph

import (
	"errors"
	"testing"
)

func buildDiamond(t *testing.T) *Workflow {
	t.Helper()
	// A -> B -> D
	// A -> C -> D
	w := New()
	for _, j := range []struct {
		name string
		exec int
	}{{"A", 5}, {"B", 3}, {"C", 8}, {"D", 4}} {
		if err := w.AddJob(j.name, j.exec); err != nil {
			t.Fatalf("AddJob(%s): %v", j.name, err)
		}
	}
	for _, e := range []struct {
		from, to string
		comm     int
	}{{"A", "B", 2}, {"A", "C", 1}, {"B", "D", 3}, {"C", "D", 4}} {
		if err := w.AddComm(e.from, e.to, e.comm); err != nil {
			t.Fatalf("AddComm(%s->%s): %v", e.from, e.to, err)
		}
	}
	return w
}

func TestAddJob_Duplicate(t *testing.T) {
	w := New()
	if err := w.AddJob("A", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := w.AddJob("A", 7)
	if err == nil {
		t.Fatal("expected error for duplicate job name")
	}
	var dup *DuplicateJobError
	if !errors.As(err, &dup) {
		t.Errorf("expected *DuplicateJobError, got %T", err)
	}

	// Original job must be unchanged
	j, ok := w.Job("A")
	if !ok || j.ExecTime != 5 {
		t.Errorf("expected job A with exec time 5, got %+v", j)
	}
	if w.JobCount() != 1 {
		t.Errorf("expected 1 job, got %d", w.JobCount())
	}
}

func TestAddJob_NegativeExecTime(t *testing.T) {
	w := New()
	if err := w.AddJob("A", -1); err == nil {
		t.Fatal("expected error for negative execution time")
	}
	if w.JobCount() != 0 {
		t.Errorf("expected empty workflow, got %d jobs", w.JobCount())
	}
}

func TestAddComm_UnknownJob(t *testing.T) {
	w := New()
	if err := w.AddJob("A", 5); err != nil {
		t.Fatalf("AddJob: %v", err)
	}

	for _, pair := range [][2]string{{"A", "Z"}, {"Z", "A"}} {
		err := w.AddComm(pair[0], pair[1], 1)
		if err == nil {
			t.Fatalf("expected error for edge %s->%s", pair[0], pair[1])
		}
		var unknown *UnknownJobError
		if !errors.As(err, &unknown) {
			t.Errorf("expected *UnknownJobError, got %T", err)
		}
		if unknown.Name != "Z" {
			t.Errorf("expected unknown job Z, got %s", unknown.Name)
		}
	}

	if len(w.OutEdges("A")) != 0 || len(w.InEdges("A")) != 0 {
		t.Error("failed AddComm must leave the workflow unchanged")
	}
}

func TestEdgeIndices(t *testing.T) {
	w := buildDiamond(t)

	out := w.OutEdges("A")
	if len(out) != 2 || out[0].To != "B" || out[1].To != "C" {
		t.Errorf("unexpected out edges of A: %+v", out)
	}

	in := w.InEdges("D")
	if len(in) != 2 || in[0].From != "B" || in[1].From != "C" {
		t.Errorf("unexpected in edges of D: %+v", in)
	}

	if got := w.Successors("A"); len(got) != 2 || got[0] != "B" || got[1] != "C" {
		t.Errorf("unexpected successors of A: %v", got)
	}
	if got := w.Predecessors("D"); len(got) != 2 || got[0] != "B" || got[1] != "C" {
		t.Errorf("unexpected predecessors of D: %v", got)
	}
}

func TestParallelEdgesKeepMultiplicity(t *testing.T) {
	w := New()
	if err := w.AddJob("A", 1); err != nil {
		t.Fatalf("AddJob: %v", err)
	}
	if err := w.AddJob("B", 1); err != nil {
		t.Fatalf("AddJob: %v", err)
	}
	// Two independent transfers between the same pair
	if err := w.AddComm("A", "B", 2); err != nil {
		t.Fatalf("AddComm: %v", err)
	}
	if err := w.AddComm("A", "B", 5); err != nil {
		t.Fatalf("AddComm: %v", err)
	}

	if got := w.Predecessors("B"); len(got) != 2 {
		t.Errorf("expected predecessor multiplicity 2, got %v", got)
	}
	if w.Indegree("B") != 2 {
		t.Errorf("expected indegree 2, got %d", w.Indegree("B"))
	}
}

func TestIndegrees(t *testing.T) {
	w := buildDiamond(t)

	deg := w.Indegrees()
	want := map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}
	for name, d := range want {
		if deg[name] != d {
			t.Errorf("indegree of %s: expected %d, got %d", name, d, deg[name])
		}
	}

	// The returned map must be a private working copy
	deg["D"] = 0
	if w.Indegree("D") != 2 {
		t.Error("mutating the Indegrees result leaked into the workflow")
	}
}

func TestRootsAndTerminals(t *testing.T) {
	w := buildDiamond(t)

	if roots := w.Roots(); len(roots) != 1 || roots[0] != "A" {
		t.Errorf("expected roots=[A], got %v", roots)
	}
	if terms := w.Terminals(); len(terms) != 1 || terms[0] != "D" {
		t.Errorf("expected terminals=[D], got %v", terms)
	}
}

func TestJobsInsertionOrder(t *testing.T) {
	w := buildDiamond(t)

	var names []string
	for _, j := range w.Jobs() {
		names = append(names, j.Name)
	}
	want := []string{"A", "B", "C", "D"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("expected job order %v, got %v", want, names)
		}
	}
}

func TestTotalExecTime(t *testing.T) {
	w := buildDiamond(t)
	if got := w.TotalExecTime(); got != 20 {
		t.Errorf("expected total exec time 20, got %d", got)
	}
}

func TestDetectCycle_Acyclic(t *testing.T) {
	w := buildDiamond(t)
	if cycle := w.DetectCycle(); cycle != nil {
		t.Errorf("expected no cycle, got %v", cycle)
	}
}

func TestDetectCycle_Cyclic(t *testing.T) {
	w := New()
	for _, name := range []string{"A", "B", "C"} {
		if err := w.AddJob(name, 1); err != nil {
			t.Fatalf("AddJob: %v", err)
		}
	}
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}} {
		if err := w.AddComm(e[0], e[1], 1); err != nil {
			t.Fatalf("AddComm: %v", err)
		}
	}

	cycle := w.DetectCycle()
	if cycle == nil {
		t.Fatal("expected a cycle")
	}
	if len(cycle) != 3 {
		t.Errorf("expected cycle of length 3, got %v", cycle)
	}
}
