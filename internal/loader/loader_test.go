package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rfoley/makespan/internal/graph"
)

func TestParse_Example(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "example.json"))
	if err != nil {
		t.Fatalf("read testdata: %v", err)
	}

	w, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.JobCount() != 8 {
		t.Errorf("expected 8 jobs, got %d", w.JobCount())
	}
	if j, ok := w.Job("C"); !ok || j.ExecTime != 8 {
		t.Errorf("expected job C with exec time 8, got %+v", j)
	}
	if len(w.InEdges("D")) != 3 {
		t.Errorf("expected 3 in edges for D, got %d", len(w.InEdges("D")))
	}
	if edges := w.OutEdges("G"); len(edges) != 1 || edges[0].CommTime != 2 {
		t.Errorf("unexpected out edges for G: %+v", edges)
	}
}

func TestParse_MatchesBuiltInExample(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "example.json"))
	if err != nil {
		t.Fatalf("read testdata: %v", err)
	}

	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	builtin := Example()

	if parsed.JobCount() != builtin.JobCount() {
		t.Fatalf("job count mismatch: %d vs %d", parsed.JobCount(), builtin.JobCount())
	}
	for _, j := range builtin.Jobs() {
		p, ok := parsed.Job(j.Name)
		if !ok || p.ExecTime != j.ExecTime {
			t.Errorf("job %s: expected %+v, got %+v", j.Name, j, p)
		}
		if len(parsed.OutEdges(j.Name)) != len(builtin.OutEdges(j.Name)) {
			t.Errorf("job %s: out edge count mismatch", j.Name)
		}
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	if _, err := Parse([]byte("{jobs:")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestParse_MissingJobs(t *testing.T) {
	if _, err := Parse([]byte(`{"comms": []}`)); err == nil {
		t.Fatal("expected error for missing jobs array")
	}
}

func TestParse_UnnamedJob(t *testing.T) {
	if _, err := Parse([]byte(`{"jobs": [{"exec": 3}]}`)); err == nil {
		t.Fatal("expected error for unnamed job")
	}
}

func TestParse_DuplicateJob(t *testing.T) {
	data := []byte(`{"jobs": [{"name": "A", "exec": 1}, {"name": "A", "exec": 2}]}`)
	_, err := Parse(data)
	if err == nil {
		t.Fatal("expected error for duplicate job")
	}
	var dup *graph.DuplicateJobError
	if !errors.As(err, &dup) {
		t.Errorf("expected *graph.DuplicateJobError, got %T", err)
	}
}

func TestParse_UnknownEndpoint(t *testing.T) {
	data := []byte(`{"jobs": [{"name": "A", "exec": 1}], "comms": [{"from": "A", "to": "Z", "time": 1}]}`)
	_, err := Parse(data)
	if err == nil {
		t.Fatal("expected error for unknown endpoint")
	}
	var unknown *graph.UnknownJobError
	if !errors.As(err, &unknown) {
		t.Errorf("expected *graph.UnknownJobError, got %T", err)
	}
}

func TestParse_CycleRejected(t *testing.T) {
	data := []byte(`{
		"jobs": [{"name": "A", "exec": 1}, {"name": "B", "exec": 1}],
		"comms": [
			{"from": "A", "to": "B", "time": 1},
			{"from": "B", "to": "A", "time": 1}
		]
	}`)
	if _, err := Parse(data); err == nil {
		t.Fatal("expected error for cyclic workflow")
	}
}

func TestLoad_File(t *testing.T) {
	w, err := Load(filepath.Join("testdata", "example.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.JobCount() != 8 {
		t.Errorf("expected 8 jobs, got %d", w.JobCount())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
