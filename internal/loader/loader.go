// Package loader turns workflow definition documents into graphs.
//
// A definition is a JSON object with a jobs array and a comms array:
//
//	{
//	  "jobs":  [{"name": "A", "exec": 5}, ...],
//	  "comms": [{"from": "A", "to": "D", "time": 2}, ...]
//	}
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"

	"github.com/rfoley/makespan/internal/graph"
)

// Load reads a workflow definition from a file path, or from stdin when
// the path is "-".
func Load(path string) (*graph.Workflow, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read workflow definition: %w", err)
	}
	return Parse(data)
}

// Parse builds a workflow from a JSON definition.
func Parse(data []byte) (*graph.Workflow, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("workflow definition is not valid JSON")
	}

	doc := gjson.ParseBytes(data)
	jobs := doc.Get("jobs")
	if !jobs.IsArray() {
		return nil, fmt.Errorf(`workflow definition has no "jobs" array`)
	}

	w := graph.New()

	var parseErr error
	jobs.ForEach(func(_, item gjson.Result) bool {
		name := item.Get("name").String()
		if name == "" {
			parseErr = fmt.Errorf("job entry %s is missing a name", item.Raw)
			return false
		}
		if err := w.AddJob(name, int(item.Get("exec").Int())); err != nil {
			parseErr = err
			return false
		}
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	doc.Get("comms").ForEach(func(_, item gjson.Result) bool {
		from := item.Get("from").String()
		to := item.Get("to").String()
		if from == "" || to == "" {
			parseErr = fmt.Errorf("comm entry %s is missing an endpoint", item.Raw)
			return false
		}
		if err := w.AddComm(from, to, int(item.Get("time").Int())); err != nil {
			parseErr = err
			return false
		}
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if cycle := w.DetectCycle(); cycle != nil {
		return nil, fmt.Errorf("dependency cycle detected: %v", cycle)
	}

	return w, nil
}

// Example returns the built-in 8-job demonstration workflow.
func Example() *graph.Workflow {
	w := graph.New()
	jobs := []struct {
		name string
		exec int
	}{
		{"A", 5}, {"B", 3}, {"C", 8}, {"D", 4},
		{"E", 2}, {"F", 1}, {"G", 7}, {"H", 3},
	}
	for _, j := range jobs {
		// Names are unique by construction
		_ = w.AddJob(j.name, j.exec)
	}
	edges := []struct {
		from, to string
		comm     int
	}{
		{"A", "D", 2}, {"B", "D", 1}, {"C", "D", 5},
		{"D", "E", 3}, {"D", "F", 4},
		{"E", "G", 1}, {"F", "G", 2}, {"G", "H", 2},
	}
	for _, e := range edges {
		_ = w.AddComm(e.from, e.to, e.comm)
	}
	return w
}
