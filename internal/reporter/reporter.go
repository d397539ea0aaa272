// Package reporter renders workflows, analyses, and computed schedules
// for terminal and machine consumption.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rfoley/makespan/internal/cpm"
	"github.com/rfoley/makespan/internal/graph"
	"github.com/rfoley/makespan/internal/sched"
	"github.com/rfoley/makespan/internal/ui"
)

// Reporter renders a computed schedule. Analysis is optional; when set,
// critical-path markers are included in the output.
type Reporter struct {
	Workflow *graph.Workflow
	Schedule *sched.Schedule
	Analysis *cpm.Result
}

// New creates a Reporter for a schedule.
func New(w *graph.Workflow, s *sched.Schedule, analysis *cpm.Result) *Reporter {
	return &Reporter{Workflow: w, Schedule: s, Analysis: analysis}
}

func (r *Reporter) critical(name string) bool {
	if r.Analysis == nil {
		return false
	}
	jt, ok := r.Analysis.Jobs[name]
	return ok && jt.IsCritical
}

// PrintSchedule writes the schedule header, the execution order, and a
// per-machine timeline.
func (r *Reporter) PrintSchedule(w io.Writer) {
	fmt.Fprintf(w, "⏱  %s\n", ui.BoldCyan("Makespan Schedule"))
	fmt.Fprintln(w, ui.Cyan("════════════════════"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Jobs:      %s\n", ui.Bold(len(r.Schedule.Jobs)))
	fmt.Fprintf(w, "Machines:  %s\n", ui.Bold(r.Schedule.Machines))
	fmt.Fprintf(w, "Makespan:  %s\n", ui.BoldGreen(r.Schedule.Makespan))
	if r.Analysis != nil && len(r.Analysis.CriticalPath) > 0 {
		fmt.Fprintf(w, "⚡ Critical path: %s (bound %d)\n",
			ui.BoldYellow(strings.Join(r.Analysis.CriticalPath, " → ")), r.Analysis.TotalDuration)
	}
	fmt.Fprintln(w)

	order := make([]string, len(r.Schedule.Jobs))
	for i, sj := range r.Schedule.Jobs {
		order[i] = sj.Name
	}
	fmt.Fprintf(w, "Order: %s\n\n", strings.Join(order, " → "))

	for m, lane := range r.Schedule.ByMachine() {
		fmt.Fprintf(w, "%s finishes at %s\n", ui.MachinePrefix(m), ui.Bold(laneFinish(lane)))
		for _, sj := range lane {
			crit := " "
			if r.critical(sj.Name) {
				crit = ui.BoldYellow("⚡")
			}
			wait := ""
			if sj.StartTime > sj.ScheduleTime {
				wait = ui.Dim(fmt.Sprintf(" (waited %d for data)", sj.StartTime-sj.ScheduleTime))
			}
			fmt.Fprintf(w, "  %s %-8s %3d → %-3d%s\n", crit, ui.BoldMagenta(sj.Name), sj.StartTime, sj.FinishTime, wait)
		}
		fmt.Fprintln(w)
	}
}

func laneFinish(lane []sched.ScheduledJob) int {
	if len(lane) == 0 {
		return 0
	}
	return lane[len(lane)-1].FinishTime
}

// ganttWidth is the maximum number of time columns in the ASCII Gantt.
const ganttWidth = 60

// PrintGantt writes one bar row per machine. Each job is drawn as a run
// of its own first letter; idle time shows as dots.
func (r *Reporter) PrintGantt(w io.Writer) {
	fmt.Fprintf(w, "📊 %s\n", ui.BoldCyan("Machine Timeline"))
	fmt.Fprintln(w, ui.Cyan("══════════════════"))
	fmt.Fprintln(w)

	if r.Schedule.Makespan == 0 {
		fmt.Fprintln(w, ui.Dim("(empty schedule)"))
		return
	}

	// One column per `unit` time steps, rounding up
	unit := (r.Schedule.Makespan + ganttWidth - 1) / ganttWidth
	cols := (r.Schedule.Makespan + unit - 1) / unit

	for m, lane := range r.Schedule.ByMachine() {
		row := make([]rune, cols)
		for i := range row {
			row[i] = '·'
		}
		for _, sj := range lane {
			fill := rune(sj.Name[0])
			end := sj.FinishTime / unit
			if sj.FinishTime%unit != 0 {
				end++
			}
			for c := sj.StartTime / unit; c < end && c < cols; c++ {
				row[c] = fill
			}
		}
		fmt.Fprintf(w, "%s %s\n", ui.MachinePrefix(m), ui.MachineColor(m)(string(row)))
	}
	fmt.Fprintf(w, "     %s\n", ui.Dim(fmt.Sprintf("0%*d", cols-1, r.Schedule.Makespan)))
}

// JSON returns the machine-readable schedule.
func (r *Reporter) JSON() ([]byte, error) {
	type jobOut struct {
		Name     string `json:"name"`
		Machine  int    `json:"machine"`
		Start    int    `json:"start"`
		Finish   int    `json:"finish"`
		Critical bool   `json:"critical"`
	}
	type output struct {
		Machines     int      `json:"machines"`
		Makespan     int      `json:"makespan"`
		TotalExec    int      `json:"total_exec"`
		CriticalPath []string `json:"critical_path,omitempty"`
		Jobs         []jobOut `json:"jobs"`
	}

	o := output{
		Machines: r.Schedule.Machines,
		Makespan: r.Schedule.Makespan,
	}
	if r.Workflow != nil {
		o.TotalExec = r.Workflow.TotalExecTime()
	}
	if r.Analysis != nil {
		o.CriticalPath = r.Analysis.CriticalPath
	}
	for _, sj := range r.Schedule.Jobs {
		o.Jobs = append(o.Jobs, jobOut{
			Name:     sj.Name,
			Machine:  sj.Machine,
			Start:    sj.StartTime,
			Finish:   sj.FinishTime,
			Critical: r.critical(sj.Name),
		})
	}
	return json.MarshalIndent(o, "", "  ")
}

// PrintWorkflow writes the job listing with outgoing communications, in
// insertion order.
func PrintWorkflow(w io.Writer, wf *graph.Workflow) {
	fmt.Fprintf(w, "🔗 %s\n", ui.BoldCyan("Workflow Graph"))
	fmt.Fprintln(w, ui.Cyan("════════════════"))
	fmt.Fprintln(w)
	for _, j := range wf.Jobs() {
		fmt.Fprintf(w, "%s %s\n", ui.BoldMagenta(j.Name), ui.Dim(fmt.Sprintf("(exec %d)", j.ExecTime)))
		for _, e := range wf.OutEdges(j.Name) {
			fmt.Fprintf(w, "  %s %s %s\n", ui.Dim("└──→"), ui.Magenta(e.To), ui.Dim(fmt.Sprintf("(comm %d)", e.CommTime)))
		}
	}
}

// PrintCritical writes the per-job critical weights and the critical path.
func PrintCritical(w io.Writer, wf *graph.Workflow, weights map[string]int, analysis *cpm.Result) {
	fmt.Fprintf(w, "⚡ %s\n", ui.BoldCyan("Critical Weights"))
	fmt.Fprintln(w, ui.Cyan("══════════════════"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-10s %6s %8s %5s %5s %6s\n", "job", "exec", "weight", "ES", "LS", "slack")
	for _, j := range wf.Jobs() {
		jt := analysis.Jobs[j.Name]
		crit := " "
		if jt.IsCritical {
			crit = ui.BoldYellow("⚡")
		}
		fmt.Fprintf(w, "%s %-10s %6d %8d %5d %5d %6d\n",
			crit, ui.BoldMagenta(j.Name), j.ExecTime, weights[j.Name], jt.ES, jt.LS, jt.Slack)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Critical path: %s (bound %d)\n",
		ui.BoldYellow(strings.Join(analysis.CriticalPath, " → ")), analysis.TotalDuration)

	for _, wave := range analysis.Waves {
		marker := "  "
		if wave.IsCritical {
			marker = ui.BoldYellow("⚡ ")
		}
		fmt.Fprintf(w, "%s🌊 wave %d: %s\n", marker, wave.Index+1, strings.Join(wave.Jobs, ", "))
	}
}

// WriteDOT writes the workflow as a Graphviz digraph. Critical jobs and
// the edges between them are highlighted when an analysis is supplied.
func WriteDOT(w io.Writer, wf *graph.Workflow, analysis *cpm.Result) {
	isCritical := func(name string) bool {
		if analysis == nil {
			return false
		}
		jt, ok := analysis.Jobs[name]
		return ok && jt.IsCritical
	}

	fmt.Fprintln(w, "digraph makespan {")
	fmt.Fprintln(w, "  rankdir=LR;")
	fmt.Fprintln(w, "  node [shape=box, style=rounded];")
	fmt.Fprintln(w)

	for _, j := range wf.Jobs() {
		attrs := fmt.Sprintf(`label="%s\nexec %d"`, j.Name, j.ExecTime)
		if isCritical(j.Name) {
			attrs += `, style="rounded,bold", color=red`
		}
		fmt.Fprintf(w, "  %q [%s];\n", j.Name, attrs)
	}

	fmt.Fprintln(w)

	for _, j := range wf.Jobs() {
		for _, e := range wf.OutEdges(j.Name) {
			style := fmt.Sprintf(` [label="%d"]`, e.CommTime)
			if isCritical(e.From) && isCritical(e.To) {
				style = fmt.Sprintf(` [label="%d", color=red, penwidth=2]`, e.CommTime)
			}
			fmt.Fprintf(w, "  %q -> %q%s;\n", e.From, e.To, style)
		}
	}

	fmt.Fprintln(w, "}")
}
