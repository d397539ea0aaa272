// Package simulate replays a computed schedule on virtual machines in
// scaled wall-clock time, streaming progress lines as jobs start and
// finish. It exists to demonstrate a schedule end to end; nothing real
// is executed.
package simulate

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/rfoley/makespan/internal/sched"
	"github.com/rfoley/makespan/internal/ui"
)

// Config controls playback.
type Config struct {
	TimeUnit time.Duration // wall-clock length of one schedule time step; 0 plays back instantly
	Out      io.Writer
}

const (
	kindFinish = iota // finishes print before starts at the same instant
	kindStart
)

type event struct {
	at   int
	kind int
	line string
}

// Run plays the schedule back. It honors ctx cancellation between events
// and returns the context error if interrupted.
func Run(ctx context.Context, s *sched.Schedule, cfg Config) error {
	events := make([]event, 0, 2*len(s.Jobs))
	for _, sj := range s.Jobs {
		sj := sj
		events = append(events, event{
			at:   sj.StartTime,
			kind: kindStart,
			line: fmt.Sprintf("%s ▶ %s starting  %s", ui.MachinePrefix(sj.Machine), ui.BoldMagenta(sj.Name), ui.Dim(fmt.Sprintf("(t=%d)", sj.StartTime))),
		})
		events = append(events, event{
			at:   sj.FinishTime,
			kind: kindFinish,
			line: fmt.Sprintf("%s %s %s finished  %s", ui.MachinePrefix(sj.Machine), ui.Green("✓"), ui.BoldMagenta(sj.Name), ui.Dim(fmt.Sprintf("(t=%d)", sj.FinishTime))),
		})
	}
	sort.SliceStable(events, func(a, b int) bool {
		if events[a].at != events[b].at {
			return events[a].at < events[b].at
		}
		return events[a].kind < events[b].kind
	})

	fmt.Fprintf(cfg.Out, "🚀 %s %s jobs on %s machines\n",
		ui.BoldCyan("Replaying"), ui.Bold(len(s.Jobs)), ui.Bold(s.Machines))

	now := 0
	for _, ev := range events {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("playback cancelled: %w", err)
		}
		if wait := ev.at - now; wait > 0 && cfg.TimeUnit > 0 {
			timer := time.NewTimer(time.Duration(wait) * cfg.TimeUnit)
			select {
			case <-ctx.Done():
				timer.Stop()
				return fmt.Errorf("playback cancelled: %w", ctx.Err())
			case <-timer.C:
			}
		}
		now = ev.at
		fmt.Fprintln(cfg.Out, ev.line)
	}

	fmt.Fprintf(cfg.Out, "🏁 %s at t=%s\n", ui.BoldGreen("Workflow complete"), ui.Bold(s.Makespan))
	return nil
}
