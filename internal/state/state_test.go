package state

import (
	"os"
	"testing"

	"github.com/rfoley/makespan/internal/sched"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func sampleSchedule() *sched.Schedule {
	return &sched.Schedule{
		Machines: 2,
		Makespan: 26,
		Jobs: []sched.ScheduledJob{
			{Name: "C", Machine: 0, ScheduleTime: 0, StartTime: 0, FinishTime: 8},
			{Name: "A", Machine: 1, ScheduleTime: 0, StartTime: 0, FinishTime: 5},
		},
	}
}

func TestSaveAndLoad(t *testing.T) {
	chdirTemp(t)

	if Exists() {
		t.Fatal("expected no persisted schedule in a fresh dir")
	}

	if err := Save("example", sampleSchedule()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("expected persisted schedule after Save")
	}

	saved, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if saved.Source != "example" {
		t.Errorf("expected source example, got %s", saved.Source)
	}
	if saved.Schedule.Makespan != 26 {
		t.Errorf("expected makespan 26, got %d", saved.Schedule.Makespan)
	}
	if len(saved.Schedule.Jobs) != 2 || saved.Schedule.Jobs[0].Name != "C" {
		t.Errorf("unexpected jobs: %+v", saved.Schedule.Jobs)
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestSaveReplaces(t *testing.T) {
	chdirTemp(t)

	if err := Save("first", sampleSchedule()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second := sampleSchedule()
	second.Makespan = 33
	if err := Save("second", second); err != nil {
		t.Fatalf("Save: %v", err)
	}

	saved, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if saved.Source != "second" || saved.Schedule.Makespan != 33 {
		t.Errorf("expected second save to win, got %+v", saved)
	}
}

func TestLoad_Missing(t *testing.T) {
	chdirTemp(t)

	if _, err := Load(); err == nil {
		t.Fatal("expected error when no schedule is persisted")
	}
}

func TestClean(t *testing.T) {
	chdirTemp(t)

	if err := Save("example", sampleSchedule()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := Clean(); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if Exists() {
		t.Error("expected no persisted schedule after Clean")
	}
}
