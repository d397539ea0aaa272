package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rfoley/makespan/internal/cpm"
	"github.com/rfoley/makespan/internal/graph"
	"github.com/rfoley/makespan/internal/loader"
	"github.com/rfoley/makespan/internal/reporter"
	"github.com/rfoley/makespan/internal/sched"
	"github.com/rfoley/makespan/internal/simulate"
	"github.com/rfoley/makespan/internal/state"
	"github.com/rfoley/makespan/internal/ui"
)

var (
	flagFile     string
	flagMachines int
	flagExample  bool
	flagJSON     bool
	flagOutput   string
	flagSave     bool
	flagGantt    bool
	flagFormat   string
	flagTimeUnit time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "makespan",
		Short: "Schedule a workflow of interdependent jobs onto K machines",
		Long: `Makespan reads a workflow DAG of jobs and communication costs, orders the
jobs by critical-weight priority, and greedily assigns each one to the
machine that finishes it earliest, skipping communication costs entirely
when producer and consumer land on the same machine.`,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Workflow definition JSON (use - for stdin)")
	rootCmd.PersistentFlags().IntVarP(&flagMachines, "machines", "k", 2, "Number of identical machines")
	rootCmd.PersistentFlags().BoolVar(&flagExample, "example", false, "Use the built-in example workflow")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")

	rootCmd.AddCommand(scheduleCmd())
	rootCmd.AddCommand(graphCmd())
	rootCmd.AddCommand(criticalCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(cleanCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadWorkflow resolves the workflow definition from flags.
func loadWorkflow() (*graph.Workflow, string, error) {
	if flagExample {
		return loader.Example(), "example", nil
	}
	if flagFile == "" {
		return nil, "", fmt.Errorf("no workflow definition (use --file or --example)")
	}
	w, err := loader.Load(flagFile)
	if err != nil {
		return nil, "", fmt.Errorf("load workflow: %w", err)
	}
	return w, flagFile, nil
}

// buildSchedule is shared logic for schedule and simulate commands.
func buildSchedule() (*graph.Workflow, *sched.Schedule, *cpm.Result, string, error) {
	w, source, err := loadWorkflow()
	if err != nil {
		return nil, nil, nil, "", err
	}

	s, err := sched.Run(w, flagMachines)
	if err != nil {
		return nil, nil, nil, "", fmt.Errorf("schedule workflow: %w", err)
	}

	analysis, err := cpm.Analyze(w)
	if err != nil {
		return nil, nil, nil, "", fmt.Errorf("critical path analysis: %w", err)
	}

	return w, s, analysis, source, nil
}

func scheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Compute a schedule and print the per-machine timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, s, analysis, source, err := buildSchedule()
			if err != nil {
				return err
			}

			rpt := reporter.New(w, s, analysis)

			if flagSave {
				if err := state.Save(source, s); err != nil {
					log.Printf("warning: failed to save schedule: %v", err)
				}
			}

			if flagOutput != "" {
				data, err := rpt.JSON()
				if err != nil {
					return err
				}
				return os.WriteFile(flagOutput, data, 0644)
			}

			if flagJSON {
				data, err := rpt.JSON()
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			rpt.PrintSchedule(os.Stdout)
			if flagGantt {
				rpt.PrintGantt(os.Stdout)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Save JSON schedule to file")
	cmd.Flags().BoolVar(&flagSave, "save", false, "Persist the schedule for later `makespan show`")
	cmd.Flags().BoolVar(&flagGantt, "gantt", false, "Also print an ASCII machine timeline")

	return cmd
}

func graphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the workflow DAG",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, _, err := loadWorkflow()
			if err != nil {
				return err
			}

			if flagFormat == "dot" {
				analysis, err := cpm.Analyze(w)
				if err != nil {
					return fmt.Errorf("critical path analysis: %w", err)
				}
				reporter.WriteDOT(os.Stdout, w, analysis)
				return nil
			}

			reporter.PrintWorkflow(os.Stdout, w)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagFormat, "format", "list", "Output format (list, dot)")

	return cmd
}

func criticalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "critical",
		Short: "Print critical weights, slack, and the critical path",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, _, err := loadWorkflow()
			if err != nil {
				return err
			}

			analysis, err := cpm.Analyze(w)
			if err != nil {
				return fmt.Errorf("critical path analysis: %w", err)
			}

			if flagJSON {
				return outputJSON(analysis)
			}

			reporter.PrintCritical(os.Stdout, w, cpm.Weights(w), analysis)
			return nil
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Re-render the last saved schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !state.Exists() {
				return fmt.Errorf("no saved schedule (run `makespan schedule --save` first)")
			}

			saved, err := state.Load()
			if err != nil {
				return err
			}

			if flagJSON {
				return outputJSON(saved)
			}

			fmt.Printf("💾 %s %s %s\n\n", ui.BoldCyan("Saved schedule"),
				ui.Dim(saved.Source), ui.Dim(saved.CreatedAt.Format(time.RFC3339)))

			rpt := reporter.New(nil, saved.Schedule, nil)
			rpt.PrintSchedule(os.Stdout)
			rpt.PrintGantt(os.Stdout)
			return nil
		},
	}
}

func simulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay a schedule on virtual machines in scaled time",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, _, _, err := buildSchedule()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				fmt.Fprintf(os.Stderr, "\n🛑 %s\n", ui.Yellow("Received interrupt, stopping playback..."))
				cancel()
			}()

			ui.PrintLogo()
			return simulate.Run(ctx, s, simulate.Config{
				TimeUnit: flagTimeUnit,
				Out:      os.Stdout,
			})
		},
	}

	cmd.Flags().DurationVar(&flagTimeUnit, "time-unit", 200*time.Millisecond, "Wall-clock length of one schedule time step")

	return cmd
}

func cleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the saved schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := state.Clean(); err != nil {
				return fmt.Errorf("clean state: %w", err)
			}
			fmt.Printf("🧹 %s\n", ui.Dim("Saved schedule removed."))
			return nil
		},
	}
}

func outputJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
