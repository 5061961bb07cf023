package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"najah/internal/bootstrap"
	focusdto "najah/internal/modules/focus/dto"
)

func newTimerCmd(dataDir *string) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Focus timer"}

	var mode string
	var cycles int
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Count down focus and break intervals in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return withApp(*dataDir, func(app *bootstrap.App) error {
				app.RingBell(cmd.OutOrStdout())
				return runTimer(ctx, cmd, app, mode, cycles)
			})
		},
	}
	runCmd.Flags().StringVar(&mode, "mode", "work", "starting mode: work|break")
	runCmd.Flags().IntVar(&cycles, "cycles", 1, "intervals to run back to back")

	var sinceDays int
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show completed intervals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				stats, err := app.FocusCLI.Stats(cmd.Context(), sinceDays)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "focus intervals: %d\nbreaks: %d\nfocus time: %d min\n", stats.WorkIntervals, stats.BreakIntervals, stats.FocusMinutes)
				return nil
			})
		},
	}
	statsCmd.Flags().IntVar(&sinceDays, "days", 0, "only count the last N days (0 = all time)")

	timer.AddCommand(runCmd, statsCmd)
	return timer
}

// runTimer drives the timer until cycles intervals completed or ctx ends.
// A completed interval leaves the timer idle in the next mode, so each
// further cycle starts it again.
func runTimer(ctx context.Context, cmd *cobra.Command, app *bootstrap.App, mode string, cycles int) error {
	out := cmd.OutOrStdout()
	state, err := app.FocusCLI.SelectMode(ctx, mode)
	if err != nil {
		return err
	}
	for done := 0; done < cycles; done++ {
		if state, err = app.FocusCLI.Start(ctx); err != nil {
			return err
		}
		started := state.Mode
		ticker := time.NewTicker(500 * time.Millisecond)
		for state.Mode == started {
			printState(out, state)
			select {
			case <-ctx.Done():
				ticker.Stop()
				_, _ = app.FocusCLI.Pause(context.Background())
				_, _ = fmt.Fprintln(out, "\ninterrupted")
				return nil
			case <-ticker.C:
			}
			if state, err = app.FocusCLI.Snapshot(ctx); err != nil {
				ticker.Stop()
				return err
			}
		}
		ticker.Stop()
		_, _ = fmt.Fprintln(out)
	}
	_, _ = fmt.Fprintf(out, "completed focus intervals this run: %d\n", state.CompletedWork)
	return nil
}

func printState(w io.Writer, state focusdto.StateOutput) {
	label := "focus"
	if state.Mode == "break" {
		label = "pause"
	}
	_, _ = fmt.Fprintf(w, "\r%-5s %s ", label, state.Clock)
}
