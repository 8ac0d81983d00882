package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/timetrack/internal/app"
	"github.com/runoshun/timetrack/internal/timer"
	"github.com/runoshun/timetrack/internal/usecase"
)

// newTimerCommand creates the timer command group.
func newTimerCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run the interval timer",
	}

	cmd.AddCommand(newTimerRunCommand(c))

	return cmd
}

// newTimerRunCommand creates the timer run command.
func newTimerRunCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Task  string
		NoLog bool
	}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run work/break intervals in the foreground",
		Long: `Run the interval timer in the foreground until interrupted.

Completed work sessions are logged against --task unless --no-log is
set. Durations and the long-break cadence come from settings.toml.
With auto_start_breaks disabled the run exits at the first phase
boundary instead of rolling into the next phase.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTimer(cmd, c, opts.Task, opts.NoLog)
		},
	}

	cmd.Flags().StringVar(&opts.Task, "task", "", "Task to log completed work sessions against")
	cmd.Flags().BoolVar(&opts.NoLog, "no-log", false, "Do not record completed sessions")

	return cmd
}

func runTimer(cmd *cobra.Command, c *app.Container, task string, noLog bool) error {
	if task == "" && !noLog {
		return fmt.Errorf("either --task or --no-log is required")
	}

	t := c.NewTimer()
	t.Start()
	phaseStart := c.Clock.Now()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Starting %s (%s)\n", t.Phase(), formatRemaining(t.Remaining()))

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			_, _ = fmt.Fprintln(out, "\nTimer stopped")
			return nil
		case <-ticker.C:
		}

		t.Tick()
		_, _ = fmt.Fprintf(out, "\r%-12s %s ", t.Phase(), formatRemaining(t.Remaining()))

		ended, ok := t.CompleteIfExpired()
		if !ok {
			continue
		}

		now := c.Clock.Now()
		_, _ = fmt.Fprintf(out, "\n%s finished, next: %s\n", ended, t.Phase())

		if ended == timer.PhaseWork && !noLog {
			uc := c.LogTimeUseCase()
			if _, err := uc.Execute(ctx, usecase.LogTimeInput{
				Task:  task,
				Start: phaseStart,
				End:   now,
			}); err != nil {
				return fmt.Errorf("log completed session: %w", err)
			}
			_, _ = fmt.Fprintf(out, "Logged session for %q\n", task)
		}
		phaseStart = now

		if !t.Running() {
			_, _ = fmt.Fprintln(out, "Auto-start is off; press Ctrl+C to exit or rerun to continue")
			return nil
		}
	}
}

// formatRemaining renders a countdown as MM:SS.
func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
