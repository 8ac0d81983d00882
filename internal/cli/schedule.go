package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/timetrack/internal/app"
	"github.com/runoshun/timetrack/internal/domain"
	"github.com/runoshun/timetrack/internal/usecase"
)

// newScheduleCommand creates the schedule command group.
func newScheduleCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"sched"},
		Short:   "Plan and manage schedule blocks",
	}

	cmd.AddCommand(
		newScheduleAddCommand(c),
		newScheduleListCommand(c),
		newScheduleCompleteCommand(c),
		newScheduleDeleteCommand(c),
	)

	return cmd
}

// newScheduleAddCommand creates the schedule add command.
func newScheduleAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Date  string
		Start string
		End   string
		Task  string
		Type  string
		Notes string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Plan a schedule block",
		Long: `Plan a block of time on a given date.

Blocks on the same date must not overlap; adjacent blocks (one ending
exactly when the next starts) are fine.

Example:
  timetrack schedule add --date 2026-08-29 --start 09:00 --end 10:30 --task "deep work" --type focus`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := time.Parse(domain.DateLayout, opts.Date)
			if err != nil {
				return fmt.Errorf("parse --date: %w", err)
			}
			start, err := time.Parse(domain.ClockLayout, opts.Start)
			if err != nil {
				return fmt.Errorf("parse --start: %w", err)
			}
			end, err := time.Parse(domain.ClockLayout, opts.End)
			if err != nil {
				return fmt.Errorf("parse --end: %w", err)
			}

			uc := c.AddScheduleBlockUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddScheduleBlockInput{
				Date:     date,
				Start:    start,
				End:      end,
				TaskName: opts.Task,
				Type:     domain.BlockType(opts.Type),
				Notes:    opts.Notes,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Scheduled %q %s %s-%s\n",
				out.Block.TaskName,
				out.Block.Date.Format(domain.DateLayout),
				out.Block.Start.Format(domain.ClockLayout),
				out.Block.End.Format(domain.ClockLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "Date, 2006-01-02 (required)")
	cmd.Flags().StringVar(&opts.Start, "start", "", "Start clock time, 15:04 (required)")
	cmd.Flags().StringVar(&opts.End, "end", "", "End clock time, 15:04 (required)")
	cmd.Flags().StringVar(&opts.Task, "task", "", "Task or label (required)")
	cmd.Flags().StringVar(&opts.Type, "type", "", "Block type: work, break, meeting or focus (default work)")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("task")

	return cmd
}

// newScheduleListCommand creates the schedule list command.
func newScheduleListCommand(c *app.Container) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List schedule blocks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in usecase.ListScheduleBlocksInput
			if dateStr != "" {
				date, err := time.Parse(domain.DateLayout, dateStr)
				if err != nil {
					return fmt.Errorf("parse --date: %w", err)
				}
				in.Date = date
			}

			uc := c.ListScheduleBlocksUseCase()
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			if len(out.Blocks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No schedule blocks")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "DATE\tSTART\tEND\tTASK\tTYPE\tDONE\tNOTES")
			for _, b := range out.Blocks {
				done := ""
				if b.Completed {
					done = "x"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					b.Date.Format(domain.DateLayout),
					b.Start.Format(domain.ClockLayout),
					b.End.Format(domain.ClockLayout),
					b.TaskName, b.Type, done, b.Notes)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Limit to one date, 2006-01-02")

	return cmd
}

// scheduleKey parses the composite key flags shared by complete and delete.
func scheduleKey(dateStr, startStr string) (time.Time, time.Time, error) {
	date, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse --date: %w", err)
	}
	start, err := time.Parse(domain.ClockLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse --start: %w", err)
	}
	return date, start, nil
}

// newScheduleCompleteCommand creates the schedule complete command.
func newScheduleCompleteCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Date  string
		Start string
		Task  string
	}

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Mark a schedule block as done",
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, start, err := scheduleKey(opts.Date, opts.Start)
			if err != nil {
				return err
			}

			completed := true
			uc := c.UpdateScheduleBlockUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.UpdateScheduleBlockInput{
				Date:      date,
				Start:     start,
				TaskName:  opts.Task,
				Completed: &completed,
			})
			if err != nil {
				return err
			}
			if !out.Updated {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No matching schedule block")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed %q %s %s\n", opts.Task, opts.Date, opts.Start)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "Date, 2006-01-02 (required)")
	cmd.Flags().StringVar(&opts.Start, "start", "", "Start clock time, 15:04 (required)")
	cmd.Flags().StringVar(&opts.Task, "task", "", "Task or label (required)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("task")

	return cmd
}

// newScheduleDeleteCommand creates the schedule delete command.
func newScheduleDeleteCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Date  string
		Start string
		Task  string
	}

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a schedule block",
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, start, err := scheduleKey(opts.Date, opts.Start)
			if err != nil {
				return err
			}

			uc := c.DeleteScheduleBlockUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteScheduleBlockInput{
				Date:     date,
				Start:    start,
				TaskName: opts.Task,
			})
			if err != nil {
				return err
			}
			if !out.Deleted {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No matching schedule block")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q %s %s\n", opts.Task, opts.Date, opts.Start)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "Date, 2006-01-02 (required)")
	cmd.Flags().StringVar(&opts.Start, "start", "", "Start clock time, 15:04 (required)")
	cmd.Flags().StringVar(&opts.Task, "task", "", "Task or label (required)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("task")

	return cmd
}
