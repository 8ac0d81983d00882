package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/timetrack/internal/app"
	"github.com/runoshun/timetrack/internal/domain"
	"github.com/runoshun/timetrack/internal/usecase"
)

// newLogCommand creates the log command group.
func newLogCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Task        string
		Start       string
		End         string
		SessionType string
	}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a completed session",
		Long: `Record a completed tracking session against a task.

Times use the format "2006-01-02 15:04:05". The duration is derived
from the start/end pair and the task's total is updated in place.

Examples:
  timetrack log --task "deep work" --start "2026-08-29 09:00:00" --end "2026-08-29 09:50:00"
  timetrack log --task standup --start "2026-08-29 10:00:00" --end "2026-08-29 10:15:00" --type break`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := time.Parse(domain.TimestampLayout, opts.Start)
			if err != nil {
				return fmt.Errorf("parse --start: %w", err)
			}
			end, err := time.Parse(domain.TimestampLayout, opts.End)
			if err != nil {
				return fmt.Errorf("parse --end: %w", err)
			}

			uc := c.LogTimeUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.LogTimeInput{
				Task:        opts.Task,
				Start:       start,
				End:         end,
				SessionType: domain.SessionType(opts.SessionType),
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged %.2f minutes for %q\n",
				out.Entry.DurationMinutes, out.Entry.Task)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Task, "task", "", "Task name (required)")
	cmd.Flags().StringVar(&opts.Start, "start", "", "Session start time (required)")
	cmd.Flags().StringVar(&opts.End, "end", "", "Session end time (required)")
	cmd.Flags().StringVar(&opts.SessionType, "type", "", "Session type: work, break or long_break (default work)")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	cmd.AddCommand(newLogEditCommand(c))

	return cmd
}

// newLogEditCommand creates the log edit command.
func newLogEditCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <file>",
		Short: "Replace the time-log table with an edited CSV file",
		Long: `Replace the whole time-log table with the rows of an edited CSV file.

The file uses the time_logs.csv column layout, optionally with a
trailing "delete" column; rows marked true there are dropped, as are
fully blank rows. Durations are recomputed from each start/end pair.
One invalid row rejects the whole edit. All task totals are rebuilt
afterwards.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edits, err := readLogEdits(args[0])
			if err != nil {
				return err
			}

			uc := c.BulkEditTimeLogsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.BulkEditTimeLogsInput{Edits: edits})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows, dropped %d\n", out.Kept, out.Dropped)
			return nil
		},
	}
}

// readLogEdits parses an edited time-log CSV into the use case input.
func readLogEdits(path string) ([]usecase.LogEdit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open edit file: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse edit file: %w", err)
	}

	var edits []usecase.LogEdit
	for i, rec := range records {
		if i == 0 && len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "task") {
			continue // header
		}
		if len(rec) < 6 {
			return nil, fmt.Errorf("row %d: want at least 6 columns, got %d: %w", i, len(rec), domain.ErrValidation)
		}

		edit := usecase.LogEdit{Task: rec[0], SessionType: domain.SessionType(strings.TrimSpace(rec[5]))}
		if raw := strings.TrimSpace(rec[1]); raw != "" {
			edit.Start, err = time.Parse(domain.TimestampLayout, raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: start_time: %w", i, err)
			}
		}
		if raw := strings.TrimSpace(rec[2]); raw != "" {
			edit.End, err = time.Parse(domain.TimestampLayout, raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: end_time: %w", i, err)
			}
		}
		if len(rec) > 6 {
			edit.Delete, _ = strconv.ParseBool(strings.TrimSpace(rec[6]))
		}
		edits = append(edits, edit)
	}
	return edits, nil
}
