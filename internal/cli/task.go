package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/timetrack/internal/app"
	"github.com/runoshun/timetrack/internal/domain"
	"github.com/runoshun/timetrack/internal/usecase"
)

// newTaskCommand creates the task command group.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCommand(c),
		newTaskListCommand(c),
		newTaskDeleteCommand(c),
		newTaskRecomputeCommand(c),
	)

	return cmd
}

// newTaskAddCommand creates the task add command.
func newTaskAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Register a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddTaskInput{Name: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task %q\n", out.Task.Name)
			return nil
		},
	}
}

// newTaskListCommand creates the task list command.
func newTaskListCommand(c *app.Container) *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks and their totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{ActiveOnly: activeOnly})
			if err != nil {
				return err
			}
			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tSTATUS\tTOTAL (MIN)\tCREATED")
			for _, t := range out.Tasks {
				created := ""
				if !t.Created.IsZero() {
					created = t.Created.Format(domain.DateLayout)
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", t.Name, t.Status, t.TotalMinutes, created)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "Show only active tasks")

	return cmd
}

// newTaskDeleteCommand creates the task delete command.
func newTaskDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a task (time logs are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.DeleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{Name: args[0]})
			if err != nil {
				return err
			}
			if !out.Deleted {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task not found: %s\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %q\n", args[0])
			return nil
		},
	}
}

// newTaskRecomputeCommand creates the task recompute command.
func newTaskRecomputeCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "recompute",
		Short: "Rebuild every task total from the time logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.RecomputeTotalsUseCase()
			if _, err := uc.Execute(cmd.Context(), usecase.RecomputeTotalsInput{}); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Recomputed task totals")
			return nil
		},
	}
}
