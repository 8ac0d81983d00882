package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/timetrack/internal/app"
	"github.com/runoshun/timetrack/internal/usecase"
)

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show tracking statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.TaskStatisticsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.TaskStatisticsInput{})
			if err != nil {
				return err
			}
			return printYAML(cmd, out)
		},
	}
}

// newSummaryCommand creates the summary command.
func newSummaryCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show a summary of the stored data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.DataSummaryUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DataSummaryInput{})
			if err != nil {
				return err
			}
			return printYAML(cmd, out)
		},
	}
}

// newValidateCommand creates the validate command.
func newValidateCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the stored data for inconsistencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ValidateIntegrityUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ValidateIntegrityInput{})
			if err != nil {
				return err
			}
			if out.Clean() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No issues found")
				return nil
			}
			return printYAML(cmd, out)
		},
	}
}

// newBackupCommand creates the backup command group.
func newBackupCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage record file backups",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "create",
			Short: "Snapshot the record files",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				name, paths, err := c.Backups.Create(c.Store.RecordFiles())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%d files)\n", name, len(paths))
				return nil
			},
		},
		&cobra.Command{
			Use:   "clean",
			Short: "Delete backups past the retention window",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				deleted, err := c.Backups.Cleanup(c.Settings.Data.BackupRetentionDays)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d old backup files\n", deleted)
				return nil
			},
		},
	)

	return cmd
}

// printYAML writes v to the command's stdout as YAML.
func printYAML(cmd *cobra.Command, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
