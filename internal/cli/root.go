// Package cli provides the command-line interface for timetrack.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/timetrack/internal/app"
)

// Command group IDs.
const (
	groupTracking = "tracking"
	groupPlanning = "planning"
	groupData     = "data"
)

// NewRootCommand creates the root command for timetrack.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "timetrack",
		Short: "Personal time tracking CLI",
		Long: `timetrack records completed work sessions against named tasks in
plain CSV files, keeps per-task totals, plans schedule blocks and runs a
work/break interval timer.

Data lives under ~/.timetrack (override with TIMETRACK_DATA_DIR). The
record files are repaired on startup: malformed rows are dropped and
logged, never silently rewritten mid-session.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupTracking, Title: "Time Tracking:"},
		&cobra.Group{ID: groupPlanning, Title: "Schedule Planning:"},
		&cobra.Group{ID: groupData, Title: "Data Management:"},
	)

	taskCmd := newTaskCommand(c)
	taskCmd.GroupID = groupTracking

	logCmd := newLogCommand(c)
	logCmd.GroupID = groupTracking

	timerCmd := newTimerCommand(c)
	timerCmd.GroupID = groupTracking

	statsCmd := newStatsCommand(c)
	statsCmd.GroupID = groupTracking

	scheduleCmd := newScheduleCommand(c)
	scheduleCmd.GroupID = groupPlanning

	summaryCmd := newSummaryCommand(c)
	summaryCmd.GroupID = groupData

	validateCmd := newValidateCommand(c)
	validateCmd.GroupID = groupData

	backupCmd := newBackupCommand(c)
	backupCmd.GroupID = groupData

	root.AddCommand(
		taskCmd,
		logCmd,
		timerCmd,
		statsCmd,
		scheduleCmd,
		summaryCmd,
		validateCmd,
		backupCmd,
	)

	return root
}
