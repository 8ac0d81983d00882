// Package config loads application settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/timetrack/internal/domain"
	"github.com/runoshun/timetrack/internal/timer"
)

// Default pomodoro durations, in minutes.
const (
	DefaultWorkDuration      = 25.0
	DefaultBreakDuration     = 5.0
	DefaultLongBreakDuration = 15.0

	DefaultSessionsBeforeLongBreak = 4
	DefaultBackupRetentionDays     = 30
)

// Settings is the full application configuration.
type Settings struct {
	Pomodoro PomodoroSettings `toml:"pomodoro"`
	Data     DataSettings     `toml:"data"`
	Log      LogSettings      `toml:"log"`
}

// PomodoroSettings configures the interval timer. Durations are minutes.
type PomodoroSettings struct {
	WorkDuration            float64 `toml:"work_duration"`
	BreakDuration           float64 `toml:"break_duration"`
	LongBreakDuration       float64 `toml:"long_break_duration"`
	SessionsBeforeLongBreak int     `toml:"sessions_before_long_break"`
	AutoStartBreaks         bool    `toml:"auto_start_breaks"`
}

// DataSettings configures data management behavior.
type DataSettings struct {
	BackupRetentionDays int `toml:"backup_retention_days"`
}

// LogSettings configures the operation logger.
type LogSettings struct {
	Level string `toml:"level"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Pomodoro: PomodoroSettings{
			WorkDuration:            DefaultWorkDuration,
			BreakDuration:           DefaultBreakDuration,
			LongBreakDuration:       DefaultLongBreakDuration,
			SessionsBeforeLongBreak: DefaultSessionsBeforeLongBreak,
			AutoStartBreaks:         true,
		},
		Data: DataSettings{
			BackupRetentionDays: DefaultBackupRetentionDays,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// Load reads settings from path, layering file values over the defaults.
// A missing file yields the defaults.
func Load(path string) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return Defaults(), fmt.Errorf("parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Defaults(), err
	}
	return s, nil
}

// Validate checks value ranges.
func (s *Settings) Validate() error {
	if s.Pomodoro.WorkDuration <= 0 {
		return fmt.Errorf("work_duration must be positive: %w", domain.ErrValidation)
	}
	if s.Pomodoro.BreakDuration <= 0 {
		return fmt.Errorf("break_duration must be positive: %w", domain.ErrValidation)
	}
	if s.Pomodoro.LongBreakDuration <= 0 {
		return fmt.Errorf("long_break_duration must be positive: %w", domain.ErrValidation)
	}
	if s.Pomodoro.SessionsBeforeLongBreak < 1 {
		return fmt.Errorf("sessions_before_long_break must be at least 1: %w", domain.ErrValidation)
	}
	if s.Data.BackupRetentionDays < 1 {
		return fmt.Errorf("backup_retention_days must be at least 1: %w", domain.ErrValidation)
	}
	return nil
}

// TimerConfig converts the pomodoro section for timer construction.
func (s *Settings) TimerConfig() timer.Config {
	return timer.Config{
		WorkDuration:            minutes(s.Pomodoro.WorkDuration),
		BreakDuration:           minutes(s.Pomodoro.BreakDuration),
		LongBreakDuration:       minutes(s.Pomodoro.LongBreakDuration),
		SessionsBeforeLongBreak: s.Pomodoro.SessionsBeforeLongBreak,
		AutoStartBreaks:         s.Pomodoro.AutoStartBreaks,
	}
}

func minutes(m float64) time.Duration {
	return time.Duration(m * float64(time.Minute))
}
