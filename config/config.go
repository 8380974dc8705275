// Package config loads the small set of process-level knobs an engine
// construction site needs, from an optional .env file plus the environment.
// Nothing in des or its RunStrategy implementations reads the environment
// directly; a caller loads a Config once and threads the values it needs
// into the constructors and SetTolerance explicitly.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the environment-driven settings this module exposes.
type Config struct {
	// RescheduleRelTolerance and RescheduleAbsTolerance feed
	// des.Engine.SetTolerance, overriding the built-in defaults.
	RescheduleRelTolerance float64
	RescheduleAbsTolerance float64

	// LogLevel is parsed with logrus.ParseLevel; callers pass it to
	// logrus.SetLevel themselves so config stays free of global side effects.
	LogLevel logrus.Level

	// TraceSinkPath is the path prefix (without extension) a tracing.Writer
	// should use. Empty means "no trace sink configured".
	TraceSinkPath string
}

const (
	envRescheduleRelTolerance = "DES_RESCHEDULE_REL_TOLERANCE"
	envRescheduleAbsTolerance = "DES_RESCHEDULE_ABS_TOLERANCE"
	envLogLevel               = "DES_LOG_LEVEL"
	envTraceSinkPath          = "DES_TRACE_SINK_PATH"

	defaultRescheduleRelTolerance = 1e-9
	defaultRescheduleAbsTolerance = 1e-12
	defaultLogLevel               = logrus.WarnLevel
)

// Load reads an optional .env file at path (if path is non-empty and the
// file exists) into the process environment, then builds a Config from
// environment variables, falling back to defaults for anything unset or
// malformed. A malformed value is logged and the default is kept rather than
// failing the load.
func Load(path string) Config {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			logrus.WithField("path", path).WithError(err).
				Warn("failed to load .env file, continuing with process environment only")
		}
	}

	cfg := Config{
		RescheduleRelTolerance: defaultRescheduleRelTolerance,
		RescheduleAbsTolerance: defaultRescheduleAbsTolerance,
		LogLevel:               defaultLogLevel,
	}

	if raw := os.Getenv(envRescheduleRelTolerance); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			cfg.RescheduleRelTolerance = v
		} else {
			logrus.WithField(envRescheduleRelTolerance, raw).Warn("invalid float, using default")
		}
	}

	if raw := os.Getenv(envRescheduleAbsTolerance); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			cfg.RescheduleAbsTolerance = v
		} else {
			logrus.WithField(envRescheduleAbsTolerance, raw).Warn("invalid float, using default")
		}
	}

	if raw := os.Getenv(envLogLevel); raw != "" {
		if lvl, err := logrus.ParseLevel(raw); err == nil {
			cfg.LogLevel = lvl
		} else {
			logrus.WithField(envLogLevel, raw).Warn("invalid log level, using default")
		}
	}

	cfg.TraceSinkPath = os.Getenv(envTraceSinkPath)

	return cfg
}
