// Package logging builds the process zerolog logger
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/arena-fighter/config"
)

// ParseLevel maps a config level name to a zerolog level, defaulting to info
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New builds the logger writing to console and to cfg.File when set
// console is nil when the terminal renderer owns stdout and stderr
// The returned close function releases the log file
func New(cfg config.LogConfig, console io.Writer) (zerolog.Logger, func() error, error) {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	var writers []io.Writer
	if console != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: time.RFC3339,
		})
	}

	closeFn := func() error { return nil }
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), closeFn, fmt.Errorf("opening log file: %w", err)
		}
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        file,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
		closeFn = file.Close
	}

	if len(writers) == 0 {
		return zerolog.Nop(), closeFn, nil
	}

	log := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(cfg.Level)).
		With().Timestamp().Logger()
	return log, closeFn, nil
}

// Sampled throttles a logger fed from a per-tick path
// Allows a burst of 5 entries per second, then 1 in 60
func Sampled(log zerolog.Logger) zerolog.Logger {
	return log.Sample(&zerolog.BurstSampler{
		Burst:       5,
		Period:      time.Second,
		NextSampler: &zerolog.BasicSampler{N: 60},
	})
}
