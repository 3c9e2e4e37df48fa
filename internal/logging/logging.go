// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/tamzrod/viewmarq/internal/config"
)

// Init configures the global logger: console output on stderr plus an
// optional rotated log file.
func Init(c config.LogConfig, extra ...io.Writer) error {
	level := zerolog.InfoLevel
	if c.Level != "" {
		l, err := zerolog.ParseLevel(c.Level)
		if err != nil {
			return fmt.Errorf("logging: %w", err)
		}
		level = l
	}

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}}
	if c.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    c.MaxSizeMB,
			MaxBackups: c.MaxBackups,
		})
	}
	writers = append(writers, extra...)

	log.Logger = zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()

	return nil
}
