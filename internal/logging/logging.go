// Package logging configures the global zerolog logger.
package logging

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level  string
	Format string // "json" or "text"
	File   string
	// Quiet drops console output. The terminal UI owns the screen, so it only
	// logs when a file is configured.
	Quiet bool
}

func Init(config Config) error {
	level := zerolog.InfoLevel
	if config.Level != "" {
		l, err := zerolog.ParseLevel(config.Level)
		if err != nil {
			return errors.Wrapf(err, "invalid log level %q", config.Level)
		}
		level = l
	}
	zerolog.SetGlobalLevel(level)

	var writers []io.Writer
	if !config.Quiet {
		if config.Format == "json" {
			writers = append(writers, os.Stderr)
		} else {
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
		}
	}

	if config.File != "" {
		writers = append(writers, zerolog.ConsoleWriter{
			NoColor: true,
			Out: &lumberjack.Logger{
				Filename:   config.File,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
			},
		})
	}

	switch len(writers) {
	case 0:
		log.Logger = log.Output(io.Discard)
	case 1:
		log.Logger = log.Output(writers[0])
	default:
		log.Logger = log.Output(io.MultiWriter(writers...))
	}

	return nil
}
