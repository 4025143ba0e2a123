package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	cblog "github.com/charmbracelet/log"
)

// ConsoleOptions configures the terminal-facing logger used by commands that
// do not take over the screen.
type ConsoleOptions struct {
	Writer    io.Writer
	Level     string
	Component string
	JSON      bool
}

// Console writes styled key/value lines through charmbracelet/log.
type Console struct {
	logger *cblog.Logger
}

// NewConsole builds a Console writing to opts.Writer (stderr by default).
func NewConsole(opts ConsoleOptions) (*Console, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := cblog.InfoLevel
	if opts.Level != "" {
		parsed, err := cblog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	formatter := cblog.TextFormatter
	if opts.JSON {
		formatter = cblog.JSONFormatter
	}

	base := cblog.NewWithOptions(writer, cblog.Options{
		Level:     level,
		Formatter: formatter,
		Prefix:    opts.Component,
	})
	return &Console{logger: base}, nil
}

// With derives a console logger with persistent fields.
func (c *Console) With(keyvals ...any) *Console {
	if c == nil {
		return nil
	}
	return &Console{logger: c.logger.With(keyvals...)}
}

func (c *Console) Debug(msg string, keyvals ...any) {
	if c == nil {
		return
	}
	c.logger.Debug(msg, keyvals...)
}

func (c *Console) Info(msg string, keyvals ...any) {
	if c == nil {
		return
	}
	c.logger.Info(msg, keyvals...)
}

func (c *Console) Warn(msg string, keyvals ...any) {
	if c == nil {
		return
	}
	c.logger.Warn(msg, keyvals...)
}

// Error logs msg with err attached under the "err" key.
func (c *Console) Error(err error, msg string, keyvals ...any) {
	if c == nil {
		return
	}
	if err != nil {
		keyvals = append([]any{"err", err}, keyvals...)
	}
	c.logger.Error(msg, keyvals...)
}
