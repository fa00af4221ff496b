package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ledgerbook/ledgerbook-go/pkg/config"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for development.
	FormatText Format = "text"
)

type cfg struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

// Production-safe defaults: JSON at info level.
func defaultCfg() *cfg {
	return &cfg{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
}

// Option configures logger creation.
type Option func(*cfg)

func WithLevel(l slog.Level) Option {
	return func(c *cfg) { c.level = l }
}

// WithFormat sets output format. Panics on unknown formats so
// misconfiguration prevents startup rather than producing silent defaults.
func WithFormat(f Format) Option {
	return func(c *cfg) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets a custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *cfg) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *cfg) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithEnvironment applies the preset for a deployment environment:
// development logs text at debug level, everything else JSON at info level.
func WithEnvironment(env string) Option {
	return func(c *cfg) {
		switch env {
		case config.EnvDevelopment, "dev":
			c.level = slog.LevelDebug
			c.format = FormatText
		default:
			c.level = slog.LevelInfo
			c.format = FormatJSON
		}
		c.attrs = append(c.attrs, slog.String("env", env))
	}
}

// WithDebug lowers the level to debug when enabled, leaving format alone.
func WithDebug(enabled bool) Option {
	return func(c *cfg) {
		if enabled {
			c.level = slog.LevelDebug
		}
	}
}

// New creates a configured slog.Logger.
func New(opts ...Option) *slog.Logger {
	c := defaultCfg()
	for _, opt := range opts {
		opt(c)
	}

	handlerOpts := &slog.HandlerOptions{Level: c.level}

	var handler slog.Handler
	if c.format == FormatText {
		handler = slog.NewTextHandler(c.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(c.output, handlerOpts)
	}

	if len(c.attrs) > 0 {
		handler = handler.WithAttrs(c.attrs)
	}

	return slog.New(handler)
}

// SetAsDefault installs the logger as the process default.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}
