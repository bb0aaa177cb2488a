package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format represents logger output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Environment names accepted by WithEnvironment and Config.Env.
const (
	Development = "development"
	Staging     = "staging"
	Production  = "production"
)

// Config is the environment driven logger configuration, loaded with
// config.Load.
type Config struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"SERVICE_NAME" envDefault:"powerauth"`
	Level   string `env:"LOG_LEVEL"`
	Format  Format `env:"LOG_FORMAT"`
}

// Option configures logger creation.
type Option func(*options)

type options struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

func WithLevel(l slog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithFormat sets the output format. It panics on unknown formats so that a
// misconfigured service fails at start up.
func WithFormat(f Format) Option {
	return func(o *options) {
		switch f {
		case FormatJSON, FormatText:
			o.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets the destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithContextExtractors registers functions that add attributes from the
// context of each record.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		for _, ex := range extractors {
			if ex != nil {
				o.extractors = append(o.extractors, ex)
			}
		}
	}
}

// WithEnvironment applies the presets for env: text output at debug level
// for development, JSON at info level for staging and production.
// Unknown names fall back to development.
func WithEnvironment(env, service string) Option {
	return func(o *options) {
		switch env {
		case Production, "prod":
			env = Production
			o.level, o.format = slog.LevelInfo, FormatJSON
		case Staging, "stage":
			env = Staging
			o.level, o.format = slog.LevelInfo, FormatJSON
		default:
			env = Development
			o.level, o.format = slog.LevelDebug, FormatText
		}
		if service != "" {
			o.attrs = append(o.attrs, slog.String("service", service))
		}
		o.attrs = append(o.attrs, slog.String("env", env))
	}
}

// WithConfig applies cfg: the environment preset first, then explicit level
// and format overrides.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		WithEnvironment(cfg.Env, cfg.Service)(o)
		if cfg.Level != "" {
			if err := o.level.UnmarshalText([]byte(cfg.Level)); err != nil {
				panic(fmt.Errorf("invalid log level %q: %w", cfg.Level, err))
			}
		}
		if cfg.Format != "" {
			WithFormat(cfg.Format)(o)
		}
	}
}

// New creates a *slog.Logger. Without options it writes JSON at info level
// to stdout. Session ids stored with WithSessionID are always added to records.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var handler slog.Handler
	if o.format == FormatText {
		handler = slog.NewTextHandler(o.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	}
	if len(o.attrs) > 0 {
		handler = handler.WithAttrs(o.attrs)
	}

	extractors := append([]ContextExtractor{sessionIDExtractor}, o.extractors...)
	return slog.New(newContextHandler(handler, extractors))
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
