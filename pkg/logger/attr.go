package logger

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/powerauth/pkg/outcome"
)

// Outcome groups the code, name and group of o under the key "outcome".
func Outcome(o outcome.Outcome) slog.Attr {
	return slog.Group("outcome",
		slog.Int("code", o.Code()),
		slog.String("name", o.String()),
		slog.String("group", o.Group().String()),
	)
}

// Error records err under the key "error". For an *outcome.Error the
// correlation id is added as "error_id". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	var oe *outcome.Error
	if errors.As(err, &oe) {
		return slog.Group("", slog.Any("error", err), slog.String("error_id", oe.ID.String()))
	}
	return slog.Any("error", err)
}

func SessionID(id string) slog.Attr {
	return slog.String("session_id", id)
}

func Op(name string) slog.Attr {
	return slog.String("op", name)
}

// Signal records a native core result as hex under the key "signal".
func Signal(s outcome.Signal) slog.Attr {
	return slog.String("signal", s.String())
}

// Factor records a factor combination under the key "factor".
func Factor(f fmt.Stringer) slog.Attr {
	return slog.String("factor", f.String())
}

// State records a session state name.
func State(name string) slog.Attr {
	return slog.String("state", name)
}

// LevelFor returns the level at which an operation with outcome o is logged:
// debug for OK, warn for programmer errors and runtime failures, error for
// security relevant outcomes.
func LevelFor(o outcome.Outcome) slog.Level {
	switch {
	case o.IsOK():
		return slog.LevelDebug
	case o.IsSecurityRelevant():
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
