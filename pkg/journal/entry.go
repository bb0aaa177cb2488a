package journal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/powerauth/pkg/outcome"
)

// Entry is one recorded session operation result. Code holds the raw integer
// so entries written by newer builds keep their value; use Outcome to decode it.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	SessionID string    `json:"session_id"`
	Op        string    `json:"op"`
	Code      int       `json:"code"`
	Name      string    `json:"name"`
	At        time.Time `json:"at"`
}

// NewEntry builds an entry for the result of op. The entry reuses the
// correlation id of an *outcome.Error so log lines and journal entries match.
func NewEntry(sessionID, op string, err error) Entry {
	o := outcome.Of(err)
	id := uuid.New()
	var oe *outcome.Error
	if errors.As(err, &oe) && oe.ID != uuid.Nil {
		id = oe.ID
	}
	return Entry{
		ID:        id,
		SessionID: sessionID,
		Op:        op,
		Code:      o.Code(),
		Name:      o.String(),
		At:        time.Now().UTC(),
	}
}

// Outcome decodes the stored code. Unknown codes classify as GeneralFailure.
func (e Entry) Outcome() outcome.Outcome {
	return outcome.FromCode(e.Code)
}

// Recorder persists entries.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// Reader lists entries of a session, newest first.
type Reader interface {
	List(ctx context.Context, sessionID string, limit int) ([]Entry, error)
}

// Store is a Recorder that can also be read back.
type Store interface {
	Recorder
	Reader
}

// Summary counts entries per outcome.
type Summary map[outcome.Outcome]int

// Summarize counts entries per decoded outcome.
func Summarize(entries []Entry) Summary {
	s := make(Summary, len(entries))
	for _, e := range entries {
		s[e.Outcome()]++
	}
	return s
}

// Group returns the number of entries whose outcome belongs to g.
func (s Summary) Group(g outcome.Group) int {
	n := 0
	for o, count := range s {
		if o.Group() == g {
			n += count
		}
	}
	return n
}

func validate(e Entry) error {
	if e.SessionID == "" {
		return ErrMissingSessionID
	}
	if e.Op == "" {
		return ErrMissingOp
	}
	return nil
}
