package outcome

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error reports a failed session operation. It carries the classified
// Outcome, the operation name and a correlation id that is also written to
// the outcome journal.
type Error struct {
	ID      uuid.UUID
	Op      string
	Outcome Outcome
	Err     error
}

// New creates an *Error for op. A nil cause is allowed.
// OK and undefined values are recorded as GeneralFailure.
func New(op string, o Outcome, cause error) *Error {
	return &Error{
		ID:      uuid.New(),
		Op:      op,
		Outcome: failed(o),
		Err:     cause,
	}
}

// Wrap is like New but returns nil when o is OK, so it can be returned
// directly from an operation.
func Wrap(op string, o Outcome, cause error) error {
	if o == OK {
		return nil
	}
	return New(op, o, cause)
}

// FromSignal classifies s and wraps the result for op.
func FromSignal(op string, s Signal) error {
	o := Classify(s)
	if o == OK {
		return nil
	}
	return New(op, o, fmt.Errorf("native signal %s", s))
}

func (e *Error) Error() string {
	msg := e.Outcome.String()
	if sentinel := e.Outcome.Err(); sentinel != nil {
		msg += ": " + sentinel.Error()
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error of the wrapped category.
func (e *Error) Is(target error) bool {
	sentinel := e.Outcome.Err()
	return sentinel != nil && target == sentinel
}

// Of extracts the Outcome from err. A nil error is OK; an error chain without
// an *Error or a category sentinel classifies as GeneralFailure.
func Of(err error) Outcome {
	if err == nil {
		return OK
	}
	var oe *Error
	if errors.As(err, &oe) {
		return failed(oe.Outcome)
	}
	for i, sentinel := range sentinels {
		if sentinel != nil && errors.Is(err, sentinel) {
			return Outcome(i)
		}
	}
	return GeneralFailure
}

// Is reports whether err classifies as o.
func Is(err error, o Outcome) bool {
	return Of(err) == o
}

// failed maps o onto a failure category: an error never reads as OK.
func failed(o Outcome) Outcome {
	if o == OK || !o.Valid() {
		return GeneralFailure
	}
	return o
}
