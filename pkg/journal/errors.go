package journal

import "errors"

var (
	// ErrMissingSessionID is returned when an entry is recorded without a session id.
	ErrMissingSessionID = errors.New("journal entry has no session id")

	// ErrMissingOp is returned when an entry is recorded without an operation name.
	ErrMissingOp = errors.New("journal entry has no operation")

	// ErrFailedToRecord wraps store failures while writing an entry.
	ErrFailedToRecord = errors.New("failed to record journal entry")

	// ErrFailedToList wraps store failures while reading entries back.
	ErrFailedToList = errors.New("failed to list journal entries")

	// ErrFailedToParseRedisConnString is returned when JOURNAL_REDIS_URL is not a valid redis URL.
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")

	// ErrRedisNotReady is returned when Connect runs out of attempts or time.
	ErrRedisNotReady = errors.New("redis did not become ready within the given time period")

	// ErrHealthcheckFailed is returned by the Healthcheck probe when the server does not answer.
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
)
