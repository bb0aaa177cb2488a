// Package logger builds *slog.Logger instances for services embedding
// PowerAuth sessions.
//
// New takes functional options for format, level, output and static
// attributes. WithEnvironment applies development, staging or production
// presets, and WithConfig applies a Config loaded with config.Load.
//
// Records logged with a context carrying a session id (see WithSessionID)
// automatically include "session_id". Additional ContextExtractor callbacks
// can add other request scoped values.
//
// Attribute helpers keep key names consistent across packages:
//
//	log.ErrorContext(ctx, "operation failed",
//	    logger.Op("validate_activation_response"),
//	    logger.Outcome(outcome.WrongData),
//	    logger.Error(err),
//	)
//
// LevelFor maps an outcome to the level the session facade logs it at.
package logger
