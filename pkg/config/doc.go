// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing. Each configuration type is
// parsed once per process and cached, so every package can call Load for the
// struct it needs without coordinating with others.
//
// Structs that implement Validator are validated after parsing. session.Setup
// uses this to turn a malformed master key into a WrongSetup outcome at start
// up rather than on the first session operation.
//
// # Usage
//
//	var setup session.Setup
//	if err := config.Load(&setup); err != nil {
//	    return err // outcome.Of(err) == outcome.WrongSetup for invalid values
//	}
//
//	var journalCfg journal.RedisConfig
//	config.MustLoad(&journalCfg)
//
// Use LoadEnv to read additional files before the first Load, and ResetCache in
// tests that change the environment.
package config
