package session

import (
	"encoding/base64"
	"errors"

	"github.com/dmitrymomot/powerauth/pkg/factor"
	"github.com/dmitrymomot/powerauth/pkg/outcome"
)

// Setup is the static configuration of a session, usually loaded from the
// environment with config.Load.
type Setup struct {
	ApplicationKey        string `env:"POWERAUTH_APP_KEY"`
	ApplicationSecret     string `env:"POWERAUTH_APP_SECRET"`
	MasterServerPublicKey string `env:"POWERAUTH_MASTER_SERVER_PUBLIC_KEY"`
	// ExternalEncryptionKey is optional. When set it must decode to 16 bytes.
	ExternalEncryptionKey string `env:"POWERAUTH_EXTERNAL_ENCRYPTION_KEY"`
}

// Validate checks the setup. Failures classify as outcome.WrongSetup.
func (s Setup) Validate() error {
	const op = "session.setup"

	check := func(value string, missing, invalid error) error {
		if value == "" {
			return missing
		}
		if _, err := base64.StdEncoding.DecodeString(value); err != nil {
			return errors.Join(invalid, err)
		}
		return nil
	}

	if err := check(s.ApplicationKey, ErrMissingApplicationKey, ErrInvalidApplicationKey); err != nil {
		return outcome.New(op, outcome.WrongSetup, err)
	}
	if err := check(s.ApplicationSecret, ErrMissingApplicationSecret, ErrInvalidApplicationSecret); err != nil {
		return outcome.New(op, outcome.WrongSetup, err)
	}
	if err := check(s.MasterServerPublicKey, ErrInvalidMasterKey, ErrInvalidMasterKey); err != nil {
		return outcome.New(op, outcome.WrongSetup, err)
	}
	if _, err := s.EncryptionKey(); err != nil {
		return outcome.New(op, outcome.WrongSetup, err)
	}
	return nil
}

// EncryptionKey decodes the external encryption key. It returns nil when no
// key is configured.
func (s Setup) EncryptionKey() ([]byte, error) {
	if s.ExternalEncryptionKey == "" {
		return nil, nil
	}
	key, err := base64.StdEncoding.DecodeString(s.ExternalEncryptionKey)
	if err != nil {
		return nil, errors.Join(ErrInvalidEncryptionKey, err)
	}
	if len(key) != factor.KeySize {
		return nil, ErrInvalidEncryptionKey
	}
	return key, nil
}
