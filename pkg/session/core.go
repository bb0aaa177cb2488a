package session

import (
	"context"

	"github.com/dmitrymomot/powerauth/pkg/factor"
	"github.com/dmitrymomot/powerauth/pkg/outcome"
)

// ActivationRequest is passed to the core when an activation starts.
// Code is empty for custom activations identified by other means.
type ActivationRequest struct {
	Code      string
	Signature string
	Recovery  bool
	PUK       string
}

// ActivationResponse carries the server's answer to an activation request.
// Payload is the Base64 encoded, encrypted activation data.
type ActivationResponse struct {
	ActivationID string
	Payload      string
}

// Core is the native cryptographic core. Every method reports its result as
// a Signal that the session classifies. Setup, state, argument and factor
// checks happen before the core is called.
type Core interface {
	StartActivation(ctx context.Context, req ActivationRequest) outcome.Signal
	ValidateActivationResponse(ctx context.Context, activationID string, payload []byte) outcome.Signal
	CompleteActivation(ctx context.Context, keys factor.Keys) outcome.Signal
	SignRequest(ctx context.Context, f factor.Factor, keys factor.Keys, data []byte) (string, outcome.Signal)
	AddBiometryFactor(ctx context.Context, keys factor.Keys) outcome.Signal
	RemoveBiometryFactor(ctx context.Context) outcome.Signal
	// Factors returns the factors persisted in the activated session.
	Factors(ctx context.Context) factor.Factor
	Reset(ctx context.Context)
}
