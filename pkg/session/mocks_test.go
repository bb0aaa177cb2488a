package session_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/powerauth/pkg/factor"
	"github.com/dmitrymomot/powerauth/pkg/outcome"
	"github.com/dmitrymomot/powerauth/pkg/session"
)

// MockCore is a mock implementation of session.Core.
type MockCore struct {
	mock.Mock
}

func (m *MockCore) StartActivation(ctx context.Context, req session.ActivationRequest) outcome.Signal {
	args := m.Called(ctx, req)
	return args.Get(0).(outcome.Signal)
}

func (m *MockCore) ValidateActivationResponse(ctx context.Context, activationID string, payload []byte) outcome.Signal {
	args := m.Called(ctx, activationID, payload)
	return args.Get(0).(outcome.Signal)
}

func (m *MockCore) CompleteActivation(ctx context.Context, keys factor.Keys) outcome.Signal {
	args := m.Called(ctx, keys)
	return args.Get(0).(outcome.Signal)
}

func (m *MockCore) SignRequest(ctx context.Context, f factor.Factor, keys factor.Keys, data []byte) (string, outcome.Signal) {
	args := m.Called(ctx, f, keys, data)
	return args.String(0), args.Get(1).(outcome.Signal)
}

func (m *MockCore) AddBiometryFactor(ctx context.Context, keys factor.Keys) outcome.Signal {
	args := m.Called(ctx, keys)
	return args.Get(0).(outcome.Signal)
}

func (m *MockCore) RemoveBiometryFactor(ctx context.Context) outcome.Signal {
	args := m.Called(ctx)
	return args.Get(0).(outcome.Signal)
}

func (m *MockCore) Factors(ctx context.Context) factor.Factor {
	args := m.Called(ctx)
	return args.Get(0).(factor.Factor)
}

func (m *MockCore) Reset(ctx context.Context) {
	m.Called(ctx)
}
