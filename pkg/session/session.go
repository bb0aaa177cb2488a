package session

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/powerauth/pkg/activationcode"
	"github.com/dmitrymomot/powerauth/pkg/factor"
	"github.com/dmitrymomot/powerauth/pkg/journal"
	"github.com/dmitrymomot/powerauth/pkg/logger"
	"github.com/dmitrymomot/powerauth/pkg/outcome"
)

// Operation names used in errors, logs and journal entries.
const (
	OpStartActivation            = "start_activation"
	OpStartRecoveryActivation    = "start_recovery_activation"
	OpValidateActivationResponse = "validate_activation_response"
	OpCompleteActivation         = "complete_activation"
	OpSignRequest                = "sign_request"
	OpAddBiometryFactor          = "add_biometry_factor"
	OpRemoveBiometryFactor       = "remove_biometry_factor"
)

// Session drives a Core through the activation flow and reports the result
// of every operation as nil or an *outcome.Error. Methods are safe for
// concurrent use; operations are serialized.
type Session struct {
	id       string
	setup    Setup
	setupErr error
	core     Core
	log      *slog.Logger
	recorder journal.Recorder

	mu      sync.Mutex
	machine machine
}

// New creates a session in StateEmpty. An invalid setup or a nil core does
// not fail construction; every operation then returns outcome.WrongSetup.
func New(setup Setup, core Core, opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		setup:   setup,
		core:    core,
		log:     logger.Nop(),
		machine: machine{current: StateEmpty},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.setupErr = setup.Validate()
	if s.setupErr == nil && core == nil {
		s.setupErr = outcome.New("session.setup", outcome.WrongSetup, ErrNoCore)
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

// HasValidSetup reports whether operations can reach the core.
func (s *Session) HasValidSetup() bool {
	return s.setupErr == nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.current
}

// CanStartActivation reports whether StartActivation is allowed now.
func (s *Session) CanStartActivation() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setupErr == nil && s.machine.canFire(eventStart)
}

// StartActivation begins an activation with a code typed by the user or
// scanned from a QR code, "CODE" or "CODE#SIGNATURE".
func (s *Session) StartActivation(ctx context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	const op = OpStartActivation
	if err := s.precheck(op, eventStart); err != nil {
		return s.finish(ctx, op, err)
	}

	c, err := activationcode.Parse(code)
	if err != nil {
		return s.finish(ctx, op, rename(op, err))
	}

	sig := s.core.StartActivation(ctx, ActivationRequest{Code: c.Code, Signature: c.Signature})
	return s.finish(ctx, op, s.advance(op, sig, eventStart))
}

// StartRecoveryActivation begins an activation with a recovery code and PUK.
// A malformed PUK classifies as outcome.WrongCode like a malformed code.
func (s *Session) StartRecoveryActivation(ctx context.Context, code, puk string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	const op = OpStartRecoveryActivation
	if err := s.precheck(op, eventStart); err != nil {
		return s.finish(ctx, op, err)
	}

	c, err := activationcode.ParseRecovery(code)
	if err != nil {
		return s.finish(ctx, op, rename(op, err))
	}
	if !activationcode.ValidateRecoveryPUK(puk) {
		return s.finish(ctx, op, outcome.New(op, outcome.WrongCode, ErrInvalidPUK))
	}

	sig := s.core.StartActivation(ctx, ActivationRequest{Code: c.Code, Recovery: true, PUK: puk})
	return s.finish(ctx, op, s.advance(op, sig, eventStart))
}

// ValidateActivationResponse hands the server response to the core. A
// payload that is not valid Base64 classifies as outcome.WrongData and, like
// any WrongData result from the core, resets the session so the activation
// has to start again from a fresh code.
func (s *Session) ValidateActivationResponse(ctx context.Context, resp ActivationResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	const op = OpValidateActivationResponse
	if err := s.precheck(op, eventValidate); err != nil {
		return s.finish(ctx, op, err)
	}
	if resp.ActivationID == "" {
		return s.finish(ctx, op, outcome.New(op, outcome.WrongParam, ErrMissingActivationID))
	}
	if resp.Payload == "" {
		return s.finish(ctx, op, outcome.New(op, outcome.WrongParam, ErrMissingPayload))
	}

	payload, err := base64.StdEncoding.DecodeString(resp.Payload)
	if err != nil {
		return s.finish(ctx, op, s.reject(ctx, outcome.New(op, outcome.WrongData, errors.Join(ErrMalformedPayload, err))))
	}

	sig := s.core.ValidateActivationResponse(ctx, resp.ActivationID, payload)
	err = s.advance(op, sig, eventValidate)
	if outcome.Of(err).RequiresAttackPosture() {
		err = s.reject(ctx, err)
	}
	return s.finish(ctx, op, err)
}

// CompleteActivation persists the activation protected by the given keys.
// Possession and knowledge keys are mandatory; a biometry key is optional.
func (s *Session) CompleteActivation(ctx context.Context, keys factor.Keys) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	const op = OpCompleteActivation
	if err := s.precheck(op, eventComplete); err != nil {
		return s.finish(ctx, op, err)
	}

	required := factor.PossessionKnowledge
	if keys.Biometry != nil {
		required |= factor.Biometry
	}
	if err := factor.Check(required, required, keys); err != nil {
		return s.finish(ctx, op, rename(op, err))
	}

	sig := s.core.CompleteActivation(ctx, keys)
	return s.finish(ctx, op, s.advance(op, sig, eventComplete))
}

// SignRequest computes a signature header for data using the requested
// factors. The session must be activated.
func (s *Session) SignRequest(ctx context.Context, f factor.Factor, keys factor.Keys, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	const op = OpSignRequest
	if err := s.requireActivated(op); err != nil {
		return "", s.finish(ctx, op, err)
	}
	if err := factor.Check(f, s.core.Factors(ctx), keys); err != nil {
		return "", s.finish(ctx, op, rename(op, err))
	}

	header, sig := s.core.SignRequest(ctx, f, keys, data)
	if err := outcome.FromSignal(op, sig); err != nil {
		return "", s.finish(ctx, op, err)
	}
	return header, s.finish(ctx, op, nil)
}

// AddBiometryFactor protects a new biometry key with the possession and
// knowledge keys of the activated session.
func (s *Session) AddBiometryFactor(ctx context.Context, keys factor.Keys) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	const op = OpAddBiometryFactor
	if err := s.requireActivated(op); err != nil {
		return s.finish(ctx, op, err)
	}
	all := factor.PossessionKnowledgeBiometry
	if err := factor.Check(all, all, keys); err != nil {
		return s.finish(ctx, op, rename(op, err))
	}

	return s.finish(ctx, op, outcome.FromSignal(op, s.core.AddBiometryFactor(ctx, keys)))
}

// RemoveBiometryFactor deletes the biometry key. It returns
// outcome.MissingRequestedFactor when no biometry key is set up.
func (s *Session) RemoveBiometryFactor(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	const op = OpRemoveBiometryFactor
	if err := s.requireActivated(op); err != nil {
		return s.finish(ctx, op, err)
	}
	if !s.core.Factors(ctx).Has(factor.Biometry) {
		return s.finish(ctx, op, outcome.New(op, outcome.MissingRequestedFactor, ErrBiometryNotSet))
	}

	return s.finish(ctx, op, outcome.FromSignal(op, s.core.RemoveBiometryFactor(ctx)))
}

// HasBiometryFactor reports whether the activated session has a biometry key.
func (s *Session) HasBiometryFactor(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.setupErr != nil || s.machine.current != StateActivated {
		return false
	}
	return s.core.Factors(ctx).Has(factor.Biometry)
}

// Reset drops any activation data and returns the session to StateEmpty.
func (s *Session) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked(ctx)
}

func (s *Session) resetLocked(ctx context.Context) {
	if s.core != nil {
		s.core.Reset(ctx)
	}
	_ = s.machine.fire(eventReset)
	s.log.DebugContext(logger.WithSessionID(ctx, s.id), "session reset", logger.State(s.machine.current.String()))
}

// reject resets the session after a result that may indicate tampering.
func (s *Session) reject(ctx context.Context, err error) error {
	s.resetLocked(ctx)
	return err
}

func (s *Session) precheck(op string, e event) error {
	if s.setupErr != nil {
		return outcome.New(op, outcome.WrongSetup, errors.Unwrap(s.setupErr))
	}
	if !s.machine.canFire(e) {
		return outcome.New(op, outcome.WrongState, fmt.Errorf("%w: %s", ErrNotAllowedInState, s.machine.current))
	}
	return nil
}

func (s *Session) requireActivated(op string) error {
	if s.setupErr != nil {
		return outcome.New(op, outcome.WrongSetup, errors.Unwrap(s.setupErr))
	}
	if s.machine.current != StateActivated {
		return outcome.New(op, outcome.WrongState, fmt.Errorf("%w: %s", ErrNotAllowedInState, s.machine.current))
	}
	return nil
}

// advance classifies sig and moves the state machine on success.
func (s *Session) advance(op string, sig outcome.Signal, e event) error {
	if err := outcome.FromSignal(op, sig); err != nil {
		return err
	}
	if err := s.machine.fire(e); err != nil {
		return outcome.New(op, outcome.WrongState, err)
	}
	return nil
}

// finish logs and records the result of op and returns err unchanged.
func (s *Session) finish(ctx context.Context, op string, err error) error {
	o := outcome.Of(err)
	lctx := logger.WithSessionID(ctx, s.id)
	s.log.Log(lctx, logger.LevelFor(o), "session operation finished",
		logger.Op(op),
		logger.Outcome(o),
		logger.State(s.machine.current.String()),
		logger.Error(err),
	)

	if s.recorder != nil {
		if rerr := s.recorder.Record(ctx, journal.NewEntry(s.id, op, err)); rerr != nil {
			s.log.WarnContext(lctx, "failed to record outcome", logger.Op(op), logger.Error(rerr))
		}
	}
	return err
}

// rename re-labels an *outcome.Error produced by a helper package with the
// session operation name while keeping its outcome, id and cause.
func rename(op string, err error) error {
	var oe *outcome.Error
	if errors.As(err, &oe) {
		return &outcome.Error{ID: oe.ID, Op: op, Outcome: oe.Outcome, Err: oe.Err}
	}
	return outcome.New(op, outcome.Of(err), err)
}
