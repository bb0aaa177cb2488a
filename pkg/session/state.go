package session

import "fmt"

// State is the activation state of a session.
type State string

const (
	StateEmpty               State = "empty"
	StateActivationStarted   State = "activation_started"
	StateActivationValidated State = "activation_validated"
	StateActivated           State = "activated"
)

func (s State) String() string {
	return string(s)
}

type event string

const (
	eventStart    event = "start"
	eventValidate event = "validate"
	eventComplete event = "complete"
	eventReset    event = "reset"
)

// transitions lists the allowed moves. Reset is accepted in every state.
var transitions = map[State]map[event]State{
	StateEmpty: {
		eventStart: StateActivationStarted,
		eventReset: StateEmpty,
	},
	StateActivationStarted: {
		eventValidate: StateActivationValidated,
		eventReset:    StateEmpty,
	},
	StateActivationValidated: {
		eventComplete: StateActivated,
		eventReset:    StateEmpty,
	},
	StateActivated: {
		eventReset: StateEmpty,
	},
}

// machine tracks the current state. It is not synchronized; Session holds
// its mutex around every call.
type machine struct {
	current State
}

func (m *machine) next(e event) (State, bool) {
	to, ok := transitions[m.current][e]
	return to, ok
}

func (m *machine) canFire(e event) bool {
	_, ok := m.next(e)
	return ok
}

func (m *machine) fire(e event) error {
	to, ok := m.next(e)
	if !ok {
		return fmt.Errorf("%w %q in state %q", ErrUnknownTransition, e, m.current)
	}
	m.current = to
	return nil
}
