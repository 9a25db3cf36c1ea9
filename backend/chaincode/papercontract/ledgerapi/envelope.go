package ledgerapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Envelope is the persisted form of every state: a stable class tag plus the
// state's own fields.
type Envelope struct {
	Class string          `json:"class"`
	Data  json.RawMessage `json:"data"`
}

// State is anything stored in a StateList.
type State interface {
	// Class returns the stable type tag written into the envelope.
	Class() string
	// KeyParts returns the ordered identifying fields of the state.
	KeyParts() []string
}

// Wrap serializes fields under the class tag.
func Wrap(class string, fields any) ([]byte, error) {
	if class == "" {
		return nil, Errorf(CodeInvalidArgument, "envelope class must not be empty")
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", class, err)
	}
	return json.Marshal(Envelope{Class: class, Data: data})
}

// Open parses raw bytes into an envelope without interpreting the payload.
func Open(raw []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, WrapError(CodeDecode, err, "malformed envelope")
	}
	if env.Class == "" {
		return Envelope{}, Errorf(CodeDecode, "envelope has no class")
	}
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return Envelope{}, Errorf(CodeDecode, "envelope %s has no data", env.Class)
	}
	return env, nil
}

// Unwrap decodes raw into `into`, requiring the envelope to carry expectedClass.
func Unwrap(raw []byte, expectedClass string, into any) error {
	env, err := Open(raw)
	if err != nil {
		return err
	}
	if env.Class != expectedClass {
		return Errorf(CodeDecode, "envelope class %q, expected %q", env.Class, expectedClass)
	}
	if err := json.Unmarshal(env.Data, into); err != nil {
		return WrapError(CodeDecode, err, "decode %s", env.Class)
	}
	return nil
}

// Registry maps class tags to constructors so stored bytes can be turned back
// into the right concrete type without knowing it up front. It is filled
// once at start-up and only read afterwards.
type Registry struct {
	factories map[string]func() State
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]func() State)}
}

// Register binds a class tag to a constructor. Registering the same class
// twice replaces the previous constructor.
func (r *Registry) Register(class string, factory func() State) {
	r.factories[class] = factory
}

// Decode reconstructs the concrete state stored in raw.
func (r *Registry) Decode(raw []byte) (State, error) {
	env, err := Open(raw)
	if err != nil {
		return nil, err
	}
	factory, ok := r.factories[env.Class]
	if !ok {
		return nil, Errorf(CodeDecode, "unknown envelope class %q", env.Class)
	}
	state := factory()
	if err := json.Unmarshal(env.Data, state); err != nil {
		return nil, WrapError(CodeDecode, err, "decode %s", env.Class)
	}
	if state.Class() != env.Class {
		return nil, Errorf(CodeDecode, "factory for %q built %q", env.Class, state.Class())
	}
	return state, nil
}
