package ledgerapi

// WorldState is the part of the chaincode stub a StateList needs.
// shim.ChaincodeStubInterface satisfies it.
type WorldState interface {
	GetState(key string) ([]byte, error)
	PutState(key string, value []byte) error
}

// StateList is a named collection of states in the world state. Every call
// touches exactly one key.
type StateList struct {
	Name     string
	store    WorldState
	registry *Registry
}

// NewStateList binds a list to the world state of the current transaction.
func NewStateList(store WorldState, name string, registry *Registry) *StateList {
	return &StateList{Name: name, store: store, registry: registry}
}

// Key returns the world state key of a state in this list.
func (l *StateList) Key(state State) (string, error) {
	return MakeKey(l.Name, state.KeyParts()...)
}

// GetByKey loads and decodes the state stored under key.
func (l *StateList) GetByKey(key string) (State, error) {
	raw, err := l.store.GetState(key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, Errorf(CodeNotFound, "no state at %s", printableKey(key))
	}
	return l.registry.Decode(raw)
}

// Create stores a new state. It fails if the key is already occupied.
func (l *StateList) Create(state State) error {
	key, err := l.Key(state)
	if err != nil {
		return err
	}
	existing, err := l.store.GetState(key)
	if err != nil {
		return err
	}
	if existing != nil {
		return Errorf(CodeAlreadyExists, "state %s already exists", printableKey(key))
	}
	return l.put(key, state)
}

// Update overwrites an existing state. It never creates one.
func (l *StateList) Update(state State) error {
	key, err := l.Key(state)
	if err != nil {
		return err
	}
	existing, err := l.store.GetState(key)
	if err != nil {
		return err
	}
	if existing == nil {
		return Errorf(CodeNotFound, "no state at %s", printableKey(key))
	}
	return l.put(key, state)
}

func (l *StateList) put(key string, state State) error {
	raw, err := Wrap(state.Class(), state)
	if err != nil {
		return err
	}
	return l.store.PutState(key, raw)
}

// printableKey renders a key with ':' in place of delimiters for messages.
func printableKey(key string) string {
	objectType, parts, err := SplitKey(key)
	if err != nil {
		return key
	}
	out := objectType
	for _, p := range parts {
		out += ":" + p
	}
	return out
}
