package ledgerapi

import (
	"encoding/json"
	"errors"
	"testing"
)

type note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (n *note) Class() string      { return "org.example.note" }
func (n *note) KeyParts() []string { return []string{n.ID} }

type memo struct {
	ID string `json:"id"`
}

func (m *memo) Class() string      { return "org.example.memo" }
func (m *memo) KeyParts() []string { return []string{m.ID} }

func testRegistry() *Registry {
	r := NewRegistry()
	r.Register("org.example.note", func() State { return new(note) })
	r.Register("org.example.memo", func() State { return new(memo) })
	return r
}

func TestWrapUnwrapRoundTrip(t *testing.T) {
	in := &note{ID: "n1", Text: "hello"}
	raw, err := Wrap(in.Class(), in)
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if string(env["class"]) != `"org.example.note"` {
		t.Fatalf("expected class tag, got %s", env["class"])
	}

	var out note
	if err := Unwrap(raw, "org.example.note", &out); err != nil {
		t.Fatalf("unwrap: %v", err)
	}
	if out != *in {
		t.Fatalf("expected %+v, got %+v", *in, out)
	}
}

func TestUnwrapFailures(t *testing.T) {
	cases := map[string]string{
		"malformed":     `{"class":`,
		"missing class": `{"data":{"id":"n1"}}`,
		"empty class":   `{"class":"","data":{"id":"n1"}}`,
		"missing data":  `{"class":"org.example.note"}`,
		"null data":     `{"class":"org.example.note","data":null}`,
		"mismatch":      `{"class":"org.example.memo","data":{"id":"n1"}}`,
		"bad payload":   `{"class":"org.example.note","data":{"id":1}}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var out note
			err := Unwrap([]byte(raw), "org.example.note", &out)
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("expected decode error, got %v", err)
			}
		})
	}
}

func TestRegistryDispatchesOnClass(t *testing.T) {
	r := testRegistry()

	raw, err := Wrap("org.example.memo", &memo{ID: "m1"})
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	state, err := r.Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m, ok := state.(*memo)
	if !ok {
		t.Fatalf("expected *memo, got %T", state)
	}
	if m.ID != "m1" {
		t.Fatalf("expected id m1, got %q", m.ID)
	}

	_, err = r.Decode([]byte(`{"class":"org.example.unknown","data":{}}`))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected decode error for unknown class, got %v", err)
	}
}

func TestWrapRequiresClass(t *testing.T) {
	if _, err := Wrap("", &note{}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
