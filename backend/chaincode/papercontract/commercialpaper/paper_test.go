package commercialpaper

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/papernet/commercialpaper/backend/chaincode/papercontract/ledgerapi"
)

func TestNewPaperHasNoState(t *testing.T) {
	paper := NewPaper("MagnetoCorp", "1", "2020-05-31", "2020-11-30", 5000000)
	if paper.GetState().Valid() {
		t.Fatalf("expected no state, got %s", paper.GetState())
	}
	if paper.GetOwner() != "" {
		t.Fatalf("expected no owner, got %q", paper.GetOwner())
	}
}

func TestStateSettersAndPredicates(t *testing.T) {
	paper := NewPaper("MagnetoCorp", "1", "", "", 0)
	cases := []struct {
		set   func()
		is    func() bool
		state State
	}{
		{paper.SetPurchased, paper.IsPurchased, Purchased},
		{paper.SetInvoiced, paper.IsInvoiced, Invoiced},
		{paper.SetIssued, paper.IsIssued, Issued},
		{paper.SetConfirmed, paper.IsConfirmed, Confirmed},
		{paper.SetEarlyPaid, paper.IsEarlyPaid, EarlyPaid},
		{paper.SetAcknowledged, paper.IsAcknowledged, Acknowledged},
		{paper.SetPaid, paper.IsPaid, Paid},
	}
	for _, tc := range cases {
		tc.set()
		if !tc.is() {
			t.Fatalf("expected predicate for %s to hold", tc.state)
		}
		if paper.GetState() != tc.state {
			t.Fatalf("expected %s, got %s", tc.state, paper.GetState())
		}
		for _, other := range cases {
			if other.state != tc.state && other.is() {
				t.Fatalf("predicate for %s holds while in %s", other.state, tc.state)
			}
		}
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	paper := NewPaper("MagnetoCorp", "1", "2020-05-31", "2020-11-30", 5000000)
	paper.SetPurchased()
	paper.SetOwner("MagnetoCorp")

	raw, err := paper.Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	var env struct {
		Class string                     `json:"class"`
		Data  map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Class != Class {
		t.Fatalf("expected class %s, got %s", Class, env.Class)
	}
	for _, field := range []string{"issuer", "paperNumber", "owner", "currentState", "issueDateTime", "maturityDateTime", "faceValue"} {
		if _, ok := env.Data[field]; !ok {
			t.Fatalf("expected field %s in payload", field)
		}
	}

	back, err := Deserialize(raw)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if *back != *paper {
		t.Fatalf("expected %+v, got %+v", *paper, *back)
	}

	state, err := Registry.Decode(raw)
	if err != nil {
		t.Fatalf("registry decode: %v", err)
	}
	if got, ok := state.(*CommercialPaper); !ok || *got != *paper {
		t.Fatalf("registry decoded %#v", state)
	}
}

func TestDeserializeRejectsForeignClass(t *testing.T) {
	raw, err := ledgerapi.Wrap("org.papernet.bond", map[string]string{"issuer": "MagnetoCorp"})
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	if _, err := Deserialize(raw); !errors.Is(err, ledgerapi.ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
}
