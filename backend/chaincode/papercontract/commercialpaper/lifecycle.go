package commercialpaper

import (
	"fmt"
	"strings"
)

// State is a lifecycle state of a commercial paper.
type State uint

const (
	Purchased State = iota + 1
	Invoiced
	Issued
	Confirmed
	EarlyPaid
	Acknowledged
	Paid
)

// lifecycle is the one canonical ordering of states. Predecessors and
// successors are derived from it.
var lifecycle = []State{Purchased, Invoiced, Issued, Confirmed, EarlyPaid, Acknowledged, Paid}

var stateNames = map[State]string{
	Purchased:    "PURCHASE",
	Invoiced:     "INVOICE",
	Issued:       "ISSUE",
	Confirmed:    "CONFIRM",
	EarlyPaid:    "EARLYPAY",
	Acknowledged: "ACKNOWLEDGE",
	Paid:         "PAY",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", uint(s))
}

// Valid reports whether s is one of the lifecycle states.
func (s State) Valid() bool {
	return s.index() >= 0
}

// Predecessor returns the state immediately before s.
func (s State) Predecessor() (State, bool) {
	i := s.index()
	if i <= 0 {
		return 0, false
	}
	return lifecycle[i-1], true
}

// Next returns the state immediately after s.
func (s State) Next() (State, bool) {
	i := s.index()
	if i < 0 || i == len(lifecycle)-1 {
		return 0, false
	}
	return lifecycle[i+1], true
}

func (s State) index() int {
	for i, st := range lifecycle {
		if st == s {
			return i
		}
	}
	return -1
}

// ParseState resolves a state name such as "INVOICE" (case-insensitive).
func ParseState(name string) (State, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, s := range lifecycle {
		if stateNames[s] == upper {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown state %q", name)
}

// States returns the lifecycle in order.
func States() []State {
	return append([]State(nil), lifecycle...)
}

// Operation is an advancing lifecycle action.
type Operation string

const (
	OpInvoice     Operation = "invoice"
	OpIssue       Operation = "issue"
	OpConfirm     Operation = "confirm"
	OpEarlyPay    Operation = "earlyPay"
	OpAcknowledge Operation = "acknowledge"
	OpPay         Operation = "pay"
)

var operationTargets = map[Operation]State{
	OpInvoice:     Invoiced,
	OpIssue:       Issued,
	OpConfirm:     Confirmed,
	OpEarlyPay:    EarlyPaid,
	OpAcknowledge: Acknowledged,
	OpPay:         Paid,
}

// Target returns the state op moves a paper into.
func (op Operation) Target() (State, bool) {
	t, ok := operationTargets[op]
	return t, ok
}

// Operations returns the advancing operations in lifecycle order.
func Operations() []Operation {
	return []Operation{OpInvoice, OpIssue, OpConfirm, OpEarlyPay, OpAcknowledge, OpPay}
}

// ParseOperation resolves an operation name case-insensitively.
func ParseOperation(name string) (Operation, bool) {
	for _, op := range Operations() {
		if strings.EqualFold(string(op), name) {
			return op, true
		}
	}
	return "", false
}
