package commercialpaper

import (
	"github.com/papernet/commercialpaper/backend/chaincode/papercontract/ledgerapi"
)

// Class is the envelope tag of a commercial paper.
const Class = "org.papernet.commercialpaper"

// CommercialPaper is a paper as stored on the ledger.
type CommercialPaper struct {
	Issuer           string `json:"issuer"`
	PaperNumber      string `json:"paperNumber"`
	Owner            string `json:"owner"`
	CurrentState     State  `json:"currentState"`
	IssueDateTime    string `json:"issueDateTime"`
	MaturityDateTime string `json:"maturityDateTime"`
	FaceValue        int64  `json:"faceValue"`
}

// NewPaper builds a paper with no owner and no state.
func NewPaper(issuer, paperNumber, issueDateTime, maturityDateTime string, faceValue int64) *CommercialPaper {
	return &CommercialPaper{
		Issuer:           issuer,
		PaperNumber:      paperNumber,
		IssueDateTime:    issueDateTime,
		MaturityDateTime: maturityDateTime,
		FaceValue:        faceValue,
	}
}

// Class implements ledgerapi.State.
func (cp *CommercialPaper) Class() string { return Class }

// KeyParts implements ledgerapi.State.
func (cp *CommercialPaper) KeyParts() []string {
	return []string{cp.Issuer, cp.PaperNumber}
}

// ID is the human readable identity of the paper, used in messages.
func (cp *CommercialPaper) ID() string {
	return cp.Issuer + ":" + cp.PaperNumber
}

func (cp *CommercialPaper) GetOwner() string      { return cp.Owner }
func (cp *CommercialPaper) SetOwner(owner string) { cp.Owner = owner }

func (cp *CommercialPaper) GetState() State      { return cp.CurrentState }
func (cp *CommercialPaper) SetState(state State) { cp.CurrentState = state }

func (cp *CommercialPaper) SetPurchased()    { cp.CurrentState = Purchased }
func (cp *CommercialPaper) SetInvoiced()     { cp.CurrentState = Invoiced }
func (cp *CommercialPaper) SetIssued()       { cp.CurrentState = Issued }
func (cp *CommercialPaper) SetConfirmed()    { cp.CurrentState = Confirmed }
func (cp *CommercialPaper) SetEarlyPaid()    { cp.CurrentState = EarlyPaid }
func (cp *CommercialPaper) SetAcknowledged() { cp.CurrentState = Acknowledged }
func (cp *CommercialPaper) SetPaid()         { cp.CurrentState = Paid }

func (cp *CommercialPaper) IsPurchased() bool    { return cp.CurrentState == Purchased }
func (cp *CommercialPaper) IsInvoiced() bool     { return cp.CurrentState == Invoiced }
func (cp *CommercialPaper) IsIssued() bool       { return cp.CurrentState == Issued }
func (cp *CommercialPaper) IsConfirmed() bool    { return cp.CurrentState == Confirmed }
func (cp *CommercialPaper) IsEarlyPaid() bool    { return cp.CurrentState == EarlyPaid }
func (cp *CommercialPaper) IsAcknowledged() bool { return cp.CurrentState == Acknowledged }
func (cp *CommercialPaper) IsPaid() bool         { return cp.CurrentState == Paid }

// Serialize returns the envelope bytes of the paper.
func (cp *CommercialPaper) Serialize() ([]byte, error) {
	return ledgerapi.Wrap(Class, cp)
}

// Deserialize decodes envelope bytes into a paper.
func Deserialize(raw []byte) (*CommercialPaper, error) {
	cp := new(CommercialPaper)
	if err := ledgerapi.Unwrap(raw, Class, cp); err != nil {
		return nil, err
	}
	return cp, nil
}

// Registry knows how to decode every state class this chaincode stores.
var Registry = ledgerapi.NewRegistry()

func init() {
	Registry.Register(Class, func() ledgerapi.State { return new(CommercialPaper) })
}
