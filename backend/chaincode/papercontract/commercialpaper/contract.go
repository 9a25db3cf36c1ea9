package commercialpaper

import (
	"strings"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/papernet/commercialpaper/backend/chaincode/papercontract/ledgerapi"
)

// ContractName is the namespace clients address the contract by.
const ContractName = "org.papernet.commercialpaper"

// EventName is the chaincode event emitted after every successful write.
const EventName = "PaperEvent"

// Contract drives commercial papers through their lifecycle.
type Contract struct {
	contractapi.Contract
}

// Instantiate does nothing. It exists so the chaincode can be initialised
// with an explicit call.
func (c *Contract) Instantiate(ctx TransactionContextInterface) error {
	return nil
}

// Purchase creates a paper in the PURCHASE state owned by newOwner.
func (c *Contract) Purchase(ctx TransactionContextInterface, issuer string, paperNumber string, newOwner string, issueDateTime string, maturityDateTime string, faceValue int64) (string, error) {
	number, err := paperIdentity(issuer, paperNumber)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(newOwner) == "" {
		return "", ledgerapi.Errorf(ledgerapi.CodeInvalidArgument, "paper %s:%s needs an owner", issuer, number)
	}

	paper := NewPaper(issuer, number, issueDateTime, maturityDateTime, faceValue)
	paper.SetPurchased()
	paper.SetOwner(newOwner)

	if err := ctx.GetPaperList().AddPaper(paper); err != nil {
		return "", err
	}
	return c.emit(ctx, paper)
}

// Invoice moves a paper from PURCHASE to INVOICE, or transfers it if it is
// already invoiced.
func (c *Contract) Invoice(ctx TransactionContextInterface, issuer string, paperNumber string, currentOwner string, newOwner string, invoiceAmount int64, invoiceDateTime string) (string, error) {
	return c.advance(ctx, OpInvoice, issuer, paperNumber, currentOwner, newOwner)
}

// Issue moves a paper from INVOICE to ISSUE, or transfers it at ISSUE.
func (c *Contract) Issue(ctx TransactionContextInterface, issuer string, paperNumber string, currentOwner string, newOwner string, issueAmount int64, issueDateTime string) (string, error) {
	return c.advance(ctx, OpIssue, issuer, paperNumber, currentOwner, newOwner)
}

// Confirm moves a paper from ISSUE to CONFIRM, or transfers it at CONFIRM.
func (c *Contract) Confirm(ctx TransactionContextInterface, issuer string, paperNumber string, currentOwner string, newOwner string, confirmAmount int64, confirmDateTime string) (string, error) {
	return c.advance(ctx, OpConfirm, issuer, paperNumber, currentOwner, newOwner)
}

// EarlyPay moves a paper from CONFIRM to EARLYPAY, or transfers it at EARLYPAY.
func (c *Contract) EarlyPay(ctx TransactionContextInterface, issuer string, paperNumber string, currentOwner string, newOwner string, earlyPayAmount int64, earlyPayDateTime string) (string, error) {
	return c.advance(ctx, OpEarlyPay, issuer, paperNumber, currentOwner, newOwner)
}

// Acknowledge moves a paper from EARLYPAY to ACKNOWLEDGE, or transfers it at
// ACKNOWLEDGE.
func (c *Contract) Acknowledge(ctx TransactionContextInterface, issuer string, paperNumber string, currentOwner string, newOwner string, acknowledgeAmount int64, acknowledgeDateTime string) (string, error) {
	return c.advance(ctx, OpAcknowledge, issuer, paperNumber, currentOwner, newOwner)
}

// Pay moves a paper from ACKNOWLEDGE to PAY, or transfers it at PAY.
func (c *Contract) Pay(ctx TransactionContextInterface, issuer string, paperNumber string, currentOwner string, newOwner string, payAmount int64, payDateTime string) (string, error) {
	return c.advance(ctx, OpPay, issuer, paperNumber, currentOwner, newOwner)
}

// GetPaper returns the stored envelope of a paper without changing it.
func (c *Contract) GetPaper(ctx TransactionContextInterface, issuer string, paperNumber string) (string, error) {
	number, err := paperIdentity(issuer, paperNumber)
	if err != nil {
		return "", err
	}
	paper, err := ctx.GetPaperList().GetPaper(issuer, number)
	if err != nil {
		return "", err
	}
	raw, err := paper.Serialize()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// advance is shared by every operation after purchase. A paper sitting at the
// operation's predecessor moves to the target; a paper already at the target
// only changes hands. Anything else is rejected.
func (c *Contract) advance(ctx TransactionContextInterface, op Operation, issuer, paperNumber, currentOwner, newOwner string) (string, error) {
	target, ok := op.Target()
	if !ok {
		return "", ledgerapi.Errorf(ledgerapi.CodeInvalidArgument, "unknown operation %q", op)
	}
	predecessor, _ := target.Predecessor()

	number, err := paperIdentity(issuer, paperNumber)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(newOwner) == "" {
		return "", ledgerapi.Errorf(ledgerapi.CodeInvalidArgument, "paper %s:%s needs a new owner", issuer, number)
	}

	papers := ctx.GetPaperList()
	paper, err := papers.GetPaper(issuer, number)
	if err != nil {
		return "", err
	}

	if paper.GetOwner() != currentOwner {
		return "", ledgerapi.Errorf(ledgerapi.CodeOwnerMismatch,
			"paper %s is not owned by %s", paper.ID(), currentOwner)
	}

	if paper.GetState() == predecessor {
		paper.SetState(target)
	}
	if paper.GetState() != target {
		return "", ledgerapi.Errorf(ledgerapi.CodeInvalidStateTransition,
			"paper %s is in state %s, %s requires %s or %s",
			paper.ID(), paper.GetState(), op, predecessor, target)
	}

	paper.SetOwner(newOwner)
	if err := papers.UpdatePaper(paper); err != nil {
		return "", err
	}
	return c.emit(ctx, paper)
}

// emit serializes the paper, announces it as a chaincode event and returns it.
func (c *Contract) emit(ctx TransactionContextInterface, paper *CommercialPaper) (string, error) {
	raw, err := paper.Serialize()
	if err != nil {
		return "", err
	}
	if err := ctx.GetStub().SetEvent(EventName, raw); err != nil {
		return "", err
	}
	return string(raw), nil
}

// paperIdentity validates the identifying fields and returns the canonical
// paper number.
func paperIdentity(issuer, paperNumber string) (string, error) {
	if strings.TrimSpace(issuer) == "" {
		return "", ledgerapi.Errorf(ledgerapi.CodeInvalidArgument, "issuer must not be empty")
	}
	number, err := ledgerapi.CanonicalNumber(paperNumber)
	if err != nil {
		return "", ledgerapi.Errorf(ledgerapi.CodeInvalidArgument, "paper number %q of %s is not a number", paperNumber, issuer)
	}
	return number, nil
}
