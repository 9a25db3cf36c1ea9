package commercialpaper

import (
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// TransactionContextInterface is the context every paper transaction receives.
type TransactionContextInterface interface {
	contractapi.TransactionContextInterface
	GetPaperList() ListInterface
}

// TransactionContext carries the paper list for a single invocation. The
// contract API builds a fresh one per transaction.
type TransactionContext struct {
	contractapi.TransactionContext
	paperList *list
}

// GetPaperList returns the paper list bound to this transaction's stub.
func (tc *TransactionContext) GetPaperList() ListInterface {
	if tc.paperList == nil {
		tc.paperList = newList(tc.GetStub())
	}
	return tc.paperList
}
