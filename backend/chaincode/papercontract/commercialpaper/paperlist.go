package commercialpaper

import (
	"github.com/papernet/commercialpaper/backend/chaincode/papercontract/ledgerapi"
)

// ListName namespaces paper keys in the world state.
const ListName = "org.papernet.paperlist"

// ListInterface is the ledger collection of papers.
type ListInterface interface {
	AddPaper(*CommercialPaper) error
	GetPaper(issuer, paperNumber string) (*CommercialPaper, error)
	UpdatePaper(*CommercialPaper) error
}

type list struct {
	stateList *ledgerapi.StateList
}

func newList(store ledgerapi.WorldState) *list {
	return &list{stateList: ledgerapi.NewStateList(store, ListName, Registry)}
}

func (l *list) AddPaper(paper *CommercialPaper) error {
	return l.stateList.Create(paper)
}

func (l *list) GetPaper(issuer, paperNumber string) (*CommercialPaper, error) {
	key, err := ledgerapi.MakeKey(ListName, issuer, paperNumber)
	if err != nil {
		return nil, err
	}
	state, err := l.stateList.GetByKey(key)
	if err != nil {
		if ledgerapi.CodeOf(err) == ledgerapi.CodeNotFound {
			return nil, ledgerapi.Errorf(ledgerapi.CodeNotFound, "paper %s:%s does not exist", issuer, paperNumber)
		}
		return nil, err
	}
	paper, ok := state.(*CommercialPaper)
	if !ok {
		return nil, ledgerapi.Errorf(ledgerapi.CodeDecode, "state at %s:%s is %s, not a commercial paper", issuer, paperNumber, state.Class())
	}
	return paper, nil
}

func (l *list) UpdatePaper(paper *CommercialPaper) error {
	return l.stateList.Update(paper)
}
