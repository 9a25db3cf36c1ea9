package main

import (
	"log"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/fab"
	"github.com/papernet/commercialpaper/backend/chaincode/papercontract/commercialpaper"
)

// watchPaperEvents logs every committed paper change until events is closed.
func watchPaperEvents(events <-chan *fab.CCEvent, logf func(format string, args ...interface{})) {
	for ev := range events {
		paper, err := commercialpaper.Deserialize(ev.Payload)
		if err != nil {
			logf("Ignoring %s event in tx %s: %v", ev.EventName, ev.TxID, err)
			continue
		}
		logf("Paper %s is now %s, owned by %s (tx %s, block %d)",
			paper.ID(), paper.GetState(), paper.GetOwner(), ev.TxID, ev.BlockNumber)
	}
	log.Println("Paper event stream closed")
}
