package main

import (
	"log"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/papernet/commercialpaper/backend/chaincode/papercontract/commercialpaper"
)

func main() {
	contract := new(commercialpaper.Contract)
	contract.Name = commercialpaper.ContractName
	contract.Info.Version = "0.0.1"
	contract.TransactionContextHandler = new(commercialpaper.TransactionContext)

	paperChaincode, err := contractapi.NewChaincode(contract)
	if err != nil {
		log.Panicf("Error creating commercial paper chaincode: %v", err)
	}

	paperChaincode.Info.Title = "PaperNet commercial paper chaincode"
	paperChaincode.Info.Version = "0.0.1"

	if err := paperChaincode.Start(); err != nil {
		log.Panicf("Error starting commercial paper chaincode: %v", err)
	}
}
