package main

import (
	"context"
	"embed"
	"io/fs"
	"log"
	"net/http"

	"github.com/papernet/commercialpaper/backend/chaincode/papercontract/commercialpaper"
	"github.com/papernet/commercialpaper/backend/pkg/common"
	"github.com/papernet/commercialpaper/backend/pkg/common/db"
	"github.com/papernet/commercialpaper/backend/pkg/common/migrations"
	"github.com/papernet/commercialpaper/backend/pkg/fabricclient"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

func main() {
	cfg, err := common.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	ctx := context.Background()

	// Connect to DB
	database, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer database.Close()

	// Run Migrations
	migrationFS, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		log.Fatalf("Failed to open migrations: %v", err)
	}
	if err := migrations.RunMigrations(ctx, database, migrationFS); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	fabric, err := fabricclient.NewClient(fabricclient.Options{
		ConfigPath:   cfg.FabricConfig,
		WalletPath:   cfg.WalletPath,
		Identity:     cfg.Identity,
		ChannelName:  cfg.Channel,
		ChaincodeID:  cfg.Chaincode,
		ContractName: cfg.Contract,
		MSPID:        cfg.MSP,
		CertPath:     cfg.CertPath,
		KeyPath:      cfg.KeyPath,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Fabric: %v", err)
	}
	defer fabric.Close()

	events, err := fabric.RegisterChaincodeEventListener(commercialpaper.EventName)
	if err != nil {
		log.Printf("Warning: paper events unavailable: %v", err)
	} else {
		go watchPaperEvents(events, log.Printf)
	}

	svc := &Service{ledger: fabric, history: newPGHistory(database)}

	log.Printf("Paper Service running on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, svc.Routes([]byte(cfg.JWTSecret))))
}
