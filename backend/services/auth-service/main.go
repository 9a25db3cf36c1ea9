package main

import (
	"context"
	"embed"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/papernet/commercialpaper/backend/pkg/common"
	"github.com/papernet/commercialpaper/backend/pkg/common/db"
	"github.com/papernet/commercialpaper/backend/pkg/common/migrations"
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

	svc := &Service{
		store:  &pgParticipants{db: database},
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.JWTIssuer,
		now:    time.Now,
	}

	log.Printf("Auth Service running on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, svc.Routes()))
}
