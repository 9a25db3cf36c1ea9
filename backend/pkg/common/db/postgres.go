package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/papernet/commercialpaper/backend/pkg/common"
	_ "github.com/lib/pq" // Postgres driver
)

const (
	pingAttempts = 5
	pingInterval = 2 * time.Second
)

// Connect opens the database and waits for it to accept connections.
func Connect(ctx context.Context, cfg common.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open db connection: %w", err)
	}

	for i := 0; i < pingAttempts; i++ {
		err = db.PingContext(ctx)
		if err == nil {
			break
		}
		log.Printf("Waiting for DB... (%d/%d): %v", i+1, pingAttempts, err)
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(pingInterval):
		}
	}

	if err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	log.Println("Successfully connected to database")
	return db, nil
}
