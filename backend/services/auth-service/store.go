package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/papernet/commercialpaper/backend/services/auth-service/models"
)

var (
	errParticipantExists   = errors.New("participant already exists")
	errParticipantNotFound = errors.New("participant not found")
)

// ParticipantStore persists participants.
type ParticipantStore interface {
	Create(ctx context.Context, p *models.Participant) error
	GetByUsername(ctx context.Context, username string) (*models.Participant, error)
	TouchLogin(ctx context.Context, id string, at time.Time) error
}

type pgParticipants struct {
	db *sql.DB
}

func (s *pgParticipants) Create(ctx context.Context, p *models.Participant) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO auth_db.participants (id, username, password_hash, org, status)
		VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Username, p.PasswordHash, p.Org, p.Status)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return errParticipantExists
	}
	if err != nil {
		return fmt.Errorf("insert participant %s: %w", p.Username, err)
	}
	return nil
}

func (s *pgParticipants) GetByUsername(ctx context.Context, username string) (*models.Participant, error) {
	var p models.Participant
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, org, status, created_at
		FROM auth_db.participants WHERE username = $1`, username).
		Scan(&p.ID, &p.Username, &p.PasswordHash, &p.Org, &p.Status, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errParticipantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load participant %s: %w", username, err)
	}
	return &p, nil
}

func (s *pgParticipants) TouchLogin(ctx context.Context, id string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, "UPDATE auth_db.participants SET last_login_at = $1 WHERE id = $2", at, id)
	return err
}
