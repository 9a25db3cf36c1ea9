package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/papernet/commercialpaper/backend/services/paper-service/models"
)

// History is the off-chain audit trail of submitted transactions.
type History interface {
	RecordPending(ctx context.Context, rec *models.TransactionRecord) error
	MarkConfirmed(ctx context.Context, id, resultState string) error
	MarkFailed(ctx context.Context, id, errorCode string) error
	List(ctx context.Context, issuer, paperNumber string, limit int) ([]models.TransactionRecord, error)
}

type pgHistory struct {
	db *sql.DB
}

func newPGHistory(db *sql.DB) *pgHistory {
	return &pgHistory{db: db}
}

func (h *pgHistory) RecordPending(ctx context.Context, rec *models.TransactionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.Status = models.StatusPending
	err := h.db.QueryRowContext(ctx, `
		INSERT INTO paper_db.transactions (
			id, issuer, paper_number, action, current_owner, new_owner, amount, date_time, status, submitted_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`,
		rec.ID, rec.Issuer, rec.PaperNumber, rec.Action, rec.CurrentOwner, rec.NewOwner,
		rec.Amount, rec.DateTime, rec.Status, rec.SubmittedBy).
		Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("record pending %s: %w", rec.ID, err)
	}
	return nil
}

func (h *pgHistory) MarkConfirmed(ctx context.Context, id, resultState string) error {
	_, err := h.db.ExecContext(ctx,
		"UPDATE paper_db.transactions SET status = $1, result_state = $2, updated_at = NOW() WHERE id = $3",
		models.StatusConfirmed, resultState, id)
	if err != nil {
		return fmt.Errorf("mark confirmed %s: %w", id, err)
	}
	return nil
}

func (h *pgHistory) MarkFailed(ctx context.Context, id, errorCode string) error {
	_, err := h.db.ExecContext(ctx,
		"UPDATE paper_db.transactions SET status = $1, error_code = $2, updated_at = NOW() WHERE id = $3",
		models.StatusFailed, errorCode, id)
	if err != nil {
		return fmt.Errorf("mark failed %s: %w", id, err)
	}
	return nil
}

func (h *pgHistory) List(ctx context.Context, issuer, paperNumber string, limit int) ([]models.TransactionRecord, error) {
	rows, err := h.db.QueryContext(ctx, `
		SELECT id, issuer, paper_number, action, current_owner, new_owner, amount, date_time,
			status, result_state, error_code, submitted_by, created_at, updated_at
		FROM paper_db.transactions
		WHERE issuer = $1 AND paper_number = $2
		ORDER BY created_at ASC LIMIT $3`, issuer, paperNumber, limit)
	if err != nil {
		return nil, fmt.Errorf("list history %s:%s: %w", issuer, paperNumber, err)
	}
	defer rows.Close()

	var history []models.TransactionRecord
	for rows.Next() {
		var rec models.TransactionRecord
		if err := rows.Scan(&rec.ID, &rec.Issuer, &rec.PaperNumber, &rec.Action, &rec.CurrentOwner,
			&rec.NewOwner, &rec.Amount, &rec.DateTime, &rec.Status, &rec.ResultState, &rec.ErrorCode,
			&rec.SubmittedBy, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		history = append(history, rec)
	}
	return history, rows.Err()
}
