package models

import "time"

// Participant is a user acting on behalf of a PaperNet organisation.
type Participant struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Org          string    `json:"org"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

const StatusActive = "ACTIVE"

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Org      string `json:"org"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
