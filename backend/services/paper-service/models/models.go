package models

import "time"

// TransactionRecord is one submitted lifecycle transaction as tracked
// off-chain, from Pending to Confirmed or Failed.
type TransactionRecord struct {
	ID           string    `json:"id"`
	Issuer       string    `json:"issuer"`
	PaperNumber  string    `json:"paper_number"`
	Action       string    `json:"action"`
	CurrentOwner string    `json:"current_owner,omitempty"`
	NewOwner     string    `json:"new_owner"`
	Amount       int64     `json:"amount"`
	DateTime     string    `json:"date_time,omitempty"`
	Status       string    `json:"status"`
	ResultState  string    `json:"result_state,omitempty"`
	ErrorCode    string    `json:"error_code,omitempty"`
	SubmittedBy  string    `json:"submitted_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusFailed    = "Failed"
)

type PurchaseRequest struct {
	Issuer           string `json:"issuer"`
	PaperNumber      string `json:"paper_number"`
	NewOwner         string `json:"new_owner"`
	IssueDateTime    string `json:"issue_date_time"`
	MaturityDateTime string `json:"maturity_date_time"`
	FaceValue        int64  `json:"face_value"`
}

type TransitionRequest struct {
	CurrentOwner string `json:"current_owner"`
	NewOwner     string `json:"new_owner"`
	Amount       int64  `json:"amount"`
	DateTime     string `json:"date_time"`
}
