package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/papernet/commercialpaper/backend/chaincode/papercontract/commercialpaper"
	"github.com/papernet/commercialpaper/backend/chaincode/papercontract/ledgerapi"
	"github.com/papernet/commercialpaper/backend/pkg/common"
	"github.com/papernet/commercialpaper/backend/pkg/common/api"
	"github.com/papernet/commercialpaper/backend/services/paper-service/models"
)

const historyLimit = 100

// Ledger is the part of the Fabric client the service uses.
type Ledger interface {
	SubmitTransaction(name string, args ...string) ([]byte, error)
	EvaluateTransaction(name string, args ...string) ([]byte, error)
}

type Service struct {
	ledger  Ledger
	history History
}

// transactionNames maps each advancing operation to its chaincode function.
var transactionNames = map[commercialpaper.Operation]string{
	commercialpaper.OpInvoice:     "Invoice",
	commercialpaper.OpIssue:       "Issue",
	commercialpaper.OpConfirm:     "Confirm",
	commercialpaper.OpEarlyPay:    "EarlyPay",
	commercialpaper.OpAcknowledge: "Acknowledge",
	commercialpaper.OpPay:         "Pay",
}

func (s *Service) Routes(secret []byte) *mux.Router {
	auth := common.AuthMiddleware(secret)

	r := mux.NewRouter()
	r.HandleFunc("/health", s.HealthHandler).Methods("GET")
	r.Handle("/papers", auth(http.HandlerFunc(s.PurchaseHandler))).Methods("POST")
	r.Handle("/papers/{issuer}/{paperNumber}", auth(http.HandlerFunc(s.GetPaperHandler))).Methods("GET")
	r.Handle("/papers/{issuer}/{paperNumber}/history", auth(http.HandlerFunc(s.HistoryHandler))).Methods("GET")
	r.Handle("/papers/{issuer}/{paperNumber}/{action}", auth(http.HandlerFunc(s.TransitionHandler))).Methods("POST")
	return r
}

func (s *Service) HealthHandler(w http.ResponseWriter, r *http.Request) {
	api.WriteSuccess(w, http.StatusOK, map[string]string{"status": "healthy", "service": "paper-service"})
}

func (s *Service) PurchaseHandler(w http.ResponseWriter, r *http.Request) {
	var req models.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", "")
		return
	}
	if req.Issuer == "" || req.NewOwner == "" {
		api.WriteError(w, http.StatusBadRequest, "invalid_request", "issuer and new_owner are required", "")
		return
	}
	number, err := ledgerapi.CanonicalNumber(req.PaperNumber)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid_request", "paper_number must be numeric", "")
		return
	}

	rec := &models.TransactionRecord{
		Issuer:      req.Issuer,
		PaperNumber: number,
		Action:      "purchase",
		NewOwner:    req.NewOwner,
		Amount:      req.FaceValue,
		DateTime:    req.IssueDateTime,
	}
	s.submit(w, r, rec, http.StatusCreated, "Purchase",
		req.Issuer, number, req.NewOwner, req.IssueDateTime, req.MaturityDateTime,
		strconv.FormatInt(req.FaceValue, 10))
}

func (s *Service) TransitionHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	op, ok := commercialpaper.ParseOperation(vars["action"])
	if !ok {
		api.WriteError(w, http.StatusNotFound, "unknown_action", "Unknown lifecycle action "+vars["action"], "")
		return
	}
	number, err := ledgerapi.CanonicalNumber(vars["paperNumber"])
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid_request", "paper number must be numeric", "")
		return
	}

	var req models.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", "")
		return
	}
	if req.CurrentOwner == "" || req.NewOwner == "" {
		api.WriteError(w, http.StatusBadRequest, "invalid_request", "current_owner and new_owner are required", "")
		return
	}

	rec := &models.TransactionRecord{
		Issuer:       vars["issuer"],
		PaperNumber:  number,
		Action:       string(op),
		CurrentOwner: req.CurrentOwner,
		NewOwner:     req.NewOwner,
		Amount:       req.Amount,
		DateTime:     req.DateTime,
	}
	s.submit(w, r, rec, http.StatusOK, transactionNames[op],
		vars["issuer"], number, req.CurrentOwner, req.NewOwner,
		strconv.FormatInt(req.Amount, 10), req.DateTime)
}

// submit records the transaction as pending, submits it to the ledger and
// settles the record with the outcome.
func (s *Service) submit(w http.ResponseWriter, r *http.Request, rec *models.TransactionRecord, okStatus int, fn string, args ...string) {
	ctx := r.Context()
	if claims, ok := common.ClaimsFromContext(ctx); ok {
		rec.SubmittedBy = claims.Username + "@" + claims.Org
	}

	if err := s.history.RecordPending(ctx, rec); err != nil {
		log.Printf("Failed to record pending tx: %v", err)
		api.WriteError(w, http.StatusInternalServerError, "internal_error", "Internal Server Error", "")
		return
	}

	result, err := s.ledger.SubmitTransaction(fn, args...)
	if err != nil {
		code := ledgerapi.CodeOf(err)
		if herr := s.history.MarkFailed(ctx, rec.ID, string(code)); herr != nil {
			log.Printf("Failed to mark tx %s failed: %v", rec.ID, herr)
		}
		s.writeLedgerError(w, fn, err)
		return
	}

	paper, err := commercialpaper.Deserialize(result)
	if err != nil {
		log.Printf("Ledger returned an undecodable paper for tx %s: %v", rec.ID, err)
		if herr := s.history.MarkFailed(ctx, rec.ID, string(ledgerapi.CodeDecode)); herr != nil {
			log.Printf("Failed to mark tx %s failed: %v", rec.ID, herr)
		}
		s.writeLedgerError(w, fn, err)
		return
	}
	if err := s.history.MarkConfirmed(ctx, rec.ID, paper.GetState().String()); err != nil {
		log.Printf("Failed to mark tx %s confirmed: %v", rec.ID, err)
	}

	api.WriteRaw(w, okStatus, result)
}

func (s *Service) GetPaperHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	number, err := ledgerapi.CanonicalNumber(vars["paperNumber"])
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid_request", "paper number must be numeric", "")
		return
	}

	result, err := s.ledger.EvaluateTransaction("GetPaper", vars["issuer"], number)
	if err != nil {
		s.writeLedgerError(w, "GetPaper", err)
		return
	}
	api.WriteRaw(w, http.StatusOK, result)
}

func (s *Service) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	number, err := ledgerapi.CanonicalNumber(vars["paperNumber"])
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid_request", "paper number must be numeric", "")
		return
	}

	history, err := s.history.List(r.Context(), vars["issuer"], number, historyLimit)
	if err != nil {
		log.Printf("Failed to fetch history: %v", err)
		api.WriteError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch history", "")
		return
	}
	if history == nil {
		history = []models.TransactionRecord{}
	}
	api.WriteSuccess(w, http.StatusOK, history)
}

// writeLedgerError reports a chaincode failure with its lifecycle code. The
// full error goes to the log under a trace id.
func (s *Service) writeLedgerError(w http.ResponseWriter, fn string, err error) {
	code := ledgerapi.CodeOf(err)
	traceID := api.NewTraceID()
	log.Printf("%s failed [trace %s]: %v", fn, traceID, err)
	api.WriteError(w, statusFor(code), string(code), ledgerMessage(err, code), traceID)
}

// ledgerMessage trims transport noise in front of the chaincode's own message.
func ledgerMessage(err error, code ledgerapi.Code) string {
	msg := err.Error()
	if code == ledgerapi.CodeUnknown {
		return "Transaction failed"
	}
	if idx := strings.Index(msg, string(code)+":"); idx >= 0 {
		return msg[idx:]
	}
	return msg
}

func statusFor(code ledgerapi.Code) int {
	switch code {
	case ledgerapi.CodeNotFound:
		return http.StatusNotFound
	case ledgerapi.CodeAlreadyExists, ledgerapi.CodeInvalidStateTransition:
		return http.StatusConflict
	case ledgerapi.CodeOwnerMismatch:
		return http.StatusForbidden
	case ledgerapi.CodeInvalidArgument:
		return http.StatusBadRequest
	case ledgerapi.CodeDecode:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
