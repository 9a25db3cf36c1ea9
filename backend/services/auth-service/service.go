package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/papernet/commercialpaper/backend/pkg/common"
	"github.com/papernet/commercialpaper/backend/pkg/common/api"
	"github.com/papernet/commercialpaper/backend/services/auth-service/models"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type Service struct {
	store  ParticipantStore
	secret []byte
	issuer string
	now    func() time.Time
}

func (s *Service) Routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/auth/register", s.RegisterHandler).Methods("POST")
	r.HandleFunc("/auth/login", s.LoginHandler).Methods("POST")
	r.HandleFunc("/auth/refresh", s.RefreshHandler).Methods("POST")
	r.HandleFunc("/auth/verify", s.VerifyHandler).Methods("GET")
	return r
}

func (s *Service) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", "")
		return
	}
	if req.Username == "" || req.Password == "" || req.Org == "" {
		api.WriteError(w, http.StatusBadRequest, "invalid_request", "username, password and org are required", "")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "internal_error", "Failed to hash password", "")
		return
	}

	participant := &models.Participant{
		ID:           "participant-" + req.Username,
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		Org:          req.Org,
		Status:       models.StatusActive,
	}
	if err := s.store.Create(r.Context(), participant); err != nil {
		if errors.Is(err, errParticipantExists) {
			api.WriteError(w, http.StatusConflict, "participant_exists", "Username already exists", "")
			return
		}
		log.Printf("Failed to register participant: %v", err)
		api.WriteError(w, http.StatusInternalServerError, "internal_error", "Failed to register participant", "")
		return
	}

	api.WriteSuccess(w, http.StatusCreated, map[string]string{"participant_id": participant.ID, "status": "created"})
}

func (s *Service) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", "")
		return
	}

	participant, err := s.store.GetByUsername(r.Context(), req.Username)
	if errors.Is(err, errParticipantNotFound) {
		api.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password", "")
		return
	} else if err != nil {
		log.Printf("DB Error: %v", err)
		api.WriteError(w, http.StatusInternalServerError, "internal_error", "Database error", "")
		return
	}

	if participant.Status != models.StatusActive {
		api.WriteError(w, http.StatusForbidden, "account_inactive", "Account is not active", "")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(participant.PasswordHash), []byte(req.Password)); err != nil {
		api.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password", "")
		return
	}

	if err := s.store.TouchLogin(r.Context(), participant.ID, s.now()); err != nil {
		log.Printf("Failed to record login for %s: %v", participant.ID, err)
	}

	claims := &common.Claims{
		Username: participant.Username,
		Org:      participant.Org,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: participant.ID,
		},
	}
	s.writeToken(w, claims)
}

func (s *Service) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := common.ParseToken(bearer(r), s.secret)
	if err != nil {
		api.WriteError(w, http.StatusUnauthorized, "invalid_token", "Invalid or expired token", "")
		return
	}
	s.writeToken(w, claims)
}

func (s *Service) VerifyHandler(w http.ResponseWriter, r *http.Request) {
	tokenString := bearer(r)
	if tokenString == "" {
		api.WriteError(w, http.StatusUnauthorized, "missing_token", "Missing Authorization header", "")
		return
	}

	claims, err := common.ParseToken(tokenString, s.secret)
	if err != nil {
		api.WriteError(w, http.StatusUnauthorized, "invalid_token", "Invalid or expired token", "")
		return
	}

	api.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"valid":    true,
		"username": claims.Username,
		"org":      claims.Org,
	})
}

func (s *Service) writeToken(w http.ResponseWriter, claims *common.Claims) {
	expirationTime := s.now().Add(tokenTTL)
	claims.Issuer = s.issuer
	claims.ExpiresAt = jwt.NewNumericDate(expirationTime)

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "internal_error", "Failed to generate token", "")
		return
	}

	api.WriteSuccess(w, http.StatusOK, models.TokenResponse{Token: tokenString, ExpiresAt: expirationTime.Unix()})
}

func bearer(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}
