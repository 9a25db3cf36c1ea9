package common

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret")

func signedToken(t *testing.T, claims *Claims, secret []byte) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func protected(t *testing.T) (http.Handler, *Claims) {
	seen := &Claims{}
	h := AuthMiddleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			t.Fatalf("expected claims in context")
		}
		*seen = *claims
		w.WriteHeader(http.StatusNoContent)
	}))
	return h, seen
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	h, seen := protected(t)
	token := signedToken(t, &Claims{
		Username: "alice",
		Org:      "DigiBank",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/papers", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if seen.Username != "alice" || seen.Org != "DigiBank" {
		t.Fatalf("unexpected claims %+v", seen)
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	expired := signedToken(t, &Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, testSecret)
	foreign := signedToken(t, &Claims{Username: "mallory"}, []byte("other-secret"))

	cases := map[string]string{
		"missing header": "",
		"garbage":        "Bearer not-a-token",
		"expired":        "Bearer " + expired,
		"wrong secret":   "Bearer " + foreign,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			h, _ := protected(t)
			req := httptest.NewRequest(http.MethodGet, "/papers", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
