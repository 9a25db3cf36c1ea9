package common

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/papernet/commercialpaper/backend/pkg/common/api"
)

// Claims identify a PaperNet participant: a user acting for an organisation.
type Claims struct {
	Username string `json:"username"`
	Org      string `json:"org"`
	jwt.RegisteredClaims
}

type claimsKey struct{}

// ClaimsFromContext returns the claims stored by AuthMiddleware.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok
}

// ParseToken verifies an HS256 token and returns its claims.
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// AuthMiddleware verifies the bearer token and stores its claims in the
// request context.
func AuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				api.WriteError(w, http.StatusUnauthorized, "missing_token", "Authorization header required", "")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := ParseToken(tokenString, secret)
			if err != nil {
				api.WriteError(w, http.StatusUnauthorized, "invalid_token", "Invalid or expired token", "")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
		})
	}
}
