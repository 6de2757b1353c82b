package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/jwtauth/v5"

	"github.com/Wiktor-Wewe/psi-projekt/pkg/responder"
)

// NewTokenAuth builds the HS256 verifier/signer shared by the login handler
// and the auth middleware.
func NewTokenAuth(secret string) *jwtauth.JWTAuth {
	return jwtauth.New("HS256", []byte(secret), nil)
}

// AuthMiddleware rejects requests without a valid employee JWT.
func AuthMiddleware(tokenAuth *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Accept a bare token as well as the Bearer form.
			authHeader := r.Header.Get("Authorization")
			if authHeader != "" && !strings.HasPrefix(authHeader, "Bearer ") {
				r.Header.Set("Authorization", "Bearer "+authHeader)
			}

			token, err := jwtauth.VerifyRequest(tokenAuth, r, jwtauth.TokenFromHeader)
			if err != nil || token == nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(responder.ErrorResponse{Error: "Forbidden"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
