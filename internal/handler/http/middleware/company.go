package middleware

import (
	"net/http"

	"github.com/coreorbit/officehub-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireCompany rejects tokens that carry no tenant. Every route under
// it can assume a non-empty company_id claim.
func RequireCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Failed to extract claims from context")
			return
		}

		companyID, ok := claims["company_id"].(string)
		if !ok || companyID == "" {
			response.Forbidden(w, "company_id claim is missing or invalid")
			return
		}

		next.ServeHTTP(w, r)
	})
}
