package middleware

import (
	"context"
	"net/http"

	"euler_offline/internal/common"
	"euler_offline/internal/common/security"
	"euler_offline/internal/domain/model"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	SubjectCtxKey  contextKey = "subject"
	UserRoleCtxKey contextKey = "userRole"
)

// Authenticator rejects requests without a valid token. jwtauth.Verifier must
// run first.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())

		if err != nil {
			if token == nil {
				common.RespondWithDomainError(w, common.Errorf("authorization token required: %w", common.ErrUnauthorized))
			} else {
				common.RespondWithDomainError(w, common.Errorf("invalid token (%v): %w", err, common.ErrUnauthorized))
			}
			return
		}

		if token == nil {
			common.RespondWithDomainError(w, common.Errorf("invalid token: %w", common.ErrUnauthorized))
			return
		}

		subject, err := security.GetSubjectFromClaims(claims)
		if err != nil {
			common.RespondWithDomainError(w, common.Errorf("invalid token claims (%v): %w", err, common.ErrUnauthorized))
			return
		}
		role, err := security.GetRoleFromClaims(claims)
		if err != nil {
			common.RespondWithDomainError(w, common.Errorf("invalid token claims (%v): %w", err, common.ErrUnauthorized))
			return
		}

		ctx := context.WithValue(r.Context(), SubjectCtxKey, subject)
		ctx = context.WithValue(ctx, UserRoleCtxKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := r.Context().Value(UserRoleCtxKey).(string)
		if !ok || role != model.RoleAdmin {
			common.RespondWithDomainError(w, common.Errorf("admin access required: %w", common.ErrForbidden))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetSubjectFromContext returns the token subject stored by Authenticator.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok
}
