package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Finaxis002/FCOBackend/pkg/response"
)

type contextKey string

const (
	ContextUserID   contextKey = "userID"
	ContextUserName contextKey = "userName"
	ContextRole     contextKey = "role"
)

// Identity trusts the identity headers stamped by the upstream auth gateway.
// Token verification happens there; this service only consumes the result.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-Id")
		if userID == "" {
			response.Error(w, http.StatusUnauthorized, "missing identity")
			return
		}

		ctx := context.WithValue(r.Context(), ContextUserID, userID)
		ctx = context.WithValue(ctx, ContextUserName, r.Header.Get("X-User-Name"))
		ctx = context.WithValue(ctx, ContextRole, r.Header.Get("X-User-Role"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetUserID(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(ContextUserID).(string)
	return val, ok
}

func GetUserName(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(ContextUserName).(string)
	return val, ok
}

// IsAdmin reports whether the request identity carries an administrator
// role. "Admin" and "Super Admin" both qualify, matching the historical
// role spellings.
func IsAdmin(ctx context.Context) bool {
	role, _ := ctx.Value(ContextRole).(string)
	switch strings.ToLower(role) {
	case "admin", "super admin":
		return true
	}
	return false
}
