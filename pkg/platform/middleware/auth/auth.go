// Package auth provides the middleware that resolves the calling
// participant's identity from a bearer token and stashes it in the request
// context for handlers.
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	dErrors "kycnet/pkg/domain-errors"
	"kycnet/pkg/platform/httputil"
)

// TokenValidator verifies a raw token and returns the participant identity.
type TokenValidator interface {
	Validate(token string) (string, error)
}

// FailureRecorder counts rejected tokens, typically a metrics counter.
type FailureRecorder interface {
	IncrementAuthFailures()
}

type contextKey struct{}

var callerKey = contextKey{}

// Middleware authenticates the request and injects the caller identity into
// the context. Requests without a valid bearer token get 401.
func Middleware(validator TokenValidator, logger *slog.Logger, failures FailureRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := extractBearer(r.Header.Get("Authorization"))
			if err != nil {
				reject(w, r, logger, failures, err)
				return
			}

			identity, err := validator.Validate(token)
			if err != nil {
				reject(w, r, logger, failures, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCallerIdentity(r.Context(), identity)))
		})
	}
}

// WithCallerIdentity returns a context carrying the caller identity. Exposed
// for tests and non-HTTP entry points.
func WithCallerIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, callerKey, identity)
}

// GetCallerIdentity returns the authenticated participant identity, or the
// empty string when the request did not pass the middleware.
func GetCallerIdentity(ctx context.Context) string {
	identity, _ := ctx.Value(callerKey).(string)
	return identity
}

func reject(w http.ResponseWriter, r *http.Request, logger *slog.Logger, failures FailureRecorder, err error) {
	if logger != nil {
		logger.WarnContext(r.Context(), "rejected caller token", "error", err)
	}
	if failures != nil {
		failures.IncrementAuthFailures()
	}
	httputil.WriteError(w, err)
}

func extractBearer(authHeader string) (string, error) {
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) || len(authHeader) == len(bearerPrefix) {
		return "", dErrors.New(dErrors.CodeUnauthorized, "missing or invalid authorization header")
	}
	return authHeader[len(bearerPrefix):], nil
}
