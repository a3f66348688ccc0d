package middleware

import (
	"errors"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/velimirb/portfolio-backend/internal/auth"
	"github.com/velimirb/portfolio-backend/internal/telemetry/tracing"
	"github.com/velimirb/portfolio-backend/pkg"
)

// sessionGate is the session arbiter every protected request goes through
type sessionGate interface {
	Authenticate(presentedToken string) error
}

type AuthMiddlewareHandler struct {
	gate sessionGate

	allowedPaths map[string]bool
	// content resources the public site reads anonymously; only GETs pass
	// without a token, mutations still go through the gate
	publicReadPrefixes []string
	// routes open for any method (contact form, upload signatures)
	publicPrefixes []string
}

func NewAuthMiddlewareHandler(gate sessionGate) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		gate: gate,
		allowedPaths: map[string]bool{
			"/":                true,
			"/api/admin/login": true,
		},
		publicReadPrefixes: []string{
			"/api/projects",
			"/api/profile",
			"/api/skills",
			"/api/awards",
			"/api/blogs",
			"/api/clients",
			"/api/experiences",
			"/api/affiliates",
			"/api/testimonials",
		},
		publicPrefixes: []string{
			"/api/email",
			"/api/uploads",
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(method, path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	for _, prefix := range h.publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	if method == http.MethodGet {
		for _, prefix := range h.publicReadPrefixes {
			if strings.HasPrefix(path, prefix) {
				return true
			}
		}
	}
	return false
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r.Method, r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			token := auth.TokenFromAuthHeader(r.Header.Get("Authorization"))
			if err := h.gate.Authenticate(token); err != nil {
				log.Tracef("[auth middleware] unauthorized => %s: %s", r.URL.Path, err)
				span.SetStatus(codes.Error, "unauthorized")
				pkg.WriteJSONMessage(w, authFailureMessage(err), http.StatusUnauthorized)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}

// authFailureMessage maps a gate rejection to the message the admin UI keys
// its forced re-login behavior on - one message per failure kind
func authFailureMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenMissing):
		return "Token missing"
	case errors.Is(err, auth.ErrSessionInvalidated):
		return "Session expired or invalidated. Please log in again."
	case errors.Is(err, auth.ErrSessionExpiredInactivity):
		return "Session expired due to inactivity. Please log in again."
	default:
		return "Token expired or invalid. Please log in again."
	}
}
