package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/velimirb/portfolio-backend/internal/telemetry/metrics"
	"github.com/velimirb/portfolio-backend/internal/telemetry/tracing"
	"github.com/velimirb/portfolio-backend/pkg"
)

type Handler struct {
	service        *Service
	metricsManager *metrics.Manager
}

func NewHandler(service *Service, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

// SetupRoutes registers the login/logout endpoints on a /api/admin
// subrouter; the given middlewares (rate limiting in prod) apply to that
// subrouter only
func (handler *Handler) SetupRoutes(mainRouter *mux.Router, middlewares ...mux.MiddlewareFunc) {
	adminSubrouter := mainRouter.PathPrefix("/api/admin").Subrouter()
	adminSubrouter.
		HandleFunc("/login", handler.handleLogin).
		Methods("POST", "OPTIONS").Name("admin-login")
	adminSubrouter.
		HandleFunc("/logout", handler.handleLogout).
		Methods("POST", "OPTIONS").Name("admin-logout")

	for _, m := range middlewares {
		adminSubrouter.Use(m)
	}
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var credentials Credentials
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			log.Errorf("login, unmarshal json params: %s", err)
			http.Error(w, "login failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		credentials = Credentials{
			Username: r.Form.Get("username"),
			Password: r.Form.Get("password"),
		}
	}

	token, err := handler.service.Login(credentials)
	if errors.Is(err, ErrInvalidCredentials) {
		handler.metricsManager.CounterFailedLogins.Inc()
		span.SetStatus(codes.Error, "invalid-credentials")
		pkg.WriteJSONMessage(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		span.SetStatus(codes.Error, "sign-token-err")
		span.RecordError(err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	log.Trace("new login success")
	handler.metricsManager.CounterLogins.Inc()
	span.SetStatus(codes.Ok, "ok")

	resp, err := json.Marshal(loginResponse{
		Message: "Login successful",
		Token:   token,
	})
	if err != nil {
		log.Errorf("login, marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resp)
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	// the auth middleware already vetted this token; a non-matching token
	// still gets a 200 here - logout is idempotent and never errors
	token := TokenFromAuthHeader(r.Header.Get("Authorization"))
	handler.service.Logout(token)

	log.Trace("logout success")
	span.SetStatus(codes.Ok, "ok")
	pkg.WriteJSONMessage(w, "Logged out successfully", http.StatusOK)
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
