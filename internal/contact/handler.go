package contact

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/velimirb/portfolio-backend/internal/telemetry/metrics"
	"github.com/velimirb/portfolio-backend/pkg"
)

const maxContentLength = 10000

type Handler struct {
	sender         Sender
	metricsManager *metrics.Manager
}

func NewHandler(sender Sender, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		sender:         sender,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router, middlewares ...mux.MiddlewareFunc) {
	emailRouter := router.PathPrefix("/api/email").Subrouter()
	emailRouter.HandleFunc("/send", handler.handleSend).Methods("POST", "OPTIONS").Name("send-email")
	emailRouter.Use(middlewares...)
}

func (handler *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	var message Message
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		log.Errorf("send email, unmarshal json params: %s", err)
		pkg.WriteJSONMessage(w, "invalid request", http.StatusBadRequest)
		return
	}

	message.Name = strings.TrimSpace(message.Name)
	message.Email = strings.TrimSpace(message.Email)
	message.Content = strings.TrimSpace(message.Content)

	if message.Name == "" || message.Email == "" || message.Content == "" {
		pkg.WriteJSONMessage(w, "name, email and message are required", http.StatusBadRequest)
		return
	}
	if _, err := mail.ParseAddress(message.Email); err != nil {
		pkg.WriteJSONMessage(w, "invalid email address", http.StatusBadRequest)
		return
	}
	if len(message.Content) > maxContentLength {
		pkg.WriteJSONMessage(w, "message too long", http.StatusBadRequest)
		return
	}

	if err := handler.sender.Send(r.Context(), &message); err != nil {
		log.Errorf("send contact email from [%s]: %s", message.Email, err)
		pkg.WriteJSONMessage(w, "failed to send message", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterContactMessages.Inc()
	log.Tracef("contact message relayed, from: %s", message.Email)

	pkg.WriteJSONMessage(w, "Email sent successfully", http.StatusOK)
}
