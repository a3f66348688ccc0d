package showcase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/velimirb/portfolio-backend/pkg"
)

type showcaseRepo interface {
	AddClient(ctx context.Context, client *Client) error
	UpdateClient(ctx context.Context, client *Client) error
	DeleteClient(ctx context.Context, id int) error
	Clients(ctx context.Context) ([]*Client, error)

	AddTestimonial(ctx context.Context, testimonial *Testimonial) error
	UpdateTestimonial(ctx context.Context, testimonial *Testimonial) error
	DeleteTestimonial(ctx context.Context, id int) error
	Testimonials(ctx context.Context) ([]*Testimonial, error)

	AddAffiliate(ctx context.Context, affiliate *Affiliate) error
	UpdateAffiliate(ctx context.Context, affiliate *Affiliate) error
	DeleteAffiliate(ctx context.Context, id int) error
	Affiliates(ctx context.Context) ([]*Affiliate, error)
}

type Handler struct {
	repo showcaseRepo
}

func NewHandler(repo showcaseRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/clients", handler.handleClients).Methods("GET").Name("all-clients")
	router.HandleFunc("/api/clients", handler.handleAddClient).Methods("POST", "OPTIONS").Name("new-client")
	router.HandleFunc("/api/clients/{id}", handler.handleUpdateClient).Methods("PUT", "OPTIONS").Name("update-client")
	router.HandleFunc("/api/clients/{id}", handler.handleDeleteClient).Methods("DELETE", "OPTIONS").Name("delete-client")

	router.HandleFunc("/api/testimonials", handler.handleTestimonials).Methods("GET").Name("all-testimonials")
	router.HandleFunc("/api/testimonials", handler.handleAddTestimonial).Methods("POST", "OPTIONS").Name("new-testimonial")
	router.HandleFunc("/api/testimonials/{id}", handler.handleUpdateTestimonial).Methods("PUT", "OPTIONS").Name("update-testimonial")
	router.HandleFunc("/api/testimonials/{id}", handler.handleDeleteTestimonial).Methods("DELETE", "OPTIONS").Name("delete-testimonial")

	router.HandleFunc("/api/affiliates", handler.handleAffiliates).Methods("GET").Name("all-affiliates")
	router.HandleFunc("/api/affiliates", handler.handleAddAffiliate).Methods("POST", "OPTIONS").Name("new-affiliate")
	router.HandleFunc("/api/affiliates/{id}", handler.handleUpdateAffiliate).Methods("PUT", "OPTIONS").Name("update-affiliate")
	router.HandleFunc("/api/affiliates/{id}", handler.handleDeleteAffiliate).Methods("DELETE", "OPTIONS").Name("delete-affiliate")
}

func idFromRequest(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func writeListJSON(w http.ResponseWriter, list any) {
	listJson, err := json.Marshal(list)
	if err != nil {
		log.Errorf("marshal list error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, listJson)
}

func (handler *Handler) handleClients(w http.ResponseWriter, r *http.Request) {
	clients, err := handler.repo.Clients(r.Context())
	if err != nil {
		log.Errorf("get clients error: %s", err)
		http.Error(w, "get clients error", http.StatusInternalServerError)
		return
	}
	if clients == nil {
		clients = []*Client{}
	}
	writeListJSON(w, clients)
}

func (handler *Handler) handleAddClient(w http.ResponseWriter, r *http.Request) {
	var client Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		log.Errorf("new client, unmarshal json params: %s", err)
		http.Error(w, "add client failed", http.StatusBadRequest)
		return
	}

	if err := handler.repo.AddClient(r.Context(), &client); err != nil {
		if errors.Is(err, ErrRequiredFieldEmpty) {
			http.Error(w, "error, name empty", http.StatusBadRequest)
			return
		}
		log.Errorf("add new client failed: %s", err)
		http.Error(w, "add new client failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.Text, fmt.Sprintf("added:%d", client.ID), http.StatusCreated)
}

func (handler *Handler) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var client Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		log.Errorf("update client, unmarshal json params: %s", err)
		http.Error(w, "update client failed", http.StatusBadRequest)
		return
	}
	client.ID = id

	if err := handler.repo.UpdateClient(r.Context(), &client); err != nil {
		switch {
		case errors.Is(err, ErrClientNotFound):
			http.Error(w, "client not found", http.StatusNotFound)
		case errors.Is(err, ErrRequiredFieldEmpty):
			http.Error(w, "error, name empty", http.StatusBadRequest)
		default:
			log.Errorf("update client failed: %s", err)
			http.Error(w, "update client failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("updated:%d", id))
}

func (handler *Handler) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteClient(r.Context(), id); err != nil {
		if errors.Is(err, ErrClientNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete client %d: %s", id, err)
		http.Error(w, "delete client failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}

func (handler *Handler) handleTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := handler.repo.Testimonials(r.Context())
	if err != nil {
		log.Errorf("get testimonials error: %s", err)
		http.Error(w, "get testimonials error", http.StatusInternalServerError)
		return
	}
	if testimonials == nil {
		testimonials = []*Testimonial{}
	}
	writeListJSON(w, testimonials)
}

func (handler *Handler) handleAddTestimonial(w http.ResponseWriter, r *http.Request) {
	var testimonial Testimonial
	if err := json.NewDecoder(r.Body).Decode(&testimonial); err != nil {
		log.Errorf("new testimonial, unmarshal json params: %s", err)
		http.Error(w, "add testimonial failed", http.StatusBadRequest)
		return
	}

	if err := handler.repo.AddTestimonial(r.Context(), &testimonial); err != nil {
		if errors.Is(err, ErrRequiredFieldEmpty) {
			http.Error(w, "error, author or quote empty", http.StatusBadRequest)
			return
		}
		log.Errorf("add new testimonial failed: %s", err)
		http.Error(w, "add new testimonial failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.Text, fmt.Sprintf("added:%d", testimonial.ID), http.StatusCreated)
}

func (handler *Handler) handleUpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var testimonial Testimonial
	if err := json.NewDecoder(r.Body).Decode(&testimonial); err != nil {
		log.Errorf("update testimonial, unmarshal json params: %s", err)
		http.Error(w, "update testimonial failed", http.StatusBadRequest)
		return
	}
	testimonial.ID = id

	if err := handler.repo.UpdateTestimonial(r.Context(), &testimonial); err != nil {
		switch {
		case errors.Is(err, ErrTestimonialNotFound):
			http.Error(w, "testimonial not found", http.StatusNotFound)
		case errors.Is(err, ErrRequiredFieldEmpty):
			http.Error(w, "error, author or quote empty", http.StatusBadRequest)
		default:
			log.Errorf("update testimonial failed: %s", err)
			http.Error(w, "update testimonial failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("updated:%d", id))
}

func (handler *Handler) handleDeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteTestimonial(r.Context(), id); err != nil {
		if errors.Is(err, ErrTestimonialNotFound) {
			http.Error(w, "testimonial not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete testimonial %d: %s", id, err)
		http.Error(w, "delete testimonial failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}

func (handler *Handler) handleAffiliates(w http.ResponseWriter, r *http.Request) {
	affiliates, err := handler.repo.Affiliates(r.Context())
	if err != nil {
		log.Errorf("get affiliates error: %s", err)
		http.Error(w, "get affiliates error", http.StatusInternalServerError)
		return
	}
	if affiliates == nil {
		affiliates = []*Affiliate{}
	}
	writeListJSON(w, affiliates)
}

func (handler *Handler) handleAddAffiliate(w http.ResponseWriter, r *http.Request) {
	var affiliate Affiliate
	if err := json.NewDecoder(r.Body).Decode(&affiliate); err != nil {
		log.Errorf("new affiliate, unmarshal json params: %s", err)
		http.Error(w, "add affiliate failed", http.StatusBadRequest)
		return
	}

	if err := handler.repo.AddAffiliate(r.Context(), &affiliate); err != nil {
		if errors.Is(err, ErrRequiredFieldEmpty) {
			http.Error(w, "error, name or url empty", http.StatusBadRequest)
			return
		}
		log.Errorf("add new affiliate failed: %s", err)
		http.Error(w, "add new affiliate failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.Text, fmt.Sprintf("added:%d", affiliate.ID), http.StatusCreated)
}

func (handler *Handler) handleUpdateAffiliate(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var affiliate Affiliate
	if err := json.NewDecoder(r.Body).Decode(&affiliate); err != nil {
		log.Errorf("update affiliate, unmarshal json params: %s", err)
		http.Error(w, "update affiliate failed", http.StatusBadRequest)
		return
	}
	affiliate.ID = id

	if err := handler.repo.UpdateAffiliate(r.Context(), &affiliate); err != nil {
		switch {
		case errors.Is(err, ErrAffiliateNotFound):
			http.Error(w, "affiliate not found", http.StatusNotFound)
		case errors.Is(err, ErrRequiredFieldEmpty):
			http.Error(w, "error, name or url empty", http.StatusBadRequest)
		default:
			log.Errorf("update affiliate failed: %s", err)
			http.Error(w, "update affiliate failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("updated:%d", id))
}

func (handler *Handler) handleDeleteAffiliate(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteAffiliate(r.Context(), id); err != nil {
		if errors.Is(err, ErrAffiliateNotFound) {
			http.Error(w, "affiliate not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete affiliate %d: %s", id, err)
		http.Error(w, "delete affiliate failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}
