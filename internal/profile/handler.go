package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/velimirb/portfolio-backend/pkg"
)

const (
	profileCacheKey    = "profile"
	profileCacheExpire = 60 * 60
)

type profileRepo interface {
	Get(ctx context.Context) (*Profile, error)
	Set(ctx context.Context, profile *Profile) error
}

type Handler struct {
	repo  profileRepo
	cache *freecache.Cache
}

func NewHandler(repo profileRepo) *Handler {
	megabyte := 1024 * 1024
	return &Handler{
		repo:  repo,
		cache: freecache.NewCache(1 * megabyte),
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/profile", handler.handleGet).Methods("GET").Name("get-profile")
	router.HandleFunc("/api/profile", handler.handleSet).Methods("PUT", "OPTIONS").Name("update-profile")
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	if cached, err := handler.cache.Get([]byte(profileCacheKey)); err == nil {
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	profile, err := handler.repo.Get(r.Context())
	if errors.Is(err, ErrProfileNotSet) {
		http.Error(w, "profile not set", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get profile error: %s", err)
		http.Error(w, "get profile error", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("marshal profile error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set([]byte(profileCacheKey), profileJson, profileCacheExpire); err != nil {
		log.Errorf("failed to write profile cache: %s", err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, profileJson)
}

func (handler *Handler) handleSet(w http.ResponseWriter, r *http.Request) {
	var profile Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Errorf("update profile, unmarshal json params: %s", err)
		http.Error(w, "update profile failed", http.StatusBadRequest)
		return
	}

	if profile.Name == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Set(r.Context(), &profile); err != nil {
		log.Errorf("update profile failed: %s", err)
		http.Error(w, "update profile failed", http.StatusInternalServerError)
		return
	}

	handler.cache.Del([]byte(profileCacheKey))
	pkg.WriteTextResponseOK(w, "updated")
}
