package projects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/velimirb/portfolio-backend/pkg"
)

const (
	oneHour             = 60 * 60
	projectsCacheExpire = oneHour * 1
	projectsCacheKey    = "projects::all"
	selectedCacheKey    = "projects::selected"
)

type projectsRepo interface {
	Add(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (*Project, error)
	All(ctx context.Context) ([]*Project, error)
	Selected(ctx context.Context) ([]*Project, error)
}

type Handler struct {
	repo  projectsRepo
	cache *freecache.Cache
}

func NewHandler(repo projectsRepo) *Handler {
	megabyte := 1024 * 1024
	return &Handler{
		repo:  repo,
		cache: freecache.NewCache(10 * megabyte),
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/projects", handler.handleAll).Methods("GET").Name("all-projects")
	router.HandleFunc("/api/projects/selected", handler.handleSelected).Methods("GET").Name("selected-projects")
	router.HandleFunc("/api/projects/{id}", handler.handleGet).Methods("GET").Name("get-project")
	router.HandleFunc("/api/projects", handler.handleAdd).Methods("POST", "OPTIONS").Name("new-project")
	router.HandleFunc("/api/projects/{id}", handler.handleUpdate).Methods("PUT", "OPTIONS").Name("update-project")
	router.HandleFunc("/api/projects/{id}", handler.handleDelete).Methods("DELETE", "OPTIONS").Name("delete-project")
}

func (handler *Handler) handleAll(w http.ResponseWriter, r *http.Request) {
	if cached, err := handler.cache.Get([]byte(projectsCacheKey)); err == nil {
		log.Trace("serving projects list from cache")
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	allProjects, err := handler.repo.All(r.Context())
	if err != nil {
		log.Errorf("get all projects error: %s", err)
		http.Error(w, "get all projects error", http.StatusInternalServerError)
		return
	}

	handler.writeProjectsList(w, allProjects, projectsCacheKey)
}

func (handler *Handler) handleSelected(w http.ResponseWriter, r *http.Request) {
	if cached, err := handler.cache.Get([]byte(selectedCacheKey)); err == nil {
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	selectedProjects, err := handler.repo.Selected(r.Context())
	if err != nil {
		log.Errorf("get selected projects error: %s", err)
		http.Error(w, "get selected projects error", http.StatusInternalServerError)
		return
	}

	handler.writeProjectsList(w, selectedProjects, selectedCacheKey)
}

func (handler *Handler) writeProjectsList(w http.ResponseWriter, projects []*Project, cacheKey string) {
	if projects == nil {
		projects = []*Project{}
	}

	projectsJson, err := json.Marshal(projects)
	if err != nil {
		log.Errorf("marshal projects error: %s", err)
		http.Error(w, "marshal projects error", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set([]byte(cacheKey), projectsJson, projectsCacheExpire); err != nil {
		log.Errorf("failed to write projects cache [%s]: %s", cacheKey, err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, projectsJson)
}

func (handler *Handler) invalidateCache() {
	handler.cache.Del([]byte(projectsCacheKey))
	handler.cache.Del([]byte(selectedCacheKey))
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	project, err := handler.repo.Get(r.Context(), id)
	if errors.Is(err, ErrProjectNotFound) {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get project %d: %s", id, err)
		http.Error(w, "get project error", http.StatusInternalServerError)
		return
	}

	projectJson, err := json.Marshal(project)
	if err != nil {
		log.Errorf("marshal project error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, projectJson)
}

func (handler *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var project Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Errorf("new project, unmarshal json params: %s", err)
		http.Error(w, "add project failed", http.StatusBadRequest)
		return
	}

	if project.Title == "" {
		http.Error(w, "error, title empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Add(r.Context(), &project); err != nil {
		log.Errorf("add new project failed: %s", err)
		http.Error(w, "add new project failed", http.StatusInternalServerError)
		return
	}

	handler.invalidateCache()
	log.Tracef("new project %d: [%s] added", project.ID, project.Title)

	projectJson, err := json.Marshal(project)
	if err != nil {
		log.Errorf("marshal project error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, projectJson, http.StatusCreated)
}

func (handler *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var project Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Errorf("update project, unmarshal json params: %s", err)
		http.Error(w, "update project failed", http.StatusBadRequest)
		return
	}
	project.ID = id

	if err := handler.repo.Update(r.Context(), &project); err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}
		log.Errorf("update project failed: %s", err)
		http.Error(w, "update project failed", http.StatusInternalServerError)
		return
	}

	handler.invalidateCache()
	pkg.WriteTextResponseOK(w, fmt.Sprintf("updated:%d", id))
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete project %d: %s", id, err)
		http.Error(w, "error, project not deleted, internal server error", http.StatusInternalServerError)
		return
	}

	handler.invalidateCache()
	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}
