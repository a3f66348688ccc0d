package resume

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

type resumeRepo interface {
	AddSkill(ctx context.Context, skill *Skill) error
	UpdateSkill(ctx context.Context, skill *Skill) error
	DeleteSkill(ctx context.Context, id int) error
	Skills(ctx context.Context) ([]*Skill, error)

	AddExperience(ctx context.Context, experience *Experience) error
	UpdateExperience(ctx context.Context, experience *Experience) error
	DeleteExperience(ctx context.Context, id int) error
	Experiences(ctx context.Context) ([]*Experience, error)

	AddAward(ctx context.Context, award *Award) error
	UpdateAward(ctx context.Context, award *Award) error
	DeleteAward(ctx context.Context, id int) error
	Awards(ctx context.Context) ([]*Award, error)
}

type Handler struct {
	repo resumeRepo
}

func NewHandler(repo resumeRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/skills", handler.handleSkills).Methods("GET").Name("all-skills")
	router.HandleFunc("/api/skills", handler.handleAddSkill).Methods("POST", "OPTIONS").Name("new-skill")
	router.HandleFunc("/api/skills/{id}", handler.handleUpdateSkill).Methods("PUT", "OPTIONS").Name("update-skill")
	router.HandleFunc("/api/skills/{id}", handler.handleDeleteSkill).Methods("DELETE", "OPTIONS").Name("delete-skill")

	router.HandleFunc("/api/experiences", handler.handleExperiences).Methods("GET").Name("all-experiences")
	router.HandleFunc("/api/experiences", handler.handleAddExperience).Methods("POST", "OPTIONS").Name("new-experience")
	router.HandleFunc("/api/experiences/{id}", handler.handleUpdateExperience).Methods("PUT", "OPTIONS").Name("update-experience")
	router.HandleFunc("/api/experiences/{id}", handler.handleDeleteExperience).Methods("DELETE", "OPTIONS").Name("delete-experience")

	router.HandleFunc("/api/awards", handler.handleAwards).Methods("GET").Name("all-awards")
	router.HandleFunc("/api/awards", handler.handleAddAward).Methods("POST", "OPTIONS").Name("new-award")
	router.HandleFunc("/api/awards/{id}", handler.handleUpdateAward).Methods("PUT", "OPTIONS").Name("update-award")
	router.HandleFunc("/api/awards/{id}", handler.handleDeleteAward).Methods("DELETE", "OPTIONS").Name("delete-award")
}

func idFromRequest(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func writeList(w http.ResponseWriter, list any) {
	listJson, err := json.Marshal(list)
	if err != nil {
		log.Errorf("marshal list error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, listJson)
}

func (handler *Handler) handleSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := handler.repo.Skills(r.Context())
	if err != nil {
		log.Errorf("get skills error: %s", err)
		http.Error(w, "get skills error", http.StatusInternalServerError)
		return
	}
	if skills == nil {
		skills = []*Skill{}
	}
	writeList(w, skills)
}

func (handler *Handler) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	var skill Skill
	if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
		log.Errorf("new skill, unmarshal json params: %s", err)
		http.Error(w, "add skill failed", http.StatusBadRequest)
		return
	}
	if skill.Name == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.AddSkill(r.Context(), &skill); err != nil {
		log.Errorf("add new skill failed: %s", err)
		http.Error(w, "add new skill failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.Text, fmt.Sprintf("added:%d", skill.ID), http.StatusCreated)
}

func (handler *Handler) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var skill Skill
	if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
		log.Errorf("update skill, unmarshal json params: %s", err)
		http.Error(w, "update skill failed", http.StatusBadRequest)
		return
	}
	skill.ID = id

	if err := handler.repo.UpdateSkill(r.Context(), &skill); err != nil {
		if errors.Is(err, ErrSkillNotFound) {
			http.Error(w, "skill not found", http.StatusNotFound)
			return
		}
		log.Errorf("update skill failed: %s", err)
		http.Error(w, "update skill failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("updated:%d", id))
}

func (handler *Handler) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteSkill(r.Context(), id); err != nil {
		if errors.Is(err, ErrSkillNotFound) {
			http.Error(w, "skill not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete skill %d: %s", id, err)
		http.Error(w, "delete skill failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}

func (handler *Handler) handleExperiences(w http.ResponseWriter, r *http.Request) {
	experiences, err := handler.repo.Experiences(r.Context())
	if err != nil {
		log.Errorf("get experiences error: %s", err)
		http.Error(w, "get experiences error", http.StatusInternalServerError)
		return
	}
	if experiences == nil {
		experiences = []*Experience{}
	}
	writeList(w, experiences)
}

func (handler *Handler) handleAddExperience(w http.ResponseWriter, r *http.Request) {
	var experience Experience
	if err := json.NewDecoder(r.Body).Decode(&experience); err != nil {
		log.Errorf("new experience, unmarshal json params: %s", err)
		http.Error(w, "add experience failed", http.StatusBadRequest)
		return
	}
	if experience.Company == "" {
		http.Error(w, "error, company empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.AddExperience(r.Context(), &experience); err != nil {
		log.Errorf("add new experience failed: %s", err)
		http.Error(w, "add new experience failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.Text, fmt.Sprintf("added:%d", experience.ID), http.StatusCreated)
}

func (handler *Handler) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var experience Experience
	if err := json.NewDecoder(r.Body).Decode(&experience); err != nil {
		log.Errorf("update experience, unmarshal json params: %s", err)
		http.Error(w, "update experience failed", http.StatusBadRequest)
		return
	}
	experience.ID = id

	if err := handler.repo.UpdateExperience(r.Context(), &experience); err != nil {
		if errors.Is(err, ErrExperienceNotFound) {
			http.Error(w, "experience not found", http.StatusNotFound)
			return
		}
		log.Errorf("update experience failed: %s", err)
		http.Error(w, "update experience failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("updated:%d", id))
}

func (handler *Handler) handleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteExperience(r.Context(), id); err != nil {
		if errors.Is(err, ErrExperienceNotFound) {
			http.Error(w, "experience not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete experience %d: %s", id, err)
		http.Error(w, "delete experience failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}

func (handler *Handler) handleAwards(w http.ResponseWriter, r *http.Request) {
	awards, err := handler.repo.Awards(r.Context())
	if err != nil {
		log.Errorf("get awards error: %s", err)
		http.Error(w, "get awards error", http.StatusInternalServerError)
		return
	}
	if awards == nil {
		awards = []*Award{}
	}
	writeList(w, awards)
}

func (handler *Handler) handleAddAward(w http.ResponseWriter, r *http.Request) {
	var award Award
	if err := json.NewDecoder(r.Body).Decode(&award); err != nil {
		log.Errorf("new award, unmarshal json params: %s", err)
		http.Error(w, "add award failed", http.StatusBadRequest)
		return
	}
	if award.Title == "" {
		http.Error(w, "error, title empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.AddAward(r.Context(), &award); err != nil {
		log.Errorf("add new award failed: %s", err)
		http.Error(w, "add new award failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.Text, fmt.Sprintf("added:%d", award.ID), http.StatusCreated)
}

func (handler *Handler) handleUpdateAward(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var award Award
	if err := json.NewDecoder(r.Body).Decode(&award); err != nil {
		log.Errorf("update award, unmarshal json params: %s", err)
		http.Error(w, "update award failed", http.StatusBadRequest)
		return
	}
	award.ID = id

	if err := handler.repo.UpdateAward(r.Context(), &award); err != nil {
		if errors.Is(err, ErrAwardNotFound) {
			http.Error(w, "award not found", http.StatusNotFound)
			return
		}
		log.Errorf("update award failed: %s", err)
		http.Error(w, "update award failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("updated:%d", id))
}

func (handler *Handler) handleDeleteAward(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteAward(r.Context(), id); err != nil {
		if errors.Is(err, ErrAwardNotFound) {
			http.Error(w, "award not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete award %d: %s", id, err)
		http.Error(w, "delete award failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}
