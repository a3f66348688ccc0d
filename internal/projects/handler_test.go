package projects

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestProject(selected bool) *Project {
	return &Project{
		Title:        gofakeit.AppName(),
		Date:         "2025-05-11",
		Categories:   []string{"web", "design"},
		Description:  gofakeit.Sentence(10),
		Task:         gofakeit.Sentence(5),
		Role:         []string{"frontend", "backend"},
		Client:       gofakeit.Company(),
		CategoryYear: "Web Development / 2025",
		LiveSite:     gofakeit.URL(),
		Thumbnail: Thumbnail{
			SmallScreen: gofakeit.URL(),
			LargeScreen: gofakeit.URL(),
		},
		Gallery:  []string{gofakeit.URL(), gofakeit.URL()},
		Selected: selected,
	}
}

func newTestHandlerAndRouter(t *testing.T) (*Handler, *repoMock, *mux.Router) {
	t.Helper()
	repo := newRepoMock()
	handler := NewHandler(repo)
	router := mux.NewRouter()
	handler.SetupRoutes(router)
	return handler, repo, router
}

func TestHandler_All_Empty(t *testing.T) {
	_, _, router := newTestHandlerAndRouter(t)

	req, err := http.NewRequest("GET", "/api/projects", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}

func TestHandler_AddAndGet(t *testing.T) {
	_, repo, router := newTestHandlerAndRouter(t)

	project := newTestProject(false)
	projectJson, err := json.Marshal(project)
	require.NoError(t, err)

	req, err := http.NewRequest("POST", "/api/projects", bytes.NewReader(projectJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var added Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &added))
	assert.Equal(t, 1, added.ID)
	assert.Equal(t, project.Title, added.Title)

	stored, err := repo.Get(context.Background(), added.ID)
	require.NoError(t, err)
	assert.Equal(t, project.Title, stored.Title)
	assert.Equal(t, project.Thumbnail, stored.Thumbnail)

	req, err = http.NewRequest("GET", fmt.Sprintf("/api/projects/%d", added.ID), nil)
	require.NoError(t, err)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var fetched Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fetched))
	assert.Equal(t, added.ID, fetched.ID)
	assert.Equal(t, project.Client, fetched.Client)
}

func TestHandler_Add_TitleEmpty(t *testing.T) {
	_, _, router := newTestHandlerAndRouter(t)

	req, err := http.NewRequest("POST", "/api/projects", strings.NewReader(`{"title":""}`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_Get_NotFound(t *testing.T) {
	_, _, router := newTestHandlerAndRouter(t)

	req, err := http.NewRequest("GET", "/api/projects/555", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_Get_InvalidID(t *testing.T) {
	_, _, router := newTestHandlerAndRouter(t)

	req, err := http.NewRequest("GET", "/api/projects/not-a-number", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_Selected(t *testing.T) {
	_, repo, router := newTestHandlerAndRouter(t)

	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, newTestProject(false)))
	selectedProject := newTestProject(true)
	require.NoError(t, repo.Add(ctx, selectedProject))
	require.NoError(t, repo.Add(ctx, newTestProject(false)))

	req, err := http.NewRequest("GET", "/api/projects/selected", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var selected []*Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &selected))
	require.Len(t, selected, 1)
	assert.Equal(t, selectedProject.Title, selected[0].Title)
}

func TestHandler_Update(t *testing.T) {
	_, repo, router := newTestHandlerAndRouter(t)

	project := newTestProject(false)
	require.NoError(t, repo.Add(context.Background(), project))

	project.Title = "updated title"
	project.Selected = true
	projectJson, err := json.Marshal(project)
	require.NoError(t, err)

	req, err := http.NewRequest("PUT", fmt.Sprintf("/api/projects/%d", project.ID), bytes.NewReader(projectJson))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, fmt.Sprintf("updated:%d", project.ID), rr.Body.String())

	stored, err := repo.Get(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated title", stored.Title)
	assert.True(t, stored.Selected)
}

func TestHandler_Update_NotFound(t *testing.T) {
	_, _, router := newTestHandlerAndRouter(t)

	req, err := http.NewRequest("PUT", "/api/projects/42", strings.NewReader(`{"title":"ghost"}`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_Delete(t *testing.T) {
	_, repo, router := newTestHandlerAndRouter(t)

	project := newTestProject(false)
	require.NoError(t, repo.Add(context.Background(), project))

	req, err := http.NewRequest("DELETE", fmt.Sprintf("/api/projects/%d", project.ID), nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, fmt.Sprintf("deleted:%d", project.ID), rr.Body.String())

	_, err = repo.Get(context.Background(), project.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestHandler_CacheInvalidatedOnMutation(t *testing.T) {
	_, repo, router := newTestHandlerAndRouter(t)

	req, err := http.NewRequest("GET", "/api/projects", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))

	// mutation through the handler clears the cached empty list
	project := newTestProject(false)
	projectJson, err := json.Marshal(project)
	require.NoError(t, err)
	req, err = http.NewRequest("POST", "/api/projects", bytes.NewReader(projectJson))
	require.NoError(t, err)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	req, err = http.NewRequest("GET", "/api/projects", nil)
	require.NoError(t, err)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var projects []*Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &projects))
	require.Len(t, projects, 1)

	all, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
