package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
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

var _ profileRepo = (*repoMock)(nil)

type repoMock struct {
	mutex   sync.Mutex
	profile *Profile
}

func (r *repoMock) Get(_ context.Context) (*Profile, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.profile == nil {
		return nil, ErrProfileNotSet
	}
	return r.profile, nil
}

func (r *repoMock) Set(_ context.Context, profile *Profile) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.profile = profile
	return nil
}

func newTestRouter(t *testing.T) (*repoMock, *mux.Router) {
	t.Helper()
	repo := &repoMock{}
	handler := NewHandler(repo)
	router := mux.NewRouter()
	handler.SetupRoutes(router)
	return repo, router
}

func TestHandler_Get_NotSet(t *testing.T) {
	_, router := newTestRouter(t)

	req, err := http.NewRequest("GET", "/api/profile", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_SetAndGet(t *testing.T) {
	repo, router := newTestRouter(t)

	profile := Profile{
		Name:         gofakeit.Name(),
		Headline:     "Software Engineer",
		Bio:          gofakeit.Sentence(15),
		AvatarURL:    gofakeit.URL(),
		ContactEmail: gofakeit.Email(),
		Location:     "Belgrade, Serbia",
		CvURL:        gofakeit.URL(),
		Social: SocialLinks{
			GitHub:   "https://github.com/velimirb",
			LinkedIn: gofakeit.URL(),
		},
	}
	profileJson, err := json.Marshal(profile)
	require.NoError(t, err)

	req, err := http.NewRequest("PUT", "/api/profile", bytes.NewReader(profileJson))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "updated", rr.Body.String())

	require.NotNil(t, repo.profile)
	assert.Equal(t, profile.Name, repo.profile.Name)

	req, err = http.NewRequest("GET", "/api/profile", nil)
	require.NoError(t, err)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var fetched Profile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fetched))
	assert.Equal(t, profile.Name, fetched.Name)
	assert.Equal(t, profile.Social.GitHub, fetched.Social.GitHub)
}

func TestHandler_Set_NameEmpty(t *testing.T) {
	_, router := newTestRouter(t)

	req, err := http.NewRequest("PUT", "/api/profile", strings.NewReader(`{"name":""}`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
