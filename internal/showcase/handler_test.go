package showcase

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestRouter(t *testing.T) (*repoMock, *mux.Router) {
	t.Helper()
	repo := newRepoMock()
	handler := NewHandler(repo)
	router := mux.NewRouter()
	handler.SetupRoutes(router)
	return repo, router
}

func doRequest(t *testing.T, router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var bodyReader *strings.Reader
	if body == "" {
		bodyReader = strings.NewReader("")
	} else {
		bodyReader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, bodyReader)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestClients_CRUD(t *testing.T) {
	repo, router := newTestRouter(t)

	rr := doRequest(t, router, "GET", "/api/clients", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))

	rr = doRequest(t, router, "POST", "/api/clients",
		`{"name":"Globex","logoUrl":"https://img.example.com/globex.png","website":"https://globex.example.com"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "added:1", rr.Body.String())

	rr = doRequest(t, router, "POST", "/api/clients", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, router, "GET", "/api/clients", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var clients []*Client
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &clients))
	require.Len(t, clients, 1)
	assert.Equal(t, "Globex", clients[0].Name)

	rr = doRequest(t, router, "PUT", "/api/clients/1", `{"name":"Globex Corp"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Globex Corp", repo.clients[1].Name)

	rr = doRequest(t, router, "PUT", "/api/clients/99", `{"name":"ghost"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(t, router, "DELETE", "/api/clients/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, repo.clients)
}

func TestTestimonials_CRUD(t *testing.T) {
	repo, router := newTestRouter(t)

	rr := doRequest(t, router, "POST", "/api/testimonials",
		`{"author":"Jane Doe","role":"CTO, Globex","quote":"Great work, on time.","avatarUrl":"https://img.example.com/jd.png"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doRequest(t, router, "POST", "/api/testimonials", `{"author":"John","quote":""}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, router, "GET", "/api/testimonials", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var testimonials []*Testimonial
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &testimonials))
	require.Len(t, testimonials, 1)
	assert.Equal(t, "Jane Doe", testimonials[0].Author)

	rr = doRequest(t, router, "PUT", "/api/testimonials/1",
		`{"author":"Jane Doe","role":"CEO, Globex","quote":"Great work, on time."}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "CEO, Globex", repo.testimonials[1].Role)

	rr = doRequest(t, router, "DELETE", "/api/testimonials/1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, router, "DELETE", "/api/testimonials/1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAffiliates_CRUD(t *testing.T) {
	repo, router := newTestRouter(t)

	rr := doRequest(t, router, "POST", "/api/affiliates",
		`{"name":"HostingCo","url":"https://hosting.example.com","bannerUrl":"https://img.example.com/banner.png"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doRequest(t, router, "POST", "/api/affiliates", `{"name":"NoURL"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, router, "GET", "/api/affiliates", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var affiliates []*Affiliate
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &affiliates))
	require.Len(t, affiliates, 1)
	assert.Equal(t, "HostingCo", affiliates[0].Name)

	rr = doRequest(t, router, "PUT", "/api/affiliates/1",
		`{"name":"HostingCo","url":"https://better-hosting.example.com"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://better-hosting.example.com", repo.affiliates[1].URL)

	rr = doRequest(t, router, "DELETE", "/api/affiliates/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, repo.affiliates)
}
