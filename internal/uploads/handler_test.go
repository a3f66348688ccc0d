package uploads

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestHandler_ImageKitAuth(t *testing.T) {
	privateKey := "private_test_key"
	handler := NewHandler(privateKey)

	now := time.Date(2025, 5, 11, 12, 0, 0, 0, time.UTC)
	handler.NowFunc = func() time.Time { return now }
	handler.RandTokenFunc = func() (string, error) { return "fixed-test-token", nil }

	router := mux.NewRouter()
	handler.SetupRoutes(router)

	req, err := http.NewRequest("GET", "/api/uploads/imagekit-auth", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, "fixed-test-token", resp.Token)
	assert.Equal(t, now.Add(signatureTTL).Unix(), resp.Expire)

	expectedMac := hmac.New(sha1.New, []byte(privateKey))
	expectedMac.Write([]byte(fmt.Sprintf("%s%d", resp.Token, resp.Expire)))
	assert.Equal(t, hex.EncodeToString(expectedMac.Sum(nil)), resp.Signature)
}

func TestHandler_ImageKitAuth_UniqueTokens(t *testing.T) {
	handler := NewHandler("private_test_key")
	router := mux.NewRouter()
	handler.SetupRoutes(router)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		req, err := http.NewRequest("GET", "/api/uploads/imagekit-auth", nil)
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp authResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.False(t, seen[resp.Token], "token reused")
		seen[resp.Token] = true
		assert.NotEmpty(t, resp.Signature)
	}
}
