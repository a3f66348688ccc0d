package uploads

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/velimirb/portfolio-backend/pkg"
)

// signatureTTL must stay under an hour, ImageKit rejects longer expiry windows.
const signatureTTL = 30 * time.Minute

type authResponse struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}

// Handler signs short-lived upload tokens so the browser can upload
// images straight to ImageKit without the private key ever leaving the server.
type Handler struct {
	privateKey string

	// overridable in tests
	NowFunc       func() time.Time
	RandTokenFunc func() (string, error)
}

func NewHandler(privateKey string) *Handler {
	return &Handler{
		privateKey: privateKey,
		NowFunc:    time.Now,
		RandTokenFunc: func() (string, error) {
			return pkg.GenerateRandomString(32)
		},
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/uploads/imagekit-auth", handler.handleImageKitAuth).Methods("GET").Name("imagekit-auth")
}

func (handler *Handler) handleImageKitAuth(w http.ResponseWriter, r *http.Request) {
	token, err := handler.RandTokenFunc()
	if err != nil {
		log.Errorf("imagekit auth, generate token: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	expire := handler.NowFunc().Add(signatureTTL).Unix()

	mac := hmac.New(sha1.New, []byte(handler.privateKey))
	mac.Write([]byte(fmt.Sprintf("%s%d", token, expire)))
	signature := hex.EncodeToString(mac.Sum(nil))

	resp := authResponse{
		Token:     token,
		Expire:    expire,
		Signature: signature,
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("imagekit auth, marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
