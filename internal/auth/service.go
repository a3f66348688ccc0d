package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/velimirb/portfolio-backend/pkg"
)

const (
	DefaultTokenTTL        = 30 * time.Minute
	DefaultInactivityLimit = 30 * time.Minute

	signingSecretSize = 64
)

var (
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrTokenMissing             = errors.New("token missing")
	ErrSessionInvalidated       = errors.New("session expired or invalidated")
	ErrSessionExpiredInactivity = errors.New("session expired due to inactivity")
	ErrTokenInvalidOrExpired    = errors.New("token expired or invalid")
)

// Service is the session gate: it owns the single active admin session and
// arbitrates every protected request. At most one token is valid at any
// instant - a new login replaces the previous session, whatever its state.
//
// activeToken and lastActivityAt are always set and cleared together, under
// one mutex hold, so concurrent requests never observe a half-updated
// session.
type Service struct {
	verifier        *Verifier
	signer          *TokenSigner
	inactivityLimit time.Duration

	mutex          sync.Mutex
	activeToken    string
	lastActivityAt time.Time

	// ability to inject the clock (for unit testing of expiry paths)
	NowFunc func() time.Time
}

func NewService(admin Admin, tokenTTL, inactivityLimit time.Duration) (*Service, error) {
	secret, err := pkg.GenerateRandomBytes(signingSecretSize)
	if err != nil {
		return nil, fmt.Errorf("generate signing secret: %w", err)
	}

	s := &Service{
		verifier:        NewVerifier(admin),
		inactivityLimit: inactivityLimit,
		NowFunc:         time.Now,
	}
	s.signer = NewTokenSigner(secret, tokenTTL)
	s.signer.now = func() time.Time {
		return s.NowFunc()
	}

	return s, nil
}

// Login verifies the credentials and, on success, mints a new token and
// makes it the only valid session - any previous session is discarded.
// A failed login leaves the current session untouched.
func (s *Service) Login(credentials Credentials) (string, error) {
	if !s.verifier.Verify(credentials) {
		log.Tracef("failed login attempt for user: %s", credentials.Username)
		return "", ErrInvalidCredentials
	}

	token, err := s.signer.Sign(credentials.Username)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.activeToken = token
	s.lastActivityAt = s.NowFunc()

	return token, nil
}

// Authenticate gates a protected request. The check order is a contract:
// presence, then identity, then inactivity, then cryptographic validity -
// it decides which error the caller sees under overlapping failures.
// Presence/identity rejections leave the session state untouched;
// inactivity/crypto rejections clear it, forcing a fresh login.
func (s *Service) Authenticate(presentedToken string) error {
	if presentedToken == "" {
		return ErrTokenMissing
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	// single-session check: a second login anywhere invalidates this token,
	// even though the token itself may still be well-formed and unexpired
	if presentedToken != s.activeToken {
		return ErrSessionInvalidated
	}

	now := s.NowFunc()
	if !s.lastActivityAt.IsZero() && now.Sub(s.lastActivityAt) > s.inactivityLimit {
		s.clearSessionLocked()
		return ErrSessionExpiredInactivity
	}

	if err := s.signer.Verify(presentedToken); err != nil {
		log.Tracef("token verification failed: %s", err)
		s.clearSessionLocked()
		return ErrTokenInvalidOrExpired
	}

	s.lastActivityAt = now
	return nil
}

// Logout clears the session only when the presented token is the active one.
// A stale token from an already-replaced session is a no-op. Never errors,
// calling it twice is fine.
func (s *Service) Logout(presentedToken string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if presentedToken != "" && presentedToken == s.activeToken {
		s.clearSessionLocked()
	}
}

func (s *Service) clearSessionLocked() {
	s.activeToken = ""
	s.lastActivityAt = time.Time{}
}
