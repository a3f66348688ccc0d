package auth

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var (
	testUsername     = "testuser"
	testPassword     = "testpass"
	testPasswordHash = "$2a$14$6Gmhg85si2etd3K9oB8nYu1cxfbrdmhkg6wI6OXsa88IF4L2r/L9i" // testpass
	testAdmin        = Admin{
		Username:     testUsername,
		PasswordHash: testPasswordHash,
	}
	testCredentials = Credentials{
		Username: testUsername,
		Password: testPassword,
	}
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock struct {
	mutex sync.Mutex
	now   time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T, tokenTTL, inactivityLimit time.Duration) (*Service, *fakeClock) {
	t.Helper()

	service, err := NewService(testAdmin, tokenTTL, inactivityLimit)
	require.NoError(t, err)

	clock := &fakeClock{now: time.Now()}
	service.NowFunc = clock.Now

	return service, clock
}

func TestService_Login(t *testing.T) {
	service, _ := newTestService(t, DefaultTokenTTL, DefaultInactivityLimit)

	token, err := service.Login(testCredentials)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// freshly issued token passes the gate
	require.NoError(t, service.Authenticate(token))
}

func TestService_Login_InvalidCredentials(t *testing.T) {
	service, _ := newTestService(t, DefaultTokenTTL, DefaultInactivityLimit)

	token, err := service.Login(Credentials{Username: testUsername, Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)

	token, err = service.Login(Credentials{Username: "who", Password: testPassword})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestService_Login_FailedLoginKeepsSession(t *testing.T) {
	service, _ := newTestService(t, DefaultTokenTTL, DefaultInactivityLimit)

	token, err := service.Login(testCredentials)
	require.NoError(t, err)

	_, err = service.Login(Credentials{Username: testUsername, Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// the session from before the failed attempt is still good
	assert.NoError(t, service.Authenticate(token))
}

func TestService_Authenticate_TokenMissing(t *testing.T) {
	service, _ := newTestService(t, DefaultTokenTTL, DefaultInactivityLimit)
	assert.ErrorIs(t, service.Authenticate(""), ErrTokenMissing)
}

func TestService_Authenticate_NoSession(t *testing.T) {
	service, _ := newTestService(t, DefaultTokenTTL, DefaultInactivityLimit)
	assert.ErrorIs(t, service.Authenticate("some-token"), ErrSessionInvalidated)
}

func TestService_SingleSession(t *testing.T) {
	service, clock := newTestService(t, DefaultTokenTTL, DefaultInactivityLimit)

	token1, err := service.Login(testCredentials)
	require.NoError(t, err)

	// different issue time so the two tokens differ
	clock.Advance(2 * time.Second)

	token2, err := service.Login(testCredentials)
	require.NoError(t, err)
	require.NotEqual(t, token1, token2)

	// token1 is still well-formed and unexpired, but the second login
	// replaced the session
	assert.ErrorIs(t, service.Authenticate(token1), ErrSessionInvalidated)
	assert.NoError(t, service.Authenticate(token2))
}

func TestService_InactivityExpiry(t *testing.T) {
	service, clock := newTestService(t, 2*time.Hour, 30*time.Minute)

	token, err := service.Login(testCredentials)
	require.NoError(t, err)

	clock.Advance(30*time.Minute + time.Second)
	assert.ErrorIs(t, service.Authenticate(token), ErrSessionExpiredInactivity)

	// state is cleared now, so the same (still well-formed) token mismatches
	// the absent session
	assert.ErrorIs(t, service.Authenticate(token), ErrSessionInvalidated)
}

func TestService_ActivityRefresh(t *testing.T) {
	service, clock := newTestService(t, 3*time.Hour, 30*time.Minute)

	token, err := service.Login(testCredentials)
	require.NoError(t, err)

	// repeated requests under the inactivity limit keep the session alive
	// well past the limit itself
	for i := 0; i < 6; i++ {
		clock.Advance(20 * time.Minute)
		require.NoError(t, service.Authenticate(token))
	}
}

func TestService_TokenExpiry(t *testing.T) {
	service, clock := newTestService(t, 30*time.Minute, 2*time.Hour)

	token, err := service.Login(testCredentials)
	require.NoError(t, err)

	// past the token's absolute expiry but under the inactivity limit
	clock.Advance(31 * time.Minute)
	assert.ErrorIs(t, service.Authenticate(token), ErrTokenInvalidOrExpired)

	// expiry cleared the session
	assert.ErrorIs(t, service.Authenticate(token), ErrSessionInvalidated)
}

func TestService_TamperedToken(t *testing.T) {
	service, _ := newTestService(t, DefaultTokenTTL, DefaultInactivityLimit)

	_, err := service.Login(testCredentials)
	require.NoError(t, err)

	// a tampered token mismatches the active one first - identity check
	// takes precedence over the crypto check
	assert.ErrorIs(t, service.Authenticate("tampered-token"), ErrSessionInvalidated)
}

func TestService_ForgedActiveToken(t *testing.T) {
	service, _ := newTestService(t, DefaultTokenTTL, DefaultInactivityLimit)

	// a token signed with a different secret that somehow became the active
	// one must still fail the crypto check and clear the session
	foreignSigner := NewTokenSigner([]byte("other-secret"), DefaultTokenTTL)
	forged, err := foreignSigner.Sign(testUsername)
	require.NoError(t, err)

	service.mutex.Lock()
	service.activeToken = forged
	service.lastActivityAt = service.NowFunc()
	service.mutex.Unlock()

	assert.ErrorIs(t, service.Authenticate(forged), ErrTokenInvalidOrExpired)
	assert.ErrorIs(t, service.Authenticate(forged), ErrSessionInvalidated)
}

func TestService_LogoutIdempotent(t *testing.T) {
	service, _ := newTestService(t, DefaultTokenTTL, DefaultInactivityLimit)

	token, err := service.Login(testCredentials)
	require.NoError(t, err)

	service.Logout(token)
	assert.ErrorIs(t, service.Authenticate(token), ErrSessionInvalidated)

	// second logout with the same token is a no-op, not an error
	service.Logout(token)
	assert.ErrorIs(t, service.Authenticate(token), ErrSessionInvalidated)
}

func TestService_LogoutStaleToken(t *testing.T) {
	service, clock := newTestService(t, DefaultTokenTTL, DefaultInactivityLimit)

	token1, err := service.Login(testCredentials)
	require.NoError(t, err)
	clock.Advance(2 * time.Second)
	token2, err := service.Login(testCredentials)
	require.NoError(t, err)

	// logging out with the replaced token must not kill the live session
	service.Logout(token1)
	assert.NoError(t, service.Authenticate(token2))
}

// the full lifecycle: login, use, re-login, use, logout
func TestService_SessionLifecycle(t *testing.T) {
	service, clock := newTestService(t, DefaultTokenTTL, DefaultInactivityLimit)

	tokenA, err := service.Login(testCredentials)
	require.NoError(t, err)
	require.NoError(t, service.Authenticate(tokenA))

	clock.Advance(2 * time.Second)
	tokenB, err := service.Login(testCredentials)
	require.NoError(t, err)
	require.NotEqual(t, tokenA, tokenB)

	assert.ErrorIs(t, service.Authenticate(tokenA), ErrSessionInvalidated)
	assert.NoError(t, service.Authenticate(tokenB))

	service.Logout(tokenB)
	assert.ErrorIs(t, service.Authenticate(tokenB), ErrSessionInvalidated)
}

func TestService_ConcurrentAccess(t *testing.T) {
	service, _ := newTestService(t, DefaultTokenTTL, DefaultInactivityLimit)

	token, err := service.Login(testCredentials)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// either outcome is fine, the gate just must not race
			_ = service.Authenticate(token)
		}()
	}
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			service.Logout(token)
		}()
	}
	wg.Wait()
}
