package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifier(t *testing.T) {
	verifier := NewVerifier(testAdmin)

	assert.True(t, verifier.Verify(testCredentials))
	assert.False(t, verifier.Verify(Credentials{Username: testUsername, Password: "wrong"}))
	assert.False(t, verifier.Verify(Credentials{Username: "wrong", Password: testPassword}))
	assert.False(t, verifier.Verify(Credentials{}))
}
