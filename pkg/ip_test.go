package pkg

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadUserIP(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/projects", nil)
	require.NoError(t, err)

	req.RemoteAddr = "10.0.0.8:51334"
	ip, err := ReadUserIP(req)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.8", ip)

	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	ip, err = ReadUserIP(req)
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.7", ip)

	req.Header.Set("X-Real-Ip", "198.51.100.23")
	ip, err = ReadUserIP(req)
	require.NoError(t, err)
	assert.Equal(t, "198.51.100.23", ip)
}
