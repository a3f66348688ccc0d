package pkg

import (
	"errors"
	"net"
	"net/http"
)

// ReadUserIP tries the reverse-proxy headers first, then the remote address
func ReadUserIP(r *http.Request) (string, error) {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		ipAddr = r.Header.Get("X-Forwarded-For")
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}
	if ipAddr == "" {
		return "", errors.New("ip address not found")
	}

	// remote addr comes with the port attached
	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		return host, nil
	}

	return ipAddr, nil
}
