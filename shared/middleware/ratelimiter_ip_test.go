package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_errors "github.com/kebab-dev/kebab/shared/errors"
)

func TestGetIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		want       string
	}{
		{name: "ipv4 with port", remoteAddr: "192.168.1.100:54321", want: "192.168.1.100"},
		{name: "ipv6 with port", remoteAddr: "[2001:db8::1]:8080", want: "2001:db8::1"},
		{name: "localhost", remoteAddr: "127.0.0.1:12345", want: "127.0.0.1"},
		{name: "no port", remoteAddr: "192.168.1.1", want: "192.168.1.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/boards", nil)
			req.RemoteAddr = tt.remoteAddr

			ip, err := GetIP(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ip)
		})
	}
}

func TestGetIPIgnoresForwardingHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/api/boards/x", nil)
	req.RemoteAddr = "203.0.113.50:12345"
	req.Header.Set("X-Real-IP", "10.0.0.1")
	req.Header.Set("X-Forwarded-For", "10.0.0.2, 10.0.0.3")

	ip, err := GetIP(req)
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.50", ip)
}

func TestGetIPSharesBucketAcrossPorts(t *testing.T) {
	for _, remoteAddr := range []string{"192.168.1.100:54321", "192.168.1.100:11111", "192.168.1.100:22222"} {
		req := httptest.NewRequest(http.MethodPost, "/api/boards", nil)
		req.RemoteAddr = remoteAddr

		ip, err := GetIP(req)
		require.NoError(t, err)
		assert.Equal(t, "192.168.1.100", ip, remoteAddr)
	}
}

func TestGetIPInvalidIsBadRequest(t *testing.T) {
	for _, remoteAddr := range []string{"not-an-ip:1234", "@", ""} {
		req := httptest.NewRequest(http.MethodPost, "/api/boards", nil)
		req.RemoteAddr = remoteAddr

		_, err := GetIP(req)
		var serr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &serr, remoteAddr)
		assert.Equal(t, http.StatusBadRequest, serr.StatusCode)
	}
}
