package middleware

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rentals/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
)

func swaggerRequest(cfg SwaggerConfig, remoteAddr string) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/swagger/*any", SwaggerProtection(cfg), func(c *gin.Context) {
		c.String(http.StatusOK, "docs")
	})

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSwaggerProtection(t *testing.T) {
	tests := []struct {
		name       string
		cfg        SwaggerConfig
		remoteAddr string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "disabled answers not found",
			cfg:        SwaggerConfig{Enabled: false},
			remoteAddr: "127.0.0.1:1234",
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrCodeNotFound,
		},
		{
			name:       "enabled without restrictions",
			cfg:        SwaggerConfig{Enabled: true},
			remoteAddr: "203.0.113.9:1234",
			wantStatus: http.StatusOK,
		},
		{
			name:       "bare IP allowed",
			cfg:        SwaggerConfig{Enabled: true, AllowedIPs: []string{"127.0.0.1"}},
			remoteAddr: "127.0.0.1:1234",
			wantStatus: http.StatusOK,
		},
		{
			name:       "IP outside the list is forbidden",
			cfg:        SwaggerConfig{Enabled: true, AllowedIPs: []string{"127.0.0.1"}},
			remoteAddr: "203.0.113.9:1234",
			wantStatus: http.StatusForbidden,
			wantCode:   dto.ErrCodeForbidden,
		},
		{
			name:       "CIDR range allowed",
			cfg:        SwaggerConfig{Enabled: true, AllowedIPs: []string{"10.0.0.0/8"}},
			remoteAddr: "10.20.30.40:1234",
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid entries are ignored",
			cfg:        SwaggerConfig{Enabled: true, AllowedIPs: []string{"not-an-ip"}},
			remoteAddr: "127.0.0.1:1234",
			wantStatus: http.StatusForbidden,
			wantCode:   dto.ErrCodeForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := swaggerRequest(tt.cfg, tt.remoteAddr)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Code)
			} else {
				assert.Equal(t, "docs", w.Body.String())
			}
		})
	}
}

func TestIPAllowed(t *testing.T) {
	_, v4, _ := net.ParseCIDR("192.168.1.0/24")
	_, v6, _ := net.ParseCIDR("::1/128")
	nets := []*net.IPNet{v4, v6}

	assert.True(t, ipAllowed(net.ParseIP("192.168.1.77"), nets))
	assert.True(t, ipAllowed(net.ParseIP("::1"), nets))
	assert.False(t, ipAllowed(net.ParseIP("192.168.2.1"), nets))
	assert.False(t, ipAllowed(nil, nets))
}
