package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rentals/backend/internal/interfaces/http/dto"
)

// SwaggerConfig holds configuration for the API documentation endpoint
type SwaggerConfig struct {
	Enabled bool
	// AllowedIPs restricts access to these IPs or CIDR ranges; empty allows all
	AllowedIPs []string
}

// SwaggerProtection answers 404 while the docs are disabled and 403 to
// clients outside AllowedIPs
func SwaggerProtection(cfg SwaggerConfig) gin.HandlerFunc {
	var nets []*net.IPNet
	for _, entry := range cfg.AllowedIPs {
		if !strings.Contains(entry, "/") {
			if strings.Contains(entry, ":") {
				entry += "/128"
			} else {
				entry += "/32"
			}
		}
		if _, n, err := net.ParseCIDR(entry); err == nil {
			nets = append(nets, n)
		}
	}

	return func(c *gin.Context) {
		if !cfg.Enabled {
			abortWithError(c, dto.ErrCodeNotFound, "API documentation is not available")
			return
		}
		if len(cfg.AllowedIPs) > 0 && !ipAllowed(net.ParseIP(c.ClientIP()), nets) {
			abortWithError(c, dto.ErrCodeForbidden, "Access to API documentation is restricted")
			return
		}
		c.Next()
	}
}

func ipAllowed(ip net.IP, nets []*net.IPNet) bool {
	if ip == nil {
		return false
	}
	for _, n := range nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}
