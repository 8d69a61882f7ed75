package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/mssola/useragent"
)

type clientIPKey struct{}
type userAgentKey struct{}
type clientDescriptorKey struct{}

// ClientMetadata captures the caller's network origin and client software so
// audit events can attribute actions to a reporting party's environment.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = context.WithValue(ctx, clientIPKey{}, clientIP(r))

		ua := r.Header.Get("User-Agent")
		ctx = context.WithValue(ctx, userAgentKey{}, ua)
		ctx = context.WithValue(ctx, clientDescriptorKey{}, describeClient(ua))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClientIP retrieves the client IP captured by ClientMetadata.
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}

// GetUserAgent retrieves the raw User-Agent header captured by ClientMetadata.
func GetUserAgent(ctx context.Context) string {
	if ua, ok := ctx.Value(userAgentKey{}).(string); ok {
		return ua
	}
	return ""
}

// GetClientDescriptor retrieves the compact client description, e.g.
// "chrome/120 (macos, desktop)". Empty when no User-Agent was sent.
func GetClientDescriptor(ctx context.Context) string {
	if d, ok := ctx.Value(clientDescriptorKey{}).(string); ok {
		return d
	}
	return ""
}

// clientIP prefers proxy-supplied headers over the socket address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// describeClient condenses a User-Agent string into browser/version and
// platform. IP addresses are deliberately excluded from the descriptor.
func describeClient(userAgentString string) string {
	if userAgentString == "" {
		return ""
	}

	ua := useragent.New(userAgentString)
	browser, version := ua.Browser()

	majorVersion := "unknown"
	if version != "" {
		if parts := strings.Split(version, "."); len(parts) > 0 && parts[0] != "" {
			majorVersion = parts[0]
		}
	}

	os := strings.ToLower(strings.TrimSpace(ua.OS()))
	if os == "" {
		os = "unknown"
	}
	platform := "desktop"
	if ua.Mobile() {
		platform = "mobile"
	}
	browser = strings.ToLower(strings.TrimSpace(browser))
	if browser == "" {
		browser = "unknown"
	}

	return fmt.Sprintf("%s/%s (%s, %s)", browser, majorVersion, os, platform)
}
