package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	credentialKey = "credential"

	// SessionCookieName is the cookie the server-rendered frontend stores the
	// token under; the Authorization header takes precedence when both exist.
	SessionCookieName = "session_token"
)

// ExtractCredential pulls the raw request credential (bearer token or session
// cookie) into the request context. It never rejects: absence of a credential
// is a normal state the page guards and handlers decide on.
func ExtractCredential() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cred := credentialFromRequest(c); cred != "" {
				c.Set(credentialKey, cred)
			}
			return next(c)
		}
	}
}

// Credential returns the raw credential extracted for this request, or "".
func Credential(c echo.Context) string {
	cred, _ := c.Get(credentialKey).(string)
	return cred
}

func credentialFromRequest(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}

	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
