package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/showcase-api/internal/core/domain"
	"github.com/inkwell/showcase-api/internal/core/ports"
)

const userKey = "user"

// guardResponse is the envelope page guards answer refusals with. Redirect
// tells browser-facing callers where to send the user instead.
type guardResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

// RequireAuthenticated admits only requests whose credential resolves to a
// principal. Refused requests get a 401 with a redirect hint.
func RequireAuthenticated(ids ports.IdentityService, redirectTo string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			res := ids.CheckAuthenticated(c.Request().Context(), Credential(c))
			if !res.Authenticated {
				return c.JSON(http.StatusUnauthorized, guardResponse{
					Error:    "authentication required",
					Redirect: redirectTo,
				})
			}
			c.Set(userKey, res.User)
			return next(c)
		}
	}
}

// RequireRole admits only authenticated principals holding one of the allowed
// roles. Role policy lives here, with the caller, not inside the identity
// resolver.
func RequireRole(ids ports.IdentityService, redirectTo string, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			res := ids.CheckAuthenticated(c.Request().Context(), Credential(c))
			if !res.Authenticated {
				return c.JSON(http.StatusUnauthorized, guardResponse{
					Error:    "authentication required",
					Redirect: redirectTo,
				})
			}
			if _, ok := allowed[res.User.Role]; !ok {
				return c.JSON(http.StatusForbidden, guardResponse{
					Error:    "forbidden",
					Redirect: redirectTo,
				})
			}
			c.Set(userKey, res.User)
			return next(c)
		}
	}
}

// User returns the principal a guard stored for this request, or nil.
func User(c echo.Context) *domain.Principal {
	u, _ := c.Get(userKey).(*domain.Principal)
	return u
}
