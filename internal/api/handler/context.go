package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/showcase-api/internal/api/middleware"
	"github.com/inkwell/showcase-api/internal/core/domain"
)

// ctxUser extracts the principal a page guard stored and fast-fails when the
// guard did not run: a nil principal here is a wiring bug, not a user error,
// but the safe answer is still 401.
func ctxUser(c echo.Context) (*domain.Principal, error) {
	user := middleware.User(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
