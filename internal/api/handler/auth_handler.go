package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/showcase-api/internal/api/middleware"
	"github.com/inkwell/showcase-api/internal/core/domain"
	"github.com/inkwell/showcase-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	identity    ports.IdentityService
}

func NewAuthHandler(authService ports.AuthService, identity ports.IdentityService) *AuthHandler {
	return &AuthHandler{authService: authService, identity: identity}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"required,email"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string            `json:"token,omitempty"`
	User  *domain.Principal `json:"user,omitempty"`
}

type sessionResponse struct {
	Session *domain.Session   `json:"session"`
	User    *domain.Principal `json:"user"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.Email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates a user and returns a signed session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Session reports the current request's session. Always 200: the absence of a
// session is a normal answer, not an error.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /v1/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	res := h.identity.ResolveSession(c.Request().Context(), middleware.Credential(c))
	return c.JSON(http.StatusOK, sessionResponse{Session: res.Session, User: res.User})
}
