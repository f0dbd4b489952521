package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/showcase-api/internal/api/middleware"
	"github.com/inkwell/showcase-api/internal/core/domain"
	"github.com/inkwell/showcase-api/internal/core/ports"
)

// FavoritesHandler serves per-user favorites. Every route is keyed by the
// target user id in the path; the authorization check compares the resolved
// principal against that id, so one user can never touch another's list.
type FavoritesHandler struct {
	service    ports.FavoritesService
	identity   ports.IdentityService
	redirectTo string
}

func NewFavoritesHandler(service ports.FavoritesService, identity ports.IdentityService, redirectTo string) *FavoritesHandler {
	return &FavoritesHandler{service: service, identity: identity, redirectTo: redirectTo}
}

type favoritesResponse struct {
	Favorites []*domain.Favorite `json:"favorites"`
}

type addFavoriteRequest struct {
	ContentID string `json:"content_id" validate:"required"`
}

type guardRefusal struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

// authorize resolves the request identity against the path's user id. The
// refusal shape distinguishes "no session" (401, redirect to login) from
// "wrong user" (403).
func (h *FavoritesHandler) authorize(c echo.Context) (*domain.Principal, error) {
	res := h.identity.CheckAuthorized(c.Request().Context(), middleware.Credential(c), c.Param("id"))
	if res.User == nil {
		return nil, c.JSON(http.StatusUnauthorized, guardRefusal{
			Error:    "authentication required",
			Redirect: h.redirectTo,
		})
	}
	if !res.Authorized {
		return nil, c.JSON(http.StatusForbidden, guardRefusal{Error: "forbidden"})
	}
	return res.User, nil
}

// List handles GET /v1/users/:id/favorites.
//
// @Summary      List a user's favorites
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  favoritesResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/users/{id}/favorites [get]
func (h *FavoritesHandler) List(c echo.Context) error {
	user, err := h.authorize(c)
	if user == nil {
		return err
	}

	favs, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	if favs == nil {
		favs = []*domain.Favorite{}
	}
	return c.JSON(http.StatusOK, favoritesResponse{Favorites: favs})
}

// Add handles POST /v1/users/:id/favorites.
//
// @Summary      Favorite a content item
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "User id"
// @Param        body  body      addFavoriteRequest  true  "Content to favorite"
// @Success      201
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users/{id}/favorites [post]
func (h *FavoritesHandler) Add(c echo.Context) error {
	user, err := h.authorize(c)
	if user == nil {
		return err
	}

	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.Add(c.Request().Context(), user.ID, req.ContentID); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// Remove handles DELETE /v1/users/:id/favorites/:content_id.
//
// @Summary      Unfavorite a content item
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        id          path  string  true  "User id"
// @Param        content_id  path  string  true  "Content id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id}/favorites/{content_id} [delete]
func (h *FavoritesHandler) Remove(c echo.Context) error {
	user, err := h.authorize(c)
	if user == nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), user.ID, c.Param("content_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
