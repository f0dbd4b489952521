package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/showcase-api/internal/core/domain"
	"github.com/inkwell/showcase-api/internal/core/ports"
)

// GiveawayHandler serves the giveaway feature. Creation sits behind the
// elevated-role guard; entering only needs authentication.
type GiveawayHandler struct {
	service ports.GiveawayService
}

func NewGiveawayHandler(service ports.GiveawayService) *GiveawayHandler {
	return &GiveawayHandler{service: service}
}

type createGiveawayRequest struct {
	Title       string    `json:"title" validate:"required"`
	Prize       string    `json:"prize" validate:"required"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at" validate:"required"`
}

type giveawayListResponse struct {
	Giveaways []*domain.Giveaway `json:"giveaways"`
}

type enteredResponse struct {
	Message string `json:"message"`
}

// Create handles POST /v1/giveaways.
//
// @Summary      Create a giveaway
// @Tags         giveaways
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createGiveawayRequest  true  "Giveaway details"
// @Success      201   {object}  domain.Giveaway
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/giveaways [post]
func (h *GiveawayHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createGiveawayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	g, err := h.service.Create(c.Request().Context(), ports.CreateGiveawayInput{
		Title:       req.Title,
		Prize:       req.Prize,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		CreatedBy:   user.ID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, g)
}

// ListActive handles GET /v1/giveaways — giveaways currently open for entries.
//
// @Summary      List active giveaways
// @Tags         giveaways
// @Produce      json
// @Success      200  {object}  giveawayListResponse
// @Router       /v1/giveaways [get]
func (h *GiveawayHandler) ListActive(c echo.Context) error {
	giveaways, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	if giveaways == nil {
		giveaways = []*domain.Giveaway{}
	}
	return c.JSON(http.StatusOK, giveawayListResponse{Giveaways: giveaways})
}

// Enter handles POST /v1/giveaways/:id/entries.
//
// @Summary      Enter a giveaway
// @Tags         giveaways
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Giveaway id"
// @Success      201  {object}  enteredResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/giveaways/{id}/entries [post]
func (h *GiveawayHandler) Enter(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Enter(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, enteredResponse{Message: "entry recorded"})
}
