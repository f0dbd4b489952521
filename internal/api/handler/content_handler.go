package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/showcase-api/internal/core/domain"
	"github.com/inkwell/showcase-api/internal/core/ports"
)

const maxContentPerPage = 100

// ContentHandler serves the public published-content listing.
type ContentHandler struct {
	source ports.ContentSource
}

func NewContentHandler(source ports.ContentSource) *ContentHandler {
	return &ContentHandler{source: source}
}

type contentListResponse struct {
	Items []domain.ContentItem `json:"items"`
	Page  int                  `json:"page"`
}

// List handles GET /v1/content — published items, paged.
//
// @Summary      List published content
// @Tags         content
// @Produce      json
// @Param        page      query     int     false  "1-based page"
// @Param        per_page  query     int     false  "items per page (max 100)"
// @Param        type      query     string  false  "content type filter"
// @Success      200       {object}  contentListResponse
// @Router       /v1/content [get]
func (h *ContentHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	if perPage < 1 || perPage > maxContentPerPage {
		perPage = 20
	}

	items, err := h.source.ListItems(c.Request().Context(), ports.ListItemsQuery{
		Page:    page,
		PerPage: perPage,
		Type:    c.QueryParam("type"),
		Status:  domain.ContentPublished,
	})
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.ContentItem{}
	}

	return c.JSON(http.StatusOK, contentListResponse{Items: items, Page: page})
}
