package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zrg-scripts/storefront-api/internal/core/ports"
)

// CatalogHandler handles HTTP requests for the script catalog.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// List handles GET /v1/scripts.
//
// @Summary      List all scripts
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   scriptListItem
// @Failure      500  {object}  map[string]string
// @Router       /v1/scripts [get]
func (h *CatalogHandler) List(c echo.Context) error {
	scripts, err := h.service.ListScripts(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]scriptListItem, 0, len(scripts))
	for _, s := range scripts {
		items = append(items, toScriptListItem(s))
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /v1/scripts/:slug.
//
// @Summary      Get a script by slug
// @Tags         catalog
// @Produce      json
// @Param        slug  path      string  true  "Script slug"
// @Success      200   {object}  scriptDetail
// @Failure      404   {object}  map[string]string
// @Router       /v1/scripts/{slug} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	detail, err := h.service.GetScript(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toScriptDetail(detail))
}

// Search handles GET /v1/search?q=.
//
// @Summary      Search scripts, blog posts, and team members
// @Tags         catalog
// @Produce      json
// @Param        q  query     string  false  "Search query"
// @Success      200  {object}  searchResponse
// @Router       /v1/search [get]
func (h *CatalogHandler) Search(c echo.Context) error {
	result, err := h.service.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}

	resp := searchResponse{
		BlogPosts:   make([]blogPostListItem, 0, len(result.BlogPosts)),
		Scripts:     make([]searchScriptItem, 0, len(result.Scripts)),
		TeamMembers: make([]teamMemberItem, 0, len(result.TeamMembers)),
	}
	for _, p := range result.BlogPosts {
		resp.BlogPosts = append(resp.BlogPosts, toBlogPostListItem(p))
	}
	for _, s := range result.Scripts {
		resp.Scripts = append(resp.Scripts, toSearchScriptItem(s))
	}
	for _, m := range result.TeamMembers {
		resp.TeamMembers = append(resp.TeamMembers, toTeamMemberItem(m))
	}
	return c.JSON(http.StatusOK, resp)
}
