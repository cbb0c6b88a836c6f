package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
	"github.com/zrg-scripts/storefront-api/internal/core/ports"
)

// ContentHandler serves the landing-page content endpoints.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

type statsResponse struct {
	ActiveUsers    int `json:"active_users"`
	PremiumScripts int `json:"premium_scripts"`
}

type featuredServerItem struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
	URL   string `json:"url"`
}

type testimonialItem struct {
	Pfp     string    `json:"pfp,omitempty"`
	Name    string    `json:"name"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}

type faqItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type teamMemberItem struct {
	Name             string `json:"name"`
	Role             string `json:"role"`
	ShortDescription string `json:"short_description"`
}

func toTeamMemberItem(m domain.TeamMember) teamMemberItem {
	return teamMemberItem{
		Name:             m.Name,
		Role:             m.Role,
		ShortDescription: m.ShortDescription,
	}
}

// Stats handles GET /v1/stats.
//
// @Summary      Get landing-page counters
// @Tags         content
// @Produce      json
// @Success      200  {object}  statsResponse
// @Router       /v1/stats [get]
func (h *ContentHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statsResponse{
		ActiveUsers:    stats.ActiveUsers,
		PremiumScripts: stats.PremiumScripts,
	})
}

// FeaturedServers handles GET /v1/featured-servers.
//
// @Summary      List featured community servers
// @Tags         content
// @Produce      json
// @Success      200  {array}  featuredServerItem
// @Router       /v1/featured-servers [get]
func (h *ContentHandler) FeaturedServers(c echo.Context) error {
	servers, err := h.service.FeaturedServers(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]featuredServerItem, 0, len(servers))
	for _, s := range servers {
		items = append(items, featuredServerItem{Name: s.Name, Image: s.Image, URL: s.URL})
	}
	return c.JSON(http.StatusOK, items)
}

// Testimonials handles GET /v1/testimonials.
//
// @Summary      List testimonials
// @Tags         content
// @Produce      json
// @Success      200  {array}  testimonialItem
// @Router       /v1/testimonials [get]
func (h *ContentHandler) Testimonials(c echo.Context) error {
	testimonials, err := h.service.Testimonials(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]testimonialItem, 0, len(testimonials))
	for _, t := range testimonials {
		items = append(items, testimonialItem{Pfp: t.PfpURL, Name: t.Name, Comment: t.Comment, Date: t.Date})
	}
	return c.JSON(http.StatusOK, items)
}

// FAQs handles GET /v1/faqs.
//
// @Summary      List FAQs
// @Tags         content
// @Produce      json
// @Success      200  {array}  faqItem
// @Router       /v1/faqs [get]
func (h *ContentHandler) FAQs(c echo.Context) error {
	faqs, err := h.service.FAQs(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]faqItem, 0, len(faqs))
	for _, f := range faqs {
		items = append(items, faqItem{Question: f.Question, Answer: f.Answer})
	}
	return c.JSON(http.StatusOK, items)
}

// TeamMembers handles GET /v1/team-members.
//
// @Summary      List team members
// @Tags         content
// @Produce      json
// @Success      200  {array}  teamMemberItem
// @Router       /v1/team-members [get]
func (h *ContentHandler) TeamMembers(c echo.Context) error {
	members, err := h.service.TeamMembers(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]teamMemberItem, 0, len(members))
	for _, m := range members {
		items = append(items, toTeamMemberItem(m))
	}
	return c.JSON(http.StatusOK, items)
}
