package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
	"github.com/zrg-scripts/storefront-api/internal/core/ports"
)

// BlogHandler handles the blog read endpoints.
type BlogHandler struct {
	service ports.BlogService
}

func NewBlogHandler(service ports.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// blogPostListItem omits the full content body; list views only need the
// summary fields.
type blogPostListItem struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Author        string    `json:"author"`
	PublishedDate time.Time `json:"published_date"`
	Category      string    `json:"category"`
	Slug          string    `json:"slug"`
}

type blogPostDetail struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Content       string    `json:"content"`
	Author        string    `json:"author"`
	PublishedDate time.Time `json:"published_date"`
	ModifiedDate  time.Time `json:"modified_date"`
	Category      string    `json:"category"`
	Slug          string    `json:"slug"`
}

func toBlogPostListItem(p domain.BlogPost) blogPostListItem {
	return blogPostListItem{
		Title:         p.Title,
		Description:   p.Description,
		Author:        p.Author,
		PublishedDate: p.PublishedDate,
		Category:      p.Category,
		Slug:          p.Slug,
	}
}

// List handles GET /v1/posts.
//
// @Summary      List all blog posts
// @Tags         blog
// @Produce      json
// @Success      200  {array}   blogPostListItem
// @Router       /v1/posts [get]
func (h *BlogHandler) List(c echo.Context) error {
	posts, err := h.service.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]blogPostListItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, toBlogPostListItem(p))
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /v1/posts/:slug.
//
// @Summary      Get a blog post by slug
// @Tags         blog
// @Produce      json
// @Param        slug  path      string  true  "Post slug"
// @Success      200   {object}  blogPostDetail
// @Failure      404   {object}  map[string]string
// @Router       /v1/posts/{slug} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	post, err := h.service.GetPost(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, blogPostDetail{
		Title:         post.Title,
		Description:   post.Description,
		Content:       post.Content,
		Author:        post.Author,
		PublishedDate: post.PublishedDate,
		ModifiedDate:  post.ModifiedDate,
		Category:      post.Category,
		Slug:          post.Slug,
	})
}
