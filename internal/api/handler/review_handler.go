package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zrg-scripts/storefront-api/internal/core/ports"
)

// ReviewHandler handles review submissions.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type writeReviewRequest struct {
	ScriptID    string `json:"script_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Description string `json:"description" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Submit handles POST /v1/write-review.
//
// @Summary      Submit a review for a script
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      writeReviewRequest  true  "Review details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/write-review [post]
func (h *ReviewHandler) Submit(c echo.Context) error {
	var req writeReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.Submit(c.Request().Context(), ports.SubmitReviewInput{
		ScriptID:    req.ScriptID,
		Name:        req.Name,
		Rating:      req.Rating,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "review submitted successfully"})
}
