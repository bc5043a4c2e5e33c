package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"benchboard/api/http/presenter"
	"benchboard/pkg/feedback"
	"benchboard/pkg/match"
)

type FeedbackHandler struct {
	uc feedback.UseCase
}

func NewFeedbackHandler(uc feedback.UseCase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

type feedbackRequest struct {
	FoundKeywords   []string `json:"foundKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
}

// Generate turns a found/missing keyword set into development guidance.
// With both sets empty the response degrades to a generic message.
// @Summary Generate feedback from a match result
// @Tags    feedback
// @Accept  json
// @Produce json
// @Param   input body feedbackRequest true "found/missing keyword sets"
// @Security BearerAuth
// @Success 200 {object} feedback.Result
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /feedback [post]
func (h *FeedbackHandler) Generate(c *fiber.Ctx) error {
	var req feedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	res := h.uc.Personalized(c.Context(),
		match.Keywords(req.FoundKeywords),
		match.Keywords(req.MissingKeywords),
	)
	return presenter.JSON(c, http.StatusOK, res)
}
