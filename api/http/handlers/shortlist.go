package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"benchboard/api/http/presenter"
	"benchboard/pkg/shortlist"
)

type ShortlistHandler struct {
	uc shortlist.UseCase
}

func NewShortlistHandler(uc shortlist.UseCase) *ShortlistHandler {
	return &ShortlistHandler{uc: uc}
}

type shortlistRequest struct {
	// Query is a free-text capability description ("React frontend
	// developer") or a comma-separated keyword list.
	Query string `json:"query"`
	// Keywords, when present, wins over Query.
	Keywords []string `json:"keywords"`
	// Threshold overrides the configured matching threshold (percent).
	Threshold *int `json:"threshold"`
}

// Shortlist partitions the consultant population for one skill query.
// @Summary Shortlist consultants for a skill query
// @Description Matches every consultant's latest resume against the query and returns matching/not-matching buckets ordered by score.
// @Tags    shortlist
// @Accept  json
// @Produce json
// @Param   input body shortlistRequest true "query or keyword list"
// @Security BearerAuth
// @Success 200 {object} shortlist.Result
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /shortlist [post]
func (h *ShortlistHandler) Shortlist(c *fiber.Ctx) error {
	var req shortlistRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	res, err := h.uc.Shortlist(c.Context(), req.Query, req.Keywords, req.Threshold)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to shortlist consultants")
	}
	return presenter.JSON(c, http.StatusOK, res)
}
