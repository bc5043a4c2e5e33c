package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"benchboard/api/http/presenter"
	"benchboard/pkg/consultant"
	"benchboard/pkg/leave"
)

type LeaveHandler struct {
	uc          leave.UseCase
	consultants consultant.UseCase
}

func NewLeaveHandler(uc leave.UseCase, consultants consultant.UseCase) *LeaveHandler {
	return &LeaveHandler{uc: uc, consultants: consultants}
}

const dateLayout = "2006-01-02"

type createLeaveRequest struct {
	ConsultantID string `json:"consultantId"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Reason       string `json:"reason"`
}

// Create files a leave request. Consultants file for themselves (their
// record is resolved from the token email); admins may pass consultantId.
// @Summary Create leave request
// @Tags    leaves
// @Accept  json
// @Produce json
// @Param   input body createLeaveRequest true "leave request"
// @Security BearerAuth
// @Success 201 {object} leave.Request
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /leaves [post]
func (h *LeaveHandler) Create(c *fiber.Ctx) error {
	var req createLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	var consultantID uuid.UUID
	isAdmin, _ := c.Locals("isAdmin").(bool)
	if isAdmin && req.ConsultantID != "" {
		id, err := uuid.Parse(req.ConsultantID)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid consultantId")
		}
		consultantID = id
	} else {
		email, _ := c.Locals("email").(string)
		me, err := h.consultants.GetByEmail(c.Context(), email)
		if err != nil {
			return consultantError(c, err)
		}
		consultantID = me.ID
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid startDate, expected YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid endDate, expected YYYY-MM-DD")
	}

	created, err := h.uc.Create(c.Context(), consultantID, start, end, req.Reason)
	if err != nil {
		return leaveError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, created)
}

// List returns leave requests: all of them for admins, own requests for
// consultants.
// @Summary List leave requests
// @Tags    leaves
// @Produce json
// @Security BearerAuth
// @Success 200 {array} leave.Request
// @Router  /leaves [get]
func (h *LeaveHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	if isAdmin, _ := c.Locals("isAdmin").(bool); isAdmin {
		items, err := h.uc.ListAll(c.Context(), limit, offset)
		if err != nil {
			return presenter.Error(c, http.StatusInternalServerError, "failed to list leave requests")
		}
		return presenter.JSON(c, http.StatusOK, items)
	}
	email, _ := c.Locals("email").(string)
	me, err := h.consultants.GetByEmail(c.Context(), email)
	if err != nil {
		return consultantError(c, err)
	}
	items, err := h.uc.ListByConsultant(c.Context(), me.ID, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list leave requests")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

type decideLeaveRequest struct {
	Status leave.Status `json:"status"`
}

// Decide approves or rejects a pending leave request.
// @Summary Decide leave request
// @Tags    leaves
// @Accept  json
// @Produce json
// @Param   id path string true "leave request id (UUID)"
// @Param   input body decideLeaveRequest true "Approved or Rejected"
// @Security BearerAuth
// @Success 200 {object} leave.Request
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /leaves/{id}/status [put]
func (h *LeaveHandler) Decide(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var req decideLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	updated, err := h.uc.Decide(c.Context(), id, req.Status)
	if err != nil {
		return leaveError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, updated)
}

func leaveError(c *fiber.Ctx, err error) error {
	var v leave.ErrValidation
	switch {
	case errors.Is(err, leave.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "leave request not found")
	case errors.Is(err, leave.ErrAlreadyDecided):
		return presenter.Error(c, http.StatusConflict, "leave request is already decided")
	case errors.As(err, &v):
		return presenter.Error(c, http.StatusBadRequest, v.Error())
	default:
		return presenter.Error(c, http.StatusInternalServerError, "operation failed")
	}
}
