package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"benchboard/api/http/presenter"
	"benchboard/pkg/consultant"
)

type ConsultantHandler struct {
	uc consultant.UseCase
}

func NewConsultantHandler(uc consultant.UseCase) *ConsultantHandler {
	return &ConsultantHandler{uc: uc}
}

// consultantView adds the derived progress percentage to the entity; the
// value is recomputed on every read, never stored.
type consultantView struct {
	consultant.Consultant
	Progress int `json:"progress"`
}

func view(c consultant.Consultant) consultantView {
	return consultantView{Consultant: c, Progress: c.Progress()}
}

func views(cs []consultant.Consultant) []consultantView {
	out := make([]consultantView, 0, len(cs))
	for _, c := range cs {
		out = append(out, view(c))
	}
	return out
}

func consultantError(c *fiber.Ctx, err error) error {
	var v consultant.ErrValidation
	switch {
	case errors.Is(err, consultant.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "consultant not found")
	case errors.Is(err, consultant.ErrEmailTaken):
		return presenter.Error(c, http.StatusConflict, "consultant with this email already exists")
	case errors.As(err, &v):
		return presenter.Error(c, http.StatusBadRequest, v.Error())
	default:
		return presenter.Error(c, http.StatusInternalServerError, "operation failed")
	}
}

// RequireSelfOrAdmin guards per-consultant mutations: admins pass
// unconditionally, everyone else only when the :id record is their own.
// It must run after the JWT middleware.
func (h *ConsultantHandler) RequireSelfOrAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isAdmin, _ := c.Locals("isAdmin").(bool); isAdmin {
			return c.Next()
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid id")
		}
		email, _ := c.Locals("email").(string)
		me, err := h.uc.GetByEmail(c.Context(), email)
		if err != nil || me.ID != id {
			return presenter.Error(c, http.StatusForbidden, "you can only act on your own record")
		}
		return c.Next()
	}
}

type createConsultantRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Create registers a new bench consultant.
// @Summary Create consultant
// @Tags    consultants
// @Accept  json
// @Produce json
// @Param   input body createConsultantRequest true "name + email"
// @Security BearerAuth
// @Success 201 {object} consultantView
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /consultants [post]
func (h *ConsultantHandler) Create(c *fiber.Ctx) error {
	var req createConsultantRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	created, err := h.uc.Create(c.Context(), req.Name, req.Email)
	if err != nil {
		return consultantError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, view(created))
}

// List returns consultants, optionally filtered by name/status substrings.
// @Summary List consultants
// @Tags    consultants
// @Produce json
// @Param   name query string false "name filter (substring)"
// @Param   resumeStatus query string false "resume status filter"
// @Param   training query string false "training filter"
// @Param   attendance query string false "attendance filter"
// @Security BearerAuth
// @Success 200 {array} consultantView
// @Router  /consultants [get]
func (h *ConsultantHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	f := consultant.Filter{
		Name:         c.Query("name"),
		ResumeStatus: c.Query("resumeStatus"),
		Training:     c.Query("training"),
		Attendance:   c.Query("attendance"),
	}
	items, err := h.uc.List(c.Context(), f, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list consultants")
	}
	return presenter.JSON(c, http.StatusOK, views(items))
}

// Me returns the consultant record linked to the authenticated account.
// @Summary Own consultant record
// @Tags    consultants
// @Produce json
// @Security BearerAuth
// @Success 200 {object} consultantView
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /consultants/me [get]
func (h *ConsultantHandler) Me(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)
	if email == "" {
		return presenter.Error(c, http.StatusUnauthorized, "could not resolve account email")
	}
	me, err := h.uc.GetByEmail(c.Context(), email)
	if err != nil {
		return consultantError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, view(me))
}

// Get returns one consultant by id.
// @Summary Get consultant
// @Tags    consultants
// @Produce json
// @Param   id path string true "consultant id (UUID)"
// @Security BearerAuth
// @Success 200 {object} consultantView
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /consultants/{id} [get]
func (h *ConsultantHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	item, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return consultantError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, view(item))
}

type updateConsultantRequest struct {
	Name          *string                      `json:"name"`
	ResumeStatus  *consultant.ResumeStatus     `json:"resumeStatus"`
	Attendance    *consultant.AttendanceStatus `json:"attendance"`
	Opportunities *int                         `json:"opportunities"`
	Training      *consultant.TrainingStatus   `json:"training"`
}

// Update patches consultant fields; omitted fields are untouched.
// @Summary Update consultant fields
// @Tags    consultants
// @Accept  json
// @Produce json
// @Param   id path string true "consultant id (UUID)"
// @Param   input body updateConsultantRequest true "fields to update"
// @Security BearerAuth
// @Success 200 {object} consultantView
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /consultants/{id} [put]
func (h *ConsultantHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var req updateConsultantRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	updated, err := h.uc.UpdateFields(c.Context(), id, consultant.FieldPatch{
		Name:          req.Name,
		ResumeStatus:  req.ResumeStatus,
		Attendance:    req.Attendance,
		Opportunities: req.Opportunities,
		Training:      req.Training,
	})
	if err != nil {
		return consultantError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, view(updated))
}

// Delete removes a consultant permanently. Callers should re-fetch the
// population afterwards.
// @Summary Delete consultant
// @Tags    consultants
// @Param   id path string true "consultant id (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /consultants/{id} [delete]
func (h *ConsultantHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return consultantError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

type markAttendanceRequest struct {
	Hours float64 `json:"hours"`
}

// MarkAttendance completes the attendance milestone and adds hours.
// @Summary Mark attendance
// @Tags    consultants
// @Accept  json
// @Produce json
// @Param   id path string true "consultant id (UUID)"
// @Param   input body markAttendanceRequest false "attended hours"
// @Security BearerAuth
// @Success 200 {object} consultantView
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /consultants/{id}/attendance [post]
func (h *ConsultantHandler) MarkAttendance(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var req markAttendanceRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
		}
	}
	updated, err := h.uc.MarkAttendance(c.Context(), id, req.Hours)
	if err != nil {
		return consultantError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, view(updated))
}

// AddOpportunity increments the opportunities counter.
// @Summary Add opportunity
// @Tags    consultants
// @Produce json
// @Param   id path string true "consultant id (UUID)"
// @Security BearerAuth
// @Success 200 {object} consultantView
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /consultants/{id}/opportunities [post]
func (h *ConsultantHandler) AddOpportunity(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	updated, err := h.uc.IncrementOpportunities(c.Context(), id)
	if err != nil {
		return consultantError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, view(updated))
}

type assignTrainingRequest struct {
	SkillTopic string `json:"skillTopic"`
}

// AssignTraining puts the consultant into training for a skill topic,
// typically the skill an admin shortlisted for.
// @Summary Assign training
// @Tags    consultants
// @Accept  json
// @Produce json
// @Param   id path string true "consultant id (UUID)"
// @Param   input body assignTrainingRequest true "skill topic"
// @Security BearerAuth
// @Success 200 {object} consultantView
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /consultants/{id}/training [post]
func (h *ConsultantHandler) AssignTraining(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var req assignTrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	updated, err := h.uc.AssignTraining(c.Context(), id, req.SkillTopic)
	if err != nil {
		return consultantError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, view(updated))
}

// UnassignTraining resets the training milestone and clears the topic;
// opportunities and attendance are not touched.
// @Summary Unassign training
// @Tags    consultants
// @Produce json
// @Param   id path string true "consultant id (UUID)"
// @Security BearerAuth
// @Success 200 {object} consultantView
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /consultants/{id}/training [delete]
func (h *ConsultantHandler) UnassignTraining(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	updated, err := h.uc.UnassignTraining(c.Context(), id)
	if err != nil {
		return consultantError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, view(updated))
}

// CompleteTraining marks the assigned training as finished.
// @Summary Complete training
// @Tags    consultants
// @Produce json
// @Param   id path string true "consultant id (UUID)"
// @Security BearerAuth
// @Success 200 {object} consultantView
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /consultants/{id}/training/complete [post]
func (h *ConsultantHandler) CompleteTraining(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	updated, err := h.uc.CompleteTraining(c.Context(), id)
	if err != nil {
		return consultantError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, view(updated))
}
