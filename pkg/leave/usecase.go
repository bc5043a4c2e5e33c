package leave

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase covers the leave request workflow: create, list, decide.
type UseCase interface {
	Create(ctx context.Context, consultantID uuid.UUID, start, end time.Time, reason string) (Request, error)
	ListByConsultant(ctx context.Context, consultantID uuid.UUID, limit, offset int) ([]Request, error)
	ListAll(ctx context.Context, limit, offset int) ([]Request, error)
	Decide(ctx context.Context, id uuid.UUID, to Status) (Request, error)
}

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, consultantID uuid.UUID, start, end time.Time, reason string) (Request, error) {
	if consultantID == uuid.Nil {
		return Request{}, ErrValidation("consultantId is required")
	}
	if start.IsZero() || end.IsZero() {
		return Request{}, ErrValidation("startDate and endDate are required")
	}
	if end.Before(start) {
		return Request{}, ErrValidation("endDate must not be before startDate")
	}
	r := Request{
		ID:           uuid.New(),
		ConsultantID: consultantID,
		StartDate:    start,
		EndDate:      end,
		Reason:       strings.TrimSpace(reason),
		Status:       StatusPending,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return Request{}, err
	}
	return r, nil
}

func (s *service) ListByConsultant(ctx context.Context, consultantID uuid.UUID, limit, offset int) ([]Request, error) {
	return s.repo.ListByConsultant(ctx, consultantID, limit, offset)
}

func (s *service) ListAll(ctx context.Context, limit, offset int) ([]Request, error) {
	return s.repo.ListAll(ctx, limit, offset)
}

// Decide moves a pending request to Approved or Rejected. Requests that are
// already decided stay as they are.
func (s *service) Decide(ctx context.Context, id uuid.UUID, to Status) (Request, error) {
	if to != StatusApproved && to != StatusRejected {
		return Request{}, ErrValidation("status must be Approved or Rejected")
	}
	return s.repo.UpdateStatus(ctx, id, StatusPending, to)
}
