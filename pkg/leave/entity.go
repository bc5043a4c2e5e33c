package leave

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status of a leave request.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Request is a consultant's leave request; created by the consultant,
// decided by an admin.
type Request struct {
	ID           uuid.UUID `json:"id"`
	ConsultantID uuid.UUID `json:"consultantId"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Reason       string    `json:"reason"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

var (
	ErrNotFound       = errors.New("leave request not found")
	ErrAlreadyDecided = errors.New("leave request is already decided")
)

// Repository abstracts leave request persistence.
type Repository interface {
	Create(ctx context.Context, r Request) error
	GetByID(ctx context.Context, id uuid.UUID) (Request, error)
	ListByConsultant(ctx context.Context, consultantID uuid.UUID, limit, offset int) ([]Request, error)
	ListAll(ctx context.Context, limit, offset int) ([]Request, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) (Request, error)
}
