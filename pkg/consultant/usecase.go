package consultant

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase exposes the consultant lifecycle: field-level update operations
// plus CRUD. Each operation is one request, one atomic write; progress is
// recomputed from the returned record, never cached across calls.
type UseCase interface {
	Create(ctx context.Context, name, email string) (Consultant, error)
	Get(ctx context.Context, id uuid.UUID) (Consultant, error)
	GetByEmail(ctx context.Context, email string) (Consultant, error)
	List(ctx context.Context, f Filter, limit, offset int) ([]Consultant, error)
	MarkResumeUpdated(ctx context.Context, id uuid.UUID) (Consultant, error)
	MarkAttendance(ctx context.Context, id uuid.UUID, hours float64) (Consultant, error)
	IncrementOpportunities(ctx context.Context, id uuid.UUID) (Consultant, error)
	AssignTraining(ctx context.Context, id uuid.UUID, topic string) (Consultant, error)
	UnassignTraining(ctx context.Context, id uuid.UUID) (Consultant, error)
	CompleteTraining(ctx context.Context, id uuid.UUID) (Consultant, error)
	UpdateFields(ctx context.Context, id uuid.UUID, patch FieldPatch) (Consultant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService returns the default lifecycle tracker implementation.
func NewService(repo Repository) UseCase {
	return &service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) Create(ctx context.Context, name, email string) (Consultant, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return Consultant{}, ErrValidation("name is required")
	}
	if email == "" {
		return Consultant{}, ErrValidation("email is required")
	}
	c := Consultant{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		ResumeStatus: ResumeNotUpdated,
		Attendance:   AttendanceNotCompleted,
		Training:     TrainingNotAssigned,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Consultant{}, err
	}
	return c, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Consultant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByEmail(ctx context.Context, email string) (Consultant, error) {
	return s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *service) List(ctx context.Context, f Filter, limit, offset int) ([]Consultant, error) {
	return s.repo.List(ctx, f, limit, offset)
}

func (s *service) MarkResumeUpdated(ctx context.Context, id uuid.UUID) (Consultant, error) {
	return s.repo.MarkResumeUpdated(ctx, id, s.now())
}

func (s *service) MarkAttendance(ctx context.Context, id uuid.UUID, hours float64) (Consultant, error) {
	if hours < 0 {
		return Consultant{}, ErrValidation("hours must not be negative")
	}
	return s.repo.MarkAttendance(ctx, id, hours)
}

func (s *service) IncrementOpportunities(ctx context.Context, id uuid.UUID) (Consultant, error) {
	return s.repo.IncrementOpportunities(ctx, id)
}

func (s *service) AssignTraining(ctx context.Context, id uuid.UUID, topic string) (Consultant, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Consultant{}, ErrValidation("skill topic is required")
	}
	return s.repo.AssignTraining(ctx, id, topic)
}

func (s *service) UnassignTraining(ctx context.Context, id uuid.UUID) (Consultant, error) {
	return s.repo.UnassignTraining(ctx, id)
}

func (s *service) CompleteTraining(ctx context.Context, id uuid.UUID) (Consultant, error) {
	return s.repo.CompleteTraining(ctx, id)
}

func (s *service) UpdateFields(ctx context.Context, id uuid.UUID, patch FieldPatch) (Consultant, error) {
	if err := validatePatch(patch); err != nil {
		return Consultant{}, err
	}
	return s.repo.UpdateFields(ctx, id, patch)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func validatePatch(p FieldPatch) error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return ErrValidation("name must not be empty")
	}
	if p.ResumeStatus != nil {
		switch *p.ResumeStatus {
		case ResumeNotUpdated, ResumeUpdated:
		default:
			return ErrValidation("invalid resumeStatus")
		}
	}
	if p.Attendance != nil {
		switch *p.Attendance {
		case AttendanceNotCompleted, AttendanceCompleted:
		default:
			return ErrValidation("invalid attendance")
		}
	}
	if p.Opportunities != nil && *p.Opportunities < 0 {
		return ErrValidation("opportunities must not be negative")
	}
	if p.Training != nil {
		switch *p.Training {
		case TrainingNotAssigned, TrainingInProgress, TrainingCompleted:
		default:
			return ErrValidation("invalid training")
		}
	}
	return nil
}
