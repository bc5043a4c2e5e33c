package consultant

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Workflow milestone values. Stored as text, compared as typed constants.
type (
	ResumeStatus     string
	AttendanceStatus string
	TrainingStatus   string
)

const (
	ResumeNotUpdated ResumeStatus = "NotUpdated"
	ResumeUpdated    ResumeStatus = "Updated"

	AttendanceNotCompleted AttendanceStatus = "NotCompleted"
	AttendanceCompleted    AttendanceStatus = "Completed"

	TrainingNotAssigned TrainingStatus = "NotAssigned"
	TrainingInProgress  TrainingStatus = "InProgress"
	TrainingCompleted   TrainingStatus = "Completed"
)

// Consultant is a bench consultant with the workflow state derived from
// explicit events (resume upload, attendance, opportunities, training).
type Consultant struct {
	ID               uuid.UUID        `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	ResumeStatus     ResumeStatus     `json:"resumeStatus"`
	Attendance       AttendanceStatus `json:"attendance"`
	AttendanceHours  float64          `json:"attendanceHours"`
	Opportunities    int              `json:"opportunities"`
	Training         TrainingStatus   `json:"training"`
	SkillTopic       *string          `json:"skillTopic"`
	ResumeUploadedAt *time.Time       `json:"resumeUploadedAt"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// Progress is the aggregate workflow percentage: 25 points each for an
// updated resume, completed attendance, at least one opportunity and
// completed training. It is always derived from current fields and never
// stored.
func (c Consultant) Progress() int {
	p := 0
	if c.ResumeStatus == ResumeUpdated {
		p += 25
	}
	if c.Attendance == AttendanceCompleted {
		p += 25
	}
	if c.Opportunities > 0 {
		p += 25
	}
	if c.Training == TrainingCompleted {
		p += 25
	}
	return p
}

// Common errors used by repository/use cases.
var (
	ErrNotFound   = errors.New("consultant not found")
	ErrEmailTaken = errors.New("consultant with this email already exists")
)

// Filter narrows List results; empty fields match everything. Values are
// matched as case-insensitive substrings, mirroring the admin table filters.
type Filter struct {
	Name         string
	ResumeStatus string
	Training     string
	Attendance   string
}

// FieldPatch is a partial update; nil fields are left untouched.
type FieldPatch struct {
	Name          *string
	ResumeStatus  *ResumeStatus
	Attendance    *AttendanceStatus
	Opportunities *int
	Training      *TrainingStatus
}

// Repository abstracts consultant persistence. Every mutation is a single
// atomic read-modify-write on one record and returns the updated state.
type Repository interface {
	Create(ctx context.Context, c Consultant) error
	GetByID(ctx context.Context, id uuid.UUID) (Consultant, error)
	GetByEmail(ctx context.Context, email string) (Consultant, error)
	List(ctx context.Context, f Filter, limit, offset int) ([]Consultant, error)
	MarkResumeUpdated(ctx context.Context, id uuid.UUID, uploadedAt time.Time) (Consultant, error)
	MarkAttendance(ctx context.Context, id uuid.UUID, hours float64) (Consultant, error)
	IncrementOpportunities(ctx context.Context, id uuid.UUID) (Consultant, error)
	AssignTraining(ctx context.Context, id uuid.UUID, topic string) (Consultant, error)
	UnassignTraining(ctx context.Context, id uuid.UUID) (Consultant, error)
	CompleteTraining(ctx context.Context, id uuid.UUID) (Consultant, error)
	UpdateFields(ctx context.Context, id uuid.UUID, patch FieldPatch) (Consultant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
