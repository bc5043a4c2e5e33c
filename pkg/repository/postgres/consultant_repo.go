package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"benchboard/pkg/consultant"
	"benchboard/pkg/shortlist"
)

// ConsultantRepository implements consultant.Repository backed by PostgreSQL
// (pgx). Every lifecycle mutation is a single UPDATE ... RETURNING, so
// concurrent field updates on the same consultant never clobber each other's
// fields; last write wins per field.
type ConsultantRepository struct {
	pool *pgxpool.Pool
}

func NewConsultantRepository(pool *pgxpool.Pool) (*ConsultantRepository, error) {
	r := &ConsultantRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ConsultantRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS consultants (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	resume_status TEXT NOT NULL DEFAULT 'NotUpdated',
	attendance TEXT NOT NULL DEFAULT 'NotCompleted',
	attendance_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
	opportunities INTEGER NOT NULL DEFAULT 0,
	training TEXT NOT NULL DEFAULT 'NotAssigned',
	skill_topic TEXT,
	resume_uploaded_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

const consultantColumns = `id, name, email, resume_status, attendance, attendance_hours, opportunities, training, skill_topic, resume_uploaded_at, created_at`

func scanConsultant(row pgx.Row) (consultant.Consultant, error) {
	var c consultant.Consultant
	var uploadedAt *time.Time
	var created time.Time
	err := row.Scan(
		&c.ID, &c.Name, &c.Email,
		&c.ResumeStatus, &c.Attendance, &c.AttendanceHours,
		&c.Opportunities, &c.Training, &c.SkillTopic,
		&uploadedAt, &created,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return consultant.Consultant{}, consultant.ErrNotFound
		}
		return consultant.Consultant{}, err
	}
	if uploadedAt != nil {
		t := uploadedAt.UTC()
		c.ResumeUploadedAt = &t
	}
	c.CreatedAt = created.UTC()
	return c, nil
}

func (r *ConsultantRepository) Create(ctx context.Context, c consultant.Consultant) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO consultants (`+consultantColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`, c.ID, c.Name, strings.ToLower(c.Email), c.ResumeStatus, c.Attendance, c.AttendanceHours,
		c.Opportunities, c.Training, c.SkillTopic, c.ResumeUploadedAt, c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return consultant.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *ConsultantRepository) GetByID(ctx context.Context, id uuid.UUID) (consultant.Consultant, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+consultantColumns+` FROM consultants WHERE id = $1`, id)
	return scanConsultant(row)
}

func (r *ConsultantRepository) GetByEmail(ctx context.Context, email string) (consultant.Consultant, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+consultantColumns+` FROM consultants WHERE email = $1`, strings.ToLower(email))
	return scanConsultant(row)
}

// List applies the admin table filters as case-insensitive substring matches
// and orders by id for stable pagination.
func (r *ConsultantRepository) List(ctx context.Context, f consultant.Filter, limit, offset int) ([]consultant.Consultant, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+consultantColumns+` FROM consultants
WHERE name ILIKE '%' || $1 || '%'
  AND resume_status ILIKE '%' || $2 || '%'
  AND training ILIKE '%' || $3 || '%'
  AND attendance ILIKE '%' || $4 || '%'
ORDER BY id
LIMIT $5 OFFSET $6
`, f.Name, f.ResumeStatus, f.Training, f.Attendance, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []consultant.Consultant{}
	for rows.Next() {
		c, err := scanConsultant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ConsultantRepository) MarkResumeUpdated(ctx context.Context, id uuid.UUID, uploadedAt time.Time) (consultant.Consultant, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE consultants
SET resume_status = $2, resume_uploaded_at = $3
WHERE id = $1
RETURNING `+consultantColumns, id, consultant.ResumeUpdated, uploadedAt)
	return scanConsultant(row)
}

func (r *ConsultantRepository) MarkAttendance(ctx context.Context, id uuid.UUID, hours float64) (consultant.Consultant, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE consultants
SET attendance = $2, attendance_hours = attendance_hours + $3
WHERE id = $1
RETURNING `+consultantColumns, id, consultant.AttendanceCompleted, hours)
	return scanConsultant(row)
}

func (r *ConsultantRepository) IncrementOpportunities(ctx context.Context, id uuid.UUID) (consultant.Consultant, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE consultants
SET opportunities = opportunities + 1
WHERE id = $1
RETURNING `+consultantColumns, id)
	return scanConsultant(row)
}

func (r *ConsultantRepository) AssignTraining(ctx context.Context, id uuid.UUID, topic string) (consultant.Consultant, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE consultants
SET training = $2, skill_topic = $3
WHERE id = $1
RETURNING `+consultantColumns, id, consultant.TrainingInProgress, topic)
	return scanConsultant(row)
}

// UnassignTraining resets the training milestone only; opportunities and
// attendance stay as they are.
func (r *ConsultantRepository) UnassignTraining(ctx context.Context, id uuid.UUID) (consultant.Consultant, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE consultants
SET training = $2, skill_topic = NULL
WHERE id = $1
RETURNING `+consultantColumns, id, consultant.TrainingNotAssigned)
	return scanConsultant(row)
}

func (r *ConsultantRepository) CompleteTraining(ctx context.Context, id uuid.UUID) (consultant.Consultant, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE consultants
SET training = $2
WHERE id = $1
RETURNING `+consultantColumns, id, consultant.TrainingCompleted)
	return scanConsultant(row)
}

// UpdateFields patches the given fields in one statement; nil fields keep
// their current value via COALESCE.
func (r *ConsultantRepository) UpdateFields(ctx context.Context, id uuid.UUID, p consultant.FieldPatch) (consultant.Consultant, error) {
	var name, resumeStatus, attendance, training *string
	if p.Name != nil {
		name = p.Name
	}
	if p.ResumeStatus != nil {
		s := string(*p.ResumeStatus)
		resumeStatus = &s
	}
	if p.Attendance != nil {
		s := string(*p.Attendance)
		attendance = &s
	}
	if p.Training != nil {
		s := string(*p.Training)
		training = &s
	}
	row := r.pool.QueryRow(ctx, `
UPDATE consultants
SET name = COALESCE($2, name),
    resume_status = COALESCE($3, resume_status),
    attendance = COALESCE($4, attendance),
    opportunities = COALESCE($5, opportunities),
    training = COALESCE($6, training)
WHERE id = $1
RETURNING `+consultantColumns, id, name, resumeStatus, attendance, p.Opportunities, training)
	return scanConsultant(row)
}

// Delete is a hard delete; dependent resumes and leave requests go with it
// via ON DELETE CASCADE.
func (r *ConsultantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM consultants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return consultant.ErrNotFound
	}
	return nil
}

// Snapshot implements shortlist.PopulationSource: one query joins every
// consultant with the text of their latest resume, so the partitioner works
// on an internally consistent snapshot.
func (r *ConsultantRepository) Snapshot(ctx context.Context) ([]shortlist.Candidate, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+qualify("c", consultantColumns)+`, COALESCE(p.text, '')
FROM consultants c
LEFT JOIN LATERAL (
	SELECT pr.text
	FROM resumes r
	JOIN parsed_resumes pr ON pr.resume_id = r.id
	WHERE r.consultant_id = c.id
	ORDER BY r.created_at DESC
	LIMIT 1
) p ON TRUE
ORDER BY c.id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []shortlist.Candidate{}
	for rows.Next() {
		var c consultant.Consultant
		var uploadedAt *time.Time
		var created time.Time
		var text string
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email,
			&c.ResumeStatus, &c.Attendance, &c.AttendanceHours,
			&c.Opportunities, &c.Training, &c.SkillTopic,
			&uploadedAt, &created, &text,
		); err != nil {
			return nil, err
		}
		if uploadedAt != nil {
			t := uploadedAt.UTC()
			c.ResumeUploadedAt = &t
		}
		c.CreatedAt = created.UTC()
		out = append(out, shortlist.Candidate{Consultant: c, ResumeText: text})
	}
	return out, rows.Err()
}

// qualify prefixes every column in a comma-separated list with a table
// alias.
func qualify(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	for i, p := range parts {
		parts[i] = fmt.Sprintf("%s.%s", alias, p)
	}
	return strings.Join(parts, ", ")
}
