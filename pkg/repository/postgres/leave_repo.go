package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"benchboard/pkg/leave"
)

// LeaveRepository stores leave requests.
type LeaveRepository struct {
	pool *pgxpool.Pool
}

func NewLeaveRepository(pool *pgxpool.Pool) (*LeaveRepository, error) {
	r := &LeaveRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LeaveRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS leave_requests (
	id UUID PRIMARY KEY,
	consultant_id UUID NOT NULL REFERENCES consultants(id) ON DELETE CASCADE,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	reason TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'Pending',
	created_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

const leaveColumns = `id, consultant_id, start_date, end_date, reason, status, created_at`

func scanLeave(row pgx.Row) (leave.Request, error) {
	var lr leave.Request
	var start, end, created time.Time
	if err := row.Scan(&lr.ID, &lr.ConsultantID, &start, &end, &lr.Reason, &lr.Status, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrNotFound
		}
		return leave.Request{}, err
	}
	lr.StartDate = start
	lr.EndDate = end
	lr.CreatedAt = created.UTC()
	return lr, nil
}

func (r *LeaveRepository) Create(ctx context.Context, lr leave.Request) error {
	if lr.ID == uuid.Nil {
		lr.ID = uuid.New()
	}
	if lr.CreatedAt.IsZero() {
		lr.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO leave_requests (`+leaveColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, lr.ID, lr.ConsultantID, lr.StartDate, lr.EndDate, lr.Reason, lr.Status, lr.CreatedAt)
	return err
}

func (r *LeaveRepository) GetByID(ctx context.Context, id uuid.UUID) (leave.Request, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leave_requests WHERE id = $1`, id)
	return scanLeave(row)
}

func (r *LeaveRepository) ListByConsultant(ctx context.Context, consultantID uuid.UUID, limit, offset int) ([]leave.Request, error) {
	return r.list(ctx, `WHERE consultant_id = $3`, limit, offset, consultantID)
}

func (r *LeaveRepository) ListAll(ctx context.Context, limit, offset int) ([]leave.Request, error) {
	return r.list(ctx, ``, limit, offset)
}

func (r *LeaveRepository) list(ctx context.Context, where string, limit, offset int, args ...any) ([]leave.Request, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + leaveColumns + ` FROM leave_requests ` + where + `
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
	all := append([]any{limit, offset}, args...)
	rows, err := r.pool.Query(ctx, query, all...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []leave.Request{}
	for rows.Next() {
		lr, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, lr)
	}
	return out, rows.Err()
}

// UpdateStatus transitions a request only when it is still in the expected
// state; a decided request stays decided.
func (r *LeaveRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to leave.Status) (leave.Request, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE leave_requests
SET status = $3
WHERE id = $1 AND status = $2
RETURNING `+leaveColumns, id, from, to)
	lr, err := scanLeave(row)
	if err == nil {
		return lr, nil
	}
	if errors.Is(err, leave.ErrNotFound) {
		// Distinguish a missing request from one that is already decided.
		if _, getErr := r.GetByID(ctx, id); getErr == nil {
			return leave.Request{}, leave.ErrAlreadyDecided
		}
		return leave.Request{}, leave.ErrNotFound
	}
	return leave.Request{}, err
}
