package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"benchboard/pkg/resume"
)

// ResumeRepository stores uploaded resume metadata and the extracted text.
type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) (*ResumeRepository, error) {
	r := &ResumeRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ResumeRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS resumes (
	id UUID PRIMARY KEY,
	consultant_id UUID NOT NULL REFERENCES consultants(id) ON DELETE CASCADE,
	filename TEXT NOT NULL,
	mime_type TEXT NOT NULL,
	size_bytes BIGINT NOT NULL,
	storage_uri TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS parsed_resumes (
	resume_id UUID PRIMARY KEY REFERENCES resumes(id) ON DELETE CASCADE,
	text TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_resumes_consultant ON resumes(consultant_id, created_at DESC);
`)
	return err
}

func (r *ResumeRepository) Create(ctx context.Context, d resume.Document) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO resumes (id, consultant_id, filename, mime_type, size_bytes, storage_uri, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, d.ID, d.ConsultantID, d.Filename, d.MimeType, d.Size, d.StorageURI, d.CreatedAt)
	return err
}

func (r *ResumeRepository) SaveParsed(ctx context.Context, p resume.Parsed) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO parsed_resumes (resume_id, text)
VALUES ($1, $2)
ON CONFLICT (resume_id) DO UPDATE SET text = EXCLUDED.text
`, p.DocumentID, p.Text)
	return err
}

func (r *ResumeRepository) GetParsed(ctx context.Context, documentID uuid.UUID) (resume.Parsed, error) {
	row := r.pool.QueryRow(ctx, `
SELECT resume_id, text FROM parsed_resumes WHERE resume_id = $1
`, documentID)
	var p resume.Parsed
	if err := row.Scan(&p.DocumentID, &p.Text); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Parsed{}, resume.ErrNotFound
		}
		return resume.Parsed{}, err
	}
	return p, nil
}

func (r *ResumeRepository) LatestTextByConsultant(ctx context.Context, consultantID uuid.UUID) (string, error) {
	row := r.pool.QueryRow(ctx, `
SELECT pr.text
FROM resumes r
JOIN parsed_resumes pr ON pr.resume_id = r.id
WHERE r.consultant_id = $1
ORDER BY r.created_at DESC
LIMIT 1
`, consultantID)
	var text string
	if err := row.Scan(&text); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", resume.ErrNotFound
		}
		return "", err
	}
	return text, nil
}

func (r *ResumeRepository) ListByConsultant(ctx context.Context, consultantID uuid.UUID, limit, offset int) ([]resume.Document, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, consultant_id, filename, mime_type, size_bytes, storage_uri, created_at
FROM resumes
WHERE consultant_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, consultantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []resume.Document{}
	for rows.Next() {
		var d resume.Document
		var created time.Time
		if err := rows.Scan(&d.ID, &d.ConsultantID, &d.Filename, &d.MimeType, &d.Size, &d.StorageURI, &created); err != nil {
			return nil, err
		}
		d.CreatedAt = created.UTC()
		out = append(out, d)
	}
	return out, rows.Err()
}
