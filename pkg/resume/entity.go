package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Document holds the metadata of an uploaded resume file. The extracted
// plain text is stored separately so the matcher never has to touch the
// original container again.
type Document struct {
	ID           uuid.UUID `json:"id"`
	ConsultantID uuid.UUID `json:"consultantId"`
	Filename     string    `json:"filename"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	StorageURI   string    `json:"storageUri,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Parsed is the extracted plain text of one document.
type Parsed struct {
	DocumentID uuid.UUID
	Text       string
}

// ErrNotFound is returned when a document or its parsed text is missing.
var ErrNotFound = errors.New("resume not found")

// Repository abstracts resume storage.
type Repository interface {
	Create(ctx context.Context, d Document) error
	SaveParsed(ctx context.Context, p Parsed) error
	GetParsed(ctx context.Context, documentID uuid.UUID) (Parsed, error)
	// LatestTextByConsultant returns the parsed text of the consultant's most
	// recent upload, or ErrNotFound when none exists.
	LatestTextByConsultant(ctx context.Context, consultantID uuid.UUID) (string, error)
	ListByConsultant(ctx context.Context, consultantID uuid.UUID, limit, offset int) ([]Document, error)
}
