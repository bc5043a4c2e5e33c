package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a system account. Admins manage the bench (shortlisting, training
// assignment, leave decisions); regular users are consultants whose account
// email links them to their consultant record.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
