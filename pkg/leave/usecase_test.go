package leave

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memLeaveRepo struct {
	items map[uuid.UUID]Request
}

func newMemLeaveRepo() *memLeaveRepo {
	return &memLeaveRepo{items: map[uuid.UUID]Request{}}
}

func (m *memLeaveRepo) Create(_ context.Context, r Request) error {
	m.items[r.ID] = r
	return nil
}

func (m *memLeaveRepo) GetByID(_ context.Context, id uuid.UUID) (Request, error) {
	r, ok := m.items[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	return r, nil
}

func (m *memLeaveRepo) ListByConsultant(_ context.Context, consultantID uuid.UUID, _, _ int) ([]Request, error) {
	out := []Request{}
	for _, r := range m.items {
		if r.ConsultantID == consultantID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memLeaveRepo) ListAll(_ context.Context, _, _ int) ([]Request, error) {
	out := []Request{}
	for _, r := range m.items {
		out = append(out, r)
	}
	return out, nil
}

func (m *memLeaveRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to Status) (Request, error) {
	r, ok := m.items[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	if r.Status != from {
		return Request{}, ErrAlreadyDecided
	}
	r.Status = to
	m.items[id] = r
	return r, nil
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCreateStartsPending(t *testing.T) {
	svc := NewService(newMemLeaveRepo())
	consultantID := uuid.New()

	r, err := svc.Create(context.Background(), consultantID, day("2026-09-07"), day("2026-09-11"), "  family trip  ")
	require.NoError(t, err)

	assert.Equal(t, StatusPending, r.Status)
	assert.Equal(t, consultantID, r.ConsultantID)
	assert.Equal(t, "family trip", r.Reason)
	assert.NotEqual(t, uuid.Nil, r.ID)
}

func TestCreateValidatesDates(t *testing.T) {
	svc := NewService(newMemLeaveRepo())

	_, err := svc.Create(context.Background(), uuid.New(), day("2026-09-11"), day("2026-09-07"), "")
	var v ErrValidation
	require.ErrorAs(t, err, &v)

	_, err = svc.Create(context.Background(), uuid.New(), time.Time{}, day("2026-09-07"), "")
	require.ErrorAs(t, err, &v)

	_, err = svc.Create(context.Background(), uuid.Nil, day("2026-09-07"), day("2026-09-07"), "")
	require.ErrorAs(t, err, &v)

	// A single-day leave is fine.
	_, err = svc.Create(context.Background(), uuid.New(), day("2026-09-07"), day("2026-09-07"), "")
	require.NoError(t, err)
}

func TestDecideOnlyOnce(t *testing.T) {
	repo := newMemLeaveRepo()
	svc := NewService(repo)

	r, err := svc.Create(context.Background(), uuid.New(), day("2026-09-07"), day("2026-09-11"), "vacation")
	require.NoError(t, err)

	decided, err := svc.Decide(context.Background(), r.ID, StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, decided.Status)

	_, err = svc.Decide(context.Background(), r.ID, StatusRejected)
	assert.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestDecideRejectsInvalidTargets(t *testing.T) {
	repo := newMemLeaveRepo()
	svc := NewService(repo)

	r, err := svc.Create(context.Background(), uuid.New(), day("2026-09-07"), day("2026-09-11"), "")
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), r.ID, StatusPending)
	var v ErrValidation
	require.ErrorAs(t, err, &v)

	_, err = svc.Decide(context.Background(), r.ID, Status("Cancelled"))
	require.ErrorAs(t, err, &v)

	got, err := repo.GetByID(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
}

func TestDecideUnknownID(t *testing.T) {
	svc := NewService(newMemLeaveRepo())
	_, err := svc.Decide(context.Background(), uuid.New(), StatusApproved)
	assert.ErrorIs(t, err, ErrNotFound)
}
