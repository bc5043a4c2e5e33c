package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	name string
	err  error
}

func (f fakeChecker) Name() string { return f.name }

func (f fakeChecker) Check(_ context.Context) error { return f.err }

func TestReadyAllHealthy(t *testing.T) {
	svc := NewService(fakeChecker{name: "postgres"}, fakeChecker{name: "storage"})
	assert.NoError(t, svc.Ready(context.Background()))
}

func TestReadyNamesFailingDependency(t *testing.T) {
	cause := errors.New("connection refused")
	svc := NewService(fakeChecker{name: "postgres", err: cause})

	err := svc.Ready(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "postgres")
}
