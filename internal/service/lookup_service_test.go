package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/parcelscout/internal/domain"
	"github.com/alexanderramin/parcelscout/internal/repository"
	"github.com/alexanderramin/parcelscout/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestFinder(t *testing.T) repository.PropertyFinder {
	t.Helper()
	repo, err := repository.NewMemoryPropertyRepo([]*domain.PropertyRecord{
		testutil.NewTestProperty(testutil.WithAddress(testutil.KnownAddress), testutil.WithZoning("R5")),
	})
	require.NoError(t, err)
	return repo
}

type failingFinder struct{ err error }

func (f failingFinder) FindByAddress(context.Context, string) (*domain.PropertyRecord, error) {
	return nil, f.err
}

func (f failingFinder) List(context.Context) ([]*domain.PropertyRecord, error) {
	return nil, f.err
}

func TestLookupService_ResolveFound(t *testing.T) {
	svc := NewLookupService(newTestFinder(t), 0)

	r := svc.Resolve(context.Background(), testutil.KnownAddress)
	require.True(t, r.Found())
	assert.Equal(t, "R5", r.Property.Zoning)
	assert.Nil(t, r.Err)
}

func TestLookupService_ResolveMissIsPayload(t *testing.T) {
	svc := NewLookupService(newTestFinder(t), 0)

	for _, q := range []string{"123 Nonexistent St", " " + testutil.KnownAddress, "5721 18TH AVENUE"} {
		r := svc.Resolve(context.Background(), q)
		require.True(t, r.IsError(), "query %q", q)
		assert.Nil(t, r.Property)
		assert.Equal(t, domain.NotFoundMessage, r.Err.Message)
	}
}

func TestLookupService_CatalogFailureIsNotFoundPayload(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	svc := NewLookupService(failingFinder{err: errors.New("database is locked")}, 0,
		NewLogUseCaseObserver(zap.New(core)))

	r := svc.Resolve(context.Background(), testutil.KnownAddress)
	require.True(t, r.IsError())
	assert.Equal(t, domain.NotFoundMessage, r.Err.Message)

	entries := logs.FilterMessage("service_use_case").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "error", ctx["outcome"])
	assert.Contains(t, ctx["error"], "database is locked")
}

func TestLookupService_ObservesOutcome(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	svc := NewLookupService(newTestFinder(t), 0, NewLogUseCaseObserver(zap.New(core)))

	svc.Resolve(context.Background(), testutil.KnownAddress)
	svc.Resolve(context.Background(), "nowhere")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "found", entries[0].ContextMap()["outcome"])
	assert.Equal(t, "not_found", entries[1].ContextMap()["outcome"])
	assert.Equal(t, "lookup", entries[1].ContextMap()["use_case"])
}

func TestLookupService_SearchWaitsForDelay(t *testing.T) {
	svc := NewLookupService(newTestFinder(t), 30*time.Millisecond)

	start := time.Now()
	r, err := svc.Search(context.Background(), testutil.KnownAddress)
	require.NoError(t, err)
	assert.True(t, r.Found())
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestLookupService_SearchHonoursCancellation(t *testing.T) {
	svc := NewLookupService(newTestFinder(t), time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	r, err := svc.Search(ctx, testutil.KnownAddress)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, r)
}

func TestLookupService_NegativeDelayClamped(t *testing.T) {
	svc := NewLookupService(newTestFinder(t), -time.Second)
	assert.Zero(t, svc.Delay())
}

func TestLookupService_List(t *testing.T) {
	svc := NewLookupService(newTestFinder(t), 0)
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = NewLookupService(failingFinder{err: errors.New("boom")}, 0).List(context.Background())
	assert.Error(t, err)
}

func TestNewLogUseCaseObserver_NilLoggerIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
