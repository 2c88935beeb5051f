package enrollment

import (
	"context"
	"testing"
	"time"

	"learnhub/database"
	"learnhub/models"
	"learnhub/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jane = services.StaticUser{ID: "u1", Name: "Jane", Email: "jane@x.com"}

func newLedger(users services.UserSource) (*Ledger, *database.MemoryStore, *time.Time) {
	store := database.NewMemoryStore()
	clock := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	l := NewLedger(store, users, WithClock(func() time.Time { return clock }))
	return l, store, &clock
}

func TestEnrollRequiresUser(t *testing.T) {
	l, store, _ := newLedger(services.Anonymous)
	ctx := context.Background()

	_, err := l.Enroll(ctx, "python-programming")
	assert.ErrorIs(t, err, services.ErrNotAuthenticated)
	assert.ErrorIs(t, l.UpdateProgress(ctx, "python-programming", 10), services.ErrNotAuthenticated)
	assert.False(t, l.IsEnrolled(ctx, "python-programming"))
	assert.Zero(t, l.Progress(ctx, "python-programming"))
	assert.Empty(t, store.Keys())
}

func TestEnrollIsIdempotent(t *testing.T) {
	l, store, clock := newLedger(jane)
	ctx := context.Background()

	first, err := l.Enroll(ctx, "python-programming")
	require.NoError(t, err)
	assert.Equal(t, "u1", first.UserID)
	assert.Zero(t, first.Progress)
	assert.False(t, first.Completed)

	*clock = clock.Add(time.Hour)
	second, err := l.Enroll(ctx, "python-programming")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var stored []models.Enrollment
	_, err = database.GetJSON(ctx, store, database.EnrollmentsKey("u1"), &stored)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].EnrolledAt.Equal(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)))
}

func TestProgress(t *testing.T) {
	l, _, _ := newLedger(jane)
	ctx := context.Background()

	_, err := l.Enroll(ctx, "python-programming")
	require.NoError(t, err)
	assert.True(t, l.IsEnrolled(ctx, "python-programming"))
	assert.False(t, l.IsEnrolled(ctx, "c-tutorial"))

	require.NoError(t, l.UpdateProgress(ctx, "python-programming", 60))
	assert.Equal(t, 60, l.Progress(ctx, "python-programming"))

	require.NoError(t, l.UpdateProgress(ctx, "python-programming", 100))
	list, err := l.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Completed)

	require.NoError(t, l.UpdateProgress(ctx, "python-programming", 99))
	list, err = l.List(ctx)
	require.NoError(t, err)
	assert.False(t, list[0].Completed)
}

func TestUpdateProgressWithoutEnrollmentIsVacuous(t *testing.T) {
	l, _, _ := newLedger(jane)
	ctx := context.Background()

	require.NoError(t, l.UpdateProgress(ctx, "c-tutorial", 50))
	assert.False(t, l.IsEnrolled(ctx, "c-tutorial"))
	assert.Zero(t, l.Progress(ctx, "c-tutorial"))
}

func TestLedgersAreScopedPerUser(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()
	a := NewLedger(store, jane)
	b := NewLedger(store, services.StaticUser{ID: "u2"})

	_, err := a.Enroll(ctx, "python-programming")
	require.NoError(t, err)
	assert.False(t, b.IsEnrolled(ctx, "python-programming"))
	assert.ElementsMatch(t, []string{"enrollments_u1"}, store.Keys())
}
