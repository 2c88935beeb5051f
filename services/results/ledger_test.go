package results

import (
	"context"
	"fmt"
	"testing"
	"time"

	"learnhub/database"
	"learnhub/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jane = services.StaticUser{ID: "u1", Name: "Jane"}

func newLedger(users services.UserSource) *Ledger {
	n := 0
	clock := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	return NewLedger(database.NewMemoryStore(), users,
		WithIDGenerator(func() string { n++; return fmt.Sprintf("r%d", n) }),
		WithClock(func() time.Time { clock = clock.Add(time.Minute); return clock }),
	)
}

func TestSubmitRequiresUser(t *testing.T) {
	l := newLedger(services.Anonymous)
	_, err := l.Submit(context.Background(), "python-exam", 80, true, nil)
	assert.ErrorIs(t, err, services.ErrNotAuthenticated)
	assert.False(t, l.HasPassed(context.Background(), "python-exam"))
	assert.Zero(t, l.BestScore(context.Background(), "python-exam"))
}

func TestSubmitAppends(t *testing.T) {
	l := newLedger(jane)
	ctx := context.Background()

	first, err := l.Submit(ctx, "python-exam", 40, false, map[string]int{"1": 0})
	require.NoError(t, err)
	second, err := l.Submit(ctx, "python-exam", 85, true, map[string]int{"1": 0, "2": 1})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, second.CompletedAt.After(first.CompletedAt))

	list, err := l.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, map[string]int{"1": 0}, list[0].Answers)
}

func TestBestScoreScansAllAttempts(t *testing.T) {
	l := newLedger(jane)
	ctx := context.Background()
	for _, score := range []int{40, 85, 60} {
		_, err := l.Submit(ctx, "python-exam", score, score >= 70, nil)
		require.NoError(t, err)
	}
	_, err := l.Submit(ctx, "blockchain-exam", 100, true, nil)
	require.NoError(t, err)

	assert.Equal(t, 85, l.BestScore(ctx, "python-exam"))
	assert.Len(t, l.Attempts(ctx, "python-exam"), 3)
	assert.Zero(t, l.BestScore(ctx, "other-exam"))
}

func TestLatestAndHasPassedAfterRetake(t *testing.T) {
	l := newLedger(jane)
	ctx := context.Background()

	_, ok := l.Latest(ctx, "python-exam")
	assert.False(t, ok)

	_, err := l.Submit(ctx, "python-exam", 40, false, nil)
	require.NoError(t, err)
	assert.False(t, l.HasPassed(ctx, "python-exam"))

	_, err = l.Submit(ctx, "python-exam", 80, true, nil)
	require.NoError(t, err)

	latest, ok := l.Latest(ctx, "python-exam")
	require.True(t, ok)
	assert.Equal(t, 80, latest.Score)
	assert.True(t, l.HasPassed(ctx, "python-exam"))
}

func TestSubmitStoresEmptyAnswerMap(t *testing.T) {
	l := newLedger(jane)
	r, err := l.Submit(context.Background(), "python-exam", 0, false, nil)
	require.NoError(t, err)
	assert.NotNil(t, r.Answers)
	assert.Empty(t, r.Answers)
}

func TestSubmitCopiesAnswers(t *testing.T) {
	l := newLedger(jane)
	answers := map[string]int{"1": 0}
	r, err := l.Submit(context.Background(), "python-exam", 20, false, answers)
	require.NoError(t, err)
	answers["1"] = 3
	assert.Equal(t, 0, r.Answers["1"])
}
