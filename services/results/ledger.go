// Package results is the append-only log of exam attempts for the signed-in user.
package results

import (
	"context"
	"errors"
	"log"
	"maps"
	"time"

	"learnhub/database"
	"learnhub/models"
	"learnhub/services"
	"learnhub/utils"
)

type Ledger struct {
	store database.Store
	users services.UserSource
	newID func() string
	now   func() time.Time
}

type Option func(*Ledger)

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

func WithIDGenerator(fn func() string) Option {
	return func(l *Ledger) { l.newID = fn }
}

func NewLedger(store database.Store, users services.UserSource, opts ...Option) *Ledger {
	l := &Ledger{
		store: store,
		users: users,
		newID: utils.GenerateID,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// List returns every attempt of the user, oldest first.
func (l *Ledger) List(ctx context.Context) ([]models.ExamResult, error) {
	user, ok := l.users.CurrentUser()
	if !ok {
		return nil, services.ErrNotAuthenticated
	}
	list := []models.ExamResult{}
	if _, err := database.GetJSON(ctx, l.store, database.ExamResultsKey(user.ID), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Submit appends a new attempt. Earlier attempts are never overwritten.
func (l *Ledger) Submit(ctx context.Context, examID string, score int, passed bool, answers map[string]int) (models.ExamResult, error) {
	user, ok := l.users.CurrentUser()
	if !ok {
		return models.ExamResult{}, services.ErrNotAuthenticated
	}
	list, err := l.List(ctx)
	if err != nil {
		return models.ExamResult{}, err
	}

	result := models.ExamResult{
		ID:          l.newID(),
		ExamID:      examID,
		Score:       score,
		Passed:      passed,
		Answers:     maps.Clone(answers),
		CompletedAt: l.now().UTC(),
	}
	if result.Answers == nil {
		result.Answers = map[string]int{}
	}
	if err := database.SetJSON(ctx, l.store, database.ExamResultsKey(user.ID), append(list, result)); err != nil {
		return models.ExamResult{}, err
	}
	log.Printf("[RESULTS] User %s scored %d on %s (passed=%t)", user.ID, score, examID, passed)
	return result, nil
}

// Attempts returns the attempts for one exam, oldest first.
func (l *Ledger) Attempts(ctx context.Context, examID string) []models.ExamResult {
	list, err := l.List(ctx)
	if err != nil {
		if !errors.Is(err, services.ErrNotAuthenticated) {
			log.Printf("[RESULTS] Error loading results: %v", err)
		}
		return nil
	}
	out := []models.ExamResult{}
	for _, r := range list {
		if r.ExamID == examID {
			out = append(out, r)
		}
	}
	return out
}

// Latest returns the most recent attempt for the exam.
func (l *Ledger) Latest(ctx context.Context, examID string) (models.ExamResult, bool) {
	attempts := l.Attempts(ctx, examID)
	if len(attempts) == 0 {
		return models.ExamResult{}, false
	}
	return attempts[len(attempts)-1], true
}

// HasPassed reports whether any attempt for the exam passed.
func (l *Ledger) HasPassed(ctx context.Context, examID string) bool {
	for _, r := range l.Attempts(ctx, examID) {
		if r.Passed {
			return true
		}
	}
	return false
}

// BestScore is the highest score over all attempts, 0 when there are none.
func (l *Ledger) BestScore(ctx context.Context, examID string) int {
	best := 0
	for _, r := range l.Attempts(ctx, examID) {
		best = max(best, r.Score)
	}
	return best
}
