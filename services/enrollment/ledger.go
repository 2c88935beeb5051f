// Package enrollment records which courses the signed-in user is enrolled in
// and how far along they are.
package enrollment

import (
	"context"
	"errors"
	"log"
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

func (l *Ledger) load(ctx context.Context, userID string) ([]models.Enrollment, error) {
	list := []models.Enrollment{}
	if _, err := database.GetJSON(ctx, l.store, database.EnrollmentsKey(userID), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (l *Ledger) save(ctx context.Context, userID string, list []models.Enrollment) error {
	return database.SetJSON(ctx, l.store, database.EnrollmentsKey(userID), list)
}

// List returns the user's enrollments in stored order.
func (l *Ledger) List(ctx context.Context) ([]models.Enrollment, error) {
	user, ok := l.users.CurrentUser()
	if !ok {
		return nil, services.ErrNotAuthenticated
	}
	return l.load(ctx, user.ID)
}

func (l *Ledger) find(ctx context.Context, courseID string) (models.Enrollment, bool) {
	list, err := l.List(ctx)
	if err != nil {
		if !errors.Is(err, services.ErrNotAuthenticated) {
			log.Printf("[ENROLLMENT] Error loading enrollments: %v", err)
		}
		return models.Enrollment{}, false
	}
	for _, e := range list {
		if e.CourseID == courseID {
			return e, true
		}
	}
	return models.Enrollment{}, false
}

// Enroll creates an enrollment at 0%. Enrolling again returns the existing record unchanged.
func (l *Ledger) Enroll(ctx context.Context, courseID string) (models.Enrollment, error) {
	user, ok := l.users.CurrentUser()
	if !ok {
		return models.Enrollment{}, services.ErrNotAuthenticated
	}
	list, err := l.load(ctx, user.ID)
	if err != nil {
		return models.Enrollment{}, err
	}
	for _, e := range list {
		if e.CourseID == courseID {
			return e, nil
		}
	}

	enrollment := models.Enrollment{
		ID:         l.newID(),
		UserID:     user.ID,
		CourseID:   courseID,
		EnrolledAt: l.now().UTC(),
	}
	if err := l.save(ctx, user.ID, append(list, enrollment)); err != nil {
		return models.Enrollment{}, err
	}
	log.Printf("[ENROLLMENT] User %s enrolled in %s", user.ID, courseID)
	return enrollment, nil
}

func (l *Ledger) IsEnrolled(ctx context.Context, courseID string) bool {
	_, ok := l.find(ctx, courseID)
	return ok
}

// Progress is 0 when there is no enrollment.
func (l *Ledger) Progress(ctx context.Context, courseID string) int {
	e, _ := l.find(ctx, courseID)
	return e.Progress
}

// UpdateProgress sets the percentage and completion flag. Updating a course
// the user is not enrolled in changes nothing and still succeeds.
func (l *Ledger) UpdateProgress(ctx context.Context, courseID string, percent int) error {
	user, ok := l.users.CurrentUser()
	if !ok {
		return services.ErrNotAuthenticated
	}
	list, err := l.load(ctx, user.ID)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].CourseID == courseID {
			list[i].Progress = percent
			list[i].Completed = percent >= 100
		}
	}
	return l.save(ctx, user.ID, list)
}
