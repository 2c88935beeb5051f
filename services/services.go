// Package services holds what the per-user services share: the
// not-authenticated error and the source of the signed-in user.
package services

import (
	"errors"

	"learnhub/models"
)

// ErrNotAuthenticated means the action needs a signed-in user and there is none.
var ErrNotAuthenticated = errors.New("not authenticated")

// UserSource reports the signed-in user, if any.
type UserSource interface {
	CurrentUser() (models.User, bool)
}

// StaticUser is a UserSource that always reports the same user.
type StaticUser models.User

func (u StaticUser) CurrentUser() (models.User, bool) {
	return models.User(u), u.ID != ""
}

// Anonymous never has a user.
var Anonymous UserSource = StaticUser{}
