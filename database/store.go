package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is returned by Get when nothing is stored under the key.
	ErrKeyNotFound = errors.New("key not found")
	// ErrDecode marks a stored value that is not valid JSON for the target.
	ErrDecode = errors.New("undecodable value")
)

// Store is a string-keyed blob store. Values are JSON documents.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Persisted keys
const (
	CurrentUserKey     = "currentUser"
	RegisteredUsersKey = "registeredUsers"
)

func EnrollmentsKey(userID string) string {
	return "enrollments_" + userID
}

func ExamResultsKey(userID string) string {
	return "examResults_" + userID
}

// GetJSON decodes the value under key into v. found is false when the key is absent.
func GetJSON(ctx context.Context, s Store, key string, v any) (found bool, err error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w: %w", key, ErrDecode, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
