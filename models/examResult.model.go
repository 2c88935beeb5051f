package models

import "time"

// ExamResult is one completed attempt. Attempts are append-only.
type ExamResult struct {
	ID          string         `json:"id"`
	ExamID      string         `json:"exam_id"`
	Score       int            `json:"score"`
	Passed      bool           `json:"passed"`
	Answers     map[string]int `json:"answers"` // question id -> option index
	CompletedAt time.Time      `json:"completed_at"`
}
