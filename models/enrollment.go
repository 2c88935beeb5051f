package models

import "time"

// Enrollment tracks a user's progress in a course. One per (user, course).
type Enrollment struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	CourseID   string    `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
	Progress   int       `json:"progress"`  // percent
	Completed  bool      `json:"completed"` // progress >= 100
}
