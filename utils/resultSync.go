package utils

import (
	"fmt"
	"log"
	"time"

	"learnhub/models"

	"github.com/go-resty/resty/v2"
)

// ResultPayload is what the result webhook receives.
type ResultPayload struct {
	UserID       string            `json:"user_id"`
	UserEmail    string            `json:"user_email"`
	ExamID       string            `json:"exam_id"`
	CourseID     string            `json:"course_id"`
	PassingScore int               `json:"passing_score"`
	Result       models.ExamResult `json:"result"`
}

// ResultSync posts completed attempts to an external endpoint.
type ResultSync struct {
	client *resty.Client
	url    string
}

func NewResultSync(url string) *ResultSync {
	client := resty.New().
		SetTimeout(10*time.Second).
		SetHeader("Content-Type", "application/json")
	return &ResultSync{client: client, url: url}
}

// Push sends one payload and reports non-2xx responses as errors.
func (s *ResultSync) Push(payload ResultPayload) error {
	resp, err := s.client.R().SetBody(payload).Post(s.url)
	if err != nil {
		return fmt.Errorf("post result: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("post result: status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// OnExamComplete pushes in the background; failures are only logged.
func (s *ResultSync) OnExamComplete(user models.User, exam models.Exam, result models.ExamResult) {
	payload := ResultPayload{
		UserID:       user.ID,
		UserEmail:    user.Email,
		ExamID:       exam.ID,
		CourseID:     exam.CourseID,
		PassingScore: exam.PassingScore,
		Result:       result,
	}
	go func() {
		if err := s.Push(payload); err != nil {
			log.Printf("[RESULT-SYNC] Error syncing result %s: %v", result.ID, err)
			return
		}
		log.Printf("[RESULT-SYNC] Result %s synced for user %s", result.ID, user.ID)
	}()
}
