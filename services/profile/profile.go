// Package profile summarises a user's learning activity.
package profile

import (
	"context"
	"math"
	"time"

	"learnhub/catalog"
	"learnhub/models"
	"learnhub/services"

	"github.com/jinzhu/now"
)

// HoursPerCourse is the flat estimate of study time per enrolled course.
const HoursPerCourse = 8

type EnrollmentLister interface {
	List(ctx context.Context) ([]models.Enrollment, error)
}

type ResultLister interface {
	List(ctx context.Context) ([]models.ExamResult, error)
}

type EnrolledCourse struct {
	Course     models.Course     `json:"course"`
	Enrollment models.Enrollment `json:"enrollment"`
}

type ExamSummary struct {
	ExamID     string `json:"exam_id"`
	CourseName string `json:"course_name"`
	Attempts   int    `json:"attempts"`
	BestScore  int    `json:"best_score"`
	Passed     bool   `json:"passed"`
}

type Summary struct {
	User             models.User      `json:"user"`
	EnrolledCourses  []EnrolledCourse `json:"enrolled_courses"`
	AverageProgress  int              `json:"average_progress"`
	CompletedCourses int              `json:"completed_courses"`
	PassedExams      int              `json:"passed_exams"`
	EstimatedHours   int              `json:"estimated_hours"`
	AttemptsThisWeek int              `json:"attempts_this_week"`
	Exams            []ExamSummary    `json:"exams"`
}

type Service struct {
	catalog     *catalog.Catalog
	users       services.UserSource
	enrollments EnrollmentLister
	results     ResultLister
	now         func() time.Time
}

func NewService(cat *catalog.Catalog, users services.UserSource, enrollments EnrollmentLister, results ResultLister) *Service {
	return &Service{
		catalog:     cat,
		users:       users,
		enrollments: enrollments,
		results:     results,
		now:         time.Now,
	}
}

// Summary builds the profile of the signed-in user.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	user, ok := s.users.CurrentUser()
	if !ok {
		return Summary{}, services.ErrNotAuthenticated
	}
	enrollments, err := s.enrollments.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	attempts, err := s.results.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		User:            user,
		EnrolledCourses: []EnrolledCourse{},
		Exams:           []ExamSummary{},
	}

	total := 0
	for _, e := range enrollments {
		total += e.Progress
		if e.Completed {
			summary.CompletedCourses++
		}
		// enrollments for courses no longer in the catalog are not listed
		if course, err := s.catalog.CourseByID(e.CourseID); err == nil {
			summary.EnrolledCourses = append(summary.EnrolledCourses, EnrolledCourse{Course: course, Enrollment: e})
		}
	}
	if len(enrollments) > 0 {
		summary.AverageProgress = int(math.Round(float64(total) / float64(len(enrollments))))
	}
	summary.EstimatedHours = len(summary.EnrolledCourses) * HoursPerCourse

	weekStart := now.With(s.now()).BeginningOfWeek()
	for _, r := range attempts {
		if r.Passed {
			summary.PassedExams++
		}
		if !r.CompletedAt.Before(weekStart) {
			summary.AttemptsThisWeek++
		}
	}

	for _, exam := range s.catalog.Exams() {
		es := ExamSummary{ExamID: exam.ID, CourseName: exam.CourseName}
		for _, r := range attempts {
			if r.ExamID != exam.ID {
				continue
			}
			es.Attempts++
			es.BestScore = max(es.BestScore, r.Score)
			es.Passed = es.Passed || r.Passed
		}
		if es.Attempts > 0 {
			summary.Exams = append(summary.Exams, es)
		}
	}
	return summary, nil
}
