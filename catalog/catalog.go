// Package catalog holds the static, read-only reference data: courses, exams,
// reading items, jobs and community stats. It is seeded once at process start.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"learnhub/models"
)

// All matches every value of a filter field.
const All = "All"

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrExamNotFound   = errors.New("exam not found")
)

type Catalog struct {
	courses []models.Course
	exams   []models.Exam
	reading []models.ReadingItem
	jobs    []models.Job
	stats   models.CommunityStats
}

// CourseFilter narrows Courses. Empty or All fields match everything.
type CourseFilter struct {
	Category string
	Level    string
}

// New returns the seeded catalog.
func New() *Catalog {
	return &Catalog{
		courses: seedCourses(),
		exams:   seedExams(),
		reading: seedReading(),
		jobs:    seedJobs(),
		stats:   seedStats(),
	}
}

// NewWith builds a catalog from the given data. Used by tests and fixtures.
func NewWith(courses []models.Course, exams []models.Exam) *Catalog {
	return &Catalog{courses: courses, exams: exams}
}

// Validate checks every question's answer key and that every exam has a course.
func (c *Catalog) Validate() error {
	var errs []error
	for _, exam := range c.exams {
		if _, err := c.CourseByID(exam.CourseID); err != nil {
			errs = append(errs, fmt.Errorf("exam %s: course %s: %w", exam.ID, exam.CourseID, err))
		}
		if len(exam.Questions) == 0 {
			errs = append(errs, fmt.Errorf("exam %s has no questions", exam.ID))
		}
		for _, q := range exam.Questions {
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
				errs = append(errs, fmt.Errorf("exam %s question %s: correct answer %d out of range", exam.ID, q.ID, q.CorrectAnswer))
			}
		}
	}
	return errors.Join(errs...)
}

func matches(want, got string) bool {
	return want == "" || want == All || want == got
}

func (c *Catalog) Courses(filter CourseFilter) []models.Course {
	out := make([]models.Course, 0, len(c.courses))
	for _, course := range c.courses {
		if matches(filter.Category, course.Category) && matches(filter.Level, course.Level) {
			out = append(out, course)
		}
	}
	return out
}

// Categories returns All followed by each course category in catalog order.
func (c *Catalog) Categories() []string {
	out := []string{All}
	for _, course := range c.courses {
		if !slices.Contains(out, course.Category) {
			out = append(out, course.Category)
		}
	}
	return out
}

func (c *Catalog) Levels() []string {
	return []string{All, models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced}
}

// GroupByCategory groups courses by category, keeping first-seen order.
func GroupByCategory(courses []models.Course) []models.CourseGroup {
	groups := []models.CourseGroup{}
	index := make(map[string]int)
	for _, course := range courses {
		i, ok := index[course.Category]
		if !ok {
			i = len(groups)
			index[course.Category] = i
			groups = append(groups, models.CourseGroup{Category: course.Category})
		}
		groups[i].Courses = append(groups[i].Courses, course)
	}
	return groups
}

func (c *Catalog) CourseByID(id string) (models.Course, error) {
	for _, course := range c.courses {
		if course.ID == id {
			return course, nil
		}
	}
	return models.Course{}, ErrCourseNotFound
}

func (c *Catalog) Exams() []models.Exam {
	return slices.Clone(c.exams)
}

func (c *Catalog) ExamByID(id string) (models.Exam, error) {
	for _, exam := range c.exams {
		if exam.ID == id {
			return exam, nil
		}
	}
	return models.Exam{}, ErrExamNotFound
}

// ExamForCourse looks up a course's exam. Both the exam and the course must exist.
func (c *Catalog) ExamForCourse(courseID string) (models.Exam, models.Course, error) {
	course, err := c.CourseByID(courseID)
	if err != nil {
		return models.Exam{}, models.Course{}, err
	}
	for _, exam := range c.exams {
		if exam.CourseID == courseID {
			return exam, course, nil
		}
	}
	return models.Exam{}, models.Course{}, ErrExamNotFound
}

func (c *Catalog) ReadingCategories() []string {
	return []string{All, models.ReadingNews, models.ReadingInternational, models.ReadingBooks}
}

func (c *Catalog) Reading(category string) []models.ReadingItem {
	out := make([]models.ReadingItem, 0, len(c.reading))
	for _, item := range c.reading {
		if matches(category, item.Category) {
			out = append(out, item)
		}
	}
	return out
}

func (c *Catalog) Jobs() []models.Job {
	return slices.Clone(c.jobs)
}

func (c *Catalog) Stats() models.CommunityStats {
	return c.stats
}
