package catalog

import (
	"testing"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsValid(t *testing.T) {
	require.NoError(t, New().Validate())
}

func TestValidateRejectsBadAnswerKey(t *testing.T) {
	c := NewWith(
		[]models.Course{{ID: "c1"}},
		[]models.Exam{
			{ID: "e1", CourseID: "c1", Questions: []models.Question{{ID: "1", Options: []string{"a", "b"}, CorrectAnswer: 2}}},
			{ID: "e2", CourseID: "missing", Questions: []models.Question{{ID: "1", Options: []string{"a"}, CorrectAnswer: 0}}},
		},
	)
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exam e1 question 1")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCoursesFilter(t *testing.T) {
	c := New()

	assert.Len(t, c.Courses(CourseFilter{}), 11)
	assert.Len(t, c.Courses(CourseFilter{Category: All, Level: All}), 11)

	beginnerIT := c.Courses(CourseFilter{Category: "IT & Engineering", Level: models.LevelBeginner})
	require.Len(t, beginnerIT, 2)
	assert.Equal(t, "python-programming", beginnerIT[0].ID)
	assert.Equal(t, "c-tutorial", beginnerIT[1].ID)

	assert.Empty(t, c.Courses(CourseFilter{Category: "Cooking"}))
}

func TestCategoriesAndGrouping(t *testing.T) {
	c := New()
	assert.Equal(t, []string{
		All,
		"IT & Engineering",
		"Business & Entrepreneurship",
		"Core to Future Tech",
		"Language + Soft Skill",
		"Yolo Extra Courses",
	}, c.Categories())

	groups := GroupByCategory(c.Courses(CourseFilter{Level: models.LevelAdvanced}))
	require.Len(t, groups, 2)
	assert.Equal(t, "IT & Engineering", groups[0].Category)
	assert.Equal(t, "embedded-c", groups[0].Courses[0].ID)
	assert.Equal(t, "quantum-computing", groups[1].Courses[0].ID)
}

func TestExamForCourse(t *testing.T) {
	c := New()

	exam, course, err := c.ExamForCourse("python-programming")
	require.NoError(t, err)
	assert.Equal(t, "python-exam", exam.ID)
	assert.Equal(t, "Python Programming", course.Title)

	_, _, err = c.ExamForCourse("spoken-english")
	assert.ErrorIs(t, err, ErrExamNotFound)

	_, _, err = c.ExamForCourse("nope")
	assert.ErrorIs(t, err, ErrCourseNotFound)

	_, err = c.ExamByID("blockchain-exam")
	assert.NoError(t, err)
}

func TestReading(t *testing.T) {
	c := New()
	assert.Len(t, c.Reading(All), 6)
	books := c.Reading(models.ReadingBooks)
	require.Len(t, books, 2)
	assert.Equal(t, "books-1", books[0].ID)
	assert.Len(t, c.Jobs(), 4)
	assert.Equal(t, 15420, c.Stats().ActiveStudents)
}
