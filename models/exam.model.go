package models

// Question is a single multiple choice question.
type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"` // index into Options
}

// Exam is the final exam of a course.
type Exam struct {
	ID           string     `json:"id"`
	CourseID     string     `json:"course_id"`
	CourseName   string     `json:"course_name"`
	Questions    []Question `json:"questions"`
	TimeLimit    int        `json:"time_limit"`    // minutes
	PassingScore int        `json:"passing_score"` // percent
}

// PublicQuestion is a question without its answer key.
type PublicQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Public strips the answer key.
func (q Question) Public() PublicQuestion {
	return PublicQuestion{ID: q.ID, Question: q.Question, Options: q.Options}
}

// ExamInfo describes an exam without its questions.
type ExamInfo struct {
	ID             string `json:"id"`
	CourseID       string `json:"course_id"`
	CourseName     string `json:"course_name"`
	TimeLimit      int    `json:"time_limit"`
	PassingScore   int    `json:"passing_score"`
	TotalQuestions int    `json:"total_questions"`
}

func (e Exam) Info() ExamInfo {
	return ExamInfo{
		ID:             e.ID,
		CourseID:       e.CourseID,
		CourseName:     e.CourseName,
		TimeLimit:      e.TimeLimit,
		PassingScore:   e.PassingScore,
		TotalQuestions: len(e.Questions),
	}
}
