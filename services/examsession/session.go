// Package examsession runs timed exam attempts.
//
// A session moves NotStarted -> InProgress -> Completed. While in progress a
// one-second tick counts down from the exam's time limit; reaching zero
// submits whatever has been answered. Completion happens exactly once per
// attempt and always cancels the tick. A completed session can be reset for a
// retake until the user has passed the exam.
package examsession

import (
	"context"
	"errors"
	"fmt"
	"log"
	"maps"
	"sync"
	"time"

	"learnhub/models"
	"learnhub/utils"
)

type State string

const (
	NotStarted State = "NOT_STARTED"
	InProgress State = "IN_PROGRESS"
	Completed  State = "COMPLETED"
)

var (
	ErrAlreadyStarted   = errors.New("exam already started")
	ErrNotInProgress    = errors.New("exam is not in progress")
	ErrNotCompleted     = errors.New("exam is not completed")
	ErrAttemptCompleted = errors.New("attempt already completed, retake to start again")
	ErrIncomplete       = errors.New("all questions must be answered before submitting")
	ErrUnknownQuestion  = errors.New("unknown question")
	ErrInvalidOption    = errors.New("option out of range")
	ErrInvalidIndex     = errors.New("question index out of range")
	ErrRetakeNotAllowed = errors.New("exam already passed")
)

// TickInterval is how often the countdown advances by one second.
const TickInterval = time.Second

// Recorder stores finished attempts and reports past passes.
type Recorder interface {
	Submit(ctx context.Context, examID string, score int, passed bool, answers map[string]int) (models.ExamResult, error)
	HasPassed(ctx context.Context, examID string) bool
}

// CompleteHook runs once after an attempt has been recorded.
type CompleteHook func(user models.User, exam models.Exam, result models.ExamResult)

type Session struct {
	exam      models.Exam
	course    models.Course
	user      models.User
	recorder  Recorder
	scheduler utils.Scheduler
	hooks     []CompleteHook

	mu        sync.Mutex
	state     State
	attempt   int
	answers   map[string]int
	index     int
	remaining int
	cancel    utils.Cancel
	timedOut  bool
	score     int
	passed    bool
	result    *models.ExamResult
}

func newSession(exam models.Exam, course models.Course, user models.User, recorder Recorder, scheduler utils.Scheduler, hooks []CompleteHook) *Session {
	return &Session{
		exam:      exam,
		course:    course,
		user:      user,
		recorder:  recorder,
		scheduler: scheduler,
		hooks:     hooks,
		state:     NotStarted,
		answers:   make(map[string]int),
	}
}

// Score grades answers against the exam, rounding half up.
func Score(exam models.Exam, answers map[string]int) (score int, passed bool) {
	total := len(exam.Questions)
	if total == 0 {
		return 0, exam.PassingScore <= 0
	}
	correct := 0
	for _, q := range exam.Questions {
		if a, ok := answers[q.ID]; ok && a == q.CorrectAnswer {
			correct++
		}
	}
	score = (200*correct + total) / (2 * total)
	return score, score >= exam.PassingScore
}

func (s *Session) Exam() models.Exam     { return s.exam }
func (s *Session) Course() models.Course { return s.course }
func (s *Session) User() models.User     { return s.user }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start arms the countdown and clears any previous selections.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case InProgress:
		return ErrAlreadyStarted
	case Completed:
		return ErrAttemptCompleted
	}

	s.stopTimerLocked()
	s.attempt++
	s.state = InProgress
	s.answers = make(map[string]int)
	s.index = 0
	s.remaining = s.exam.TimeLimit * 60
	s.timedOut = false
	s.score, s.passed, s.result = 0, false, nil

	attempt := s.attempt
	s.cancel = s.scheduler.Schedule(TickInterval, func() { s.tick(attempt) })
	log.Printf("[EXAM] User %s started %s (%ds)", s.user.ID, s.exam.ID, s.remaining)
	return nil
}

func (s *Session) stopTimerLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) tick(attempt int) {
	s.mu.Lock()
	if s.state != InProgress || s.attempt != attempt {
		s.mu.Unlock()
		return
	}
	s.remaining--
	if s.remaining > 0 {
		s.mu.Unlock()
		return
	}
	s.remaining = 0
	s.timedOut = true
	log.Printf("[EXAM] Time is up for user %s on %s", s.user.ID, s.exam.ID)
	result, err := s.completeLocked(context.Background())
	s.mu.Unlock()

	if err != nil {
		log.Printf("[EXAM] Error recording timed out attempt: %v", err)
		return
	}
	s.fireHooks(result)
}

// completeLocked grades and records the attempt. The caller holds mu.
func (s *Session) completeLocked(ctx context.Context) (models.ExamResult, error) {
	s.stopTimerLocked()
	s.state = Completed
	s.score, s.passed = Score(s.exam, s.answers)

	result, err := s.recorder.Submit(ctx, s.exam.ID, s.score, s.passed, maps.Clone(s.answers))
	if err != nil {
		return models.ExamResult{}, fmt.Errorf("record attempt: %w", err)
	}
	s.result = &result
	return result, nil
}

func (s *Session) fireHooks(result models.ExamResult) {
	for _, hook := range s.hooks {
		hook(s.user, s.exam, result)
	}
}

func (s *Session) question(id string) (models.Question, bool) {
	for _, q := range s.exam.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return models.Question{}, false
}

// Select records or overwrites the answer to a question.
func (s *Session) Select(questionID string, option int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != InProgress {
		return ErrNotInProgress
	}
	q, ok := s.question(questionID)
	if !ok {
		return ErrUnknownQuestion
	}
	if option < 0 || option >= len(q.Options) {
		return ErrInvalidOption
	}
	s.answers[questionID] = option
	return nil
}

func (s *Session) Next() error {
	return s.move(func(i int) (int, error) { return min(i+1, len(s.exam.Questions)-1), nil })
}

func (s *Session) Previous() error {
	return s.move(func(i int) (int, error) { return max(i-1, 0), nil })
}

// Jump shows the question at index.
func (s *Session) Jump(index int) error {
	return s.move(func(int) (int, error) {
		if index < 0 || index >= len(s.exam.Questions) {
			return 0, ErrInvalidIndex
		}
		return index, nil
	})
}

// move checks the state before the target index.
func (s *Session) move(to func(int) (int, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != InProgress {
		return ErrNotInProgress
	}
	next, err := to(s.index)
	if err != nil {
		return err
	}
	s.index = next
	return nil
}

func (s *Session) allAnsweredLocked() bool {
	for _, q := range s.exam.Questions {
		if _, ok := s.answers[q.ID]; !ok {
			return false
		}
	}
	return true
}

// CanSubmit is true once every question has an answer.
func (s *Session) CanSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == InProgress && s.allAnsweredLocked()
}

// Submit completes the attempt. The session is completed even when recording
// the result fails; the error is returned.
func (s *Session) Submit(ctx context.Context) (models.ExamResult, error) {
	s.mu.Lock()
	if s.state != InProgress {
		s.mu.Unlock()
		return models.ExamResult{}, ErrNotInProgress
	}
	if !s.allAnsweredLocked() {
		s.mu.Unlock()
		return models.ExamResult{}, ErrIncomplete
	}
	result, err := s.completeLocked(ctx)
	s.mu.Unlock()

	if err != nil {
		return models.ExamResult{}, err
	}
	s.fireHooks(result)
	return result, nil
}

// CanRetake is true for a completed session whose user has never passed the exam.
func (s *Session) CanRetake(ctx context.Context) bool {
	if s.State() != Completed {
		return false
	}
	return !s.recorder.HasPassed(ctx, s.exam.ID)
}

// Retake resets a completed session so a new attempt can be started.
func (s *Session) Retake(ctx context.Context) error {
	if s.State() != Completed {
		return ErrNotCompleted
	}
	if s.recorder.HasPassed(ctx, s.exam.ID) {
		return ErrRetakeNotAllowed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Completed {
		return ErrNotCompleted
	}
	s.resetLocked()
	return nil
}

func (s *Session) resetLocked() {
	s.stopTimerLocked()
	s.state = NotStarted
	s.answers = make(map[string]int)
	s.index = 0
	s.remaining = 0
	s.timedOut = false
	s.score, s.passed, s.result = 0, false, nil
}

// Close tears down the timer. An attempt in progress is dropped without a result.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
	if s.state == InProgress {
		s.attempt++
		s.resetLocked()
	}
}

// Snapshot is what a client needs to render the session.
type Snapshot struct {
	ExamID          string                 `json:"exam_id"`
	CourseID        string                 `json:"course_id"`
	CourseName      string                 `json:"course_name"`
	State           State                  `json:"state"`
	TimeLimit       int                    `json:"time_limit"`
	PassingScore    int                    `json:"passing_score"`
	TotalQuestions  int                    `json:"total_questions"`
	CurrentIndex    int                    `json:"current_index"`
	CurrentQuestion *models.PublicQuestion `json:"current_question,omitempty"`
	TimeRemaining   int                    `json:"time_remaining"`
	Clock           string                 `json:"clock"`
	Answered        []bool                 `json:"answered"`
	Answers         map[string]int         `json:"answers"`
	AnsweredCount   int                    `json:"answered_count"`
	CanSubmit       bool                   `json:"can_submit"`
	Score           int                    `json:"score"`
	Passed          bool                   `json:"passed"`
	TimedOut        bool                   `json:"timed_out"`
	Result          *models.ExamResult     `json:"result,omitempty"`
	CanRetake       bool                   `json:"can_retake"`
}

func (s *Session) Snapshot(ctx context.Context) Snapshot {
	s.mu.Lock()
	snap := Snapshot{
		ExamID:         s.exam.ID,
		CourseID:       s.course.ID,
		CourseName:     s.exam.CourseName,
		State:          s.state,
		TimeLimit:      s.exam.TimeLimit,
		PassingScore:   s.exam.PassingScore,
		TotalQuestions: len(s.exam.Questions),
		CurrentIndex:   s.index,
		TimeRemaining:  s.remaining,
		Clock:          FormatClock(s.remaining),
		Answered:       make([]bool, len(s.exam.Questions)),
		Answers:        maps.Clone(s.answers),
		Score:          s.score,
		Passed:         s.passed,
		TimedOut:       s.timedOut,
		Result:         s.result,
	}
	for i, q := range s.exam.Questions {
		if _, ok := s.answers[q.ID]; ok {
			snap.Answered[i] = true
			snap.AnsweredCount++
		}
	}
	if s.state == InProgress && len(s.exam.Questions) > 0 {
		q := s.exam.Questions[s.index].Public()
		snap.CurrentQuestion = &q
		snap.CanSubmit = snap.AnsweredCount == len(s.exam.Questions)
	}
	s.mu.Unlock()

	if snap.State == Completed {
		snap.CanRetake = !s.recorder.HasPassed(ctx, s.exam.ID)
	}
	return snap
}

// FormatClock renders seconds as m:ss.
func FormatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
