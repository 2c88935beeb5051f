package examsession

import (
	"context"
	"sync"
	"testing"

	"learnhub/catalog"
	"learnhub/database"
	"learnhub/models"
	"learnhub/services"
	"learnhub/services/results"
	"learnhub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jane = models.User{ID: "u1", Name: "Jane", Email: "jane@x.com"}

// python-exam answer key: 1->0, 2->1, 3->0, 4->2, 5->1
var pythonKey = map[string]int{"1": 0, "2": 1, "3": 0, "4": 2, "5": 1}

type fixture struct {
	manager   *Manager
	scheduler *utils.ManualScheduler
	ledger    *results.Ledger
	store     *database.MemoryStore
}

func newFixture(t *testing.T, users services.UserSource, cat *catalog.Catalog) *fixture {
	t.Helper()
	store := database.NewMemoryStore()
	scheduler := utils.NewManualScheduler()
	f := &fixture{
		scheduler: scheduler,
		store:     store,
		ledger:    results.NewLedger(store, services.StaticUser(jane)),
	}
	f.manager = NewManager(cat, users, func(u models.User) Recorder {
		return results.NewLedger(store, services.StaticUser(u))
	}, scheduler)
	return f
}

func (f *fixture) open(t *testing.T, courseID string) *Session {
	t.Helper()
	s, err := f.manager.Open(courseID)
	require.NoError(t, err)
	return s
}

func answerAll(t *testing.T, s *Session, answers map[string]int) {
	t.Helper()
	for q, a := range answers {
		require.NoError(t, s.Select(q, a))
	}
}

func TestScore(t *testing.T) {
	exam, err := catalog.New().ExamByID("python-exam")
	require.NoError(t, err)

	cases := []struct {
		name    string
		answers map[string]int
		score   int
		passed  bool
	}{
		{"all correct", pythonKey, 100, true},
		{"four of five", map[string]int{"1": 0, "2": 1, "3": 0, "4": 2, "5": 0}, 80, true},
		{"three of five", map[string]int{"1": 0, "2": 1, "3": 0, "4": 0, "5": 0}, 60, false},
		{"none answered", map[string]int{}, 0, false},
		{"partial answers", map[string]int{"1": 0}, 20, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, passed := Score(exam, tc.answers)
			assert.Equal(t, tc.score, score)
			assert.Equal(t, tc.passed, passed)
		})
	}
}

func TestScoreRoundsHalfUp(t *testing.T) {
	exam := models.Exam{PassingScore: 67}
	for i := 0; i < 3; i++ {
		exam.Questions = append(exam.Questions, models.Question{ID: string(rune('a' + i)), Options: []string{"x", "y"}})
	}
	score, passed := Score(exam, map[string]int{"a": 0, "b": 0})
	assert.Equal(t, 67, score)
	assert.True(t, passed)

	score, _ = Score(exam, map[string]int{"a": 0})
	assert.Equal(t, 33, score)

	eighths := models.Exam{}
	for i := 0; i < 8; i++ {
		eighths.Questions = append(eighths.Questions, models.Question{ID: string(rune('a' + i)), Options: []string{"x"}})
	}
	score, _ = Score(eighths, map[string]int{"a": 0})
	assert.Equal(t, 13, score)
}

func TestOpenErrors(t *testing.T) {
	f := newFixture(t, services.Anonymous, catalog.New())
	_, err := f.manager.Open("python-programming")
	assert.ErrorIs(t, err, services.ErrNotAuthenticated)

	f = newFixture(t, services.StaticUser(jane), catalog.New())
	_, err = f.manager.Open("missing-course")
	assert.ErrorIs(t, err, catalog.ErrCourseNotFound)
	_, err = f.manager.Open("spoken-english")
	assert.ErrorIs(t, err, catalog.ErrExamNotFound)
	assert.Zero(t, f.manager.Len())
}

func TestOpenReusesSession(t *testing.T) {
	f := newFixture(t, services.StaticUser(jane), catalog.New())
	a := f.open(t, "python-programming")
	b := f.open(t, "python-programming")
	assert.Same(t, a, b)
	assert.Equal(t, NotStarted, a.State())
	assert.Equal(t, "python-exam", a.Exam().ID)
	assert.Equal(t, "Python Programming", a.Course().Title)
}

func TestStartArmsCountdown(t *testing.T) {
	f := newFixture(t, services.StaticUser(jane), catalog.New())
	s := f.open(t, "python-programming")

	require.NoError(t, s.Start())
	assert.ErrorIs(t, s.Start(), ErrAlreadyStarted)
	assert.Equal(t, 1, f.scheduler.Active())

	snap := s.Snapshot(context.Background())
	assert.Equal(t, InProgress, snap.State)
	assert.Equal(t, 3600, snap.TimeRemaining)
	assert.Equal(t, "60:00", snap.Clock)
	require.NotNil(t, snap.CurrentQuestion)
	assert.Equal(t, "1", snap.CurrentQuestion.ID)

	f.scheduler.Fire(61)
	snap = s.Snapshot(context.Background())
	assert.Equal(t, 3539, snap.TimeRemaining)
	assert.Equal(t, "58:59", snap.Clock)
}

func TestSelectAndNavigate(t *testing.T) {
	f := newFixture(t, services.StaticUser(jane), catalog.New())
	s := f.open(t, "python-programming")

	assert.ErrorIs(t, s.Select("1", 0), ErrNotInProgress)
	assert.ErrorIs(t, s.Next(), ErrNotInProgress)
	assert.ErrorIs(t, s.Jump(99), ErrNotInProgress)
	require.NoError(t, s.Start())

	assert.ErrorIs(t, s.Select("42", 0), ErrUnknownQuestion)
	assert.ErrorIs(t, s.Select("1", 4), ErrInvalidOption)
	assert.ErrorIs(t, s.Select("1", -1), ErrInvalidOption)

	require.NoError(t, s.Select("1", 2))
	require.NoError(t, s.Select("1", 0))

	require.NoError(t, s.Previous())
	assert.Equal(t, 0, s.Snapshot(context.Background()).CurrentIndex)
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Next())
	}
	assert.Equal(t, 4, s.Snapshot(context.Background()).CurrentIndex)
	require.NoError(t, s.Jump(2))
	assert.ErrorIs(t, s.Jump(5), ErrInvalidIndex)

	snap := s.Snapshot(context.Background())
	assert.Equal(t, 2, snap.CurrentIndex)
	assert.Equal(t, []bool{true, false, false, false, false}, snap.Answered)
	assert.Equal(t, map[string]int{"1": 0}, snap.Answers)
	assert.False(t, snap.CanSubmit)
}

func TestSubmitRequiresAllAnswers(t *testing.T) {
	f := newFixture(t, services.StaticUser(jane), catalog.New())
	s := f.open(t, "python-programming")
	ctx := context.Background()

	_, err := s.Submit(ctx)
	assert.ErrorIs(t, err, ErrNotInProgress)

	require.NoError(t, s.Start())
	require.NoError(t, s.Select("1", 0))
	_, err = s.Submit(ctx)
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.False(t, s.CanSubmit())
	assert.Empty(t, f.ledger.Attempts(ctx, "python-exam"))
}

func TestSubmitScoresAndRecords(t *testing.T) {
	f := newFixture(t, services.StaticUser(jane), catalog.New())
	s := f.open(t, "python-programming")
	ctx := context.Background()

	var hooked []models.ExamResult
	s.hooks = append(s.hooks, func(_ models.User, _ models.Exam, r models.ExamResult) { hooked = append(hooked, r) })

	require.NoError(t, s.Start())
	answerAll(t, s, map[string]int{"1": 0, "2": 1, "3": 0, "4": 2, "5": 0})
	assert.True(t, s.CanSubmit())

	result, err := s.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 80, result.Score)
	assert.True(t, result.Passed)
	assert.Equal(t, "python-exam", result.ExamID)
	assert.Equal(t, 0, f.scheduler.Active())

	snap := s.Snapshot(ctx)
	assert.Equal(t, Completed, snap.State)
	assert.Equal(t, 80, snap.Score)
	assert.False(t, snap.CanRetake)
	assert.Nil(t, snap.CurrentQuestion)
	assert.Len(t, hooked, 1)

	_, err = s.Submit(ctx)
	assert.ErrorIs(t, err, ErrNotInProgress)
	assert.ErrorIs(t, s.Start(), ErrAttemptCompleted)
	assert.Len(t, f.ledger.Attempts(ctx, "python-exam"), 1)
}

func TestTimeoutWithNoAnswers(t *testing.T) {
	f := newFixture(t, services.StaticUser(jane), catalog.New())
	s := f.open(t, "blockchain-basics")
	ctx := context.Background()

	require.NoError(t, s.Start())
	f.scheduler.Fire(45*60 - 1)
	assert.Equal(t, InProgress, s.State())

	f.scheduler.Fire(1)
	snap := s.Snapshot(ctx)
	assert.Equal(t, Completed, snap.State)
	assert.True(t, snap.TimedOut)
	assert.Zero(t, snap.TimeRemaining)
	assert.Zero(t, snap.Score)
	assert.False(t, snap.Passed)
	assert.Equal(t, 0, f.scheduler.Active())

	attempts := f.ledger.Attempts(ctx, "blockchain-exam")
	require.Len(t, attempts, 1)
	assert.Empty(t, attempts[0].Answers)
}

func TestTimeoutSubmitsAnsweredSubsetOnce(t *testing.T) {
	f := newFixture(t, services.StaticUser(jane), catalog.New())
	s := f.open(t, "blockchain-basics")
	ctx := context.Background()

	var hooks int
	s.hooks = append(s.hooks, func(models.User, models.Exam, models.ExamResult) { hooks++ })

	require.NoError(t, s.Start())
	require.NoError(t, s.Select("1", 1))
	require.NoError(t, s.Select("2", 1))

	// a stale callback firing after completion must not submit again
	stale := func() { s.tick(s.attempt) }
	f.scheduler.Fire(45 * 60)
	stale()
	f.scheduler.Fire(10)

	attempts := f.ledger.Attempts(ctx, "blockchain-exam")
	require.Len(t, attempts, 1)
	assert.Equal(t, 67, attempts[0].Score)
	assert.False(t, attempts[0].Passed)
	assert.Equal(t, 1, hooks)
}

func TestManualSubmitRacesTimeout(t *testing.T) {
	cat := catalog.NewWith(
		[]models.Course{{ID: "quick"}},
		[]models.Exam{{ID: "quick-exam", CourseID: "quick", TimeLimit: 0, PassingScore: 50,
			Questions: []models.Question{{ID: "1", Options: []string{"a", "b"}, CorrectAnswer: 1}}}},
	)
	for i := 0; i < 50; i++ {
		f := newFixture(t, services.StaticUser(jane), cat)
		s := f.open(t, "quick")
		require.NoError(t, s.Start())
		require.NoError(t, s.Select("1", 1))

		var wg sync.WaitGroup
		wg.Add(2)
		go func() { defer wg.Done(); f.scheduler.Fire(1) }()
		go func() { defer wg.Done(); _, _ = s.Submit(context.Background()) }()
		wg.Wait()

		assert.Len(t, f.ledger.Attempts(context.Background(), "quick-exam"), 1)
		assert.Equal(t, Completed, s.State())
	}
}

func TestRetake(t *testing.T) {
	f := newFixture(t, services.StaticUser(jane), catalog.New())
	s := f.open(t, "python-programming")
	ctx := context.Background()

	assert.ErrorIs(t, s.Retake(ctx), ErrNotCompleted)

	require.NoError(t, s.Start())
	answerAll(t, s, map[string]int{"1": 3, "2": 3, "3": 3, "4": 3, "5": 3})
	failed, err := s.Submit(ctx)
	require.NoError(t, err)
	assert.False(t, failed.Passed)
	assert.True(t, s.CanRetake(ctx))

	require.NoError(t, s.Retake(ctx))
	snap := s.Snapshot(ctx)
	assert.Equal(t, NotStarted, snap.State)
	assert.Empty(t, snap.Answers)
	assert.Zero(t, snap.CurrentIndex)

	require.NoError(t, s.Start())
	answerAll(t, s, pythonKey)
	passed, err := s.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, passed.Score)
	assert.NotEqual(t, failed.ID, passed.ID)

	assert.False(t, s.CanRetake(ctx))
	assert.ErrorIs(t, s.Retake(ctx), ErrRetakeNotAllowed)
	assert.True(t, f.ledger.HasPassed(ctx, "python-exam"))
	assert.Equal(t, 100, f.ledger.BestScore(ctx, "python-exam"))
	assert.Len(t, f.ledger.Attempts(ctx, "python-exam"), 2)
}

func TestRetakeBlockedByEarlierPass(t *testing.T) {
	f := newFixture(t, services.StaticUser(jane), catalog.New())
	ctx := context.Background()
	_, err := f.ledger.Submit(ctx, "python-exam", 90, true, pythonKey)
	require.NoError(t, err)

	s := f.open(t, "python-programming")
	require.NoError(t, s.Start())
	f.scheduler.Fire(3600)
	assert.Equal(t, Completed, s.State())
	assert.ErrorIs(t, s.Retake(ctx), ErrRetakeNotAllowed)
}

func TestDiscardTearsDownTimers(t *testing.T) {
	f := newFixture(t, services.StaticUser(jane), catalog.New())
	a := f.open(t, "python-programming")
	b := f.open(t, "blockchain-basics")
	require.NoError(t, a.Start())
	require.NoError(t, b.Start())
	assert.Equal(t, 2, f.scheduler.Active())

	f.manager.Discard(jane.ID, "python-programming")
	assert.Equal(t, 1, f.scheduler.Active())
	assert.Equal(t, NotStarted, a.State())
	_, ok := f.manager.Lookup(jane.ID, "python-programming")
	assert.False(t, ok)

	f.manager.DiscardUser("someone-else")
	assert.Equal(t, 1, f.manager.Len())

	f.manager.DiscardUser(jane.ID)
	assert.Equal(t, 0, f.scheduler.Active())
	assert.Zero(t, f.manager.Len())
	assert.Empty(t, f.ledger.Attempts(context.Background(), "blockchain-exam"))
}

func TestManagerHooks(t *testing.T) {
	f := newFixture(t, services.StaticUser(jane), catalog.New())
	var got []string
	f.manager.OnComplete(func(u models.User, e models.Exam, r models.ExamResult) {
		got = append(got, u.ID+":"+e.ID)
	})
	s := f.open(t, "blockchain-basics")
	require.NoError(t, s.Start())
	f.scheduler.Fire(45 * 60)
	assert.Equal(t, []string{"u1:blockchain-exam"}, got)

	f.manager.DiscardAll()
	assert.Zero(t, f.manager.Len())
}

func TestRecordingFailureStillCompletes(t *testing.T) {
	store := database.NewMemoryStore()
	scheduler := utils.NewManualScheduler()
	m := NewManager(catalog.New(), services.StaticUser(jane), func(models.User) Recorder {
		return results.NewLedger(store, services.Anonymous)
	}, scheduler)

	s, err := m.Open("blockchain-basics")
	require.NoError(t, err)
	require.NoError(t, s.Start())
	answerAll(t, s, map[string]int{"1": 1, "2": 1, "3": 1})
	_, err = s.Submit(context.Background())
	assert.ErrorIs(t, err, services.ErrNotAuthenticated)
	assert.Equal(t, Completed, s.State())
	assert.Equal(t, 0, scheduler.Active())
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "0:00", FormatClock(0))
	assert.Equal(t, "1:05", FormatClock(65))
	assert.Equal(t, "45:00", FormatClock(2700))
}
