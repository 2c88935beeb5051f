package utils

import (
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Cancel stops a scheduled callback. Calling it more than once is a no-op.
type Cancel func()

// Scheduler runs a callback every interval until cancelled.
type Scheduler interface {
	Schedule(interval time.Duration, fn func()) Cancel
}

// CronScheduler schedules callbacks on a robfig/cron runner.
type CronScheduler struct {
	c *cron.Cron
}

// NewCronScheduler starts the runner. Stop it with Stop.
func NewCronScheduler() *CronScheduler {
	c := cron.New()
	c.Start()
	log.Println("[SCHEDULER] Tick scheduler started")
	return &CronScheduler{c: c}
}

// fixedInterval fires every interval counted from the previous run, without
// the whole-second alignment of cron.Every.
type fixedInterval time.Duration

func (f fixedInterval) Next(t time.Time) time.Time {
	return t.Add(time.Duration(f))
}

// Schedule registers fn to run every interval, first one interval from now.
func (s *CronScheduler) Schedule(interval time.Duration, fn func()) Cancel {
	id := s.c.Schedule(fixedInterval(interval), cron.FuncJob(fn))
	var once sync.Once
	return func() {
		once.Do(func() { s.c.Remove(id) })
	}
}

// Stop halts the runner and waits for running callbacks.
func (s *CronScheduler) Stop() {
	<-s.c.Stop().Done()
	log.Println("[SCHEDULER] Tick scheduler stopped")
}

// ManualScheduler fires callbacks only when told to. Tests use it to drive time.
type ManualScheduler struct {
	mu     sync.Mutex
	nextID int
	jobs   map[int]func()
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{jobs: make(map[int]func())}
}

func (m *ManualScheduler) Schedule(_ time.Duration, fn func()) Cancel {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.jobs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.jobs, id)
	}
}

// Fire runs every active callback n times, one round at a time.
func (m *ManualScheduler) Fire(n int) {
	for i := 0; i < n; i++ {
		m.mu.Lock()
		fns := make([]func(), 0, len(m.jobs))
		for _, fn := range m.jobs {
			fns = append(fns, fn)
		}
		m.mu.Unlock()
		for _, fn := range fns {
			fn()
		}
	}
}

// Active reports how many callbacks are still scheduled.
func (m *ManualScheduler) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.jobs)
}
