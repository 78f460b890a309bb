package engine

import (
	"log"
	"time"
)

// TaskID identifies a scheduled task for cancellation
type TaskID uint64

// TaskFunc receives the game time the scheduler was advanced to
type TaskFunc func(now time.Time)

type scheduledTask struct {
	id       TaskID
	name     string
	interval time.Duration
	deadline time.Time // Next run deadline for drift correction
	fn       TaskFunc
}

// Scheduler runs repeating tasks cooperatively on the caller's goroutine
// Tasks never run concurrently with each other or with the caller
// Not safe for concurrent use; owned by the main loop
type Scheduler struct {
	clock  TimeProvider
	tasks  []*scheduledTask
	nextID TaskID
}

// NewScheduler creates a scheduler anchored to the given clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{clock: clock}
}

// Every registers fn to run once per elapsed interval, first after one interval
// Non-positive intervals are rejected with a zero TaskID
func (s *Scheduler) Every(name string, interval time.Duration, fn TaskFunc) TaskID {
	if interval <= 0 || fn == nil {
		log.Printf("Scheduler: rejected task %q (interval %v)", name, interval)
		return 0
	}

	s.nextID++
	s.tasks = append(s.tasks, &scheduledTask{
		id:       s.nextID,
		name:     name,
		interval: interval,
		deadline: s.clock.Now().Add(interval),
		fn:       fn,
	})
	return s.nextID
}

// Cancel removes a task; unknown IDs are ignored
// Safe to call from inside a running task
func (s *Scheduler) Cancel(id TaskID) {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered tasks
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Advance runs every task whose deadline has passed
// A task more than two intervals behind runs once and re-anchors to now
func (s *Scheduler) Advance(now time.Time) {
	// Tasks may cancel themselves or others while running
	pending := append([]*scheduledTask(nil), s.tasks...)

	for _, t := range pending {
		for !now.Before(t.deadline) {
			if !s.registered(t.id) {
				break
			}
			t.fn(now)
			t.deadline = t.deadline.Add(t.interval)

			maxBehind := t.interval * 2
			if now.Sub(t.deadline) > maxBehind {
				t.deadline = now.Add(t.interval)
			}
		}
	}
}

func (s *Scheduler) registered(id TaskID) bool {
	for _, t := range s.tasks {
		if t.id == id {
			return true
		}
	}
	return false
}
