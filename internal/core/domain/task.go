package domain

import "time"

// Outcome is the side of the deadline a task check landed on.
type Outcome string

const (
	OutcomeOnTime Outcome = "on_time"
	OutcomeLate   Outcome = "late"
)

type User struct {
	ID     int64
	Name   string
	Handle string
	Points int64
}

type Task struct {
	ID          uint64
	OwnerID     int64
	Name        string
	Description string
	Points      int64
	Deadline    time.Time
	Settled     bool
	CreatedAt   time.Time
}

// CheckResult carries everything the surface needs to render a settled
// check: the task, the outcome, the signed points delta that was applied and
// the owner's resulting total.
type CheckResult struct {
	Task      Task
	Outcome   Outcome
	Delta     int64
	NewPoints int64
}
