package ports

import (
	"context"
	"time"

	"taskcheck/internal/core/domain"
)

type UserRepository interface {
	// Upsert creates the user with zero points on first sight, otherwise
	// refreshes the mutable profile fields. It never touches points.
	Upsert(ctx context.Context, user domain.User) (domain.User, error)
	Find(ctx context.Context, id int64) (domain.User, error)
}

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) error
	FindByName(ctx context.Context, ownerID int64, name string) (domain.Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error)
	// Settle marks the task settled and applies delta to the owner's points
	// in a single transaction. It fails with domain.ErrTaskSettled when the
	// task was already settled, and returns the owner's new total otherwise.
	Settle(ctx context.Context, ownerID int64, name string, delta int64) (int64, error)
}

// SessionStore holds per-user wizard sessions. Implementations only need
// plain Get/Put/Delete; serialization of same-user access belongs to the
// wizard service.
type SessionStore interface {
	Get(ctx context.Context, userID int64) (domain.WizardSession, bool, error)
	Put(ctx context.Context, userID int64, session domain.WizardSession) error
	Delete(ctx context.Context, userID int64) error
}

type WizardService interface {
	Start(ctx context.Context, userID int64) (domain.WizardReply, error)
	Advance(ctx context.Context, userID int64, text string, now time.Time) (domain.WizardReply, error)
	Cancel(ctx context.Context, userID int64) (domain.WizardReply, error)
}

type TaskService interface {
	Check(ctx context.Context, ownerID int64, name string, now time.Time) (domain.CheckResult, error)
	ListTasks(ctx context.Context, ownerID int64) ([]domain.Task, error)
}
