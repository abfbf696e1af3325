package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"taskcheck/internal/core/domain"
	"taskcheck/internal/core/ports"
)

// CheckerService settles tasks against their deadline. Each task is scored
// exactly once: the settlement guard in the repository makes a second check
// fail with domain.ErrTaskSettled instead of re-applying the delta.
type CheckerService struct {
	tasks ports.TaskRepository
}

func NewCheckerService(tasks ports.TaskRepository) *CheckerService {
	return &CheckerService{tasks: tasks}
}

var _ ports.TaskService = (*CheckerService)(nil)

func (s *CheckerService) Check(ctx context.Context, ownerID int64, name string, now time.Time) (domain.CheckResult, error) {
	task, err := s.tasks.FindByName(ctx, ownerID, name)
	if err != nil {
		return domain.CheckResult{}, err
	}
	if task.Settled {
		return domain.CheckResult{Task: task}, domain.ErrTaskSettled
	}

	// The deadline itself counts as on time.
	outcome := domain.OutcomeOnTime
	delta := task.Points
	if now.After(task.Deadline) {
		outcome = domain.OutcomeLate
		delta = -task.Points
	}

	total, err := s.tasks.Settle(ctx, ownerID, name, delta)
	if err != nil {
		return domain.CheckResult{Task: task}, err
	}
	task.Settled = true

	zap.L().Info("task settled",
		zap.Int64("user_id", ownerID),
		zap.String("task", name),
		zap.String("outcome", string(outcome)),
		zap.Int64("delta", delta),
		zap.Int64("points", total),
	)
	return domain.CheckResult{Task: task, Outcome: outcome, Delta: delta, NewPoints: total}, nil
}

func (s *CheckerService) ListTasks(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	return s.tasks.ListByOwner(ctx, ownerID)
}
