package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"taskcheck/internal/core/domain"
	"taskcheck/internal/core/duration"
	"taskcheck/internal/core/ports"
)

// WizardService walks one user at a time through the task-creation steps:
// name, description, points, deadline. All entry points for a given user are
// serialized, so two racing messages can never both advance the same session.
type WizardService struct {
	sessions ports.SessionStore
	tasks    ports.TaskRepository

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewWizardService(sessions ports.SessionStore, tasks ports.TaskRepository) *WizardService {
	return &WizardService{
		sessions: sessions,
		tasks:    tasks,
		locks:    make(map[int64]*sync.Mutex),
	}
}

var _ ports.WizardService = (*WizardService)(nil)

func (s *WizardService) Start(ctx context.Context, userID int64) (domain.WizardReply, error) {
	defer s.lock(userID)()

	_, active, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return domain.WizardReply{}, err
	}
	if active {
		return domain.WizardReply{Status: domain.WizardBusy}, nil
	}

	session := domain.WizardSession{Step: domain.StepAwaitingName}
	if err := s.sessions.Put(ctx, userID, session); err != nil {
		return domain.WizardReply{}, err
	}
	return domain.WizardReply{Status: domain.WizardPromptName}, nil
}

func (s *WizardService) Advance(ctx context.Context, userID int64, text string, now time.Time) (domain.WizardReply, error) {
	defer s.lock(userID)()

	session, active, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return domain.WizardReply{}, err
	}
	if !active {
		return domain.WizardReply{Status: domain.WizardIdle}, nil
	}

	input := strings.TrimSpace(text)
	if strings.EqualFold(input, domain.CancelKeyword) {
		return s.discard(ctx, userID)
	}

	switch session.Step {
	case domain.StepAwaitingName:
		return s.collectName(ctx, userID, session, input)
	case domain.StepAwaitingDescription:
		return s.collectDescription(ctx, userID, session, input)
	case domain.StepAwaitingPoints:
		return s.collectPoints(ctx, userID, session, input)
	case domain.StepAwaitingDeadline:
		return s.collectDeadline(ctx, userID, session, input, now)
	default:
		return domain.WizardReply{Status: domain.WizardIdle}, nil
	}
}

func (s *WizardService) Cancel(ctx context.Context, userID int64) (domain.WizardReply, error) {
	defer s.lock(userID)()

	_, active, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return domain.WizardReply{}, err
	}
	if !active {
		return domain.WizardReply{Status: domain.WizardIdle}, nil
	}
	return s.discard(ctx, userID)
}

func (s *WizardService) collectName(ctx context.Context, userID int64, session domain.WizardSession, name string) (domain.WizardReply, error) {
	if name == "" {
		return domain.WizardReply{Status: domain.WizardPromptName}, nil
	}

	_, err := s.tasks.FindByName(ctx, userID, name)
	switch {
	case err == nil:
		// Early feedback only; the unique key enforces this again at create.
		return domain.WizardReply{Status: domain.WizardNameTaken}, nil
	case !errors.Is(err, domain.ErrTaskNotFound):
		return domain.WizardReply{}, err
	}

	session.Name = name
	session.Step = domain.StepAwaitingDescription
	if err := s.sessions.Put(ctx, userID, session); err != nil {
		return domain.WizardReply{}, err
	}
	return domain.WizardReply{Status: domain.WizardPromptDescription}, nil
}

func (s *WizardService) collectDescription(ctx context.Context, userID int64, session domain.WizardSession, description string) (domain.WizardReply, error) {
	if description == "" {
		return domain.WizardReply{Status: domain.WizardPromptDescription}, nil
	}

	session.Description = description
	session.Step = domain.StepAwaitingPoints
	if err := s.sessions.Put(ctx, userID, session); err != nil {
		return domain.WizardReply{}, err
	}
	return domain.WizardReply{Status: domain.WizardPromptPoints}, nil
}

func (s *WizardService) collectPoints(ctx context.Context, userID int64, session domain.WizardSession, text string) (domain.WizardReply, error) {
	points, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return domain.WizardReply{Status: domain.WizardInvalidPoints}, nil
	}

	session.Points = points
	session.Step = domain.StepAwaitingDeadline
	if err := s.sessions.Put(ctx, userID, session); err != nil {
		return domain.WizardReply{}, err
	}
	return domain.WizardReply{Status: domain.WizardPromptDeadline}, nil
}

func (s *WizardService) collectDeadline(ctx context.Context, userID int64, session domain.WizardSession, text string, now time.Time) (domain.WizardReply, error) {
	lifetime, err := duration.ParseDuration(text)
	if err != nil {
		return domain.WizardReply{Status: domain.WizardInvalidDuration}, nil
	}

	task := domain.Task{
		OwnerID:     userID,
		Name:        session.Name,
		Description: session.Description,
		Points:      session.Points,
		Deadline:    now.Add(lifetime),
		CreatedAt:   now,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		if errors.Is(err, domain.ErrTaskNameTaken) {
			// A concurrent session won the name; send the user back to the
			// name step with the rest of the answers intact.
			session.Step = domain.StepAwaitingName
			session.Name = ""
			if putErr := s.sessions.Put(ctx, userID, session); putErr != nil {
				return domain.WizardReply{}, putErr
			}
			return domain.WizardReply{Status: domain.WizardNameTaken}, nil
		}
		return domain.WizardReply{}, err
	}

	if err := s.sessions.Delete(ctx, userID); err != nil {
		// The task is durable; a stale session must not survive it.
		zap.L().Warn("failed to discard wizard session after task creation",
			zap.Int64("user_id", userID), zap.Error(err))
	}

	zap.L().Info("task created",
		zap.Int64("user_id", userID),
		zap.String("task", task.Name),
		zap.Int64("points", task.Points),
		zap.Time("deadline", task.Deadline),
	)
	return domain.WizardReply{Status: domain.WizardCreated, Task: &task}, nil
}

func (s *WizardService) discard(ctx context.Context, userID int64) (domain.WizardReply, error) {
	if err := s.sessions.Delete(ctx, userID); err != nil {
		return domain.WizardReply{}, err
	}
	return domain.WizardReply{Status: domain.WizardCancelled}, nil
}

// lock acquires the per-user mutex and returns its release func.
func (s *WizardService) lock(userID int64) func() {
	s.mu.Lock()
	m, ok := s.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		s.locks[userID] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}
