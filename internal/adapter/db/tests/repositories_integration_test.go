//go:build integration
// +build integration

package tests

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	dbadapter "taskcheck/internal/adapter/db"
	"taskcheck/internal/core/domain"
)

type RepositoriesIntegrationSuite struct {
	IntegrationSuiteBase

	users *dbadapter.UserRepository
	tasks *dbadapter.TaskRepository
}

func TestRepositoriesIntegration(t *testing.T) {
	suite.Run(t, new(RepositoriesIntegrationSuite))
}

func (s *RepositoriesIntegrationSuite) SetupTest() {
	s.ResetDatabase()
	s.users = dbadapter.NewUserRepository(s.DB)
	s.tasks = dbadapter.NewTaskRepository(s.DB)
}

func (s *RepositoriesIntegrationSuite) TestUpsertPreservesPoints() {
	ctx := context.Background()

	user, err := s.users.Upsert(ctx, domain.User{ID: 1, Name: "Alice", Handle: "alice"})
	s.Require().NoError(err)
	s.Require().Equal(int64(0), user.Points)

	s.seedSettledPoints(ctx, 1, 25)

	user, err = s.users.Upsert(ctx, domain.User{ID: 1, Name: "Alice B.", Handle: "aliceb"})
	s.Require().NoError(err)
	s.Require().Equal("Alice B.", user.Name)
	s.Require().Equal("aliceb", user.Handle)
	s.Require().Equal(int64(25), user.Points)
}

func (s *RepositoriesIntegrationSuite) TestCreateRejectsDuplicatePerOwner() {
	ctx := context.Background()
	s.mustUpsert(ctx, 1)
	s.mustUpsert(ctx, 2)

	task := domain.Task{
		OwnerID:     1,
		Name:        "Report",
		Description: "Finish Q3 report",
		Points:      10,
		Deadline:    time.Now().Add(time.Hour).UTC().Truncate(time.Second),
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	s.Require().NoError(s.tasks.Create(ctx, task))

	err := s.tasks.Create(ctx, task)
	s.Require().ErrorIs(err, domain.ErrTaskNameTaken)

	// A different owner may reuse the name.
	task.OwnerID = 2
	s.Require().NoError(s.tasks.Create(ctx, task))

	mine, err := s.tasks.ListByOwner(ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(mine, 1)
}

func (s *RepositoriesIntegrationSuite) TestFindByName() {
	ctx := context.Background()
	s.mustUpsert(ctx, 1)

	deadline := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	s.Require().NoError(s.tasks.Create(ctx, domain.Task{
		OwnerID:     1,
		Name:        "Report",
		Description: "Finish Q3 report",
		Points:      10,
		Deadline:    deadline,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}))

	task, err := s.tasks.FindByName(ctx, 1, "Report")
	s.Require().NoError(err)
	s.Require().Equal("Finish Q3 report", task.Description)
	s.Require().Equal(int64(10), task.Points)
	s.Require().Equal(deadline, task.Deadline.UTC())
	s.Require().False(task.Settled)

	_, err = s.tasks.FindByName(ctx, 1, "ghost")
	s.Require().ErrorIs(err, domain.ErrTaskNotFound)
}

func (s *RepositoriesIntegrationSuite) TestSettleIsExactlyOnce() {
	ctx := context.Background()
	s.mustUpsert(ctx, 1)
	s.Require().NoError(s.tasks.Create(ctx, domain.Task{
		OwnerID:     1,
		Name:        "Report",
		Description: "Finish Q3 report",
		Points:      10,
		Deadline:    time.Now().Add(time.Hour).UTC().Truncate(time.Second),
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}))

	total, err := s.tasks.Settle(ctx, 1, "Report", 10)
	s.Require().NoError(err)
	s.Require().Equal(int64(10), total)

	_, err = s.tasks.Settle(ctx, 1, "Report", 10)
	s.Require().ErrorIs(err, domain.ErrTaskSettled)

	user, err := s.users.Find(ctx, 1)
	s.Require().NoError(err)
	s.Require().Equal(int64(10), user.Points)

	_, err = s.tasks.Settle(ctx, 1, "ghost", 10)
	s.Require().ErrorIs(err, domain.ErrTaskNotFound)
}

func (s *RepositoriesIntegrationSuite) TestConcurrentSettlesApplyOnce() {
	ctx := context.Background()
	s.mustUpsert(ctx, 1)
	s.Require().NoError(s.tasks.Create(ctx, domain.Task{
		OwnerID:     1,
		Name:        "Report",
		Description: "Finish Q3 report",
		Points:      10,
		Deadline:    time.Now().Add(time.Hour).UTC().Truncate(time.Second),
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}))

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.tasks.Settle(ctx, 1, "Report", 10)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			s.Require().ErrorIs(err, domain.ErrTaskSettled)
		}
	}
	s.Require().Equal(1, succeeded)

	user, err := s.users.Find(ctx, 1)
	s.Require().NoError(err)
	s.Require().Equal(int64(10), user.Points)
}

func (s *RepositoriesIntegrationSuite) mustUpsert(ctx context.Context, id int64) {
	_, err := s.users.Upsert(ctx, domain.User{ID: id, Name: "user", Handle: "handle"})
	s.Require().NoError(err)
}

func (s *RepositoriesIntegrationSuite) seedSettledPoints(ctx context.Context, id, points int64) {
	_, err := s.DB.ExecContext(ctx, "UPDATE users SET points = ? WHERE id = ?", points, id)
	s.Require().NoError(err)
}
