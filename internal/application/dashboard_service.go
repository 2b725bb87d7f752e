package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/feedback-platform/internal/domain/entity"
	repo "github.com/oksasatya/feedback-platform/internal/domain/repository"
)

type DashboardService struct {
	tx txRunner
}

func NewDashboardService(store repo.Store, timeout time.Duration, logger *logrus.Logger) *DashboardService {
	return &DashboardService{tx: txRunner{Store: store, Timeout: timeout, Logger: logger}}
}

// Stats returns ManagerStats or EmployeeStats depending on the caller's
// role. All counts come from a single snapshot.
func (s *DashboardService) Stats(ctx context.Context, caller *entity.User) (any, error) {
	if caller.IsManager() {
		return s.ManagerStats(ctx, caller)
	}
	return s.EmployeeStats(ctx, caller)
}

func (s *DashboardService) ManagerStats(ctx context.Context, manager *entity.User) (*entity.ManagerStats, error) {
	var out entity.ManagerStats
	err := s.tx.read(ctx, "manager stats", func(r repo.Repos) error {
		team, err := r.Users.CountByManager(ctx, manager.ID)
		if err != nil {
			return err
		}
		c, err := r.Feedback.Counts(ctx, repo.OwnerManager, manager.ID)
		if err != nil {
			return err
		}
		out = entity.ManagerStats{
			TeamMembers:         team,
			TotalFeedback:       c.Total,
			PositiveCount:       c.Positive,
			UnacknowledgedCount: c.Total - c.Acknowledged,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *DashboardService) EmployeeStats(ctx context.Context, employee *entity.User) (*entity.EmployeeStats, error) {
	var out entity.EmployeeStats
	err := s.tx.read(ctx, "employee stats", func(r repo.Repos) error {
		c, err := r.Feedback.Counts(ctx, repo.OwnerEmployee, employee.ID)
		if err != nil {
			return err
		}
		out = entity.EmployeeStats{
			TotalFeedback:     c.Total,
			AcknowledgedCount: c.Acknowledged,
			PendingCount:      c.Total - c.Acknowledged,
			PositiveCount:     c.Positive,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
