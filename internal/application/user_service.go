package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/feedback-platform/internal/domain/entity"
	repo "github.com/oksasatya/feedback-platform/internal/domain/repository"
)

type UserService struct {
	tx txRunner
}

func NewUserService(store repo.Store, timeout time.Duration, logger *logrus.Logger) *UserService {
	return &UserService{tx: txRunner{Store: store, Timeout: timeout, Logger: logger}}
}

// Team lists the direct reports of a manager
func (s *UserService) Team(ctx context.Context, caller *entity.User) ([]entity.User, error) {
	if err := RequireManager(caller, ErrManagersOnlyTeam); err != nil {
		return nil, err
	}
	var team []entity.User
	err := s.tx.read(ctx, "list team", func(r repo.Repos) error {
		var err error
		team, err = r.Users.ListByManager(ctx, caller.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}
