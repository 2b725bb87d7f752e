package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/feedback-platform/internal/domain/entity"
	repo "github.com/oksasatya/feedback-platform/internal/domain/repository"
	"github.com/oksasatya/feedback-platform/internal/infrastructure/memory"
	"github.com/oksasatya/feedback-platform/pkg/helpers"
)

const testPassword = "demo123"

type fixture struct {
	store   *memory.Store
	priya   *entity.User
	arjun   *entity.User
	kavya   *entity.User
	meera   *entity.User
	dev     *entity.User
	clock   time.Time
	hashStr string
}

// newFixture builds two teams: priya manages arjun and kavya, meera manages dev.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	hash, err := helpers.HashPassword(testPassword)
	require.NoError(t, err)

	fx := &fixture{
		store:   memory.NewStore(),
		clock:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		hashStr: hash,
	}
	ctx := context.Background()
	err = fx.store.WithTx(ctx, repo.TxOptions{}, func(r repo.Repos) error {
		fx.priya = fx.addUser(t, r, "Priya Sharma", "priya@company.com", entity.RoleManager, nil)
		fx.meera = fx.addUser(t, r, "Meera Iyer", "meera@company.com", entity.RoleManager, nil)
		fx.arjun = fx.addUser(t, r, "Arjun Patel", "arjun@company.com", entity.RoleEmployee, &fx.priya.ID)
		fx.kavya = fx.addUser(t, r, "Kavya Reddy", "kavya@company.com", entity.RoleEmployee, &fx.priya.ID)
		fx.dev = fx.addUser(t, r, "Dev Menon", "dev@company.com", entity.RoleEmployee, &fx.meera.ID)
		return nil
	})
	require.NoError(t, err)
	return fx
}

func (fx *fixture) addUser(t *testing.T, r repo.Repos, name, email string, role entity.Role, managerID *int64) *entity.User {
	t.Helper()
	u := &entity.User{Name: name, Email: email, PasswordHash: fx.hashStr, Role: role}
	if managerID != nil {
		id := *managerID
		u.ManagerID = &id
	}
	require.NoError(t, r.Users.Create(context.Background(), u))
	return u
}

// tick returns a clock that advances one minute per call
func (fx *fixture) tick() func() time.Time {
	return func() time.Time {
		fx.clock = fx.clock.Add(time.Minute)
		return fx.clock
	}
}

func (fx *fixture) feedbackService() *FeedbackService {
	s := NewFeedbackService(fx.store, time.Second, helpers.NewDiscardLogger())
	s.Now = fx.tick()
	return s
}

func (fx *fixture) feedbackRows(t *testing.T) []entity.Feedback {
	t.Helper()
	var all []entity.Feedback
	err := fx.store.WithTx(context.Background(), repo.TxOptions{ReadOnly: true}, func(r repo.Repos) error {
		for _, m := range []*entity.User{fx.priya, fx.meera} {
			items, err := r.Feedback.List(context.Background(), repo.OwnerManager, m.ID)
			if err != nil {
				return err
			}
			all = append(all, items...)
		}
		return nil
	})
	require.NoError(t, err)
	return all
}
