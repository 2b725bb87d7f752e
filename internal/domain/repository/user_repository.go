package repository

import (
	"context"

	"github.com/oksasatya/feedback-platform/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ListByManager(ctx context.Context, managerID int64) ([]entity.User, error)
	CountByManager(ctx context.Context, managerID int64) (int, error)
}
