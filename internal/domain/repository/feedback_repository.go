package repository

import (
	"context"
	"time"

	"github.com/oksasatya/feedback-platform/internal/domain/entity"
)

// Owner selects which ownership column a feedback query filters on
type Owner int

const (
	OwnerManager Owner = iota
	OwnerEmployee
)

// OwnerFor maps a role onto the column that scopes its feedback
func OwnerFor(role entity.Role) Owner {
	if role == entity.RoleManager {
		return OwnerManager
	}
	return OwnerEmployee
}

// FeedbackRepository defines the persistence operations on feedback rows.
// List results are ordered by created_at descending, then id ascending.
type FeedbackRepository interface {
	Create(ctx context.Context, f *entity.Feedback) error
	GetByID(ctx context.Context, id int64) (*entity.Feedback, error)
	List(ctx context.Context, owner Owner, userID int64) ([]entity.Feedback, error)
	Update(ctx context.Context, id int64, patch entity.FeedbackPatch, updatedAt time.Time) error
	// Acknowledge marks the row acknowledged; acknowledged_at keeps its first value.
	Acknowledge(ctx context.Context, id int64, at time.Time) error
	Counts(ctx context.Context, owner Owner, userID int64) (entity.FeedbackCounts, error)
}
