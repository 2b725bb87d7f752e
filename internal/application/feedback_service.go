package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/feedback-platform/internal/domain/entity"
	repo "github.com/oksasatya/feedback-platform/internal/domain/repository"
)

type FeedbackService struct {
	tx     txRunner
	Logger *logrus.Logger
	// Now stamps created_at, updated_at and acknowledged_at.
	Now func() time.Time
}

func NewFeedbackService(store repo.Store, timeout time.Duration, logger *logrus.Logger) *FeedbackService {
	return &FeedbackService{
		tx:     txRunner{Store: store, Timeout: timeout, Logger: logger},
		Logger: logger,
		Now:    utcNow,
	}
}

// CreateFeedbackInput is what a manager submits about one of their reports
type CreateFeedbackInput struct {
	EmployeeID   int64
	Strengths    string
	Improvements string
	Sentiment    entity.Sentiment
}

func (s *FeedbackService) Create(ctx context.Context, manager *entity.User, in CreateFeedbackInput) (*entity.Feedback, error) {
	if err := RequireManager(manager, ErrManagersOnlyCreate); err != nil {
		return nil, err
	}
	if !in.Sentiment.Valid() {
		return nil, ErrInvalidSentiment
	}
	if blankText(&in.Strengths, &in.Improvements) {
		return nil, ErrBlankContent
	}
	now := s.Now()
	f := &entity.Feedback{
		ManagerID:    manager.ID,
		EmployeeID:   in.EmployeeID,
		Strengths:    in.Strengths,
		Improvements: in.Improvements,
		Sentiment:    in.Sentiment,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := s.tx.write(ctx, "create feedback", func(r repo.Repos) error {
		employee, err := r.Users.GetByID(ctx, in.EmployeeID)
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return err
		}
		if err := AuthorizeTeamMember(manager, employee); err != nil {
			return err
		}
		return r.Feedback.Create(ctx, f)
	})
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"feedback_id": f.ID,
			"manager_id":  f.ManagerID,
			"employee_id": f.EmployeeID,
		}).Info("feedback created")
	}
	return f, nil
}

// List returns the feedback the caller owns, newest first
func (s *FeedbackService) List(ctx context.Context, caller *entity.User) ([]entity.Feedback, error) {
	var items []entity.Feedback
	err := s.tx.read(ctx, "list feedback", func(r repo.Repos) error {
		var err error
		items, err = r.Feedback.List(ctx, repo.OwnerFor(caller.Role), caller.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update applies the provided fields of patch to feedback the caller wrote.
func (s *FeedbackService) Update(ctx context.Context, manager *entity.User, id int64, patch entity.FeedbackPatch) error {
	if err := RequireManager(manager, ErrManagersOnlyUpdate); err != nil {
		return err
	}
	return s.tx.write(ctx, "update feedback", func(r repo.Repos) error {
		f, err := loadFeedback(ctx, r, id)
		if err != nil {
			return err
		}
		if err := AuthorizeFeedbackEdit(manager, f); err != nil {
			return err
		}
		if patch.Empty() {
			return ErrNoFieldsToUpdate
		}
		if patch.Sentiment != nil && !patch.Sentiment.Valid() {
			return ErrInvalidSentiment
		}
		if blankText(patch.Strengths, patch.Improvements) {
			return ErrBlankContent
		}
		return r.Feedback.Update(ctx, id, patch, s.Now())
	})
}

// Acknowledge marks feedback as seen by its employee. Repeating it is a
// no-op that keeps the first acknowledged_at.
func (s *FeedbackService) Acknowledge(ctx context.Context, employee *entity.User, id int64) error {
	if err := RequireEmployee(employee, ErrEmployeesOnlyAck); err != nil {
		return err
	}
	return s.tx.write(ctx, "acknowledge feedback", func(r repo.Repos) error {
		f, err := loadFeedback(ctx, r, id)
		if err != nil {
			return err
		}
		if err := AuthorizeAcknowledge(employee, f); err != nil {
			return err
		}
		return r.Feedback.Acknowledge(ctx, id, s.Now())
	})
}

// loadFeedback returns nil without error when the row does not exist
func loadFeedback(ctx context.Context, r repo.Repos, id int64) (*entity.Feedback, error) {
	f, err := r.Feedback.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	return f, err
}

// blankText reports whether any present field is empty after trimming.
// Nil fields are absent from a patch and are skipped.
func blankText(fields ...*string) bool {
	for _, f := range fields {
		if f != nil && strings.TrimSpace(*f) == "" {
			return true
		}
	}
	return false
}
