package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/feedback-platform/internal/domain/entity"
	"github.com/oksasatya/feedback-platform/internal/domain/repository"
)

type FeedbackRepository struct {
	db querier
}

func NewFeedbackRepository(db querier) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, f *entity.Feedback) error {
	query, args, err := insertFeedbackSQL(f)
	if err != nil {
		return fmt.Errorf("build feedback insert: %w", err)
	}
	return r.db.QueryRow(ctx, query, args...).Scan(&f.ID)
}

func (r *FeedbackRepository) GetByID(ctx context.Context, id int64) (*entity.Feedback, error) {
	query, args, err := dialect.From("feedback").Prepared(true).
		Select(feedbackColumns...).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build feedback select: %w", err)
	}
	f, err := scanFeedback(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (r *FeedbackRepository) List(ctx context.Context, owner repository.Owner, userID int64) ([]entity.Feedback, error) {
	query, args, err := listFeedbackSQL(owner, userID)
	if err != nil {
		return nil, fmt.Errorf("build feedback list: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Feedback, 0)
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

func (r *FeedbackRepository) Update(ctx context.Context, id int64, patch entity.FeedbackPatch, updatedAt time.Time) error {
	query, args, err := updateFeedbackSQL(id, patch, updatedAt)
	if err != nil {
		return fmt.Errorf("build feedback update: %w", err)
	}
	return r.exec(ctx, query, args)
}

func (r *FeedbackRepository) Acknowledge(ctx context.Context, id int64, at time.Time) error {
	query, args, err := acknowledgeFeedbackSQL(id, at)
	if err != nil {
		return fmt.Errorf("build feedback acknowledge: %w", err)
	}
	return r.exec(ctx, query, args)
}

func (r *FeedbackRepository) Counts(ctx context.Context, owner repository.Owner, userID int64) (entity.FeedbackCounts, error) {
	var c entity.FeedbackCounts
	query, args, err := countFeedbackSQL(owner, userID)
	if err != nil {
		return c, fmt.Errorf("build feedback counts: %w", err)
	}
	err = r.db.QueryRow(ctx, query, args...).Scan(&c.Total, &c.Positive, &c.Acknowledged)
	return c, err
}

func (r *FeedbackRepository) exec(ctx context.Context, query string, args []any) error {
	res, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanFeedback(row pgx.Row) (*entity.Feedback, error) {
	f := &entity.Feedback{}
	var sentiment string
	if err := row.Scan(&f.ID, &f.ManagerID, &f.EmployeeID, &f.Strengths, &f.Improvements,
		&sentiment, &f.Acknowledged, &f.AcknowledgedAt, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	f.Sentiment = entity.Sentiment(sentiment)
	return f, nil
}

var _ repository.FeedbackRepository = (*FeedbackRepository)(nil)
