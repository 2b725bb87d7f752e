package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	repo "github.com/oksasatya/feedback-platform/internal/domain/repository"
	"github.com/oksasatya/feedback-platform/pkg/apperrors"
	"github.com/oksasatya/feedback-platform/pkg/helpers"
)

// txRunner wraps Store.WithTx with the per-request timeout and turns
// store failures into logged INTERNAL errors. Application errors raised
// inside fn pass through untouched.
type txRunner struct {
	Store   repo.Store
	Timeout time.Duration
	Logger  *logrus.Logger
}

func (r txRunner) run(ctx context.Context, op string, opts repo.TxOptions, fn func(repo.Repos) error) error {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	err := r.Store.WithTx(ctx, opts, fn)
	if err == nil {
		return nil
	}
	var ae *apperrors.AppError
	if errors.As(err, &ae) {
		return ae
	}
	helpers.LogError(r.Logger, "store operation failed", err, logrus.Fields{"op": op})
	return apperrors.NewInternalError(op+" failed", err)
}

func (r txRunner) read(ctx context.Context, op string, fn func(repo.Repos) error) error {
	return r.run(ctx, op, repo.TxOptions{ReadOnly: true}, fn)
}

func (r txRunner) write(ctx context.Context, op string, fn func(repo.Repos) error) error {
	return r.run(ctx, op, repo.TxOptions{}, fn)
}

func utcNow() time.Time { return time.Now().UTC() }
