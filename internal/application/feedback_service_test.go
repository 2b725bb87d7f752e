package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/feedback-platform/internal/domain/entity"
	"github.com/oksasatya/feedback-platform/pkg/apperrors"
)

func strp(s string) *string { return &s }

func sentp(s entity.Sentiment) *entity.Sentiment { return &s }

func validInput(employeeID int64) CreateFeedbackInput {
	return CreateFeedbackInput{
		EmployeeID:   employeeID,
		Strengths:    "Clear code reviews",
		Improvements: "Share status earlier",
		Sentiment:    entity.SentimentPositive,
	}
}

func TestFeedbackService_Create(t *testing.T) {
	fx := newFixture(t)
	svc := fx.feedbackService()

	f, err := svc.Create(context.Background(), fx.priya, validInput(fx.arjun.ID))
	require.NoError(t, err)
	assert.NotZero(t, f.ID)
	assert.Equal(t, fx.priya.ID, f.ManagerID)
	assert.Equal(t, fx.arjun.ID, f.EmployeeID)
	assert.False(t, f.Acknowledged)
	assert.Nil(t, f.AcknowledgedAt)
	assert.Equal(t, f.CreatedAt, f.UpdatedAt)

	rows := fx.feedbackRows(t)
	require.Len(t, rows, 1)
	assert.Equal(t, f.ID, rows[0].ID)
}

func TestFeedbackService_CreateRejections(t *testing.T) {
	fx := newFixture(t)
	svc := fx.feedbackService()
	ctx := context.Background()

	bad := validInput(fx.arjun.ID)
	bad.Sentiment = "ecstatic"
	noStrengths := validInput(fx.arjun.ID)
	noStrengths.Strengths = ""
	blankImprovements := validInput(fx.arjun.ID)
	blankImprovements.Improvements = "  \t"

	tests := []struct {
		name   string
		caller *entity.User
		in     CreateFeedbackInput
		want   error
	}{
		{"employee caller", fx.arjun, validInput(fx.kavya.ID), ErrManagersOnlyCreate},
		{"invalid sentiment", fx.priya, bad, ErrInvalidSentiment},
		{"empty strengths", fx.priya, noStrengths, ErrBlankContent},
		{"blank improvements", fx.priya, blankImprovements, ErrBlankContent},
		{"other team", fx.priya, validInput(fx.dev.ID), ErrNotInTeam},
		{"unknown employee", fx.priya, validInput(999), ErrNotInTeam},
		{"manager target", fx.priya, validInput(fx.meera.ID), ErrNotInTeam},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.caller, tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Empty(t, fx.feedbackRows(t), "rejected creates must not insert rows")
}

func TestFeedbackService_ListOwnership(t *testing.T) {
	fx := newFixture(t)
	svc := fx.feedbackService()
	ctx := context.Background()

	first, err := svc.Create(ctx, fx.priya, validInput(fx.arjun.ID))
	require.NoError(t, err)
	second, err := svc.Create(ctx, fx.priya, validInput(fx.kavya.ID))
	require.NoError(t, err)
	_, err = svc.Create(ctx, fx.meera, validInput(fx.dev.ID))
	require.NoError(t, err)

	mine, err := svc.List(ctx, fx.priya)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID, "newest first")
	assert.Equal(t, first.ID, mine[1].ID)

	arjuns, err := svc.List(ctx, fx.arjun)
	require.NoError(t, err)
	require.Len(t, arjuns, 1)
	assert.Equal(t, first.ID, arjuns[0].ID)

	devs, err := svc.List(ctx, fx.dev)
	require.NoError(t, err)
	require.Len(t, devs, 1)
	assert.Equal(t, fx.meera.ID, devs[0].ManagerID)
}

func TestFeedbackService_Update(t *testing.T) {
	fx := newFixture(t)
	svc := fx.feedbackService()
	ctx := context.Background()

	f, err := svc.Create(ctx, fx.priya, validInput(fx.arjun.ID))
	require.NoError(t, err)

	err = svc.Update(ctx, fx.priya, f.ID, entity.FeedbackPatch{Sentiment: sentp(entity.SentimentNeutral)})
	require.NoError(t, err)

	items, err := svc.List(ctx, fx.priya)
	require.NoError(t, err)
	require.Len(t, items, 1)
	got := items[0]
	assert.Equal(t, entity.SentimentNeutral, got.Sentiment)
	assert.Equal(t, f.Strengths, got.Strengths, "omitted fields are untouched")
	assert.Equal(t, f.Improvements, got.Improvements)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestFeedbackService_UpdateRejections(t *testing.T) {
	fx := newFixture(t)
	svc := fx.feedbackService()
	ctx := context.Background()

	f, err := svc.Create(ctx, fx.priya, validInput(fx.arjun.ID))
	require.NoError(t, err)

	tests := []struct {
		name   string
		caller *entity.User
		id     int64
		patch  entity.FeedbackPatch
		want   error
	}{
		{"employee caller", fx.arjun, f.ID, entity.FeedbackPatch{Strengths: strp("x")}, ErrManagersOnlyUpdate},
		{"other manager", fx.meera, f.ID, entity.FeedbackPatch{Strengths: strp("x")}, ErrFeedbackNotAvailable},
		{"missing feedback", fx.priya, 999, entity.FeedbackPatch{Strengths: strp("x")}, ErrFeedbackNotAvailable},
		{"other manager empty patch", fx.meera, f.ID, entity.FeedbackPatch{}, ErrFeedbackNotAvailable},
		{"empty patch", fx.priya, f.ID, entity.FeedbackPatch{}, ErrNoFieldsToUpdate},
		{"invalid sentiment", fx.priya, f.ID, entity.FeedbackPatch{Sentiment: sentp("meh")}, ErrInvalidSentiment},
		{"empty strengths", fx.priya, f.ID, entity.FeedbackPatch{Strengths: strp("")}, ErrBlankContent},
		{"blank improvements", fx.priya, f.ID, entity.FeedbackPatch{Strengths: strp("ok"), Improvements: strp(" ")}, ErrBlankContent},
		{"other manager blank patch", fx.meera, f.ID, entity.FeedbackPatch{Strengths: strp("")}, ErrFeedbackNotAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Update(ctx, tt.caller, tt.id, tt.patch)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	rows := fx.feedbackRows(t)
	require.Len(t, rows, 1)
	assert.Equal(t, f.Strengths, rows[0].Strengths)
	assert.Equal(t, f.UpdatedAt, rows[0].UpdatedAt)
}

func TestFeedbackService_Acknowledge(t *testing.T) {
	fx := newFixture(t)
	svc := fx.feedbackService()
	ctx := context.Background()

	f, err := svc.Create(ctx, fx.priya, validInput(fx.arjun.ID))
	require.NoError(t, err)

	require.NoError(t, svc.Acknowledge(ctx, fx.arjun, f.ID))
	items, err := svc.List(ctx, fx.arjun)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.True(t, items[0].Acknowledged)
	require.NotNil(t, items[0].AcknowledgedAt)
	firstAck := *items[0].AcknowledgedAt
	assert.Equal(t, f.UpdatedAt, items[0].UpdatedAt, "acknowledge leaves updated_at alone")

	// a second acknowledge succeeds and keeps the first timestamp
	require.NoError(t, svc.Acknowledge(ctx, fx.arjun, f.ID))
	items, err = svc.List(ctx, fx.arjun)
	require.NoError(t, err)
	assert.Equal(t, firstAck, *items[0].AcknowledgedAt)
}

func TestFeedbackService_AcknowledgeRejections(t *testing.T) {
	fx := newFixture(t)
	svc := fx.feedbackService()
	ctx := context.Background()

	f, err := svc.Create(ctx, fx.priya, validInput(fx.arjun.ID))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Acknowledge(ctx, fx.priya, f.ID), ErrEmployeesOnlyAck)
	assert.ErrorIs(t, svc.Acknowledge(ctx, fx.kavya, f.ID), ErrFeedbackNotAvailable)
	assert.ErrorIs(t, svc.Acknowledge(ctx, fx.arjun, 999), ErrFeedbackNotAvailable)

	err = svc.Acknowledge(ctx, fx.kavya, f.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeForbidden))

	rows := fx.feedbackRows(t)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Acknowledged)
}
