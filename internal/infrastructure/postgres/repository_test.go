package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/feedback-platform/internal/domain/entity"
	"github.com/oksasatya/feedback-platform/internal/domain/repository"
)

var (
	feedbackCols = []string{"id", "manager_id", "employee_id", "strengths", "improvements", "sentiment",
		"acknowledged", "acknowledged_at", "created_at", "updated_at"}
	userCols = []string{"id", "name", "email", "password_hash", "role", "manager_id", "avatar", "created_at"}
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, mock.ExpectationsWereMet()) })
	return mock
}

func TestFeedbackRepository_GetByID(t *testing.T) {
	mock := newMock(t)
	ack := ts.Add(time.Hour)
	mock.ExpectQuery(`SELECT .+ FROM "feedback" WHERE .*"id" = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows(feedbackCols).
			AddRow(int64(9), int64(1), int64(2), "Ships reliable code", "Speak up", "negative", true, &ack, ts, ts.Add(time.Minute)))

	f, err := NewFeedbackRepository(mock).GetByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, &entity.Feedback{
		ID: 9, ManagerID: 1, EmployeeID: 2,
		Strengths: "Ships reliable code", Improvements: "Speak up",
		Sentiment: entity.SentimentNegative, Acknowledged: true, AcknowledgedAt: &ack,
		CreatedAt: ts, UpdatedAt: ts.Add(time.Minute),
	}, f)
}

func TestFeedbackRepository_GetByIDErrors(t *testing.T) {
	mock := newMock(t)
	repo := NewFeedbackRepository(mock)
	broken := errors.New("connection reset")

	mock.ExpectQuery(`FROM "feedback"`).WillReturnError(pgx.ErrNoRows)
	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	mock.ExpectQuery(`FROM "feedback"`).WillReturnError(broken)
	_, err = repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, broken)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}

func TestFeedbackRepository_List(t *testing.T) {
	mock := newMock(t)
	query, args, err := listFeedbackSQL(repository.OwnerManager, 1)
	require.NoError(t, err)
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(args...).
		WillReturnRows(pgxmock.NewRows(feedbackCols).
			AddRow(int64(2), int64(1), int64(5), "b", "b", "positive", false, nil, ts.Add(time.Hour), ts.Add(time.Hour)).
			AddRow(int64(1), int64(1), int64(5), "a", "a", "neutral", false, nil, ts, ts))

	items, err := NewFeedbackRepository(mock).List(context.Background(), repository.OwnerManager, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, []int64{2, 1}, []int64{items[0].ID, items[1].ID})
	assert.Equal(t, entity.SentimentNeutral, items[1].Sentiment)
	assert.Nil(t, items[0].AcknowledgedAt)
}

func TestFeedbackRepository_ListEmpty(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM "feedback"`).WillReturnRows(pgxmock.NewRows(feedbackCols))

	items, err := NewFeedbackRepository(mock).List(context.Background(), repository.OwnerEmployee, 3)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFeedbackRepository_Create(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO "feedback" .+ RETURNING "id"`).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

	f := &entity.Feedback{ManagerID: 1, EmployeeID: 2, Strengths: "s", Improvements: "i",
		Sentiment: entity.SentimentPositive, CreatedAt: ts, UpdatedAt: ts}
	require.NoError(t, NewFeedbackRepository(mock).Create(context.Background(), f))
	assert.Equal(t, int64(11), f.ID)
}

func TestFeedbackRepository_UpdateRowsAffected(t *testing.T) {
	s := "Great mentoring"
	patch := entity.FeedbackPatch{Strengths: &s}
	query, args, err := updateFeedbackSQL(7, patch, ts)
	require.NoError(t, err)

	tests := []struct {
		name     string
		affected int64
		want     error
	}{
		{"updated", 1, nil},
		{"missing row", 0, repository.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			mock.ExpectExec(regexp.QuoteMeta(query)).
				WithArgs(args...).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			err := NewFeedbackRepository(mock).Update(context.Background(), 7, patch, ts)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFeedbackRepository_Acknowledge(t *testing.T) {
	mock := newMock(t)
	query, args, err := acknowledgeFeedbackSQL(5, ts)
	require.NoError(t, err)
	mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewFeedbackRepository(mock)
	assert.NoError(t, repo.Acknowledge(context.Background(), 5, ts))
	assert.ErrorIs(t, repo.Acknowledge(context.Background(), 5, ts), repository.ErrNotFound)
}

func TestFeedbackRepository_Counts(t *testing.T) {
	mock := newMock(t)
	query, args, err := countFeedbackSQL(repository.OwnerManager, 1)
	require.NoError(t, err)
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(args...).
		WillReturnRows(pgxmock.NewRows([]string{"total", "positive", "acknowledged"}).AddRow(3, 2, 1))

	c, err := NewFeedbackRepository(mock).Counts(context.Background(), repository.OwnerManager, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.FeedbackCounts{Total: 3, Positive: 2, Acknowledged: 1}, c)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	mock := newMock(t)
	managerID := int64(1)
	mock.ExpectQuery(`SELECT .+ FROM "users" WHERE .*"email" = \$1.* LIMIT`).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(int64(2), "Arjun Patel", "arjun@company.com", "hash", "employee", &managerID, nil, ts))

	u, err := NewUserRepository(mock).GetByEmail(context.Background(), "arjun@company.com")
	require.NoError(t, err)
	assert.Equal(t, &entity.User{
		ID: 2, Name: "Arjun Patel", Email: "arjun@company.com", PasswordHash: "hash",
		Role: entity.RoleEmployee, ManagerID: &managerID, CreatedAt: ts,
	}, u)
}

func TestUserRepository_GetByIDNotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM "users"`).WillReturnError(pgx.ErrNoRows)

	_, err := NewUserRepository(mock).GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_Team(t *testing.T) {
	mock := newMock(t)
	avatar := "https://cdn.example.com/a.png"
	managerID := int64(1)
	mock.ExpectQuery(`FROM "users" WHERE .*"manager_id" = \$1.* ORDER BY "name" ASC, "id" ASC`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(int64(2), "Arjun Patel", "arjun@company.com", "h", "employee", &managerID, &avatar, ts).
			AddRow(int64(5), "Kavya Rao", "kavya@company.com", "h", "employee", &managerID, nil, ts))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "users"`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	repo := NewUserRepository(mock)
	team, err := repo.ListByManager(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, team, 2)
	assert.Equal(t, "Arjun Patel", team[0].Name)
	require.NotNil(t, team[0].AvatarURL)
	assert.Equal(t, avatar, *team[0].AvatarURL)
	assert.Nil(t, team[1].AvatarURL)

	n, err := repo.CountByManager(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestUserRepository_Create(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO "users" .+ RETURNING "id", "created_at"`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), ts))

	u := &entity.User{Name: "Kavya Rao", Email: "kavya@company.com", PasswordHash: "h", Role: entity.RoleEmployee}
	require.NoError(t, NewUserRepository(mock).Create(context.Background(), u))
	assert.Equal(t, int64(5), u.ID)
	assert.Equal(t, ts, u.CreatedAt)
}
