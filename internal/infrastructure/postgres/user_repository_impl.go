package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/feedback-platform/internal/domain/entity"
	"github.com/oksasatya/feedback-platform/internal/domain/repository"
)

var userColumns = []any{"id", "name", "email", "password_hash", "role", "manager_id", "avatar", "created_at"}

type UserRepository struct {
	db querier
}

func NewUserRepository(db querier) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	query, args, err := dialect.Insert("users").Prepared(true).
		Rows(goqu.Record{
			"name":          u.Name,
			"email":         u.Email,
			"password_hash": u.PasswordHash,
			"role":          string(u.Role),
			"manager_id":    u.ManagerID,
			"avatar":        u.AvatarURL,
		}).
		Returning("id", "created_at").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build user insert: %w", err)
	}
	return r.db.QueryRow(ctx, query, args...).Scan(&u.ID, &u.CreatedAt)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getOne(ctx, goqu.Ex{"id": id})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, goqu.Ex{"email": email})
}

func (r *UserRepository) getOne(ctx context.Context, where goqu.Ex) (*entity.User, error) {
	query, args, err := dialect.From("users").Prepared(true).
		Select(userColumns...).
		Where(where).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build user select: %w", err)
	}
	u, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) ListByManager(ctx context.Context, managerID int64) ([]entity.User, error) {
	query, args, err := dialect.From("users").Prepared(true).
		Select(userColumns...).
		Where(goqu.Ex{"manager_id": managerID}).
		Order(goqu.C("name").Asc(), goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build team select: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

func (r *UserRepository) CountByManager(ctx context.Context, managerID int64) (int, error) {
	query, args, err := dialect.From("users").Prepared(true).
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.Ex{"manager_id": managerID}).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build team count: %w", err)
	}
	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var role string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role,
		&u.ManagerID, &u.AvatarURL, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Role = entity.Role(role)
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
