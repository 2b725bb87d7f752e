// Package memory is an in-process implementation of the repository
// contracts. It backs DB_DRIVER=memory and the service tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oksasatya/feedback-platform/internal/domain/entity"
	"github.com/oksasatya/feedback-platform/internal/domain/repository"
)

type state struct {
	users        map[int64]entity.User
	feedback     map[int64]entity.Feedback
	nextUser     int64
	nextFeedback int64
}

func (s *state) clone() *state {
	c := &state{
		users:        make(map[int64]entity.User, len(s.users)),
		feedback:     make(map[int64]entity.Feedback, len(s.feedback)),
		nextUser:     s.nextUser,
		nextFeedback: s.nextFeedback,
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.feedback {
		c.feedback[k] = v
	}
	return c
}

// Store serializes units of work behind one lock. Each transaction works
// on a copy of the data which replaces the live state only on commit.
type Store struct {
	mu  sync.Mutex
	cur *state
	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		cur: &state{users: map[int64]entity.User{}, feedback: map[int64]entity.Feedback{}},
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) WithTx(ctx context.Context, opts repository.TxOptions, fn func(r repository.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.cur.clone()
	tx := &tx{st: work, now: s.now, readOnly: opts.ReadOnly}
	if err := fn(repository.Repos{Users: (*userRepo)(tx), Feedback: (*feedbackRepo)(tx)}); err != nil {
		return err
	}
	if !opts.ReadOnly {
		s.cur = work
	}
	return nil
}

type tx struct {
	st       *state
	now      func() time.Time
	readOnly bool
}

func (t *tx) writable() error {
	if t.readOnly {
		return errReadOnly
	}
	return nil
}

type txError string

func (e txError) Error() string { return string(e) }

const (
	errReadOnly   txError = "memory: write in read-only transaction"
	errEmailTaken txError = "memory: email already exists"
)

type userRepo tx

func (r *userRepo) Create(ctx context.Context, u *entity.User) error {
	t := (*tx)(r)
	if err := t.writable(); err != nil {
		return err
	}
	for _, existing := range t.st.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return errEmailTaken
		}
	}
	t.st.nextUser++
	u.ID = t.st.nextUser
	if u.CreatedAt.IsZero() {
		u.CreatedAt = t.now()
	}
	t.st.users[u.ID] = *u
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, ok := r.st.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.st.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

// ListByManager scans every user, so it stops early on a cancelled context
// like a pgx query would
func (r *userRepo) ListByManager(ctx context.Context, managerID int64) ([]entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]entity.User, 0)
	for _, u := range r.st.users {
		if u.ReportsTo(managerID) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *userRepo) CountByManager(ctx context.Context, managerID int64) (int, error) {
	team, err := r.ListByManager(ctx, managerID)
	if err != nil {
		return 0, err
	}
	return len(team), nil
}

type feedbackRepo tx

func (r *feedbackRepo) Create(ctx context.Context, f *entity.Feedback) error {
	t := (*tx)(r)
	if err := t.writable(); err != nil {
		return err
	}
	t.st.nextFeedback++
	f.ID = t.st.nextFeedback
	t.st.feedback[f.ID] = *f
	return nil
}

func (r *feedbackRepo) GetByID(ctx context.Context, id int64) (*entity.Feedback, error) {
	f, ok := r.st.feedback[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &f, nil
}

func (r *feedbackRepo) List(ctx context.Context, owner repository.Owner, userID int64) ([]entity.Feedback, error) {
	out := make([]entity.Feedback, 0)
	for _, f := range r.st.feedback {
		if owns(owner, f, userID) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *feedbackRepo) Update(ctx context.Context, id int64, patch entity.FeedbackPatch, updatedAt time.Time) error {
	t := (*tx)(r)
	if err := t.writable(); err != nil {
		return err
	}
	f, ok := t.st.feedback[id]
	if !ok {
		return repository.ErrNotFound
	}
	patch.Apply(&f)
	f.UpdatedAt = updatedAt
	t.st.feedback[id] = f
	return nil
}

func (r *feedbackRepo) Acknowledge(ctx context.Context, id int64, at time.Time) error {
	t := (*tx)(r)
	if err := t.writable(); err != nil {
		return err
	}
	f, ok := t.st.feedback[id]
	if !ok {
		return repository.ErrNotFound
	}
	f.Acknowledged = true
	if f.AcknowledgedAt == nil {
		f.AcknowledgedAt = &at
	}
	t.st.feedback[id] = f
	return nil
}

func (r *feedbackRepo) Counts(ctx context.Context, owner repository.Owner, userID int64) (entity.FeedbackCounts, error) {
	var c entity.FeedbackCounts
	for _, f := range r.st.feedback {
		if !owns(owner, f, userID) {
			continue
		}
		c.Total++
		if f.Sentiment == entity.SentimentPositive {
			c.Positive++
		}
		if f.Acknowledged {
			c.Acknowledged++
		}
	}
	return c, nil
}

func owns(owner repository.Owner, f entity.Feedback, userID int64) bool {
	if owner == repository.OwnerManager {
		return f.ManagerID == userID
	}
	return f.EmployeeID == userID
}

var _ repository.Store = (*Store)(nil)
