// Package seed provisions the demo team: one manager, three reports and a
// handful of feedback entries.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/feedback-platform/internal/domain/entity"
	repo "github.com/oksasatya/feedback-platform/internal/domain/repository"
	"github.com/oksasatya/feedback-platform/pkg/helpers"
)

const DemoPassword = "demo123"

type demoUser struct {
	name, email, avatar string
	role                entity.Role
}

var demoUsers = []demoUser{
	{"Priya Sharma", "priya@company.com", "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop", entity.RoleManager},
	{"Arjun Patel", "arjun@company.com", "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop", entity.RoleEmployee},
	{"Kavya Reddy", "kavya@company.com", "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop", entity.RoleEmployee},
	{"Rohan Kumar", "rohan@company.com", "https://images.pexels.com/photos/1043471/pexels-photo-1043471.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop", entity.RoleEmployee},
}

type demoFeedback struct {
	employee       string
	strengths      string
	improvements   string
	sentiment      entity.Sentiment
	createdAt      time.Time
	acknowledgedAt *time.Time
}

func at(s string) time.Time {
	t, err := time.Parse(time.DateTime, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func atPtr(s string) *time.Time {
	t := at(s)
	return &t
}

var demoFeedbacks = []demoFeedback{
	{
		employee:       "arjun@company.com",
		strengths:      "Excellent problem-solving skills and strong technical knowledge. Arjun consistently delivers high-quality code and is always willing to help team members.",
		improvements:   "Could benefit from more proactive communication during project updates. Consider taking more initiative in team meetings.",
		sentiment:      entity.SentimentPositive,
		createdAt:      at("2025-01-08 10:00:00"),
		acknowledgedAt: atPtr("2025-01-10 14:30:00"),
	},
	{
		employee:     "kavya@company.com",
		strengths:    "Outstanding project management skills and great attention to detail. Kavya has shown excellent leadership in cross-functional projects.",
		improvements: "Focus on time management when juggling multiple priorities. Consider delegating more tasks to optimize workflow.",
		sentiment:    entity.SentimentPositive,
		createdAt:    at("2025-01-12 11:00:00"),
	},
	{
		employee:       "rohan@company.com",
		strengths:      "Creative approach to problem-solving and strong collaboration skills. Rohan brings fresh perspectives to team discussions.",
		improvements:   "Work on meeting deadlines more consistently. Consider breaking down large tasks into smaller, manageable chunks.",
		sentiment:      entity.SentimentNeutral,
		createdAt:      at("2025-01-05 09:30:00"),
		acknowledgedAt: atPtr("2025-01-06 08:20:00"),
	},
	{
		employee:       "arjun@company.com",
		strengths:      "Showed great improvement in code documentation and testing practices. Arjun has become more collaborative with the QA team.",
		improvements:   "Continue working on presentation skills for client meetings. Practice explaining technical concepts to non-technical stakeholders.",
		sentiment:      entity.SentimentPositive,
		createdAt:      at("2024-12-18 16:45:00"),
		acknowledgedAt: atPtr("2024-12-21 09:15:00"),
	},
}

// Result reports what a seed run inserted
type Result struct {
	UsersCreated    int
	FeedbackCreated int
}

// Run inserts the demo data. Users whose email already exists are left
// alone; feedback is only added when the demo manager has none yet.
func Run(ctx context.Context, store repo.Store, logger *logrus.Logger) (Result, error) {
	hash, err := helpers.HashPassword(DemoPassword)
	if err != nil {
		return Result{}, fmt.Errorf("hash demo password: %w", err)
	}

	var res Result
	err = store.WithTx(ctx, repo.TxOptions{}, func(r repo.Repos) error {
		byEmail := make(map[string]*entity.User, len(demoUsers))
		var managerID *int64
		for _, du := range demoUsers {
			u, err := r.Users.GetByEmail(ctx, du.email)
			switch {
			case errors.Is(err, repo.ErrNotFound):
				avatar := du.avatar
				u = &entity.User{
					Name:         du.name,
					Email:        du.email,
					PasswordHash: hash,
					Role:         du.role,
					AvatarURL:    &avatar,
				}
				if du.role == entity.RoleEmployee {
					u.ManagerID = managerID
				}
				if err := r.Users.Create(ctx, u); err != nil {
					return fmt.Errorf("create user %s: %w", du.email, err)
				}
				res.UsersCreated++
			case err != nil:
				return err
			}
			if u.IsManager() {
				id := u.ID
				managerID = &id
			}
			byEmail[du.email] = u
		}

		if managerID == nil {
			return errors.New("demo manager missing")
		}
		existing, err := r.Feedback.Counts(ctx, repo.OwnerManager, *managerID)
		if err != nil {
			return err
		}
		if existing.Total > 0 {
			return nil
		}
		for _, df := range demoFeedbacks {
			employee := byEmail[df.employee]
			if !employee.ReportsTo(*managerID) {
				continue
			}
			f := &entity.Feedback{
				ManagerID:      *managerID,
				EmployeeID:     employee.ID,
				Strengths:      df.strengths,
				Improvements:   df.improvements,
				Sentiment:      df.sentiment,
				Acknowledged:   df.acknowledgedAt != nil,
				AcknowledgedAt: df.acknowledgedAt,
				CreatedAt:      df.createdAt,
				UpdatedAt:      df.createdAt,
			}
			if err := r.Feedback.Create(ctx, f); err != nil {
				return fmt.Errorf("create feedback for %s: %w", df.employee, err)
			}
			res.FeedbackCreated++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	helpers.LogInfo(logger, "demo data seeded", logrus.Fields{
		"users_created":    res.UsersCreated,
		"feedback_created": res.FeedbackCreated,
	})
	return res, nil
}
