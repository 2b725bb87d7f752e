package handlers

import (
	"time"

	"github.com/oksasatya/feedback-platform/internal/domain/entity"
)

// UserResponse is the public shape of a user; the password hash never leaves the server
type UserResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	ManagerID *int64  `json:"manager_id"`
	Avatar    *string `json:"avatar"`
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		ManagerID: u.ManagerID,
		Avatar:    u.AvatarURL,
	}
}

func toUserResponses(users []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out
}

type FeedbackResponse struct {
	ID             int64      `json:"id"`
	ManagerID      int64      `json:"manager_id"`
	EmployeeID     int64      `json:"employee_id"`
	Strengths      string     `json:"strengths"`
	Improvements   string     `json:"improvements"`
	Sentiment      string     `json:"sentiment"`
	Acknowledged   bool       `json:"acknowledged"`
	AcknowledgedAt *time.Time `json:"acknowledged_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func toFeedbackResponses(items []entity.Feedback) []FeedbackResponse {
	out := make([]FeedbackResponse, 0, len(items))
	for _, f := range items {
		out = append(out, FeedbackResponse{
			ID:             f.ID,
			ManagerID:      f.ManagerID,
			EmployeeID:     f.EmployeeID,
			Strengths:      f.Strengths,
			Improvements:   f.Improvements,
			Sentiment:      string(f.Sentiment),
			Acknowledged:   f.Acknowledged,
			AcknowledgedAt: f.AcknowledgedAt,
			CreatedAt:      f.CreatedAt,
			UpdatedAt:      f.UpdatedAt,
		})
	}
	return out
}
