package entity

import "time"

// Sentiment is the categorical tone of a feedback entry
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// Feedback is written by a manager about one of their direct reports.
// The manager owns the content; the employee owns the acknowledgment.
type Feedback struct {
	ID             int64
	ManagerID      int64
	EmployeeID     int64
	Strengths      string
	Improvements   string
	Sentiment      Sentiment
	Acknowledged   bool
	AcknowledgedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FeedbackPatch carries the optional fields of a feedback edit.
// A nil field is left untouched.
type FeedbackPatch struct {
	Strengths    *string
	Improvements *string
	Sentiment    *Sentiment
}

func (p FeedbackPatch) Empty() bool {
	return p.Strengths == nil && p.Improvements == nil && p.Sentiment == nil
}

// Apply copies the provided fields onto f
func (p FeedbackPatch) Apply(f *Feedback) {
	if p.Strengths != nil {
		f.Strengths = *p.Strengths
	}
	if p.Improvements != nil {
		f.Improvements = *p.Improvements
	}
	if p.Sentiment != nil {
		f.Sentiment = *p.Sentiment
	}
}

// ManagerStats are the dashboard counts shown to a manager
type ManagerStats struct {
	TeamMembers         int `json:"team_members"`
	TotalFeedback       int `json:"total_feedback"`
	PositiveCount       int `json:"positive_count"`
	UnacknowledgedCount int `json:"unacknowledged_count"`
}

// EmployeeStats are the dashboard counts shown to an employee
type EmployeeStats struct {
	TotalFeedback     int `json:"total_feedback"`
	AcknowledgedCount int `json:"acknowledged_count"`
	PendingCount      int `json:"pending_count"`
	PositiveCount     int `json:"positive_count"`
}

// FeedbackCounts is the raw aggregate over a set of feedback rows
type FeedbackCounts struct {
	Total        int
	Positive     int
	Acknowledged int
}
