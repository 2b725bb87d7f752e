package postgres

import (
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/oksasatya/feedback-platform/internal/domain/entity"
	"github.com/oksasatya/feedback-platform/internal/domain/repository"
)

var feedbackColumns = []any{
	"id", "manager_id", "employee_id", "strengths", "improvements", "sentiment",
	"acknowledged", "acknowledged_at", "created_at", "updated_at",
}

func ownerColumn(owner repository.Owner) string {
	if owner == repository.OwnerManager {
		return "manager_id"
	}
	return "employee_id"
}

// patchRecord maps the provided fields of a patch onto column assignments.
// updated_at is always bumped.
func patchRecord(p entity.FeedbackPatch, updatedAt time.Time) goqu.Record {
	rec := goqu.Record{"updated_at": updatedAt}
	if p.Strengths != nil {
		rec["strengths"] = *p.Strengths
	}
	if p.Improvements != nil {
		rec["improvements"] = *p.Improvements
	}
	if p.Sentiment != nil {
		rec["sentiment"] = string(*p.Sentiment)
	}
	return rec
}

func insertFeedbackSQL(f *entity.Feedback) (string, []any, error) {
	return dialect.Insert("feedback").Prepared(true).
		Rows(goqu.Record{
			"manager_id":      f.ManagerID,
			"employee_id":     f.EmployeeID,
			"strengths":       f.Strengths,
			"improvements":    f.Improvements,
			"sentiment":       string(f.Sentiment),
			"acknowledged":    f.Acknowledged,
			"acknowledged_at": f.AcknowledgedAt,
			"created_at":      f.CreatedAt,
			"updated_at":      f.UpdatedAt,
		}).
		Returning("id").
		ToSQL()
}

func listFeedbackSQL(owner repository.Owner, userID int64) (string, []any, error) {
	return dialect.From("feedback").Prepared(true).
		Select(feedbackColumns...).
		Where(goqu.Ex{ownerColumn(owner): userID}).
		Order(goqu.C("created_at").Desc(), goqu.C("id").Asc()).
		ToSQL()
}

func updateFeedbackSQL(id int64, p entity.FeedbackPatch, updatedAt time.Time) (string, []any, error) {
	return dialect.Update("feedback").Prepared(true).
		Set(patchRecord(p, updatedAt)).
		Where(goqu.Ex{"id": id}).
		ToSQL()
}

func acknowledgeFeedbackSQL(id int64, at time.Time) (string, []any, error) {
	return dialect.Update("feedback").Prepared(true).
		Set(goqu.Record{
			"acknowledged":    true,
			"acknowledged_at": goqu.L("COALESCE(acknowledged_at, ?)", at),
		}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
}

func countFeedbackSQL(owner repository.Owner, userID int64) (string, []any, error) {
	return dialect.From("feedback").Prepared(true).
		Select(
			goqu.COUNT(goqu.Star()),
			goqu.L("COUNT(*) FILTER (WHERE sentiment = ?)", string(entity.SentimentPositive)),
			goqu.L("COUNT(*) FILTER (WHERE acknowledged)"),
		).
		Where(goqu.Ex{ownerColumn(owner): userID}).
		ToSQL()
}
