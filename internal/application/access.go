package application

import (
	"github.com/oksasatya/feedback-platform/internal/domain/entity"
)

// Access rules for the manager/employee hierarchy. Every check returns nil
// when the caller may proceed and a FORBIDDEN error otherwise.

// RequireManager rejects callers that are not managers with denied
func RequireManager(u *entity.User, denied error) error {
	if !u.IsManager() {
		return denied
	}
	return nil
}

// RequireEmployee rejects callers that are not employees with denied
func RequireEmployee(u *entity.User, denied error) error {
	if !u.IsEmployee() {
		return denied
	}
	return nil
}

// AuthorizeTeamMember allows a manager to act on one of their direct
// reports. A nil employee is treated as outside the team.
func AuthorizeTeamMember(manager, employee *entity.User) error {
	if err := RequireManager(manager, ErrManagersOnlyCreate); err != nil {
		return err
	}
	if employee == nil || !employee.IsEmployee() || !employee.ReportsTo(manager.ID) {
		return ErrNotInTeam
	}
	return nil
}

// AuthorizeFeedbackEdit allows only the authoring manager to edit content.
// A nil feedback reports the same error as a foreign one.
func AuthorizeFeedbackEdit(u *entity.User, f *entity.Feedback) error {
	if err := RequireManager(u, ErrManagersOnlyUpdate); err != nil {
		return err
	}
	if f == nil || f.ManagerID != u.ID {
		return ErrFeedbackNotAvailable
	}
	return nil
}

// AuthorizeAcknowledge allows only the receiving employee to acknowledge.
func AuthorizeAcknowledge(u *entity.User, f *entity.Feedback) error {
	if err := RequireEmployee(u, ErrEmployeesOnlyAck); err != nil {
		return err
	}
	if f == nil || f.EmployeeID != u.ID {
		return ErrFeedbackNotAvailable
	}
	return nil
}
