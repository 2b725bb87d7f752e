package application

import "github.com/oksasatya/feedback-platform/pkg/apperrors"

var (
	ErrInvalidCredentials = apperrors.NewUnauthorizedError("invalid credentials")
	ErrInvalidToken       = apperrors.NewUnauthorizedError("invalid authentication credentials")
	ErrUserNotFound       = apperrors.NewUnauthorizedError("user not found")

	ErrManagersOnlyTeam     = apperrors.NewForbiddenError("only managers can view team members")
	ErrManagersOnlyCreate   = apperrors.NewForbiddenError("only managers can create feedback")
	ErrManagersOnlyUpdate   = apperrors.NewForbiddenError("only managers can update feedback")
	ErrEmployeesOnlyAck     = apperrors.NewForbiddenError("only employees can acknowledge feedback")
	ErrNotInTeam            = apperrors.NewForbiddenError("employee not in your team")
	ErrFeedbackNotAvailable = apperrors.NewForbiddenError("feedback not found or not authorized")

	ErrNoFieldsToUpdate = apperrors.NewValidationError("no fields to update")
	ErrInvalidSentiment = apperrors.NewValidationError("sentiment must be one of: positive, neutral, negative")
	ErrBlankContent     = apperrors.NewValidationError("strengths and improvements must not be blank")
)
