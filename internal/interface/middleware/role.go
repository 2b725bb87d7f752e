package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/feedback-platform/internal/domain/entity"
	"github.com/oksasatya/feedback-platform/pkg/apperrors"
	"github.com/oksasatya/feedback-platform/pkg/response"
)

// RequireRole aborts with denied unless the authenticated user has one of
// roles. It must run after Auth.
func RequireRole(denied *apperrors.AppError, roles ...entity.Role) gin.HandlerFunc {
	allowed := make(map[entity.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	if denied == nil {
		denied = apperrors.NewForbiddenError("forbidden")
	}
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			response.Abort(c, http.StatusUnauthorized, "not authenticated", nil)
			return
		}
		if !allowed[u.Role] {
			response.Abort(c, denied.HTTPStatus(), denied.Message, nil)
			return
		}
		c.Next()
	}
}
