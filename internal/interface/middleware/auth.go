package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/feedback-platform/internal/application"
	"github.com/oksasatya/feedback-platform/internal/domain/entity"
	"github.com/oksasatya/feedback-platform/pkg/apperrors"
	"github.com/oksasatya/feedback-platform/pkg/response"
)

const (
	CtxUserIDKey      = "userID"
	CtxCurrentUserKey = "currentUser"
)

// Auth validates the bearer token and loads the caller fresh from the store.
// It sets currentUser (*entity.User) and userID in the Gin context on success.
func Auth(auth *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := auth.CurrentUser(c.Request.Context(), bearerToken(c))
		if err != nil {
			ae := apperrors.As(err)
			c.Header("WWW-Authenticate", "Bearer")
			response.Abort(c, ae.HTTPStatus(), ae.Message, nil)
			return
		}
		c.Set(CtxCurrentUserKey, u)
		c.Set(CtxUserIDKey, strconv.FormatInt(u.ID, 10))
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// CurrentUser returns the user stored by Auth, or nil on public routes
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(CtxCurrentUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
