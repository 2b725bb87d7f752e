package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/feedback-platform/internal/application"
	"github.com/oksasatya/feedback-platform/internal/interface/middleware"
)

type UserHandler struct {
	Service *application.UserService
	Logger  *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Service: svc, Logger: logger}
}

// Me GET /api/users/me
func (h *UserHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, toUserResponse(middleware.CurrentUser(c)))
}

// Team GET /api/users/team
func (h *UserHandler) Team(c *gin.Context) {
	team, err := h.Service.Team(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponses(team))
}
