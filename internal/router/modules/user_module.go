package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/feedback-platform/internal/application"
	"github.com/oksasatya/feedback-platform/internal/domain/entity"
	handlers "github.com/oksasatya/feedback-platform/internal/interface/http"
	"github.com/oksasatya/feedback-platform/internal/interface/middleware"
)

// UserModule serves /api/users/me and /api/users/team
type UserModule struct {
	Handler *handlers.UserHandler
	Guard   Guard
}

func NewUserModule(h *handlers.UserHandler, g Guard) *UserModule {
	return &UserModule{Handler: h, Guard: g}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := m.Guard.Group(rg, "/users")
	users.GET("/me", m.Handler.Me)
	users.GET("/team", middleware.RequireRole(application.ErrManagersOnlyTeam, entity.RoleManager), m.Handler.Team)
}
