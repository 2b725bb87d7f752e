package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/feedback-platform/internal/interface/http"
)

type DashboardModule struct {
	Handler *handlers.DashboardHandler
	Guard   Guard
}

func NewDashboardModule(h *handlers.DashboardHandler, g Guard) *DashboardModule {
	return &DashboardModule{Handler: h, Guard: g}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	m.Guard.Group(rg, "/dashboard").GET("/stats", m.Handler.Stats)
}
