package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/feedback-platform/internal/interface/http"
)

type FeedbackModule struct {
	Handler *handlers.FeedbackHandler
	Guard   Guard
}

func NewFeedbackModule(h *handlers.FeedbackHandler, g Guard) *FeedbackModule {
	return &FeedbackModule{Handler: h, Guard: g}
}

// Role checks live in the service so each rejection carries its own message
func (m *FeedbackModule) Register(rg *gin.RouterGroup) {
	fb := m.Guard.Group(rg, "/feedback")
	fb.GET("", m.Handler.List)
	fb.POST("", m.Handler.Create)
	fb.PUT("/:id", m.Handler.Update)
	fb.POST("/:id/acknowledge", m.Handler.Acknowledge)
}
