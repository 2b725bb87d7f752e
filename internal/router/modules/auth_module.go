package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/feedback-platform/internal/interface/http"
)

// AuthModule exposes POST /api/auth/login behind a per-IP limiter
type AuthModule struct {
	Handler *handlers.AuthHandler
	Limit   gin.HandlerFunc
}

func NewAuthModule(h *handlers.AuthHandler, limit gin.HandlerFunc) *AuthModule {
	return &AuthModule{Handler: h, Limit: limit}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	chain := []gin.HandlerFunc{m.Handler.Login}
	if m.Limit != nil {
		chain = append([]gin.HandlerFunc{m.Limit}, chain...)
	}
	rg.POST("/auth/login", chain...)
}
