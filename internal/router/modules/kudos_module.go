package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kudoswall/kudos-wall-backend/internal/container"
	handlers "github.com/kudoswall/kudos-wall-backend/internal/interface/http"
	"github.com/kudoswall/kudos-wall-backend/internal/interface/middleware"
)

type KudosModule struct {
	Handler *handlers.KudosHandler
}

func NewKudosModule(h *handlers.KudosHandler) *KudosModule {
	return &KudosModule{Handler: h}
}

func (m *KudosModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetTokens()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/kudos", m.Handler.Create)
	}
}
