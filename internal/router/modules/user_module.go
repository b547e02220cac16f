package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/kudoswall/kudos-wall-backend/internal/container"
	handlers "github.com/kudoswall/kudos-wall-backend/internal/interface/http"
	"github.com/kudoswall/kudos-wall-backend/internal/interface/middleware"
)

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetTokens()))
	{
		auth.GET("/users/recipients", m.Handler.Recipients)
	}
}
