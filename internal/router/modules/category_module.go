package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/kudoswall/kudos-wall-backend/internal/container"
	handlers "github.com/kudoswall/kudos-wall-backend/internal/interface/http"
	"github.com/kudoswall/kudos-wall-backend/internal/interface/middleware"
)

type CategoryModule struct {
	Handler *handlers.CategoryHandler
}

func NewCategoryModule(h *handlers.CategoryHandler) *CategoryModule {
	return &CategoryModule{Handler: h}
}

func (m *CategoryModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetTokens()))
	{
		auth.GET("/categories", m.Handler.List)
	}
}
