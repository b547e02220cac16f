package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/kudoswall/kudos-wall-backend/internal/interface/http"
)

// TestSupportModule is only added to the registry when the environment is
// uat or test. The endpoints are unauthenticated on purpose; acceptance
// tests call them before any user exists.
type TestSupportModule struct {
	Handler *handlers.TestSupportHandler
}

func NewTestSupportModule(h *handlers.TestSupportHandler) *TestSupportModule {
	return &TestSupportModule{Handler: h}
}

func (m *TestSupportModule) Register(rg *gin.RouterGroup) {
	rg.POST("/test-support/users", m.Handler.CreateUser)
	rg.POST("/test-support/cleanup", m.Handler.Cleanup)
	rg.GET("/test-support/email-verification", m.Handler.VerifyEmailSent)
}
