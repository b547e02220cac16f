package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kudoswall/kudos-wall-backend/internal/application"
	"github.com/kudoswall/kudos-wall-backend/internal/interface/middleware"
	"github.com/kudoswall/kudos-wall-backend/pkg/response"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Recipients GET /users/recipients — everyone except the caller, for the
// recipient picker.
func (h *UserHandler) Recipients(c *gin.Context) {
	callerID := c.GetString(middleware.CtxUserIDKey)
	recipients, err := h.Svc.GetRecipients(c.Request.Context(), callerID)
	if err != nil {
		h.Logger.WithError(err).Error("list recipients failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch recipients", nil)
		return
	}
	response.Success(c, http.StatusOK, recipients, "recipients")
}
