package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kudoswall/kudos-wall-backend/internal/application"
	"github.com/kudoswall/kudos-wall-backend/internal/domain"
	"github.com/kudoswall/kudos-wall-backend/internal/interface/middleware"
	"github.com/kudoswall/kudos-wall-backend/pkg/response"
	"github.com/kudoswall/kudos-wall-backend/pkg/validation"
)

type KudosHandler struct {
	Svc    *application.KudosService
	Logger *logrus.Logger
}

func NewKudosHandler(svc *application.KudosService, logger *logrus.Logger) *KudosHandler {
	return &KudosHandler{Svc: svc, Logger: logger}
}

type createKudosRequest struct {
	RecipientID string `json:"recipientId"`
	Message     string `json:"message"`
	CategoryID  int    `json:"categoryId"`
}

// Create POST /kudos. The sender is always the authenticated user; a
// senderId in the body is ignored.
func (h *KudosHandler) Create(c *gin.Context) {
	senderID := c.GetString(middleware.CtxUserIDKey)

	var req createKudosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.CreateKudos(c.Request.Context(), application.CreateKudosInput{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		CategoryID:  req.CategoryID,
		Message:     req.Message,
	})
	if err != nil {
		switch {
		case domain.IsValidation(err),
			errors.Is(err, application.ErrInvalidSender),
			errors.Is(err, application.ErrSenderNotLead),
			errors.Is(err, application.ErrInvalidCategory),
			errors.Is(err, application.ErrInvalidRecipient):
			response.Error(c, http.StatusBadRequest, err.Error(), nil)
		default:
			h.Logger.WithError(err).Error("create kudos failed")
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, res, "kudos created")
}
