package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kudoswall/kudos-wall-backend/internal/application"
	"github.com/kudoswall/kudos-wall-backend/internal/domain"
	"github.com/kudoswall/kudos-wall-backend/internal/infrastructure/memory"
	"github.com/kudoswall/kudos-wall-backend/pkg/response"
	"github.com/kudoswall/kudos-wall-backend/pkg/validation"
)

// TestSupportHandler backs the acceptance-test endpoints. Only registered
// when the environment is uat or test; EmailCapture is the same instance
// injected into the register use case.
type TestSupportHandler struct {
	Svc    *application.TestSupportService
	Emails *memory.EmailCapture
	Logger *logrus.Logger
}

func NewTestSupportHandler(svc *application.TestSupportService, emails *memory.EmailCapture, logger *logrus.Logger) *TestSupportHandler {
	return &TestSupportHandler{Svc: svc, Emails: emails, Logger: logger}
}

// CreateUser POST /test-support/users
func (h *TestSupportHandler) CreateUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		response.Error(c, http.StatusBadRequest, "Missing required fields: name, email, password", nil)
		return
	}

	user, err := h.Svc.CreateTestUser(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		if domain.IsValidation(err) {
			response.Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("create test user failed")
		response.Error(c, http.StatusInternalServerError, "Failed to create test user", nil)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email.String(),
	}, "test user created")
}

// Cleanup POST /test-support/cleanup
func (h *TestSupportHandler) Cleanup(c *gin.Context) {
	if err := h.Svc.Cleanup(c.Request.Context()); err != nil {
		h.Logger.WithError(err).Error("test cleanup failed")
		response.Error(c, http.StatusInternalServerError, "Failed to cleanup test data", nil)
		return
	}
	if h.Emails != nil {
		h.Emails.Reset()
	}
	response.Success[any](c, http.StatusOK, nil, "Test data cleaned up successfully")
}

// VerifyEmailSent GET /test-support/email-verification?email=
func (h *TestSupportHandler) VerifyEmailSent(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Error(c, http.StatusBadRequest, "Missing required query parameter: email", nil)
		return
	}
	sent := h.Emails != nil && h.Emails.WasSentTo(email)
	response.Success(c, http.StatusOK, gin.H{"sent": sent}, "email verification")
}
