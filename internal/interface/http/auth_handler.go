package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kudoswall/kudos-wall-backend/internal/application"
	"github.com/kudoswall/kudos-wall-backend/internal/domain"
	"github.com/kudoswall/kudos-wall-backend/pkg/response"
	"github.com/kudoswall/kudos-wall-backend/pkg/validation"
)

// AuthHandler exposes registration and login. Domain rules produce the
// user-facing messages, so the request structs carry no validation tags
// beyond shape.
type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"roleId"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserAlreadyExists):
			response.Error(c, http.StatusConflict, err.Error(), nil)
		case domain.IsValidation(err):
			response.Error(c, http.StatusBadRequest, err.Error(), nil)
		default:
			h.Logger.WithError(err).Error("register failed")
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, res, "user registered")
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), application.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case domain.IsValidation(err):
			response.Error(c, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, application.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, err.Error(), nil)
		default:
			h.Logger.WithError(err).Error("login failed")
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, res, "login successful")
}
