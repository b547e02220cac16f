package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kudoswall/kudos-wall-backend/internal/application"
	"github.com/kudoswall/kudos-wall-backend/pkg/response"
)

type CategoryHandler struct {
	Svc    *application.CategoryService
	Logger *logrus.Logger
}

func NewCategoryHandler(svc *application.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{Svc: svc, Logger: logger}
}

// List GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.Svc.GetCategories(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list categories failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch categories", nil)
		return
	}
	response.Success(c, http.StatusOK, categories, "categories")
}
