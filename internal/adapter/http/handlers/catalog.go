package handlers

import (
	"net/http"

	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalogService ports.CatalogService
}

func NewCatalogHandler(catalogService ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list categories", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListCategories, middleware.GetLang(c)),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategories(categories))
}

func (h *CatalogHandler) ListPriorities(c *gin.Context) {
	priorities, err := h.catalogService.ListPriorities(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list priorities", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListPriorities, middleware.GetLang(c)),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToPriorities(priorities))
}

func (h *CatalogHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.catalogService.ListStatuses(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list statuses", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListStatuses, middleware.GetLang(c)),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToStatuses(statuses))
}
