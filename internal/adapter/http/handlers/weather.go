package handlers

import (
	"net/http"

	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WeatherHandler struct {
	gateway ports.WeatherGateway
}

func NewWeatherHandler(gateway ports.WeatherGateway) *WeatherHandler {
	return &WeatherHandler{gateway: gateway}
}

// CurrentConditions relays the provider's JSON body untouched. Any
// upstream failure collapses to a 500; the cause only goes to the log.
func (h *WeatherHandler) CurrentConditions(c *gin.Context) {
	body, err := h.gateway.CurrentConditions(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to fetch weather data", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgWeatherUnavailable, middleware.GetLang(c)),
		)
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
