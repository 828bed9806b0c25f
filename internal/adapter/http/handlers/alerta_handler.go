package handlers

import (
	"net/http"

	response "construtora_xyz/internal/adapter/http/dto/response"
	"construtora_xyz/internal/usecase"
	"construtora_xyz/pkg"

	"github.com/gin-gonic/gin"
)

// AlertaHandler exposes the notification deriver.

type AlertaHandler struct {
	usecase usecase.IAlertaUseCase
}

func NewAlertaHandler(uc usecase.IAlertaUseCase) *AlertaHandler {
	return &AlertaHandler{usecase: uc}
}

func (h *AlertaHandler) ListAlertas(c *gin.Context) {
	alertas, err := h.usecase.Listar(c.Request.Context())
	if err != nil {
		appErr := mapAlertaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAlertas(alertas))
}

// DerivarAlertas runs one derivation pass and returns only the alerts it
// appended.
func (h *AlertaHandler) DerivarAlertas(c *gin.Context) {
	novas, err := h.usecase.Derivar(c.Request.Context())
	if err != nil {
		appErr := mapAlertaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAlertas(novas))
}

func (h *AlertaHandler) MarcarLida(c *gin.Context) {
	if err := h.usecase.MarcarLida(c.Request.Context(), c.Param("alerta_id")); err != nil {
		appErr := mapAlertaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapAlertaError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
