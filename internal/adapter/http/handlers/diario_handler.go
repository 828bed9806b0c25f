package handlers

import (
	"errors"
	"net/http"

	request "construtora_xyz/internal/adapter/http/dto/request"
	response "construtora_xyz/internal/adapter/http/dto/response"
	"construtora_xyz/internal/usecase"
	"construtora_xyz/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDiarioPayload = pkg.NewDomainErrorSimple("INVALID_DIARY_INPUT", "Invalid diary payload", http.StatusBadRequest)
)

// DiarioHandler upserts site logs; the measurement block and the finance
// provisions are derived on every save.

type DiarioHandler struct {
	usecase usecase.IMedicaoUseCase
}

func NewDiarioHandler(uc usecase.IMedicaoUseCase) *DiarioHandler {
	return &DiarioHandler{usecase: uc}
}

func (h *DiarioHandler) SalvarDiario(c *gin.Context) {
	var payload request.DiarioRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDiarioPayload.HTTPStatus, errInvalidDiarioPayload.ToHTTPError())
		return
	}

	novo := payload.ID == ""
	diario, err := h.usecase.SalvarDiario(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapDiarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if novo {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromDiario(diario))
}

func (h *DiarioHandler) GetDiario(c *gin.Context) {
	diario, err := h.usecase.GetByID(c.Request.Context(), c.Param("diario_id"))
	if err != nil {
		appErr := mapDiarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDiario(diario))
}

func mapDiarioError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDiarioNaoEncontrado):
		return pkg.NewDomainErrorSimple("DIARIO_NOT_FOUND", "Diary not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanejamentoNaoEncontrado):
		return pkg.NewDomainErrorSimple("PLANEJAMENTO_NOT_FOUND", "Execution plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProgressoInvalido):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
