package handlers

import (
	"errors"
	"net/http"

	request "construtora_xyz/internal/adapter/http/dto/request"
	response "construtora_xyz/internal/adapter/http/dto/response"
	"construtora_xyz/internal/domain/entities"
	"construtora_xyz/internal/usecase"
	"construtora_xyz/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidContratoPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)
)

// ContratoHandler generates contracts from budgets and propagates their
// status back into the budget lifecycle.

type ContratoHandler struct {
	usecase usecase.IContratoUseCase
}

func NewContratoHandler(uc usecase.IContratoUseCase) *ContratoHandler {
	return &ContratoHandler{usecase: uc}
}

func (h *ContratoHandler) CreateContrato(c *gin.Context) {
	var payload request.ContratoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContratoPayload.HTTPStatus, errInvalidContratoPayload.ToHTTPError())
		return
	}

	contrato, err := h.usecase.CriarContrato(c.Request.Context(), c.Param("orcamento_id"), payload.Template, payload.ToSignatarios())
	if err != nil {
		appErr := mapContratoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContrato(contrato))
}

func (h *ContratoHandler) GetContrato(c *gin.Context) {
	contrato, err := h.usecase.GetByID(c.Request.Context(), c.Param("contrato_id"))
	if err != nil {
		appErr := mapContratoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContrato(contrato))
}

func (h *ContratoHandler) PatchContratoStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContratoPayload.HTTPStatus, errInvalidContratoPayload.ToHTTPError())
		return
	}

	contrato, err := h.usecase.AtualizarStatus(c.Request.Context(), c.Param("contrato_id"), entities.ContratoStatus(payload.Status))
	if err != nil {
		appErr := mapContratoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContrato(contrato))
}

func (h *ContratoHandler) AddAditivo(c *gin.Context) {
	var payload request.AditivoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContratoPayload.HTTPStatus, errInvalidContratoPayload.ToHTTPError())
		return
	}

	contrato, err := h.usecase.AdicionarAditivo(c.Request.Context(), c.Param("contrato_id"), payload.ToEntity())
	if err != nil {
		appErr := mapContratoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContrato(contrato))
}

func mapContratoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrContratoNaoEncontrado):
		return pkg.NewDomainErrorSimple("CONTRATO_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrcamentoNaoEncontrado):
		return pkg.NewDomainErrorSimple("ORCAMENTO_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContratoJaExiste):
		return pkg.NewDomainErrorSimple("CONTRATO_ALREADY_EXISTS", "Contract already exists for this budget", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrcamentoForaJuridico):
		return pkg.NewDomainErrorSimple("ORCAMENTO_NOT_IN_JURIDICO", "Budget must be in juridico to generate a contract", http.StatusConflict)
	case errors.Is(err, usecase.ErrTemplateVazio), errors.Is(err, usecase.ErrContratoStatusInvalido):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
