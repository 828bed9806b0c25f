package handlers

import (
	"errors"
	"net/http"

	request "construtora_xyz/internal/adapter/http/dto/request"
	response "construtora_xyz/internal/adapter/http/dto/response"
	"construtora_xyz/internal/usecase"
	"construtora_xyz/internal/usecase/interfaces"
	"construtora_xyz/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstoquePayload = pkg.NewDomainErrorSimple("INVALID_STOCK_INPUT", "Invalid stock payload", http.StatusBadRequest)
)

// EstoqueHandler exposes the catalog/ledger reconciliation triggers.

type EstoqueHandler struct {
	usecase usecase.IEstoqueUseCase
}

func NewEstoqueHandler(uc usecase.IEstoqueUseCase) *EstoqueHandler {
	return &EstoqueHandler{usecase: uc}
}

func (h *EstoqueHandler) CreateInsumo(c *gin.Context) {
	var payload request.InsumoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstoquePayload.HTTPStatus, errInvalidEstoquePayload.ToHTTPError())
		return
	}

	insumo, err := h.usecase.CriarInsumo(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapEstoqueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInsumo(insumo))
}

// SincronizarInsumo reconciles the catalog entry into its warehouse ledger.
// The body is optional: an empty one performs a plain reconciliation, a
// present one books an additional entry first.
func (h *EstoqueHandler) SincronizarInsumo(c *gin.Context) {
	var payload request.SincronizacaoRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidEstoquePayload.HTTPStatus, errInvalidEstoquePayload.ToHTTPError())
			return
		}
	}

	estoque, err := h.usecase.SincronizarInsumoParaEstoque(c.Request.Context(), c.Param("insumo_id"), payload.Entrada, payload.Motivo)
	if err != nil {
		appErr := mapEstoqueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstoque(estoque))
}

// MovimentarEstoque applies a signed delta to the ledger and mirrors the
// result into the linked catalog entry.
func (h *EstoqueHandler) MovimentarEstoque(c *gin.Context) {
	var payload request.MovimentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstoquePayload.HTTPStatus, errInvalidEstoquePayload.ToHTTPError())
		return
	}

	estoque, err := h.usecase.SincronizarEstoqueParaInsumo(c.Request.Context(), c.Param("estoque_id"), payload.Quantidade, payload.Motivo)
	if err != nil {
		appErr := mapEstoqueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstoque(estoque))
}

// ImportarOrfaos materializes catalog entries for ledger records created
// before the reconciler existed.
func (h *EstoqueHandler) ImportarOrfaos(c *gin.Context) {
	importados, err := h.usecase.ImportarEstoquesSemVinculo(c.Request.Context())
	if err != nil {
		appErr := mapEstoqueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ImportacaoResponse{Importados: importados})
}

func mapEstoqueError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInsumoNaoEncontrado):
		return pkg.NewDomainErrorSimple("INSUMO_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstoqueNaoEncontrado):
		return pkg.NewDomainErrorSimple("ESTOQUE_NOT_FOUND", "Stock record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInsumoSemEstoque), errors.Is(err, usecase.ErrNomeInvalido), errors.Is(err, usecase.ErrQuantidadeInvalida), errors.Is(err, usecase.ErrComposicaoAninhada):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrConflitoVersao):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Record changed concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
