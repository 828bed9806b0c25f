package handlers

import (
	"context"
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
	errInvalidCompraPayload = pkg.NewDomainErrorSimple("INVALID_PURCHASE_INPUT", "Invalid purchase payload", http.StatusBadRequest)
)

// CompraHandler drives the purchase request lifecycle over HTTP.

type CompraHandler struct {
	usecase usecase.ICompraUseCase
}

func NewCompraHandler(uc usecase.ICompraUseCase) *CompraHandler {
	return &CompraHandler{usecase: uc}
}

func (h *CompraHandler) CreateCompra(c *gin.Context) {
	var payload request.CompraRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompraPayload.HTTPStatus, errInvalidCompraPayload.ToHTTPError())
		return
	}

	compra, err := h.usecase.CriarCompra(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCompraError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCompra(compra))
}

func (h *CompraHandler) GetCompra(c *gin.Context) {
	compra, err := h.usecase.GetByID(c.Request.Context(), c.Param("compra_id"))
	if err != nil {
		appErr := mapCompraError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompra(compra))
}

func (h *CompraHandler) AddCotacao(c *gin.Context) {
	var payload request.CotacaoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompraPayload.HTTPStatus, errInvalidCompraPayload.ToHTTPError())
		return
	}

	compra, err := h.usecase.AdicionarCotacao(c.Request.Context(), c.Param("compra_id"), payload.ToEntity())
	if err != nil {
		appErr := mapCompraError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompra(compra))
}

func (h *CompraHandler) AprovarCompra(c *gin.Context) {
	var payload request.AprovacaoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompraPayload.HTTPStatus, errInvalidCompraPayload.ToHTTPError())
		return
	}

	compra, err := h.usecase.Aprovar(c.Request.Context(), c.Param("compra_id"), payload.FornecedorID, payload.FormaPagamento, payload.DataPagamento)
	if err != nil {
		appErr := mapCompraError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompra(compra))
}

func (h *CompraHandler) RejeitarCompra(c *gin.Context) {
	h.patchCompra(c, h.usecase.Rejeitar)
}

func (h *CompraHandler) GerarPedido(c *gin.Context) {
	h.patchCompra(c, h.usecase.GerarPedido)
}

func (h *CompraHandler) MarcarRecebida(c *gin.Context) {
	h.patchCompra(c, h.usecase.MarcarRecebida)
}

func (h *CompraHandler) EnviarParaObra(c *gin.Context) {
	h.patchCompra(c, h.usecase.EnviarParaObra)
}

func (h *CompraHandler) patchCompra(
	c *gin.Context,
	updater func(ctx context.Context, compraID string) (entities.Compra, error),
) {
	compra, err := updater(c.Request.Context(), c.Param("compra_id"))
	if err != nil {
		appErr := mapCompraError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompra(compra))
}

func mapCompraError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCompraNaoEncontrada):
		return pkg.NewDomainErrorSimple("COMPRA_NOT_FOUND", "Purchase not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFornecedorNaoEncontrado):
		return pkg.NewDomainErrorSimple("FORNECEDOR_NOT_FOUND", "Supplier not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLimiteCotacoes):
		return pkg.NewDomainErrorSimple("QUOTE_LIMIT_REACHED", "Purchase already has the maximum number of quotes", http.StatusConflict)
	case errors.Is(err, usecase.ErrFornecedorDuplicado):
		return pkg.NewDomainErrorSimple("DUPLICATE_SUPPLIER_QUOTE", "Supplier already quoted this purchase", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransicaoInvalida), errors.Is(err, usecase.ErrPedidoJaGerado):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Purchase status does not allow this operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrFornecedorInativo), errors.Is(err, usecase.ErrCotacaoNaoEncontrada), errors.Is(err, usecase.ErrPrecoInvalido), errors.Is(err, usecase.ErrNomeInvalido), errors.Is(err, usecase.ErrQuantidadeInvalida):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
