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
	errInvalidComercialPayload = pkg.NewDomainErrorSimple("INVALID_SALES_INPUT", "Invalid sales payload", http.StatusBadRequest)
)

// ComercialHandler covers the lead and budget half of the sales cascade.

type ComercialHandler struct {
	leads      usecase.ILeadUseCase
	orcamentos usecase.IOrcamentoUseCase
}

func NewComercialHandler(leads usecase.ILeadUseCase, orcamentos usecase.IOrcamentoUseCase) *ComercialHandler {
	return &ComercialHandler{leads: leads, orcamentos: orcamentos}
}

func (h *ComercialHandler) CreateLead(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidComercialPayload.HTTPStatus, errInvalidComercialPayload.ToHTTPError())
		return
	}

	lead, err := h.leads.CriarLead(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapComercialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLead(lead))
}

// PatchLeadEstagio moves a lead through the pipeline; moving into fechado
// spawns the draft budget.
func (h *ComercialHandler) PatchLeadEstagio(c *gin.Context) {
	var payload request.EstagioRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidComercialPayload.HTTPStatus, errInvalidComercialPayload.ToHTTPError())
		return
	}

	lead, err := h.leads.AtualizarEstagio(c.Request.Context(), c.Param("lead_id"), entities.LeadEstagio(payload.Estagio))
	if err != nil {
		appErr := mapComercialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

func (h *ComercialHandler) GetOrcamento(c *gin.Context) {
	orcamento, err := h.orcamentos.GetByID(c.Request.Context(), c.Param("orcamento_id"))
	if err != nil {
		appErr := mapComercialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrcamento(orcamento))
}

func (h *ComercialHandler) PatchOrcamentoStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidComercialPayload.HTTPStatus, errInvalidComercialPayload.ToHTTPError())
		return
	}

	orcamento, err := h.orcamentos.AtualizarStatus(c.Request.Context(), c.Param("orcamento_id"), entities.OrcamentoStatus(payload.Status))
	if err != nil {
		appErr := mapComercialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrcamento(orcamento))
}

func (h *ComercialHandler) PutOrcamentoEtapas(c *gin.Context) {
	var payload request.EtapasRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidComercialPayload.HTTPStatus, errInvalidComercialPayload.ToHTTPError())
		return
	}

	orcamento, err := h.orcamentos.AtualizarEtapas(c.Request.Context(), c.Param("orcamento_id"), payload.ToEntities())
	if err != nil {
		appErr := mapComercialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrcamento(orcamento))
}

func mapComercialError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrLeadNaoEncontrado):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrcamentoNaoEncontrado):
		return pkg.NewDomainErrorSimple("ORCAMENTO_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstagioInvalido):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrcamentoTransicao):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Budget status only moves forward", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
