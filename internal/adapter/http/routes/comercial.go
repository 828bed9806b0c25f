package routes

import (
	"construtora_xyz/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads      = "/leads"
	PathOrcamentos = "/orcamentos"
	PathContratos  = "/contratos"
)

func addComercialRoutes(rg *gin.RouterGroup, comercialHandler *handlers.ComercialHandler, contratoHandler *handlers.ContratoHandler) {
	leads := rg.Group(PathLeads)
	{
		leads.POST("", comercialHandler.CreateLead)
		leads.PATCH("/:lead_id/estagio", comercialHandler.PatchLeadEstagio)
	}

	orcamentos := rg.Group(PathOrcamentos)
	{
		orcamentos.GET("/:orcamento_id", comercialHandler.GetOrcamento)
		orcamentos.PATCH("/:orcamento_id/status", comercialHandler.PatchOrcamentoStatus)
		orcamentos.PUT("/:orcamento_id/etapas", comercialHandler.PutOrcamentoEtapas)
		orcamentos.POST("/:orcamento_id/contrato", contratoHandler.CreateContrato)
	}

	contratos := rg.Group(PathContratos)
	{
		contratos.GET("/:contrato_id", contratoHandler.GetContrato)
		contratos.PATCH("/:contrato_id/status", contratoHandler.PatchContratoStatus)
		contratos.POST("/:contrato_id/aditivos", contratoHandler.AddAditivo)
	}
}
