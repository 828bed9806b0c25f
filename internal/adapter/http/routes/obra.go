package routes

import (
	"construtora_xyz/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDiarios = "/diarios"
	PathAlertas = "/alertas"
)

func addObraRoutes(rg *gin.RouterGroup, diarioHandler *handlers.DiarioHandler, alertaHandler *handlers.AlertaHandler) {
	diarios := rg.Group(PathDiarios)
	{
		diarios.POST("", diarioHandler.SalvarDiario)
		diarios.GET("/:diario_id", diarioHandler.GetDiario)
	}

	alertas := rg.Group(PathAlertas)
	{
		alertas.GET("", alertaHandler.ListAlertas)
		alertas.POST("/derivar", alertaHandler.DerivarAlertas)
		alertas.PATCH("/:alerta_id/lida", alertaHandler.MarcarLida)
	}
}
