package routes

import (
	"construtora_xyz/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInsumos  = "/insumos"
	PathEstoques = "/estoques"
	PathCompras  = "/compras"
)

func addSuprimentosRoutes(rg *gin.RouterGroup, estoqueHandler *handlers.EstoqueHandler, compraHandler *handlers.CompraHandler) {
	insumos := rg.Group(PathInsumos)
	{
		insumos.POST("", estoqueHandler.CreateInsumo)
		insumos.POST("/:insumo_id/sincronizar-estoque", estoqueHandler.SincronizarInsumo)
	}

	estoques := rg.Group(PathEstoques)
	{
		estoques.POST("/:estoque_id/movimentar", estoqueHandler.MovimentarEstoque)
		estoques.POST("/importar-orfaos", estoqueHandler.ImportarOrfaos)
	}

	compras := rg.Group(PathCompras)
	{
		compras.POST("", compraHandler.CreateCompra)
		compras.GET("/:compra_id", compraHandler.GetCompra)
		compras.POST("/:compra_id/cotacoes", compraHandler.AddCotacao)
		compras.PATCH("/:compra_id/aprovar", compraHandler.AprovarCompra)
		compras.PATCH("/:compra_id/rejeitar", compraHandler.RejeitarCompra)
		compras.POST("/:compra_id/pedido", compraHandler.GerarPedido)
		compras.PATCH("/:compra_id/receber", compraHandler.MarcarRecebida)
		compras.PATCH("/:compra_id/enviar-obra", compraHandler.EnviarParaObra)
	}
}
