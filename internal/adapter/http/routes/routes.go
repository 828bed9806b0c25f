package routes

import (
	"log"
	"os"
	"strconv"

	_ "construtora_xyz/docs" // swagger spec registration
	"construtora_xyz/internal/adapter/http/handlers"
	repository2 "construtora_xyz/internal/adapter/persistence/repository"
	"construtora_xyz/internal/infrastructure/alerts"
	"construtora_xyz/internal/infrastructure/database"
	"construtora_xyz/internal/infrastructure/documents"
	"construtora_xyz/internal/usecase"
	"construtora_xyz/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	insumoRepo := repository2.NewInsumoRepository(ddb)
	estoqueRepo := repository2.NewEstoqueRepository(ddb)
	compraRepo := repository2.NewCompraRepository(ddb)
	fornecedorRepo := repository2.NewFornecedorRepository(ddb)
	leadRepo := repository2.NewLeadRepository(ddb)
	orcamentoRepo := repository2.NewOrcamentoRepository(ddb)
	contratoRepo := repository2.NewContratoRepository(ddb)
	planejamentoRepo := repository2.NewPlanejamentoRepository(ddb)
	diarioRepo := repository2.NewDiarioRepository(ddb)
	financeiroRepo := repository2.NewFinanceiroRepository(ddb)

	estoqueUseCase := usecase.NewEstoqueUseCase(insumoRepo, estoqueRepo, compraRepo)
	compraUseCase := usecase.NewCompraUseCase(compraRepo, fornecedorRepo, financeiroRepo, estoqueUseCase)
	leadUseCase := usecase.NewLeadUseCase(leadRepo, orcamentoRepo)
	orcamentoUseCase := usecase.NewOrcamentoUseCase(orcamentoRepo)

	// The renderer is an optional external gateway; without its endpoint the
	// contract keeps only the filled text.
	var renderer interfaces.IDocumentRenderer
	httpRenderer, err := documents.NewHTTPRenderer(os.Getenv("DOCUMENT_RENDERER_URL"))
	if err != nil {
		log.Printf("Document renderer not configured: %v", err)
	} else {
		renderer = httpRenderer
	}

	contratoUseCase := usecase.NewContratoUseCase(orcamentoRepo, contratoRepo, planejamentoRepo, renderer)
	medicaoUseCase := usecase.NewMedicaoUseCase(planejamentoRepo, orcamentoRepo, diarioRepo, financeiroRepo)
	alertaUseCase := usecase.NewAlertaUseCase(estoqueRepo, compraRepo, contratoRepo, alerts.NewMemoryStore())

	estoqueHandler := handlers.NewEstoqueHandler(estoqueUseCase)
	compraHandler := handlers.NewCompraHandler(compraUseCase)
	comercialHandler := handlers.NewComercialHandler(leadUseCase, orcamentoUseCase)
	contratoHandler := handlers.NewContratoHandler(contratoUseCase)
	diarioHandler := handlers.NewDiarioHandler(medicaoUseCase)
	alertaHandler := handlers.NewAlertaHandler(alertaUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSuprimentosRoutes(v1, estoqueHandler, compraHandler)
	addComercialRoutes(v1, comercialHandler, contratoHandler)
	addObraRoutes(v1, diarioHandler, alertaHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
