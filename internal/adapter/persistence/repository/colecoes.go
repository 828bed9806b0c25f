package repository

import (
	"construtora_xyz/internal/domain/entities"
	"construtora_xyz/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// One table per named collection. Every table name can be overridden through
// its env var for local/staging setups.

var _ interfaces.IInsumoRepository = (*Colecao[entities.Insumo])(nil)
var _ interfaces.IEstoqueRepository = (*Colecao[entities.Estoque])(nil)

func NewInsumoRepository(ddb *dynamodb.Client) *Colecao[entities.Insumo] {
	return NewColecao[entities.Insumo](ddb, "INSUMOS_TABLE", "insumos")
}

func NewEstoqueRepository(ddb *dynamodb.Client) *Colecao[entities.Estoque] {
	return NewColecao[entities.Estoque](ddb, "ESTOQUES_TABLE", "estoques")
}

func NewCompraRepository(ddb *dynamodb.Client) *Colecao[entities.Compra] {
	return NewColecao[entities.Compra](ddb, "COMPRAS_TABLE", "compras")
}

func NewFornecedorRepository(ddb *dynamodb.Client) *Colecao[entities.Fornecedor] {
	return NewColecao[entities.Fornecedor](ddb, "FORNECEDORES_TABLE", "fornecedores")
}

func NewLeadRepository(ddb *dynamodb.Client) *Colecao[entities.Lead] {
	return NewColecao[entities.Lead](ddb, "LEADS_TABLE", "leads")
}

func NewOrcamentoRepository(ddb *dynamodb.Client) *Colecao[entities.Orcamento] {
	return NewColecao[entities.Orcamento](ddb, "ORCAMENTOS_TABLE", "orcamentos")
}

func NewContratoRepository(ddb *dynamodb.Client) *Colecao[entities.Contrato] {
	return NewColecao[entities.Contrato](ddb, "CONTRATOS_TABLE", "contratos")
}

func NewPlanejamentoRepository(ddb *dynamodb.Client) *Colecao[entities.Planejamento] {
	return NewColecao[entities.Planejamento](ddb, "PLANEJAMENTOS_TABLE", "planejamentos")
}

func NewDiarioRepository(ddb *dynamodb.Client) *Colecao[entities.DiarioObra] {
	return NewColecao[entities.DiarioObra](ddb, "DIARIOS_TABLE", "diarios")
}

func NewFinanceiroRepository(ddb *dynamodb.Client) *Colecao[entities.Financeiro] {
	return NewColecao[entities.Financeiro](ddb, "FINANCEIRO_TABLE", "financeiro")
}
