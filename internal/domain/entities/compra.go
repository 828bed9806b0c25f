package entities

import "time"

// CompraStatus is the purchase request lifecycle.
//
// Regular flow: enviado -> em_cotacao -> aprovado -> comprado -> em_estoque
// -> na_obra. A rejection branch exits em_cotacao into negado. A direct
// purchase (CompraDireta) skips quoting and enters at aprovado.
type CompraStatus string

const (
	CompraStatusEnviado   CompraStatus = "enviado"
	CompraStatusEmCotacao CompraStatus = "em_cotacao"
	CompraStatusAprovado  CompraStatus = "aprovado"
	CompraStatusComprado  CompraStatus = "comprado"
	CompraStatusEmEstoque CompraStatus = "em_estoque"
	CompraStatusNaObra    CompraStatus = "na_obra"
	CompraStatusNegado    CompraStatus = "negado"
)

// MaxCotacoes caps competing quotes per purchase request.
const MaxCotacoes = 3

// Cotacao is a single supplier's quote against a purchase request.
type Cotacao struct {
	FornecedorID     string  `json:"fornecedor_id"`
	Preco            float64 `json:"preco"`
	PrazoEntregaDias int     `json:"prazo_entrega_dias"`
	Condicoes        string  `json:"condicoes,omitempty"`
	Selecionada      bool    `json:"selecionada"`
}

// Compra is a purchase request progressing through quoting, approval and
// delivery.
//
// Storage model (DynamoDB):
//   - PK: id
//   - quotes are embedded (never more than MaxCotacoes of them)

type Compra struct {
	ID                    string       `json:"id"`
	InsumoID              string       `json:"insumo_id,omitempty"`
	MaterialNome          string       `json:"material_nome"`
	Quantidade            float64      `json:"quantidade"`
	Unidade               string       `json:"unidade,omitempty"`
	Status                CompraStatus `json:"status"`
	Cotacoes              []Cotacao    `json:"cotacoes,omitempty"`
	FornecedorEscolhidoID string       `json:"fornecedor_escolhido_id,omitempty"`
	ValorTotal            float64      `json:"valor_total"`
	CompraDireta          bool         `json:"compra_direta"`
	PrecoUnitario         float64      `json:"preco_unitario,omitempty"`
	NumeroPedido          string       `json:"numero_pedido,omitempty"`
	FormaPagamento        string       `json:"forma_pagamento,omitempty"`
	DataPagamento         time.Time    `json:"data_pagamento,omitempty"`
	OrigemReposicao       bool         `json:"origem_reposicao,omitempty"`
	CreatedAt             time.Time    `json:"created_at"`
	UpdatedAt             time.Time    `json:"updated_at"`
}

func (c Compra) RegistroID() string { return c.ID }

// CotacaoDoFornecedor returns the quote submitted by the given supplier.
func (c Compra) CotacaoDoFornecedor(fornecedorID string) (Cotacao, bool) {
	for _, q := range c.Cotacoes {
		if q.FornecedorID == fornecedorID {
			return q, true
		}
	}
	return Cotacao{}, false
}
