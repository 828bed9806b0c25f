package response

import (
	"time"

	"construtora_xyz/internal/domain/entities"
)

type CotacaoResponse struct {
	FornecedorID     string  `json:"fornecedor_id"`
	Preco            float64 `json:"preco"`
	PrazoEntregaDias int     `json:"prazo_entrega_dias"`
	Condicoes        string  `json:"condicoes,omitempty"`
	Selecionada      bool    `json:"selecionada"`
}

type CompraResponse struct {
	ID                    string            `json:"id"`
	InsumoID              string            `json:"insumo_id,omitempty"`
	MaterialNome          string            `json:"material_nome"`
	Quantidade            float64           `json:"quantidade"`
	Unidade               string            `json:"unidade,omitempty"`
	Status                string            `json:"status"`
	Cotacoes              []CotacaoResponse `json:"cotacoes,omitempty"`
	FornecedorEscolhidoID string            `json:"fornecedor_escolhido_id,omitempty"`
	ValorTotal            float64           `json:"valor_total"`
	CompraDireta          bool              `json:"compra_direta"`
	NumeroPedido          string            `json:"numero_pedido,omitempty"`
	OrigemReposicao       bool              `json:"origem_reposicao,omitempty"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
}

func FromCompra(c entities.Compra) CompraResponse {
	out := CompraResponse{
		ID:                    c.ID,
		InsumoID:              c.InsumoID,
		MaterialNome:          c.MaterialNome,
		Quantidade:            c.Quantidade,
		Unidade:               c.Unidade,
		Status:                string(c.Status),
		FornecedorEscolhidoID: c.FornecedorEscolhidoID,
		ValorTotal:            c.ValorTotal,
		CompraDireta:          c.CompraDireta,
		NumeroPedido:          c.NumeroPedido,
		OrigemReposicao:       c.OrigemReposicao,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
	for _, q := range c.Cotacoes {
		out.Cotacoes = append(out.Cotacoes, CotacaoResponse{
			FornecedorID:     q.FornecedorID,
			Preco:            q.Preco,
			PrazoEntregaDias: q.PrazoEntregaDias,
			Condicoes:        q.Condicoes,
			Selecionada:      q.Selecionada,
		})
	}
	return out
}
