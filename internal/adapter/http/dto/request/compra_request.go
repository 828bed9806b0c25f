package request

import (
	"strings"
	"time"

	"construtora_xyz/internal/domain/entities"
)

type CompraRequest struct {
	InsumoID      string  `json:"insumo_id"`
	MaterialNome  string  `json:"material_nome" binding:"required"`
	Quantidade    float64 `json:"quantidade" binding:"required"`
	Unidade       string  `json:"unidade"`
	CompraDireta  bool    `json:"compra_direta"`
	PrecoUnitario float64 `json:"preco_unitario"`
}

func (r CompraRequest) ToEntity() entities.Compra {
	return entities.Compra{
		InsumoID:      strings.TrimSpace(r.InsumoID),
		MaterialNome:  strings.TrimSpace(r.MaterialNome),
		Quantidade:    r.Quantidade,
		Unidade:       r.Unidade,
		CompraDireta:  r.CompraDireta,
		PrecoUnitario: r.PrecoUnitario,
	}
}

type CotacaoRequest struct {
	FornecedorID     string  `json:"fornecedor_id" binding:"required"`
	Preco            float64 `json:"preco" binding:"required"`
	PrazoEntregaDias int     `json:"prazo_entrega_dias"`
	Condicoes        string  `json:"condicoes"`
}

func (r CotacaoRequest) ToEntity() entities.Cotacao {
	return entities.Cotacao{
		FornecedorID:     strings.TrimSpace(r.FornecedorID),
		Preco:            r.Preco,
		PrazoEntregaDias: r.PrazoEntregaDias,
		Condicoes:        r.Condicoes,
	}
}

// AprovacaoRequest approves a purchase. FornecedorID selects the winning
// quote; a direct purchase may omit it.
type AprovacaoRequest struct {
	FornecedorID   string    `json:"fornecedor_id"`
	FormaPagamento string    `json:"forma_pagamento"`
	DataPagamento  time.Time `json:"data_pagamento"`
}
