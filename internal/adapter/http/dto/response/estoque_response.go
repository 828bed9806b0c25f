package response

import (
	"time"

	"construtora_xyz/internal/domain/entities"
)

type InsumoResponse struct {
	ID              string    `json:"id"`
	Nome            string    `json:"nome"`
	Tipo            string    `json:"tipo"`
	Unidade         string    `json:"unidade,omitempty"`
	PrecoUnitario   float64   `json:"preco_unitario"`
	ControlaEstoque bool      `json:"controla_estoque"`
	Quantidade      float64   `json:"quantidade"`
	EstoqueID       string    `json:"estoque_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromInsumo(i entities.Insumo) InsumoResponse {
	return InsumoResponse{
		ID:              i.ID,
		Nome:            i.Nome,
		Tipo:            string(i.Tipo),
		Unidade:         i.Unidade,
		PrecoUnitario:   i.PrecoUnitario,
		ControlaEstoque: i.ControlaEstoque,
		Quantidade:      i.Quantidade,
		EstoqueID:       i.EstoqueID,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}

type MovimentacaoResponse struct {
	Tipo       string    `json:"tipo"`
	Quantidade float64   `json:"quantidade"`
	Motivo     string    `json:"motivo,omitempty"`
	Data       time.Time `json:"data"`
}

type EstoqueResponse struct {
	ID               string                 `json:"id"`
	InsumoID         string                 `json:"insumo_id,omitempty"`
	Nome             string                 `json:"nome"`
	Unidade          string                 `json:"unidade,omitempty"`
	Quantidade       float64                `json:"quantidade"`
	QuantidadeMinima float64                `json:"quantidade_minima,omitempty"`
	ValorUnitario    float64                `json:"valor_unitario"`
	Movimentacoes    []MovimentacaoResponse `json:"movimentacoes,omitempty"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

func FromEstoque(e entities.Estoque) EstoqueResponse {
	out := EstoqueResponse{
		ID:               e.ID,
		InsumoID:         e.InsumoID,
		Nome:             e.Nome,
		Unidade:          e.Unidade,
		Quantidade:       e.Quantidade,
		QuantidadeMinima: e.QuantidadeMinima,
		ValorUnitario:    e.ValorUnitario,
		UpdatedAt:        e.UpdatedAt,
	}
	for _, m := range e.Movimentacoes {
		out.Movimentacoes = append(out.Movimentacoes, MovimentacaoResponse{
			Tipo:       string(m.Tipo),
			Quantidade: m.Quantidade,
			Motivo:     m.Motivo,
			Data:       m.Data,
		})
	}
	return out
}

// ImportacaoResponse reports how many orphan ledger records were imported
// into the catalog.
type ImportacaoResponse struct {
	Importados int `json:"importados"`
}
