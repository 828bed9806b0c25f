package request

import (
	"strings"

	"construtora_xyz/internal/domain/entities"
)

type ComponenteRequest struct {
	InsumoID   string  `json:"insumo_id" binding:"required"`
	Quantidade float64 `json:"quantidade" binding:"required"`
}

// InsumoRequest creates a catalog entry. Quantidade is the opening balance;
// when ControlaEstoque is set the warehouse ledger is spawned on creation.
type InsumoRequest struct {
	Nome            string              `json:"nome" binding:"required"`
	Tipo            string              `json:"tipo"`
	Unidade         string              `json:"unidade"`
	PrecoUnitario   float64             `json:"preco_unitario"`
	ControlaEstoque bool                `json:"controla_estoque"`
	Quantidade      float64             `json:"quantidade"`
	Componentes     []ComponenteRequest `json:"componentes"`
}

func (r InsumoRequest) ToEntity() entities.Insumo {
	insumo := entities.Insumo{
		Nome:            strings.TrimSpace(r.Nome),
		Tipo:            entities.InsumoTipo(r.Tipo),
		Unidade:         r.Unidade,
		PrecoUnitario:   r.PrecoUnitario,
		ControlaEstoque: r.ControlaEstoque,
		Quantidade:      r.Quantidade,
	}
	if insumo.Tipo == "" {
		insumo.Tipo = entities.InsumoTipoMaterial
	}
	for _, c := range r.Componentes {
		insumo.Componentes = append(insumo.Componentes, entities.ComponenteInsumo{
			InsumoID:   c.InsumoID,
			Quantidade: c.Quantidade,
		})
	}
	return insumo
}

// SincronizacaoRequest is the optional body of a catalog->ledger sync trigger.
// A zero Entrada just reconciles the pair.
type SincronizacaoRequest struct {
	Entrada float64 `json:"entrada"`
	Motivo  string  `json:"motivo"`
}

// MovimentoRequest applies a signed delta to a ledger record.
type MovimentoRequest struct {
	Quantidade float64 `json:"quantidade" binding:"required"`
	Motivo     string  `json:"motivo"`
}
