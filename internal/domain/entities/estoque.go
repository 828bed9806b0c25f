package entities

import "time"

// MovimentacaoTipo is the direction of a ledger movement.
type MovimentacaoTipo string

const (
	MovimentacaoEntrada MovimentacaoTipo = "entrada"
	MovimentacaoSaida   MovimentacaoTipo = "saida"
)

// Movimentacao is one append-only entry of the ledger history.
type Movimentacao struct {
	Tipo       MovimentacaoTipo `json:"tipo"`
	Quantidade float64          `json:"quantidade"`
	Motivo     string           `json:"motivo"`
	Data       time.Time        `json:"data"`
}

// Estoque is the warehouse ledger record for one catalog item.
//
// Storage model (DynamoDB):
//   - PK: id
//   - InsumoID is the weak reference back to the catalog entry.
//
// Invariants:
//   - Quantidade equals the signed sum of Movimentacoes and never goes
//     negative (writes clamp at zero and record the clamped amount).

type Estoque struct {
	ID               string         `json:"id"`
	InsumoID         string         `json:"insumo_id,omitempty"`
	Nome             string         `json:"nome"`
	Unidade          string         `json:"unidade,omitempty"`
	Quantidade       float64        `json:"quantidade"`
	QuantidadeMinima float64        `json:"quantidade_minima,omitempty"`
	ValorUnitario    float64        `json:"valor_unitario"`
	Movimentacoes    []Movimentacao `json:"movimentacoes,omitempty"`
	Version          int64          `json:"version"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func (e Estoque) RegistroID() string     { return e.ID }
func (e Estoque) RegistroVersion() int64 { return e.Version }
