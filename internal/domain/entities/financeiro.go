package entities

import "time"

// FinanceiroTipo is the kind of ledger entry.
type FinanceiroTipo string

const (
	FinanceiroContaPagar      FinanceiroTipo = "conta_pagar"
	FinanceiroProvisaoCusto   FinanceiroTipo = "provisao_custo"
	FinanceiroProvisaoReceita FinanceiroTipo = "provisao_receita"
)

// FinanceiroOrigem names the workflow that projected the entry.
type FinanceiroOrigem string

const (
	FinanceiroOrigemCompra FinanceiroOrigem = "compra"
	FinanceiroOrigemDiario FinanceiroOrigem = "diario"
)

// Financeiro is a finance ledger entry. Entries are only ever created by
// workflows (purchase approval, diary save); nothing in the engine edits them
// afterwards.
//
// Storage model (DynamoDB):
//   - PK: id (deterministic: derived from origin id + purpose, which makes
//     workflow retries structurally unable to duplicate an entry)

type Financeiro struct {
	ID             string           `json:"id"`
	Tipo           FinanceiroTipo   `json:"tipo"`
	Descricao      string           `json:"descricao"`
	Valor          float64          `json:"valor"`
	DataVencimento time.Time        `json:"data_vencimento,omitempty"`
	OrigemTipo     FinanceiroOrigem `json:"origem_tipo"`
	OrigemID       string           `json:"origem_id"`
	CreatedAt      time.Time        `json:"created_at"`
}

func (f Financeiro) RegistroID() string { return f.ID }
