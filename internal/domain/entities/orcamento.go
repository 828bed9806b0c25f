package entities

import "time"

// OrcamentoStatus is the budget lifecycle. Transitions only move forward
// (rascunho -> enviado -> juridico -> assinado) except the drop into perdido,
// which is allowed from any non-terminal status.
type OrcamentoStatus string

const (
	OrcamentoStatusRascunho OrcamentoStatus = "rascunho"
	OrcamentoStatusEnviado  OrcamentoStatus = "enviado"
	OrcamentoStatusJuridico OrcamentoStatus = "juridico"
	OrcamentoStatusAssinado OrcamentoStatus = "assinado"
	OrcamentoStatusPerdido  OrcamentoStatus = "perdido"
)

// ItemOrcamento is one priced line inside a sub-stage.
type ItemOrcamento struct {
	ID            string  `json:"id"`
	InsumoID      string  `json:"insumo_id,omitempty"`
	Descricao     string  `json:"descricao"`
	Quantidade    float64 `json:"quantidade"`
	Unidade       string  `json:"unidade,omitempty"`
	PrecoUnitario float64 `json:"preco_unitario"`
	Total         float64 `json:"total"`
}

// Subetapa groups line items under a stage.
type Subetapa struct {
	ID    string          `json:"id"`
	Nome  string          `json:"nome"`
	Itens []ItemOrcamento `json:"itens,omitempty"`
}

// Etapa is one top-level stage of the budget breakdown.
type Etapa struct {
	ID        string     `json:"id"`
	Nome      string     `json:"nome"`
	Subetapas []Subetapa `json:"subetapas,omitempty"`
}

// Orcamento is a priced project budget with a stage/sub-stage breakdown.
//
// Storage model (DynamoDB):
//   - PK: id (deterministic: derived from the originating lead)
//   - LeadOrigemID links back to the lead that spawned it.

type Orcamento struct {
	ID           string          `json:"id"`
	LeadOrigemID string          `json:"lead_origem_id,omitempty"`
	Cliente      string          `json:"cliente"`
	NomeProjeto  string          `json:"nome_projeto"`
	Status       OrcamentoStatus `json:"status"`
	Etapas       []Etapa         `json:"etapas,omitempty"`
	ValorTotal   float64         `json:"valor_total"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (o Orcamento) RegistroID() string { return o.ID }
