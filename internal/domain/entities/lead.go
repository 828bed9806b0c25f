package entities

import "time"

// LeadEstagio is the sales pipeline stage.
type LeadEstagio string

const (
	LeadEstagioProspecto  LeadEstagio = "prospecto"
	LeadEstagioNegociacao LeadEstagio = "negociacao"
	LeadEstagioFechado    LeadEstagio = "fechado"
	LeadEstagioPerdido    LeadEstagio = "perdido"
)

// Lead is a sales opportunity. Moving a lead into fechado spawns exactly one
// Orcamento; re-saving an already closed lead must not spawn another.
type Lead struct {
	ID        string      `json:"id"`
	Nome      string      `json:"nome"`
	Cliente   string      `json:"cliente"`
	Estagio   LeadEstagio `json:"estagio"`
	Valor     float64     `json:"valor"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (l Lead) RegistroID() string { return l.ID }
