package entities

import "time"

// EtapaExecucaoStatus is the execution state of a plan stage or sub-stage.
type EtapaExecucaoStatus string

const (
	EtapaNaoIniciada EtapaExecucaoStatus = "nao_iniciada"
	EtapaEmAndamento EtapaExecucaoStatus = "em_andamento"
	EtapaConcluida   EtapaExecucaoStatus = "concluida"
)

// NecessidadeStatus tracks procurement of a material need.
type NecessidadeStatus string

const (
	NecessidadeDisponivel NecessidadeStatus = "disponivel"
	NecessidadeSolicitada NecessidadeStatus = "solicitada"
	NecessidadeRecebida   NecessidadeStatus = "recebida"
)

// NecessidadeMaterial is a budget line item converted into an execution-time
// material need.
type NecessidadeMaterial struct {
	InsumoID     string            `json:"insumo_id,omitempty"`
	Descricao    string            `json:"descricao"`
	Quantidade   float64           `json:"quantidade"`
	Unidade      string            `json:"unidade,omitempty"`
	StatusCompra NecessidadeStatus `json:"status_compra"`
}

// SubetapaExecucao mirrors a budget sub-stage with execution fields.
type SubetapaExecucao struct {
	ID             string                `json:"id"`
	Nome           string                `json:"nome"`
	Status         EtapaExecucaoStatus   `json:"status"`
	Progresso      float64               `json:"progresso"`
	ValorRealizado float64               `json:"valor_realizado"`
	Necessidades   []NecessidadeMaterial `json:"necessidades,omitempty"`
}

// EtapaExecucao mirrors a budget stage with execution fields.
type EtapaExecucao struct {
	ID             string              `json:"id"`
	Nome           string              `json:"nome"`
	Status         EtapaExecucaoStatus `json:"status"`
	Progresso      float64             `json:"progresso"`
	ValorRealizado float64             `json:"valor_realizado"`
	Subetapas      []SubetapaExecucao  `json:"subetapas,omitempty"`
}

// Planejamento is the execution plan cloned from a signed contract's
// originating budget. Stage and sub-stage ids are preserved from the source
// so diary activities can reference them across both trees.
type Planejamento struct {
	ID                string          `json:"id"`
	ContratoID        string          `json:"contrato_id"`
	OrcamentoOrigemID string          `json:"orcamento_origem_id"`
	NomeProjeto       string          `json:"nome_projeto"`
	Cliente           string          `json:"cliente"`
	Etapas            []EtapaExecucao `json:"etapas,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (p Planejamento) RegistroID() string { return p.ID }
