package entities

import "time"

// DiarioTipo distinguishes daily logs from weekly consolidations.
type DiarioTipo string

const (
	DiarioTipoDiario  DiarioTipo = "diario"
	DiarioTipoSemanal DiarioTipo = "semanal"
)

// AtividadeOrigem says where a diary activity was sourced from.
type AtividadeOrigem string

const (
	AtividadeOrigemManual       AtividadeOrigem = "manual"
	AtividadeOrigemPlanejamento AtividadeOrigem = "planejamento"
	AtividadeOrigemPlanoSemanal AtividadeOrigem = "plano_semanal"
	AtividadeOrigemProposta     AtividadeOrigem = "proposta"
)

// AtividadeDiario is one tracked activity with its progress percentage.
// Progresso is always within [0, 100].
type AtividadeDiario struct {
	Origem       AtividadeOrigem `json:"origem"`
	ReferenciaID string          `json:"referencia_id,omitempty"`
	Descricao    string          `json:"descricao"`
	Progresso    float64         `json:"progresso"`
}

// RegistroMaoDeObra is one labor line used for cost provisioning.
type RegistroMaoDeObra struct {
	Funcao    string  `json:"funcao"`
	Horas     float64 `json:"horas"`
	ValorHora float64 `json:"valor_hora"`
}

// Medicao is the computed measurement block. It is derived by the engine and
// read-only to callers.
type Medicao struct {
	Percentual float64 `json:"percentual"`
	Valor      float64 `json:"valor"`
}

// DiarioObra is a site log tied to an execution plan.
type DiarioObra struct {
	ID             string              `json:"id"`
	PlanejamentoID string              `json:"planejamento_id"`
	Data           time.Time           `json:"data"`
	Tipo           DiarioTipo          `json:"tipo"`
	Atividades     []AtividadeDiario   `json:"atividades,omitempty"`
	MaoDeObra      []RegistroMaoDeObra `json:"mao_de_obra,omitempty"`
	Medicao        Medicao             `json:"medicao"`
	Observacoes    string              `json:"observacoes,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func (d DiarioObra) RegistroID() string { return d.ID }
