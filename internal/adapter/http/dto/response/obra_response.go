package response

import (
	"time"

	"construtora_xyz/internal/domain/entities"
)

type MedicaoResponse struct {
	Percentual float64 `json:"percentual"`
	Valor      float64 `json:"valor"`
}

type DiarioResponse struct {
	ID             string                       `json:"id"`
	PlanejamentoID string                       `json:"planejamento_id"`
	Data           time.Time                    `json:"data"`
	Tipo           string                       `json:"tipo"`
	Atividades     []entities.AtividadeDiario   `json:"atividades,omitempty"`
	MaoDeObra      []entities.RegistroMaoDeObra `json:"mao_de_obra,omitempty"`
	Medicao        MedicaoResponse              `json:"medicao"`
	Observacoes    string                       `json:"observacoes,omitempty"`
	CreatedAt      time.Time                    `json:"created_at"`
	UpdatedAt      time.Time                    `json:"updated_at"`
}

func FromDiario(d entities.DiarioObra) DiarioResponse {
	return DiarioResponse{
		ID:             d.ID,
		PlanejamentoID: d.PlanejamentoID,
		Data:           d.Data,
		Tipo:           string(d.Tipo),
		Atividades:     d.Atividades,
		MaoDeObra:      d.MaoDeObra,
		Medicao:        MedicaoResponse{Percentual: d.Medicao.Percentual, Valor: d.Medicao.Valor},
		Observacoes:    d.Observacoes,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

type AlertaResponse struct {
	ID       string    `json:"id"`
	Chave    string    `json:"chave"`
	Mensagem string    `json:"mensagem"`
	Lida     bool      `json:"lida"`
	CriadaEm time.Time `json:"criada_em"`
}

func FromAlerta(a entities.Alerta) AlertaResponse {
	return AlertaResponse{
		ID:       a.ID,
		Chave:    a.Chave,
		Mensagem: a.Mensagem,
		Lida:     a.Lida,
		CriadaEm: a.CriadaEm,
	}
}

func FromAlertas(alertas []entities.Alerta) []AlertaResponse {
	out := make([]AlertaResponse, 0, len(alertas))
	for _, a := range alertas {
		out = append(out, FromAlerta(a))
	}
	return out
}
