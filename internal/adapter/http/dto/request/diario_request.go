package request

import (
	"strings"
	"time"

	"construtora_xyz/internal/domain/entities"
)

type AtividadeRequest struct {
	Origem       string  `json:"origem"`
	ReferenciaID string  `json:"referencia_id"`
	Descricao    string  `json:"descricao" binding:"required"`
	Progresso    float64 `json:"progresso"`
}

type MaoDeObraRequest struct {
	Funcao    string  `json:"funcao" binding:"required"`
	Horas     float64 `json:"horas"`
	ValorHora float64 `json:"valor_hora"`
}

// DiarioRequest upserts a site log. An empty ID creates a new diary; a
// present one re-saves it (the measurement block is always recomputed
// server-side and ignored on input).
type DiarioRequest struct {
	ID             string             `json:"id"`
	PlanejamentoID string             `json:"planejamento_id" binding:"required"`
	Data           time.Time          `json:"data"`
	Tipo           string             `json:"tipo"`
	Atividades     []AtividadeRequest `json:"atividades"`
	MaoDeObra      []MaoDeObraRequest `json:"mao_de_obra"`
	Observacoes    string             `json:"observacoes"`
}

func (r DiarioRequest) ToEntity() entities.DiarioObra {
	diario := entities.DiarioObra{
		ID:             strings.TrimSpace(r.ID),
		PlanejamentoID: strings.TrimSpace(r.PlanejamentoID),
		Data:           r.Data,
		Tipo:           entities.DiarioTipo(r.Tipo),
		Observacoes:    r.Observacoes,
	}
	for _, a := range r.Atividades {
		origem := entities.AtividadeOrigem(a.Origem)
		if origem == "" {
			origem = entities.AtividadeOrigemManual
		}
		diario.Atividades = append(diario.Atividades, entities.AtividadeDiario{
			Origem:       origem,
			ReferenciaID: a.ReferenciaID,
			Descricao:    a.Descricao,
			Progresso:    a.Progresso,
		})
	}
	for _, m := range r.MaoDeObra {
		diario.MaoDeObra = append(diario.MaoDeObra, entities.RegistroMaoDeObra{
			Funcao:    m.Funcao,
			Horas:     m.Horas,
			ValorHora: m.ValorHora,
		})
	}
	return diario
}
