package request

import (
	"strings"

	"construtora_xyz/internal/domain/entities"
)

type LeadRequest struct {
	Nome    string  `json:"nome" binding:"required"`
	Cliente string  `json:"cliente"`
	Estagio string  `json:"estagio"`
	Valor   float64 `json:"valor"`
}

func (r LeadRequest) ToEntity() entities.Lead {
	return entities.Lead{
		Nome:    strings.TrimSpace(r.Nome),
		Cliente: strings.TrimSpace(r.Cliente),
		Estagio: entities.LeadEstagio(r.Estagio),
		Valor:   r.Valor,
	}
}

type EstagioRequest struct {
	Estagio string `json:"estagio" binding:"required"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ItemOrcamentoRequest struct {
	ID            string  `json:"id"`
	InsumoID      string  `json:"insumo_id"`
	Descricao     string  `json:"descricao" binding:"required"`
	Quantidade    float64 `json:"quantidade"`
	Unidade       string  `json:"unidade"`
	PrecoUnitario float64 `json:"preco_unitario"`
	Total         float64 `json:"total"`
}

type SubetapaRequest struct {
	ID    string                 `json:"id"`
	Nome  string                 `json:"nome" binding:"required"`
	Itens []ItemOrcamentoRequest `json:"itens"`
}

type EtapaRequest struct {
	ID        string            `json:"id"`
	Nome      string            `json:"nome" binding:"required"`
	Subetapas []SubetapaRequest `json:"subetapas"`
}

type EtapasRequest struct {
	Etapas []EtapaRequest `json:"etapas" binding:"required"`
}

func (r EtapasRequest) ToEntities() []entities.Etapa {
	out := make([]entities.Etapa, 0, len(r.Etapas))
	for _, e := range r.Etapas {
		etapa := entities.Etapa{ID: e.ID, Nome: e.Nome}
		for _, s := range e.Subetapas {
			sub := entities.Subetapa{ID: s.ID, Nome: s.Nome}
			for _, i := range s.Itens {
				total := i.Total
				if total == 0 {
					total = i.PrecoUnitario * i.Quantidade
				}
				sub.Itens = append(sub.Itens, entities.ItemOrcamento{
					ID:            i.ID,
					InsumoID:      i.InsumoID,
					Descricao:     i.Descricao,
					Quantidade:    i.Quantidade,
					Unidade:       i.Unidade,
					PrecoUnitario: i.PrecoUnitario,
					Total:         total,
				})
			}
			etapa.Subetapas = append(etapa.Subetapas, sub)
		}
		out = append(out, etapa)
	}
	return out
}

type SignatarioRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Documento string `json:"documento"`
	Email     string `json:"email"`
}

// ContratoRequest generates a contract from a budget in juridico status.
type ContratoRequest struct {
	Template    string              `json:"template" binding:"required"`
	Signatarios []SignatarioRequest `json:"signatarios"`
}

func (r ContratoRequest) ToSignatarios() []entities.Signatario {
	out := make([]entities.Signatario, 0, len(r.Signatarios))
	for _, s := range r.Signatarios {
		out = append(out, entities.Signatario{Nome: s.Nome, Documento: s.Documento, Email: s.Email})
	}
	return out
}

type AditivoRequest struct {
	Descricao string  `json:"descricao" binding:"required"`
	Valor     float64 `json:"valor"`
}

func (r AditivoRequest) ToEntity() entities.Aditivo {
	return entities.Aditivo{Descricao: r.Descricao, Valor: r.Valor}
}
