package response

import (
	"time"

	"construtora_xyz/internal/domain/entities"
)

type LeadResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Cliente   string    `json:"cliente,omitempty"`
	Estagio   string    `json:"estagio"`
	Valor     float64   `json:"valor"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:        l.ID,
		Nome:      l.Nome,
		Cliente:   l.Cliente,
		Estagio:   string(l.Estagio),
		Valor:     l.Valor,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

type OrcamentoResponse struct {
	ID           string           `json:"id"`
	LeadOrigemID string           `json:"lead_origem_id,omitempty"`
	Cliente      string           `json:"cliente"`
	NomeProjeto  string           `json:"nome_projeto"`
	Status       string           `json:"status"`
	Etapas       []entities.Etapa `json:"etapas,omitempty"`
	ValorTotal   float64          `json:"valor_total"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func FromOrcamento(o entities.Orcamento) OrcamentoResponse {
	return OrcamentoResponse{
		ID:           o.ID,
		LeadOrigemID: o.LeadOrigemID,
		Cliente:      o.Cliente,
		NomeProjeto:  o.NomeProjeto,
		Status:       string(o.Status),
		Etapas:       o.Etapas,
		ValorTotal:   o.ValorTotal,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

type ContratoResponse struct {
	ID                string                `json:"id"`
	OrcamentoOrigemID string                `json:"orcamento_origem_id"`
	Status            string                `json:"status"`
	Conteudo          string                `json:"conteudo,omitempty"`
	DocumentoURL      string                `json:"documento_url,omitempty"`
	Signatarios       []entities.Signatario `json:"signatarios,omitempty"`
	Aditivos          []entities.Aditivo    `json:"aditivos,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

func FromContrato(c entities.Contrato) ContratoResponse {
	return ContratoResponse{
		ID:                c.ID,
		OrcamentoOrigemID: c.OrcamentoOrigemID,
		Status:            string(c.Status),
		Conteudo:          c.Conteudo,
		DocumentoURL:      c.DocumentoURL,
		Signatarios:       c.Signatarios,
		Aditivos:          c.Aditivos,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
