package entities

import "time"

// ContratoStatus is the contract lifecycle. Every status change propagates a
// corresponding budget status through ContratoParaOrcamento.
type ContratoStatus string

const (
	ContratoStatusEmDesenvolvimento ContratoStatus = "em_desenvolvimento"
	ContratoStatusEnviado           ContratoStatus = "enviado"
	ContratoStatusAssinado          ContratoStatus = "assinado"
	ContratoStatusCancelado         ContratoStatus = "cancelado"
)

// Signatario is one contract signer.
type Signatario struct {
	Nome      string `json:"nome"`
	Documento string `json:"documento,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Aditivo is a contract addendum.
type Aditivo struct {
	Descricao string    `json:"descricao"`
	Valor     float64   `json:"valor"`
	Data      time.Time `json:"data"`
}

// Contrato is the legal document generated from a budget in juridico status.
//
// Storage model (DynamoDB):
//   - PK: id
//   - OrcamentoOrigemID links the source budget; signing spawns exactly one
//     Planejamento (derived id, so a repeated signing cannot duplicate it).

type Contrato struct {
	ID                string         `json:"id"`
	OrcamentoOrigemID string         `json:"orcamento_origem_id"`
	Status            ContratoStatus `json:"status"`
	Conteudo          string         `json:"conteudo,omitempty"`
	DocumentoURL      string         `json:"documento_url,omitempty"`
	Signatarios       []Signatario   `json:"signatarios,omitempty"`
	Aditivos          []Aditivo      `json:"aditivos,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func (c Contrato) RegistroID() string { return c.ID }
