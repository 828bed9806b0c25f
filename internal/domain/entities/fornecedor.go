package entities

import "time"

// Fornecedor is a supplier that can quote purchase requests.
type Fornecedor struct {
	ID             string    `json:"id"`
	Nome           string    `json:"nome"`
	CNPJ           string    `json:"cnpj,omitempty"`
	Confiabilidade int       `json:"confiabilidade"` // 1..5
	Ativo          bool      `json:"ativo"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (f Fornecedor) RegistroID() string { return f.ID }
