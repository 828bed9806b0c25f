package entities

import "time"

// Alert condition keys emitted by the deriver.
const (
	AlertaEstoqueBaixo        = "estoque_baixo"
	AlertaCotacaoPendente     = "cotacao_pendente"
	AlertaContratoNaoAssinado = "contrato_nao_assinado"
)

// Alerta is a derived notification. The deriver guarantees at most one open
// alert per Chave; marking it read releases the key for re-derivation.
type Alerta struct {
	ID       string    `json:"id"`
	Chave    string    `json:"chave"`
	Mensagem string    `json:"mensagem"`
	Lida     bool      `json:"lida"`
	CriadaEm time.Time `json:"criada_em"`
}

func (a Alerta) RegistroID() string { return a.ID }
