package entities

// Transition tables. Keeping these as data (instead of inline conditionals
// scattered through the workflows) lets tests assert exhaustiveness, so an
// unmapped transition is a failing test rather than a silent no-op.

// CompraTransicoes maps each purchase status to the statuses reachable from
// it. Terminal statuses map to an empty list.
var CompraTransicoes = map[CompraStatus][]CompraStatus{
	CompraStatusEnviado:   {CompraStatusEmCotacao, CompraStatusAprovado},
	CompraStatusEmCotacao: {CompraStatusAprovado, CompraStatusNegado},
	CompraStatusAprovado:  {CompraStatusComprado},
	CompraStatusComprado:  {CompraStatusEmEstoque},
	CompraStatusEmEstoque: {CompraStatusNaObra},
	CompraStatusNaObra:    {},
	CompraStatusNegado:    {},
}

// PodeTransicionar reports whether a purchase may move from its current
// status to next.
func (s CompraStatus) PodeTransicionar(next CompraStatus) bool {
	for _, n := range CompraTransicoes[s] {
		if n == next {
			return true
		}
	}
	return false
}

// OrcamentoAvancos orders the forward-only budget statuses. A transition is
// legal when it moves strictly forward in this ranking; perdido is reachable
// from any non-terminal status.
var OrcamentoAvancos = map[OrcamentoStatus]int{
	OrcamentoStatusRascunho: 0,
	OrcamentoStatusEnviado:  1,
	OrcamentoStatusJuridico: 2,
	OrcamentoStatusAssinado: 3,
}

// PodeTransicionar reports whether a budget may move from its current status
// to next.
func (s OrcamentoStatus) PodeTransicionar(next OrcamentoStatus) bool {
	if next == OrcamentoStatusPerdido {
		return s != OrcamentoStatusAssinado && s != OrcamentoStatusPerdido
	}
	cur, ok := OrcamentoAvancos[s]
	if !ok {
		return false
	}
	nxt, ok := OrcamentoAvancos[next]
	if !ok {
		return false
	}
	return nxt > cur
}

// ContratoParaOrcamento maps every contract status to the budget status it
// propagates. The mapping is total over ContratoStatus values; the entities
// test asserts that, so adding a contract status without a mapping breaks the
// build gate instead of dropping the propagation.
var ContratoParaOrcamento = map[ContratoStatus]OrcamentoStatus{
	ContratoStatusEmDesenvolvimento: OrcamentoStatusJuridico,
	ContratoStatusEnviado:           OrcamentoStatusEnviado,
	ContratoStatusAssinado:          OrcamentoStatusAssinado,
	ContratoStatusCancelado:         OrcamentoStatusPerdido,
}

// TodosContratoStatus enumerates the contract statuses, used by the
// exhaustiveness test and by request validation.
var TodosContratoStatus = []ContratoStatus{
	ContratoStatusEmDesenvolvimento,
	ContratoStatusEnviado,
	ContratoStatusAssinado,
	ContratoStatusCancelado,
}
