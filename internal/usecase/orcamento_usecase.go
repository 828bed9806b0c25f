package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"construtora_xyz/internal/domain/entities"
	"construtora_xyz/internal/usecase/interfaces"
)

var (
	ErrOrcamentoNaoEncontrado = errors.New("orcamento nao encontrado")
	ErrOrcamentoTransicao     = errors.New("transicao de status do orcamento invalida")
)

// IOrcamentoUseCase covers the user-driven half of the budget lifecycle.
// Transitions only move forward (or drop into perdido); contract-driven
// propagation bypasses this and writes the mapped status directly.

type IOrcamentoUseCase interface {
	AtualizarStatus(ctx context.Context, orcamentoID string, novo entities.OrcamentoStatus) (entities.Orcamento, error)
	AtualizarEtapas(ctx context.Context, orcamentoID string, etapas []entities.Etapa) (entities.Orcamento, error)
	GetByID(ctx context.Context, orcamentoID string) (entities.Orcamento, error)
}

type OrcamentoUseCase struct {
	orcamentos interfaces.IOrcamentoRepository
}

var _ IOrcamentoUseCase = (*OrcamentoUseCase)(nil)

func NewOrcamentoUseCase(orcamentos interfaces.IOrcamentoRepository) *OrcamentoUseCase {
	return &OrcamentoUseCase{orcamentos: orcamentos}
}

func (u *OrcamentoUseCase) GetByID(ctx context.Context, orcamentoID string) (entities.Orcamento, error) {
	orcamentoID = strings.TrimSpace(orcamentoID)
	if orcamentoID == "" {
		return entities.Orcamento{}, ErrOrcamentoNaoEncontrado
	}
	o, err := u.orcamentos.GetByID(ctx, orcamentoID)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if o.ID == "" {
		return entities.Orcamento{}, ErrOrcamentoNaoEncontrado
	}
	return o, nil
}

func (u *OrcamentoUseCase) AtualizarStatus(ctx context.Context, orcamentoID string, novo entities.OrcamentoStatus) (entities.Orcamento, error) {
	o, err := u.GetByID(ctx, orcamentoID)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if !o.Status.PodeTransicionar(novo) {
		return entities.Orcamento{}, ErrOrcamentoTransicao
	}
	o.Status = novo
	o.UpdatedAt = time.Now().UTC()
	return u.orcamentos.Update(ctx, o)
}

// AtualizarEtapas replaces the stage tree and recomputes the total from the
// line items.
func (u *OrcamentoUseCase) AtualizarEtapas(ctx context.Context, orcamentoID string, etapas []entities.Etapa) (entities.Orcamento, error) {
	o, err := u.GetByID(ctx, orcamentoID)
	if err != nil {
		return entities.Orcamento{}, err
	}

	total := 0.0
	for _, etapa := range etapas {
		for _, sub := range etapa.Subetapas {
			for _, item := range sub.Itens {
				total += item.Total
			}
		}
	}
	o.Etapas = etapas
	o.ValorTotal = total
	o.UpdatedAt = time.Now().UTC()
	return u.orcamentos.Update(ctx, o)
}
