package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"construtora_xyz/internal/domain/entities"
	"construtora_xyz/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLeadNaoEncontrado = errors.New("lead nao encontrado")
	ErrEstagioInvalido   = errors.New("estagio de lead invalido")
)

// ILeadUseCase handles the top of the sales cascade: a lead moving *into*
// fechado spawns exactly one budget. The budget id is derived from the lead
// id, so re-saving an already closed lead (or retrying a failed close) cannot
// spawn a second one.

type ILeadUseCase interface {
	CriarLead(ctx context.Context, lead entities.Lead) (entities.Lead, error)
	AtualizarEstagio(ctx context.Context, leadID string, novo entities.LeadEstagio) (entities.Lead, error)
	GetByID(ctx context.Context, leadID string) (entities.Lead, error)
}

type LeadUseCase struct {
	leads      interfaces.ILeadRepository
	orcamentos interfaces.IOrcamentoRepository
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(leads interfaces.ILeadRepository, orcamentos interfaces.IOrcamentoRepository) *LeadUseCase {
	return &LeadUseCase{leads: leads, orcamentos: orcamentos}
}

func (u *LeadUseCase) CriarLead(ctx context.Context, lead entities.Lead) (entities.Lead, error) {
	lead.Nome = strings.TrimSpace(lead.Nome)
	if lead.Nome == "" {
		return entities.Lead{}, ErrLeadNaoEncontrado
	}
	if lead.Estagio == "" {
		lead.Estagio = entities.LeadEstagioProspecto
	}
	if !estagioValido(lead.Estagio) {
		return entities.Lead{}, ErrEstagioInvalido
	}

	now := time.Now().UTC()
	lead.ID = uuid.NewString()
	lead.CreatedAt = now
	lead.UpdatedAt = now
	return u.leads.Create(ctx, lead)
}

func (u *LeadUseCase) GetByID(ctx context.Context, leadID string) (entities.Lead, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return entities.Lead{}, ErrLeadNaoEncontrado
	}
	lead, err := u.leads.GetByID(ctx, leadID)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.ID == "" {
		return entities.Lead{}, ErrLeadNaoEncontrado
	}
	return lead, nil
}

func (u *LeadUseCase) AtualizarEstagio(ctx context.Context, leadID string, novo entities.LeadEstagio) (entities.Lead, error) {
	if !estagioValido(novo) {
		return entities.Lead{}, ErrEstagioInvalido
	}

	lead, err := u.GetByID(ctx, leadID)
	if err != nil {
		return entities.Lead{}, err
	}

	fechou := lead.Estagio != entities.LeadEstagioFechado && novo == entities.LeadEstagioFechado

	lead.Estagio = novo
	lead.UpdatedAt = time.Now().UTC()
	lead, err = u.leads.Update(ctx, lead)
	if err != nil {
		return entities.Lead{}, err
	}

	if fechou {
		if err := u.criarOrcamentoDoLead(ctx, lead); err != nil {
			log.Printf("[lead][usecase] budget spawn failed lead_id=%s err=%v", lead.ID, err)
			return lead, err
		}
	}
	return lead, nil
}

func (u *LeadUseCase) criarOrcamentoDoLead(ctx context.Context, lead entities.Lead) error {
	now := time.Now().UTC()
	orcamento := entities.Orcamento{
		ID:           derivedID(lead.ID, "orcamento"),
		LeadOrigemID: lead.ID,
		Cliente:      lead.Cliente,
		NomeProjeto:  lead.Nome,
		Status:       entities.OrcamentoStatusRascunho,
		ValorTotal:   lead.Valor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := u.orcamentos.Create(ctx, orcamento); err != nil {
		if errors.Is(err, interfaces.ErrJaExiste) {
			log.Printf("[lead][usecase] budget already spawned lead_id=%s orcamento_id=%s", lead.ID, orcamento.ID)
			return nil
		}
		return err
	}
	log.Printf("[lead][usecase] budget spawned lead_id=%s orcamento_id=%s valor=%.2f", lead.ID, orcamento.ID, orcamento.ValorTotal)
	return nil
}

func estagioValido(e entities.LeadEstagio) bool {
	switch e {
	case entities.LeadEstagioProspecto, entities.LeadEstagioNegociacao, entities.LeadEstagioFechado, entities.LeadEstagioPerdido:
		return true
	}
	return false
}
