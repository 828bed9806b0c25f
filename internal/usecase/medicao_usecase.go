package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"construtora_xyz/internal/domain/entities"
	"construtora_xyz/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPlanejamentoNaoEncontrado = errors.New("planejamento nao encontrado")
	ErrDiarioNaoEncontrado       = errors.New("diario nao encontrado")
	ErrProgressoInvalido         = errors.New("progresso fora do intervalo 0..100")
)

// IMedicaoUseCase derives the measurement block of a site diary and projects
// its finance entries. The measurement itself is pure arithmetic over the
// linked proposal and the diary's activity progress; callers never write it.

type IMedicaoUseCase interface {
	CalcularMedicao(proposta entities.Orcamento, atividades []entities.AtividadeDiario) entities.Medicao
	SalvarDiario(ctx context.Context, diario entities.DiarioObra) (entities.DiarioObra, error)
	GetByID(ctx context.Context, diarioID string) (entities.DiarioObra, error)
}

type MedicaoUseCase struct {
	planejamentos interfaces.IPlanejamentoRepository
	orcamentos    interfaces.IOrcamentoRepository
	diarios       interfaces.IDiarioRepository
	financeiro    interfaces.IFinanceiroRepository
}

var _ IMedicaoUseCase = (*MedicaoUseCase)(nil)

func NewMedicaoUseCase(
	planejamentos interfaces.IPlanejamentoRepository,
	orcamentos interfaces.IOrcamentoRepository,
	diarios interfaces.IDiarioRepository,
	financeiro interfaces.IFinanceiroRepository,
) *MedicaoUseCase {
	return &MedicaoUseCase{planejamentos: planejamentos, orcamentos: orcamentos, diarios: diarios, financeiro: financeiro}
}

// CalcularMedicao averages progress over every activity record, regardless of
// origin, and prices it against the proposal total. No activities means zero.
func (u *MedicaoUseCase) CalcularMedicao(proposta entities.Orcamento, atividades []entities.AtividadeDiario) entities.Medicao {
	if len(atividades) == 0 {
		return entities.Medicao{}
	}
	soma := 0.0
	for _, a := range atividades {
		soma += a.Progresso
	}
	percentual := soma / float64(len(atividades))
	return entities.Medicao{
		Percentual: percentual,
		Valor:      proposta.ValorTotal * percentual / 100,
	}
}

// SalvarDiario recomputes the measurement, persists the diary and projects
// the finance provisions: earned revenue when the measured value is positive,
// labor cost when labor lines exist. Both entries use ids derived from the
// diary id, so saving again replaces nothing and duplicates nothing.
func (u *MedicaoUseCase) SalvarDiario(ctx context.Context, diario entities.DiarioObra) (entities.DiarioObra, error) {
	for _, a := range diario.Atividades {
		if a.Progresso < 0 || a.Progresso > 100 {
			return entities.DiarioObra{}, ErrProgressoInvalido
		}
	}

	plano, err := u.planejamentos.GetByID(ctx, strings.TrimSpace(diario.PlanejamentoID))
	if err != nil {
		return entities.DiarioObra{}, err
	}
	if plano.ID == "" {
		return entities.DiarioObra{}, ErrPlanejamentoNaoEncontrado
	}

	proposta, err := u.resolverProposta(ctx, plano)
	if err != nil {
		return entities.DiarioObra{}, err
	}
	diario.Medicao = u.CalcularMedicao(proposta, diario.Atividades)

	now := time.Now().UTC()
	diario.UpdatedAt = now
	if diario.Tipo == "" {
		diario.Tipo = entities.DiarioTipoDiario
	}
	if diario.Data.IsZero() {
		diario.Data = now
	}

	if diario.ID == "" {
		diario.ID = uuid.NewString()
		diario.CreatedAt = now
		diario, err = u.diarios.Create(ctx, diario)
	} else {
		var atual entities.DiarioObra
		atual, err = u.diarios.GetByID(ctx, diario.ID)
		if err != nil {
			return entities.DiarioObra{}, err
		}
		if atual.ID == "" {
			return entities.DiarioObra{}, ErrDiarioNaoEncontrado
		}
		diario.CreatedAt = atual.CreatedAt
		diario, err = u.diarios.Update(ctx, diario)
	}
	if err != nil {
		return entities.DiarioObra{}, err
	}

	if err := u.projetarFinanceiro(ctx, diario); err != nil {
		// Diary is committed; projections re-derive on retry.
		log.Printf("[medicao][usecase] finance projection failed diario_id=%s err=%v", diario.ID, err)
		return diario, err
	}
	return diario, nil
}

// resolverProposta follows the plan's budget reference; the name+client match
// only covers plans created before the reference became mandatory.
func (u *MedicaoUseCase) resolverProposta(ctx context.Context, plano entities.Planejamento) (entities.Orcamento, error) {
	if plano.OrcamentoOrigemID != "" {
		o, err := u.orcamentos.GetByID(ctx, plano.OrcamentoOrigemID)
		if err != nil {
			return entities.Orcamento{}, err
		}
		if o.ID != "" {
			return o, nil
		}
	}

	todos, err := u.orcamentos.List(ctx)
	if err != nil {
		return entities.Orcamento{}, err
	}
	for _, o := range todos {
		if strings.EqualFold(o.NomeProjeto, plano.NomeProjeto) && strings.EqualFold(o.Cliente, plano.Cliente) {
			return o, nil
		}
	}
	log.Printf("[medicao][usecase] no proposal linked planejamento_id=%s; measurement value will be zero", plano.ID)
	return entities.Orcamento{}, nil
}

func (u *MedicaoUseCase) projetarFinanceiro(ctx context.Context, diario entities.DiarioObra) error {
	now := time.Now().UTC()

	if diario.Medicao.Valor > 0 {
		receita := entities.Financeiro{
			ID:         derivedID(diario.ID, "provisao_receita"),
			Tipo:       entities.FinanceiroProvisaoReceita,
			Descricao:  fmt.Sprintf("Medicao diario %s", diario.Data.Format("02/01/2006")),
			Valor:      diario.Medicao.Valor,
			OrigemTipo: entities.FinanceiroOrigemDiario,
			OrigemID:   diario.ID,
			CreatedAt:  now,
		}
		if _, err := u.financeiro.Create(ctx, receita); err != nil && !errors.Is(err, interfaces.ErrJaExiste) {
			return err
		}
	}

	custo := 0.0
	for _, m := range diario.MaoDeObra {
		custo += m.Horas * m.ValorHora
	}
	if custo > 0 {
		provisao := entities.Financeiro{
			ID:         derivedID(diario.ID, "provisao_custo"),
			Tipo:       entities.FinanceiroProvisaoCusto,
			Descricao:  fmt.Sprintf("Mao de obra diario %s", diario.Data.Format("02/01/2006")),
			Valor:      custo,
			OrigemTipo: entities.FinanceiroOrigemDiario,
			OrigemID:   diario.ID,
			CreatedAt:  now,
		}
		if _, err := u.financeiro.Create(ctx, provisao); err != nil && !errors.Is(err, interfaces.ErrJaExiste) {
			return err
		}
	}
	return nil
}

func (u *MedicaoUseCase) GetByID(ctx context.Context, diarioID string) (entities.DiarioObra, error) {
	diarioID = strings.TrimSpace(diarioID)
	if diarioID == "" {
		return entities.DiarioObra{}, ErrDiarioNaoEncontrado
	}
	d, err := u.diarios.GetByID(ctx, diarioID)
	if err != nil {
		return entities.DiarioObra{}, err
	}
	if d.ID == "" {
		return entities.DiarioObra{}, ErrDiarioNaoEncontrado
	}
	return d, nil
}
