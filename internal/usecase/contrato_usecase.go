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
)

var (
	ErrContratoNaoEncontrado  = errors.New("contrato nao encontrado")
	ErrContratoJaExiste       = errors.New("contrato ja existe para este orcamento")
	ErrContratoStatusInvalido = errors.New("status de contrato invalido")
	ErrOrcamentoForaJuridico  = errors.New("orcamento nao esta em juridico")
	ErrTemplateVazio          = errors.New("template de contrato vazio")
)

// Placeholder tokens replaced verbatim during contract generation. Tokens
// whose data is absent stay literal in the output, never silently dropped.
const (
	TokenNomeCliente   = "{{NOME_CLIENTE}}"
	TokenNomeProjeto   = "{{NOME_PROJETO}}"
	TokenValorTotal    = "{{VALOR_TOTAL}}"
	TokenEtapasProjeto = "{{ETAPAS_PROJETO}}"
	TokenDataGeracao   = "{{DATA_GERACAO}}"
	TokenSignatarios   = "{{SIGNATARIOS}}"
)

// IContratoUseCase is the middle of the sales cascade: a budget in juridico
// becomes a contract; every contract status change propagates the mapped
// budget status; signing spawns the execution plan cloned from the budget.

type IContratoUseCase interface {
	CriarContrato(ctx context.Context, orcamentoID, template string, signatarios []entities.Signatario) (entities.Contrato, error)
	AtualizarStatus(ctx context.Context, contratoID string, novo entities.ContratoStatus) (entities.Contrato, error)
	AdicionarAditivo(ctx context.Context, contratoID string, aditivo entities.Aditivo) (entities.Contrato, error)
	GetByID(ctx context.Context, contratoID string) (entities.Contrato, error)
}

type ContratoUseCase struct {
	orcamentos    interfaces.IOrcamentoRepository
	contratos     interfaces.IContratoRepository
	planejamentos interfaces.IPlanejamentoRepository
	renderer      interfaces.IDocumentRenderer
}

var _ IContratoUseCase = (*ContratoUseCase)(nil)

func NewContratoUseCase(
	orcamentos interfaces.IOrcamentoRepository,
	contratos interfaces.IContratoRepository,
	planejamentos interfaces.IPlanejamentoRepository,
	renderer interfaces.IDocumentRenderer,
) *ContratoUseCase {
	return &ContratoUseCase{orcamentos: orcamentos, contratos: contratos, planejamentos: planejamentos, renderer: renderer}
}

// CriarContrato fills the template from the budget and signer data, stores
// the contract in em_desenvolvimento and advances the budget to enviado. The
// contract id derives from the budget id: one budget, at most one contract.
func (u *ContratoUseCase) CriarContrato(ctx context.Context, orcamentoID, template string, signatarios []entities.Signatario) (entities.Contrato, error) {
	if strings.TrimSpace(template) == "" {
		return entities.Contrato{}, ErrTemplateVazio
	}

	orcamento, err := u.orcamentos.GetByID(ctx, strings.TrimSpace(orcamentoID))
	if err != nil {
		return entities.Contrato{}, err
	}
	if orcamento.ID == "" {
		return entities.Contrato{}, ErrOrcamentoNaoEncontrado
	}
	if orcamento.Status != entities.OrcamentoStatusJuridico {
		return entities.Contrato{}, ErrOrcamentoForaJuridico
	}

	now := time.Now().UTC()
	contrato := entities.Contrato{
		ID:                derivedID(orcamento.ID, "contrato"),
		OrcamentoOrigemID: orcamento.ID,
		Status:            entities.ContratoStatusEmDesenvolvimento,
		Conteudo:          preencherTemplate(template, orcamento, signatarios, now),
		Signatarios:       signatarios,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if u.renderer != nil {
		url, err := u.renderer.Render(ctx, contrato.Conteudo)
		if err != nil {
			// Rendering is best effort; the filled text is the contract.
			log.Printf("[contrato][usecase] render failed orcamento_id=%s err=%v", orcamento.ID, err)
		} else {
			contrato.DocumentoURL = url
		}
	}

	contrato, err = u.contratos.Create(ctx, contrato)
	if err != nil {
		if errors.Is(err, interfaces.ErrJaExiste) {
			return entities.Contrato{}, ErrContratoJaExiste
		}
		return entities.Contrato{}, err
	}

	// Cascade write: the contract is committed even if this fails; a retry
	// of the budget advance is safe.
	orcamento.Status = entities.OrcamentoStatusEnviado
	orcamento.UpdatedAt = now
	if _, err := u.orcamentos.Update(ctx, orcamento); err != nil {
		log.Printf("[contrato][usecase] budget advance failed orcamento_id=%s err=%v", orcamento.ID, err)
		return contrato, err
	}
	log.Printf("[contrato][usecase] contract created contrato_id=%s orcamento_id=%s", contrato.ID, orcamento.ID)
	return contrato, nil
}

// preencherTemplate substitutes the fixed token set from budget and signer
// data. Generation date uses the site-local day precision the documents
// carry.
func preencherTemplate(template string, o entities.Orcamento, signatarios []entities.Signatario, geradoEm time.Time) string {
	pares := []string{
		TokenNomeCliente, o.Cliente,
		TokenNomeProjeto, o.NomeProjeto,
		TokenValorTotal, fmt.Sprintf("%.2f", o.ValorTotal),
		TokenDataGeracao, geradoEm.Format("02/01/2006"),
	}

	if len(o.Etapas) > 0 {
		nomes := make([]string, 0, len(o.Etapas))
		for _, e := range o.Etapas {
			nomes = append(nomes, e.Nome)
		}
		pares = append(pares, TokenEtapasProjeto, strings.Join(nomes, "; "))
	}
	if len(signatarios) > 0 {
		nomes := make([]string, 0, len(signatarios))
		for _, s := range signatarios {
			nomes = append(nomes, s.Nome)
		}
		pares = append(pares, TokenSignatarios, strings.Join(nomes, ", "))
	}

	return strings.NewReplacer(pares...).Replace(template)
}

// AtualizarStatus writes the new contract status and, in the same call,
// propagates the mapped budget status. Signing additionally spawns the
// execution plan; the plan id derives from the contract id, so a repeated
// signing cannot create a second plan.
func (u *ContratoUseCase) AtualizarStatus(ctx context.Context, contratoID string, novo entities.ContratoStatus) (entities.Contrato, error) {
	statusOrcamento, ok := entities.ContratoParaOrcamento[novo]
	if !ok {
		return entities.Contrato{}, ErrContratoStatusInvalido
	}

	contrato, err := u.GetByID(ctx, contratoID)
	if err != nil {
		return entities.Contrato{}, err
	}

	now := time.Now().UTC()
	contrato.Status = novo
	contrato.UpdatedAt = now
	contrato, err = u.contratos.Update(ctx, contrato)
	if err != nil {
		return entities.Contrato{}, err
	}

	orcamento, err := u.orcamentos.GetByID(ctx, contrato.OrcamentoOrigemID)
	if err != nil {
		return contrato, err
	}
	if orcamento.ID == "" {
		log.Printf("[contrato][usecase] source budget missing contrato_id=%s orcamento_id=%s", contrato.ID, contrato.OrcamentoOrigemID)
		return contrato, ErrOrcamentoNaoEncontrado
	}
	orcamento.Status = statusOrcamento
	orcamento.UpdatedAt = now
	if _, err := u.orcamentos.Update(ctx, orcamento); err != nil {
		log.Printf("[contrato][usecase] budget propagation failed contrato_id=%s err=%v", contrato.ID, err)
		return contrato, err
	}

	if novo == entities.ContratoStatusAssinado {
		if _, err := u.criarPlanejamentoDoContrato(ctx, contrato, orcamento); err != nil {
			log.Printf("[contrato][usecase] plan spawn failed contrato_id=%s err=%v", contrato.ID, err)
			return contrato, err
		}
	}
	return contrato, nil
}

func (u *ContratoUseCase) AdicionarAditivo(ctx context.Context, contratoID string, aditivo entities.Aditivo) (entities.Contrato, error) {
	contrato, err := u.GetByID(ctx, contratoID)
	if err != nil {
		return entities.Contrato{}, err
	}
	if aditivo.Data.IsZero() {
		aditivo.Data = time.Now().UTC()
	}
	contrato.Aditivos = append(contrato.Aditivos, aditivo)
	contrato.UpdatedAt = time.Now().UTC()
	return u.contratos.Update(ctx, contrato)
}

func (u *ContratoUseCase) GetByID(ctx context.Context, contratoID string) (entities.Contrato, error) {
	contratoID = strings.TrimSpace(contratoID)
	if contratoID == "" {
		return entities.Contrato{}, ErrContratoNaoEncontrado
	}
	contrato, err := u.contratos.GetByID(ctx, contratoID)
	if err != nil {
		return entities.Contrato{}, err
	}
	if contrato.ID == "" {
		return entities.Contrato{}, ErrContratoNaoEncontrado
	}
	return contrato, nil
}

// criarPlanejamentoDoContrato clones the budget's stage tree, preserving
// stage and sub-stage ids, zeroing progress and realized value, and turning
// each line item into a material need.
func (u *ContratoUseCase) criarPlanejamentoDoContrato(ctx context.Context, contrato entities.Contrato, orcamento entities.Orcamento) (entities.Planejamento, error) {
	now := time.Now().UTC()
	plano := entities.Planejamento{
		ID:                derivedID(contrato.ID, "planejamento"),
		ContratoID:        contrato.ID,
		OrcamentoOrigemID: orcamento.ID,
		NomeProjeto:       orcamento.NomeProjeto,
		Cliente:           orcamento.Cliente,
		Etapas:            clonarEtapas(orcamento.Etapas),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.planejamentos.Create(ctx, plano)
	if err != nil {
		if errors.Is(err, interfaces.ErrJaExiste) {
			log.Printf("[contrato][usecase] plan already spawned contrato_id=%s planejamento_id=%s", contrato.ID, plano.ID)
			return u.planejamentos.GetByID(ctx, plano.ID)
		}
		return entities.Planejamento{}, err
	}
	log.Printf("[contrato][usecase] plan spawned contrato_id=%s planejamento_id=%s", contrato.ID, created.ID)
	return created, nil
}

func clonarEtapas(etapas []entities.Etapa) []entities.EtapaExecucao {
	out := make([]entities.EtapaExecucao, 0, len(etapas))
	for _, etapa := range etapas {
		exec := entities.EtapaExecucao{
			ID:     etapa.ID,
			Nome:   etapa.Nome,
			Status: entities.EtapaNaoIniciada,
		}
		for _, sub := range etapa.Subetapas {
			subExec := entities.SubetapaExecucao{
				ID:     sub.ID,
				Nome:   sub.Nome,
				Status: entities.EtapaNaoIniciada,
			}
			for _, item := range sub.Itens {
				subExec.Necessidades = append(subExec.Necessidades, entities.NecessidadeMaterial{
					InsumoID:     item.InsumoID,
					Descricao:    item.Descricao,
					Quantidade:   item.Quantidade,
					Unidade:      item.Unidade,
					StatusCompra: entities.NecessidadeDisponivel,
				})
			}
			exec.Subetapas = append(exec.Subetapas, subExec)
		}
		out = append(out, exec)
	}
	return out
}
