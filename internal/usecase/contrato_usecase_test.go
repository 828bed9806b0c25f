package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"construtora_xyz/internal/domain/entities"
)

type fakeRenderer struct {
	url string
	err error
}

func (f *fakeRenderer) Render(_ context.Context, _ string) (string, error) {
	return f.url, f.err
}

func newContratoFixture(renderer *fakeRenderer) (*ContratoUseCase, *fakeColecao[entities.Orcamento], *fakeColecao[entities.Contrato], *fakeColecao[entities.Planejamento]) {
	orcamentos := newFakeColecao[entities.Orcamento]()
	contratos := newFakeColecao[entities.Contrato]()
	planejamentos := newFakeColecao[entities.Planejamento]()
	// A typed nil pointer would make the interface non-nil inside the usecase.
	if renderer == nil {
		return NewContratoUseCase(orcamentos, contratos, planejamentos, nil), orcamentos, contratos, planejamentos
	}
	return NewContratoUseCase(orcamentos, contratos, planejamentos, renderer), orcamentos, contratos, planejamentos
}

func orcamentoJuridico() entities.Orcamento {
	return entities.Orcamento{
		ID:          "o1",
		Cliente:     "Joao",
		NomeProjeto: "Casa Alphaville",
		Status:      entities.OrcamentoStatusJuridico,
		ValorTotal:  100000,
		Etapas: []entities.Etapa{
			{ID: "et1", Nome: "Fundacao", Subetapas: []entities.Subetapa{
				{ID: "sub1", Nome: "Escavacao", Itens: []entities.ItemOrcamento{
					{ID: "it1", InsumoID: "i1", Descricao: "Cimento CP-II", Quantidade: 50, Unidade: "sc", PrecoUnitario: 40, Total: 2000},
				}},
			}},
			{ID: "et2", Nome: "Alvenaria"},
		},
	}
}

func TestContratoUseCase_CriarContrato(t *testing.T) {
	ctx := context.Background()
	template := "Contrato de {{NOME_CLIENTE}} para {{NOME_PROJETO}} no valor de {{VALOR_TOTAL}}. Etapas: {{ETAPAS_PROJETO}}. Assinam: {{SIGNATARIOS}}. Gerado em {{DATA_GERACAO}}."

	t.Run("requires the budget in juridico", func(t *testing.T) {
		uc, orcamentos, _, _ := newContratoFixture(nil)
		orcamentos.Create(ctx, entities.Orcamento{ID: "o1", Status: entities.OrcamentoStatusRascunho})

		_, err := uc.CriarContrato(ctx, "o1", template, nil)
		if !errors.Is(err, ErrOrcamentoForaJuridico) {
			t.Fatalf("expected ErrOrcamentoForaJuridico, got %v", err)
		}
	})

	t.Run("fills the template and advances the budget", func(t *testing.T) {
		uc, orcamentos, _, _ := newContratoFixture(nil)
		orcamentos.Create(ctx, orcamentoJuridico())

		contrato, err := uc.CriarContrato(ctx, "o1", template, []entities.Signatario{{Nome: "Joao"}, {Nome: "Construtora XYZ"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contrato.Status != entities.ContratoStatusEmDesenvolvimento {
			t.Fatalf("expected em_desenvolvimento, got %s", contrato.Status)
		}
		for _, want := range []string{"Joao", "Casa Alphaville", "100000.00", "Fundacao; Alvenaria", "Joao, Construtora XYZ"} {
			if !strings.Contains(contrato.Conteudo, want) {
				t.Fatalf("content missing %q: %s", want, contrato.Conteudo)
			}
		}
		if strings.Contains(contrato.Conteudo, "{{") {
			t.Fatalf("unexpected leftover token: %s", contrato.Conteudo)
		}

		orcamento, _ := orcamentos.GetByID(ctx, "o1")
		if orcamento.Status != entities.OrcamentoStatusEnviado {
			t.Fatalf("expected budget enviado, got %s", orcamento.Status)
		}
	})

	t.Run("absent data leaves tokens literal", func(t *testing.T) {
		uc, orcamentos, _, _ := newContratoFixture(nil)
		o := orcamentoJuridico()
		o.Etapas = nil
		orcamentos.Create(ctx, o)

		contrato, err := uc.CriarContrato(ctx, "o1", template, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(contrato.Conteudo, TokenEtapasProjeto) || !strings.Contains(contrato.Conteudo, TokenSignatarios) {
			t.Fatalf("expected literal tokens preserved: %s", contrato.Conteudo)
		}
	})

	t.Run("one budget spawns at most one contract", func(t *testing.T) {
		uc, orcamentos, _, _ := newContratoFixture(nil)
		orcamentos.Create(ctx, orcamentoJuridico())

		if _, err := uc.CriarContrato(ctx, "o1", template, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Force the budget back so only the derived id blocks the retry.
		o, _ := orcamentos.GetByID(ctx, "o1")
		o.Status = entities.OrcamentoStatusJuridico
		orcamentos.Update(ctx, o)

		_, err := uc.CriarContrato(ctx, "o1", template, nil)
		if !errors.Is(err, ErrContratoJaExiste) {
			t.Fatalf("expected ErrContratoJaExiste, got %v", err)
		}
	})

	t.Run("renderer url is attached when it succeeds", func(t *testing.T) {
		uc, orcamentos, _, _ := newContratoFixture(&fakeRenderer{url: "https://docs.local/c1.pdf"})
		orcamentos.Create(ctx, orcamentoJuridico())

		contrato, err := uc.CriarContrato(ctx, "o1", template, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contrato.DocumentoURL != "https://docs.local/c1.pdf" {
			t.Fatalf("unexpected document url: %s", contrato.DocumentoURL)
		}
	})

	t.Run("renderer failure does not block creation", func(t *testing.T) {
		uc, orcamentos, _, _ := newContratoFixture(&fakeRenderer{err: errors.New("render service down")})
		orcamentos.Create(ctx, orcamentoJuridico())

		contrato, err := uc.CriarContrato(ctx, "o1", template, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contrato.DocumentoURL != "" {
			t.Fatalf("expected empty document url, got %s", contrato.DocumentoURL)
		}
	})
}

func TestContratoUseCase_AtualizarStatus(t *testing.T) {
	ctx := context.Background()

	criar := func(t *testing.T) (*ContratoUseCase, *fakeColecao[entities.Orcamento], *fakeColecao[entities.Planejamento], entities.Contrato) {
		t.Helper()
		uc, orcamentos, _, planejamentos := newContratoFixture(nil)
		orcamentos.Create(ctx, orcamentoJuridico())
		contrato, err := uc.CriarContrato(ctx, "o1", "{{NOME_PROJETO}}", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return uc, orcamentos, planejamentos, contrato
	}

	t.Run("propagates the mapped budget status", func(t *testing.T) {
		uc, orcamentos, _, contrato := criar(t)

		if _, err := uc.AtualizarStatus(ctx, contrato.ID, entities.ContratoStatusEnviado); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		o, _ := orcamentos.GetByID(ctx, "o1")
		if o.Status != entities.OrcamentoStatusEnviado {
			t.Fatalf("expected budget enviado, got %s", o.Status)
		}

		if _, err := uc.AtualizarStatus(ctx, contrato.ID, entities.ContratoStatusCancelado); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		o, _ = orcamentos.GetByID(ctx, "o1")
		if o.Status != entities.OrcamentoStatusPerdido {
			t.Fatalf("expected budget perdido, got %s", o.Status)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		uc, _, _, contrato := criar(t)
		_, err := uc.AtualizarStatus(ctx, contrato.ID, "rescindido")
		if !errors.Is(err, ErrContratoStatusInvalido) {
			t.Fatalf("expected ErrContratoStatusInvalido, got %v", err)
		}
	})

	t.Run("signing spawns the execution plan cloned from the budget", func(t *testing.T) {
		uc, orcamentos, planejamentos, contrato := criar(t)

		if _, err := uc.AtualizarStatus(ctx, contrato.ID, entities.ContratoStatusAssinado); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		o, _ := orcamentos.GetByID(ctx, "o1")
		if o.Status != entities.OrcamentoStatusAssinado {
			t.Fatalf("expected budget assinado, got %s", o.Status)
		}

		planos, _ := planejamentos.List(ctx)
		if len(planos) != 1 {
			t.Fatalf("expected 1 plan, got %d", len(planos))
		}
		plano := planos[0]
		if plano.ID != derivedID(contrato.ID, "planejamento") || plano.OrcamentoOrigemID != "o1" {
			t.Fatalf("unexpected plan: %+v", plano)
		}
		if len(plano.Etapas) != 2 || plano.Etapas[0].ID != "et1" || plano.Etapas[1].ID != "et2" {
			t.Fatalf("stage ids not preserved: %+v", plano.Etapas)
		}
		etapa := plano.Etapas[0]
		if etapa.Status != entities.EtapaNaoIniciada || etapa.Progresso != 0 || etapa.ValorRealizado != 0 {
			t.Fatalf("expected zeroed execution fields: %+v", etapa)
		}
		sub := etapa.Subetapas[0]
		if sub.ID != "sub1" || len(sub.Necessidades) != 1 {
			t.Fatalf("unexpected sub-stage: %+v", sub)
		}
		need := sub.Necessidades[0]
		if need.InsumoID != "i1" || need.Quantidade != 50 || need.StatusCompra != entities.NecessidadeDisponivel {
			t.Fatalf("unexpected material need: %+v", need)
		}
	})

	t.Run("repeated signing does not duplicate the plan", func(t *testing.T) {
		uc, _, planejamentos, contrato := criar(t)

		uc.AtualizarStatus(ctx, contrato.ID, entities.ContratoStatusAssinado)
		if _, err := uc.AtualizarStatus(ctx, contrato.ID, entities.ContratoStatusAssinado); err != nil {
			t.Fatalf("unexpected error on re-sign: %v", err)
		}

		planos, _ := planejamentos.List(ctx)
		if len(planos) != 1 {
			t.Fatalf("expected still 1 plan, got %d", len(planos))
		}
	})
}

func TestContratoUseCase_AdicionarAditivo(t *testing.T) {
	ctx := context.Background()
	uc, orcamentos, _, _ := newContratoFixture(nil)
	orcamentos.Create(ctx, orcamentoJuridico())
	contrato, err := uc.CriarContrato(ctx, "o1", "{{NOME_PROJETO}}", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	contrato, err = uc.AdicionarAditivo(ctx, contrato.ID, entities.Aditivo{Descricao: "Piscina", Valor: 25000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contrato.Aditivos) != 1 || contrato.Aditivos[0].Data.IsZero() {
		t.Fatalf("unexpected addenda: %+v", contrato.Aditivos)
	}
}

// Full sales cascade: lead closes into a draft budget, the budget walks its
// forward-only lifecycle, the contract is generated in juridico and signing
// materializes the execution plan.
func TestCascataComercial(t *testing.T) {
	ctx := context.Background()

	leads := newFakeColecao[entities.Lead]()
	orcamentos := newFakeColecao[entities.Orcamento]()
	contratos := newFakeColecao[entities.Contrato]()
	planejamentos := newFakeColecao[entities.Planejamento]()

	leadUC := NewLeadUseCase(leads, orcamentos)
	orcamentoUC := NewOrcamentoUseCase(orcamentos)
	contratoUC := NewContratoUseCase(orcamentos, contratos, planejamentos, nil)

	lead, err := leadUC.CriarLead(ctx, entities.Lead{Nome: "Casa Alphaville", Cliente: "Joao", Valor: 10000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := leadUC.AtualizarEstagio(ctx, lead.ID, entities.LeadEstagioFechado); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orcamentoID := derivedID(lead.ID, "orcamento")
	orcamento, err := orcamentoUC.GetByID(ctx, orcamentoID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orcamento.Status != entities.OrcamentoStatusRascunho || orcamento.ValorTotal != 10000 {
		t.Fatalf("unexpected spawned budget: %+v", orcamento)
	}

	if _, err := orcamentoUC.AtualizarStatus(ctx, orcamentoID, entities.OrcamentoStatusEnviado); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := orcamentoUC.AtualizarStatus(ctx, orcamentoID, entities.OrcamentoStatusJuridico); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	contrato, err := contratoUC.CriarContrato(ctx, orcamentoID, "Contrato {{NOME_PROJETO}} - {{VALOR_TOTAL}}", []entities.Signatario{{Nome: "Joao"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(contrato.Conteudo, "Casa Alphaville") || !strings.Contains(contrato.Conteudo, "10000.00") {
		t.Fatalf("unexpected contract content: %s", contrato.Conteudo)
	}
	orcamento, _ = orcamentoUC.GetByID(ctx, orcamentoID)
	if orcamento.Status != entities.OrcamentoStatusEnviado {
		t.Fatalf("expected budget back in enviado, got %s", orcamento.Status)
	}

	if _, err := contratoUC.AtualizarStatus(ctx, contrato.ID, entities.ContratoStatusAssinado); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	orcamento, _ = orcamentoUC.GetByID(ctx, orcamentoID)
	if orcamento.Status != entities.OrcamentoStatusAssinado {
		t.Fatalf("expected budget assinado, got %s", orcamento.Status)
	}

	plano, err := planejamentos.GetByID(ctx, derivedID(contrato.ID, "planejamento"))
	if err != nil || plano.ID == "" {
		t.Fatalf("expected spawned plan, got %+v err=%v", plano, err)
	}
	if plano.NomeProjeto != "Casa Alphaville" || plano.Cliente != "Joao" {
		t.Fatalf("unexpected plan header: %+v", plano)
	}
}
