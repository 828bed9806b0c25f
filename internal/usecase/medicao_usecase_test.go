package usecase

import (
	"context"
	"errors"
	"testing"

	"construtora_xyz/internal/domain/entities"
)

func newMedicaoFixture() (*MedicaoUseCase, *fakeColecao[entities.Planejamento], *fakeColecao[entities.Orcamento], *fakeColecao[entities.DiarioObra], *fakeColecao[entities.Financeiro]) {
	planejamentos := newFakeColecao[entities.Planejamento]()
	orcamentos := newFakeColecao[entities.Orcamento]()
	diarios := newFakeColecao[entities.DiarioObra]()
	financeiro := newFakeColecao[entities.Financeiro]()
	uc := NewMedicaoUseCase(planejamentos, orcamentos, diarios, financeiro)
	return uc, planejamentos, orcamentos, diarios, financeiro
}

func atividades(progressos ...float64) []entities.AtividadeDiario {
	out := make([]entities.AtividadeDiario, 0, len(progressos))
	for _, p := range progressos {
		out = append(out, entities.AtividadeDiario{Origem: entities.AtividadeOrigemPlanejamento, Descricao: "atividade", Progresso: p})
	}
	return out
}

func TestMedicaoUseCase_CalcularMedicao(t *testing.T) {
	uc, _, _, _, _ := newMedicaoFixture()
	proposta := entities.Orcamento{ValorTotal: 100000}

	t.Run("averages progress across all origins", func(t *testing.T) {
		lista := atividades(20, 40, 60)
		lista = append(lista, entities.AtividadeDiario{Origem: entities.AtividadeOrigemManual, Descricao: "extra", Progresso: 80})

		m := uc.CalcularMedicao(proposta, lista)
		if m.Percentual != 50 {
			t.Fatalf("expected 50%%, got %.2f", m.Percentual)
		}
		if m.Valor != 50000 {
			t.Fatalf("expected 50000, got %.2f", m.Valor)
		}
	})

	t.Run("no activities means zero", func(t *testing.T) {
		m := uc.CalcularMedicao(proposta, nil)
		if m.Percentual != 0 || m.Valor != 0 {
			t.Fatalf("expected zero measurement, got %+v", m)
		}
	})

	t.Run("no linked proposal prices at zero", func(t *testing.T) {
		m := uc.CalcularMedicao(entities.Orcamento{}, atividades(50))
		if m.Percentual != 50 || m.Valor != 0 {
			t.Fatalf("expected 50%% at zero value, got %+v", m)
		}
	})
}

func TestMedicaoUseCase_SalvarDiario(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, uc *MedicaoUseCase, planejamentos *fakeColecao[entities.Planejamento], orcamentos *fakeColecao[entities.Orcamento]) {
		t.Helper()
		orcamentos.Create(ctx, entities.Orcamento{ID: "o1", Cliente: "Joao", NomeProjeto: "Casa Alphaville", ValorTotal: 100000})
		planejamentos.Create(ctx, entities.Planejamento{ID: "p1", OrcamentoOrigemID: "o1", NomeProjeto: "Casa Alphaville", Cliente: "Joao"})
	}

	t.Run("rejects progress out of range", func(t *testing.T) {
		uc, planejamentos, orcamentos, _, _ := newMedicaoFixture()
		seed(t, uc, planejamentos, orcamentos)

		_, err := uc.SalvarDiario(ctx, entities.DiarioObra{PlanejamentoID: "p1", Atividades: atividades(40, 120)})
		if !errors.Is(err, ErrProgressoInvalido) {
			t.Fatalf("expected ErrProgressoInvalido, got %v", err)
		}
	})

	t.Run("missing plan", func(t *testing.T) {
		uc, _, _, _, _ := newMedicaoFixture()
		_, err := uc.SalvarDiario(ctx, entities.DiarioObra{PlanejamentoID: "nope"})
		if !errors.Is(err, ErrPlanejamentoNaoEncontrado) {
			t.Fatalf("expected ErrPlanejamentoNaoEncontrado, got %v", err)
		}
	})

	t.Run("unknown id on re-save is rejected", func(t *testing.T) {
		uc, planejamentos, orcamentos, diarios, _ := newMedicaoFixture()
		seed(t, uc, planejamentos, orcamentos)

		_, err := uc.SalvarDiario(ctx, entities.DiarioObra{ID: "does-not-exist", PlanejamentoID: "p1", Atividades: atividades(50)})
		if !errors.Is(err, ErrDiarioNaoEncontrado) {
			t.Fatalf("expected ErrDiarioNaoEncontrado, got %v", err)
		}
		all, _ := diarios.List(ctx)
		if len(all) != 0 {
			t.Fatalf("expected nothing stored, got %d", len(all))
		}
	})

	t.Run("computes measurement and projects both provisions", func(t *testing.T) {
		uc, planejamentos, orcamentos, diarios, financeiro := newMedicaoFixture()
		seed(t, uc, planejamentos, orcamentos)

		diario, err := uc.SalvarDiario(ctx, entities.DiarioObra{
			PlanejamentoID: "p1",
			Atividades:     atividades(20, 40, 60, 80),
			MaoDeObra: []entities.RegistroMaoDeObra{
				{Funcao: "pedreiro", Horas: 8, ValorHora: 30},
				{Funcao: "servente", Horas: 8, ValorHora: 20},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diario.ID == "" || diario.Tipo != entities.DiarioTipoDiario {
			t.Fatalf("unexpected diary: %+v", diario)
		}
		if diario.Medicao.Percentual != 50 || diario.Medicao.Valor != 50000 {
			t.Fatalf("unexpected measurement: %+v", diario.Medicao)
		}

		salvo, _ := diarios.GetByID(ctx, diario.ID)
		if salvo.Medicao.Valor != 50000 {
			t.Fatalf("measurement not persisted: %+v", salvo.Medicao)
		}

		entradas, _ := financeiro.List(ctx)
		if len(entradas) != 2 {
			t.Fatalf("expected 2 finance entries, got %d", len(entradas))
		}
		porTipo := make(map[entities.FinanceiroTipo]entities.Financeiro, len(entradas))
		for _, f := range entradas {
			porTipo[f.Tipo] = f
		}
		receita := porTipo[entities.FinanceiroProvisaoReceita]
		if receita.Valor != 50000 || receita.OrigemID != diario.ID || receita.OrigemTipo != entities.FinanceiroOrigemDiario {
			t.Fatalf("unexpected revenue provision: %+v", receita)
		}
		custo := porTipo[entities.FinanceiroProvisaoCusto]
		if custo.Valor != 400 {
			t.Fatalf("expected labor cost 400, got %.2f", custo.Valor)
		}
	})

	t.Run("re-saving does not duplicate provisions", func(t *testing.T) {
		uc, planejamentos, orcamentos, _, financeiro := newMedicaoFixture()
		seed(t, uc, planejamentos, orcamentos)

		diario, err := uc.SalvarDiario(ctx, entities.DiarioObra{
			PlanejamentoID: "p1",
			Atividades:     atividades(50),
			MaoDeObra:      []entities.RegistroMaoDeObra{{Funcao: "pedreiro", Horas: 4, ValorHora: 30}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.SalvarDiario(ctx, diario); err != nil {
			t.Fatalf("unexpected error on re-save: %v", err)
		}

		entradas, _ := financeiro.List(ctx)
		if len(entradas) != 2 {
			t.Fatalf("expected still 2 finance entries, got %d", len(entradas))
		}
	})

	t.Run("falls back to name and client match", func(t *testing.T) {
		uc, planejamentos, orcamentos, _, _ := newMedicaoFixture()
		orcamentos.Create(ctx, entities.Orcamento{ID: "o1", Cliente: "Joao", NomeProjeto: "Casa Alphaville", ValorTotal: 80000})
		planejamentos.Create(ctx, entities.Planejamento{ID: "p1", NomeProjeto: "casa alphaville", Cliente: "JOAO"})

		diario, err := uc.SalvarDiario(ctx, entities.DiarioObra{PlanejamentoID: "p1", Atividades: atividades(25)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diario.Medicao.Valor != 20000 {
			t.Fatalf("expected 20000 via fallback match, got %.2f", diario.Medicao.Valor)
		}
	})

	t.Run("no labor lines means no cost provision", func(t *testing.T) {
		uc, planejamentos, orcamentos, _, financeiro := newMedicaoFixture()
		seed(t, uc, planejamentos, orcamentos)

		if _, err := uc.SalvarDiario(ctx, entities.DiarioObra{PlanejamentoID: "p1", Atividades: atividades(10)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		entradas, _ := financeiro.List(ctx)
		for _, f := range entradas {
			if f.Tipo == entities.FinanceiroProvisaoCusto {
				t.Fatalf("unexpected cost provision: %+v", f)
			}
		}
	})
}
