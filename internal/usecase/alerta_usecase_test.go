package usecase

import (
	"context"
	"testing"
	"time"

	"construtora_xyz/internal/domain/entities"
	"construtora_xyz/internal/infrastructure/alerts"
)

func newAlertaFixture() (*AlertaUseCase, *fakeColecao[entities.Estoque], *fakeColecao[entities.Compra], *fakeColecao[entities.Contrato], *alerts.MemoryStore) {
	estoques := newFakeColecao[entities.Estoque]()
	compras := newFakeColecao[entities.Compra]()
	contratos := newFakeColecao[entities.Contrato]()
	store := alerts.NewMemoryStore()
	uc := NewAlertaUseCase(estoques, compras, contratos, store)
	return uc, estoques, compras, contratos, store
}

func TestAlertaUseCase_Derivar(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing to flag derives nothing", func(t *testing.T) {
		uc, estoques, _, _, _ := newAlertaFixture()
		estoques.Create(ctx, entities.Estoque{ID: "e1", Nome: "Cimento", Quantidade: 100, QuantidadeMinima: 10})

		novas, err := uc.Derivar(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(novas) != 0 {
			t.Fatalf("expected no alerts, got %+v", novas)
		}
	})

	t.Run("flags each condition once", func(t *testing.T) {
		uc, estoques, compras, contratos, _ := newAlertaFixture()
		estoques.Create(ctx, entities.Estoque{ID: "e1", Nome: "Cimento", Quantidade: 3, QuantidadeMinima: 10})
		estoques.Create(ctx, entities.Estoque{ID: "e2", Nome: "Areia", Quantidade: 2})
		compras.Create(ctx, entities.Compra{
			ID:        "c1",
			Status:    entities.CompraStatusEmCotacao,
			UpdatedAt: time.Now().UTC().Add(-8 * 24 * time.Hour),
		})
		contratos.Create(ctx, entities.Contrato{ID: "ct1", Status: entities.ContratoStatusEnviado})

		novas, err := uc.Derivar(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(novas) != 3 {
			t.Fatalf("expected 3 alerts, got %d: %+v", len(novas), novas)
		}
		porChave := make(map[string]entities.Alerta, len(novas))
		for _, a := range novas {
			if a.ID == "" || a.CriadaEm.IsZero() || a.Lida {
				t.Fatalf("malformed alert: %+v", a)
			}
			porChave[a.Chave] = a
		}
		for _, chave := range []string{entities.AlertaEstoqueBaixo, entities.AlertaCotacaoPendente, entities.AlertaContratoNaoAssinado} {
			if _, ok := porChave[chave]; !ok {
				t.Fatalf("missing alert for %s: %+v", chave, novas)
			}
		}
	})

	t.Run("deriving twice keeps one open alert per condition", func(t *testing.T) {
		uc, estoques, _, _, _ := newAlertaFixture()
		estoques.Create(ctx, entities.Estoque{ID: "e1", Nome: "Cimento", Quantidade: 3, QuantidadeMinima: 10})

		if _, err := uc.Derivar(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		novas, err := uc.Derivar(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(novas) != 0 {
			t.Fatalf("expected no new alerts on re-derive, got %+v", novas)
		}

		todas, _ := uc.Listar(ctx)
		if len(todas) != 1 {
			t.Fatalf("expected 1 stored alert, got %d", len(todas))
		}
	})

	t.Run("marking read releases the key", func(t *testing.T) {
		uc, estoques, _, _, _ := newAlertaFixture()
		estoques.Create(ctx, entities.Estoque{ID: "e1", Nome: "Cimento", Quantidade: 3, QuantidadeMinima: 10})

		primeiras, _ := uc.Derivar(ctx)
		if len(primeiras) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(primeiras))
		}
		if err := uc.MarcarLida(ctx, primeiras[0].ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		novas, err := uc.Derivar(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(novas) != 1 {
			t.Fatalf("expected re-derived alert after read, got %d", len(novas))
		}
		todas, _ := uc.Listar(ctx)
		if len(todas) != 2 {
			t.Fatalf("expected 2 stored alerts, got %d", len(todas))
		}
	})

	t.Run("fresh quotes are not stale", func(t *testing.T) {
		uc, _, compras, _, _ := newAlertaFixture()
		compras.Create(ctx, entities.Compra{
			ID:        "c1",
			Status:    entities.CompraStatusEmCotacao,
			UpdatedAt: time.Now().UTC().Add(-time.Hour),
		})

		novas, err := uc.Derivar(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(novas) != 0 {
			t.Fatalf("expected no alerts for fresh quote, got %+v", novas)
		}
	})
}
