package request

import (
	"testing"

	"construtora_xyz/internal/domain/entities"
)

func TestCompraRequest_ToEntity(t *testing.T) {
	r := CompraRequest{
		InsumoID:      "  i1  ",
		MaterialNome:  " Cimento CP-II ",
		Quantidade:    100,
		Unidade:       "sc",
		CompraDireta:  true,
		PrecoUnitario: 39.9,
	}

	compra := r.ToEntity()
	if compra.InsumoID != "i1" || compra.MaterialNome != "Cimento CP-II" {
		t.Fatalf("expected trimmed fields, got %+v", compra)
	}
	if !compra.CompraDireta || compra.PrecoUnitario != 39.9 {
		t.Fatalf("unexpected direct purchase payload: %+v", compra)
	}
	if compra.Status != "" {
		t.Fatalf("request must not set a status, got %s", compra.Status)
	}
}

func TestInsumoRequest_ToEntity(t *testing.T) {
	t.Run("defaults tipo to material", func(t *testing.T) {
		insumo := InsumoRequest{Nome: " Cimento "}.ToEntity()
		if insumo.Nome != "Cimento" || insumo.Tipo != entities.InsumoTipoMaterial {
			t.Fatalf("unexpected entity: %+v", insumo)
		}
	})

	t.Run("carries components", func(t *testing.T) {
		insumo := InsumoRequest{
			Nome: "Alvenaria m2",
			Tipo: "composicao",
			Componentes: []ComponenteRequest{
				{InsumoID: "i1", Quantidade: 2},
				{InsumoID: "i2", Quantidade: 0.5},
			},
		}.ToEntity()
		if insumo.Tipo != entities.InsumoTipoComposicao || len(insumo.Componentes) != 2 {
			t.Fatalf("unexpected entity: %+v", insumo)
		}
		if insumo.Componentes[1].Quantidade != 0.5 {
			t.Fatalf("unexpected component: %+v", insumo.Componentes[1])
		}
	})
}

func TestEtapasRequest_ToEntities(t *testing.T) {
	r := EtapasRequest{Etapas: []EtapaRequest{
		{ID: "et1", Nome: "Fundacao", Subetapas: []SubetapaRequest{
			{ID: "sub1", Nome: "Escavacao", Itens: []ItemOrcamentoRequest{
				{Descricao: "Cimento", Quantidade: 50, PrecoUnitario: 40},
				{Descricao: "Locacao", Total: 1500},
			}},
		}},
	}}

	etapas := r.ToEntities()
	if len(etapas) != 1 || len(etapas[0].Subetapas[0].Itens) != 2 {
		t.Fatalf("unexpected tree: %+v", etapas)
	}
	itens := etapas[0].Subetapas[0].Itens
	if itens[0].Total != 2000 {
		t.Fatalf("expected derived total 2000, got %.2f", itens[0].Total)
	}
	if itens[1].Total != 1500 {
		t.Fatalf("expected explicit total kept, got %.2f", itens[1].Total)
	}
}
