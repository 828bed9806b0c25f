package entities

import "time"

// InsumoTipo classifies a catalog item.
type InsumoTipo string

const (
	InsumoTipoMaterial   InsumoTipo = "material"
	InsumoTipoMaoDeObra  InsumoTipo = "mao_de_obra"
	InsumoTipoComposicao InsumoTipo = "composicao"
)

// ComponenteInsumo is one line of a composite item's bill of materials.
type ComponenteInsumo struct {
	InsumoID   string  `json:"insumo_id"`
	Quantidade float64 `json:"quantidade"`
}

// Insumo is the material/labor catalog entry.
//
// Storage model (DynamoDB):
//   - PK: id
//   - EstoqueID is a weak reference to the warehouse ledger record; it is
//     populated when stock tracking is enabled and the pair is linked.
//
// Invariants:
//   - Quantidade >= 0
//   - a composicao may not reference another composicao

type Insumo struct {
	ID              string             `json:"id"`
	Nome            string             `json:"nome"`
	Tipo            InsumoTipo         `json:"tipo"`
	Unidade         string             `json:"unidade"`
	PrecoUnitario   float64            `json:"preco_unitario"`
	ControlaEstoque bool               `json:"controla_estoque"`
	Quantidade      float64            `json:"quantidade"`
	EstoqueID       string             `json:"estoque_id,omitempty"`
	OrigemEstoque   bool               `json:"origem_estoque,omitempty"`
	Componentes     []ComponenteInsumo `json:"componentes,omitempty"`
	Version         int64              `json:"version"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func (i Insumo) RegistroID() string     { return i.ID }
func (i Insumo) RegistroVersion() int64 { return i.Version }
