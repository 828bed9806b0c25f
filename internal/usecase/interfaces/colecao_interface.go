package interfaces

import (
	"context"
	"errors"

	"construtora_xyz/internal/domain/entities"
)

var (
	// ErrJaExiste is returned by Create when a record with the same id is
	// already stored. Workflows creating derived records with deterministic
	// ids treat it as "already done".
	ErrJaExiste = errors.New("registro ja existe")

	// ErrConflitoVersao is returned by Update when the stored version no
	// longer matches the version the caller read. The caller must re-fetch
	// and re-apply.
	ErrConflitoVersao = errors.New("conflito de versao")
)

// IColecao is the five-operation contract every workflow depends on. No query
// language, filtering or multi-record transaction is assumed; lookups beyond
// GetByID are linear scans over List.
//
// Reads of a missing id return the zero value with a nil error; usecases
// translate that into their own not-found errors.

type IColecao[T entities.Registro] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, rec T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Typed aliases, one per named collection.
type (
	IInsumoRepository       = IColecao[entities.Insumo]
	IEstoqueRepository      = IColecao[entities.Estoque]
	ICompraRepository       = IColecao[entities.Compra]
	IFornecedorRepository   = IColecao[entities.Fornecedor]
	ILeadRepository         = IColecao[entities.Lead]
	IOrcamentoRepository    = IColecao[entities.Orcamento]
	IContratoRepository     = IColecao[entities.Contrato]
	IPlanejamentoRepository = IColecao[entities.Planejamento]
	IDiarioRepository       = IColecao[entities.DiarioObra]
	IFinanceiroRepository   = IColecao[entities.Financeiro]
)
