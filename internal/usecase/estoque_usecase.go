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
	ErrInsumoNaoEncontrado  = errors.New("insumo nao encontrado")
	ErrEstoqueNaoEncontrado = errors.New("estoque nao encontrado")
	ErrInsumoSemEstoque     = errors.New("insumo nao controla estoque")
	ErrNomeInvalido         = errors.New("nome obrigatorio")
	ErrQuantidadeInvalida   = errors.New("quantidade invalida")
	ErrComposicaoAninhada   = errors.New("composicao nao pode conter outra composicao")
)

// Replenishment parameters: a ledger whose quantity falls below its minimum
// (or the default floor when none is set) triggers a purchase request for
// max(reposicaoMinima, 2x current quantity).
const (
	defaultQuantidadeMinima = 10.0
	reposicaoMinima         = 50.0
)

// IEstoqueUseCase is the bidirectional reconciler between the material
// catalog (Insumo) and the warehouse ledger (Estoque).
//
// Every operation re-fetches current state immediately before deciding what
// to write. The two linked writes are sequential, not transactional: when the
// second one fails the first stays committed. Both records carry an
// optimistic version so a racing writer fails with ErrConflitoVersao instead
// of silently overwriting.

type IEstoqueUseCase interface {
	CriarInsumo(ctx context.Context, insumo entities.Insumo) (entities.Insumo, error)
	SincronizarInsumoParaEstoque(ctx context.Context, insumoID string, entrada float64, motivo string) (entities.Estoque, error)
	SincronizarEstoqueParaInsumo(ctx context.Context, estoqueID string, delta float64, motivo string) (entities.Estoque, error)
	RegistrarSaidaPorInsumo(ctx context.Context, insumoID string, quantidade float64, motivo string) (entities.Estoque, error)
	ImportarEstoquesSemVinculo(ctx context.Context) (int, error)
}

type EstoqueUseCase struct {
	insumos  interfaces.IInsumoRepository
	estoques interfaces.IEstoqueRepository
	compras  interfaces.ICompraRepository
}

var _ IEstoqueUseCase = (*EstoqueUseCase)(nil)

func NewEstoqueUseCase(insumos interfaces.IInsumoRepository, estoques interfaces.IEstoqueRepository, compras interfaces.ICompraRepository) *EstoqueUseCase {
	return &EstoqueUseCase{insumos: insumos, estoques: estoques, compras: compras}
}

func (u *EstoqueUseCase) CriarInsumo(ctx context.Context, insumo entities.Insumo) (entities.Insumo, error) {
	insumo.Nome = strings.TrimSpace(insumo.Nome)
	if insumo.Nome == "" {
		return entities.Insumo{}, ErrNomeInvalido
	}
	if insumo.Quantidade < 0 {
		return entities.Insumo{}, ErrQuantidadeInvalida
	}
	if err := u.validarComposicao(ctx, insumo); err != nil {
		return entities.Insumo{}, err
	}

	now := time.Now().UTC()
	if insumo.ID == "" {
		insumo.ID = uuid.NewString()
	}
	insumo.CreatedAt = now
	insumo.UpdatedAt = now

	created, err := u.insumos.Create(ctx, insumo)
	if err != nil {
		return entities.Insumo{}, err
	}

	if created.ControlaEstoque {
		if _, err := u.SincronizarInsumoParaEstoque(ctx, created.ID, 0, "cadastro de insumo"); err != nil {
			// Catalog entry is committed; the ledger side can be retried.
			log.Printf("[estoque][usecase] initial sync failed insumo_id=%s err=%v", created.ID, err)
		}
	}
	return created, nil
}

// validarComposicao enforces that a composite item never references another
// composite.
func (u *EstoqueUseCase) validarComposicao(ctx context.Context, insumo entities.Insumo) error {
	if insumo.Tipo != entities.InsumoTipoComposicao {
		return nil
	}
	for _, comp := range insumo.Componentes {
		dep, err := u.insumos.GetByID(ctx, comp.InsumoID)
		if err != nil {
			return err
		}
		if dep.ID == "" {
			return ErrInsumoNaoEncontrado
		}
		if dep.Tipo == entities.InsumoTipoComposicao {
			return ErrComposicaoAninhada
		}
	}
	return nil
}

// SincronizarInsumoParaEstoque pushes the catalog side into the ledger.
// entrada is the incoming quantity (zero when only linking/refreshing); the
// resolved ledger is updated or created, both weak references are filled, and
// a low resulting quantity emits a replenishment purchase request.
func (u *EstoqueUseCase) SincronizarInsumoParaEstoque(ctx context.Context, insumoID string, entrada float64, motivo string) (entities.Estoque, error) {
	if entrada < 0 {
		return entities.Estoque{}, ErrQuantidadeInvalida
	}

	insumo, err := u.insumos.GetByID(ctx, insumoID)
	if err != nil {
		return entities.Estoque{}, err
	}
	if insumo.ID == "" {
		return entities.Estoque{}, ErrInsumoNaoEncontrado
	}
	if !insumo.ControlaEstoque {
		return entities.Estoque{}, ErrInsumoSemEstoque
	}

	estoque, err := u.resolverEstoque(ctx, insumo)
	if err != nil {
		return entities.Estoque{}, err
	}

	now := time.Now().UTC()
	if estoque.ID == "" {
		estoque = entities.Estoque{
			ID:         uuid.NewString(),
			InsumoID:   insumo.ID,
			Nome:       insumo.Nome,
			Unidade:    insumo.Unidade,
			Quantidade: insumo.Quantidade + entrada,
			CreatedAt:  now,
		}
		if estoque.Quantidade > 0 {
			estoque.Movimentacoes = []entities.Movimentacao{{
				Tipo:       entities.MovimentacaoEntrada,
				Quantidade: estoque.Quantidade,
				Motivo:     motivo,
				Data:       now,
			}}
		}
		estoque.ValorUnitario = insumo.PrecoUnitario
		estoque.UpdatedAt = now

		estoque, err = u.estoques.Create(ctx, estoque)
		if err != nil {
			return entities.Estoque{}, err
		}
		log.Printf("[estoque][usecase] ledger created estoque_id=%s insumo_id=%s qty=%.2f", estoque.ID, insumo.ID, estoque.Quantidade)
	} else {
		estoque.InsumoID = insumo.ID
		estoque.ValorUnitario = insumo.PrecoUnitario
		if entrada > 0 {
			estoque.Quantidade += entrada
			estoque.Movimentacoes = append(estoque.Movimentacoes, entities.Movimentacao{
				Tipo:       entities.MovimentacaoEntrada,
				Quantidade: entrada,
				Motivo:     motivo,
				Data:       now,
			})
		}
		estoque.UpdatedAt = now

		estoque, err = u.estoques.Update(ctx, estoque)
		if err != nil {
			return entities.Estoque{}, err
		}
		log.Printf("[estoque][usecase] ledger updated estoque_id=%s insumo_id=%s qty=%.2f", estoque.ID, insumo.ID, estoque.Quantidade)
	}

	// Second write of the pair: mirror quantity and link back. A version
	// conflict here leaves the ledger committed; the caller re-invokes.
	insumo.EstoqueID = estoque.ID
	insumo.Quantidade = estoque.Quantidade
	insumo.UpdatedAt = now
	if _, err := u.insumos.Update(ctx, insumo); err != nil {
		log.Printf("[estoque][usecase] catalog write failed after ledger commit insumo_id=%s err=%v", insumo.ID, err)
		return entities.Estoque{}, err
	}

	if err := u.verificarReposicao(ctx, insumo, estoque); err != nil {
		log.Printf("[estoque][usecase] replenishment check failed insumo_id=%s err=%v", insumo.ID, err)
	}
	return estoque, nil
}

// resolverEstoque finds the ledger counterpart: by the strong reference
// first, then by case-insensitive name among still-unlinked ledgers. The name
// match exists only to absorb records created before the foreign keys were
// mandatory.
func (u *EstoqueUseCase) resolverEstoque(ctx context.Context, insumo entities.Insumo) (entities.Estoque, error) {
	if insumo.EstoqueID != "" {
		estoque, err := u.estoques.GetByID(ctx, insumo.EstoqueID)
		if err != nil {
			return entities.Estoque{}, err
		}
		if estoque.ID != "" {
			return estoque, nil
		}
	}

	todos, err := u.estoques.List(ctx)
	if err != nil {
		return entities.Estoque{}, err
	}
	for _, e := range todos {
		if e.InsumoID == "" && strings.EqualFold(strings.TrimSpace(e.Nome), strings.TrimSpace(insumo.Nome)) {
			return e, nil
		}
	}
	return entities.Estoque{}, nil
}

func (u *EstoqueUseCase) verificarReposicao(ctx context.Context, insumo entities.Insumo, estoque entities.Estoque) error {
	minimo := estoque.QuantidadeMinima
	if minimo <= 0 {
		minimo = defaultQuantidadeMinima
	}
	if estoque.Quantidade >= minimo {
		return nil
	}

	compras, err := u.compras.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range compras {
		if c.OrigemReposicao && c.InsumoID == insumo.ID && len(entities.CompraTransicoes[c.Status]) > 0 {
			// An open replenishment request already covers this item.
			return nil
		}
	}

	sugerida := 2 * estoque.Quantidade
	if sugerida < reposicaoMinima {
		sugerida = reposicaoMinima
	}

	now := time.Now().UTC()
	compra := entities.Compra{
		ID:              uuid.NewString(),
		InsumoID:        insumo.ID,
		MaterialNome:    insumo.Nome,
		Quantidade:      sugerida,
		Unidade:         insumo.Unidade,
		Status:          entities.CompraStatusEnviado,
		OrigemReposicao: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if _, err := u.compras.Create(ctx, compra); err != nil {
		return err
	}
	log.Printf("[estoque][usecase] replenishment request created compra_id=%s insumo_id=%s qty=%.2f", compra.ID, insumo.ID, sugerida)
	return nil
}

// SincronizarEstoqueParaInsumo applies a signed delta to the ledger (clamped
// at zero), appends the movement, then mirrors the applied delta onto the
// linked catalog entry.
func (u *EstoqueUseCase) SincronizarEstoqueParaInsumo(ctx context.Context, estoqueID string, delta float64, motivo string) (entities.Estoque, error) {
	estoque, err := u.estoques.GetByID(ctx, estoqueID)
	if err != nil {
		return entities.Estoque{}, err
	}
	if estoque.ID == "" {
		return entities.Estoque{}, ErrEstoqueNaoEncontrado
	}

	nova := estoque.Quantidade + delta
	if nova < 0 {
		nova = 0
	}
	aplicado := nova - estoque.Quantidade

	now := time.Now().UTC()
	if aplicado != 0 {
		mov := entities.Movimentacao{
			Tipo:       entities.MovimentacaoEntrada,
			Quantidade: aplicado,
			Motivo:     motivo,
			Data:       now,
		}
		if aplicado < 0 {
			mov.Tipo = entities.MovimentacaoSaida
			mov.Quantidade = -aplicado
		}
		estoque.Movimentacoes = append(estoque.Movimentacoes, mov)
	}
	estoque.Quantidade = nova
	estoque.UpdatedAt = now

	estoque, err = u.estoques.Update(ctx, estoque)
	if err != nil {
		return entities.Estoque{}, err
	}

	if estoque.InsumoID == "" {
		return estoque, nil
	}
	insumo, err := u.insumos.GetByID(ctx, estoque.InsumoID)
	if err != nil {
		return estoque, err
	}
	if insumo.ID == "" {
		log.Printf("[estoque][usecase] ledger links missing insumo estoque_id=%s insumo_id=%s", estoque.ID, estoque.InsumoID)
		return estoque, nil
	}

	insumo.Quantidade += aplicado
	if insumo.Quantidade < 0 {
		insumo.Quantidade = 0
	}
	insumo.UpdatedAt = now
	if _, err := u.insumos.Update(ctx, insumo); err != nil {
		log.Printf("[estoque][usecase] catalog write failed after ledger commit insumo_id=%s err=%v", insumo.ID, err)
		return estoque, err
	}
	return estoque, nil
}

// RegistrarSaidaPorInsumo books a warehouse exit (consumption on site) for a
// catalog item that tracks stock.
func (u *EstoqueUseCase) RegistrarSaidaPorInsumo(ctx context.Context, insumoID string, quantidade float64, motivo string) (entities.Estoque, error) {
	if quantidade <= 0 {
		return entities.Estoque{}, ErrQuantidadeInvalida
	}

	insumo, err := u.insumos.GetByID(ctx, insumoID)
	if err != nil {
		return entities.Estoque{}, err
	}
	if insumo.ID == "" {
		return entities.Estoque{}, ErrInsumoNaoEncontrado
	}
	if insumo.EstoqueID == "" {
		return entities.Estoque{}, ErrEstoqueNaoEncontrado
	}
	return u.SincronizarEstoqueParaInsumo(ctx, insumo.EstoqueID, -quantidade, motivo)
}

// ImportarEstoquesSemVinculo creates one catalog entry per ledger record that
// has no catalog counterpart by id or name. Running it again is a no-op for
// already imported ledgers: the derived insumo id collides and the orphan
// check skips linked records.
func (u *EstoqueUseCase) ImportarEstoquesSemVinculo(ctx context.Context) (int, error) {
	estoques, err := u.estoques.List(ctx)
	if err != nil {
		return 0, err
	}
	insumos, err := u.insumos.List(ctx)
	if err != nil {
		return 0, err
	}

	porID := make(map[string]entities.Insumo, len(insumos))
	for _, i := range insumos {
		porID[i.ID] = i
	}

	criados := 0
	for _, e := range estoques {
		if _, ok := porID[e.InsumoID]; e.InsumoID != "" && ok {
			continue
		}
		if vinculadoPorNome(insumos, e) {
			continue
		}

		now := time.Now().UTC()
		insumo := entities.Insumo{
			ID:              derivedID(e.ID, "insumo"),
			Nome:            e.Nome,
			Tipo:            entities.InsumoTipoMaterial,
			Unidade:         e.Unidade,
			PrecoUnitario:   e.ValorUnitario,
			ControlaEstoque: true,
			Quantidade:      e.Quantidade,
			EstoqueID:       e.ID,
			OrigemEstoque:   true,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		created, err := u.insumos.Create(ctx, insumo)
		if err != nil {
			if errors.Is(err, interfaces.ErrJaExiste) {
				continue
			}
			return criados, err
		}

		e.InsumoID = created.ID
		e.UpdatedAt = now
		if _, err := u.estoques.Update(ctx, e); err != nil {
			log.Printf("[estoque][usecase] orphan link-back failed estoque_id=%s err=%v", e.ID, err)
			return criados, err
		}
		criados++
	}
	if criados > 0 {
		log.Printf("[estoque][usecase] orphan import created %d catalog entries", criados)
	}
	return criados, nil
}

func vinculadoPorNome(insumos []entities.Insumo, e entities.Estoque) bool {
	nome := strings.TrimSpace(e.Nome)
	for _, i := range insumos {
		if strings.EqualFold(strings.TrimSpace(i.Nome), nome) {
			return true
		}
	}
	return false
}

// SaldoDeMovimentacoes recomputes a ledger quantity from its history. Kept
// next to the reconciler so the invariant it checks is stated in one place:
// quantity equals the signed movement sum, never negative.
func SaldoDeMovimentacoes(movs []entities.Movimentacao) float64 {
	saldo := 0.0
	for _, m := range movs {
		switch m.Tipo {
		case entities.MovimentacaoEntrada:
			saldo += m.Quantidade
		case entities.MovimentacaoSaida:
			saldo -= m.Quantidade
		}
	}
	if saldo < 0 {
		return 0
	}
	return saldo
}
