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
	ErrCompraNaoEncontrada     = errors.New("compra nao encontrada")
	ErrLimiteCotacoes          = errors.New("limite de cotacoes atingido")
	ErrFornecedorDuplicado     = errors.New("fornecedor ja cotou esta compra")
	ErrFornecedorNaoEncontrado = errors.New("fornecedor nao encontrado")
	ErrFornecedorInativo       = errors.New("fornecedor inativo")
	ErrCotacaoNaoEncontrada    = errors.New("cotacao do fornecedor nao encontrada")
	ErrPrecoInvalido           = errors.New("preco invalido")
	ErrTransicaoInvalida       = errors.New("transicao de status invalida")
	ErrPedidoJaGerado          = errors.New("pedido de compra ja gerado")
)

// IEstoqueReconciliador is the slice of the stock reconciler the procurement
// workflow needs: booking received goods in and site hand-offs out.
type IEstoqueReconciliador interface {
	SincronizarInsumoParaEstoque(ctx context.Context, insumoID string, entrada float64, motivo string) (entities.Estoque, error)
	RegistrarSaidaPorInsumo(ctx context.Context, insumoID string, quantidade float64, motivo string) (entities.Estoque, error)
}

// ICompraUseCase drives the purchase request lifecycle
// (enviado -> em_cotacao -> aprovado -> comprado -> em_estoque -> na_obra).

type ICompraUseCase interface {
	CriarCompra(ctx context.Context, compra entities.Compra) (entities.Compra, error)
	AdicionarCotacao(ctx context.Context, compraID string, cotacao entities.Cotacao) (entities.Compra, error)
	Rejeitar(ctx context.Context, compraID string) (entities.Compra, error)
	Aprovar(ctx context.Context, compraID, fornecedorID, formaPagamento string, dataPagamento time.Time) (entities.Compra, error)
	GerarPedido(ctx context.Context, compraID string) (entities.Compra, error)
	MarcarRecebida(ctx context.Context, compraID string) (entities.Compra, error)
	EnviarParaObra(ctx context.Context, compraID string) (entities.Compra, error)
	GetByID(ctx context.Context, compraID string) (entities.Compra, error)
}

type CompraUseCase struct {
	compras      interfaces.ICompraRepository
	fornecedores interfaces.IFornecedorRepository
	financeiro   interfaces.IFinanceiroRepository
	estoque      IEstoqueReconciliador
}

var _ ICompraUseCase = (*CompraUseCase)(nil)

func NewCompraUseCase(
	compras interfaces.ICompraRepository,
	fornecedores interfaces.IFornecedorRepository,
	financeiro interfaces.IFinanceiroRepository,
	estoque IEstoqueReconciliador,
) *CompraUseCase {
	return &CompraUseCase{compras: compras, fornecedores: fornecedores, financeiro: financeiro, estoque: estoque}
}

func (u *CompraUseCase) CriarCompra(ctx context.Context, compra entities.Compra) (entities.Compra, error) {
	compra.MaterialNome = strings.TrimSpace(compra.MaterialNome)
	if compra.MaterialNome == "" {
		return entities.Compra{}, ErrNomeInvalido
	}
	if compra.Quantidade <= 0 {
		return entities.Compra{}, ErrQuantidadeInvalida
	}
	if compra.CompraDireta && compra.PrecoUnitario <= 0 {
		return entities.Compra{}, ErrPrecoInvalido
	}

	now := time.Now().UTC()
	compra.ID = uuid.NewString()
	compra.Status = entities.CompraStatusEnviado
	compra.Cotacoes = nil
	compra.NumeroPedido = ""
	compra.ValorTotal = 0
	if compra.CompraDireta {
		// Direct purchases skip quoting and enter already approved.
		compra.Status = entities.CompraStatusAprovado
		compra.ValorTotal = compra.PrecoUnitario * compra.Quantidade
	}
	compra.CreatedAt = now
	compra.UpdatedAt = now
	return u.compras.Create(ctx, compra)
}

func (u *CompraUseCase) GetByID(ctx context.Context, compraID string) (entities.Compra, error) {
	return u.buscar(ctx, compraID)
}

// AdicionarCotacao appends a supplier quote, rejecting the fourth quote and
// repeated suppliers without mutating the stored record.
func (u *CompraUseCase) AdicionarCotacao(ctx context.Context, compraID string, cotacao entities.Cotacao) (entities.Compra, error) {
	compra, err := u.buscar(ctx, compraID)
	if err != nil {
		return entities.Compra{}, err
	}
	if compra.CompraDireta {
		return entities.Compra{}, ErrTransicaoInvalida
	}
	if compra.Status != entities.CompraStatusEnviado && compra.Status != entities.CompraStatusEmCotacao {
		return entities.Compra{}, ErrTransicaoInvalida
	}
	if len(compra.Cotacoes) >= entities.MaxCotacoes {
		return entities.Compra{}, ErrLimiteCotacoes
	}
	if _, ok := compra.CotacaoDoFornecedor(cotacao.FornecedorID); ok {
		return entities.Compra{}, ErrFornecedorDuplicado
	}
	if cotacao.Preco <= 0 {
		return entities.Compra{}, ErrPrecoInvalido
	}

	fornecedor, err := u.fornecedores.GetByID(ctx, cotacao.FornecedorID)
	if err != nil {
		return entities.Compra{}, err
	}
	if fornecedor.ID == "" {
		return entities.Compra{}, ErrFornecedorNaoEncontrado
	}
	if !fornecedor.Ativo {
		return entities.Compra{}, ErrFornecedorInativo
	}

	cotacao.Selecionada = false
	compra.Cotacoes = append(compra.Cotacoes, cotacao)
	compra.Status = entities.CompraStatusEmCotacao
	compra.UpdatedAt = time.Now().UTC()
	return u.compras.Update(ctx, compra)
}

func (u *CompraUseCase) Rejeitar(ctx context.Context, compraID string) (entities.Compra, error) {
	compra, err := u.buscar(ctx, compraID)
	if err != nil {
		return entities.Compra{}, err
	}
	if !compra.Status.PodeTransicionar(entities.CompraStatusNegado) {
		return entities.Compra{}, ErrTransicaoInvalida
	}
	compra.Status = entities.CompraStatusNegado
	compra.UpdatedAt = time.Now().UTC()
	return u.compras.Update(ctx, compra)
}

// Aprovar picks the winning supplier, computes the total and projects the
// payable into the finance collection. The payable id is derived from the
// purchase id, so re-approving after a partial failure cannot duplicate it.
// Direct purchases are created already approved; here they only receive the
// payment data and the payable.
func (u *CompraUseCase) Aprovar(ctx context.Context, compraID, fornecedorID, formaPagamento string, dataPagamento time.Time) (entities.Compra, error) {
	compra, err := u.buscar(ctx, compraID)
	if err != nil {
		return entities.Compra{}, err
	}
	direta := compra.CompraDireta && compra.Status == entities.CompraStatusAprovado
	if !direta && !compra.Status.PodeTransicionar(entities.CompraStatusAprovado) {
		return entities.Compra{}, ErrTransicaoInvalida
	}

	var precoUnitario float64
	if cot, ok := compra.CotacaoDoFornecedor(fornecedorID); ok {
		precoUnitario = cot.Preco
		for i := range compra.Cotacoes {
			compra.Cotacoes[i].Selecionada = compra.Cotacoes[i].FornecedorID == fornecedorID
		}
	} else if compra.CompraDireta {
		if compra.PrecoUnitario <= 0 {
			return entities.Compra{}, ErrPrecoInvalido
		}
		precoUnitario = compra.PrecoUnitario
	} else {
		return entities.Compra{}, ErrCotacaoNaoEncontrada
	}

	compra.FornecedorEscolhidoID = fornecedorID
	compra.FormaPagamento = formaPagamento
	compra.DataPagamento = dataPagamento
	compra.ValorTotal = precoUnitario * compra.Quantidade
	compra.Status = entities.CompraStatusAprovado
	compra.UpdatedAt = time.Now().UTC()

	compra, err = u.compras.Update(ctx, compra)
	if err != nil {
		return entities.Compra{}, err
	}

	if err := u.criarContaPagar(ctx, compra); err != nil {
		// Approval is committed; the payable can be re-derived on retry.
		log.Printf("[compra][usecase] payable creation failed compra_id=%s err=%v", compra.ID, err)
		return compra, err
	}
	log.Printf("[compra][usecase] approved compra_id=%s fornecedor_id=%s total=%.2f", compra.ID, fornecedorID, compra.ValorTotal)
	return compra, nil
}

func (u *CompraUseCase) criarContaPagar(ctx context.Context, compra entities.Compra) error {
	entrada := entities.Financeiro{
		ID:             derivedID(compra.ID, "conta_pagar"),
		Tipo:           entities.FinanceiroContaPagar,
		Descricao:      fmt.Sprintf("Compra de %s", compra.MaterialNome),
		Valor:          compra.ValorTotal,
		DataVencimento: compra.DataPagamento,
		OrigemTipo:     entities.FinanceiroOrigemCompra,
		OrigemID:       compra.ID,
		CreatedAt:      time.Now().UTC(),
	}
	if _, err := u.financeiro.Create(ctx, entrada); err != nil {
		if errors.Is(err, interfaces.ErrJaExiste) {
			return nil
		}
		return err
	}
	return nil
}

// GerarPedido assigns the purchase-order number exactly once. The number is
// derived from the purchase id, so regenerating after a failed status write
// yields the same number.
func (u *CompraUseCase) GerarPedido(ctx context.Context, compraID string) (entities.Compra, error) {
	compra, err := u.buscar(ctx, compraID)
	if err != nil {
		return entities.Compra{}, err
	}
	if compra.Status != entities.CompraStatusAprovado {
		return entities.Compra{}, ErrTransicaoInvalida
	}
	if compra.NumeroPedido != "" {
		return entities.Compra{}, ErrPedidoJaGerado
	}

	compra.NumeroPedido = numeroPedido(compra)
	compra.Status = entities.CompraStatusComprado
	compra.UpdatedAt = time.Now().UTC()
	return u.compras.Update(ctx, compra)
}

func numeroPedido(compra entities.Compra) string {
	sufixo := strings.ToUpper(strings.ReplaceAll(compra.ID, "-", ""))
	if len(sufixo) > 6 {
		sufixo = sufixo[:6]
	}
	return fmt.Sprintf("PC-%d-%s", time.Now().UTC().Year(), sufixo)
}

// MarcarRecebida moves the purchase into the warehouse and books the received
// quantity through the stock reconciler.
func (u *CompraUseCase) MarcarRecebida(ctx context.Context, compraID string) (entities.Compra, error) {
	compra, err := u.buscar(ctx, compraID)
	if err != nil {
		return entities.Compra{}, err
	}
	if !compra.Status.PodeTransicionar(entities.CompraStatusEmEstoque) {
		return entities.Compra{}, ErrTransicaoInvalida
	}

	compra.Status = entities.CompraStatusEmEstoque
	compra.UpdatedAt = time.Now().UTC()
	compra, err = u.compras.Update(ctx, compra)
	if err != nil {
		return entities.Compra{}, err
	}

	if compra.InsumoID == "" {
		log.Printf("[compra][usecase] received without catalog link compra_id=%s", compra.ID)
		return compra, nil
	}
	motivo := fmt.Sprintf("recebimento compra %s", compra.NumeroPedido)
	if _, err := u.estoque.SincronizarInsumoParaEstoque(ctx, compra.InsumoID, compra.Quantidade, motivo); err != nil {
		log.Printf("[compra][usecase] stock sync failed after receipt compra_id=%s err=%v", compra.ID, err)
		return compra, err
	}
	return compra, nil
}

// EnviarParaObra hands the received material to the site, booking the ledger
// exit when the purchase is linked to the catalog.
func (u *CompraUseCase) EnviarParaObra(ctx context.Context, compraID string) (entities.Compra, error) {
	compra, err := u.buscar(ctx, compraID)
	if err != nil {
		return entities.Compra{}, err
	}
	if !compra.Status.PodeTransicionar(entities.CompraStatusNaObra) {
		return entities.Compra{}, ErrTransicaoInvalida
	}

	compra.Status = entities.CompraStatusNaObra
	compra.UpdatedAt = time.Now().UTC()
	compra, err = u.compras.Update(ctx, compra)
	if err != nil {
		return entities.Compra{}, err
	}

	if compra.InsumoID != "" {
		motivo := fmt.Sprintf("envio para obra compra %s", compra.NumeroPedido)
		if _, err := u.estoque.RegistrarSaidaPorInsumo(ctx, compra.InsumoID, compra.Quantidade, motivo); err != nil {
			log.Printf("[compra][usecase] ledger exit failed compra_id=%s err=%v", compra.ID, err)
			return compra, err
		}
	}
	return compra, nil
}

func (u *CompraUseCase) buscar(ctx context.Context, compraID string) (entities.Compra, error) {
	compraID = strings.TrimSpace(compraID)
	if compraID == "" {
		return entities.Compra{}, ErrCompraNaoEncontrada
	}
	compra, err := u.compras.GetByID(ctx, compraID)
	if err != nil {
		return entities.Compra{}, err
	}
	if compra.ID == "" {
		return entities.Compra{}, ErrCompraNaoEncontrada
	}
	return compra, nil
}
