package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"construtora_xyz/internal/domain/entities"
	"construtora_xyz/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Quotes older than this while still in em_cotacao are flagged as stale.
const idadeCotacaoPendente = 7 * 24 * time.Hour

// IAlertaUseCase derives notifications from current aggregate state. The
// derivation is a pure function of what it reads; the store check before
// appending gives at-most-one-open-alert-per-condition without locking (the
// engine has a single-threaded caller).

type IAlertaUseCase interface {
	Derivar(ctx context.Context) ([]entities.Alerta, error)
	Listar(ctx context.Context) ([]entities.Alerta, error)
	MarcarLida(ctx context.Context, alertaID string) error
}

type AlertaUseCase struct {
	estoques  interfaces.IEstoqueRepository
	compras   interfaces.ICompraRepository
	contratos interfaces.IContratoRepository
	store     interfaces.IAlertaStore
}

var _ IAlertaUseCase = (*AlertaUseCase)(nil)

func NewAlertaUseCase(
	estoques interfaces.IEstoqueRepository,
	compras interfaces.ICompraRepository,
	contratos interfaces.IContratoRepository,
	store interfaces.IAlertaStore,
) *AlertaUseCase {
	return &AlertaUseCase{estoques: estoques, compras: compras, contratos: contratos, store: store}
}

// Derivar inspects stock levels, quote age and unsigned contracts, appending
// one alert per condition whose key has no open alert yet. It returns only
// the newly appended alerts.
func (u *AlertaUseCase) Derivar(ctx context.Context) ([]entities.Alerta, error) {
	condicoes, err := u.derivarCondicoes(ctx)
	if err != nil {
		return nil, err
	}

	existentes, err := u.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	abertas := make(map[string]bool, len(existentes))
	for _, a := range existentes {
		if !a.Lida {
			abertas[a.Chave] = true
		}
	}

	now := time.Now().UTC()
	var novas []entities.Alerta
	for chave, mensagem := range condicoes {
		if abertas[chave] {
			continue
		}
		novas = append(novas, entities.Alerta{
			ID:       uuid.NewString(),
			Chave:    chave,
			Mensagem: mensagem,
			CriadaEm: now,
		})
	}
	if len(novas) == 0 {
		return nil, nil
	}

	if err := u.store.SaveAll(ctx, append(existentes, novas...)); err != nil {
		return nil, err
	}
	log.Printf("[alerta][usecase] %d alerts appended", len(novas))
	return novas, nil
}

func (u *AlertaUseCase) derivarCondicoes(ctx context.Context) (map[string]string, error) {
	condicoes := make(map[string]string)

	estoques, err := u.estoques.List(ctx)
	if err != nil {
		return nil, err
	}
	baixos := 0
	for _, e := range estoques {
		minimo := e.QuantidadeMinima
		if minimo <= 0 {
			minimo = defaultQuantidadeMinima
		}
		if e.Quantidade < minimo {
			baixos++
		}
	}
	if baixos > 0 {
		condicoes[entities.AlertaEstoqueBaixo] = fmt.Sprintf("%d itens de estoque abaixo do minimo", baixos)
	}

	compras, err := u.compras.List(ctx)
	if err != nil {
		return nil, err
	}
	limite := time.Now().UTC().Add(-idadeCotacaoPendente)
	pendentes := 0
	for _, c := range compras {
		if c.Status == entities.CompraStatusEmCotacao && c.UpdatedAt.Before(limite) {
			pendentes++
		}
	}
	if pendentes > 0 {
		condicoes[entities.AlertaCotacaoPendente] = fmt.Sprintf("%d compras paradas em cotacao", pendentes)
	}

	contratos, err := u.contratos.List(ctx)
	if err != nil {
		return nil, err
	}
	naoAssinados := 0
	for _, c := range contratos {
		if c.Status == entities.ContratoStatusEnviado {
			naoAssinados++
		}
	}
	if naoAssinados > 0 {
		condicoes[entities.AlertaContratoNaoAssinado] = fmt.Sprintf("%d contratos enviados aguardando assinatura", naoAssinados)
	}

	return condicoes, nil
}

func (u *AlertaUseCase) Listar(ctx context.Context) ([]entities.Alerta, error) {
	return u.store.LoadAll(ctx)
}

func (u *AlertaUseCase) MarcarLida(ctx context.Context, alertaID string) error {
	return u.store.MarkRead(ctx, alertaID)
}
