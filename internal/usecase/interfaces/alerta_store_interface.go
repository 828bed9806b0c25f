package interfaces

import (
	"context"

	"construtora_xyz/internal/domain/entities"
)

// IAlertaStore abstracts the process-local keyed store the notification
// deriver writes to. The engine never assumes a storage medium beyond these
// three operations.
type IAlertaStore interface {
	LoadAll(ctx context.Context) ([]entities.Alerta, error)
	SaveAll(ctx context.Context, alertas []entities.Alerta) error
	MarkRead(ctx context.Context, id string) error
}
