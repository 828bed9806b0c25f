package alerts

import (
	"context"
	"sync"

	"construtora_xyz/internal/domain/entities"
	"construtora_xyz/internal/usecase/interfaces"
)

// MemoryStore is the process-local alert store. The deriver is the single
// writer; the mutex only guards against concurrent HTTP readers.
type MemoryStore struct {
	mu      sync.Mutex
	alertas []entities.Alerta
}

var _ interfaces.IAlertaStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadAll(_ context.Context) ([]entities.Alerta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Alerta, len(s.alertas))
	copy(out, s.alertas)
	return out, nil
}

func (s *MemoryStore) SaveAll(_ context.Context, alertas []entities.Alerta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alertas = make([]entities.Alerta, len(alertas))
	copy(s.alertas, alertas)
	return nil
}

func (s *MemoryStore) MarkRead(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alertas {
		if s.alertas[i].ID == id {
			s.alertas[i].Lida = true
		}
	}
	return nil
}
