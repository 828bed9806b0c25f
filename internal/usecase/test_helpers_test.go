package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"construtora_xyz/internal/domain/entities"
	"construtora_xyz/internal/usecase/interfaces"
)

// fakeColecao is an in-memory stand-in for one store collection. It mirrors
// the store semantics the workflows rely on: zero value on missing reads,
// conditional create, optimistic version check on versioned updates.
type fakeColecao[T entities.Registro] struct {
	itens map[string]T
	ordem []string

	errList   error
	errCreate error
	errUpdate error
}

func newFakeColecao[T entities.Registro]() *fakeColecao[T] {
	return &fakeColecao[T]{itens: make(map[string]T)}
}

var _ interfaces.IColecao[entities.Insumo] = (*fakeColecao[entities.Insumo])(nil)

func (f *fakeColecao[T]) List(_ context.Context) ([]T, error) {
	if f.errList != nil {
		return nil, f.errList
	}
	out := make([]T, 0, len(f.ordem))
	for _, id := range f.ordem {
		out = append(out, f.itens[id])
	}
	return out, nil
}

func (f *fakeColecao[T]) GetByID(_ context.Context, id string) (T, error) {
	return f.itens[id], nil
}

func (f *fakeColecao[T]) Create(_ context.Context, rec T) (T, error) {
	var zero T
	if f.errCreate != nil {
		return zero, f.errCreate
	}
	id := rec.RegistroID()
	if _, ok := f.itens[id]; ok {
		return zero, interfaces.ErrJaExiste
	}
	f.itens[id] = rec
	f.ordem = append(f.ordem, id)
	return rec, nil
}

func (f *fakeColecao[T]) Update(_ context.Context, rec T) (T, error) {
	var zero T
	if f.errUpdate != nil {
		return zero, f.errUpdate
	}
	id := rec.RegistroID()
	stored, ok := f.itens[id]
	if !ok {
		return zero, nil
	}

	if v, isVersioned := any(rec).(entities.Versionado); isVersioned {
		cur := any(stored).(entities.Versionado).RegistroVersion()
		if v.RegistroVersion() != cur {
			return zero, interfaces.ErrConflitoVersao
		}
		bumped, err := bumpVersion(rec, cur+1)
		if err != nil {
			return zero, err
		}
		rec = bumped
	}

	f.itens[id] = rec
	return rec, nil
}

func (f *fakeColecao[T]) Delete(_ context.Context, id string) error {
	if _, ok := f.itens[id]; !ok {
		return nil
	}
	delete(f.itens, id)
	for i, o := range f.ordem {
		if o == id {
			f.ordem = append(f.ordem[:i], f.ordem[i+1:]...)
			break
		}
	}
	return nil
}

// bumpVersion rewrites the version field through JSON, the same way the
// DynamoDB collection bumps it on the marshalled item.
func bumpVersion[T any](rec T, next int64) (T, error) {
	var zero T
	raw, err := json.Marshal(rec)
	if err != nil {
		return zero, err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return zero, err
	}
	m["version"] = json.RawMessage(fmt.Sprintf("%d", next))
	merged, err := json.Marshal(m)
	if err != nil {
		return zero, err
	}
	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return zero, err
	}
	return out, nil
}
