package memory

import (
	"context"
	"sync"
)

type Entity interface {
	GetID() string
}

// Repository is a concurrency-safe map of entities keyed by ID. Entities are
// stored by value, so T is usually a pointer type.
type Repository[T Entity] struct {
	data map[string]T
	mu   sync.RWMutex
}

func New[T Entity]() *Repository[T] {
	return &Repository[T]{
		data: make(map[string]T),
	}
}

func (r *Repository[T]) Save(ctx context.Context, entity T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.GetID()
	if _, exists := r.data[id]; exists {
		return ErrAlreadyExists
	}

	r.data[id] = entity
	return nil
}

// SaveWithLimit is Save that refuses the entity with ErrLimitReached when the
// repository already holds limit entities. A limit <= 0 disables the check.
func (r *Repository[T]) SaveWithLimit(ctx context.Context, entity T, limit int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.GetID()
	if _, exists := r.data[id]; exists {
		return ErrAlreadyExists
	}
	if limit > 0 && len(r.data) >= limit {
		return ErrLimitReached
	}

	r.data[id] = entity
	return nil
}

func (r *Repository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, exists := r.data[id]
	if !exists {
		return zero, ErrNotFound
	}

	return entity, nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[id]; !exists {
		return ErrNotFound
	}

	delete(r.data, id)
	return nil
}

func (r *Repository[T]) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.data), nil
}

// DeleteFunc removes every entity match reports true for and returns them.
func (r *Repository[T]) DeleteFunc(ctx context.Context, match func(T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []T
	for id, entity := range r.data {
		if match(entity) {
			removed = append(removed, entity)
			delete(r.data, id)
		}
	}
	return removed, nil
}
