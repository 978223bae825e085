package memory

import (
	"context"
	"maps"
	"sync"

	"pet-adoption-api/internal/domain/adoptions"

	"github.com/google/uuid"
)

type adoptionRepo struct {
	mu    sync.RWMutex
	items []adoptions.Adoption
}

func NewAdoptionRepo() adoptions.Repository {
	return &adoptionRepo{}
}

func (r *adoptionRepo) Create(ctx context.Context, a adoptions.Adoption) (adoptions.Adoption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = uuid.NewString()
	a.Fields = maps.Clone(a.Fields)
	r.items = append(r.items, a)

	a.Fields = maps.Clone(a.Fields)
	return a, nil
}

func (r *adoptionRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.Adoption, 0, len(r.items))
	for _, a := range r.items {
		a.Fields = maps.Clone(a.Fields)
		out = append(out, a)
	}
	return out, nil
}
