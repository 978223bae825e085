package memory

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strings"
	"sync"

	"pet-adoption-api/internal/domain/pets"

	"github.com/google/uuid"
)

type petRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(p.Images) == 0 {
		return pets.Pet{}, errors.New("pet images required")
	}

	p.ID = uuid.NewString()
	r.byID[p.ID] = clonePet(p)
	return clonePet(p), nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	if _, err := uuid.Parse(id); err != nil {
		return pets.Pet{}, pets.ErrInvalidID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return clonePet(p), nil
}

func (r *petRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loc := strings.ToLower(filter.Location)

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.PetType != "" && p.PetType != filter.PetType {
			continue
		}
		if loc != "" && !strings.Contains(strings.ToLower(p.Location), loc) {
			continue
		}
		out = append(out, clonePet(p))
	}

	// Más nuevas primero; el ID desempata para que el orden sea estable.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *petRepo) UpdateStatus(ctx context.Context, id string, status pets.Status) (pets.Pet, error) {
	if _, err := uuid.Parse(id); err != nil {
		return pets.Pet{}, pets.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	p.Status = status
	r.byID[id] = p
	return clonePet(p), nil
}

// clonePet evita que el caller comparta slices/maps con el store,
// incluidos los valores anidados de Attributes.
func clonePet(p pets.Pet) pets.Pet {
	p.Images = slices.Clone(p.Images)
	if p.Attributes != nil {
		attrs := make(map[string]any, len(p.Attributes))
		for k, v := range p.Attributes {
			attrs[k] = cloneValue(v)
		}
		p.Attributes = attrs
	}
	return p
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []string:
		return slices.Clone(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
