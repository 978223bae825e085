// Package redis guarda mascotas y solicitudes como blobs JSON en Redis.
// Cada estado tiene un sorted set con los IDs puntuados por createdAt,
// que es lo que se recorre para listar.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"pet-adoption-api/internal/domain/pets"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const maxTxRetries = 5

type PetsRepo struct {
	client *redis.Client
}

func NewPetsRepo(client *redis.Client) *PetsRepo {
	return &PetsRepo{client: client}
}

type petRecord struct {
	ID         string         `json:"id"`
	Images     []string       `json:"images"`
	Status     string         `json:"status"`
	PetType    string         `json:"petType,omitempty"`
	Location   string         `json:"location,omitempty"`
	Age        int            `json:"age"`
	Vaccinated bool           `json:"vaccinated"`
	Neutered   bool           `json:"neutered"`
	Attributes map[string]any `json:"attributes,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func petKey(id string) string { return fmt.Sprintf("pet:%s", id) }

func statusKey(s pets.Status) string { return fmt.Sprintf("pets:status:%s", s) }

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	p.ID = uuid.NewString()

	data, err := json.Marshal(toRecord(p))
	if err != nil {
		return pets.Pet{}, fmt.Errorf("redis: encode pet: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, petKey(p.ID), data, 0)
	pipe.ZAdd(ctx, statusKey(p.Status), &redis.Z{Score: score(p.CreatedAt), Member: p.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return pets.Pet{}, fmt.Errorf("redis: save pet: %w", err)
	}
	return p, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	if _, err := uuid.Parse(id); err != nil {
		return pets.Pet{}, pets.ErrInvalidID
	}
	return r.get(ctx, r.client, id)
}

// List recorre el índice del estado (más nuevas primero) y aplica los
// filtros de tipo y ubicación en memoria.
func (r *PetsRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	keys := []string{statusKey(filter.Status)}
	if filter.Status == "" {
		keys = keys[:0]
		for _, s := range pets.Statuses {
			keys = append(keys, statusKey(s))
		}
	}

	var ids []string
	for _, k := range keys {
		got, err := r.client.ZRevRange(ctx, k, 0, -1).Result()
		if err != nil {
			return nil, fmt.Errorf("redis: read index %s: %w", k, err)
		}
		ids = append(ids, got...)
	}
	if len(ids) == 0 {
		return []pets.Pet{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, petKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis: load pets: %w", err)
	}

	loc := strings.ToLower(filter.Location)
	out := make([]pets.Pet, 0, len(ids))
	for _, cmd := range cmds {
		data, err := cmd.Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("redis: load pet: %w", err)
		}
		var rec petRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("redis: decode pet: %w", err)
		}
		if filter.PetType != "" && rec.PetType != filter.PetType {
			continue
		}
		if loc != "" && !strings.Contains(strings.ToLower(rec.Location), loc) {
			continue
		}
		out = append(out, rec.toPet())
	}

	if len(keys) > 1 {
		sortNewestFirst(out)
	}
	return out, nil
}

// UpdateStatus mueve el ID entre índices de estado dentro de una transacción
// optimista sobre la clave de la mascota.
func (r *PetsRepo) UpdateStatus(ctx context.Context, id string, status pets.Status) (pets.Pet, error) {
	if _, err := uuid.Parse(id); err != nil {
		return pets.Pet{}, pets.ErrInvalidID
	}

	var updated pets.Pet
	txf := func(tx *redis.Tx) error {
		p, err := r.get(ctx, tx, id)
		if err != nil {
			return err
		}
		prev := p.Status
		p.Status = status

		data, err := json.Marshal(toRecord(p))
		if err != nil {
			return fmt.Errorf("redis: encode pet: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, petKey(id), data, 0)
			if prev != status {
				pipe.ZRem(ctx, statusKey(prev), id)
			}
			pipe.ZAdd(ctx, statusKey(status), &redis.Z{Score: score(p.CreatedAt), Member: id})
			return nil
		})
		if err != nil {
			return err
		}
		updated = p
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, petKey(id))
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			if errors.Is(err, pets.ErrNotFound) {
				return pets.Pet{}, err
			}
			return pets.Pet{}, fmt.Errorf("redis: update pet status: %w", err)
		}
		return updated, nil
	}
	return pets.Pet{}, fmt.Errorf("redis: update pet status: too much contention on %s", id)
}

// getter lo cumplen tanto *redis.Client como *redis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *PetsRepo) get(ctx context.Context, c getter, id string) (pets.Pet, error) {
	data, err := c.Get(ctx, petKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("redis: get pet: %w", err)
	}
	var rec petRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return pets.Pet{}, fmt.Errorf("redis: decode pet: %w", err)
	}
	return rec.toPet(), nil
}

func toRecord(p pets.Pet) petRecord {
	return petRecord{
		ID:         p.ID,
		Images:     p.Images,
		Status:     string(p.Status),
		PetType:    p.PetType,
		Location:   p.Location,
		Age:        p.Age,
		Vaccinated: p.Vaccinated,
		Neutered:   p.Neutered,
		Attributes: p.Attributes,
		CreatedAt:  p.CreatedAt.UTC(),
	}
}

func (rec petRecord) toPet() pets.Pet {
	attrs := rec.Attributes
	if attrs == nil {
		attrs = map[string]any{}
	}
	return pets.Pet{
		ID:         rec.ID,
		Images:     rec.Images,
		Status:     pets.Status(rec.Status),
		PetType:    rec.PetType,
		Location:   rec.Location,
		Age:        rec.Age,
		Vaccinated: rec.Vaccinated,
		Neutered:   rec.Neutered,
		Attributes: attrs,
		CreatedAt:  rec.CreatedAt.UTC(),
	}
}

func score(t time.Time) float64 { return float64(t.UnixMilli()) }

func sortNewestFirst(out []pets.Pet) {
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
}
