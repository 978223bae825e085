package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pet-adoption-api/internal/domain/adoptions"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const adoptionsIndex = "adoptions"

type AdoptionsRepo struct {
	client *redis.Client
}

func NewAdoptionsRepo(client *redis.Client) *AdoptionsRepo {
	return &AdoptionsRepo{client: client}
}

type adoptionRecord struct {
	ID        string         `json:"id"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	Fields    map[string]any `json:"fields"`
}

func adoptionKey(id string) string { return fmt.Sprintf("adoption:%s", id) }

func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.Adoption) (adoptions.Adoption, error) {
	a.ID = uuid.NewString()

	data, err := json.Marshal(adoptionRecord{
		ID:        a.ID,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt.UTC(),
		Fields:    a.Fields,
	})
	if err != nil {
		return adoptions.Adoption{}, fmt.Errorf("redis: encode adoption: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, adoptionKey(a.ID), data, 0)
	pipe.ZAdd(ctx, adoptionsIndex, &redis.Z{Score: score(a.CreatedAt), Member: a.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return adoptions.Adoption{}, fmt.Errorf("redis: save adoption: %w", err)
	}
	return a, nil
}

// List devuelve las solicitudes en orden de llegada.
func (r *AdoptionsRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	ids, err := r.client.ZRange(ctx, adoptionsIndex, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: read adoptions index: %w", err)
	}
	if len(ids) == 0 {
		return []adoptions.Adoption{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, adoptionKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis: load adoptions: %w", err)
	}

	out := make([]adoptions.Adoption, 0, len(ids))
	for _, cmd := range cmds {
		data, err := cmd.Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("redis: load adoption: %w", err)
		}
		var rec adoptionRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("redis: decode adoption: %w", err)
		}
		fields := rec.Fields
		if fields == nil {
			fields = map[string]any{}
		}
		out = append(out, adoptions.Adoption{
			ID:        rec.ID,
			Status:    adoptions.Status(rec.Status),
			CreatedAt: rec.CreatedAt.UTC(),
			Fields:    fields,
		})
	}
	return out, nil
}
