// Package storage elige e inicializa el backend de persistencia según la config.
package storage

import (
	"context"
	"errors"
	"fmt"

	mem "pet-adoption-api/internal/adapters/storage/memory"
	mongostore "pet-adoption-api/internal/adapters/storage/mongo"
	pgstore "pet-adoption-api/internal/adapters/storage/postgres"
	redisstore "pet-adoption-api/internal/adapters/storage/redis"
	"pet-adoption-api/internal/domain/adoptions"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/platform/config"

	"github.com/go-redis/redis/v8"
)

// Stores agrupa los repos abiertos y la función que libera la conexión.
type Stores struct {
	Pets      pets.Repository
	Adoptions adoptions.Repository
	Close     func(ctx context.Context) error
}

func noopClose(context.Context) error { return nil }

// Open conecta al backend configurado. Con traced=true las queries de
// Postgres se registran en X-Ray.
func Open(ctx context.Context, cfg config.StoreConfig, traced bool) (*Stores, error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		return &Stores{
			Pets:      mem.NewPetRepo(),
			Adoptions: mem.NewAdoptionRepo(),
			Close:     noopClose,
		}, nil

	case config.DriverPostgres:
		db, err := pgstore.Open(ctx, cfg.PostgresDSN, traced)
		if err != nil {
			return nil, err
		}
		if err := pgstore.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Stores{
			Pets:      pgstore.NewPetsRepo(db),
			Adoptions: pgstore.NewAdoptionsRepo(db),
			Close:     func(context.Context) error { return db.Close() },
		}, nil

	case config.DriverMongo:
		client, err := mongostore.Connect(ctx, cfg.MongoConnectionURI())
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Name)
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &Stores{
			Pets:      mongostore.NewPetsRepo(db),
			Adoptions: mongostore.NewAdoptionsRepo(db),
			Close:     client.Disconnect,
		}, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis: ping: %w", err)
		}
		return &Stores{
			Pets:      redisstore.NewPetsRepo(client),
			Adoptions: redisstore.NewAdoptionsRepo(client),
			Close:     func(context.Context) error { return client.Close() },
		}, nil

	default:
		return nil, errors.New("storage: unknown driver " + string(cfg.Driver))
	}
}
