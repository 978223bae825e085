package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"pet-adoption-api/internal/domain/adoptions"
	"pet-adoption-api/internal/domain/pets"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient usa TEST_REDIS_ADDR y vacía la DB 15 antes y después.
func newTestClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" || testing.Short() {
		t.Skip("set TEST_REDIS_ADDR to run redis integration tests")
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	ctx := context.Background()
	require.NoError(t, client.FlushDB(ctx).Err())
	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})
	return client
}

func TestPetsRepo_Integration(t *testing.T) {
	repo := NewPetsRepo(newTestClient(t))
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mk := func(status pets.Status, typ, loc string, at time.Time) pets.Pet {
		p, err := repo.Create(ctx, pets.Pet{
			Images:     []string{"/uploads/pets/a.gif"},
			Status:     status,
			PetType:    typ,
			Location:   loc,
			Attributes: map[string]any{"name": "Rex"},
			CreatedAt:  at,
		})
		require.NoError(t, err)
		return p
	}

	old := mk(pets.StatusAvailable, "dog", "Anytown, CA", base)
	mid := mk(pets.StatusAvailable, "cat", "Springfield", base.Add(time.Minute))
	newest := mk(pets.StatusAvailable, "dog", "ANYTOWN", base.Add(2*time.Minute))
	pending := mk(pets.StatusPending, "dog", "Anytown", base.Add(3*time.Minute))

	got, err := repo.GetByID(ctx, old.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rex", got.Attributes["name"])
	assert.True(t, got.CreatedAt.Equal(base))

	list, err := repo.List(ctx, pets.ListFilter{Status: pets.StatusAvailable})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{newest.ID, mid.ID, old.ID}, []string{list[0].ID, list[1].ID, list[2].ID})

	list, err = repo.List(ctx, pets.ListFilter{Status: pets.StatusAvailable, Location: "anytown", PetType: "dog"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	updated, err := repo.UpdateStatus(ctx, pending.ID, pets.StatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, pets.StatusAvailable, updated.Status)

	list, err = repo.List(ctx, pets.ListFilter{Status: pets.StatusAvailable})
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, pending.ID, list[0].ID)

	list, err = repo.List(ctx, pets.ListFilter{Status: pets.StatusPending})
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = repo.GetByID(ctx, "bad")
	assert.ErrorIs(t, err, pets.ErrInvalidID)
	_, err = repo.UpdateStatus(ctx, "6f1c7a44-0000-4000-8000-000000000000", pets.StatusAdopted)
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestAdoptionsRepo_Integration(t *testing.T) {
	repo := NewAdoptionsRepo(newTestClient(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, adoptions.Adoption{
		Status:    adoptions.StatusPending,
		CreatedAt: time.Now().UTC(),
		Fields:    map[string]any{"applicant": "Ana"},
	})
	require.NoError(t, err)
	second, err := repo.Create(ctx, adoptions.Adoption{
		Status:    adoptions.StatusPending,
		CreatedAt: time.Now().UTC().Add(time.Second),
		Fields:    map[string]any{"applicant": "Beto"},
	})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Equal(t, "Beto", list[1].Fields["applicant"])
}
