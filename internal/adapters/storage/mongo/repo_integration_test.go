package mongo

import (
	"context"
	"os"
	"testing"
	"time"

	"pet-adoption-api/internal/domain/adoptions"
	"pet-adoption-api/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// openTestDB usa TEST_MONGO_URI; sin esa variable el test se saltea.
// Cada test trabaja sobre una base propia que se borra al terminar.
func openTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" || testing.Short() {
		t.Skip("set TEST_MONGO_URI to run mongo integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := Connect(ctx, uri)
	require.NoError(t, err)

	db := client.Database("pets_test_" + time.Now().Format("150405000"))
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	require.NoError(t, EnsureIndexes(ctx, db))
	return db
}

func TestPetsRepo_Integration(t *testing.T) {
	db := openTestDB(t)
	repo := NewPetsRepo(db)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mk := func(status pets.Status, typ, loc string, at time.Time) pets.Pet {
		p, err := repo.Create(ctx, pets.Pet{
			Images:     []string{"/uploads/pets/a.png"},
			Status:     status,
			PetType:    typ,
			Location:   loc,
			Age:        3,
			Neutered:   true,
			Attributes: map[string]any{"name": "Luna", "tags": []string{"calm", "small"}},
			CreatedAt:  at,
		})
		require.NoError(t, err)
		return p
	}

	old := mk(pets.StatusAvailable, "dog", "Anytown, CA", base)
	mid := mk(pets.StatusAvailable, "cat", "Springfield", base.Add(time.Minute))
	newest := mk(pets.StatusAvailable, "dog", "ANYTOWN", base.Add(2*time.Minute))
	mk(pets.StatusPending, "dog", "Anytown", base.Add(3*time.Minute))

	got, err := repo.GetByID(ctx, old.ID)
	require.NoError(t, err)
	assert.Equal(t, old.Images, got.Images)
	assert.Equal(t, "Luna", got.Attributes["name"])
	assert.Equal(t, []any{"calm", "small"}, got.Attributes["tags"])
	assert.Equal(t, 3, got.Age)
	assert.True(t, got.CreatedAt.Equal(base))

	list, err := repo.List(ctx, pets.ListFilter{Status: pets.StatusAvailable})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{newest.ID, mid.ID, old.ID}, []string{list[0].ID, list[1].ID, list[2].ID})

	list, err = repo.List(ctx, pets.ListFilter{Status: pets.StatusAvailable, Location: "anyTown"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = repo.List(ctx, pets.ListFilter{Status: pets.StatusAvailable, Location: ".*"})
	require.NoError(t, err)
	assert.Empty(t, list)

	updated, err := repo.UpdateStatus(ctx, mid.ID, pets.StatusAdopted)
	require.NoError(t, err)
	assert.Equal(t, pets.StatusAdopted, updated.Status)
	assert.Equal(t, "cat", updated.PetType)

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, pets.ErrInvalidID)
	_, err = repo.GetByID(ctx, "000000000000000000000000")
	assert.ErrorIs(t, err, pets.ErrNotFound)
	_, err = repo.UpdateStatus(ctx, "000000000000000000000000", pets.StatusAdopted)
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestAdoptionsRepo_Integration(t *testing.T) {
	db := openTestDB(t)
	repo := NewAdoptionsRepo(db)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Millisecond)
	a, err := repo.Create(ctx, adoptions.Adoption{
		Status:    adoptions.StatusPending,
		CreatedAt: now,
		Fields:    map[string]any{"applicant": "Ana", "petId": "abc"},
	})
	require.NoError(t, err)
	assert.Len(t, a.ID, 24)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, "Ana", list[0].Fields["applicant"])
	assert.Equal(t, adoptions.StatusPending, list[0].Status)
	assert.True(t, list[0].CreatedAt.Equal(now))
}
