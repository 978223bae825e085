package adoptions

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	items []Adoption
	err   error
}

func (r *testRepo) Create(ctx context.Context, a Adoption) (Adoption, error) {
	if r.err != nil {
		return Adoption{}, r.err
	}
	a.ID = "ad-1"
	r.items = append(r.items, a)
	return a, nil
}

func (r *testRepo) List(ctx context.Context) ([]Adoption, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.items, nil
}

func TestSubmit_ForcesPendingAndDropsReserved(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 999999, time.UTC) }

	a, err := svc.Submit(context.Background(), map[string]any{
		"applicant": "Ana",
		"petId":     "does-not-exist",
		"status":    "approved",
		"_id":       "x",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if a.Status != StatusPending {
		t.Fatalf("expected pending, got %s", a.Status)
	}
	if _, ok := a.Fields["status"]; ok {
		t.Fatalf("client status must be dropped")
	}
	if a.Fields["petId"] != "does-not-exist" {
		t.Fatalf("petId must pass through unchecked")
	}
	if !a.CreatedAt.Equal(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Fatalf("unexpected createdAt %v", a.CreatedAt)
	}

	doc := a.Document()
	if doc["_id"] != "ad-1" || doc["status"] != StatusPending {
		t.Fatalf("bad document: %v", doc)
	}
}

func TestSubmit_WrapsRepoError(t *testing.T) {
	boom := errors.New("db down")
	svc := NewService(&testRepo{err: boom})

	if _, err := svc.Submit(context.Background(), map[string]any{}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if _, err := svc.List(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
