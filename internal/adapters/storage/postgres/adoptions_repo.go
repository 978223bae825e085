package postgres

import (
	"context"
	"fmt"
	"time"

	"pet-adoption-api/internal/domain/adoptions"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type AdoptionsRepo struct {
	db *sqlx.DB
}

func NewAdoptionsRepo(db *sqlx.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

type adoptionRow struct {
	ID        string    `db:"id"`
	Status    string    `db:"status"`
	Fields    []byte    `db:"fields"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.Adoption) (adoptions.Adoption, error) {
	fields, err := marshalObject(a.Fields)
	if err != nil {
		return adoptions.Adoption{}, fmt.Errorf("postgres: encode adoption: %w", err)
	}

	a.ID = uuid.NewString()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO adoptions (id, status, fields, created_at)
		VALUES ($1, $2, $3::jsonb, $4)
	`, a.ID, string(a.Status), fields, a.CreatedAt)
	if err != nil {
		return adoptions.Adoption{}, fmt.Errorf("postgres: insert adoption: %w", err)
	}
	return a, nil
}

func (r *AdoptionsRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	var rows []adoptionRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, status, fields, created_at FROM adoptions`); err != nil {
		return nil, fmt.Errorf("postgres: list adoptions: %w", err)
	}

	out := make([]adoptions.Adoption, 0, len(rows))
	for _, row := range rows {
		fields, err := unmarshalObject(row.Fields)
		if err != nil {
			return nil, fmt.Errorf("postgres: decode adoption %s: %w", row.ID, err)
		}
		out = append(out, adoptions.Adoption{
			ID:        row.ID,
			Status:    adoptions.Status(row.Status),
			CreatedAt: row.CreatedAt.UTC(),
			Fields:    fields,
		})
	}
	return out, nil
}
