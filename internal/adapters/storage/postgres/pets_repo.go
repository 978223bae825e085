package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption-api/internal/domain/pets"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const petColumns = `id, images, status, pet_type, location, age, vaccinated, neutered, attributes, created_at`

type PetsRepo struct {
	db *sqlx.DB
}

func NewPetsRepo(db *sqlx.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

type petRow struct {
	ID         string         `db:"id"`
	Images     pq.StringArray `db:"images"`
	Status     string         `db:"status"`
	PetType    string         `db:"pet_type"`
	Location   string         `db:"location"`
	Age        int            `db:"age"`
	Vaccinated bool           `db:"vaccinated"`
	Neutered   bool           `db:"neutered"`
	Attributes []byte         `db:"attributes"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	attrs, err := marshalObject(p.Attributes)
	if err != nil {
		return pets.Pet{}, fmt.Errorf("postgres: encode attributes: %w", err)
	}

	p.ID = uuid.NewString()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, images, status,
			pet_type, location,
			age, vaccinated, neutered,
			attributes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9::jsonb,$10)
	`,
		p.ID,
		[]string(p.Images),
		string(p.Status),
		p.PetType,
		p.Location,
		p.Age,
		p.Vaccinated,
		p.Neutered,
		attrs,
		p.CreatedAt,
	)
	if err != nil {
		return pets.Pet{}, fmt.Errorf("postgres: insert pet: %w", err)
	}
	return p, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	if _, err := uuid.Parse(id); err != nil {
		return pets.Pet{}, pets.ErrInvalidID
	}

	var row petRow
	err := r.db.GetContext(ctx, &row, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("postgres: get pet: %w", err)
	}
	return row.toPet()
}

func (r *PetsRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	var (
		where []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.PetType != "" {
		args = append(args, filter.PetType)
		where = append(where, fmt.Sprintf("pet_type = $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, escapeLike(filter.Location))
		where = append(where, fmt.Sprintf(`location ILIKE '%%' || $%d || '%%' ESCAPE '\'`, len(args)))
	}

	query := `SELECT ` + petColumns + ` FROM pets`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	var rows []petRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("postgres: list pets: %w", err)
	}

	out := make([]pets.Pet, 0, len(rows))
	for _, row := range rows {
		p, err := row.toPet()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PetsRepo) UpdateStatus(ctx context.Context, id string, status pets.Status) (pets.Pet, error) {
	if _, err := uuid.Parse(id); err != nil {
		return pets.Pet{}, pets.ErrInvalidID
	}

	var row petRow
	err := r.db.GetContext(ctx, &row, `
		UPDATE pets SET status = $2
		WHERE id = $1
		RETURNING `+petColumns, id, string(status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("postgres: update pet status: %w", err)
	}
	return row.toPet()
}

func (row petRow) toPet() (pets.Pet, error) {
	attrs, err := unmarshalObject(row.Attributes)
	if err != nil {
		return pets.Pet{}, fmt.Errorf("postgres: decode attributes of pet %s: %w", row.ID, err)
	}
	return pets.Pet{
		ID:         row.ID,
		Images:     []string(row.Images),
		Status:     pets.Status(row.Status),
		PetType:    row.PetType,
		Location:   row.Location,
		Age:        row.Age,
		Vaccinated: row.Vaccinated,
		Neutered:   row.Neutered,
		Attributes: attrs,
		CreatedAt:  row.CreatedAt.UTC(),
	}, nil
}

// escapeLike neutraliza los comodines de LIKE para buscar el texto literal.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func marshalObject(m map[string]any) (string, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalObject(b []byte) (map[string]any, error) {
	out := map[string]any{}
	if len(b) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
