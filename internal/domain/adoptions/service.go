package adoptions

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Submit registra la solicitud sin validar el payload ni que la mascota
// referenciada exista: la intake está desacoplada del catálogo.
func (s *Service) Submit(ctx context.Context, fields map[string]any) (Adoption, error) {
	clean := make(map[string]any, len(fields))
	for k, v := range fields {
		key := strings.TrimSpace(k)
		if key == "" || isReserved(key) {
			continue
		}
		clean[key] = v
	}

	a := Adoption{
		Status:    StatusPending,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
		Fields:    clean,
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return Adoption{}, fmt.Errorf("adoptions: create: %w", err)
	}
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]Adoption, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("adoptions: list: %w", err)
	}
	return out, nil
}
