package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidID     = fmt.Errorf("%w: malformed pet id", ErrInvalidInput)
	ErrInvalidStatus = fmt.Errorf("%w: unknown status", ErrInvalidInput)
	ErrNoImages      = fmt.Errorf("%w: at least one image is required", ErrInvalidInput)
	ErrNotFound      = errors.New("pet not found")
)

type Service struct {
	repo          Repository
	initialStatus Status
	now           func() time.Time
}

// NewService crea el servicio. initialStatus es el estado con el que nacen
// las mascotas nuevas; si viene vacío o inválido se usa pending
// (requiere aprobación explícita antes de aparecer en el listado público).
func NewService(repo Repository, initialStatus Status) *Service {
	if !initialStatus.Valid() {
		initialStatus = StatusPending
	}
	return &Service{
		repo:          repo,
		initialStatus: initialStatus,
		now:           time.Now,
	}
}

type SubmitInput struct {
	Fields map[string]any
	Images []string // reference paths ya persistidos por media
}

// Submit valida y publica una mascota nueva.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Pet, error) {
	images := make([]string, 0, len(in.Images))
	for _, img := range in.Images {
		if strings.TrimSpace(img) != "" {
			images = append(images, img)
		}
	}
	if len(images) == 0 {
		return Pet{}, ErrNoImages
	}

	d, err := Coerce(in.Fields)
	if err != nil {
		return Pet{}, err
	}

	p := Pet{
		Images:     images,
		Status:     s.initialStatus,
		PetType:    d.PetType,
		Location:   d.Location,
		Age:        d.Age,
		Vaccinated: d.Vaccinated,
		Neutered:   d.Neutered,
		Attributes: d.Attributes,
		// A milisegundo: lo que devuelve Submit coincide con un Get posterior.
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return Pet{}, fmt.Errorf("pets: create: %w", err)
	}
	return created, nil
}

// List devuelve el listado público. Sin status explícito solo se ven las
// mascotas disponibles; con status se usa tal cual (herramientas de admin).
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Pet, error) {
	if filter.Status == "" {
		filter.Status = StatusAvailable
	}
	filter.PetType = strings.TrimSpace(filter.PetType)
	filter.Location = strings.TrimSpace(filter.Location)

	out, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("pets: list: %w", err)
	}
	return out, nil
}

// ListForAdoption filtra solo por estado exacto (default available).
func (s *Service) ListForAdoption(ctx context.Context, status Status) ([]Pet, error) {
	if status == "" {
		status = StatusAvailable
	}
	out, err := s.repo.List(ctx, ListFilter{Status: status})
	if err != nil {
		return nil, fmt.Errorf("pets: list for adoption: %w", err)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

// SetStatus es el único camino para mutar una mascota existente.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidID
	}
	if !status.Valid() {
		return Pet{}, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
