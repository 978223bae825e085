package pets

import "context"

// Repository es el contrato del catálogo de mascotas.
// Las implementaciones asignan el ID al insertar y devuelven ErrInvalidID
// cuando el identificador no tiene el formato que usa el store.
type Repository interface {
	Create(ctx context.Context, p Pet) (Pet, error)
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context, filter ListFilter) ([]Pet, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Pet, error)
}

// ListFilter se traduce a igualdad (Status, PetType) y substring
// case-insensitive (Location). Los campos vacíos no filtran.
// El resultado va ordenado por CreatedAt descendente.
type ListFilter struct {
	Status   Status
	PetType  string
	Location string
}
