package adoptions

import "context"

type Repository interface {
	Create(ctx context.Context, a Adoption) (Adoption, error)
	List(ctx context.Context) ([]Adoption, error)
}
