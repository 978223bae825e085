package pets

import "time"

// Status es el estado del ciclo de vida de una mascota publicada.
// @Enum pending, available, adopted, rejected
type Status string

const (
	StatusPending   Status = "pending"
	StatusAvailable Status = "available"
	StatusAdopted   Status = "adopted"
	StatusRejected  Status = "rejected"
)

// Statuses lista los estados válidos en orden de ciclo de vida.
var Statuses = []Status{StatusPending, StatusAvailable, StatusAdopted, StatusRejected}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAvailable, StatusAdopted, StatusRejected:
		return true
	default:
		return false
	}
}

// ParseStatus normaliza y valida un estado recibido desde afuera.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// Pet es una mascota publicada para adopción.
// Attributes guarda los campos libres del formulario tal cual llegaron.
type Pet struct {
	ID string

	Images []string
	Status Status

	PetType  string
	Location string

	Age        int
	Vaccinated bool
	Neutered   bool

	Attributes map[string]any

	CreatedAt time.Time
}

// Claves que nunca se toman del input del cliente.
const (
	FieldID         = "_id"
	FieldAltID      = "id"
	FieldImages     = "images"
	FieldStatus     = "status"
	FieldCreatedAt  = "createdAt"
	FieldPetType    = "petType"
	FieldLocation   = "location"
	FieldAge        = "age"
	FieldVaccinated = "vaccinated"
	FieldNeutered   = "neutered"
)

// IsReserved indica si la clave es administrada por el sistema.
func IsReserved(key string) bool {
	switch key {
	case FieldID, FieldAltID, FieldImages, FieldStatus, FieldCreatedAt:
		return true
	default:
		return false
	}
}

// Document arma la representación plana de la mascota: atributos libres
// primero y luego los campos fijos, que siempre ganan.
func (p Pet) Document() map[string]any {
	doc := make(map[string]any, len(p.Attributes)+10)
	for k, v := range p.Attributes {
		if IsReserved(k) {
			continue
		}
		doc[k] = v
	}

	images := p.Images
	if images == nil {
		images = []string{}
	}

	doc[FieldID] = p.ID
	doc[FieldImages] = images
	doc[FieldStatus] = p.Status
	doc[FieldAge] = p.Age
	doc[FieldVaccinated] = p.Vaccinated
	doc[FieldNeutered] = p.Neutered
	doc[FieldCreatedAt] = p.CreatedAt
	if p.PetType != "" {
		doc[FieldPetType] = p.PetType
	}
	if p.Location != "" {
		doc[FieldLocation] = p.Location
	}
	return doc
}
