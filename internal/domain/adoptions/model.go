package adoptions

import "time"

type Status string

const (
	StatusPending Status = "pending"
)

// Adoption es una solicitud de adopción. Fields guarda el payload del
// solicitante tal cual llegó (datos de contacto, petId, etc.).
type Adoption struct {
	ID        string
	Status    Status
	CreatedAt time.Time
	Fields    map[string]any
}

const (
	FieldID        = "_id"
	FieldAltID     = "id"
	FieldStatus    = "status"
	FieldCreatedAt = "createdAt"
)

func isReserved(key string) bool {
	switch key {
	case FieldID, FieldAltID, FieldStatus, FieldCreatedAt:
		return true
	default:
		return false
	}
}

// Document devuelve la forma plana que se expone en la API.
func (a Adoption) Document() map[string]any {
	doc := make(map[string]any, len(a.Fields)+3)
	for k, v := range a.Fields {
		if isReserved(k) {
			continue
		}
		doc[k] = v
	}
	doc[FieldID] = a.ID
	doc[FieldStatus] = a.Status
	doc[FieldCreatedAt] = a.CreatedAt
	return doc
}
