package pets

import (
	"fmt"
	"strconv"
	"strings"
)

// Draft es el resultado tipado de Coerce: lo que se va a persistir,
// sin imágenes, estado ni timestamps.
type Draft struct {
	PetType    string
	Location   string
	Age        int
	Vaccinated bool
	Neutered   bool
	Attributes map[string]any
}

// FieldProblem describe un campo que no pasó la validación.
type FieldProblem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa todos los problemas encontrados en un submit.
type ValidationError struct {
	Problems []FieldProblem
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, p.Field+": "+p.Message)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Coerce convierte los campos sin tipo del formulario en un Draft.
//   - age: entero inicial del texto ("3 years" => 3), 0 si no hay número; no puede ser negativo.
//   - vaccinated / neutered: true solo para "true" o el booleano true.
//   - petType / location: texto libre, se recortan espacios.
//   - claves reservadas (_id, id, images, status, createdAt) se descartan.
//   - el resto pasa sin tocar a Attributes.
func Coerce(fields map[string]any) (Draft, error) {
	d := Draft{Attributes: map[string]any{}}
	var problems []FieldProblem

	for k, v := range fields {
		key := strings.TrimSpace(k)
		if key == "" || IsReserved(key) {
			continue
		}

		switch key {
		case FieldPetType:
			d.PetType = strings.TrimSpace(firstString(v))
		case FieldLocation:
			d.Location = strings.TrimSpace(firstString(v))
		case FieldAge:
			age, err := coerceAge(v)
			if err != nil {
				problems = append(problems, FieldProblem{Field: FieldAge, Message: err.Error()})
				continue
			}
			d.Age = age
		case FieldVaccinated:
			d.Vaccinated = CoerceBool(v)
		case FieldNeutered:
			d.Neutered = CoerceBool(v)
		default:
			d.Attributes[key] = v
		}
	}

	if len(problems) > 0 {
		return Draft{}, &ValidationError{Problems: problems}
	}
	return d, nil
}

// CoerceBool: "true" o true => true; cualquier otra cosa => false.
func CoerceBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true"
	case []string:
		return len(t) > 0 && t[0] == "true"
	default:
		return false
	}
}

func coerceAge(v any) (int, error) {
	var n int
	switch t := v.(type) {
	case nil:
		return 0, nil
	case int:
		n = t
	case int64:
		n = int(t)
	case float64:
		n = int(t)
	default:
		parsed, ok, err := parseLeadingInt(firstString(v))
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, nil
		}
		n = parsed
	}
	if n < 0 {
		return 0, fmt.Errorf("must be >= 0, got %d", n)
	}
	return n, nil
}

// parseLeadingInt lee el entero con signo al inicio del texto.
// ok=false si no hay dígitos (el caller usa 0).
func parseLeadingInt(s string) (int, bool, error) {
	s = strings.TrimLeft(s, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false, nil
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false, fmt.Errorf("out of range")
	}
	return n, true, nil
}

func firstString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) == 0 {
			return ""
		}
		return t[0]
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
