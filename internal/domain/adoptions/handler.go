package adoptions

import (
	"encoding/json"
	"net/http"

	"pet-adoption-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const maxJSONBody = 1 << 20

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api/adoptions", func(ar chi.Router) {
		ar.Post("/", submitAdoptionHandler(svc, log))
		ar.Get("/", listAdoptionsHandler(svc, log))
	})
}

// insertResult imita el acuse del store: acknowledged + id generado.
type insertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type submitAdoptionResponse struct {
	Success bool         `json:"success"`
	Data    insertResult `json:"data"`
}

type listAdoptionsResponse struct {
	Success bool             `json:"success"`
	Data    []map[string]any `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// submitAdoptionHandler godoc
// @Summary Registrar solicitud de adopción
// @Description Acepta cualquier objeto JSON; se guarda con `status=pending` y `createdAt`. No valida que la mascota referenciada exista.
// @Tags adoptions
// @Accept json
// @Produce json
// @Param payload body object true "Datos de la solicitud"
// @Success 201 {object} submitAdoptionResponse
// @Failure 400 {object} errorResponse "invalid json"
// @Failure 500 {object} errorResponse
// @Router /api/adoptions [post]
func submitAdoptionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]any
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
		if err := dec.Decode(&fields); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid JSON", Error: err.Error()})
			return
		}
		if fields == nil {
			fields = map[string]any{}
		}

		a, err := svc.Submit(r.Context(), fields)
		if err != nil {
			serverError(w, r, log, "submit adoption", err)
			return
		}

		writeJSON(w, http.StatusCreated, submitAdoptionResponse{
			Success: true,
			Data:    insertResult{Acknowledged: true, InsertedID: a.ID},
		})
	}
}

// listAdoptionsHandler godoc
// @Summary Listar solicitudes de adopción
// @Tags adoptions
// @Produce json
// @Success 200 {object} listAdoptionsResponse
// @Failure 500 {object} errorResponse
// @Router /api/adoptions [get]
func listAdoptionsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			serverError(w, r, log, "list adoptions", err)
			return
		}

		out := make([]map[string]any, 0, len(items))
		for _, a := range items {
			out = append(out, a.Document())
		}
		writeJSON(w, http.StatusOK, listAdoptionsResponse{Success: true, Data: out})
	}
}

func serverError(w http.ResponseWriter, r *http.Request, log logger.Logger, msg string, err error) {
	log.Error(msg, map[string]any{
		"request_id": chimw.GetReqID(r.Context()),
		"err":        err.Error(),
	})
	writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Server error", Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
