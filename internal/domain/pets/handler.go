package pets

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"pet-adoption-api/internal/media"
	"pet-adoption-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	// Tope del body multipart: 5 archivos de 5 MiB + 1 MiB para campos.
	maxMultipartBody = media.MaxFiles*media.MaxFileSize + 1<<20
	// Lo que excede esto en memoria va a archivos temporales.
	multipartMemory = 8 << 20
	maxJSONBody     = 1 << 20
)

func RegisterRoutes(r chi.Router, svc *Service, intake *media.Intake, log logger.Logger) {
	r.Route("/api/pets", func(pr chi.Router) {
		pr.Post("/", submitPetHandler(svc, intake, log))
		pr.Get("/", listPetsHandler(svc, log))
		pr.Get("/{petID}", getPetHandler(svc, log))

		// Transición administrativa de estado (pending -> available, etc.)
		pr.Patch("/{petID}/status", setStatusHandler(svc, log))
	})

	r.Get("/api/adoption-pets", listAdoptionPetsHandler(svc, log))
}

// submitPetResponse es la confirmación de una publicación nueva.
type submitPetResponse struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	InsertedID string   `json:"insertedId"`
	Images     []string `json:"images"`
}

// setStatusRequest es el cuerpo del PATCH de estado.
type setStatusRequest struct {
	Status string `json:"status" enums:"pending,available,adopted,rejected"`
}

type errorResponse struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Error    string         `json:"error,omitempty"`
	Problems []FieldProblem `json:"problems,omitempty"`
}

// submitPetHandler godoc
// @Summary Publicar mascota para adopción
// @Description Recibe un multipart con hasta 5 imágenes (`images`, jpeg/jpg/png/gif, 5 MiB c/u) y campos libres. `age` se convierte a entero, `vaccinated`/`neutered` a booleano. La mascota nace con el estado inicial configurado (por defecto `pending`).
// @Tags pets
// @Accept mpfd
// @Produce json
// @Param images formData file true "Imágenes de la mascota (1 a 5)"
// @Param petType formData string false "Tipo de mascota"
// @Param location formData string false "Ubicación"
// @Param age formData integer false "Edad"
// @Param vaccinated formData boolean false "Vacunada"
// @Param neutered formData boolean false "Castrada"
// @Success 201 {object} submitPetResponse
// @Failure 400 {object} errorResponse "sin imágenes / imagen rechazada / validación"
// @Failure 413 {object} errorResponse "archivo demasiado grande"
// @Failure 500 {object} errorResponse
// @Router /api/pets [post]
func submitPetHandler(svc *Service, intake *media.Intake, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxMultipartBody)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var tooBig *http.MaxBytesError
			switch {
			case errors.Is(err, http.ErrNotMultipart):
				writeError(w, http.StatusBadRequest, "At least one image is required", nil)
			case errors.As(err, &tooBig):
				writeError(w, http.StatusRequestEntityTooLarge, "Request too large", err)
			default:
				writeError(w, http.StatusBadRequest, "Invalid multipart form", err)
			}
			return
		}
		defer func() { _ = r.MultipartForm.RemoveAll() }()

		headers := append(r.MultipartForm.File["images"], r.MultipartForm.File["images[]"]...)
		if len(headers) == 0 {
			writeError(w, http.StatusBadRequest, "At least one image is required", nil)
			return
		}

		files := toMediaFiles(headers)
		if err := intake.Check(files); err != nil {
			writeMediaError(w, err)
			return
		}

		fields := formFields(r.MultipartForm.Value)

		// Validamos campos antes de tocar disco: un rechazo no deja archivos.
		if _, err := Coerce(fields); err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		refs, err := intake.Save(r.Context(), files)
		if err != nil {
			if errors.Is(err, media.ErrRejected) {
				writeMediaError(w, err)
				return
			}
			serverError(w, r, log, "save pet images", err)
			return
		}

		p, err := svc.Submit(r.Context(), SubmitInput{Fields: fields, Images: refs})
		if err != nil {
			if rmErr := intake.Remove(refs); rmErr != nil {
				log.Warn("cleanup orphaned images", map[string]any{
					"request_id": chimw.GetReqID(r.Context()),
					"err":        rmErr.Error(),
				})
			}
			writeServiceError(w, r, log, err)
			return
		}

		msg := "Pet submitted"
		if p.Status == StatusPending {
			msg = "Pet submitted for approval"
		}

		writeJSON(w, http.StatusCreated, submitPetResponse{
			Success:    true,
			Message:    msg,
			InsertedID: p.ID,
			Images:     p.Images,
		})
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Sin `status` devuelve solo mascotas `available`. `type` filtra por igualdad exacta, `location` por substring sin distinguir mayúsculas. Orden: más nuevas primero.
// @Tags pets
// @Produce json
// @Param status query string false "Estado (default available)"
// @Param type query string false "Tipo de mascota"
// @Param location query string false "Ubicación (substring)"
// @Success 200 {array} object
// @Failure 500 {object} errorResponse
// @Router /api/pets [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.List(r.Context(), ListFilter{
			Status:   Status(q.Get("status")),
			PetType:  q.Get("type"),
			Location: q.Get("location"),
		})
		if err != nil {
			serverError(w, r, log, "list pets", err)
			return
		}

		writeJSON(w, http.StatusOK, toDocuments(items))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} object
// @Failure 400 {object} errorResponse "id mal formado"
// @Failure 404 {object} errorResponse "pet not found"
// @Failure 500 {object} errorResponse
// @Router /api/pets/{petID} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, p.Document())
	}
}

// setStatusHandler godoc
// @Summary Cambiar estado de una mascota
// @Description Único camino para mutar una mascota publicada.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body setStatusRequest true "Nuevo estado"
// @Success 200 {object} object
// @Failure 400 {object} errorResponse "json inválido / estado desconocido / id mal formado"
// @Failure 404 {object} errorResponse "pet not found"
// @Failure 500 {object} errorResponse
// @Router /api/pets/{petID}/status [patch]
func setStatusHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setStatusRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON", err)
			return
		}

		p, err := svc.SetStatus(r.Context(), chi.URLParam(r, "petID"), Status(req.Status))
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, p.Document())
	}
}

// listAdoptionPetsHandler godoc
// @Summary Listar mascotas por estado
// @Description Filtro exacto por estado (default available), sin filtros secundarios ni orden garantizado.
// @Tags pets
// @Produce json
// @Param status query string false "Estado (default available)"
// @Success 200 {array} object
// @Failure 500 {object} errorResponse
// @Router /api/adoption-pets [get]
func listAdoptionPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListForAdoption(r.Context(), Status(r.URL.Query().Get("status")))
		if err != nil {
			serverError(w, r, log, "list adoption pets", err)
			return
		}
		writeJSON(w, http.StatusOK, toDocuments(items))
	}
}

func toMediaFiles(headers []*multipart.FileHeader) []media.File {
	out := make([]media.File, 0, len(headers))
	for _, fh := range headers {
		fh := fh
		out = append(out, media.File{
			Name:     fh.Filename,
			MIMEType: fh.Header.Get("Content-Type"),
			Size:     fh.Size,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	return out
}

// formFields aplana los valores del form: un valor => string, varios => []string.
func formFields(values map[string][]string) map[string]any {
	out := make(map[string]any, len(values))
	for k, vs := range values {
		switch len(vs) {
		case 0:
			continue
		case 1:
			out[k] = vs[0]
		default:
			out[k] = vs
		}
	}
	return out
}

func toDocuments(items []Pet) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, p := range items {
		out = append(out, p.Document())
	}
	return out
}

func writeMediaError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, media.ErrFileTooLarge) {
		status = http.StatusRequestEntityTooLarge
	}
	writeError(w, status, err.Error(), nil)
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Message:  "Invalid pet data",
			Problems: verr.Problems,
		})
	case errors.Is(err, ErrNoImages):
		writeError(w, http.StatusBadRequest, "At least one image is required", nil)
	case errors.Is(err, ErrInvalidID):
		writeError(w, http.StatusBadRequest, "Invalid pet id", nil)
	case errors.Is(err, ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "Invalid status", nil)
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "Pet not found", nil)
	default:
		serverError(w, r, log, "pets request failed", err)
	}
}

// serverError loguea y responde 500 con el detalle del error (herramienta interna).
func serverError(w http.ResponseWriter, r *http.Request, log logger.Logger, msg string, err error) {
	log.Error(msg, map[string]any{
		"request_id": chimw.GetReqID(r.Context()),
		"method":     r.Method,
		"path":       r.URL.Path,
		"err":        err.Error(),
	})
	writeError(w, http.StatusInternalServerError, "Server error", err)
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := errorResponse{Message: msg}
	if err != nil {
		resp.Error = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (pets/adoptions)
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
