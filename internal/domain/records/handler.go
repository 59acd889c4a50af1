package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/{resource}", func(rr chi.Router) {
		rr.Get("/", listHandler(svc))
		rr.Post("/", createHandler(svc))
		rr.Get("/{id}", getHandler(svc))
		rr.Put("/{id}", updateHandler(svc))
		rr.Delete("/{id}", deleteHandler(svc))
	})
}

// errorResponse es la forma que el admin lee en respuestas no-2xx.
type errorResponse struct {
	Message string `json:"message"`
}

// listHandler godoc
// @Summary Listar registros
// @Description Devuelve todos los registros del recurso, ordenados por id.
// @Tags records
// @Produce json
// @Param resource path string true "Recurso" Enums(dueno, mascota, veterinario, reserva_procedimiento)
// @Success 200 {array} object
// @Failure 404 {object} errorResponse "recurso desconocido"
// @Router /api/{resource} [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := svc.List(r.Context(), chi.URLParam(r, "resource"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recs)
	}
}

// getHandler godoc
// @Summary Obtener un registro
// @Tags records
// @Produce json
// @Param resource path string true "Recurso"
// @Param id path int true "ID del registro"
// @Success 200 {object} object
// @Failure 404 {object} errorResponse "no existe"
// @Router /api/{resource}/{id} [get]
func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		rec, err := svc.Get(r.Context(), chi.URLParam(r, "resource"), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// createHandler godoc
// @Summary Crear un registro
// @Description El servidor asigna el id. Las FKs (id_dueno, id_mascota, id_veterinario) deben existir.
// @Tags records
// @Accept json
// @Produce json
// @Param resource path string true "Recurso"
// @Param payload body object true "Campos del registro"
// @Success 201 {object} object
// @Failure 400 {object} errorResponse "json inválido / FK inexistente"
// @Failure 404 {object} errorResponse "recurso desconocido"
// @Router /api/{resource} [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeBody(w, r)
		if !ok {
			return
		}
		rec, err := svc.Create(r.Context(), chi.URLParam(r, "resource"), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rec)
	}
}

// updateHandler godoc
// @Summary Reemplazar un registro
// @Description Reemplaza todos los campos; el id de la URL se conserva.
// @Tags records
// @Accept json
// @Produce json
// @Param resource path string true "Recurso"
// @Param id path int true "ID del registro"
// @Param payload body object true "Campos del registro"
// @Success 200 {object} object
// @Failure 400 {object} errorResponse "json inválido / FK inexistente"
// @Failure 404 {object} errorResponse "no existe"
// @Router /api/{resource}/{id} [put]
func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		in, ok := decodeBody(w, r)
		if !ok {
			return
		}
		rec, err := svc.Update(r.Context(), chi.URLParam(r, "resource"), id, in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// deleteHandler godoc
// @Summary Eliminar un registro
// @Tags records
// @Param resource path string true "Recurso"
// @Param id path int true "ID del registro"
// @Success 204
// @Failure 404 {object} errorResponse "no existe"
// @Failure 409 {object} errorResponse "referenciado por otro recurso"
// @Router /api/{resource}/{id} [delete]
func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), chi.URLParam(r, "resource"), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "record not found"})
		return 0, false
	}
	return id, true
}

// decodeBody exige un objeto JSON; los números quedan como json.Number.
func decodeBody(w http.ResponseWriter, r *http.Request) (Record, bool) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	var in Record
	if err := dec.Decode(&in); err != nil || in == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid json"})
		return nil, false
	}
	return in, true
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrUnknownResource), errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		status = http.StatusConflict
	}
	writeJSON(w, status, errorResponse{Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
