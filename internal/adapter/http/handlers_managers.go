package adapthttp

import (
	"errors"
	"net/http"

	"projecttracker/internal/app"
	"projecttracker/internal/domain"
)

func (s *Server) handleManagers(w http.ResponseWriter, r *http.Request) {
	id, hasID, err := resourceID(r.URL.Path, "/managers/")
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	if !hasID {
		switch r.Method {
		case http.MethodGet:
			items, err := s.managers.List(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, err)
				return
			}
			writeJSON(w, http.StatusOK, items)

		case http.MethodPost:
			var body domain.Manager
			if err := parseJSON(r, &body); err != nil {
				writeError(w, http.StatusBadRequest, err)
				return
			}
			created, err := s.managers.Create(r.Context(), body)
			if err != nil {
				writeError(w, http.StatusBadRequest, err)
				return
			}
			writeJSON(w, http.StatusCreated, created)

		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	switch r.Method {
	case http.MethodGet:
		rec, err := s.managers.Get(r.Context(), id)
		if errors.Is(err, app.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)

	case http.MethodPut, http.MethodPatch:
		existing, err := s.managers.Get(r.Context(), id)
		if errors.Is(err, app.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		// PUT replaces the record; PATCH decodes over the stored one.
		body := domain.Manager{}
		if r.Method == http.MethodPatch {
			body = *existing
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		body.ID = id

		updated, err := s.managers.Update(r.Context(), body)
		if errors.Is(err, app.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		err := s.managers.Delete(r.Context(), id)
		if errors.Is(err, app.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
