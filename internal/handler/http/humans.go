package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-humans/internal/utils"
	"github.com/MKhiriev/go-humans/internal/validators"
	"github.com/MKhiriev/go-humans/models"
)

func (h *Handler) listHumans(w http.ResponseWriter, r *http.Request) {
	humans, err := h.services.HumanService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if humans == nil {
		humans = []models.Human{}
	}

	utils.WriteJSON(w, humans, http.StatusOK)
}

func (h *Handler) getHuman(w http.ResponseWriter, r *http.Request) {
	id, err := humanIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	human, err := h.services.HumanService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, human, http.StatusOK)
}

func (h *Handler) createHuman(w http.ResponseWriter, r *http.Request) {
	input, err := decodeHumanInput(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	human, err := h.services.HumanService.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, human, http.StatusCreated)
}

func (h *Handler) updateHuman(w http.ResponseWriter, r *http.Request) {
	id, err := humanIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	input, err := decodeHumanInput(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	human, err := h.services.HumanService.Update(r.Context(), id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, human, http.StatusOK)
}

func (h *Handler) deleteHuman(w http.ResponseWriter, r *http.Request) {
	id, err := humanIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.HumanService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func humanIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPathID, raw)
	}

	return id, nil
}

// decodeHumanInput reads a HumanInput from the JSON body. A value of the
// wrong JSON type is reported against its field.
func decodeHumanInput(w http.ResponseWriter, r *http.Request) (models.HumanInput, error) {
	var input models.HumanInput

	err := decodeJSON(w, r, &input)
	if err == nil {
		return input, nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return models.HumanInput{}, &validators.ValidationError{
			Err: ErrInvalidJSON,
			Fields: []models.FieldError{{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("Input should be a valid %s", typeErr.Type.Kind()),
			}},
		}
	}

	return models.HumanInput{}, err
}
