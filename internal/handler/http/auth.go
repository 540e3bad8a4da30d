package http

import (
	"errors"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-humans/internal/logger"
	"github.com/MKhiriev/go-humans/internal/utils"
	"github.com/MKhiriev/go-humans/models"
)

// login exchanges a username/password pair for a bearer token.
//
// The pair is read from an HTML form (application/x-www-form-urlencoded or
// multipart/form-data) or, for any other content type, from a JSON object.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := decodeCredentials(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("username", credentials.Username).Msg("user successfully logged in")

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		limitBody(w, r)
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return models.Credentials{}, bodyError(err)
		}
		return models.Credentials{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}, nil
	default:
		var credentials models.Credentials
		if err := decodeJSON(w, r, &credentials); err != nil {
			return models.Credentials{}, err
		}
		return credentials, nil
	}
}
