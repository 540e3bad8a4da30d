package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-humans/internal/app"
	"github.com/MKhiriev/go-humans/internal/logger"
	"github.com/MKhiriev/go-humans/internal/service"
	"github.com/MKhiriev/go-humans/internal/store"
	"github.com/MKhiriev/go-humans/internal/utils"
	"github.com/MKhiriev/go-humans/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrInvalidHumanID:          http.StatusNotFound,

	validators.ErrInvalidHuman:       http.StatusUnprocessableEntity,
	validators.ErrInvalidCredentials: http.StatusUnprocessableEntity,

	ErrInvalidJSON:   http.StatusUnprocessableEntity,
	ErrInvalidPathID: http.StatusUnprocessableEntity,
	ErrBodyTooLarge:  http.StatusRequestEntityTooLarge,

	store.ErrHumanNotFound:            http.StatusNotFound,
	store.ErrHumanConstraintViolation: http.StatusUnprocessableEntity,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

var errorDetailMap = map[error]string{
	service.ErrInvalidCredentials:      app.MsgInvalidCredentials,
	service.ErrTokenIsExpired:          app.MsgTokenIsExpired,
	service.ErrTokenIsExpiredOrInvalid: app.MsgCouldNotValidateCredentials,
	service.ErrInvalidHumanID:          app.MsgHumanNotFound,

	ErrInvalidJSON:   app.MsgInvalidJSON,
	ErrInvalidPathID: app.MsgInvalidPathID,
	ErrBodyTooLarge:  app.MsgBodyTooLarge,

	store.ErrHumanNotFound:            app.MsgHumanNotFound,
	store.ErrHumanConstraintViolation: app.MsgConstraintViolation,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError returns the "detail" payload for err: the per-field list
// for validation failures, a fixed message otherwise.
func detailFromError(err error, status int) any {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) && len(validationErr.Fields) > 0 {
		return validationErr.Fields
	}

	for target, detail := range errorDetailMap {
		if errors.Is(err, target) {
			return detail
		}
	}

	if status >= http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	return http.StatusText(status)
}

// writeError maps err to a status code and {"detail": ...} body. Server-side
// failures are logged; their cause is never sent to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	utils.WriteError(w, detailFromError(err, status), status)
}
