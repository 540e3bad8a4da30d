package http

import (
	"net/http"

	"github.com/MKhiriev/go-humans/internal/utils"
)

// greeting answers GET / with the configured greeting as a JSON string.
func (h *Handler) greeting(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.Greeting(r.Context()), http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(serverVersion))
}
