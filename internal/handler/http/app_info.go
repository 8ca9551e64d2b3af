package http

import (
	"net/http"

	"github.com/MKhiriev/account-service/internal/utils"
	"github.com/MKhiriev/account-service/models"
)

// health reports liveness. Reaching the handler at all means the HTTP
// stack is up, so the body is a constant.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "OK"}, http.StatusOK)
}

// index identifies the service to callers probing the API root.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	info := models.ServiceInfoResponse{
		Name:    h.services.AppInfoService.GetAppName(ctx),
		Version: h.services.AppInfoService.GetAppVersion(ctx),
	}

	utils.WriteJSON(w, info, http.StatusOK)
}
