package http

import (
	"net/http"

	"github.com/MKhiriev/go-advert-board/internal/utils"
	"github.com/MKhiriev/go-advert-board/models"
)

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{Status: "ok"}, http.StatusOK)
}
