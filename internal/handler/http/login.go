package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-advert-board/internal/logger"
	"github.com/MKhiriev/go-advert-board/internal/service"
	"github.com/MKhiriev/go-advert-board/internal/utils"
	"github.com/MKhiriev/go-advert-board/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials loginRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Authenticate(ctx, credentials.Email, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Debug().Str("email", credentials.Email).Msg("login attempt rejected")
			utils.WriteJSON(w, models.FailResponse{Status: "fail", Error: "Invalid email or password"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{Status: "success", UserID: foundUser.ID}, http.StatusOK)
}
