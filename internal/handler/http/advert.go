// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-advert-board/internal/logger"
	"github.com/MKhiriev/go-advert-board/internal/service"
	"github.com/MKhiriev/go-advert-board/internal/store"
	"github.com/MKhiriev/go-advert-board/internal/utils"
	"github.com/MKhiriev/go-advert-board/models"
)

func (h *Handler) createAdvert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creation createAdvertRequest
	if err := json.NewDecoder(r.Body).Decode(&creation); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdAdvert, err := h.services.AdvertService.Create(ctx, creation.toAdvert())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Int64("owner_id", creation.OwnerID).Msg("advert owner does not exist")
			writeError(w, "User not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during advert creation")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, createdAdvert, http.StatusCreated)
}

func (h *Handler) getAdvert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	advertID, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid advert id in path")
		writeError(w, "invalid id provided", http.StatusBadRequest)
		return
	}

	foundAdvert, err := h.services.AdvertService.Get(ctx, advertID)
	if err != nil {
		log.Err(err).Int64("id", advertID).Msg("advert lookup failed")
		mapError(w, err)
		return
	}

	utils.WriteJSON(w, foundAdvert, http.StatusOK)
}

func (h *Handler) updateAdvert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	advertID, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid advert id in path")
		writeError(w, "invalid id provided", http.StatusBadRequest)
		return
	}

	var update models.AdvertUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	update.ID = advertID

	updatedAdvert, err := h.services.AdvertService.Update(ctx, update)
	if err != nil {
		log.Err(err).Int64("id", advertID).Msg("advert update failed")
		mapError(w, err)
		return
	}

	utils.WriteJSON(w, updatedAdvert, http.StatusOK)
}

func (h *Handler) deleteAdvert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	advertID, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid advert id in path")
		writeError(w, "invalid id provided", http.StatusBadRequest)
		return
	}

	if err := h.services.AdvertService.Delete(ctx, advertID); err != nil {
		log.Err(err).Int64("id", advertID).Msg("advert deletion failed")
		mapError(w, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: "success"}, http.StatusOK)
}
