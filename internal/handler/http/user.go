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

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var registration registerRequest
	if err := json.NewDecoder(r.Body).Decode(&registration); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.UserService.Register(ctx, registration.toUser())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Str("email", registration.Email).Msg("email already exists")
			writeError(w, "Email already exists", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, "An error occurred while creating the user", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid user id in path")
		writeError(w, "invalid id provided", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.UserService.Get(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user lookup failed")
		mapError(w, err)
		return
	}

	utils.WriteJSON(w, foundUser, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid user id in path")
		writeError(w, "invalid id provided", http.StatusBadRequest)
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	update.ID = userID

	updatedUser, err := h.services.UserService.Update(ctx, update)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user update failed")
		mapError(w, err)
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid user id in path")
		writeError(w, "invalid id provided", http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.Delete(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("user deletion failed")
		mapError(w, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: "success"}, http.StatusOK)
}
