// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/MKhiriev/go-vault-broker/internal/utils"
	"github.com/MKhiriev/go-vault-broker/models"
	"github.com/go-chi/chi/v5"
)

const hostIDParam = "hostID"

func (h *Handler) listHosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, ErrNoUserInContext)
		return
	}

	hosts, err := h.services.HostService.ListHosts(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if hosts == nil {
		hosts = []models.Host{}
	}

	utils.WriteJSON(w, hosts, http.StatusOK)
}

func (h *Handler) createHost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, ErrNoUserInContext)
		return
	}

	var host models.Host
	if err := json.NewDecoder(r.Body).Decode(&host); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.HostService.CreateHost(r.Context(), userID, host)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getHost(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, ErrNoUserInContext)
		return
	}

	host, err := h.services.HostService.GetHost(r.Context(), userID, chi.URLParam(r, hostIDParam))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, host, http.StatusOK)
}

func (h *Handler) updateHost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, ErrNoUserInContext)
		return
	}

	var host models.Host
	if err := json.NewDecoder(r.Body).Decode(&host); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	// the path wins over any id in the body
	host.ID = chi.URLParam(r, hostIDParam)

	updated, err := h.services.HostService.UpdateHost(r.Context(), userID, host)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteHost(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, ErrNoUserInContext)
		return
	}

	if err := h.services.HostService.DeleteHost(r.Context(), userID, chi.URLParam(r, hostIDParam)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) revealCredentials(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, ErrNoUserInContext)
		return
	}

	creds, err := h.services.HostService.RevealCredentials(r.Context(), userID, chi.URLParam(r, hostIDParam))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, creds, http.StatusOK)
}
