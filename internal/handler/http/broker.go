// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/MKhiriev/go-vault-broker/internal/utils"
	"github.com/MKhiriev/go-vault-broker/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) gatewayToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, ErrNoUserInContext)
		return
	}

	// an empty body means "no overrides"
	var req models.GatewayTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.BrokerService.GatewayToken(r.Context(), userID, chi.URLParam(r, hostIDParam), req.Options)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, token, http.StatusOK)
}

func (h *Handler) connectTest(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, ErrNoUserInContext)
		return
	}

	report, err := h.services.BrokerService.TestConnection(r.Context(), userID, chi.URLParam(r, hostIDParam))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}
