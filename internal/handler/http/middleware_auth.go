// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/MKhiriev/go-vault-broker/internal/utils"
)

// auth enforces bearer JWT authentication and stores the user id from the
// token subject in the request context. Any failure is a 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Info().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Info().Err(err).Send()
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), token.UserID)))
	})
}

// requireUnlocked rejects requests of users whose vault is locked or has
// idled out, and refreshes the idle timer otherwise. It must run after auth.
func (h *Handler) requireUnlocked(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			writeServiceError(w, r, ErrNoUserInContext)
			return
		}

		if !h.gate.IsUnlocked(userID) {
			logger.FromRequest(r).Info().Str("user_id", userID).Msg("vault is locked")
			utils.WriteError(w, sessionExpiredMessage, http.StatusLocked)
			return
		}
		h.gate.Touch(userID)

		next.ServeHTTP(w, r)
	})
}
