// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vault-broker/internal/gateway"
	"github.com/MKhiriev/go-vault-broker/internal/keyring"
	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/MKhiriev/go-vault-broker/internal/proxy"
	"github.com/MKhiriev/go-vault-broker/internal/service"
	"github.com/MKhiriev/go-vault-broker/internal/session"
	"github.com/MKhiriev/go-vault-broker/internal/store"
	"github.com/MKhiriev/go-vault-broker/internal/utils"
	"github.com/MKhiriev/go-vault-broker/internal/vault"
)

// sessionExpiredMessage is the body clients key on to show a re-login prompt.
const sessionExpiredMessage = "session_expired"

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is ordered: the first match wins, so an error that wraps
// several sentinels is reported by the most specific one.
var errorResponses = []errorResponse{
	{session.ErrSessionExpired, http.StatusLocked, sessionExpiredMessage},
	{vault.ErrDecryptionFailed, http.StatusUnprocessableEntity, "this credential could not be read"},
	{store.ErrBackendUnreachable, http.StatusServiceUnavailable, "storage is unavailable"},
	{keyring.ErrKeyMaterialDegraded, http.StatusServiceUnavailable, "key material is unavailable"},

	{service.ErrInvalidDataProvided, http.StatusBadRequest, "invalid data provided"},
	{service.ErrInvalidHost, http.StatusBadRequest, "invalid host profile"},
	{service.ErrProtocolNotBrokered, http.StatusBadRequest, "protocol is not served by the gateway"},
	{service.ErrWrongPassword, http.StatusUnauthorized, "invalid login/password"},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "token is expired or invalid"},
	{service.ErrUnauthorizedAccess, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized)},

	{store.ErrLoginAlreadyExists, http.StatusConflict, "login already exists"},
	{store.ErrHostNotFound, http.StatusNotFound, "host not found"},

	{proxy.ErrEmptyChain, http.StatusBadRequest, "proxy chain is empty"},
	{proxy.ErrMissingProxyTarget, http.StatusBadRequest, "proxy configuration is incomplete"},
	{proxy.ErrUnsupportedProxyVersion, http.StatusBadRequest, "unsupported proxy protocol version"},
	{proxy.ErrChainConnect, http.StatusBadGateway, "could not connect through the proxy chain"},
	{gateway.ErrGatewayUnreachable, http.StatusBadGateway, "gateway is unreachable"},
}

func statusFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeServiceError logs err and answers with its mapped status and a
// message that never contains err itself.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
