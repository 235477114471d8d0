// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/MKhiriev/go-vault-broker/internal/service"
	"github.com/MKhiriev/go-vault-broker/models"
)

// UnlockState is the part of the session gate the HTTP layer needs.
// *session.Gate satisfies it.
type UnlockState interface {
	IsUnlocked(userID string) bool
	Touch(userID string)
}

type Handler struct {
	services  *service.Services
	gate      UnlockState
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(services *service.Services, gate UnlockState, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		gate:      gate,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
