// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// authorized routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/user/logout", h.logout)

		// routes that may reach stored secrets
		r.Group(func(r chi.Router) {
			r.Use(h.requireUnlocked)

			r.Route("/api/hosts", func(r chi.Router) {
				r.Get("/", h.listHosts)
				r.Post("/", h.createHost)
				r.Route("/{hostID}", func(r chi.Router) {
					r.Get("/", h.getHost)
					r.Put("/", h.updateHost)
					r.Delete("/", h.deleteHost)
					r.Get("/credentials", h.revealCredentials)
					r.Post("/gateway-token", h.gatewayToken)
					r.Post("/connect-test", h.connectTest)
				})
			})
		})
	})

	return router
}
