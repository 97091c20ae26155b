// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

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

	router.Route("/api", func(r chi.Router) {
		r.Route("/vault/{accountID}", func(r chi.Router) {
			r.Get("/", h.getVaultRecord)
			r.Post("/", h.createVaultRecord)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.listProjects)
			r.Post("/", h.createProject)

			r.Route("/{projectID}", func(r chi.Router) {
				r.Get("/", h.getProject)
				r.Put("/", h.updateProject)
				r.Delete("/", h.deleteProject)

				r.Get("/credentials", h.listCredentials)
				r.Post("/credentials", h.saveCredential)

				r.Get("/links", h.listProjectLinks)
				r.Post("/links", h.addProjectLink)
			})
		})

		r.Delete("/credentials/{credentialID}", h.deleteCredential)
		r.Delete("/links/{linkID}", h.deleteProjectLink)
	})

	return router
}
