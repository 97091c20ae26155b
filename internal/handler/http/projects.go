// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jortega/trackvault/internal/logger"
	"github.com/jortega/trackvault/models"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	projects, err := h.projects.ListProjects(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listProjects").Msg("listing projects failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if projects == nil {
		projects = []models.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Err(err).Str("func", "*Handler.createProject").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if project.Name == "" {
		http.Error(w, "name must not be empty", http.StatusBadRequest)
		return
	}
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if project.Status == "" {
		project.Status = models.ProjectActive
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	project.UpdatedAt = project.CreatedAt

	created, err := h.projects.CreateProject(r.Context(), project)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createProject").Str("project_id", project.ID).Msg("creating project failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	projectID := chi.URLParam(r, "projectID")

	project, err := h.projects.GetProject(r.Context(), projectID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getProject").Str("project_id", projectID).Msg("getting project failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	projectID := chi.URLParam(r, "projectID")

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Err(err).Str("func", "*Handler.updateProject").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	project.ID = projectID
	project.UpdatedAt = time.Now().UTC()

	updated, err := h.projects.UpdateProject(r.Context(), project)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateProject").Str("project_id", projectID).Msg("updating project failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	projectID := chi.URLParam(r, "projectID")

	if err := h.projects.DeleteProject(r.Context(), projectID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteProject").Str("project_id", projectID).Msg("deleting project failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listProjectLinks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	projectID := chi.URLParam(r, "projectID")

	links, err := h.projects.ListProjectLinks(r.Context(), projectID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listProjectLinks").Str("project_id", projectID).Msg("listing project links failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if links == nil {
		links = []models.ProjectLink{}
	}
	writeJSON(w, http.StatusOK, links)
}

func (h *Handler) addProjectLink(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	projectID := chi.URLParam(r, "projectID")

	var link models.ProjectLink
	if err := json.NewDecoder(r.Body).Decode(&link); err != nil {
		log.Err(err).Str("func", "*Handler.addProjectLink").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	link.ProjectID = projectID

	if link.URL == "" {
		http.Error(w, "url must not be empty", http.StatusBadRequest)
		return
	}
	if link.ID == "" {
		link.ID = uuid.NewString()
	}
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now().UTC()
	}

	if err := h.projects.AddProjectLink(r.Context(), link); err != nil {
		log.Err(err).Str("func", "*Handler.addProjectLink").Str("project_id", projectID).Msg("adding project link failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusCreated, link)
}

func (h *Handler) deleteProjectLink(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	linkID := chi.URLParam(r, "linkID")

	if err := h.projects.DeleteProjectLink(r.Context(), linkID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteProjectLink").Str("link_id", linkID).Msg("deleting project link failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
