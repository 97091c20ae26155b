package models

import "time"

// ProjectStatus tracks where a project sits in its lifecycle.
type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectPaused   ProjectStatus = "paused"
	ProjectArchived ProjectStatus = "archived"
)

// Project is one tracked project on the dashboard. Credentials are scoped
// to a project via CredentialRecord.ProjectID.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Status      ProjectStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// TableName returns the database table backing Project.
func (Project) TableName() string { return "projects" }

// ProjectLink is an external resource attached to a project
// (repository, deployed site, issue tracker).
type ProjectLink struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table backing ProjectLink.
func (ProjectLink) TableName() string { return "project_links" }
