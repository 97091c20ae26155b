package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jortega/trackvault/internal/logger"
	"github.com/jortega/trackvault/models"
)

// projectRepository is the SQL-backed implementation of [ProjectRepository].
type projectRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewProjectRepository constructs a [ProjectRepository] backed by db.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{db: db, logger: logger}
}

func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createProject,
		project.ID,
		project.Name,
		project.Description,
		string(project.Status),
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "projectRepository.CreateProject").
			Str("project_id", project.ID).
			Msg("failed to insert project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return project, nil
}

func (r *projectRepository) GetProject(ctx context.Context, id string) (models.Project, error) {
	var project models.Project
	row := r.db.QueryRowContext(ctx, getProject, id)
	if err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.Status,
		&project.CreatedAt,
		&project.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrNotFound
		}
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return project, nil
}

func (r *projectRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listProjects)
	if err != nil {
		log.Err(err).
			Str("func", "projectRepository.ListProjects").
			Msg("failed to execute project listing")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0, 16)
	for rows.Next() {
		var project models.Project
		if err = rows.Scan(
			&project.ID,
			&project.Name,
			&project.Description,
			&project.Status,
			&project.CreatedAt,
			&project.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		projects = append(projects, project)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projects, nil
}

func (r *projectRepository) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, updateProject,
		project.Name,
		project.Description,
		string(project.Status),
		project.UpdatedAt,
		project.ID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "projectRepository.UpdateProject").
			Str("project_id", project.ID).
			Msg("failed to update project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return models.Project{}, ErrNotFound
	}

	return project, nil
}

func (r *projectRepository) DeleteProject(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteProject, id); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *projectRepository) AddProjectLink(ctx context.Context, link models.ProjectLink) error {
	_, err := r.db.ExecContext(ctx, addProjectLink,
		link.ID,
		link.ProjectID,
		link.Title,
		link.URL,
		link.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *projectRepository) ListProjectLinks(ctx context.Context, projectID string) ([]models.ProjectLink, error) {
	rows, err := r.db.QueryContext(ctx, listProjectLinks, projectID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	links := make([]models.ProjectLink, 0, 8)
	for rows.Next() {
		var link models.ProjectLink
		if err = rows.Scan(&link.ID, &link.ProjectID, &link.Title, &link.URL, &link.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		links = append(links, link)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return links, nil
}

func (r *projectRepository) DeleteProjectLink(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteProjectLink, id); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
