package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/blogem/ptlog/models"
	"github.com/blogem/ptlog/repositories"
)

// ProjectService interface defines project business logic
type ProjectService interface {
	Create(ctx context.Context, form *models.ProjectForm) (string, error)
	List(ctx context.Context, archived bool) ([]string, error)
	Archive(ctx context.Context, name string) (int64, error)
	Restore(ctx context.Context, name string) (int64, error)
	Delete(ctx context.Context, name string) (int64, error)
}

// projectService implements ProjectService interface
type projectService struct {
	projectRepo repositories.ProjectRepository
	logger      *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo repositories.ProjectRepository, logger *slog.Logger) ProjectService {
	if logger == nil {
		logger = slog.Default()
	}
	return &projectService{projectRepo: projectRepo, logger: logger}
}

// Create creates an active project and returns its trimmed name
func (s *projectService) Create(ctx context.Context, form *models.ProjectForm) (string, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return "", errs
	}

	name := form.Name()
	if err := s.projectRepo.Create(ctx, name); err != nil {
		return "", err
	}

	s.logger.InfoContext(ctx, "created project", "project", name)
	return name, nil
}

// List returns active or archived project names
func (s *projectService) List(ctx context.Context, archived bool) ([]string, error) {
	return s.projectRepo.List(ctx, archived)
}

// Archive hides a project from the active listing. A missing project is not
// an error and affects zero rows.
func (s *projectService) Archive(ctx context.Context, name string) (int64, error) {
	return s.setArchived(ctx, name, true)
}

// Restore moves an archived project back to the active listing
func (s *projectService) Restore(ctx context.Context, name string) (int64, error) {
	return s.setArchived(ctx, name, false)
}

func (s *projectService) setArchived(ctx context.Context, name string, archived bool) (int64, error) {
	if errs := models.ValidateProjectName(name); errs.HasErrors() {
		return 0, errs
	}

	name = strings.TrimSpace(name)
	rows, err := s.projectRepo.SetArchived(ctx, name, archived)
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		s.logger.DebugContext(ctx, "archive flag unchanged, no such project", "project", name)
	}
	return rows, nil
}

// Delete removes a project with all of its logs and returns the number of
// logs removed
func (s *projectService) Delete(ctx context.Context, name string) (int64, error) {
	if errs := models.ValidateProjectName(name); errs.HasErrors() {
		return 0, errs
	}

	name = strings.TrimSpace(name)
	logs, err := s.projectRepo.Delete(ctx, name)
	if err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "deleted project", "project", name, "logs", logs)
	return logs, nil
}
