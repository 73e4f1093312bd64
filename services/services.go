package services

import (
	"log/slog"

	"github.com/blogem/ptlog/repositories"
)

// Services holds all service instances
type Services struct {
	Logs     LogService
	Projects ProjectService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, logger *slog.Logger) *Services {
	return &Services{
		Logs:     NewLogService(repos.Logs, logger),
		Projects: NewProjectService(repos.Projects, logger),
	}
}
