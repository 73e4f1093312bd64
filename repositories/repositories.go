package repositories

import (
	"github.com/blogem/ptlog/database"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Logs     LogRepository
	Projects ProjectRepository
	Audit    AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Logs:     NewLogRepository(db),
		Projects: NewProjectRepository(db),
		Audit:    NewAuditRepository(db),
	}
}
