package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/blogem/ptlog/models"
	"github.com/blogem/ptlog/repositories"
	"github.com/blogem/ptlog/userctx"
)

// LogService interface defines test log business logic
type LogService interface {
	InsertLog(ctx context.Context, form *models.LogEntryForm) (string, error)
	InsertPacing(ctx context.Context, form *models.PacingForm) (string, error)
	InsertConfig(ctx context.Context, form *models.ConfigForm) (string, error)
	ListLogs(ctx context.Context, project string) ([]models.LogEntry, error)
	UpdateAnalysis(ctx context.Context, form *models.AnalysisForm) (int64, error)
	DeleteLog(ctx context.Context, form *models.DeleteLogForm) (int64, error)
}

// logService implements LogService interface
type logService struct {
	logRepo repositories.LogRepository
	logger  *slog.Logger
	now     func() time.Time
}

// NewLogService creates a new log service
func NewLogService(logRepo repositories.LogRepository, logger *slog.Logger) LogService {
	return newLogService(logRepo, logger, time.Now)
}

func newLogService(logRepo repositories.LogRepository, logger *slog.Logger, now func() time.Time) *logService {
	if logger == nil {
		logger = slog.Default()
	}
	return &logService{logRepo: logRepo, logger: logger, now: now}
}

// InsertLog stores a test run under the next name of its project
func (s *logService) InsertLog(ctx context.Context, form *models.LogEntryForm) (string, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return "", errs
	}

	timestamp, err := models.ParseTimestamp(form.Datum, models.Stockholm)
	if err != nil {
		return "", fmt.Errorf("failed to parse Datum: %w", err)
	}

	prefix, known := Prefix(form.Typ)
	if !known {
		s.logger.WarnContext(ctx, "unrecognized test type, using default prefix",
			"type", form.Typ, "prefix", prefix, "project", form.Projekt)
	}

	entry := &models.LogEntry{
		Timestamp: timestamp,
		Type:      form.Typ,
		Purpose:   form.Syfte,
		Project:   strings.TrimSpace(form.Projekt),
		Tester:    form.Testare,
	}

	return s.insert(ctx, entry, Namer(prefix, form.Testnamn))
}

// InsertPacing records the pacing configuration of a project
func (s *logService) InsertPacing(ctx context.Context, form *models.PacingForm) (string, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return "", errs
	}

	entry := &models.LogEntry{
		Timestamp: s.now().In(models.Stockholm),
		Type:      models.TypeConfiguration,
		Purpose:   form.Summary(),
		Project:   strings.TrimSpace(form.Projekt),
		Tester:    s.tester(ctx, form.Testare),
	}

	return s.insert(ctx, entry, Namer(PrefixPacing, PacingSuffix(form.Testnamn)))
}

// InsertConfig records a general configuration note of a project
func (s *logService) InsertConfig(ctx context.Context, form *models.ConfigForm) (string, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return "", errs
	}

	entry := &models.LogEntry{
		Timestamp: s.now().In(models.Stockholm),
		Type:      models.TypeConfiguration,
		Purpose:   form.Beskrivning,
		Project:   strings.TrimSpace(form.Projekt),
		Tester:    s.tester(ctx, form.Testare),
	}

	return s.insert(ctx, entry, Namer(PrefixGeneral, GeneralSuffix(form.Testnamn)))
}

func (s *logService) insert(ctx context.Context, entry *models.LogEntry, name repositories.NameFunc) (string, error) {
	testName, err := s.logRepo.InsertNext(ctx, entry, name)
	if err != nil {
		return "", err
	}

	s.logger.InfoContext(ctx, "inserted test log", "project", entry.Project, "testnamn", testName)
	return testName, nil
}

// tester falls back to the authenticated user when no tester was supplied
func (s *logService) tester(ctx context.Context, tester string) string {
	if tester = strings.TrimSpace(tester); tester != "" {
		return tester
	}
	return userctx.GetUserEmail(ctx)
}

// ListLogs returns the logs of a project, newest first
func (s *logService) ListLogs(ctx context.Context, project string) ([]models.LogEntry, error) {
	if errs := models.ValidateProjectName(project); errs.HasErrors() {
		return nil, errs
	}
	return s.logRepo.ListByProject(ctx, strings.TrimSpace(project))
}

// UpdateAnalysis replaces the analysis of one log
func (s *logService) UpdateAnalysis(ctx context.Context, form *models.AnalysisForm) (int64, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return 0, errs
	}
	return s.logRepo.UpdateAnalysis(ctx, strings.TrimSpace(form.Projekt), form.Testnamn, form.Analys)
}

// DeleteLog removes one log
func (s *logService) DeleteLog(ctx context.Context, form *models.DeleteLogForm) (int64, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return 0, errs
	}

	rows, err := s.logRepo.Delete(ctx, strings.TrimSpace(form.Projekt), form.Testnamn)
	if err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "deleted test log", "project", form.Projekt, "testnamn", form.Testnamn)
	return rows, nil
}
