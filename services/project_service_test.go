package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/ptlog/models"
	"github.com/blogem/ptlog/repositories/mocks"
)

// ProjectServiceTestSuite is a test suite for ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	service         ProjectService
	mockProjectRepo *mocks.MockProjectRepository
}

// SetupTest sets up the test suite before each test
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.mockProjectRepo = mocks.NewMockProjectRepository(suite.T())
	suite.service = NewProjectService(suite.mockProjectRepo, nil)
}

// TestCreate_TrimsName tests that the stored name is trimmed
func (suite *ProjectServiceTestSuite) TestCreate_TrimsName() {
	suite.mockProjectRepo.EXPECT().Create(mock.Anything, "Alpha").Return(nil)

	name, err := suite.service.Create(context.Background(), &models.ProjectForm{Projekt: "  Alpha \t"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Alpha", name)
}

// TestCreate_Blank tests that blank names are rejected before the repository
func (suite *ProjectServiceTestSuite) TestCreate_Blank() {
	_, err := suite.service.Create(context.Background(), &models.ProjectForm{Projekt: "   "})
	assert.ErrorIs(suite.T(), err, models.ErrValidation)
}

// TestCreate_Duplicate tests that duplicates pass through as persistence errors
func (suite *ProjectServiceTestSuite) TestCreate_Duplicate() {
	dup := errors.Join(models.ErrDuplicate, errors.New("UNIQUE constraint failed"))
	suite.mockProjectRepo.EXPECT().Create(mock.Anything, "Alpha").Return(dup)

	_, err := suite.service.Create(context.Background(), &models.ProjectForm{Projekt: "Alpha"})
	assert.ErrorIs(suite.T(), err, models.ErrDuplicate)
}

// TestList tests both listings
func (suite *ProjectServiceTestSuite) TestList() {
	suite.mockProjectRepo.EXPECT().List(mock.Anything, false).Return([]string{"Alpha", "Beta"}, nil)
	suite.mockProjectRepo.EXPECT().List(mock.Anything, true).Return([]string{"Gamma"}, nil)

	active, err := suite.service.List(context.Background(), false)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"Alpha", "Beta"}, active)

	archived, err := suite.service.List(context.Background(), true)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"Gamma"}, archived)
}

// TestArchiveAndRestore tests the archive flag toggles
func (suite *ProjectServiceTestSuite) TestArchiveAndRestore() {
	suite.mockProjectRepo.EXPECT().SetArchived(mock.Anything, "Alpha", true).Return(int64(1), nil)
	suite.mockProjectRepo.EXPECT().SetArchived(mock.Anything, "Alpha", false).Return(int64(1), nil)

	rows, err := suite.service.Archive(context.Background(), "Alpha")
	assert.NoError(suite.T(), err)
	assert.EqualValues(suite.T(), 1, rows)

	rows, err = suite.service.Restore(context.Background(), "Alpha")
	assert.NoError(suite.T(), err)
	assert.EqualValues(suite.T(), 1, rows)
}

// TestArchive_MissingProjectIsNotAnError tests the silent no-op on a missing project
func (suite *ProjectServiceTestSuite) TestArchive_MissingProjectIsNotAnError() {
	suite.mockProjectRepo.EXPECT().SetArchived(mock.Anything, "Nope", true).Return(int64(0), nil)

	rows, err := suite.service.Archive(context.Background(), "Nope")
	assert.NoError(suite.T(), err)
	assert.Zero(suite.T(), rows)
}

// TestDelete tests the cascade delete and its not-found case
func (suite *ProjectServiceTestSuite) TestDelete() {
	suite.mockProjectRepo.EXPECT().Delete(mock.Anything, "Alpha").Return(int64(5), nil)
	suite.mockProjectRepo.EXPECT().Delete(mock.Anything, "Ghost").Return(int64(0), models.ErrNotFound)

	logs, err := suite.service.Delete(context.Background(), "Alpha")
	assert.NoError(suite.T(), err)
	assert.EqualValues(suite.T(), 5, logs)

	_, err = suite.service.Delete(context.Background(), "Ghost")
	assert.ErrorIs(suite.T(), err, models.ErrNotFound)

	_, err = suite.service.Delete(context.Background(), "")
	assert.ErrorIs(suite.T(), err, models.ErrValidation)
}

// TestProjectServiceTestSuite runs the project service test suite
func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
