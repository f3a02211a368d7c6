package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lockbox/internal/models"
	"lockbox/internal/repositories"
	"lockbox/internal/schemas"
	"lockbox/internal/services"
)

// MockNoteRepository is a mock implementation of repositories.NoteRepository.
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Create(ctx context.Context, note *models.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockNoteRepository) GetAll(ctx context.Context) ([]models.Note, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockNoteRepository) Update(ctx context.Context, note *models.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestNoteService_CreateNote(t *testing.T) {
	mockRepo := new(MockNoteRepository)
	service := services.NewNoteService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *models.Note) bool {
		return n.Content == "Shopping list: milk, bread, eggs"
	})).Return(nil).Once()

	note, err := service.CreateNote(context.Background(), schemas.NoteCreate{
		Content: "Shopping list: milk, bread, eggs",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Shopping list: milk, bread, eggs", note.Content)
	mockRepo.AssertExpectations(t)
}

func TestNoteService_GetNoteByID(t *testing.T) {
	mockRepo := new(MockNoteRepository)
	service := services.NewNoteService(mockRepo)

	expected := &models.Note{ID: uuid.New(), Content: "remember this"}

	mockRepo.On("GetByID", mock.Anything, expected.ID).Return(expected, nil).Once()
	note, err := service.GetNoteByID(context.Background(), expected.ID)
	assert.NoError(t, err)
	assert.Equal(t, expected, note)

	missing := uuid.New()
	mockRepo.On("GetByID", mock.Anything, missing).Return(nil, repositories.ErrNotFound).Once()
	note, err = service.GetNoteByID(context.Background(), missing)
	assert.Nil(t, note)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestNoteService_GetAllNotes(t *testing.T) {
	mockRepo := new(MockNoteRepository)
	service := services.NewNoteService(mockRepo)

	expected := []models.Note{
		{ID: uuid.New(), Content: "first"},
		{ID: uuid.New(), Content: "second"},
	}

	mockRepo.On("GetAll", mock.Anything).Return(expected, nil).Once()

	notes, err := service.GetAllNotes(context.Background())

	assert.NoError(t, err)
	assert.Len(t, notes, 2)
	assert.Equal(t, expected, notes)
	mockRepo.AssertExpectations(t)
}

func TestNoteService_UpdateNote(t *testing.T) {
	mockRepo := new(MockNoteRepository)
	service := services.NewNoteService(mockRepo)

	stored := &models.Note{ID: uuid.New(), Content: "draft"}

	mockRepo.On("GetByID", mock.Anything, stored.ID).Return(stored, nil).Once()
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(n *models.Note) bool {
		return n.ID == stored.ID && n.Content == "final"
	})).Return(nil).Once()

	note, err := service.UpdateNote(context.Background(), stored.ID, schemas.NoteUpdate{Content: "final"})

	assert.NoError(t, err)
	assert.Equal(t, "final", note.Content)
	mockRepo.AssertExpectations(t)
}

func TestNoteService_UpdateNote_NotFound(t *testing.T) {
	mockRepo := new(MockNoteRepository)
	service := services.NewNoteService(mockRepo)

	missing := uuid.New()
	mockRepo.On("GetByID", mock.Anything, missing).Return(nil, repositories.ErrNotFound).Once()

	note, err := service.UpdateNote(context.Background(), missing, schemas.NoteUpdate{Content: "final"})

	assert.Nil(t, note)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestNoteService_DeleteNote(t *testing.T) {
	mockRepo := new(MockNoteRepository)
	service := services.NewNoteService(mockRepo)

	id := uuid.New()
	mockRepo.On("Delete", mock.Anything, id).Return(nil).Once()
	assert.NoError(t, service.DeleteNote(context.Background(), id))

	missing := uuid.New()
	mockRepo.On("Delete", mock.Anything, missing).Return(repositories.ErrNotFound).Once()
	assert.ErrorIs(t, service.DeleteNote(context.Background(), missing), repositories.ErrNotFound)

	mockRepo.AssertExpectations(t)
}
