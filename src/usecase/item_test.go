package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kertapati/horizon-sub000/src/domain"
	"github.com/kertapati/horizon-sub000/src/usecase"
)

// MockItemRepository is a mock implementation of domain.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) GetByID(ctx context.Context, userID, id int) (*domain.Item, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) List(ctx context.Context, userID int, filter domain.ItemFilter) ([]domain.Item, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) ListArchived(ctx context.Context, userID int) ([]domain.Item, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, userID, id int, item *domain.Item) (*domain.Item, error) {
	args := m.Called(ctx, userID, id, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) UpdateStatus(ctx context.Context, userID int, ids []int, status domain.Status) error {
	args := m.Called(ctx, userID, ids, status)
	return args.Error(0)
}

func (m *MockItemRepository) Archive(ctx context.Context, userID, id int) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockItemRepository) Restore(ctx context.Context, userID, id int) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, userID, id int) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func validCreateRequest() usecase.CreateItemRequest {
	return usecase.CreateItemRequest{
		Title:      "Climb Mt Fuji",
		Categories: []domain.Category{domain.CategoryAdventure},
		Owner:      domain.OwnerJoint,
	}
}

func TestItemUsecase_CreateItem(t *testing.T) {
	year := 2027
	badYear := 1999

	tests := []struct {
		name          string
		request       usecase.CreateItemRequest
		expectedError error
	}{
		{
			name:    "successful creation",
			request: validCreateRequest(),
		},
		{
			name: "empty title",
			request: usecase.CreateItemRequest{
				Categories: []domain.Category{domain.CategoryAdventure},
				Owner:      domain.OwnerJoint,
			},
			expectedError: usecase.ErrInvalidTitle,
		},
		{
			name: "no categories",
			request: usecase.CreateItemRequest{
				Title: "Climb Mt Fuji",
				Owner: domain.OwnerJoint,
			},
			expectedError: usecase.ErrEmptyCategories,
		},
		{
			name: "unknown category",
			request: usecase.CreateItemRequest{
				Title:      "Climb Mt Fuji",
				Categories: []domain.Category{"misc"},
				Owner:      domain.OwnerJoint,
			},
			expectedError: usecase.ErrInvalidCategory,
		},
		{
			name: "missing owner",
			request: usecase.CreateItemRequest{
				Title:      "Climb Mt Fuji",
				Categories: []domain.Category{domain.CategoryAdventure},
			},
			expectedError: usecase.ErrInvalidOwner,
		},
		{
			name: "invalid region",
			request: func() usecase.CreateItemRequest {
				req := validCreateRequest()
				req.Region = "atlantis"
				return req
			}(),
			expectedError: usecase.ErrInvalidRegion,
		},
		{
			name: "unsupported target year",
			request: func() usecase.CreateItemRequest {
				req := validCreateRequest()
				req.TargetYear = &badYear
				return req
			}(),
			expectedError: usecase.ErrUnsupportedYear,
		},
		{
			name: "supported target year",
			request: func() usecase.CreateItemRequest {
				req := validCreateRequest()
				req.TargetYear = &year
				return req
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockItemRepository)
			if tt.expectedError == nil {
				mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Item")).
					Return(&domain.Item{ID: 1}, nil)
			}

			u := usecase.NewItemUsecase(mockRepo)
			item, err := u.CreateItem(context.Background(), 1, tt.request)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, item)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, item)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestItemUsecase_CreateItem_DefaultsToIdea(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(item *domain.Item) bool {
		return item.Status == domain.StatusIdea && item.CompletedDate == nil
	})).Return(&domain.Item{ID: 1, Status: domain.StatusIdea}, nil)

	u := usecase.NewItemUsecase(mockRepo)
	_, err := u.CreateItem(context.Background(), 1, validCreateRequest())

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestItemUsecase_CreateItem_CompletedStampsDate(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(item *domain.Item) bool {
		return item.Status == domain.StatusCompleted && item.CompletedDate != nil
	})).Return(&domain.Item{ID: 1}, nil)

	req := validCreateRequest()
	req.Status = domain.StatusCompleted

	u := usecase.NewItemUsecase(mockRepo)
	_, err := u.CreateItem(context.Background(), 1, req)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestItemUsecase_GetItem_NotFound(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockRepo.On("GetByID", mock.Anything, 1, 42).Return(nil, domain.ErrNotFound)

	u := usecase.NewItemUsecase(mockRepo)
	item, err := u.GetItem(context.Background(), 1, 42)

	assert.ErrorIs(t, err, usecase.ErrItemNotFound)
	assert.Nil(t, item)
}

func TestItemUsecase_UpdateItem_PartialFields(t *testing.T) {
	existing := &domain.Item{
		ID:         1,
		UserID:     1,
		Title:      "Old title",
		Categories: []domain.Category{domain.CategoryAdventure},
		Status:     domain.StatusIdea,
		Owner:      domain.OwnerJoint,
	}

	mockRepo := new(MockItemRepository)
	mockRepo.On("GetByID", mock.Anything, 1, 1).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, 1, 1, mock.MatchedBy(func(item *domain.Item) bool {
		return item.Title == "New title" &&
			item.Status == domain.StatusIdea &&
			item.Owner == domain.OwnerJoint
	})).Return(&domain.Item{ID: 1, Title: "New title"}, nil)

	title := "New title"
	u := usecase.NewItemUsecase(mockRepo)
	item, err := u.UpdateItem(context.Background(), 1, 1, usecase.UpdateItemRequest{Title: &title})

	assert.NoError(t, err)
	assert.Equal(t, "New title", item.Title)
	mockRepo.AssertExpectations(t)
}

func TestItemUsecase_UpdateItem_ClearTargetYear(t *testing.T) {
	year := 2027
	existing := &domain.Item{
		ID:         1,
		Categories: []domain.Category{domain.CategoryAdventure},
		Status:     domain.StatusIdea,
		Owner:      domain.OwnerJoint,
		TargetYear: &year,
	}

	mockRepo := new(MockItemRepository)
	mockRepo.On("GetByID", mock.Anything, 1, 1).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, 1, 1, mock.MatchedBy(func(item *domain.Item) bool {
		return item.TargetYear == nil
	})).Return(&domain.Item{ID: 1}, nil)

	u := usecase.NewItemUsecase(mockRepo)
	_, err := u.UpdateItem(context.Background(), 1, 1, usecase.UpdateItemRequest{ClearTargetYear: true})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestItemUsecase_UpdateItem_InvalidTitle(t *testing.T) {
	mockRepo := new(MockItemRepository)

	empty := ""
	u := usecase.NewItemUsecase(mockRepo)
	_, err := u.UpdateItem(context.Background(), 1, 1, usecase.UpdateItemRequest{Title: &empty})

	assert.ErrorIs(t, err, usecase.ErrInvalidTitle)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestItemUsecase_SetStatus_CompletedStampsDate(t *testing.T) {
	existing := &domain.Item{ID: 1, Status: domain.StatusPlanned, Owner: domain.OwnerJoint}

	mockRepo := new(MockItemRepository)
	mockRepo.On("GetByID", mock.Anything, 1, 1).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, 1, 1, mock.MatchedBy(func(item *domain.Item) bool {
		return item.Status == domain.StatusCompleted && item.CompletedDate != nil
	})).Return(&domain.Item{ID: 1, Status: domain.StatusCompleted}, nil)

	u := usecase.NewItemUsecase(mockRepo)
	item, err := u.SetStatus(context.Background(), 1, 1, domain.StatusCompleted)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, item.Status)
	mockRepo.AssertExpectations(t)
}

func TestItemUsecase_SetStatus_LeavingCompletedClearsAdvisoryFields(t *testing.T) {
	completedAt := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	existing := &domain.Item{
		ID:              1,
		Status:          domain.StatusCompleted,
		CompletedDate:   &completedAt,
		CompletionNotes: "amazing day",
		Owner:           domain.OwnerJoint,
	}

	mockRepo := new(MockItemRepository)
	mockRepo.On("GetByID", mock.Anything, 1, 1).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, 1, 1, mock.MatchedBy(func(item *domain.Item) bool {
		return item.Status == domain.StatusPlanned &&
			item.CompletedDate == nil &&
			item.CompletionNotes == ""
	})).Return(&domain.Item{ID: 1, Status: domain.StatusPlanned}, nil)

	u := usecase.NewItemUsecase(mockRepo)
	_, err := u.SetStatus(context.Background(), 1, 1, domain.StatusPlanned)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestItemUsecase_SetStatus_InvalidStatus(t *testing.T) {
	mockRepo := new(MockItemRepository)

	u := usecase.NewItemUsecase(mockRepo)
	_, err := u.SetStatus(context.Background(), 1, 1, "done")

	assert.ErrorIs(t, err, usecase.ErrInvalidStatus)
	mockRepo.AssertNotCalled(t, "GetByID")
}

func TestItemUsecase_SetPriority(t *testing.T) {
	existing := &domain.Item{ID: 1, Owner: domain.OwnerJoint}

	mockRepo := new(MockItemRepository)
	mockRepo.On("GetByID", mock.Anything, 1, 1).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, 1, 1, mock.MatchedBy(func(item *domain.Item) bool {
		return item.IsPriority
	})).Return(&domain.Item{ID: 1, IsPriority: true}, nil)

	u := usecase.NewItemUsecase(mockRepo)
	item, err := u.SetPriority(context.Background(), 1, 1, true)

	assert.NoError(t, err)
	assert.True(t, item.IsPriority)
	mockRepo.AssertExpectations(t)
}

func TestItemUsecase_BulkSetStatus(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockRepo.On("UpdateStatus", mock.Anything, 1, []int{1, 2, 3}, domain.StatusPlanned).Return(nil)

	u := usecase.NewItemUsecase(mockRepo)

	assert.NoError(t, u.BulkSetStatus(context.Background(), 1, []int{1, 2, 3}, domain.StatusPlanned))
	assert.ErrorIs(t, u.BulkSetStatus(context.Background(), 1, nil, domain.StatusPlanned), usecase.ErrEmptyBulkSelection)
	assert.ErrorIs(t, u.BulkSetStatus(context.Background(), 1, []int{1}, "done"), usecase.ErrInvalidStatus)
	mockRepo.AssertExpectations(t)
}

func TestItemUsecase_DeleteItem_RequiresArchived(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockRepo.On("GetByID", mock.Anything, 1, 1).Return(&domain.Item{ID: 1, Archived: false}, nil)

	u := usecase.NewItemUsecase(mockRepo)
	err := u.DeleteItem(context.Background(), 1, 1)

	assert.ErrorIs(t, err, usecase.ErrItemNotArchived)
	mockRepo.AssertNotCalled(t, "Delete")
}

func TestItemUsecase_DeleteItem_Archived(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockRepo.On("GetByID", mock.Anything, 1, 1).Return(&domain.Item{ID: 1, Archived: true}, nil)
	mockRepo.On("Delete", mock.Anything, 1, 1).Return(nil)

	u := usecase.NewItemUsecase(mockRepo)

	assert.NoError(t, u.DeleteItem(context.Background(), 1, 1))
	mockRepo.AssertExpectations(t)
}

func TestItemUsecase_ListItems_InvalidFilter(t *testing.T) {
	mockRepo := new(MockItemRepository)

	u := usecase.NewItemUsecase(mockRepo)
	_, err := u.ListItems(context.Background(), 1, domain.ItemFilter{Category: "misc"})

	assert.ErrorIs(t, err, usecase.ErrInvalidCategory)
	mockRepo.AssertNotCalled(t, "List")
}
