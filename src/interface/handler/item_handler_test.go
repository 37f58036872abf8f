package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kertapati/horizon-sub000/src/domain"
	"github.com/kertapati/horizon-sub000/src/interface/handler"
	"github.com/kertapati/horizon-sub000/src/usecase"
)

// MockItemUsecase is a mock implementation of usecase.ItemUsecase
type MockItemUsecase struct {
	mock.Mock
}

func (m *MockItemUsecase) CreateItem(ctx context.Context, userID int, req usecase.CreateItemRequest) (*domain.Item, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemUsecase) GetItem(ctx context.Context, userID, id int) (*domain.Item, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemUsecase) ListItems(ctx context.Context, userID int, filter domain.ItemFilter) ([]domain.Item, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemUsecase) ListArchived(ctx context.Context, userID int) ([]domain.Item, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemUsecase) UpdateItem(ctx context.Context, userID, id int, req usecase.UpdateItemRequest) (*domain.Item, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemUsecase) SetStatus(ctx context.Context, userID, id int, status domain.Status) (*domain.Item, error) {
	args := m.Called(ctx, userID, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemUsecase) SetPriority(ctx context.Context, userID, id int, priority bool) (*domain.Item, error) {
	args := m.Called(ctx, userID, id, priority)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemUsecase) BulkSetStatus(ctx context.Context, userID int, ids []int, status domain.Status) error {
	args := m.Called(ctx, userID, ids, status)
	return args.Error(0)
}

func (m *MockItemUsecase) ArchiveItem(ctx context.Context, userID, id int) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockItemUsecase) RestoreItem(ctx context.Context, userID, id int) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockItemUsecase) DeleteItem(ctx context.Context, userID, id int) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func setupRouter(mockUsecase *MockItemUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewItemHandler(mockUsecase, quietLogger())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", 1)
		c.Next()
	})
	r.POST("/api/items", h.CreateItem)
	r.GET("/api/items/:id", h.GetItem)
	r.PATCH("/api/items/:id/status", h.SetStatus)
	r.DELETE("/api/items/:id", h.DeleteItem)
	return r
}

func TestItemHandler_CreateItem(t *testing.T) {
	mockUsecase := new(MockItemUsecase)
	mockUsecase.On("CreateItem", mock.Anything, 1, mock.AnythingOfType("usecase.CreateItemRequest")).
		Return(&domain.Item{ID: 1, Title: "Climb Mt Fuji"}, nil)

	r := setupRouter(mockUsecase)
	body := `{"title":"Climb Mt Fuji","categories":["adventure"],"owner":"joint"}`
	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var item domain.Item
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, "Climb Mt Fuji", item.Title)
	mockUsecase.AssertExpectations(t)
}

func TestItemHandler_CreateItem_InvalidOwner(t *testing.T) {
	mockUsecase := new(MockItemUsecase)

	r := setupRouter(mockUsecase)
	body := `{"title":"Climb Mt Fuji","categories":["adventure"],"owner":"both"}`
	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUsecase.AssertNotCalled(t, "CreateItem")
}

func TestItemHandler_GetItem_NotFound(t *testing.T) {
	mockUsecase := new(MockItemUsecase)
	mockUsecase.On("GetItem", mock.Anything, 1, 42).Return(nil, usecase.ErrItemNotFound)

	r := setupRouter(mockUsecase)
	req := httptest.NewRequest(http.MethodGet, "/api/items/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItemHandler_GetItem_BadID(t *testing.T) {
	mockUsecase := new(MockItemUsecase)

	r := setupRouter(mockUsecase)
	req := httptest.NewRequest(http.MethodGet, "/api/items/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUsecase.AssertNotCalled(t, "GetItem")
}

func TestItemHandler_SetStatus(t *testing.T) {
	mockUsecase := new(MockItemUsecase)
	mockUsecase.On("SetStatus", mock.Anything, 1, 5, domain.StatusCompleted).
		Return(&domain.Item{ID: 5, Status: domain.StatusCompleted}, nil)

	r := setupRouter(mockUsecase)
	req := httptest.NewRequest(http.MethodPatch, "/api/items/5/status", strings.NewReader(`{"status":"completed"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUsecase.AssertExpectations(t)
}

func TestItemHandler_DeleteItem_NotArchived(t *testing.T) {
	mockUsecase := new(MockItemUsecase)
	mockUsecase.On("DeleteItem", mock.Anything, 1, 5).Return(usecase.ErrItemNotArchived)

	r := setupRouter(mockUsecase)
	req := httptest.NewRequest(http.MethodDelete, "/api/items/5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestItemHandler_DeleteItem_Archived(t *testing.T) {
	mockUsecase := new(MockItemUsecase)
	mockUsecase.On("DeleteItem", mock.Anything, 1, 5).Return(nil)

	r := setupRouter(mockUsecase)
	req := httptest.NewRequest(http.MethodDelete, "/api/items/5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockUsecase.AssertExpectations(t)
}
