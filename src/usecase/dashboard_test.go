package usecase_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kertapati/horizon-sub000/src/domain"
	"github.com/kertapati/horizon-sub000/src/usecase"
	"github.com/kertapati/horizon-sub000/src/view"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestDashboardUsecase_Stats(t *testing.T) {
	items := []domain.Item{
		{ID: 1, Categories: []domain.Category{domain.CategoryAdventure}, Status: domain.StatusIdea, Owner: domain.OwnerJoint},
		{ID: 2, Categories: []domain.Category{domain.CategoryFoodDrink}, Status: domain.StatusCompleted, Owner: domain.OwnerJoint},
	}

	mockRepo := new(MockItemRepository)
	mockRepo.On("List", mock.Anything, 1, domain.ItemFilter{}).Return(items, nil)

	u := usecase.NewDashboardUsecase(mockRepo, testLogger())
	result, err := u.Stats(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Categories[domain.CategoryAdventure].Total)
	assert.Equal(t, 1, result.Categories[domain.CategoryFoodDrink].Completed)
	assert.Equal(t, 50, result.Insights.CompletionPercentage)
	mockRepo.AssertExpectations(t)
}

func TestDashboardUsecase_View_SplitsTopFocus(t *testing.T) {
	items := []domain.Item{
		{ID: 1, Title: "Summit Kilimanjaro", Categories: []domain.Category{domain.CategoryAdventure}, Status: domain.StatusIdea, IsPriority: true},
		{ID: 2, Title: "Scuba diving", Categories: []domain.Category{domain.CategoryAdventure}, Status: domain.StatusIdea},
		{ID: 3, Title: "Learn pottery", Categories: []domain.Category{domain.CategoryAdventure}, Status: domain.StatusIdea},
	}

	mockRepo := new(MockItemRepository)
	mockRepo.On("List", mock.Anything, 1, domain.ItemFilter{}).Return(items, nil)

	u := usecase.NewDashboardUsecase(mockRepo, testLogger())
	result, err := u.View(context.Background(), 1, view.Query{Mode: view.ModeAll, Category: domain.CategoryAdventure})

	assert.NoError(t, err)
	assert.Len(t, result.TopFocus, 1)
	assert.Equal(t, 1, result.TopFocus[0].ID)
	assert.Len(t, result.Items, 3)

	// groups cover only the non-priority remainder
	grouped := 0
	for _, g := range result.Groups {
		grouped += len(g.Items)
		for _, item := range g.Items {
			assert.NotEqual(t, 1, item.ID)
		}
	}
	assert.Equal(t, 2, grouped)
}

func TestDashboardUsecase_View_NoGroupsWithoutCategory(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockRepo.On("List", mock.Anything, 1, domain.ItemFilter{}).Return([]domain.Item{}, nil)

	u := usecase.NewDashboardUsecase(mockRepo, testLogger())
	result, err := u.View(context.Background(), 1, view.Query{Mode: view.ModeAll})

	assert.NoError(t, err)
	assert.Nil(t, result.Groups)
}

func TestDashboardUsecase_View_InvalidInput(t *testing.T) {
	mockRepo := new(MockItemRepository)
	u := usecase.NewDashboardUsecase(mockRepo, testLogger())

	_, err := u.View(context.Background(), 1, view.Query{Mode: "archive"})
	assert.ErrorIs(t, err, usecase.ErrInvalidViewMode)

	_, err = u.View(context.Background(), 1, view.Query{Mode: view.ModeAll, Category: "misc"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCategory)

	_, err = u.View(context.Background(), 1, view.Query{Mode: view.ModeOwnership, Owner: "both"})
	assert.ErrorIs(t, err, usecase.ErrInvalidOwner)

	mockRepo.AssertNotCalled(t, "List")
}

func TestDashboardUsecase_Groups(t *testing.T) {
	items := []domain.Item{
		{ID: 1, Title: "Scuba diving Great Barrier Reef", Categories: []domain.Category{domain.CategoryAdventure}, Status: domain.StatusIdea},
		{ID: 2, Title: "Summit Kilimanjaro", Categories: []domain.Category{domain.CategoryAdventure}, Status: domain.StatusIdea},
		{ID: 3, Title: "Old conquest", Categories: []domain.Category{domain.CategoryAdventure}, Status: domain.StatusCompleted},
		{ID: 4, Title: "Visit Rome", Categories: []domain.Category{domain.CategoryTravel}, Status: domain.StatusIdea},
		{ID: 5, Title: "Shark cage dive", Categories: []domain.Category{domain.CategoryAdventure}, Status: domain.StatusIdea, Archived: true},
	}

	mockRepo := new(MockItemRepository)
	mockRepo.On("List", mock.Anything, 1, domain.ItemFilter{}).Return(items, nil)

	u := usecase.NewDashboardUsecase(mockRepo, testLogger())
	result, err := u.Groups(context.Background(), 1, domain.CategoryAdventure)

	assert.NoError(t, err)
	assert.Len(t, result.Groups, 2)
	assert.Equal(t, "Water", result.Groups[0].Name)
	assert.Equal(t, 1, result.Groups[0].Items[0].ID)
	assert.Equal(t, "Mountain", result.Groups[1].Name)
	assert.Equal(t, 2, result.Groups[1].Items[0].ID)
}

func TestDashboardUsecase_Groups_InvalidCategory(t *testing.T) {
	mockRepo := new(MockItemRepository)
	u := usecase.NewDashboardUsecase(mockRepo, testLogger())

	_, err := u.Groups(context.Background(), 1, "misc")
	assert.ErrorIs(t, err, usecase.ErrInvalidCategory)
}
