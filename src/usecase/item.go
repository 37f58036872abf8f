package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/kertapati/horizon-sub000/src/domain"
	"github.com/kertapati/horizon-sub000/src/taxonomy"
)

var (
	ErrItemNotFound       = errors.New("item not found")
	ErrInvalidTitle       = errors.New("title is required and must be less than 200 characters")
	ErrEmptyCategories    = errors.New("at least one category is required")
	ErrInvalidCategory    = errors.New("category is not in the taxonomy")
	ErrInvalidStatus      = errors.New("status must be idea, planned, in_progress, or completed")
	ErrInvalidOwner       = errors.New("owner must be joint, partner_a, or partner_b")
	ErrInvalidLocation    = errors.New("location type must be local_city, home_country, or international")
	ErrInvalidRegion      = errors.New("region is not a known world region")
	ErrInvalidSeason      = errors.New("season must be spring, summer, autumn, or winter")
	ErrInvalidTimeframe   = errors.New("timeframe must be this_year, next_year, or someday")
	ErrInvalidAction      = errors.New("actionability must be can_do_now, needs_planning, needs_saving, or needs_milestone")
	ErrInvalidFoodType    = errors.New("food type must be restaurant or dish")
	ErrInvalidPriceLevel  = errors.New("price level must be budget, moderate, upscale, or luxury")
	ErrInvalidDifficulty  = errors.New("difficulty must be easy, medium, or hard")
	ErrUnsupportedYear    = errors.New("target year is outside the supported planning years")
	ErrItemNotArchived    = errors.New("item must be archived before it can be deleted")
	ErrEmptyBulkSelection = errors.New("bulk status change requires at least one item id")
)

// CreateItemRequest represents input for creating an item
type CreateItemRequest struct {
	Title         string
	Description   string
	Categories    []domain.Category
	LocationType  domain.LocationType
	Location      string
	Region        domain.Region
	Country       string
	Neighborhood  string
	TargetYear    *int
	Timeframe     domain.Timeframe
	Seasons       []domain.Season
	SeasonNotes   string
	Status        domain.Status
	Owner         domain.Owner
	IsPriority    bool
	IsPhysical    bool
	Actionability domain.Actionability
	FoodType      domain.FoodType
	Cuisine       string
	PriceLevel    domain.PriceLevel
	Difficulty    domain.Difficulty
	FoodNotes     string
	RelatedIDs    []int
}

// UpdateItemRequest represents partial input for updating an item
type UpdateItemRequest struct {
	Title           *string
	Description     *string
	Categories      []domain.Category
	LocationType    *domain.LocationType
	Location        *string
	Region          *domain.Region
	Country         *string
	Neighborhood    *string
	TargetYear      *int
	ClearTargetYear bool
	Timeframe       *domain.Timeframe
	Seasons         []domain.Season
	SeasonNotes     *string
	Status          *domain.Status
	CompletedDate   *time.Time
	CompletionNotes *string
	Owner           *domain.Owner
	IsPriority      *bool
	IsPhysical      *bool
	Actionability   *domain.Actionability
	FoodType        *domain.FoodType
	Cuisine         *string
	PriceLevel      *domain.PriceLevel
	Difficulty      *domain.Difficulty
	FoodNotes       *string
	RelatedIDs      []int
}

// ItemUsecase defines the interface for item business logic
type ItemUsecase interface {
	CreateItem(ctx context.Context, userID int, req CreateItemRequest) (*domain.Item, error)
	GetItem(ctx context.Context, userID, id int) (*domain.Item, error)
	ListItems(ctx context.Context, userID int, filter domain.ItemFilter) ([]domain.Item, error)
	ListArchived(ctx context.Context, userID int) ([]domain.Item, error)
	UpdateItem(ctx context.Context, userID, id int, req UpdateItemRequest) (*domain.Item, error)
	SetStatus(ctx context.Context, userID, id int, status domain.Status) (*domain.Item, error)
	SetPriority(ctx context.Context, userID, id int, priority bool) (*domain.Item, error)
	BulkSetStatus(ctx context.Context, userID int, ids []int, status domain.Status) error
	ArchiveItem(ctx context.Context, userID, id int) error
	RestoreItem(ctx context.Context, userID, id int) error
	DeleteItem(ctx context.Context, userID, id int) error
}

type itemUsecase struct {
	itemRepo domain.ItemRepository
}

// NewItemUsecase creates a new item usecase
func NewItemUsecase(itemRepo domain.ItemRepository) ItemUsecase {
	return &itemUsecase{
		itemRepo: itemRepo,
	}
}

// CreateItem creates a new item
func (u *itemUsecase) CreateItem(ctx context.Context, userID int, req CreateItemRequest) (*domain.Item, error) {
	if err := u.validateCreateRequest(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.StatusIdea
	}

	now := time.Now()
	item := &domain.Item{
		UserID:        userID,
		Title:         req.Title,
		Description:   req.Description,
		Categories:    req.Categories,
		LocationType:  req.LocationType,
		Location:      req.Location,
		Region:        req.Region,
		Country:       req.Country,
		Neighborhood:  req.Neighborhood,
		TargetYear:    req.TargetYear,
		Timeframe:     req.Timeframe,
		Seasons:       req.Seasons,
		SeasonNotes:   req.SeasonNotes,
		Status:        status,
		Owner:         req.Owner,
		IsPriority:    req.IsPriority,
		IsPhysical:    req.IsPhysical,
		Actionability: req.Actionability,
		FoodType:      req.FoodType,
		Cuisine:       req.Cuisine,
		PriceLevel:    req.PriceLevel,
		Difficulty:    req.Difficulty,
		FoodNotes:     req.FoodNotes,
		RelatedIDs:    req.RelatedIDs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if status == domain.StatusCompleted {
		item.CompletedDate = &now
	}

	return u.itemRepo.Create(ctx, item)
}

// GetItem retrieves an item by ID
func (u *itemUsecase) GetItem(ctx context.Context, userID, id int) (*domain.Item, error) {
	item, err := u.itemRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// ListItems retrieves the user's non-archived items with optional filtering
func (u *itemUsecase) ListItems(ctx context.Context, userID int, filter domain.ItemFilter) ([]domain.Item, error) {
	if err := u.validateFilter(filter); err != nil {
		return nil, err
	}
	return u.itemRepo.List(ctx, userID, filter)
}

// ListArchived retrieves the user's archived items
func (u *itemUsecase) ListArchived(ctx context.Context, userID int) ([]domain.Item, error) {
	return u.itemRepo.ListArchived(ctx, userID)
}

// UpdateItem applies a partial update to an existing item
func (u *itemUsecase) UpdateItem(ctx context.Context, userID, id int, req UpdateItemRequest) (*domain.Item, error) {
	if err := u.validateUpdateRequest(req); err != nil {
		return nil, err
	}

	existing, err := u.itemRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updated := *existing

	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Categories != nil {
		updated.Categories = req.Categories
	}
	if req.LocationType != nil {
		updated.LocationType = *req.LocationType
	}
	if req.Location != nil {
		updated.Location = *req.Location
	}
	if req.Region != nil {
		updated.Region = *req.Region
	}
	if req.Country != nil {
		updated.Country = *req.Country
	}
	if req.Neighborhood != nil {
		updated.Neighborhood = *req.Neighborhood
	}
	if req.ClearTargetYear {
		updated.TargetYear = nil
	} else if req.TargetYear != nil {
		updated.TargetYear = req.TargetYear
	}
	if req.Timeframe != nil {
		updated.Timeframe = *req.Timeframe
	}
	if req.Seasons != nil {
		updated.Seasons = req.Seasons
	}
	if req.SeasonNotes != nil {
		updated.SeasonNotes = *req.SeasonNotes
	}
	if req.Status != nil {
		u.applyStatus(&updated, *req.Status)
	}
	if req.CompletedDate != nil {
		updated.CompletedDate = req.CompletedDate
	}
	if req.CompletionNotes != nil {
		updated.CompletionNotes = *req.CompletionNotes
	}
	if req.Owner != nil {
		updated.Owner = *req.Owner
	}
	if req.IsPriority != nil {
		updated.IsPriority = *req.IsPriority
	}
	if req.IsPhysical != nil {
		updated.IsPhysical = *req.IsPhysical
	}
	if req.Actionability != nil {
		updated.Actionability = *req.Actionability
	}
	if req.FoodType != nil {
		updated.FoodType = *req.FoodType
	}
	if req.Cuisine != nil {
		updated.Cuisine = *req.Cuisine
	}
	if req.PriceLevel != nil {
		updated.PriceLevel = *req.PriceLevel
	}
	if req.Difficulty != nil {
		updated.Difficulty = *req.Difficulty
	}
	if req.FoodNotes != nil {
		updated.FoodNotes = *req.FoodNotes
	}
	if req.RelatedIDs != nil {
		updated.RelatedIDs = req.RelatedIDs
	}

	updated.UpdatedAt = time.Now()

	return u.itemRepo.Update(ctx, userID, id, &updated)
}

// SetStatus is the inline quick toggle used by list-style views. Moving into
// completed stamps the completion date; moving out clears it along with the
// completion notes (the advisory-fields decision).
func (u *itemUsecase) SetStatus(ctx context.Context, userID, id int, status domain.Status) (*domain.Item, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	existing, err := u.itemRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	u.applyStatus(&updated, status)
	updated.UpdatedAt = time.Now()

	return u.itemRepo.Update(ctx, userID, id, &updated)
}

// SetPriority toggles the priority flag
func (u *itemUsecase) SetPriority(ctx context.Context, userID, id int, priority bool) (*domain.Item, error) {
	existing, err := u.itemRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.IsPriority = priority
	updated.UpdatedAt = time.Now()

	return u.itemRepo.Update(ctx, userID, id, &updated)
}

// BulkSetStatus changes the status of several items at once
func (u *itemUsecase) BulkSetStatus(ctx context.Context, userID int, ids []int, status domain.Status) error {
	if len(ids) == 0 {
		return ErrEmptyBulkSelection
	}
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	return u.itemRepo.UpdateStatus(ctx, userID, ids, status)
}

// ArchiveItem soft deletes an item
func (u *itemUsecase) ArchiveItem(ctx context.Context, userID, id int) error {
	return u.itemRepo.Archive(ctx, userID, id)
}

// RestoreItem restores an archived item
func (u *itemUsecase) RestoreItem(ctx context.Context, userID, id int) error {
	return u.itemRepo.Restore(ctx, userID, id)
}

// DeleteItem permanently deletes an item. Only archived items may be deleted;
// the archive view is the sole hard-deletion path.
func (u *itemUsecase) DeleteItem(ctx context.Context, userID, id int) error {
	existing, err := u.itemRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if !existing.Archived {
		return ErrItemNotArchived
	}
	return u.itemRepo.Delete(ctx, userID, id)
}

func (u *itemUsecase) applyStatus(item *domain.Item, status domain.Status) {
	if item.Status == status {
		return
	}
	item.Status = status
	if status == domain.StatusCompleted {
		now := time.Now()
		item.CompletedDate = &now
	} else {
		item.CompletedDate = nil
		item.CompletionNotes = ""
	}
}

func (u *itemUsecase) validateCreateRequest(req CreateItemRequest) error {
	if req.Title == "" || len(req.Title) > 200 {
		return ErrInvalidTitle
	}
	if len(req.Categories) == 0 {
		return ErrEmptyCategories
	}
	for _, cat := range req.Categories {
		if !cat.IsValid() {
			return ErrInvalidCategory
		}
	}
	if !req.Owner.IsValid() {
		return ErrInvalidOwner
	}
	if req.Status != "" && !req.Status.IsValid() {
		return ErrInvalidStatus
	}
	return u.validateOptionalEnums(
		req.LocationType, req.Region, req.Timeframe, req.Actionability,
		req.FoodType, req.PriceLevel, req.Difficulty, req.Seasons, req.TargetYear,
	)
}

func (u *itemUsecase) validateUpdateRequest(req UpdateItemRequest) error {
	if req.Title != nil && (*req.Title == "" || len(*req.Title) > 200) {
		return ErrInvalidTitle
	}
	if req.Categories != nil {
		if len(req.Categories) == 0 {
			return ErrEmptyCategories
		}
		for _, cat := range req.Categories {
			if !cat.IsValid() {
				return ErrInvalidCategory
			}
		}
	}
	if req.Status != nil && !req.Status.IsValid() {
		return ErrInvalidStatus
	}
	if req.Owner != nil && !req.Owner.IsValid() {
		return ErrInvalidOwner
	}

	var (
		locationType  domain.LocationType
		region        domain.Region
		timeframe     domain.Timeframe
		actionability domain.Actionability
		foodType      domain.FoodType
		priceLevel    domain.PriceLevel
		difficulty    domain.Difficulty
	)
	if req.LocationType != nil {
		locationType = *req.LocationType
	}
	if req.Region != nil {
		region = *req.Region
	}
	if req.Timeframe != nil {
		timeframe = *req.Timeframe
	}
	if req.Actionability != nil {
		actionability = *req.Actionability
	}
	if req.FoodType != nil {
		foodType = *req.FoodType
	}
	if req.PriceLevel != nil {
		priceLevel = *req.PriceLevel
	}
	if req.Difficulty != nil {
		difficulty = *req.Difficulty
	}

	var targetYear *int
	if !req.ClearTargetYear {
		targetYear = req.TargetYear
	}
	return u.validateOptionalEnums(
		locationType, region, timeframe, actionability,
		foodType, priceLevel, difficulty, req.Seasons, targetYear,
	)
}

// validateOptionalEnums checks every optional closed enumeration; empty
// values mean unset and pass.
func (u *itemUsecase) validateOptionalEnums(
	locationType domain.LocationType,
	region domain.Region,
	timeframe domain.Timeframe,
	actionability domain.Actionability,
	foodType domain.FoodType,
	priceLevel domain.PriceLevel,
	difficulty domain.Difficulty,
	seasons []domain.Season,
	targetYear *int,
) error {
	if locationType != "" && !locationType.IsValid() {
		return ErrInvalidLocation
	}
	if region != "" && !region.IsValid() {
		return ErrInvalidRegion
	}
	if timeframe != "" && !timeframe.IsValid() {
		return ErrInvalidTimeframe
	}
	if actionability != "" && !actionability.IsValid() {
		return ErrInvalidAction
	}
	if foodType != "" && !foodType.IsValid() {
		return ErrInvalidFoodType
	}
	if priceLevel != "" && !priceLevel.IsValid() {
		return ErrInvalidPriceLevel
	}
	if difficulty != "" && !difficulty.IsValid() {
		return ErrInvalidDifficulty
	}
	for _, season := range seasons {
		if !season.IsValid() {
			return ErrInvalidSeason
		}
	}
	if targetYear != nil && !taxonomy.IsSupportedYear(*targetYear) {
		return ErrUnsupportedYear
	}
	return nil
}

func (u *itemUsecase) validateFilter(filter domain.ItemFilter) error {
	if filter.Category != "" && !filter.Category.IsValid() {
		return ErrInvalidCategory
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return ErrInvalidStatus
	}
	if filter.Owner != "" && !filter.Owner.IsValid() {
		return ErrInvalidOwner
	}
	return nil
}
