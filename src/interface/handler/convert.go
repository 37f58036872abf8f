package handler

import (
	"github.com/kertapati/horizon-sub000/src/domain"
	"github.com/kertapati/horizon-sub000/src/usecase"
)

func toCategories(values []string) []domain.Category {
	if values == nil {
		return nil
	}
	categories := make([]domain.Category, 0, len(values))
	for _, v := range values {
		categories = append(categories, domain.Category(v))
	}
	return categories
}

func toSeasons(values []string) []domain.Season {
	if values == nil {
		return nil
	}
	seasons := make([]domain.Season, 0, len(values))
	for _, v := range values {
		seasons = append(seasons, domain.Season(v))
	}
	return seasons
}

func toCreateRequest(dto CreateItemRequestDTO) usecase.CreateItemRequest {
	return usecase.CreateItemRequest{
		Title:         dto.Title,
		Description:   dto.Description,
		Categories:    toCategories(dto.Categories),
		LocationType:  domain.LocationType(dto.LocationType),
		Location:      dto.Location,
		Region:        domain.Region(dto.Region),
		Country:       dto.Country,
		Neighborhood:  dto.Neighborhood,
		TargetYear:    dto.TargetYear,
		Timeframe:     domain.Timeframe(dto.Timeframe),
		Seasons:       toSeasons(dto.Seasons),
		SeasonNotes:   dto.SeasonNotes,
		Status:        domain.Status(dto.Status),
		Owner:         domain.Owner(dto.Owner),
		IsPriority:    dto.IsPriority,
		IsPhysical:    dto.IsPhysical,
		Actionability: domain.Actionability(dto.Actionability),
		FoodType:      domain.FoodType(dto.FoodType),
		Cuisine:       dto.Cuisine,
		PriceLevel:    domain.PriceLevel(dto.PriceLevel),
		Difficulty:    domain.Difficulty(dto.Difficulty),
		FoodNotes:     dto.FoodNotes,
		RelatedIDs:    dto.RelatedIDs,
	}
}

func toUpdateRequest(dto UpdateItemRequestDTO) usecase.UpdateItemRequest {
	req := usecase.UpdateItemRequest{
		Title:           dto.Title,
		Description:     dto.Description,
		Categories:      toCategories(dto.Categories),
		Location:        dto.Location,
		Country:         dto.Country,
		Neighborhood:    dto.Neighborhood,
		TargetYear:      dto.TargetYear,
		ClearTargetYear: dto.ClearTargetYear,
		Seasons:         toSeasons(dto.Seasons),
		SeasonNotes:     dto.SeasonNotes,
		CompletedDate:   dto.CompletedDate,
		CompletionNotes: dto.CompletionNotes,
		IsPriority:      dto.IsPriority,
		IsPhysical:      dto.IsPhysical,
		Cuisine:         dto.Cuisine,
		FoodNotes:       dto.FoodNotes,
		RelatedIDs:      dto.RelatedIDs,
	}
	if dto.LocationType != nil {
		v := domain.LocationType(*dto.LocationType)
		req.LocationType = &v
	}
	if dto.Region != nil {
		v := domain.Region(*dto.Region)
		req.Region = &v
	}
	if dto.Timeframe != nil {
		v := domain.Timeframe(*dto.Timeframe)
		req.Timeframe = &v
	}
	if dto.Status != nil {
		v := domain.Status(*dto.Status)
		req.Status = &v
	}
	if dto.Owner != nil {
		v := domain.Owner(*dto.Owner)
		req.Owner = &v
	}
	if dto.Actionability != nil {
		v := domain.Actionability(*dto.Actionability)
		req.Actionability = &v
	}
	if dto.FoodType != nil {
		v := domain.FoodType(*dto.FoodType)
		req.FoodType = &v
	}
	if dto.PriceLevel != nil {
		v := domain.PriceLevel(*dto.PriceLevel)
		req.PriceLevel = &v
	}
	if dto.Difficulty != nil {
		v := domain.Difficulty(*dto.Difficulty)
		req.Difficulty = &v
	}
	return req
}
