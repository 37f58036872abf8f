package handler

import (
	"time"
)

// CreateItemRequestDTO represents the HTTP payload for creating an item
type CreateItemRequestDTO struct {
	Title         string   `json:"title" binding:"required,max=200" validate:"required,max=200,safe_text,no_sql_injection"`
	Description   string   `json:"description" validate:"omitempty,safe_text,no_sql_injection"`
	Categories    []string `json:"categories" binding:"required,min=1"`
	LocationType  string   `json:"location_type" binding:"omitempty,oneof=local_city home_country international"`
	Location      string   `json:"location" binding:"max=200" validate:"omitempty,safe_text"`
	Region        string   `json:"region" binding:"omitempty,oneof=europe asia americas middle_east_africa oceania"`
	Country       string   `json:"country" binding:"max=100"`
	Neighborhood  string   `json:"neighborhood" binding:"max=100"`
	TargetYear    *int     `json:"target_year,omitempty"`
	Timeframe     string   `json:"timeframe" binding:"omitempty,oneof=this_year next_year someday"`
	Seasons       []string `json:"seasons"`
	SeasonNotes   string   `json:"season_notes" validate:"omitempty,safe_text"`
	Status        string   `json:"status" binding:"omitempty,oneof=idea planned in_progress completed"`
	Owner         string   `json:"owner" binding:"required,oneof=joint partner_a partner_b"`
	IsPriority    bool     `json:"is_priority"`
	IsPhysical    bool     `json:"is_physical"`
	Actionability string   `json:"actionability" binding:"omitempty,oneof=can_do_now needs_planning needs_saving needs_milestone"`
	FoodType      string   `json:"food_type" binding:"omitempty,oneof=restaurant dish"`
	Cuisine       string   `json:"cuisine" binding:"max=100"`
	PriceLevel    string   `json:"price_level" binding:"omitempty,oneof=budget moderate upscale luxury"`
	Difficulty    string   `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	FoodNotes     string   `json:"food_notes" validate:"omitempty,safe_text"`
	RelatedIDs    []int    `json:"related_ids"`
}

// UpdateItemRequestDTO represents the HTTP payload for a partial item update
type UpdateItemRequestDTO struct {
	Title           *string    `json:"title,omitempty" binding:"omitempty,max=200"`
	Description     *string    `json:"description,omitempty"`
	Categories      []string   `json:"categories,omitempty" binding:"omitempty,min=1"`
	LocationType    *string    `json:"location_type,omitempty" binding:"omitempty,oneof=local_city home_country international"`
	Location        *string    `json:"location,omitempty" binding:"omitempty,max=200"`
	Region          *string    `json:"region,omitempty" binding:"omitempty,oneof=europe asia americas middle_east_africa oceania"`
	Country         *string    `json:"country,omitempty" binding:"omitempty,max=100"`
	Neighborhood    *string    `json:"neighborhood,omitempty" binding:"omitempty,max=100"`
	TargetYear      *int       `json:"target_year,omitempty"`
	ClearTargetYear bool       `json:"clear_target_year,omitempty"`
	Timeframe       *string    `json:"timeframe,omitempty" binding:"omitempty,oneof=this_year next_year someday"`
	Seasons         []string   `json:"seasons,omitempty"`
	SeasonNotes     *string    `json:"season_notes,omitempty"`
	Status          *string    `json:"status,omitempty" binding:"omitempty,oneof=idea planned in_progress completed"`
	CompletedDate   *time.Time `json:"completed_date,omitempty"`
	CompletionNotes *string    `json:"completion_notes,omitempty"`
	Owner           *string    `json:"owner,omitempty" binding:"omitempty,oneof=joint partner_a partner_b"`
	IsPriority      *bool      `json:"is_priority,omitempty"`
	IsPhysical      *bool      `json:"is_physical,omitempty"`
	Actionability   *string    `json:"actionability,omitempty" binding:"omitempty,oneof=can_do_now needs_planning needs_saving needs_milestone"`
	FoodType        *string    `json:"food_type,omitempty" binding:"omitempty,oneof=restaurant dish"`
	Cuisine         *string    `json:"cuisine,omitempty" binding:"omitempty,max=100"`
	PriceLevel      *string    `json:"price_level,omitempty" binding:"omitempty,oneof=budget moderate upscale luxury"`
	Difficulty      *string    `json:"difficulty,omitempty" binding:"omitempty,oneof=easy medium hard"`
	FoodNotes       *string    `json:"food_notes,omitempty"`
	RelatedIDs      []int      `json:"related_ids,omitempty"`
}

// SetStatusRequestDTO represents the inline status quick-toggle payload
type SetStatusRequestDTO struct {
	Status string `json:"status" binding:"required,oneof=idea planned in_progress completed"`
}

// SetPriorityRequestDTO represents the favorite quick-toggle payload
type SetPriorityRequestDTO struct {
	IsPriority *bool `json:"is_priority" binding:"required"`
}

// BulkStatusRequestDTO represents the bulk status change payload
type BulkStatusRequestDTO struct {
	IDs    []int  `json:"ids" binding:"required,min=1"`
	Status string `json:"status" binding:"required,oneof=idea planned in_progress completed"`
}

// ItemListFilterDTO represents query parameters for the item list
type ItemListFilterDTO struct {
	Category string `form:"category"`
	Status   string `form:"status" binding:"omitempty,oneof=idea planned in_progress completed"`
	Owner    string `form:"owner" binding:"omitempty,oneof=joint partner_a partner_b"`
	Search   string `form:"search" validate:"omitempty,max=200,safe_text,no_sql_injection"`
}

// ViewQueryDTO represents query parameters for the dashboard view pipeline
type ViewQueryDTO struct {
	Mode           string `form:"mode" binding:"required"`
	Search         string `form:"search" validate:"omitempty,max=200,safe_text,no_sql_injection"`
	Category       string `form:"category"`
	Travel         string `form:"travel"`
	Year           int    `form:"year"`
	YearUnassigned bool   `form:"year_unassigned"`
	Owner          string `form:"owner" binding:"omitempty,oneof=joint partner_a partner_b"`
}

// SaveYearNoteRequestDTO represents the year note upsert payload
type SaveYearNoteRequestDTO struct {
	Body string `json:"body" validate:"omitempty,safe_text"`
}

// LoginRequestDTO represents the login payload
type LoginRequestDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequestDTO represents the token refresh payload
type RefreshRequestDTO struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ErrorResponseDTO represents an HTTP error response
type ErrorResponseDTO struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
