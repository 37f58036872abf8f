package domain

import (
	"time"
)

// Item represents a single bucket-list goal
type Item struct {
	ID              int           `json:"id"`
	UserID          int           `json:"user_id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Categories      []Category    `json:"categories"`
	LocationType    LocationType  `json:"location_type,omitempty"`
	Location        string        `json:"location,omitempty"`
	Region          Region        `json:"region,omitempty"`
	Country         string        `json:"country,omitempty"`
	Neighborhood    string        `json:"neighborhood,omitempty"`
	TargetYear      *int          `json:"target_year,omitempty"`
	Timeframe       Timeframe     `json:"timeframe,omitempty"`
	Seasons         []Season      `json:"seasons,omitempty"`
	SeasonNotes     string        `json:"season_notes,omitempty"`
	Status          Status        `json:"status"`
	CompletedDate   *time.Time    `json:"completed_date,omitempty"`
	CompletionNotes string        `json:"completion_notes,omitempty"`
	Owner           Owner         `json:"owner"`
	IsPriority      bool          `json:"is_priority"`
	IsPhysical      bool          `json:"is_physical"`
	Actionability   Actionability `json:"actionability,omitempty"`
	FoodType        FoodType      `json:"food_type,omitempty"`
	Cuisine         string        `json:"cuisine,omitempty"`
	PriceLevel      PriceLevel    `json:"price_level,omitempty"`
	Difficulty      Difficulty    `json:"difficulty,omitempty"`
	FoodNotes       string        `json:"food_notes,omitempty"`
	Archived        bool          `json:"archived"`
	ArchivedAt      *time.Time    `json:"archived_at,omitempty"`
	RelatedIDs      []int         `json:"related_ids,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// Category classifies an item; an item carries at least one and may carry several.
type Category string

const (
	CategoryAdventure            Category = "adventure"
	CategorySkills               Category = "skills"
	CategoryCreative             Category = "creative"
	CategoryTravel               Category = "travel"
	CategoryFoodDrink            Category = "food_drink"
	CategoryPersonalGrowth       Category = "personal_growth"
	CategoryLifeLegacy           Category = "life_legacy"
	CategoryBusinessProfessional Category = "business_professional"
	CategoryMaterial             Category = "material"
	CategoryHealthWellness       Category = "health_wellness"
	CategoryChallenges           Category = "challenges"
	CategorySocialImpact         Category = "social_impact"
	CategoryCulturalEvents       Category = "cultural_events"
	CategorySportingEvents       Category = "sporting_events"
	CategoryMusicParty           Category = "music_party"
)

// Status represents item progress
type Status string

const (
	StatusIdea       Status = "idea"
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Owner represents which party an item belongs to
type Owner string

const (
	OwnerJoint    Owner = "joint"
	OwnerPartnerA Owner = "partner_a"
	OwnerPartnerB Owner = "partner_b"
)

// LocationType is the coarse location kind of an item
type LocationType string

const (
	LocationLocalCity     LocationType = "local_city"
	LocationHomeCountry   LocationType = "home_country"
	LocationInternational LocationType = "international"
)

// Region is a broad world region, meaningful only for international items
type Region string

const (
	RegionEurope           Region = "europe"
	RegionAsia             Region = "asia"
	RegionAmericas         Region = "americas"
	RegionMiddleEastAfrica Region = "middle_east_africa"
	RegionOceania          Region = "oceania"
)

// Season represents a season an item applies to
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// Timeframe is a coarse planning horizon
type Timeframe string

const (
	TimeframeThisYear Timeframe = "this_year"
	TimeframeNextYear Timeframe = "next_year"
	TimeframeSomeday  Timeframe = "someday"
)

// Actionability classifies how ready an item is to act on
type Actionability string

const (
	ActionabilityCanDoNow       Actionability = "can_do_now"
	ActionabilityNeedsPlanning  Actionability = "needs_planning"
	ActionabilityNeedsSaving    Actionability = "needs_saving"
	ActionabilityNeedsMilestone Actionability = "needs_milestone"
)

// FoodType refines food_drink items into restaurant visits and home-cooked dishes
type FoodType string

const (
	FoodTypeRestaurant FoodType = "restaurant"
	FoodTypeDish       FoodType = "dish"
)

// PriceLevel is the price tier of a restaurant item
type PriceLevel string

const (
	PriceBudget   PriceLevel = "budget"
	PriceModerate PriceLevel = "moderate"
	PriceUpscale  PriceLevel = "upscale"
	PriceLuxury   PriceLevel = "luxury"
)

// Difficulty is the cooking difficulty of a dish item
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllCategories returns every category in taxonomy declaration order.
func AllCategories() []Category {
	return []Category{
		CategoryAdventure,
		CategorySkills,
		CategoryCreative,
		CategoryTravel,
		CategoryFoodDrink,
		CategoryPersonalGrowth,
		CategoryLifeLegacy,
		CategoryBusinessProfessional,
		CategoryMaterial,
		CategoryHealthWellness,
		CategoryChallenges,
		CategorySocialImpact,
		CategoryCulturalEvents,
		CategorySportingEvents,
		CategoryMusicParty,
	}
}

// AllRegions returns the five regions in travel-bucket precedence order.
func AllRegions() []Region {
	return []Region{
		RegionEurope,
		RegionAsia,
		RegionAmericas,
		RegionMiddleEastAfrica,
		RegionOceania,
	}
}

// IsValid validates if the category is valid
func (c Category) IsValid() bool {
	switch c {
	case CategoryAdventure, CategorySkills, CategoryCreative, CategoryTravel,
		CategoryFoodDrink, CategoryPersonalGrowth, CategoryLifeLegacy,
		CategoryBusinessProfessional, CategoryMaterial, CategoryHealthWellness,
		CategoryChallenges, CategorySocialImpact, CategoryCulturalEvents,
		CategorySportingEvents, CategoryMusicParty:
		return true
	default:
		return false
	}
}

// IsValid validates if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusIdea, StatusPlanned, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsValid validates if the owner is valid
func (o Owner) IsValid() bool {
	switch o {
	case OwnerJoint, OwnerPartnerA, OwnerPartnerB:
		return true
	default:
		return false
	}
}

// IsValid validates if the location type is valid
func (l LocationType) IsValid() bool {
	switch l {
	case LocationLocalCity, LocationHomeCountry, LocationInternational:
		return true
	default:
		return false
	}
}

// IsValid validates if the region is valid
func (r Region) IsValid() bool {
	switch r {
	case RegionEurope, RegionAsia, RegionAmericas, RegionMiddleEastAfrica, RegionOceania:
		return true
	default:
		return false
	}
}

// IsValid validates if the season is valid
func (s Season) IsValid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter:
		return true
	default:
		return false
	}
}

// IsValid validates if the timeframe is valid
func (t Timeframe) IsValid() bool {
	switch t {
	case TimeframeThisYear, TimeframeNextYear, TimeframeSomeday:
		return true
	default:
		return false
	}
}

// IsValid validates if the actionability is valid
func (a Actionability) IsValid() bool {
	switch a {
	case ActionabilityCanDoNow, ActionabilityNeedsPlanning,
		ActionabilityNeedsSaving, ActionabilityNeedsMilestone:
		return true
	default:
		return false
	}
}

// IsValid validates if the food type is valid
func (f FoodType) IsValid() bool {
	switch f {
	case FoodTypeRestaurant, FoodTypeDish:
		return true
	default:
		return false
	}
}

// IsValid validates if the price level is valid
func (p PriceLevel) IsValid() bool {
	switch p {
	case PriceBudget, PriceModerate, PriceUpscale, PriceLuxury:
		return true
	default:
		return false
	}
}

// IsValid validates if the difficulty is valid
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// String returns string representation of Category
func (c Category) String() string {
	return string(c)
}

// String returns string representation of Status
func (s Status) String() string {
	return string(s)
}

// String returns string representation of Owner
func (o Owner) String() string {
	return string(o)
}

// HasCategory reports whether the item carries the given category tag.
func (i *Item) HasCategory(c Category) bool {
	for _, tag := range i.Categories {
		if tag == c {
			return true
		}
	}
	return false
}

// IsGastronomy reports whether the item carries the food_drink category.
func (i *Item) IsGastronomy() bool {
	return i.HasCategory(CategoryFoodDrink)
}
