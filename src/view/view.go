// Package view composes the dashboard's filter pipeline: free-text search,
// the active view mode, and per-view sub-filter selections. The branch
// semantics are not uniform. Some modes narrow the filtered list, the
// year and ownership modes substitute a precomputed stats bucket, and the
// restaurants/kitchen views keep completed items because they split their
// own to-do/done tabs.
package view

import (
	"strings"

	"github.com/kertapati/horizon-sub000/src/domain"
	"github.com/kertapati/horizon-sub000/src/stats"
)

// Mode selects which dashboard view the pipeline feeds.
type Mode string

const (
	ModeAll         Mode = "all"
	ModeCategory    Mode = "category"
	ModeTravel      Mode = "travel"
	ModeLife        Mode = "life"
	ModeYear        Mode = "year"
	ModeOwnership   Mode = "ownership"
	ModeRestaurants Mode = "restaurants"
	ModeKitchen     Mode = "kitchen"
	ModeInProgress  Mode = "in_progress"
	ModeCompleted   Mode = "completed"
)

// IsValid validates if the mode is valid
func (m Mode) IsValid() bool {
	switch m {
	case ModeAll, ModeCategory, ModeTravel, ModeLife, ModeYear, ModeOwnership,
		ModeRestaurants, ModeKitchen, ModeInProgress, ModeCompleted:
		return true
	default:
		return false
	}
}

// TravelBucket is the travel view's sub-filter: one of the seven disjoint
// travel buckets (location kinds first, then regions).
type TravelBucket string

const (
	TravelLocalCity   TravelBucket = "local_city"
	TravelHomeCountry TravelBucket = "home_country"
)

// Query carries everything the pipeline needs for one render.
type Query struct {
	Search         string
	Mode           Mode
	Category       domain.Category
	Travel         TravelBucket
	Year           int
	YearUnassigned bool
	Owner          domain.Owner
}

// Apply runs the pipeline over the full item collection and returns the list
// the active view renders. It is a pure function: same input, same output.
// Archived items never pass; order of operations (search first, then the
// mode branch) is part of the contract.
func Apply(items []domain.Item, q Query) []domain.Item {
	working := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if item.Archived {
			continue
		}
		if q.Search != "" && !matchesSearch(&item, q.Search) {
			continue
		}
		working = append(working, item)
	}

	switch q.Mode {
	case ModeCompleted:
		working = filterStatus(working, domain.StatusCompleted)
		return filterCategory(working, q.Category)

	case ModeInProgress:
		working = filterStatus(working, domain.StatusInProgress)
		return filterCategory(working, q.Category)

	case ModeRestaurants:
		// Completed items stay visible here; the view runs its own
		// to-do/done split.
		return filterFoodType(working, domain.FoodTypeRestaurant)

	case ModeKitchen:
		return filterFoodType(working, domain.FoodTypeDish)
	}

	working = excludeStatus(working, domain.StatusCompleted)

	switch q.Mode {
	case ModeAll:
		return filterCategory(working, q.Category)

	case ModeTravel:
		travel := make([]domain.Item, 0, len(working))
		for _, item := range working {
			if item.HasCategory(domain.CategoryTravel) {
				travel = append(travel, item)
			}
		}
		return filterTravelBucket(travel, q.Travel)

	case ModeLife:
		life := make([]domain.Item, 0, len(working))
		for _, item := range working {
			if !item.HasCategory(domain.CategoryTravel) {
				life = append(life, item)
			}
		}
		return life

	case ModeYear:
		// The year view substitutes the precomputed year bucket; the
		// completed exclusion above does not carry over.
		yearStats := stats.ByYear(items)
		if q.YearUnassigned {
			return yearStats.Unassigned
		}
		return yearStats.ByYear[q.Year]

	case ModeOwnership:
		ownerStats := stats.ByOwner(items)
		return ownerStats.ByOwner[q.Owner]

	case ModeCategory:
		// The category view re-groups downstream from the
		// completed-excluded set.
		return working
	}

	return working
}

func matchesSearch(item *domain.Item, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(item.Title), needle) ||
		strings.Contains(strings.ToLower(item.Description), needle) ||
		strings.Contains(strings.ToLower(item.Location), needle)
}

func filterStatus(items []domain.Item, status domain.Status) []domain.Item {
	result := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if item.Status == status {
			result = append(result, item)
		}
	}
	return result
}

func excludeStatus(items []domain.Item, status domain.Status) []domain.Item {
	result := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if item.Status != status {
			result = append(result, item)
		}
	}
	return result
}

func filterCategory(items []domain.Item, cat domain.Category) []domain.Item {
	if cat == "" {
		return items
	}
	result := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if item.HasCategory(cat) {
			result = append(result, item)
		}
	}
	return result
}

func filterFoodType(items []domain.Item, ft domain.FoodType) []domain.Item {
	result := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if item.HasCategory(domain.CategoryFoodDrink) && item.FoodType == ft {
			result = append(result, item)
		}
	}
	return result
}

// filterTravelBucket applies the travel sub-filter using the same
// precedence as the travel stats buckets: location kind first, then region.
func filterTravelBucket(items []domain.Item, bucket TravelBucket) []domain.Item {
	if bucket == "" {
		return items
	}
	result := make([]domain.Item, 0, len(items))
	for _, item := range items {
		switch bucket {
		case TravelLocalCity:
			if item.LocationType == domain.LocationLocalCity {
				result = append(result, item)
			}
		case TravelHomeCountry:
			if item.LocationType == domain.LocationHomeCountry && item.Region == "" {
				result = append(result, item)
			}
		default:
			if item.LocationType != domain.LocationLocalCity &&
				!(item.LocationType == domain.LocationHomeCountry && item.Region == "") &&
				item.Region == domain.Region(bucket) {
				result = append(result, item)
			}
		}
	}
	return result
}
