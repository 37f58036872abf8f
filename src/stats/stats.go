// Package stats computes the dashboard rollups: per-category counts, travel
// buckets, year buckets, ownership buckets and cross-cutting insights. Every
// function is a pure, total function of the item slice; archived items are
// dropped before any rollup and malformed enum values are skipped per bucket
// rather than surfaced as errors.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kertapati/horizon-sub000/src/domain"
	"github.com/kertapati/horizon-sub000/src/taxonomy"
)

// CategoryStat is the rollup for a single category tag.
type CategoryStat struct {
	Total         int           `json:"total"`
	Completed     int           `json:"completed"`
	Priority      int           `json:"priority"`
	ActionableNow int           `json:"actionable_now"`
	Items         []domain.Item `json:"items"`
}

// TravelStats buckets travel-tagged items into seven disjoint groups.
type TravelStats struct {
	LocalCity   []domain.Item                 `json:"local_city"`
	HomeCountry []domain.Item                 `json:"home_country"`
	ByRegion    map[domain.Region][]domain.Item `json:"by_region"`
}

// YearStats buckets non-gastronomy items by exact target-year match.
type YearStats struct {
	ByYear     map[int][]domain.Item `json:"by_year"`
	Unassigned []domain.Item         `json:"unassigned"`
}

// OwnershipStats buckets non-gastronomy items by owner.
type OwnershipStats struct {
	ByOwner map[domain.Owner][]domain.Item `json:"by_owner"`
}

// InsightStats bundles the cross-cutting summary figures.
type InsightStats struct {
	Total                int           `json:"total"`
	Completed            int           `json:"completed"`
	CompletionPercentage int           `json:"completion_percentage"`
	PriorityBacklog      []domain.Item `json:"priority_backlog"`
	NearTermTargets      []domain.Item `json:"near_term_targets"`
	ActionableLocal      []domain.Item `json:"actionable_local"`
	RecentlyCompleted    []domain.Item `json:"recently_completed"`
}

const recentlyCompletedLimit = 10

// active filters out archived items.
func active(items []domain.Item) []domain.Item {
	result := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if !item.Archived {
			result = append(result, item)
		}
	}
	return result
}

// ByCategory computes per-category stats. An item with N categories
// contributes to N buckets; that duplication is intentional. Tags outside
// the taxonomy are logged and skipped.
func ByCategory(items []domain.Item, logger *logrus.Logger) map[domain.Category]CategoryStat {
	result := make(map[domain.Category]CategoryStat, len(domain.AllCategories()))
	for _, cat := range domain.AllCategories() {
		result[cat] = CategoryStat{Items: []domain.Item{}}
	}

	for _, item := range active(items) {
		for _, cat := range item.Categories {
			stat, ok := result[cat]
			if !ok {
				if logger != nil {
					logger.WithFields(logrus.Fields{
						"item_id":  item.ID,
						"category": cat,
					}).Warn("item carries unknown category, skipping bucket")
				}
				continue
			}
			stat.Total++
			if item.Status == domain.StatusCompleted {
				stat.Completed++
			}
			if item.IsPriority {
				stat.Priority++
			}
			if item.Actionability == domain.ActionabilityCanDoNow {
				stat.ActionableNow++
			}
			stat.Items = append(stat.Items, item)
			result[cat] = stat
		}
	}
	return result
}

// Travel buckets travel-tagged items using location kind first, then region:
// local_city, home_country with no region set, then the five regions. Each
// well-formed item lands in exactly one bucket; an international item with no
// region is a data-integrity defect and is logged and skipped.
func Travel(items []domain.Item, logger *logrus.Logger) TravelStats {
	result := TravelStats{
		LocalCity:   []domain.Item{},
		HomeCountry: []domain.Item{},
		ByRegion:    make(map[domain.Region][]domain.Item, len(domain.AllRegions())),
	}
	for _, region := range domain.AllRegions() {
		result.ByRegion[region] = []domain.Item{}
	}

	for _, item := range active(items) {
		if !item.HasCategory(domain.CategoryTravel) {
			continue
		}
		switch {
		case item.LocationType == domain.LocationLocalCity:
			result.LocalCity = append(result.LocalCity, item)
		case item.LocationType == domain.LocationHomeCountry && item.Region == "":
			result.HomeCountry = append(result.HomeCountry, item)
		case item.Region.IsValid():
			result.ByRegion[item.Region] = append(result.ByRegion[item.Region], item)
		default:
			if logger != nil {
				logger.WithFields(logrus.Fields{
					"item_id":       item.ID,
					"location_type": item.LocationType,
					"region":        item.Region,
				}).Warn("travel item fits no bucket, skipping")
			}
		}
	}
	return result
}

// ByYear buckets items by exact target-year match against the supported
// planning years, with an unassigned bucket for items that have no target
// year (or one outside the supported set). Gastronomy items are excluded.
func ByYear(items []domain.Item) YearStats {
	result := YearStats{
		ByYear:     make(map[int][]domain.Item, len(taxonomy.SupportedYears)),
		Unassigned: []domain.Item{},
	}
	for _, year := range taxonomy.SupportedYears {
		result.ByYear[year] = []domain.Item{}
	}

	for _, item := range active(items) {
		if item.IsGastronomy() {
			continue
		}
		if item.TargetYear != nil && taxonomy.IsSupportedYear(*item.TargetYear) {
			year := *item.TargetYear
			result.ByYear[year] = append(result.ByYear[year], item)
			continue
		}
		result.Unassigned = append(result.Unassigned, item)
	}
	return result
}

// ByOwner buckets non-gastronomy items by the three ownership values.
// An owner outside the closed set is skipped.
func ByOwner(items []domain.Item) OwnershipStats {
	result := OwnershipStats{
		ByOwner: map[domain.Owner][]domain.Item{
			domain.OwnerJoint:    {},
			domain.OwnerPartnerA: {},
			domain.OwnerPartnerB: {},
		},
	}

	for _, item := range active(items) {
		if item.IsGastronomy() {
			continue
		}
		bucket, ok := result.ByOwner[item.Owner]
		if !ok {
			continue
		}
		result.ByOwner[item.Owner] = append(bucket, item)
	}
	return result
}

// Insights computes the cross-cutting summary. CompletionPercentage is the
// rounded integer percentage, defined as 0 for an empty collection.
func Insights(items []domain.Item) InsightStats {
	result := InsightStats{
		PriorityBacklog:   []domain.Item{},
		NearTermTargets:   []domain.Item{},
		ActionableLocal:   []domain.Item{},
		RecentlyCompleted: []domain.Item{},
	}

	nearest := taxonomy.NearestYear()
	var completed []domain.Item

	for _, item := range active(items) {
		result.Total++
		if item.Status == domain.StatusCompleted {
			result.Completed++
			completed = append(completed, item)
		}
		if item.IsPriority && item.Status != domain.StatusCompleted {
			result.PriorityBacklog = append(result.PriorityBacklog, item)
		}
		if !item.IsGastronomy() && item.TargetYear != nil && *item.TargetYear == nearest {
			result.NearTermTargets = append(result.NearTermTargets, item)
		}
		if item.LocationType == domain.LocationLocalCity &&
			item.Actionability == domain.ActionabilityCanDoNow &&
			item.Status != domain.StatusCompleted {
			result.ActionableLocal = append(result.ActionableLocal, item)
		}
	}

	if result.Total > 0 {
		result.CompletionPercentage = int(math.Round(100 * float64(result.Completed) / float64(result.Total)))
	}

	// Most recent first; a missing completion date sorts as oldest.
	sort.SliceStable(completed, func(i, j int) bool {
		return completionTime(&completed[i]).After(completionTime(&completed[j]))
	})
	if len(completed) > recentlyCompletedLimit {
		completed = completed[:recentlyCompletedLimit]
	}
	if completed != nil {
		result.RecentlyCompleted = completed
	}
	return result
}

func completionTime(item *domain.Item) time.Time {
	if item.CompletedDate == nil {
		return time.Time{}
	}
	return *item.CompletedDate
}
