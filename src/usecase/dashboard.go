package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/kertapati/horizon-sub000/src/domain"
	"github.com/kertapati/horizon-sub000/src/grouping"
	"github.com/kertapati/horizon-sub000/src/stats"
	"github.com/kertapati/horizon-sub000/src/view"
)

var (
	ErrInvalidViewMode = errors.New("unknown view mode")
)

// DashboardStats bundles every rollup the dashboard renders.
type DashboardStats struct {
	Categories map[domain.Category]stats.CategoryStat `json:"categories"`
	Travel     stats.TravelStats                      `json:"travel"`
	Years      stats.YearStats                        `json:"years"`
	Ownership  stats.OwnershipStats                   `json:"ownership"`
	Insights   stats.InsightStats                     `json:"insights"`
}

// ViewResult is the filter pipeline's output for one render: priority items
// pulled into a Top Focus bucket, the remaining items, and the micro-groups
// over the remainder when a category is in play.
type ViewResult struct {
	TopFocus []domain.Item    `json:"top_focus"`
	Items    []domain.Item    `json:"items"`
	Groups   []grouping.Group `json:"groups,omitempty"`
}

// GroupsResult is the chip-cluster view for a single category.
type GroupsResult struct {
	TopFocus []domain.Item    `json:"top_focus"`
	Groups   []grouping.Group `json:"groups"`
}

// DashboardUsecase composes the pure aggregation core over the repository.
type DashboardUsecase interface {
	Stats(ctx context.Context, userID int) (*DashboardStats, error)
	View(ctx context.Context, userID int, q view.Query) (*ViewResult, error)
	Groups(ctx context.Context, userID int, cat domain.Category) (*GroupsResult, error)
}

type dashboardUsecase struct {
	itemRepo domain.ItemRepository
	logger   *logrus.Logger
}

// NewDashboardUsecase creates a new dashboard usecase
func NewDashboardUsecase(itemRepo domain.ItemRepository, logger *logrus.Logger) DashboardUsecase {
	return &dashboardUsecase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

// Stats recomputes every rollup from the user's full item collection.
func (u *dashboardUsecase) Stats(ctx context.Context, userID int) (*DashboardStats, error) {
	items, err := u.itemRepo.List(ctx, userID, domain.ItemFilter{})
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Categories: stats.ByCategory(items, u.logger),
		Travel:     stats.Travel(items, u.logger),
		Years:      stats.ByYear(items),
		Ownership:  stats.ByOwner(items),
		Insights:   stats.Insights(items),
	}, nil
}

// View runs the filter pipeline and splits priority items into Top Focus.
// The micro-grouping engine only sees the non-priority remainder, matching
// the chip display's call pattern.
func (u *dashboardUsecase) View(ctx context.Context, userID int, q view.Query) (*ViewResult, error) {
	if !q.Mode.IsValid() {
		return nil, ErrInvalidViewMode
	}
	if q.Category != "" && !q.Category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if q.Owner != "" && !q.Owner.IsValid() {
		return nil, ErrInvalidOwner
	}

	items, err := u.itemRepo.List(ctx, userID, domain.ItemFilter{})
	if err != nil {
		return nil, err
	}

	filtered := view.Apply(items, q)

	result := &ViewResult{
		TopFocus: []domain.Item{},
		Items:    []domain.Item{},
	}
	var rest []domain.Item
	for _, item := range filtered {
		if item.IsPriority {
			result.TopFocus = append(result.TopFocus, item)
		} else {
			rest = append(rest, item)
		}
	}
	result.Items = filtered

	if q.Category != "" {
		result.Groups = grouping.GroupItems(q.Category, rest)
	}
	return result, nil
}

// Groups returns the micro-group clusters for one category over the user's
// non-archived, non-completed items carrying that tag.
func (u *dashboardUsecase) Groups(ctx context.Context, userID int, cat domain.Category) (*GroupsResult, error) {
	if !cat.IsValid() {
		return nil, ErrInvalidCategory
	}

	items, err := u.itemRepo.List(ctx, userID, domain.ItemFilter{})
	if err != nil {
		return nil, err
	}

	result := &GroupsResult{TopFocus: []domain.Item{}}
	var rest []domain.Item
	for _, item := range items {
		if item.Archived || item.Status == domain.StatusCompleted || !item.HasCategory(cat) {
			continue
		}
		if item.IsPriority {
			result.TopFocus = append(result.TopFocus, item)
		} else {
			rest = append(rest, item)
		}
	}
	result.Groups = grouping.GroupItems(cat, rest)
	return result, nil
}
