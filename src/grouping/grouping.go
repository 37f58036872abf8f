// Package grouping partitions one category's items into named thematic
// sub-groups for compact chip display. It is a greedy, order-sensitive,
// first-match keyword classifier, not a scoring system.
package grouping

import (
	"strings"

	"github.com/kertapati/horizon-sub000/src/domain"
)

// OtherGroup is the implicit group appended last for unmatched items.
const OtherGroup = "Other"

// AllGroup is the single group returned for categories without rules.
const AllGroup = "All"

// Group is one named sub-bucket of a category's items.
type Group struct {
	Name  string        `json:"name"`
	Items []domain.Item `json:"items"`
}

// GroupItems splits items into the category's declared sub-groups. Each item lands
// in the first rule whose keyword list has a substring match against its
// lowercased title, description and location; unmatched items fall into
// "Other". Empty groups are omitted, group order follows rule declaration
// order with "Other" last, and membership preserves input order.
func GroupItems(cat domain.Category, items []domain.Item) []Group {
	rules, ok := rulesByCategory[cat]
	if !ok {
		return []Group{{Name: AllGroup, Items: items}}
	}

	buckets := make([][]domain.Item, len(rules))
	var other []domain.Item

	for _, item := range items {
		idx := classify(rules, searchText(&item))
		if idx < 0 {
			other = append(other, item)
			continue
		}
		buckets[idx] = append(buckets[idx], item)
	}

	groups := make([]Group, 0, len(rules)+1)
	for i, r := range rules {
		if len(buckets[i]) == 0 {
			continue
		}
		groups = append(groups, Group{Name: r.Name, Items: buckets[i]})
	}
	if len(other) > 0 {
		groups = append(groups, Group{Name: OtherGroup, Items: other})
	}
	return groups
}

// classify returns the index of the first matching rule, or -1.
func classify(rules []rule, text string) int {
	for i, r := range rules {
		for _, kw := range r.Keywords {
			if strings.Contains(text, kw) {
				return i
			}
		}
	}
	return -1
}

func searchText(item *domain.Item) string {
	return strings.ToLower(item.Title + " " + item.Description + " " + item.Location)
}
