package taxonomy

import (
	"github.com/kertapati/horizon-sub000/src/domain"
)

// CategoryInfo holds display metadata for one category tag.
type CategoryInfo struct {
	DisplayName string `json:"display_name"`
	Icon        string `json:"icon"`
	ColorScheme string `json:"color_scheme"`
}

// SupportedYears is the closed set of planning years selectable as an item
// target, nearest first. Items outside this set count as unassigned.
var SupportedYears = []int{2026, 2027, 2028, 2029, 2030}

// NearestYear returns the first supported planning year.
func NearestYear() int {
	return SupportedYears[0]
}

// IsSupportedYear reports whether the year is a selectable planning year.
func IsSupportedYear(year int) bool {
	for _, y := range SupportedYears {
		if y == year {
			return true
		}
	}
	return false
}

var registry = map[domain.Category]CategoryInfo{
	domain.CategoryAdventure:            {DisplayName: "Adventure", Icon: "compass", ColorScheme: "orange"},
	domain.CategorySkills:               {DisplayName: "Skills", Icon: "tool", ColorScheme: "blue"},
	domain.CategoryCreative:             {DisplayName: "Creative", Icon: "palette", ColorScheme: "purple"},
	domain.CategoryTravel:               {DisplayName: "Travel", Icon: "globe", ColorScheme: "teal"},
	domain.CategoryFoodDrink:            {DisplayName: "Food & Drink", Icon: "utensils", ColorScheme: "red"},
	domain.CategoryPersonalGrowth:       {DisplayName: "Personal Growth", Icon: "sprout", ColorScheme: "green"},
	domain.CategoryLifeLegacy:           {DisplayName: "Life & Legacy", Icon: "heart", ColorScheme: "pink"},
	domain.CategoryBusinessProfessional: {DisplayName: "Business & Professional", Icon: "briefcase", ColorScheme: "gray"},
	domain.CategoryMaterial:             {DisplayName: "Material", Icon: "gift", ColorScheme: "yellow"},
	domain.CategoryHealthWellness:       {DisplayName: "Health & Wellness", Icon: "activity", ColorScheme: "cyan"},
	domain.CategoryChallenges:           {DisplayName: "Challenges", Icon: "target", ColorScheme: "amber"},
	domain.CategorySocialImpact:         {DisplayName: "Social Impact", Icon: "users", ColorScheme: "lime"},
	domain.CategoryCulturalEvents:       {DisplayName: "Cultural Events", Icon: "landmark", ColorScheme: "indigo"},
	domain.CategorySportingEvents:       {DisplayName: "Sporting Events", Icon: "trophy", ColorScheme: "emerald"},
	domain.CategoryMusicParty:           {DisplayName: "Music & Party", Icon: "music", ColorScheme: "fuchsia"},
}

// Info returns display metadata for a category. The second return is false
// for a tag outside the closed set; callers log and skip rather than panic.
func Info(c domain.Category) (CategoryInfo, bool) {
	info, ok := registry[c]
	return info, ok
}
