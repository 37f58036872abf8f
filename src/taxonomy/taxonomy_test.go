package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kertapati/horizon-sub000/src/domain"
	"github.com/kertapati/horizon-sub000/src/taxonomy"
)

func TestInfo_CoversEveryCategory(t *testing.T) {
	for _, cat := range domain.AllCategories() {
		info, ok := taxonomy.Info(cat)
		assert.True(t, ok, "category %s", cat)
		assert.NotEmpty(t, info.DisplayName, "category %s", cat)
		assert.NotEmpty(t, info.Icon, "category %s", cat)
		assert.NotEmpty(t, info.ColorScheme, "category %s", cat)
	}
}

func TestInfo_UnknownCategory(t *testing.T) {
	_, ok := taxonomy.Info(domain.Category("underwater_basket_weaving"))
	assert.False(t, ok)
}

func TestSupportedYears(t *testing.T) {
	assert.Equal(t, []int{2026, 2027, 2028, 2029, 2030}, taxonomy.SupportedYears)
	assert.Equal(t, 2026, taxonomy.NearestYear())
}

func TestIsSupportedYear(t *testing.T) {
	assert.True(t, taxonomy.IsSupportedYear(2026))
	assert.True(t, taxonomy.IsSupportedYear(2030))
	assert.False(t, taxonomy.IsSupportedYear(2025))
	assert.False(t, taxonomy.IsSupportedYear(2031))
	assert.False(t, taxonomy.IsSupportedYear(0))
}
