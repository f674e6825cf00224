package projects

import (
	"testing"

	"github.com/suryansh14it/eco-sphere-sub000/src/models"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParams(t *testing.T) {
	t.Run("TestDefaults", func(t *testing.T) {
		params := models.DefaultPagination()
		assert.Equal(t, 1, params.Page)
		assert.Equal(t, 10, params.Limit)
		assert.Equal(t, int64(0), params.GetSkip())
	})

	t.Run("TestSkipForLaterPage", func(t *testing.T) {
		params := models.PaginationParams{Page: 3, Limit: 25}
		assert.Equal(t, int64(50), params.GetSkip())
	})

	t.Run("TestSortOrderAscending", func(t *testing.T) {
		params := models.PaginationParams{SortBy: "createdAt", Order: "asc"}
		assert.Equal(t, map[string]int{"createdAt": 1}, params.GetSortOrder())
	})

	t.Run("TestSortOrderDescending", func(t *testing.T) {
		params := models.PaginationParams{SortBy: "createdAt", Order: "desc"}
		assert.Equal(t, map[string]int{"createdAt": -1}, params.GetSortOrder())
	})
}

func TestPaginatedResponse(t *testing.T) {
	params := models.PaginationParams{Page: 2, Limit: 10}
	resp := models.NewPaginatedResponse([]models.Project{}, 35, params)

	assert.Equal(t, int64(35), resp.Total)
	assert.Equal(t, 4, resp.TotalPages)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrevious)
}
