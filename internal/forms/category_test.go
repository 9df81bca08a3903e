package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickfoo-owner/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestRenderCategoryTree_DepthFirstOrder(t *testing.T) {
	cats := []domain.Category{
		{ID: "a", Name: "South Indian"},
		{ID: "b", Name: "Dosa", Parent: strPtr("a")},
		{ID: "c", Name: "Masala Dosa", Parent: strPtr("b")},
		{ID: "d", Name: "Beverages"},
	}

	rows, err := RenderCategoryTree(cats)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "a", rows[0].Category.ID)
	assert.Equal(t, 0, rows[0].Depth)
	assert.Equal(t, "b", rows[1].Category.ID)
	assert.Equal(t, 1, rows[1].Depth)
	assert.Equal(t, "c", rows[2].Category.ID)
	assert.Equal(t, 2, rows[2].Depth)
	assert.Equal(t, "d", rows[3].Category.ID)
	assert.Equal(t, 0, rows[3].Depth)
}

func TestRenderCategoryTree_EmptyParentIsRoot(t *testing.T) {
	cats := []domain.Category{
		{ID: "a", Name: "Snacks", Parent: strPtr("")},
	}

	rows, err := RenderCategoryTree(cats)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Depth)
}

func TestRenderCategoryTree_CycleReported(t *testing.T) {
	cats := []domain.Category{
		{ID: "a", Name: "A", Parent: strPtr("b")},
		{ID: "b", Name: "B", Parent: strPtr("a")},
		{ID: "c", Name: "C"},
	}

	rows, err := RenderCategoryTree(cats)
	assert.ErrorIs(t, err, ErrCategoryCycle)

	// The healthy part of the forest still renders.
	require.Len(t, rows, 1)
	assert.Equal(t, "c", rows[0].Category.ID)
}

func TestRenderCategoryTree_OrphanIsNotACycle(t *testing.T) {
	cats := []domain.Category{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B", Parent: strPtr("deleted-parent")},
	}

	rows, err := RenderCategoryTree(cats)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestValidateCategory(t *testing.T) {
	assert.Empty(t, ValidateCategory(&domain.Category{Name: "Snacks"}))
	assert.NotEmpty(t, ValidateCategory(&domain.Category{Name: "  "}))
}
