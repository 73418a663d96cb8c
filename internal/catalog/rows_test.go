package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductRowFold(t *testing.T) {
	r := ProductRow{
		ID:           "p1",
		Code:         "D1",
		Name:         "Tea",
		Price:        5000,
		IsReady:      true,
		ImageRef:     "tea.jpg",
		CategoryID:   1,
		CategoryName: "Drinks",
	}

	p := r.Fold()
	require.Equal(t, "p1", p.ID)
	require.Equal(t, "D1", p.Code)
	require.Equal(t, "Tea", p.Name)
	require.Equal(t, int64(5000), p.Price)
	require.True(t, p.IsReady)
	require.Equal(t, "tea.jpg", p.ImageRef)
	require.Equal(t, Category{ID: 1, Name: "Drinks"}, p.Category)
}
