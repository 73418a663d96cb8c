package pesanan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMenuRowFoldTwoLines(t *testing.T) {
	rows := []menuRow{
		{
			ID: "m1", Quantity: 2, LineTotal: 10000, Note: "",
			ProductID: "p1", ProductCode: "D1", ProductName: "Tea", ProductPrice: 5000,
			ProductIsReady: true, CategoryID: 1, CategoryName: "Drinks",
		},
		{
			ID: "m2", Quantity: 1, LineTotal: 15000, Note: "extra spicy",
			ProductID: "p2", ProductCode: "F1", ProductName: "Fried Rice", ProductPrice: 15000,
			ProductIsReady: true, CategoryID: 2, CategoryName: "Food",
		},
	}

	o := Order{ID: "o1", TotalAmount: 25000, CreatedAt: time.Now()}
	for _, r := range rows {
		o.Menus = append(o.Menus, r.fold())
	}

	require.Len(t, o.Menus, 2)
	require.Equal(t, "m1", o.Menus[0].ID)
	require.Equal(t, "Tea", o.Menus[0].Product.Name)
	require.Equal(t, "Drinks", o.Menus[0].Product.Category.Name)
	require.Equal(t, "m2", o.Menus[1].ID)
	require.Equal(t, "Fried Rice", o.Menus[1].Product.Name)
	require.Equal(t, int64(2), o.Menus[1].Product.Category.ID)
	// urutan line mengikuti urutan row sumber
	require.Equal(t, int64(10000), o.Menus[0].LineTotal)
	require.Equal(t, int64(15000), o.Menus[1].LineTotal)
}
