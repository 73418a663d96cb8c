package pesanan

import (
	"time"

	"github.com/ariefcatur/go-warung-orders.git/internal/catalog"
)

type Order struct {
	ID          string    `json:"id"`
	TotalAmount int64     `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
	Menus       []Menu    `json:"menus"`
}

// Menu = satu baris order_menus. Tidak pernah di-query lepas dari order-nya.
type Menu struct {
	ID        string          `json:"id"`
	Quantity  int             `json:"quantity"`
	LineTotal int64           `json:"line_total"`
	Note      string          `json:"note"`
	Product   catalog.Product `json:"product"`
}

// LineInput is one requested line on order creation.
type LineInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"`
	Note      string `json:"note"`
}

// menuRow is one flat row of order_menus JOIN products JOIN categories.
type menuRow struct {
	ID              string
	Quantity        int
	LineTotal       int64
	Note            string
	ProductID       string
	ProductCode     string
	ProductName     string
	ProductPrice    int64
	ProductIsReady  bool
	ProductImageRef string
	CategoryID      int64
	CategoryName    string
}

func (r menuRow) fold() Menu {
	return Menu{
		ID:        r.ID,
		Quantity:  r.Quantity,
		LineTotal: r.LineTotal,
		Note:      r.Note,
		Product: catalog.Product{
			ID:       r.ProductID,
			Code:     r.ProductCode,
			Name:     r.ProductName,
			Price:    r.ProductPrice,
			IsReady:  r.ProductIsReady,
			ImageRef: r.ProductImageRef,
			Category: catalog.Category{ID: r.CategoryID, Name: r.CategoryName},
		},
	}
}
