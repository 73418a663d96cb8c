package cart

import (
	"time"

	"github.com/ariefcatur/go-warung-orders.git/internal/catalog"
)

// Item adalah satu baris keranjang, selalu direturn lengkap dengan product +
// category hasil join.
type Item struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"created_at"`
	Product   catalog.Product `json:"product"`
}

// itemRow is one flat row of keranjangs JOIN products JOIN categories, product
// columns aliased with a product_ prefix, category columns with category_.
type itemRow struct {
	ID              string
	ProductID       string
	Quantity        int
	Note            string
	CreatedAt       time.Time
	ProductCode     string
	ProductName     string
	ProductPrice    int64
	ProductIsReady  bool
	ProductImageRef string
	CategoryID      int64
	CategoryName    string
}

func (r itemRow) fold() Item {
	return Item{
		ID:        r.ID,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		Note:      r.Note,
		CreatedAt: r.CreatedAt,
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
