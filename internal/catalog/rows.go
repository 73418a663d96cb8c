package catalog

// ProductRow is one flat row of products INNER JOIN categories. Joined columns
// carry a category_ alias prefix so they never collide with the product's own
// columns of the same name.
type ProductRow struct {
	ID           string
	Code         string
	Name         string
	Price        int64
	IsReady      bool
	ImageRef     string
	CategoryID   int64
	CategoryName string
}

// Fold nests the joined category columns under the product.
func (r ProductRow) Fold() Product {
	return Product{
		ID:       r.ID,
		Code:     r.Code,
		Name:     r.Name,
		Price:    r.Price,
		IsReady:  r.IsReady,
		ImageRef: r.ImageRef,
		Category: Category{ID: r.CategoryID, Name: r.CategoryName},
	}
}
