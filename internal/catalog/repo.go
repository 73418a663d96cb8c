package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("product not found")

type Repo struct{ DB *pgxpool.Pool }

// Produk tanpa category yang valid tidak pernah keluar (INNER JOIN).
const productSelect = `SELECT p.id, p.code, p.name, p.price, p.is_ready, p.image_ref,
       c.id AS category_id, c.name AS category_name
FROM products p
JOIN categories c ON p.category_id = c.id`

func (r *Repo) List(ctx context.Context, f ProductFilter) ([]Product, error) {
	sql := productSelect
	where, args := f.Build()
	if where != "" {
		sql += " WHERE " + where
	}
	sql += " ORDER BY p.id"

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Product{}
	for rows.Next() {
		var pr ProductRow
		if err := rows.Scan(&pr.ID, &pr.Code, &pr.Name, &pr.Price, &pr.IsReady, &pr.ImageRef,
			&pr.CategoryID, &pr.CategoryName); err != nil {
			return nil, err
		}
		out = append(out, pr.Fold())
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id string) (Product, error) {
	var pr ProductRow
	err := r.DB.QueryRow(ctx, productSelect+" WHERE p.id = $1", id).
		Scan(&pr.ID, &pr.Code, &pr.Name, &pr.Price, &pr.IsReady, &pr.ImageRef,
			&pr.CategoryID, &pr.CategoryName)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return pr.Fold(), nil
}

func (r *Repo) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
