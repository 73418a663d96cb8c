package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("cart item not found")

type Repo struct{ DB *pgxpool.Pool }

const itemSelect = `SELECT k.id, k.product_id, k.quantity, k.note, k.created_at,
       p.code AS product_code, p.name AS product_name, p.price AS product_price,
       p.is_ready AS product_is_ready, p.image_ref AS product_image_ref,
       c.id AS category_id, c.name AS category_name
FROM keranjangs k
JOIN products p ON k.product_id = p.id
JOIN categories c ON p.category_id = c.id`

func scanItem(row pgx.Row) (Item, error) {
	var r itemRow
	err := row.Scan(&r.ID, &r.ProductID, &r.Quantity, &r.Note, &r.CreatedAt,
		&r.ProductCode, &r.ProductName, &r.ProductPrice, &r.ProductIsReady, &r.ProductImageRef,
		&r.CategoryID, &r.CategoryName)
	if err != nil {
		return Item{}, err
	}
	return r.fold(), nil
}

func (r *Repo) List(ctx context.Context) ([]Item, error) {
	rows, err := r.DB.Query(ctx, itemSelect+" ORDER BY k.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Create inserts then re-reads lewat join supaya response langsung nested.
// id pakai uuid, bukan timestamp string (rawan tabrakan saat concurrent).
func (r *Repo) Create(ctx context.Context, productID string, quantity int, note string) (Item, error) {
	id := uuid.NewString()
	_, err := r.DB.Exec(ctx, `INSERT INTO keranjangs (id, product_id, quantity, note)
	                          VALUES ($1, $2, $3, $4)`, id, productID, quantity, note)
	if err != nil {
		return Item{}, err
	}
	return r.get(ctx, id)
}

func (r *Repo) Update(ctx context.Context, id string, quantity int, note string) (Item, error) {
	ct, err := r.DB.Exec(ctx, `UPDATE keranjangs SET quantity = $1, note = $2 WHERE id = $3`,
		quantity, note, id)
	if err != nil {
		return Item{}, err
	}
	if ct.RowsAffected() == 0 {
		return Item{}, ErrNotFound
	}
	return r.get(ctx, id)
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	ct, err := r.DB.Exec(ctx, `DELETE FROM keranjangs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) get(ctx context.Context, id string) (Item, error) {
	it, err := scanItem(r.DB.QueryRow(ctx, itemSelect+" WHERE k.id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		// row ada tapi hilang dari join = product/category-nya sudah tidak valid
		return Item{}, ErrNotFound
	}
	return it, err
}
