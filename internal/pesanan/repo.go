package pesanan

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

const menuSelect = `SELECT om.id, om.quantity, om.line_total, om.note,
       om.product_id, p.code AS product_code, p.name AS product_name,
       p.price AS product_price, p.is_ready AS product_is_ready,
       p.image_ref AS product_image_ref,
       c.id AS category_id, c.name AS category_name
FROM order_menus om
JOIN products p ON om.product_id = p.id
JOIN categories c ON p.category_id = c.id
WHERE om.pesanan_id = $1`

// List mengambil header dulu, lalu satu query menu per pesanan. N+1 memang
// disengaja mengikuti perilaku lama; urutan menu = urutan return DB.
func (r *Repo) List(ctx context.Context) ([]Order, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, total_amount, created_at
	                              FROM pesanans ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.TotalAmount, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		menus, err := r.listMenus(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Menus = menus
	}
	return out, nil
}

func (r *Repo) listMenus(ctx context.Context, orderID string) ([]Menu, error) {
	rows, err := r.DB.Query(ctx, menuSelect, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Menu{}
	for rows.Next() {
		var m menuRow
		if err := rows.Scan(&m.ID, &m.Quantity, &m.LineTotal, &m.Note,
			&m.ProductID, &m.ProductCode, &m.ProductName, &m.ProductPrice,
			&m.ProductIsReady, &m.ProductImageRef,
			&m.CategoryID, &m.CategoryName); err != nil {
			return nil, err
		}
		out = append(out, m.fold())
	}
	return out, rows.Err()
}

// Create menulis header + semua line dalam satu transaksi: gagal di line
// manapun berarti rollback total, tidak ada pesanan tanpa menu yang nyangkut.
func (r *Repo) Create(ctx context.Context, total int64, lines []LineInput) (orderID string, err error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderID = uuid.NewString()
	_, err = tx.Exec(ctx, `INSERT INTO pesanans (id, total_amount) VALUES ($1, $2)`,
		orderID, total)
	if err != nil {
		return "", err
	}

	for _, ln := range lines {
		qty := ln.Quantity
		if qty <= 0 {
			qty = 1
		}
		_, err = tx.Exec(ctx, `INSERT INTO order_menus (id, pesanan_id, product_id, quantity, line_total, note)
		                       VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.NewString(), orderID, ln.ProductID, qty, ln.LineTotal, ln.Note)
		if err != nil {
			return "", err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return orderID, nil
}
