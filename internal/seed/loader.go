package seed

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Outcome int

const (
	Skipped Outcome = iota
	Applied
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case Applied:
		return "applied"
	default:
		return "failed"
	}
}

// DBTX covers the two pool methods the loader needs. *pgxpool.Pool satisfies it.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Loader struct {
	DB  DBTX
	Log *zap.Logger
}

// Run loads db.json once. Urutan insert wajib categories -> products ->
// pesanans -> order_menus karena FK tiap tabel berikutnya harus sudah ada.
// Semua insert ON CONFLICT DO NOTHING, jadi per-row idempotent; insert pertama
// yang gagal menghentikan sisanya tanpa rollback baris yang sudah masuk.
func (l *Loader) Run(ctx context.Context, path string) (Outcome, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.Log.Info("seed dataset not found, skipping", zap.String("path", path))
		return Skipped, nil
	}
	if err != nil {
		return Failed, err
	}

	var ds dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return Failed, err
	}

	// Gate satu tabel: kalau categories sudah terisi, anggap sudah pernah seed.
	var n int
	if err := l.DB.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return Failed, err
	}
	if n > 0 {
		l.Log.Info("data already exists, skipping seed")
		return Skipped, nil
	}

	for _, c := range ds.Categories {
		if _, err := l.DB.Exec(ctx, `INSERT INTO categories (id, name) VALUES ($1, $2)
		                             ON CONFLICT (id) DO NOTHING`, c.ID, c.Nama); err != nil {
			return Failed, err
		}
	}
	l.Log.Info("seeded categories", zap.Int("count", len(ds.Categories)))

	for _, p := range ds.Products {
		if _, err := l.DB.Exec(ctx, `INSERT INTO products (id, code, name, price, is_ready, image_ref, category_id)
		                             VALUES ($1, $2, $3, $4, $5, $6, $7)
		                             ON CONFLICT (id) DO NOTHING`,
			p.ID, p.Kode, p.Nama, p.Harga, p.IsReady, p.Gambar, p.Category.ID); err != nil {
			return Failed, err
		}
	}
	l.Log.Info("seeded products", zap.Int("count", len(ds.Products)))

	orders := 0
	for _, o := range ds.Pesanans {
		// pesanan tanpa menu tidak diikutkan
		if len(o.Menus) == 0 {
			continue
		}
		if _, err := l.DB.Exec(ctx, `INSERT INTO pesanans (id, total_amount) VALUES ($1, $2)
		                             ON CONFLICT (id) DO NOTHING`, o.ID, o.TotalBayar); err != nil {
			return Failed, err
		}
		for _, m := range o.Menus {
			qty := m.Jumlah
			if qty <= 0 {
				qty = 1
			}
			if _, err := l.DB.Exec(ctx, `INSERT INTO order_menus (id, pesanan_id, product_id, quantity, line_total, note)
			                             VALUES ($1, $2, $3, $4, $5, $6)
			                             ON CONFLICT (id) DO NOTHING`,
				m.ID, o.ID, m.Product.ID, qty, m.TotalHarga, m.Keterangan); err != nil {
				return Failed, err
			}
		}
		orders++
	}
	l.Log.Info("seeded pesanans and order_menus", zap.Int("orders", orders))

	return Applied, nil
}
