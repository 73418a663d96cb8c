package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDB struct {
	catCount int
	execSQL  []string
	execArgs [][]any
	failAt   int // index exec yang harus gagal; -1 = tidak pernah
}

func newFakeDB() *fakeDB { return &fakeDB{failAt: -1} }

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.failAt >= 0 && len(f.execSQL) == f.failAt {
		return pgconn.CommandTag{}, errors.New("insert failed")
	}
	f.execSQL = append(f.execSQL, sql)
	f.execArgs = append(f.execArgs, args)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return countRow{n: f.catCount}
}

type countRow struct{ n int }

func (r countRow) Scan(dest ...any) error {
	*(dest[0].(*int)) = r.n
	return nil
}

const sampleDataset = `{
  "categories": [{"id": 1, "nama": "Drinks"}, {"id": 2, "nama": "Food"}],
  "products": [
    {"id": "p1", "kode": "D1", "nama": "Tea", "harga": 5000, "is_ready": true, "gambar": "tea.jpg", "category": {"id": 1}}
  ],
  "pesanans": [
    {"id": "o1", "total_bayar": 10000, "menus": [
      {"id": "m1", "product": {"id": "p1"}, "jumlah": 0, "total_harga": 10000, "keterangan": ""}
    ]},
    {"id": "o2", "total_bayar": 5000, "menus": []}
  ]
}`

func writeDataset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunMissingFileSkips(t *testing.T) {
	db := newFakeDB()
	l := &Loader{DB: db, Log: zap.NewNop()}

	out, err := l.Run(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.Equal(t, Skipped, out)
	require.Empty(t, db.execSQL)
}

func TestRunExistingRowsSkip(t *testing.T) {
	db := newFakeDB()
	db.catCount = 3
	l := &Loader{DB: db, Log: zap.NewNop()}

	out, err := l.Run(context.Background(), writeDataset(t, sampleDataset))
	require.NoError(t, err)
	require.Equal(t, Skipped, out)
	require.Empty(t, db.execSQL, "gate harus mencegah semua insert")
}

func TestRunAppliesInReferentialOrder(t *testing.T) {
	db := newFakeDB()
	l := &Loader{DB: db, Log: zap.NewNop()}

	out, err := l.Run(context.Background(), writeDataset(t, sampleDataset))
	require.NoError(t, err)
	require.Equal(t, Applied, out)

	// 2 categories + 1 product + 1 pesanan header + 1 menu; o2 tanpa menu skip
	require.Len(t, db.execSQL, 5)
	require.Contains(t, db.execSQL[0], "INSERT INTO categories")
	require.Contains(t, db.execSQL[1], "INSERT INTO categories")
	require.Contains(t, db.execSQL[2], "INSERT INTO products")
	require.Contains(t, db.execSQL[3], "INSERT INTO pesanans")
	require.Contains(t, db.execSQL[4], "INSERT INTO order_menus")

	for _, sql := range db.execSQL {
		require.Contains(t, sql, "ON CONFLICT (id) DO NOTHING")
	}

	// category id produk dicoerce ke int64
	require.Equal(t, int64(1), db.execArgs[2][6])
	// jumlah 0 di dataset -> default 1
	require.Equal(t, 1, db.execArgs[4][3])
	// pesanan kosong tidak pernah di-insert
	for _, args := range db.execArgs {
		for _, a := range args {
			require.NotEqual(t, "o2", a)
		}
	}
}

func TestRunIsIdempotentAcrossInvocations(t *testing.T) {
	db := newFakeDB()
	l := &Loader{DB: db, Log: zap.NewNop()}
	path := writeDataset(t, sampleDataset)

	out, err := l.Run(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, Applied, out)
	inserted := len(db.execSQL)

	// run kedua: tabel categories sudah terisi
	db.catCount = 2
	out, err = l.Run(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, Skipped, out)
	require.Len(t, db.execSQL, inserted, "tidak boleh ada insert tambahan")
}

func TestRunMalformedJSONFails(t *testing.T) {
	db := newFakeDB()
	l := &Loader{DB: db, Log: zap.NewNop()}

	out, err := l.Run(context.Background(), writeDataset(t, "{not json"))
	require.Error(t, err)
	require.Equal(t, Failed, out)
	require.Empty(t, db.execSQL)
}

func TestRunAbortsOnFirstFailure(t *testing.T) {
	db := newFakeDB()
	db.failAt = 2 // gagal di insert product pertama
	l := &Loader{DB: db, Log: zap.NewNop()}

	out, err := l.Run(context.Background(), writeDataset(t, sampleDataset))
	require.Error(t, err)
	require.Equal(t, Failed, out)

	// categories yang sudah masuk dibiarkan, sisanya tidak disentuh
	require.Len(t, db.execSQL, 2)
	for _, sql := range db.execSQL {
		require.True(t, strings.Contains(sql, "INSERT INTO categories"))
	}
}
