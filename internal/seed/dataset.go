package seed

// DTO mengikuti persis key db.json lama (bahasa campur), mapping ke kolom
// bahasa Inggris terjadi di statement insert.
type dataset struct {
	Categories []seedCategory `json:"categories"`
	Products   []seedProduct  `json:"products"`
	Pesanans   []seedPesanan  `json:"pesanans"`
}

type seedCategory struct {
	ID   int64  `json:"id"`
	Nama string `json:"nama"`
}

type seedProduct struct {
	ID       string `json:"id"`
	Kode     string `json:"kode"`
	Nama     string `json:"nama"`
	Harga    int64  `json:"harga"`
	IsReady  bool   `json:"is_ready"`
	Gambar   string `json:"gambar"`
	Category struct {
		ID int64 `json:"id"`
	} `json:"category"`
}

type seedPesanan struct {
	ID         string     `json:"id"`
	TotalBayar int64      `json:"total_bayar"`
	Menus      []seedMenu `json:"menus"`
}

type seedMenu struct {
	ID      string `json:"id"`
	Product struct {
		ID string `json:"id"`
	} `json:"product"`
	Jumlah     int    `json:"jumlah"`
	TotalHarga int64  `json:"total_harga"`
	Keterangan string `json:"keterangan"`
}
