package catalog

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID       string   `json:"id"`
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	IsReady  bool     `json:"is_ready"`
	ImageRef string   `json:"image_ref"`
	Category Category `json:"category"`
}
