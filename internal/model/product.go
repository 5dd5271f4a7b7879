package model

// Product represents a catalog product. The ID is assigned by the repository
// on creation and never changes afterwards.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Code        string   `json:"code"`
	Price       float64  `json:"price"`
	Status      bool     `json:"status"`
	Stock       float64  `json:"stock"`
	Category    string   `json:"category"`
	Thumbnails  []string `json:"thumbnails"`
}

// ProductInput holds the fields a client supplies when creating a product.
// Status and Thumbnails are optional; a nil Status means "default to true"
// and a nil Thumbnails means "default to empty".
type ProductInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Code        string   `json:"code"`
	Price       float64  `json:"price"`
	Status      *bool    `json:"status"`
	Stock       float64  `json:"stock"`
	Category    string   `json:"category"`
	Thumbnails  []string `json:"thumbnails"`
}

// ProductPatch holds a partial update. Only non-nil fields overwrite the
// stored product; there is no way to change the id through a patch.
type ProductPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Code        *string   `json:"code"`
	Price       *float64  `json:"price"`
	Status      *bool     `json:"status"`
	Stock       *float64  `json:"stock"`
	Category    *string   `json:"category"`
	Thumbnails  *[]string `json:"thumbnails"`
}
