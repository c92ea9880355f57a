package view

// Card is the display subset of one listing record.
type Card struct {
	Index       int    `json:"index"`
	ImageURL    string `json:"image"`
	Description string `json:"description"`
	OwnerName   string `json:"owner"`
	PriceLabel  string `json:"price"`
}

// ProductDetail backs the details panel opened from a card.
type ProductDetail struct {
	ImageURL    string
	Description string
	OwnerName   string
	PriceLabel  string
}

type RecentPage struct {
	Title    string
	Cards    []Card
	Selected *ProductDetail
}
