package model

// Product represents a storefront catalogue item.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// CartItem is a catalogue product together with the quantity held in a cart.
// Quantity is always >= 1; zero-quantity items are removed, never kept.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
