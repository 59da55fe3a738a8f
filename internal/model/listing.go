package model

import "romarket/internal/pricing"

// Listing represents a seller-listed marketplace product, denominated by an
// integer Robux quantity. Discount 0 means full price applies.
type Listing struct {
	ID           int     `json:"id" db:"id"`
	Name         string  `json:"name" db:"product_type"`
	Amount       int     `json:"amount" db:"amount"`
	Price        float64 `json:"price" db:"price"`
	Discount     int     `json:"discount" db:"discount"`
	DeliveryTime string  `json:"deliveryTime" db:"delivery_time"`
	Stock        int     `json:"stock" db:"stock"`
	Seller       string  `json:"seller"`
	Rating       float64 `json:"rating"`
	Reviews      int     `json:"reviews"`
}

// FinalPrice is the price shown to buyers with the discount applied.
func (l *Listing) FinalPrice() float64 {
	return pricing.DiscountedPrice(l.Price, l.Discount)
}

// PurchaseInfo is the listing subset needed to price a purchase.
type PurchaseInfo struct {
	SellerID int
	Amount   int
	Price    float64
	Discount int
	Stock    int
}

// ListingRequest is the request payload for creating a listing.
type ListingRequest struct {
	SellerID     int     `json:"seller_id"`
	ProductType  string  `json:"product_type"`
	Amount       int     `json:"amount"`
	Price        float64 `json:"price"`
	Discount     int     `json:"discount"`
	DeliveryTime string  `json:"delivery_time"`
	Stock        int     `json:"stock"`
}

// ListingCreatedResponse is the response payload after creating a listing.
type ListingCreatedResponse struct {
	Success   bool   `json:"success"`
	ProductID int    `json:"product_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ListingsResponse wraps the active marketplace listings.
type ListingsResponse struct {
	Products []Listing `json:"products"`
}
