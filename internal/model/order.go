package model

import "time"

// Order represents a completed or pending sale, as owned by the server and
// listed per seller on the dashboard.
type Order struct {
	ID             int       `json:"id" db:"id"`
	BuyerEmail     string    `json:"buyer_email" db:"buyer_email"`
	RobloxUsername string    `json:"roblox_username" db:"roblox_username"`
	Amount         int       `json:"amount" db:"amount"`
	TotalPrice     float64   `json:"total_price" db:"total_price"`
	Commission     float64   `json:"commission" db:"commission"`
	Status         string    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Order status values.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// OrderRecord is the full order row written on a purchase.
type OrderRecord struct {
	ProductID      int
	SellerID       int
	BuyerEmail     string
	RobloxUsername string
	Amount         int
	TotalPrice     float64
	Commission     float64
	CommissionCard string
	Status         string
}

// OrderRequest is the request payload for creating an order.
type OrderRequest struct {
	ProductID      int    `json:"product_id"`
	BuyerEmail     string `json:"buyer_email"`
	RobloxUsername string `json:"roblox_username"`
}

// OrderCreatedResponse is the response payload after a successful purchase.
type OrderCreatedResponse struct {
	Success        bool    `json:"success"`
	OrderID        int     `json:"order_id"`
	TotalPrice     float64 `json:"total_price"`
	Commission     float64 `json:"commission"`
	CommissionCard string  `json:"commission_card"`
	Error          string  `json:"error,omitempty"`
}

// OrdersResponse wraps a seller-scoped order listing.
type OrdersResponse struct {
	Orders []Order `json:"orders"`
}
