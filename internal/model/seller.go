package model

// Seller represents a registered marketplace seller.
type Seller struct {
	ID         int     `json:"id" db:"id"`
	Username   string  `json:"username" db:"username"`
	Email      string  `json:"email" db:"email"`
	Rating     float64 `json:"rating" db:"rating"`
	TotalSales int     `json:"total_sales" db:"total_sales"`
	CardNumber string  `json:"card_number" db:"card_number"`
}

// Auth actions accepted by the sellers endpoint.
const (
	AuthActionLogin    = "login"
	AuthActionRegister = "register"
)

// AuthRequest is the request payload for the sellers endpoint.
// Action selects between login and register; unused fields are omitted.
type AuthRequest struct {
	Action     string `json:"action"`
	Username   string `json:"username,omitempty"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	CardNumber string `json:"card_number,omitempty"`
}

// AuthResponse is the response payload for the sellers endpoint.
type AuthResponse struct {
	Success bool    `json:"success"`
	Seller  *Seller `json:"seller,omitempty"`
	Error   string  `json:"error,omitempty"`
}
