package transport

import "github.com/Skotchmaster/storefront/internal/models"

type RegisterRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Password  string `json:"password"`
}

type AuthenticateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthenticateResponse struct {
	ID    uint   `json:"id"`
	Token string `json:"token"`
}

// UpdateUserRequest replaces the whole profile; a missing field is stored empty.
type UpdateUserRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

type ProductRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

type CreateOrderRequest struct {
	UserID   uint                   `json:"user_id"`
	Products []models.OrderLineItem `json:"products"`
}

type OrderStatusRequest struct {
	Status string `json:"status" query:"status"`
}
