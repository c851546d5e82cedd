package events

type UserEvent struct {
	Type     string `json:"type"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username,omitempty"`
}

type ProductEvent struct {
	Type      string `json:"type"`
	ProductID uint   `json:"product_id"`
	Name      string `json:"name,omitempty"`
}

type OrderEvent struct {
	Type    string `json:"type"`
	OrderID uint   `json:"order_id"`
	UserID  uint   `json:"user_id"`
	Items   int    `json:"items"`
}

const (
	UserRegistered    = "user_registered"
	UserAuthenticated = "user_authenticated"
	UserUpdated       = "user_updated"
	UserDeleted       = "user_deleted"

	ProductCreated = "product_created"
	ProductUpdated = "product_updated"
	ProductDeleted = "product_deleted"

	OrderCreated = "order_created"
	OrderDeleted = "order_deleted"
)
