package models

const OrderStatusActive = "active"

type User struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"        json:"id"`
	Username       string `gorm:"uniqueIndex;not null"            json:"username"`
	FirstName      string `gorm:"column:firstname"                json:"firstName"`
	LastName       string `gorm:"column:lastname"                 json:"lastName"`
	PasswordDigest string `gorm:"column:password_digest;not null" json:"-"`
}

type Product struct {
	ID       uint    `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name     string  `gorm:"not null"                   json:"name"`
	Price    float64 `gorm:"type:numeric(12,2);not null" json:"price"`
	Category string  `gorm:"not null"                   json:"category"`
}

type Order struct {
	ID     uint   `gorm:"primaryKey;autoIncrement"     json:"id"`
	Status string `gorm:"not null;default:active;index" json:"status"`
	UserID uint   `gorm:"index;not null"               json:"user_id"`
	User   *User  `gorm:"constraint:OnDelete:RESTRICT" json:"-"`

	Products []OrderLineItem `gorm:"-" json:"products"`
}

// OrderProduct is one line-item row owned by an order.
type OrderProduct struct {
	ID        uint     `gorm:"primaryKey;autoIncrement"     json:"id"`
	Quantity  uint     `gorm:"not null;check:quantity > 0"  json:"quantity"`
	OrderID   uint     `gorm:"index;not null"               json:"order_id"`
	Order     *Order   `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	ProductID uint     `gorm:"index;not null"               json:"product_id"`
	Product   *Product `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

type OrderLineItem struct {
	ProductID uint `json:"product_id"`
	Quantity  uint `json:"quantity"`
}

func (p OrderProduct) LineItem() OrderLineItem {
	return OrderLineItem{ProductID: p.ProductID, Quantity: p.Quantity}
}

// PublicUser is the user view embedded in session tokens.
type PublicUser struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func All() []any {
	return []any{&User{}, &Product{}, &Order{}, &OrderProduct{}}
}
