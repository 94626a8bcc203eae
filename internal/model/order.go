package model

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

type Order struct {
	BaseModel
	UserID      uint        `gorm:"index" json:"user_id"`
	OrderDate   time.Time   `json:"order_date"`
	TotalAmount float64     `gorm:"type:decimal(10,2)" json:"total_amount"`
	Status      OrderStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	Items       []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// OrderItem keeps a price snapshot. ProductID is nulled, not cascaded,
// when the product goes away so order history survives.
type OrderItem struct {
	BaseModel
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"type:decimal(10,2)" json:"price"`

	OrderID   uint     `gorm:"index;not null" json:"order_id"`
	ProductID *uint    `gorm:"index" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
