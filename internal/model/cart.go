package model

// Cart belongs to one user and owns its items
type Cart struct {
	BaseModel
	UserID      uint       `gorm:"uniqueIndex" json:"user_id"`
	TotalAmount float64    `gorm:"type:decimal(10,2);default:0" json:"total_amount"`
	Items       []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// RecalculateTotal sets TotalAmount to the sum of the item totals
func (c *Cart) RecalculateTotal() {
	var total float64
	for _, item := range c.Items {
		total += item.TotalPrice
	}
	c.TotalAmount = total
}

// RemoveItem drops the item with the given ID and refreshes the total
func (c *Cart) RemoveItem(itemID uint) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
	c.RecalculateTotal()
}

type CartItem struct {
	BaseModel
	Quantity   int     `gorm:"not null" json:"quantity"`
	UnitPrice  float64 `gorm:"type:decimal(10,2)" json:"unit_price"`
	TotalPrice float64 `gorm:"type:decimal(10,2)" json:"total_price"` // Snapshot unit_price * quantity

	CartID    uint     `gorm:"index;not null" json:"cart_id"`
	ProductID *uint    `gorm:"index" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
