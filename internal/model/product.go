package model

type Product struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_product_name_brand" json:"name"`
	Brand       string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_product_name_brand" json:"brand"`
	Price       float64 `gorm:"type:decimal(10,2);default:0" json:"price"`
	Inventory   int     `gorm:"default:0" json:"inventory"`
	Description string  `gorm:"type:text" json:"description"`

	// Relasi
	CategoryID *uint     `gorm:"index" json:"category_id,omitempty"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// ProductResponse is the response shape of a product, images attached
type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Price       float64         `json:"price"`
	Inventory   int             `json:"inventory"`
	Description string          `json:"description"`
	Category    *Category       `json:"category"`
	Images      []ImageResponse `json:"images"`
}

// ToResponse converts Product to ProductResponse. Images are loaded by the
// caller since they are not joined with the product row.
func (p *Product) ToResponse(images []Image) ProductResponse {
	response := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		Price:       p.Price,
		Inventory:   p.Inventory,
		Description: p.Description,
		Category:    p.Category,
		Images:      make([]ImageResponse, len(images)),
	}
	for i := range images {
		response.Images[i] = images[i].ToResponse()
	}
	return response
}
