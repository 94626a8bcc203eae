package model

// Category groups products. Products are queried live by category_id,
// the category itself keeps no product collection.
type Category struct {
	BaseModel
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required"`
}
