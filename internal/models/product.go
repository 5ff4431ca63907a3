package models

import "gorm.io/gorm"

// Product is an item listed by a user. Names are unique across the whole
// catalog, not per owner. UserID references the listing user but is not a
// foreign key; deleting a user leaves their products behind.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	ImgURL      string  `json:"imgUrl"`
	UserID      string  `json:"userId" gorm:"index;type:varchar(36)" validate:"required"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
