// Package models contains data models for the chatcart service.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog item.
type Product struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(200);not null"`
	Price     float64   `json:"price" gorm:"not null"`
	Image     string    `json:"image" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index:idx_products_created_at,sort:desc"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the database table name for the Product model.
func (Product) TableName() string {
	return "products"
}
