package entity

import (
	"github.com/google/uuid"
)

type Product struct {
	Base
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       float64   `db:"price"`
	Weight      int       `db:"weight"` // grams
	CategoryID  uuid.UUID `db:"category_id"`
	Image       string    `db:"image"` // blob name, required
}
