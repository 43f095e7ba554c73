// Package models contains database model definitions.
package models

// All returns every model of the schema in migration order.
func All() []any {
	return []any{
		&Setting{},
		&Product{},
		&GalleryItem{},
		&Story{},
		&TeamMember{},
		&Milestone{},
		&Program{},
		&Message{},
		&Review{},
		&Order{},
		&WishlistItem{},
		&AdminUser{},
	}
}
