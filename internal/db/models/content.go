package models

import "gorm.io/datatypes"

// GalleryItem is a picture of the public gallery.
type GalleryItem struct {
	ID      uint64 `gorm:"primaryKey" json:"id"`
	URL     string `gorm:"type:text"  json:"url"`
	Caption string `gorm:"type:text"  json:"caption"`
}

// TableName keeps the table name of the original schema.
func (GalleryItem) TableName() string { return "gallery" }

// Story is a testimonial of a beneficiary.
type Story struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255"   json:"name"`
	Role     string `gorm:"size:255"   json:"role"`
	Image    string `gorm:"type:text"  json:"image"`
	Quote    string `gorm:"type:text"  json:"quote"`
	Featured bool   `json:"featured"`
}

// TeamMember is a member of the organization team page.
type TeamMember struct {
	ID    uint64 `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:255"   json:"name"`
	Role  string `gorm:"size:255"   json:"role"`
	Image string `gorm:"type:text"  json:"image"`
}

// TableName keeps the table name of the original schema.
func (TeamMember) TableName() string { return "team" }

// Milestone is one entry of the journey timeline.
type Milestone struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	Year        string `gorm:"size:32"    json:"year"`
	Title       string `gorm:"size:255"   json:"title"`
	Description string `gorm:"type:text"  json:"description"`
}

// TableName keeps the table name of the original schema.
func (Milestone) TableName() string { return "journey" }

// Program describes one of the organization programs.
type Program struct {
	ID          uint64                      `gorm:"primaryKey" json:"id"`
	Title       string                      `gorm:"size:255"   json:"title"`
	Description string                      `gorm:"type:text"  json:"description"`
	Image       string                      `gorm:"type:text"  json:"image"`
	Features    datatypes.JSONSlice[string] `json:"features"`
}
