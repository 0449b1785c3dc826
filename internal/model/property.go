package model

import "time"

type PropertyStatus string

const (
	StatusPending  PropertyStatus = "PENDING"
	StatusApproved PropertyStatus = "APPROVED"
	StatusRejected PropertyStatus = "REJECTED"
)

type PropertyType string

const (
	TypeSale PropertyType = "SALE"
	TypeRent PropertyType = "RENT"
)

// ValidPropertyType reports whether t is one of the listing types the API accepts.
func ValidPropertyType(t PropertyType) bool {
	return t == TypeSale || t == TypeRent
}

type Property struct {
	ID           int64          `db:"id" json:"id"`
	Title        string         `db:"title" json:"title"`
	Description  string         `db:"description" json:"description"`
	Price        float64        `db:"price" json:"price"`
	Type         PropertyType   `db:"type" json:"type"`
	Location     string         `db:"location" json:"location"`
	ImageURL     string         `db:"image_url" json:"imageUrl,omitempty"`
	ContactEmail string         `db:"contact_email" json:"contactEmail,omitempty"`
	ContactPhone string         `db:"contact_phone" json:"contactPhone,omitempty"`
	Status       PropertyStatus `db:"status" json:"status"`
	DateListed   time.Time      `db:"date_listed" json:"dateListed"`
	OwnerID      int64          `db:"owner_id" json:"ownerId"`
}
