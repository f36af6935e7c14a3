package models

import "time"

// StatusAvailable marks a posting that can still be browsed and requested.
// Other statuses (requested, expired, ...) are written by clients through
// the update endpoint; the server does not police transitions.
const StatusAvailable = "available"

// UserDetails is the donor snapshot embedded in a Food row. Email is the
// ownership key the identity-scoped queries filter on.
type UserDetails struct {
	Name  string `gorm:"column:owner_name" json:"name,omitempty"`
	Email string `gorm:"column:owner_email;index" json:"email"`
	Photo string `gorm:"column:owner_photo" json:"photo,omitempty"`
}

// Food is a surplus-food posting. The ID is assigned on insert and never
// changes; every other field is mutable through partial updates.
type Food struct {
	ID              uint        `gorm:"primarykey" json:"id"`
	FoodName        string      `gorm:"not null" json:"foodName"`
	FoodImage       string      `json:"foodImage,omitempty"`
	FoodQuantity    float64     `json:"foodQuantity"`
	PickupLocation  string      `json:"pickupLocation,omitempty"`
	ExpiredDate     time.Time   `gorm:"index" json:"expiredDate"`
	AdditionalNotes string      `json:"additionalNotes,omitempty"`
	Status          string      `gorm:"index;default:available" json:"status"`
	UserDetails     UserDetails `gorm:"embedded" json:"userDetails"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}
