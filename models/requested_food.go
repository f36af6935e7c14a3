package models

import "time"

// RequestedFood records a user's claim against a posted food. The display
// fields are copied from the food at request time so the list renders
// without a join; requestorEmail is the authorization key.
type RequestedFood struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	FoodID          uint      `gorm:"index" json:"foodId"`
	FoodName        string    `json:"foodName"`
	FoodImage       string    `json:"foodImage,omitempty"`
	PickupLocation  string    `json:"pickupLocation,omitempty"`
	ExpiredDate     time.Time `json:"expiredDate"`
	DonatorName     string    `json:"donatorName,omitempty"`
	DonatorEmail    string    `json:"donatorEmail,omitempty"`
	RequestorEmail  string    `gorm:"index;not null" json:"requestorEmail"`
	RequestDate     time.Time `json:"requestDate"`
	AdditionalNotes string    `json:"additionalNotes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
