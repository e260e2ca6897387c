package models

import "time"

// UpdatePoint is the leaf of the ownership chain; its effective owner is its
// update's product's owner.
type UpdatePoint struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UpdateID    string    `json:"updateId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
