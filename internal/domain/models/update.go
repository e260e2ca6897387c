package models

import "time"

// UpdateStatus is the lifecycle state of an update. Any enum value is
// accepted on update; the IN_PROGRESS → SHIPPED → DEPRECATED direction is
// intended but not enforced.
type UpdateStatus string

const (
	StatusInProgress UpdateStatus = "IN_PROGRESS"
	StatusShipped    UpdateStatus = "SHIPPED"
	StatusDeprecated UpdateStatus = "DEPRECATED"
)

// UpdateStatuses lists all valid status values.
var UpdateStatuses = []interface{}{StatusInProgress, StatusShipped, StatusDeprecated}

// Update belongs to a product and owns zero or more update points.
type Update struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	Status    UpdateStatus `json:"status"`
	Version   string       `json:"version"`
	Asset     *string      `json:"asset,omitempty"`
	ProductID string       `json:"productId"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
