package model

import "time"

// CatalogAction names the admin mutation behind a CatalogEvent.
type CatalogAction string

const (
	ActionProductCreated CatalogAction = "product_created"
	ActionProductUpdated CatalogAction = "product_updated"
	ActionProductDeleted CatalogAction = "product_deleted"
)

// EventTypeCatalogUpdate is the "type" of every event pushed to viewers.
const EventTypeCatalogUpdate = "catalog_update"

// EventActor identifies the admin who made a change.
type EventActor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CatalogEvent is published after a mutation has been confirmed by the store.
type CatalogEvent struct {
	Type          string        `json:"type"`
	Action        CatalogAction `json:"action"`
	ProductID     string        `json:"product_id"`
	Product       *Product      `json:"product,omitempty"` // nil for deletions
	PreviousPrice *float64      `json:"previous_price,omitempty"`
	Actor         EventActor    `json:"user"`
	At            time.Time     `json:"at"`
}
