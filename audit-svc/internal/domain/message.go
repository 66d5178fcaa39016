// Package domain mirrors the status events the admin board publishes.
package domain

import "time"

const (
	EventTypeStatusChange = "status_change"
	StatusDone            = "完成"
)

type StatusEvent struct {
	Type      string    `json:"type"`
	Kind      string    `json:"kind"`
	OrderID   int       `json:"orderId"`
	ItemName  string    `json:"itemName,omitempty"`
	Status    string    `json:"status"`
	Project   string    `json:"project,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// CompletedItem is one row of a completion ranking.
type CompletedItem struct {
	Name  string  `json:"name"`
	Count float64 `json:"count"`
}
