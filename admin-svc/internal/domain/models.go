// Package domain holds the order and return records as the sheet backend
// reports them.
package domain

import (
	"strings"
	"time"
)

const (
	StatusPending = "待處理"
	StatusDone    = "完成"
)

// Item is one line of an order or a return. Identity on the board is the
// name/thickness/size triple; the sheet has no per-line IDs.
type Item struct {
	Name      string `json:"name"`
	Thickness string `json:"thickness,omitempty"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Status    string `json:"status"`
}

func (i Item) Matches(name, thickness, size string) bool {
	return i.Name == name && i.Thickness == thickness && i.Size == size
}

// Done tolerates the trailing whitespace the sheet sometimes stores.
func (i Item) Done() bool {
	return strings.TrimSpace(i.Status) == StatusDone
}

type Order struct {
	ID              int    `json:"id"`
	User            string `json:"user"`
	UserPhone       string `json:"userPhone,omitempty"`
	Project         string `json:"project"`
	DeliveryAddress string `json:"deliveryAddress,omitempty"`
	DeliveryDate    string `json:"deliveryDate,omitempty"`
	RecipientName   string `json:"recipientName,omitempty"`
	RecipientPhone  string `json:"recipientPhone,omitempty"`
	Timestamp       string `json:"timestamp,omitempty"`
	Status          string `json:"status"`
	Items           []Item `json:"items"`
}

// Clone detaches the order from the board's backing array so a snapshot can
// be read while the board keeps mutating line statuses.
func (o Order) Clone() Order {
	o.Items = append([]Item(nil), o.Items...)
	return o
}

// Pending reports whether any line still needs handling. Orders without
// lines fall back to their own status field.
func (o Order) Pending() bool {
	if len(o.Items) == 0 {
		return strings.TrimSpace(o.Status) != StatusDone
	}
	for _, item := range o.Items {
		if !item.Done() {
			return true
		}
	}
	return false
}

type ReturnOrder struct {
	ID        int    `json:"id"`
	User      string `json:"user"`
	Project   string `json:"project"`
	Timestamp string `json:"timestamp,omitempty"`
	Status    string `json:"status"`
	Items     []Item `json:"items"`
}

func (r ReturnOrder) Clone() ReturnOrder {
	r.Items = append([]Item(nil), r.Items...)
	return r
}

func (r ReturnOrder) Pending() bool {
	if len(r.Items) == 0 {
		return strings.TrimSpace(r.Status) != StatusDone
	}
	for _, item := range r.Items {
		if !item.Done() {
			return true
		}
	}
	return false
}

// WorkLog is one daily work-log record. The board lists these read-only,
// newest first as the sheet returns them.
type WorkLog struct {
	ID        string   `json:"id,omitempty"`
	Date      string   `json:"date"`
	Project   string   `json:"project"`
	Term      string   `json:"term"`
	TimeSlot  string   `json:"timeSlot"`
	Content   string   `json:"content"`
	User      string   `json:"user"`
	ImageURLs []string `json:"imageUrls,omitempty"`
	FolderURL string   `json:"folderUrl,omitempty"`
}

// StatusEvent is published whenever the board changes a status.
type StatusEvent struct {
	Type      string    `json:"type"`
	Kind      string    `json:"kind"`
	OrderID   int       `json:"orderId"`
	ItemName  string    `json:"itemName,omitempty"`
	Status    string    `json:"status"`
	Project   string    `json:"project,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	EventTypeStatusChange = "status_change"

	KindOrder      = "order"
	KindOrderItem  = "order_item"
	KindReturn     = "return"
	KindReturnItem = "return_item"
)
