package service

import (
	"context"

	"sitesupply/admin-svc/internal/domain"
	"sitesupply/upstream"
)

// AdminGateway is the board's view of the sheet backend.
type AdminGateway interface {
	Requests(ctx context.Context) ([]domain.Order, error)
	Returns(ctx context.Context) ([]domain.ReturnOrder, error)
	WorkLogs(ctx context.Context) ([]domain.WorkLog, error)
	UpdateOrderStatus(ctx context.Context, orderID int, status string) (upstream.Outcome, error)
	UpdateItemStatus(ctx context.Context, orderID int, itemName, thickness, size, status string) (upstream.Outcome, error)
	UpdateReturnStatus(ctx context.Context, returnID int, status string) (upstream.Outcome, error)
	UpdateReturnItemStatus(ctx context.Context, returnID int, itemName, status string) (upstream.Outcome, error)
}

// StatusPublisher emits an event for every status change the board applies.
type StatusPublisher interface {
	PublishStatusChange(ctx context.Context, event domain.StatusEvent) error
}

var _ AdminGateway = (*upstreamGateway)(nil)
