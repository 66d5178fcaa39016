package service

import (
	"context"

	"sitesupply/admin-svc/internal/domain"
	"sitesupply/upstream"
)

type upstreamGateway struct {
	client *upstream.Client
}

func NewGateway(client *upstream.Client) AdminGateway {
	return &upstreamGateway{client: client}
}

// Board reads go through the tunnelled getData call, the read path the
// backend exposes to the admin side.
func (g *upstreamGateway) Requests(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := g.client.GetData(ctx, upstream.ActionGetRequests, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (g *upstreamGateway) Returns(ctx context.Context) ([]domain.ReturnOrder, error) {
	var returns []domain.ReturnOrder
	if err := g.client.GetData(ctx, upstream.ActionGetReturns, &returns); err != nil {
		return nil, err
	}
	return returns, nil
}

func (g *upstreamGateway) WorkLogs(ctx context.Context) ([]domain.WorkLog, error) {
	var logs []domain.WorkLog
	if err := g.client.GetData(ctx, upstream.ActionGetWorkLogs, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (g *upstreamGateway) UpdateOrderStatus(ctx context.Context, orderID int, status string) (upstream.Outcome, error) {
	payload := map[string]interface{}{"id": orderID, "newStatus": status}
	return g.client.PostAction(ctx, upstream.ActionUpdateStatus, payload, nil)
}

func (g *upstreamGateway) UpdateItemStatus(ctx context.Context, orderID int, itemName, thickness, size, status string) (upstream.Outcome, error) {
	payload := map[string]interface{}{
		"orderId":   orderID,
		"itemName":  itemName,
		"thickness": thickness,
		"size":      size,
		"newStatus": status,
	}
	return g.client.PostAction(ctx, upstream.ActionUpdateItemStatus, payload, nil)
}

func (g *upstreamGateway) UpdateReturnStatus(ctx context.Context, returnID int, status string) (upstream.Outcome, error) {
	payload := map[string]interface{}{"id": returnID, "newStatus": status}
	return g.client.PostAction(ctx, upstream.ActionUpdateReturnStatus, payload, nil)
}

func (g *upstreamGateway) UpdateReturnItemStatus(ctx context.Context, returnID int, itemName, status string) (upstream.Outcome, error) {
	payload := map[string]interface{}{
		"returnId":  returnID,
		"itemName":  itemName,
		"newStatus": status,
	}
	return g.client.PostAction(ctx, upstream.ActionUpdateReturnItem, payload, nil)
}
