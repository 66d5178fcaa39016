package service

import (
	"context"

	"sitesupply/upstream"
	"sitesupply/worker-svc/internal/catalog"
	"sitesupply/worker-svc/internal/wizard"
	"sitesupply/worker-svc/internal/worklog"
)

// upstreamGateway adapts the shared upstream client to the typed surface the
// worker service needs.
type upstreamGateway struct {
	client *upstream.Client
}

func NewGateway(client *upstream.Client) Gateway {
	return &upstreamGateway{client: client}
}

func (g *upstreamGateway) Users(ctx context.Context) ([]string, error) {
	return g.client.Users(ctx)
}

func (g *upstreamGateway) Projects(ctx context.Context) ([]upstream.ProjectRow, error) {
	return g.client.Projects(ctx)
}

func (g *upstreamGateway) Items(ctx context.Context) ([]catalog.Item, error) {
	var items []catalog.Item
	if err := g.client.GetAction(ctx, upstream.ActionGetItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (g *upstreamGateway) SubmitRequisition(ctx context.Context, payload *wizard.RequisitionPayload) (upstream.Outcome, error) {
	return g.client.PostJSON(ctx, upstream.ActionSubmitRequest, payload)
}

func (g *upstreamGateway) SubmitReturn(ctx context.Context, payload *wizard.ReturnPayload) (upstream.Outcome, error) {
	return g.client.PostJSON(ctx, upstream.ActionSubmitReturn, payload)
}

func (g *upstreamGateway) SubmitWorkLog(ctx context.Context, entry worklog.Entry) (upstream.Outcome, error) {
	return g.client.PostJSON(ctx, upstream.ActionSubmitWorkLog, entry)
}

func (g *upstreamGateway) WorkLogs(ctx context.Context) ([]worklog.Entry, error) {
	var entries []worklog.Entry
	if err := g.client.GetAction(ctx, upstream.ActionGetWorkLogs, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (g *upstreamGateway) UploadImages(ctx context.Context, req upstream.UploadRequest) (*upstream.UploadResult, error) {
	return g.client.UploadImages(ctx, req)
}

var _ Gateway = (*upstreamGateway)(nil)
