package service

import (
	"context"

	"sitesupply/upstream"
	"sitesupply/worker-svc/internal/catalog"
	"sitesupply/worker-svc/internal/wizard"
	"sitesupply/worker-svc/internal/worklog"
)

// Gateway is the worker side of the sheet backend. Everything the service
// reads or writes remotely goes through here.
type Gateway interface {
	Users(ctx context.Context) ([]string, error)
	Projects(ctx context.Context) ([]upstream.ProjectRow, error)
	Items(ctx context.Context) ([]catalog.Item, error)
	SubmitRequisition(ctx context.Context, payload *wizard.RequisitionPayload) (upstream.Outcome, error)
	SubmitReturn(ctx context.Context, payload *wizard.ReturnPayload) (upstream.Outcome, error)
	SubmitWorkLog(ctx context.Context, entry worklog.Entry) (upstream.Outcome, error)
	WorkLogs(ctx context.Context) ([]worklog.Entry, error)
	UploadImages(ctx context.Context, req upstream.UploadRequest) (*upstream.UploadResult, error)
}

// DraftStore keeps per-user work-log drafts.
type DraftStore interface {
	Save(ctx context.Context, user string, entry worklog.Entry) error
	Load(ctx context.Context, user string) (*worklog.Entry, error)
	Clear(ctx context.Context, user string) error
}

type QRGenerator interface {
	Generate(ref string) ([]byte, error)
}
