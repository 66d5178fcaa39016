package service

import (
	"context"

	"sitesupply/audit-svc/internal/domain"
	"sitesupply/audit-svc/internal/storage"
)

type StoreInterface interface {
	RecordCompletion(kind, itemName, project string) error
	TopCompleted(day, kind string, limit int) ([]domain.CompletedItem, error)
	ProjectTotals(limit int) ([]domain.CompletedItem, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(event domain.StatusEvent)
}

var _ StoreInterface = (*storage.Store)(nil)
