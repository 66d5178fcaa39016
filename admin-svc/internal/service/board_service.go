package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"sitesupply/admin-svc/internal/domain"
	"sitesupply/upstream"
)

const PollInterval = 15 * time.Second

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrReturnNotFound = errors.New("return not found")
	ErrItemNotFound   = errors.New("item not found")
	ErrUpdateRejected = errors.New("後端拒絕了狀態更新")
)

// BoardService keeps the status board in memory. Writes are optimistic: the
// local copy changes first, the backend is told second, and a definite
// rejection triggers a corrective refetch.
type BoardService struct {
	gateway   AdminGateway
	publisher StatusPublisher

	mu          sync.Mutex
	orders      []domain.Order
	returns     []domain.ReturnOrder
	refreshing  bool
	activeTab   string
	lastRefresh time.Time
}

func NewBoardService(gateway AdminGateway, publisher StatusPublisher) *BoardService {
	return &BoardService{
		gateway:   gateway,
		publisher: publisher,
		activeTab: "orders",
	}
}

// Refresh refetches both lists. Only one refresh runs at a time; a call that
// finds one in flight returns immediately so a slow backend cannot stack
// requests behind the poller.
func (s *BoardService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.refreshing {
		s.mu.Unlock()
		return nil
	}
	s.refreshing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.refreshing = false
		s.mu.Unlock()
	}()

	orders, err := s.gateway.Requests(ctx)
	if err != nil {
		return err
	}
	returns, err := s.gateway.Returns(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.orders = orders
	s.returns = returns
	s.lastRefresh = time.Now()
	s.mu.Unlock()
	return nil
}

// Run polls the backend until the context is cancelled.
func (s *BoardService) Run(ctx context.Context) {
	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				log.Printf("[admin-svc] board refresh failed: %v", err)
			}
		}
	}
}

// Orders returns a snapshot with every order's lines cloned, so encoding it
// never races an optimistic update flipping a line status.
func (s *BoardService) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]domain.Order, len(s.orders))
	for i, order := range s.orders {
		orders[i] = order.Clone()
	}
	return orders
}

func (s *BoardService) Returns() []domain.ReturnOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	returns := make([]domain.ReturnOrder, len(s.returns))
	for i, ret := range s.returns {
		returns[i] = ret.Clone()
	}
	return returns
}

// WorkLogs reads straight through to the backend. The log tab is read-only,
// so there is no cached copy to keep consistent.
func (s *BoardService) WorkLogs(ctx context.Context) ([]domain.WorkLog, error) {
	return s.gateway.WorkLogs(ctx)
}

func (s *BoardService) PendingOrders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := []domain.Order{}
	for _, order := range s.orders {
		if order.Pending() {
			pending = append(pending, order.Clone())
		}
	}
	return pending
}

func (s *BoardService) PendingReturns() []domain.ReturnOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := []domain.ReturnOrder{}
	for _, ret := range s.returns {
		if ret.Pending() {
			pending = append(pending, ret.Clone())
		}
	}
	return pending
}

func (s *BoardService) ActiveTab() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTab
}

func (s *BoardService) SetActiveTab(tab string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeTab = tab
}

func (s *BoardService) LastRefresh() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRefresh
}

// UpdateOrderStatus marks a whole order, lines included.
func (s *BoardService) UpdateOrderStatus(ctx context.Context, orderID int, status string) error {
	s.mu.Lock()
	order := s.findOrder(orderID)
	if order == nil {
		s.mu.Unlock()
		return ErrOrderNotFound
	}
	project := order.Project
	order.Status = status
	for i := range order.Items {
		order.Items[i].Status = status
	}
	s.mu.Unlock()

	outcome, err := s.gateway.UpdateOrderStatus(ctx, orderID, status)
	if err := s.settle(outcome, err); err != nil {
		return err
	}

	s.publish(ctx, domain.StatusEvent{
		Type: domain.EventTypeStatusChange, Kind: domain.KindOrder,
		OrderID: orderID, Status: status, Project: project, Timestamp: time.Now(),
	})
	return nil
}

// UpdateItemStatus marks one line of an order.
func (s *BoardService) UpdateItemStatus(ctx context.Context, orderID int, itemName, thickness, size, status string) error {
	s.mu.Lock()
	order := s.findOrder(orderID)
	if order == nil {
		s.mu.Unlock()
		return ErrOrderNotFound
	}
	project := order.Project
	found := false
	for i := range order.Items {
		if order.Items[i].Matches(itemName, thickness, size) {
			order.Items[i].Status = status
			found = true
		}
	}
	s.mu.Unlock()
	if !found {
		return ErrItemNotFound
	}

	outcome, err := s.gateway.UpdateItemStatus(ctx, orderID, itemName, thickness, size, status)
	if err := s.settle(outcome, err); err != nil {
		return err
	}

	s.publish(ctx, domain.StatusEvent{
		Type: domain.EventTypeStatusChange, Kind: domain.KindOrderItem,
		OrderID: orderID, ItemName: itemName, Status: status, Project: project, Timestamp: time.Now(),
	})
	return nil
}

func (s *BoardService) UpdateReturnStatus(ctx context.Context, returnID int, status string) error {
	s.mu.Lock()
	ret := s.findReturn(returnID)
	if ret == nil {
		s.mu.Unlock()
		return ErrReturnNotFound
	}
	project := ret.Project
	ret.Status = status
	for i := range ret.Items {
		ret.Items[i].Status = status
	}
	s.mu.Unlock()

	outcome, err := s.gateway.UpdateReturnStatus(ctx, returnID, status)
	if err := s.settle(outcome, err); err != nil {
		return err
	}

	s.publish(ctx, domain.StatusEvent{
		Type: domain.EventTypeStatusChange, Kind: domain.KindReturn,
		OrderID: returnID, Status: status, Project: project, Timestamp: time.Now(),
	})
	return nil
}

func (s *BoardService) UpdateReturnItemStatus(ctx context.Context, returnID int, itemName, status string) error {
	s.mu.Lock()
	ret := s.findReturn(returnID)
	if ret == nil {
		s.mu.Unlock()
		return ErrReturnNotFound
	}
	project := ret.Project
	found := false
	for i := range ret.Items {
		if ret.Items[i].Name == itemName {
			ret.Items[i].Status = status
			found = true
		}
	}
	s.mu.Unlock()
	if !found {
		return ErrItemNotFound
	}

	outcome, err := s.gateway.UpdateReturnItemStatus(ctx, returnID, itemName, status)
	if err := s.settle(outcome, err); err != nil {
		return err
	}

	s.publish(ctx, domain.StatusEvent{
		Type: domain.EventTypeStatusChange, Kind: domain.KindReturnItem,
		OrderID: returnID, ItemName: itemName, Status: status, Project: project, Timestamp: time.Now(),
	})
	return nil
}

// settle resolves an optimistic write. A transport error or definite
// rejection rolls the board back by refetching in the background, so the
// failed update's response does not wait on two more round-trips; an unknown
// outcome stands.
func (s *BoardService) settle(outcome upstream.Outcome, err error) error {
	if err != nil {
		go s.refetch()
		return err
	}
	if outcome == upstream.OutcomeFailure {
		go s.refetch()
		return ErrUpdateRejected
	}
	return nil
}

// refetch runs detached from the request that triggered it.
func (s *BoardService) refetch() {
	if err := s.Refresh(context.Background()); err != nil {
		log.Printf("[admin-svc] corrective refetch failed: %v", err)
	}
}

// publish is best effort. The audit trail losing an event must not fail the
// status change itself.
func (s *BoardService) publish(ctx context.Context, event domain.StatusEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishStatusChange(ctx, event); err != nil {
		log.Printf("[admin-svc] failed to publish status event: %v", err)
	}
}

func (s *BoardService) findOrder(orderID int) *domain.Order {
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			return &s.orders[i]
		}
	}
	return nil
}

func (s *BoardService) findReturn(returnID int) *domain.ReturnOrder {
	for i := range s.returns {
		if s.returns[i].ID == returnID {
			return &s.returns[i]
		}
	}
	return nil
}
