package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"sitesupply/upstream"
	"sitesupply/worker-svc/internal/catalog"
	"sitesupply/worker-svc/internal/wizard"
	"sitesupply/worker-svc/internal/worklog"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownUser     = errors.New("名單中沒有這位使用者")
	ErrUnknownLine     = errors.New("購物車裡沒有這個品項")
	ErrRefNotFound     = errors.New("submission reference not found")
	ErrSubmitRejected  = errors.New("後端拒絕了這筆申請")
)

// Photo is one raw upload from the work-log form, before compression.
type Photo struct {
	Name string
	Data []byte
}

// WorkerService owns the reference data, the wizard sessions and the work-log
// flow for one running instance.
type WorkerService struct {
	gateway Gateway
	drafts  DraftStore
	qr      QRGenerator

	mu          sync.Mutex
	users       []string
	projects    []upstream.ProjectRow
	index       *catalog.Index
	sessions    map[string]*wizard.Session
	submissions map[string][]byte
}

func NewWorkerService(gateway Gateway, drafts DraftStore, qr QRGenerator) *WorkerService {
	return &WorkerService{
		gateway:     gateway,
		drafts:      drafts,
		qr:          qr,
		index:       catalog.NewIndex(nil),
		sessions:    make(map[string]*wizard.Session),
		submissions: make(map[string][]byte),
	}
}

// LoadReferenceData pulls users, projects and the product catalog from the
// backend. Called at startup and again whenever a refresh is requested.
func (s *WorkerService) LoadReferenceData(ctx context.Context) error {
	users, err := s.gateway.Users(ctx)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	projects, err := s.gateway.Projects(ctx)
	if err != nil {
		return fmt.Errorf("load projects: %w", err)
	}
	items, err := s.gateway.Items(ctx)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}

	s.mu.Lock()
	s.users = users
	s.projects = projects
	s.index = catalog.NewIndex(items)
	s.mu.Unlock()

	log.Printf("[worker-svc] reference data loaded: %d users, %d project rows, %d items",
		len(users), len(projects), len(items))
	return nil
}

func (s *WorkerService) Users() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.users...)
}

func (s *WorkerService) ProjectNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return worklog.ProjectNames(s.projects)
}

func (s *WorkerService) TermsFor(project string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return worklog.TermsFor(s.projects, project)
}

func (s *WorkerService) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Categories()
}

func (s *WorkerService) Subcategories(category string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Subcategories(category)
}

func (s *WorkerService) Thicknesses(category, subcategory string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Thicknesses(category, subcategory)
}

func (s *WorkerService) Sizes(category, subcategory, thickness string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Sizes(category, subcategory, thickness)
}

func (s *WorkerService) ItemsUnder(path catalog.Path) []catalog.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Filter(path)
}

func (s *WorkerService) SearchItems(term string) []catalog.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Search(term)
}

func (s *WorkerService) CreateSession() *wizard.Session {
	session := wizard.NewSession(uuid.NewString())
	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()
	return session
}

// SnapshotOf copies the session under the service lock, so a handler can
// encode the copy while other requests on the same token keep mutating it.
func (s *WorkerService) SnapshotOf(session *wizard.Session) wizard.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return session.Snapshot()
}

func (s *WorkerService) Session(token string) (*wizard.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *WorkerService) Login(token, user string) (*wizard.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !s.knownUser(user) {
		return nil, ErrUnknownUser
	}
	if err := session.Login(user); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *WorkerService) knownUser(user string) bool {
	for _, known := range s.users {
		if known == user {
			return true
		}
	}
	return false
}

func (s *WorkerService) SetProjectInfo(token, project, address, date, userPhone, recipientName, recipientPhone string) (*wizard.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if err := session.SetProjectInfo(project, address, date, userPhone, recipientName, recipientPhone); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *WorkerService) Navigate(token string, step wizard.Step) (*wizard.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if err := session.NavigateTo(step); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *WorkerService) Reset(token string, toReturnFlow bool) (*wizard.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.Reset(toReturnFlow)
	return session, nil
}

// SetCartQuantity reconciles one catalog line of the session's cart.
func (s *WorkerService) SetCartQuantity(token string, key catalog.Key, quantity int) (*wizard.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !session.Cart.SetQuantity(s.index, key, quantity) {
		return nil, ErrUnknownLine
	}
	return session, nil
}

func (s *WorkerService) AdjustCart(token string, key catalog.Key, delta int) (*wizard.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !session.Cart.Adjust(s.index, key, delta) {
		return nil, ErrUnknownLine
	}
	return session, nil
}

func (s *WorkerService) AddManualItem(token, name, unit string, quantity int) (*wizard.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if err := session.Cart.AddManual(name, unit, quantity); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *WorkerService) RemoveCartLine(token, lineID string) (*wizard.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.Cart.RemoveByID(lineID)
	return session, nil
}

func (s *WorkerService) AddReturnLine(token, name string, quantity int, reason string) (*wizard.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if _, err := session.ReturnCart.Add(name, quantity, reason); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *WorkerService) RemoveReturnLine(token, lineID string) (*wizard.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.ReturnCart.RemoveByID(lineID)
	return session, nil
}

// SubmitRequisition sends the assembled order. A definite rejection keeps the
// session on the preview step; success and unknown outcomes both land on the
// success step, since the backend script often cannot confirm its own writes.
func (s *WorkerService) SubmitRequisition(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	session, ok := s.sessions[token]
	if !ok {
		s.mu.Unlock()
		return "", ErrSessionNotFound
	}
	payload, err := session.BuildRequisition()
	s.mu.Unlock()
	if err != nil {
		return "", err
	}

	outcome, err := s.gateway.SubmitRequisition(ctx, payload)
	if err != nil {
		return "", err
	}
	if outcome == upstream.OutcomeFailure {
		return "", ErrSubmitRejected
	}

	ref := uuid.NewString()
	s.storeSubmission(ref)
	log.Printf("[worker-svc] requisition submitted user=%s project=%s items=%d outcome=%s ref=%s",
		payload.User, payload.Project, len(payload.Items), outcome, ref)

	s.mu.Lock()
	session.Step = wizard.StepSuccess
	s.mu.Unlock()
	return ref, nil
}

func (s *WorkerService) SubmitReturn(ctx context.Context, token string) error {
	s.mu.Lock()
	session, ok := s.sessions[token]
	if !ok {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	payload, err := session.BuildReturn()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	outcome, err := s.gateway.SubmitReturn(ctx, payload)
	if err != nil {
		return err
	}
	if outcome == upstream.OutcomeFailure {
		return ErrSubmitRejected
	}

	log.Printf("[worker-svc] return submitted user=%s project=%s lines=%d outcome=%s",
		payload.User, payload.Project, len(payload.ReturnCart), outcome)

	s.mu.Lock()
	session.Step = wizard.StepReturnSuccess
	s.mu.Unlock()
	return nil
}

func (s *WorkerService) storeSubmission(ref string) {
	qr, err := s.qr.Generate(ref)
	if err != nil {
		log.Printf("[worker-svc] qr generation failed for ref=%s: %v", ref, err)
		return
	}
	s.mu.Lock()
	s.submissions[ref] = qr
	s.mu.Unlock()
}

func (s *WorkerService) SubmissionQRCode(ref string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	qr, ok := s.submissions[ref]
	if !ok {
		return nil, ErrRefNotFound
	}
	return qr, nil
}

// SubmitWorkLog compresses and uploads the photos, attaches the returned
// links and sends the entry, then drops the user's draft.
func (s *WorkerService) SubmitWorkLog(ctx context.Context, entry worklog.Entry, photos []Photo) (*worklog.Entry, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if len(photos) > 0 {
		req := upstream.UploadRequest{Date: entry.Date, Project: entry.Project}
		for _, photo := range photos {
			compressed, err := worklog.FitJPEG(photo.Data)
			if err != nil {
				return nil, fmt.Errorf("compress %s: %w", photo.Name, err)
			}
			req.Files = append(req.Files, upstream.UploadFile{
				FileData: worklog.DataURL(compressed),
				FileName: worklog.JPEGName(photo.Name),
			})
		}

		result, err := s.gateway.UploadImages(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("upload images: %w", err)
		}
		entry.ImageURLs = result.URLs
		entry.FolderURL = result.FolderURL
	}

	outcome, err := s.gateway.SubmitWorkLog(ctx, entry)
	if err != nil {
		return nil, err
	}
	if outcome == upstream.OutcomeFailure {
		return nil, ErrSubmitRejected
	}

	if err := s.drafts.Clear(ctx, entry.User); err != nil {
		log.Printf("[worker-svc] failed to clear draft for %s: %v", entry.User, err)
	}
	log.Printf("[worker-svc] work log submitted user=%s date=%s project=%s photos=%d outcome=%s",
		entry.User, entry.Date, entry.Project, len(photos), outcome)
	return &entry, nil
}

// WorkLogs lists the user's submitted entries, newest first as the backend
// returns them.
func (s *WorkerService) WorkLogs(ctx context.Context, user string) ([]worklog.Entry, error) {
	entries, err := s.gateway.WorkLogs(ctx)
	if err != nil {
		return nil, err
	}
	mine := []worklog.Entry{}
	for _, entry := range entries {
		if entry.User == user {
			mine = append(mine, entry)
		}
	}
	return mine, nil
}

func (s *WorkerService) SaveDraft(ctx context.Context, user string, entry worklog.Entry) error {
	return s.drafts.Save(ctx, user, entry)
}

func (s *WorkerService) LoadDraft(ctx context.Context, user string) (*worklog.Entry, error) {
	return s.drafts.Load(ctx, user)
}

func (s *WorkerService) ClearDraft(ctx context.Context, user string) error {
	return s.drafts.Clear(ctx, user)
}

func (s *WorkerService) TimeOptions() []string {
	return worklog.TimeOptions()
}
