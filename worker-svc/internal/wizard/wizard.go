// Package wizard drives the multi-step worker flow. Steps are the
// non-contiguous indices the front-ends always used: 0-5 for the requisition
// flow, 10-11 for returns, 20-21 for work logs.
package wizard

import (
	"errors"
	"fmt"

	"sitesupply/worker-svc/internal/cart"
)

type Step int

const (
	StepLogin         Step = 0
	StepMenu          Step = 1
	StepProjectInfo   Step = 2
	StepProducts      Step = 3
	StepPreview       Step = 4
	StepSuccess       Step = 5
	StepReturn        Step = 10
	StepReturnSuccess Step = 11
	StepWorkLog       Step = 20
	StepWorkLogList   Step = 21
)

var stepTitles = map[Step]string{
	StepLogin:         "身份驗證",
	StepMenu:          "主選單",
	StepProjectInfo:   "專案資訊",
	StepProducts:      "選擇品項",
	StepPreview:       "預覽與確認",
	StepSuccess:       "送出成功",
	StepReturn:        "退貨申請",
	StepReturnSuccess: "退貨送出成功",
	StepWorkLog:       "工作日誌",
	StepWorkLogList:   "日誌紀錄",
}

func (s Step) Title() string {
	if title, ok := stepTitles[s]; ok {
		return title
	}
	return "未知的步驟"
}

var (
	ErrUnknownStep     = errors.New("unknown wizard step")
	ErrNotLoggedIn     = errors.New("請先選擇姓名")
	ErrEmptyCart       = errors.New("購物車是空的")
	ErrEmptyReturnCart = errors.New("退貨清單不能是空的")
	ErrMissingProject  = errors.New("請選擇專案、填寫送貨地點和日期")
	ErrMissingContact  = errors.New("請填寫完整的收貨資訊")
)

// FormData accumulates what the steps collect. User and UserPhone survive a
// flow reset; everything else is per-order.
type FormData struct {
	User            string `json:"user"`
	Project         string `json:"project"`
	DeliveryAddress string `json:"deliveryAddress"`
	DeliveryDate    string `json:"deliveryDate"`
	UserPhone       string `json:"userPhone"`
	RecipientName   string `json:"recipientName"`
	RecipientPhone  string `json:"recipientPhone"`
}

// Session is one worker's walk through the wizard. It is not safe for
// concurrent use; the session store serializes access.
type Session struct {
	Token      string
	Step       Step
	Form       FormData
	Cart       *cart.Cart
	ReturnCart *cart.ReturnCart
}

func NewSession(token string) *Session {
	return &Session{
		Token:      token,
		Step:       StepLogin,
		Cart:       cart.New(),
		ReturnCart: cart.NewReturnCart(),
	}
}

// Snapshot is a copy of the session state with no shared backing arrays, safe
// to read after the owning lock is released.
type Snapshot struct {
	Token      string
	Step       Step
	Form       FormData
	Cart       []cart.Line
	ReturnCart []cart.ReturnLine
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Token:      s.Token,
		Step:       s.Step,
		Form:       s.Form,
		Cart:       s.Cart.Lines(),
		ReturnCart: s.ReturnCart.Lines(),
	}
}

// NavigateTo is the explicit transition every page callback used. Only step
// existence is checked; the flows deliberately allow jumping back and forth.
func (s *Session) NavigateTo(step Step) error {
	if _, ok := stepTitles[step]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownStep, step)
	}
	s.Step = step
	return nil
}

func (s *Session) Login(user string) error {
	if user == "" {
		return ErrNotLoggedIn
	}
	s.Form.User = user
	s.Step = StepMenu
	return nil
}

// SetProjectInfo gates the requisition flow: project, address and date are
// all required before the product step opens.
func (s *Session) SetProjectInfo(project, address, date, userPhone, recipientName, recipientPhone string) error {
	if project == "" || address == "" || date == "" {
		return ErrMissingProject
	}
	s.Form.Project = project
	s.Form.DeliveryAddress = address
	s.Form.DeliveryDate = date
	s.Form.UserPhone = userPhone
	s.Form.RecipientName = recipientName
	s.Form.RecipientPhone = recipientPhone
	s.Step = StepProducts
	return nil
}

// RequisitionItem is a cart line flattened for the submitRequest payload.
// Manual lines keep only name, quantity and unit; catalog lines drop their
// internal ID and image URL.
type RequisitionItem struct {
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory"`
	Thickness   string `json:"thickness,omitempty"`
	Size        string `json:"size,omitempty"`
	Unit        string `json:"unit"`
	Quantity    int    `json:"quantity"`
}

type RequisitionPayload struct {
	FormData
	Items []RequisitionItem `json:"items"`
}

// BuildRequisition validates the session and assembles the submitRequest
// payload. The session is left untouched; the caller advances the step once
// the upstream accepts (or reports an unknown outcome for) the write.
func (s *Session) BuildRequisition() (*RequisitionPayload, error) {
	if s.Cart.Len() == 0 {
		return nil, ErrEmptyCart
	}
	if s.Form.UserPhone == "" || s.Form.RecipientName == "" || s.Form.RecipientPhone == "" {
		return nil, ErrMissingContact
	}

	payload := &RequisitionPayload{FormData: s.Form}
	for _, line := range s.Cart.Lines() {
		if line.Manual {
			payload.Items = append(payload.Items, RequisitionItem{
				Subcategory: line.Subcategory,
				Unit:        line.Unit,
				Quantity:    line.Quantity,
			})
			continue
		}
		payload.Items = append(payload.Items, RequisitionItem{
			Category:    line.Category,
			Subcategory: line.Subcategory,
			Thickness:   line.Thickness,
			Size:        line.Size,
			Unit:        line.Unit,
			Quantity:    line.Quantity,
		})
	}
	return payload, nil
}

type ReturnPayload struct {
	User       string            `json:"user"`
	Project    string            `json:"project"`
	ReturnCart []cart.ReturnLine `json:"returnCart"`
}

func (s *Session) BuildReturn() (*ReturnPayload, error) {
	if s.Form.Project == "" {
		return nil, ErrMissingProject
	}
	if s.ReturnCart.Len() == 0 {
		return nil, ErrEmptyReturnCart
	}
	return &ReturnPayload{
		User:       s.Form.User,
		Project:    s.Form.Project,
		ReturnCart: s.ReturnCart.Lines(),
	}, nil
}

// Reset clears the per-order fields and both carts but keeps the identity
// fields, then lands on the menu or the return page.
func (s *Session) Reset(toReturnFlow bool) {
	s.Form = FormData{User: s.Form.User, UserPhone: s.Form.UserPhone}
	s.Cart.Clear()
	s.ReturnCart.Clear()
	if toReturnFlow {
		s.Step = StepReturn
	} else {
		s.Step = StepMenu
	}
}
