package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sitesupply/worker-svc/internal/catalog"
)

func testIndex() *catalog.Index {
	return catalog.NewIndex([]catalog.Item{
		{Category: "電線", Subcategory: "太平洋電線", Thickness: "2.0mm", Size: "100M", Unit: "捲", ImageURL: "https://img/wire.png"},
	})
}

func loggedInSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession("tok")
	assert.NoError(t, s.Login("王大明"))
	assert.NoError(t, s.SetProjectInfo("A案場", "台北市信義區", "2026-09-01", "0912345678", "李收貨", "0987654321"))
	return s
}

func TestSession_LoginAdvancesToMenu(t *testing.T) {
	s := NewSession("tok")
	assert.Equal(t, StepLogin, s.Step)

	assert.ErrorIs(t, s.Login(""), ErrNotLoggedIn)
	assert.Equal(t, StepLogin, s.Step)

	assert.NoError(t, s.Login("王大明"))
	assert.Equal(t, StepMenu, s.Step)
	assert.Equal(t, "王大明", s.Form.User)
}

func TestSession_NavigateToUnknownStep(t *testing.T) {
	s := NewSession("tok")

	assert.ErrorIs(t, s.NavigateTo(Step(7)), ErrUnknownStep)
	assert.Equal(t, StepLogin, s.Step)

	assert.NoError(t, s.NavigateTo(StepWorkLog))
	assert.Equal(t, StepWorkLog, s.Step)
}

func TestSession_SetProjectInfoRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		project string
		address string
		date    string
	}{
		{"missing_project", "", "台北市", "2026-09-01"},
		{"missing_address", "A案場", "", "2026-09-01"},
		{"missing_date", "A案場", "台北市", ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			s := NewSession("tok")
			assert.NoError(t, s.Login("王大明"))
			err := s.SetProjectInfo(testCase.project, testCase.address, testCase.date, "", "", "")
			assert.ErrorIs(t, err, ErrMissingProject)
			assert.Equal(t, StepMenu, s.Step)
		})
	}
}

func TestSession_BuildRequisition(t *testing.T) {
	s := loggedInSession(t)
	idx := testIndex()

	key := catalog.Key{Category: "電線", Subcategory: "太平洋電線", Thickness: "2.0mm", Size: "100M"}
	assert.True(t, s.Cart.SetQuantity(idx, key, 3))
	assert.NoError(t, s.Cart.AddManual("特殊彎頭", "個", 2))

	payload, err := s.BuildRequisition()
	assert.NoError(t, err)
	assert.Equal(t, "王大明", payload.User)
	assert.Equal(t, "A案場", payload.Project)
	assert.Len(t, payload.Items, 2)

	// Catalog lines flatten to descriptive fields only.
	assert.Equal(t, RequisitionItem{
		Category:    "電線",
		Subcategory: "太平洋電線",
		Thickness:   "2.0mm",
		Size:        "100M",
		Unit:        "捲",
		Quantity:    3,
	}, payload.Items[0])

	// Manual lines keep just name, unit and quantity.
	assert.Equal(t, RequisitionItem{Subcategory: "特殊彎頭", Unit: "個", Quantity: 2}, payload.Items[1])
}

func TestSession_BuildRequisitionEmptyCart(t *testing.T) {
	s := loggedInSession(t)

	_, err := s.BuildRequisition()
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestSession_BuildRequisitionMissingContact(t *testing.T) {
	s := NewSession("tok")
	assert.NoError(t, s.Login("王大明"))
	assert.NoError(t, s.SetProjectInfo("A案場", "台北市", "2026-09-01", "", "", ""))
	assert.NoError(t, s.Cart.AddManual("彎頭", "個", 1))

	_, err := s.BuildRequisition()
	assert.ErrorIs(t, err, ErrMissingContact)
}

func TestSession_BuildReturn(t *testing.T) {
	s := loggedInSession(t)

	_, err := s.BuildReturn()
	assert.ErrorIs(t, err, ErrEmptyReturnCart)

	_, err = s.ReturnCart.Add("太平洋電線 (2.0mm/100M)", 2, "規格不符")
	assert.NoError(t, err)

	payload, err := s.BuildReturn()
	assert.NoError(t, err)
	assert.Equal(t, "王大明", payload.User)
	assert.Equal(t, "A案場", payload.Project)
	assert.Len(t, payload.ReturnCart, 1)
}

func TestSession_ResetKeepsIdentity(t *testing.T) {
	s := loggedInSession(t)
	assert.NoError(t, s.Cart.AddManual("彎頭", "個", 1))
	_, err := s.ReturnCart.Add("品項", 1, "")
	assert.NoError(t, err)

	s.Reset(false)

	assert.Equal(t, StepMenu, s.Step)
	assert.Equal(t, "王大明", s.Form.User)
	assert.Equal(t, "0912345678", s.Form.UserPhone)
	assert.Empty(t, s.Form.Project)
	assert.Empty(t, s.Form.DeliveryAddress)
	assert.Empty(t, s.Form.RecipientName)
	assert.Equal(t, 0, s.Cart.Len())
	assert.Equal(t, 0, s.ReturnCart.Len())
}

func TestSession_ResetToReturnFlow(t *testing.T) {
	s := loggedInSession(t)
	s.Reset(true)
	assert.Equal(t, StepReturn, s.Step)
}

func TestStep_Title(t *testing.T) {
	assert.Equal(t, "主選單", StepMenu.Title())
	assert.Equal(t, "未知的步驟", Step(99).Title())
}
