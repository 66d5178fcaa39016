package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sitesupply/upstream"
	httpapi "sitesupply/worker-svc/internal/api/http"
	"sitesupply/worker-svc/internal/mocks"
	"sitesupply/worker-svc/internal/service"
	"sitesupply/worker-svc/internal/wizard"
)

func testServer(t *testing.T) (*httptest.Server, *service.WorkerService, *mocks.Gateway, *mocks.QRGenerator) {
	t.Helper()
	svc, gateway, _, qr := loadedService(t)
	server := httptest.NewServer(httpapi.NewRouter(httpapi.NewHandler(svc)))
	t.Cleanup(server.Close)
	return server, svc, gateway, qr
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	assert.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	assert.NoError(t, err)
	return resp
}

func decodeView(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var view map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	return view
}

func TestHandlers_HealthCheck(t *testing.T) {
	server, _, _, _ := testServer(t)

	resp, err := http.Get(server.URL + "/health")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeView(t, resp)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "worker-svc", body["service"])
}

func TestHandlers_CatalogDrillDown(t *testing.T) {
	server, _, _, _ := testServer(t)

	resp, err := http.Get(server.URL + "/api/catalog/categories")
	assert.NoError(t, err)
	defer resp.Body.Close()

	var categories []string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&categories))
	assert.Equal(t, []string{"電線", "水管"}, categories)

	resp, err = http.Get(server.URL + "/api/catalog/subcategories?category=電線")
	assert.NoError(t, err)
	defer resp.Body.Close()

	var subcategories []string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&subcategories))
	assert.Equal(t, []string{"太平洋電線"}, subcategories)
}

func TestHandlers_CatalogSearch(t *testing.T) {
	server, _, _, _ := testServer(t)

	resp, err := http.Get(server.URL + "/api/catalog/search?q=4分")
	assert.NoError(t, err)
	defer resp.Body.Close()

	var items []map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	assert.Len(t, items, 1)
	assert.Equal(t, "PVC管", items[0]["subcategory"])
}

func TestHandlers_SessionFlow(t *testing.T) {
	server, _, gateway, qr := testServer(t)

	resp := postJSON(t, server.URL+"/api/sessions", nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	view := decodeView(t, resp)
	token := view["token"].(string)
	assert.NotEmpty(t, token)
	assert.Equal(t, float64(wizard.StepLogin), view["step"])

	base := server.URL + "/api/sessions/" + token

	resp = postJSON(t, base+"/login", map[string]string{"user": "王大明"})
	view = decodeView(t, resp)
	assert.Equal(t, float64(wizard.StepMenu), view["step"])

	resp = postJSON(t, base+"/project", map[string]string{
		"project":         "A案場",
		"deliveryAddress": "台北市信義區",
		"deliveryDate":    "2026-09-01",
		"userPhone":       "0912345678",
		"recipientName":   "李收貨",
		"recipientPhone":  "0987654321",
	})
	view = decodeView(t, resp)
	assert.Equal(t, float64(wizard.StepProducts), view["step"])

	resp = postJSON(t, base+"/cart/adjust", map[string]interface{}{
		"key": map[string]string{
			"category":    "電線",
			"subcategory": "太平洋電線",
			"thickness":   "2.0mm",
			"size":        "100M",
		},
		"delta": 2,
	})
	view = decodeView(t, resp)
	assert.Len(t, view["cart"], 1)

	gateway.On("SubmitRequisition", mock.Anything, mock.Anything).Return(upstream.OutcomeSuccess, nil).Once()
	qr.On("Generate", mock.Anything).Return([]byte("png-bytes"), nil).Once()

	resp = postJSON(t, base+"/submit", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	result := decodeView(t, resp)
	assert.NotEmpty(t, result["ref"])

	qrResp, err := http.Get(server.URL + "/api/submissions/" + result["ref"].(string) + "/qrcode")
	assert.NoError(t, err)
	defer qrResp.Body.Close()
	assert.Equal(t, http.StatusOK, qrResp.StatusCode)
	assert.Equal(t, "image/png", qrResp.Header.Get("Content-Type"))
}

func TestHandlers_LoginUnknownUser(t *testing.T) {
	server, svc, _, _ := testServer(t)
	session := svc.CreateSession()

	resp := postJSON(t, server.URL+"/api/sessions/"+session.Token+"/login", map[string]string{"user": "陌生人"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandlers_SessionNotFound(t *testing.T) {
	server, _, _, _ := testServer(t)

	resp, err := http.Get(server.URL + "/api/sessions/missing-token")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandlers_SubmitRejectedKeepsCart(t *testing.T) {
	server, svc, gateway, _ := testServer(t)
	session := sessionAtPreview(t, svc)

	gateway.On("SubmitRequisition", mock.Anything, mock.Anything).Return(upstream.OutcomeFailure, nil).Once()

	resp := postJSON(t, server.URL+"/api/sessions/"+session.Token+"/submit", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, 1, session.Cart.Len())
}

func TestHandlers_ManualItem(t *testing.T) {
	server, svc, _, _ := testServer(t)
	session := svc.CreateSession()
	_, err := svc.Login(session.Token, "王大明")
	assert.NoError(t, err)

	resp := postJSON(t, server.URL+"/api/sessions/"+session.Token+"/cart/manual", map[string]interface{}{
		"name": "特殊彎頭", "unit": "個", "quantity": 2,
	})
	view := decodeView(t, resp)
	assert.Len(t, view["cart"], 1)

	// Missing unit is a validation error.
	resp = postJSON(t, server.URL+"/api/sessions/"+session.Token+"/cart/manual", map[string]interface{}{
		"name": "特殊彎頭", "quantity": 2,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandlers_TimeOptions(t *testing.T) {
	server, _, _, _ := testServer(t)

	resp, err := http.Get(server.URL + "/api/worklogs/times")
	assert.NoError(t, err)
	defer resp.Body.Close()

	var options []string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&options))
	assert.Len(t, options, 37)
	assert.Equal(t, "06:00", options[0])
	assert.Equal(t, "00:00", options[36])
}

func TestHandlers_WorkLogsRequireUser(t *testing.T) {
	server, _, _, _ := testServer(t)

	resp, err := http.Get(server.URL + "/api/worklogs")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
