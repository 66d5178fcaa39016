package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"sitesupply/upstream"
	"sitesupply/worker-svc/internal/catalog"
	"sitesupply/worker-svc/internal/cart"
	"sitesupply/worker-svc/internal/service"
	"sitesupply/worker-svc/internal/wizard"
	"sitesupply/worker-svc/internal/worklog"
)

type Handler struct {
	Service *service.WorkerService
}

func NewHandler(svc *service.WorkerService) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/users", h.getUsers).Methods("GET")
	r.HandleFunc("/api/projects", h.getProjects).Methods("GET")
	r.HandleFunc("/api/projects/{project}/terms", h.getProjectTerms).Methods("GET")

	r.HandleFunc("/api/catalog/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/catalog/subcategories", h.getSubcategories).Methods("GET")
	r.HandleFunc("/api/catalog/thicknesses", h.getThicknesses).Methods("GET")
	r.HandleFunc("/api/catalog/sizes", h.getSizes).Methods("GET")
	r.HandleFunc("/api/catalog/items", h.getItems).Methods("GET")
	r.HandleFunc("/api/catalog/search", h.searchItems).Methods("GET")

	r.HandleFunc("/api/sessions", h.createSession).Methods("POST")
	r.HandleFunc("/api/sessions/{token}", h.getSession).Methods("GET")
	r.HandleFunc("/api/sessions/{token}/login", h.login).Methods("POST")
	r.HandleFunc("/api/sessions/{token}/project", h.setProjectInfo).Methods("POST")
	r.HandleFunc("/api/sessions/{token}/step", h.navigate).Methods("POST")
	r.HandleFunc("/api/sessions/{token}/reset", h.reset).Methods("POST")

	r.HandleFunc("/api/sessions/{token}/cart", h.setCartQuantity).Methods("PUT")
	r.HandleFunc("/api/sessions/{token}/cart/adjust", h.adjustCart).Methods("POST")
	r.HandleFunc("/api/sessions/{token}/cart/manual", h.addManualItem).Methods("POST")
	r.HandleFunc("/api/sessions/{token}/cart/{lineId}", h.removeCartLine).Methods("DELETE")
	r.HandleFunc("/api/sessions/{token}/return-cart", h.addReturnLine).Methods("POST")
	r.HandleFunc("/api/sessions/{token}/return-cart/{lineId}", h.removeReturnLine).Methods("DELETE")

	r.HandleFunc("/api/sessions/{token}/submit", h.submitRequisition).Methods("POST")
	r.HandleFunc("/api/sessions/{token}/submit-return", h.submitReturn).Methods("POST")
	r.HandleFunc("/api/submissions/{ref}/qrcode", h.getSubmissionQRCode).Methods("GET")

	r.HandleFunc("/api/worklogs/times", h.getTimeOptions).Methods("GET")
	r.HandleFunc("/api/worklogs/draft", h.getDraft).Methods("GET")
	r.HandleFunc("/api/worklogs/draft", h.saveDraft).Methods("PUT")
	r.HandleFunc("/api/worklogs/draft", h.clearDraft).Methods("DELETE")
	r.HandleFunc("/api/worklogs", h.getWorkLogs).Methods("GET")
	r.HandleFunc("/api/worklogs", h.submitWorkLog).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "worker-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// sessionView is the state snapshot every session mutation returns.
type sessionView struct {
	Token      string            `json:"token"`
	Step       wizard.Step       `json:"step"`
	StepTitle  string            `json:"stepTitle"`
	Form       wizard.FormData   `json:"form"`
	Cart       []cart.Line       `json:"cart"`
	ReturnCart []cart.ReturnLine `json:"returnCart"`
}

// view snapshots the session through the service so its fields are copied
// under the same lock that guards mutations.
func (h *Handler) view(session *wizard.Session) sessionView {
	snap := h.Service.SnapshotOf(session)
	return sessionView{
		Token:      snap.Token,
		Step:       snap.Step,
		StepTitle:  snap.Step.Title(),
		Form:       snap.Form,
		Cart:       snap.Cart,
		ReturnCart: snap.ReturnCart,
	}
}

// writeSessionError maps the service errors onto status codes: missing
// session is 404, validation problems are 400.
func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		http.Error(w, "Session not found", http.StatusNotFound)
	case errors.Is(err, service.ErrSubmitRejected):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Users())
}

func (h *Handler) getProjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.ProjectNames())
}

func (h *Handler) getProjectTerms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.TermsFor(mux.Vars(r)["project"]))
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Categories())
}

func (h *Handler) getSubcategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Subcategories(r.URL.Query().Get("category")))
}

func (h *Handler) getThicknesses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, h.Service.Thicknesses(q.Get("category"), q.Get("subcategory")))
}

func (h *Handler) getSizes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, h.Service.Sizes(q.Get("category"), q.Get("subcategory"), q.Get("thickness")))
}

func (h *Handler) getItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	path := catalog.Path{
		Category:    q.Get("category"),
		Subcategory: q.Get("subcategory"),
		Thickness:   q.Get("thickness"),
	}
	writeJSON(w, h.Service.ItemsUnder(path))
}

func (h *Handler) searchItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.SearchItems(r.URL.Query().Get("q")))
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	session := h.Service.CreateSession()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(h.view(session))
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.Service.Session(mux.Vars(r)["token"])
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, h.view(session))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		User string `json:"user"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Service.Login(mux.Vars(r)["token"], body.User)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, h.view(session))
}

func (h *Handler) setProjectInfo(w http.ResponseWriter, r *http.Request) {
	var body wizard.FormData
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Service.SetProjectInfo(mux.Vars(r)["token"],
		body.Project, body.DeliveryAddress, body.DeliveryDate,
		body.UserPhone, body.RecipientName, body.RecipientPhone)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, h.view(session))
}

func (h *Handler) navigate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Step wizard.Step `json:"step"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Service.Navigate(mux.Vars(r)["token"], body.Step)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, h.view(session))
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ToReturnFlow bool `json:"toReturnFlow"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	session, err := h.Service.Reset(mux.Vars(r)["token"], body.ToReturnFlow)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, h.view(session))
}

type cartBody struct {
	Key      catalog.Key `json:"key"`
	Quantity int         `json:"quantity"`
	Delta    int         `json:"delta"`
}

func (h *Handler) setCartQuantity(w http.ResponseWriter, r *http.Request) {
	var body cartBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Service.SetCartQuantity(mux.Vars(r)["token"], body.Key, body.Quantity)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, h.view(session))
}

func (h *Handler) adjustCart(w http.ResponseWriter, r *http.Request) {
	var body cartBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Service.AdjustCart(mux.Vars(r)["token"], body.Key, body.Delta)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, h.view(session))
}

func (h *Handler) addManualItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Unit     string `json:"unit"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Service.AddManualItem(mux.Vars(r)["token"], body.Name, body.Unit, body.Quantity)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, h.view(session))
}

func (h *Handler) removeCartLine(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	session, err := h.Service.RemoveCartLine(vars["token"], vars["lineId"])
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, h.view(session))
}

func (h *Handler) addReturnLine(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
		Reason   string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Service.AddReturnLine(mux.Vars(r)["token"], body.Name, body.Quantity, body.Reason)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, h.view(session))
}

func (h *Handler) removeReturnLine(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	session, err := h.Service.RemoveReturnLine(vars["token"], vars["lineId"])
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, h.view(session))
}

func (h *Handler) submitRequisition(w http.ResponseWriter, r *http.Request) {
	ref, err := h.Service.SubmitRequisition(r.Context(), mux.Vars(r)["token"])
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, map[string]string{
		"ref":    ref,
		"qrcode": "/api/submissions/" + ref + "/qrcode",
	})
}

func (h *Handler) submitReturn(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.SubmitReturn(r.Context(), mux.Vars(r)["token"]); err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, map[string]string{"status": "success"})
}

func (h *Handler) getSubmissionQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Service.SubmissionQRCode(mux.Vars(r)["ref"])
	if err != nil {
		http.Error(w, "Submission not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) getTimeOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.TimeOptions())
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	user := r.URL.Query().Get("user")
	if user == "" {
		http.Error(w, "user query parameter is required", http.StatusBadRequest)
		return "", false
	}
	return user, true
}

func (h *Handler) getDraft(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	draft, err := h.Service.LoadDraft(r.Context(), user)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if draft == nil {
		http.Error(w, "No draft", http.StatusNotFound)
		return
	}
	writeJSON(w, draft)
}

func (h *Handler) saveDraft(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	var entry worklog.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	entry.User = user
	if err := h.Service.SaveDraft(r.Context(), user, entry); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"status": "saved"})
}

func (h *Handler) clearDraft(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	if err := h.Service.ClearDraft(r.Context(), user); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getWorkLogs(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	entries, err := h.Service.WorkLogs(r.Context(), user)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, entries)
}

// submitWorkLog takes a multipart form: an "entry" JSON field plus any number
// of "photos" files.
func (h *Handler) submitWorkLog(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Upload too large", http.StatusBadRequest)
		return
	}

	var entry worklog.Entry
	if err := json.Unmarshal([]byte(r.FormValue("entry")), &entry); err != nil {
		http.Error(w, "Invalid entry payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	var photos []service.Photo
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["photos"] {
			file, err := header.Open()
			if err != nil {
				http.Error(w, "Error retrieving file", http.StatusBadRequest)
				return
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				http.Error(w, "Error reading file", http.StatusBadRequest)
				return
			}
			photos = append(photos, service.Photo{Name: header.Filename, Data: data})
		}
	}

	submitted, err := h.Service.SubmitWorkLog(r.Context(), entry, photos)
	if err != nil {
		if errors.Is(err, service.ErrSubmitRejected) || isUpstreamError(err) {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(submitted)
}

func isUpstreamError(err error) bool {
	var remote *upstream.RemoteError
	return errors.As(err, &remote)
}
