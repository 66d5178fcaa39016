package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"sitesupply/admin-svc/internal/domain"
	"sitesupply/admin-svc/internal/service"
)

type Handler struct {
	Board *service.BoardService
}

func NewHandler(board *service.BoardService) *Handler {
	return &Handler{Board: board}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/board", h.getBoard).Methods("GET")
	r.HandleFunc("/api/board/refresh", h.refresh).Methods("POST")
	r.HandleFunc("/api/board/tab", h.setTab).Methods("POST")

	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("POST")
	r.HandleFunc("/api/orders/{id}/items/status", h.updateItemStatus).Methods("POST")

	r.HandleFunc("/api/worklogs", h.getWorkLogs).Methods("GET")

	r.HandleFunc("/api/returns", h.getReturns).Methods("GET")
	r.HandleFunc("/api/returns/{id}/status", h.updateReturnStatus).Methods("POST")
	r.HandleFunc("/api/returns/{id}/items/status", h.updateReturnItemStatus).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "admin-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeBoardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrReturnNotFound),
		errors.Is(err, service.ErrItemNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrUpdateRejected):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) getBoard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"orders":      h.Board.Orders(),
		"returns":     h.Board.Returns(),
		"activeTab":   h.Board.ActiveTab(),
		"lastRefresh": h.Board.LastRefresh().Format(time.RFC3339),
	})
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Board.Refresh(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, map[string]string{"status": "refreshed"})
}

func (h *Handler) setTab(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Tab string `json:"tab"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Tab != "orders" && body.Tab != "returns" {
		http.Error(w, "tab must be orders or returns", http.StatusBadRequest)
		return
	}
	h.Board.SetActiveTab(body.Tab)
	writeJSON(w, map[string]string{"activeTab": body.Tab})
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("pending") == "true" {
		writeJSON(w, h.Board.PendingOrders())
		return
	}
	writeJSON(w, h.Board.Orders())
}

func (h *Handler) getReturns(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("pending") == "true" {
		writeJSON(w, h.Board.PendingReturns())
		return
	}
	writeJSON(w, h.Board.Returns())
}

func (h *Handler) getWorkLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.Board.WorkLogs(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, logs)
}

type statusBody struct {
	ItemName  string `json:"itemName"`
	Thickness string `json:"thickness"`
	Size      string `json:"size"`
	NewStatus string `json:"newStatus"`
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func decodeStatus(w http.ResponseWriter, r *http.Request) (statusBody, bool) {
	var body statusBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return body, false
	}
	if body.NewStatus != domain.StatusPending && body.NewStatus != domain.StatusDone {
		http.Error(w, "unknown status", http.StatusBadRequest)
		return body, false
	}
	return body, true
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	body, ok := decodeStatus(w, r)
	if !ok {
		return
	}
	if err := h.Board.UpdateOrderStatus(r.Context(), id, body.NewStatus); err != nil {
		writeBoardError(w, err)
		return
	}
	writeJSON(w, map[string]string{"status": "updated"})
}

func (h *Handler) updateItemStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	body, ok := decodeStatus(w, r)
	if !ok {
		return
	}
	err := h.Board.UpdateItemStatus(r.Context(), id, body.ItemName, body.Thickness, body.Size, body.NewStatus)
	if err != nil {
		writeBoardError(w, err)
		return
	}
	writeJSON(w, map[string]string{"status": "updated"})
}

func (h *Handler) updateReturnStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	body, ok := decodeStatus(w, r)
	if !ok {
		return
	}
	if err := h.Board.UpdateReturnStatus(r.Context(), id, body.NewStatus); err != nil {
		writeBoardError(w, err)
		return
	}
	writeJSON(w, map[string]string{"status": "updated"})
}

func (h *Handler) updateReturnItemStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	body, ok := decodeStatus(w, r)
	if !ok {
		return
	}
	err := h.Board.UpdateReturnItemStatus(r.Context(), id, body.ItemName, body.NewStatus)
	if err != nil {
		writeBoardError(w, err)
		return
	}
	writeJSON(w, map[string]string{"status": "updated"})
}
