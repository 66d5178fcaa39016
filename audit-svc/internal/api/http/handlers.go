package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"sitesupply/audit-svc/internal/service"
)

type Handler struct {
	Store service.StoreInterface
}

func NewHandler(store service.StoreInterface) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok", "service": "audit-svc"})
	}).Methods("GET")
	r.HandleFunc("/api/audit/completed", h.getTopCompleted).Methods("GET")
	r.HandleFunc("/api/audit/projects", h.getProjectTotals).Methods("GET")
}

func (h *Handler) getTopCompleted(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("date")
	if day == "" {
		day = time.Now().Format("2006-01-02")
	}
	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = "order_item"
	}
	limit := queryLimit(r)

	data, err := h.Store.TopCompleted(day, kind, limit)
	if err != nil {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode([]interface{}{})
		return
	}
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) getProjectTotals(w http.ResponseWriter, r *http.Request) {
	data, err := h.Store.ProjectTotals(queryLimit(r))
	if err != nil {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode([]interface{}{})
		return
	}
	json.NewEncoder(w).Encode(data)
}

func queryLimit(r *http.Request) int {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return 10
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return 10
	}
	return limit
}
