package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"sitesupply/config"
	"sitesupply/upstream"
	httpapi "sitesupply/worker-svc/internal/api/http"
	"sitesupply/worker-svc/internal/service"
	"sitesupply/worker-svc/internal/worklog"
)

func main() {
	scriptURL := config.GetEnv("SHEET_SCRIPT_URL", "")
	if scriptURL == "" {
		log.Fatal("SHEET_SCRIPT_URL is required")
	}
	boardURL := config.GetEnv("BOARD_URL", "http://localhost:8082")

	client := upstream.NewClient(upstream.Config{
		BaseURL:       scriptURL,
		FireAndForget: config.GetEnv("UPSTREAM_FIRE_AND_FORGET", "") == "true",
	}, &http.Client{Timeout: 30 * time.Second})

	rdb := config.MustInitRedis()
	defer rdb.Close()

	svc := service.NewWorkerService(
		service.NewGateway(client),
		worklog.NewDraftStore(rdb),
		service.DefaultQRGenerator{BoardURL: boardURL},
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := svc.LoadReferenceData(ctx); err != nil {
		log.Fatal("Failed to load reference data:", err)
	}

	handler := httpapi.NewHandler(svc)
	httpapi.StartServer(":8081", httpapi.NewRouter(handler))
}
