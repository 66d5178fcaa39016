package main

import (
	"context"
	"log"
	"net/http"
	"time"

	httpapi "sitesupply/admin-svc/internal/api/http"
	"sitesupply/admin-svc/internal/service"
	"sitesupply/admin-svc/internal/storage"
	"sitesupply/config"
	"sitesupply/upstream"
)

func main() {
	scriptURL := config.GetEnv("SHEET_SCRIPT_URL", "")
	if scriptURL == "" {
		log.Fatal("SHEET_SCRIPT_URL is required")
	}

	client := upstream.NewClient(upstream.Config{BaseURL: scriptURL},
		&http.Client{Timeout: 30 * time.Second})

	writer := config.NewKafkaWriter("status-events")
	defer writer.Close()

	board := service.NewBoardService(
		service.NewGateway(client),
		storage.NewKafkaPublisher(writer),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := board.Refresh(ctx); err != nil {
		log.Printf("[admin-svc] initial load failed, serving empty board: %v", err)
	}
	go board.Run(ctx)

	handler := httpapi.NewHandler(board)
	httpapi.StartServer(":8082", httpapi.NewRouter(handler))
}
