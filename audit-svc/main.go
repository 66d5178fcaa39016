package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	httpapi "sitesupply/audit-svc/internal/api/http"
	"sitesupply/audit-svc/internal/service"
	"sitesupply/audit-svc/internal/storage"
	"sitesupply/config"
)

func main() {
	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("status-events", "audit-svc-consumer")
	defer reader.Close()

	store := storage.NewStore(rdb)
	consumer := service.NewConsumer(reader, store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go consumer.Start(ctx)

	r := mux.NewRouter()
	httpapi.NewHandler(store).RegisterRoutes(r)
	handler := cors.Default().Handler(r)

	log.Println("Audit Service starting on port 8083")
	log.Fatal(http.ListenAndServe(":8083", handler))
}
