package service

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/segmentio/kafka-go"

	"sitesupply/audit-svc/internal/domain"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Audit Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.StatusEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if event.Type == domain.EventTypeStatusChange {
			c.ProcessEvent(event)
		}
	}
}

// ProcessEvent counts completions only. Flipping a line back to pending is a
// correction, not work done, so it never decrements.
func (c *Consumer) ProcessEvent(event domain.StatusEvent) {
	if event.Type != domain.EventTypeStatusChange {
		return
	}
	if strings.TrimSpace(event.Status) != domain.StatusDone {
		return
	}

	log.Printf("Processing completion: kind=%s orderId=%d item=%q project=%q",
		event.Kind, event.OrderID, event.ItemName, event.Project)

	if err := c.Store.RecordCompletion(event.Kind, event.ItemName, event.Project); err != nil {
		log.Printf("Error recording completion: %v", err)
		return
	}
}
