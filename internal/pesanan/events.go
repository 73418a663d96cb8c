package pesanan

import (
	"encoding/json"
	"time"
)

const (
	TopicOrderCreated = "pesanan.created"
	EventOrderCreated = "OrderCreated"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

type LineRef struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type OrderCreatedPayload struct {
	OrderID     string    `json:"order_id"`
	TotalAmount int64     `json:"total_amount"`
	Lines       []LineRef `json:"lines"`
}

// Partition key = order id, biar event satu order tetap urut.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
