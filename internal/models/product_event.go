package models

// Product event operations.
const (
	ProductCreated = "create"
	ProductUpdated = "update"
	ProductDeleted = "delete"
)

// ProductEvent is published to Kafka after a product mutation.
type ProductEvent struct {
	EventID   string `json:"event_id"`   // Unique identifier of the event
	Timestamp int64  `json:"timestamp"`  // Unix timestamp (seconds) of the mutation
	Operation string `json:"operation"`  // One of ProductCreated, ProductUpdated, ProductDeleted
	ProductID int64  `json:"product_id"` // Identifier of the affected product
}
