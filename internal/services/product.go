package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/product-listing/internal/logger"
	"github.com/sbilibin2017/product-listing/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=product.go -destination=product_mock.go -package=services

// ErrProductNotFound is returned when a product lookup matches no row.
var ErrProductNotFound = errors.New("product not found")

// ProductWriter defines product mutations. Update and Delete return the affected row count.
type ProductWriter interface {
	Create(ctx context.Context, input models.ProductInput) (int64, error)
	Update(ctx context.Context, id int64, input models.ProductInput) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// ProductReader defines product lookups. GetByID returns nil when absent.
type ProductReader interface {
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ProductService handles product CRUD and event publishing.
type ProductService struct {
	writer      ProductWriter
	reader      ProductReader
	kafkaWriter KafkaWriter
}

// NewProductService creates a new ProductService. kafkaWriter may be nil.
func NewProductService(writer ProductWriter, reader ProductReader, kafkaWriter KafkaWriter) *ProductService {
	return &ProductService{
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
	}
}

// Create stores a new product and returns its id.
func (s *ProductService) Create(ctx context.Context, input models.ProductInput) (int64, error) {
	id, err := s.writer.Create(ctx, input)
	if err != nil {
		logger.Log.Errorw("failed to insert product", "error", err)
		return 0, err
	}

	s.publish(ctx, models.ProductCreated, id)
	return id, nil
}

// List returns every product.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get products", "error", err)
		return nil, err
	}
	return products, nil
}

// Get returns one product or ErrProductNotFound.
func (s *ProductService) Get(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get product", "productID", id, "error", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Update overwrites a product. Updating an unknown id is not an error.
func (s *ProductService) Update(ctx context.Context, id int64, input models.ProductInput) error {
	n, err := s.writer.Update(ctx, id, input)
	if err != nil {
		logger.Log.Errorw("failed to update product", "productID", id, "error", err)
		return err
	}
	if n > 0 {
		s.publish(ctx, models.ProductUpdated, id)
	}
	return nil
}

// Delete removes a product. Deleting an unknown id is not an error.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	n, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete product", "productID", id, "error", err)
		return err
	}
	if n > 0 {
		s.publish(ctx, models.ProductDeleted, id)
	}
	return nil
}

// publish sends a product event to Kafka. Failures are logged only.
func (s *ProductService) publish(ctx context.Context, operation string, productID int64) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "operation", operation, "productID", productID)
		return
	}

	event := models.ProductEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: operation,
		ProductID: productID,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal product event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(productID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish product event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Product event published to Kafka", "event_id", event.EventID, "operation", operation, "productID", productID)
	}
}
