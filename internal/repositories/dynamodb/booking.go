package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"

	"booking-api/internal/models"
	"booking-api/internal/repositories"
)

// API is the subset of the DynamoDB client used by the booking repository.
// Declared locally so tests can substitute a fake without a real client.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// BookingRepository implements repositories.BookingRepository against a
// DynamoDB table keyed by booking id.
type BookingRepository struct {
	client API
	table  string
	logger *logrus.Logger
}

// NewBookingRepository creates a DynamoDB booking repository. An empty table
// name is tolerated at construction and reported as a configuration fault on
// first use, so a misconfigured deployment fails per-request rather than at
// cold start.
func NewBookingRepository(client API, table string, logger *logrus.Logger) *BookingRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &BookingRepository{
		client: client,
		table:  table,
		logger: logger,
	}
}

// GetByID performs a single point-read by booking id.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if r.table == "" {
		r.logger.Error("Bookings table name is not configured")
		return nil, repositories.NotConfiguredError("booking")
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"table":      r.table,
			"booking_id": id,
			"error":      err.Error(),
		}).Error("DynamoDB GetItem failed")
		return nil, repositories.UnavailableError("get_by_id", "booking", id, err)
	}

	// A response with no item inside is a plain not-found.
	if len(out.Item) == 0 {
		return nil, repositories.NotFoundError("booking", id)
	}

	booking := &models.Booking{}
	if err := attributevalue.UnmarshalMap(out.Item, booking); err != nil {
		r.logger.WithFields(logrus.Fields{
			"table":      r.table,
			"booking_id": id,
			"error":      err.Error(),
		}).Error("Failed to unmarshal booking item")
		return nil, repositories.UnavailableError("unmarshal", "booking", id, err)
	}

	return booking, nil
}

// Put writes a booking. Used by seeding and tests only.
func (r *BookingRepository) Put(ctx context.Context, booking *models.Booking) error {
	if r.table == "" {
		return repositories.NotConfiguredError("booking")
	}

	item, err := attributevalue.MarshalMap(booking)
	if err != nil {
		return repositories.NewRepositoryError("marshal", "booking", booking.ID, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"table":      r.table,
			"booking_id": booking.ID,
			"error":      err.Error(),
		}).Error("DynamoDB PutItem failed")
		return repositories.UnavailableError("put", "booking", booking.ID, err)
	}

	return nil
}
