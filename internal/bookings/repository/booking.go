package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	bookingserrors "resortly/internal/bookings/errors"
	"resortly/pkg/config"
	"resortly/pkg/model"
)

const CollectionName = "Bookings"

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByReference(ctx context.Context, ref string) (*model.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]*model.Booking, error)
	Search(ctx context.Context, filter model.BookingFilter) ([]*model.Booking, error)
	CancelActive(ctx context.Context, ref string, cancellation *model.Cancellation) (*model.Booking, error)
}

type mongoBookingRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoBookingRepository(cfg *config.Config) BookingRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBookingRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoBookingRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return bookingserrors.ErrDuplicateReference
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid.Hex()
	}
	return nil
}

func (r *mongoBookingRepository) FindByReference(ctx context.Context, ref string) (*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var booking model.Booking
	err := r.collection.FindOne(ctx, bson.M{"bookingId": ref}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}

	return &booking, nil
}

// FindByEmail lists an owner's bookings newest first. Payment details
// never leave the store: the projection drops them before decoding.
func (r *mongoBookingRepository) FindByEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{"paymentInfo": 0})

	cursor, err := r.collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*model.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *mongoBookingRepository) Search(ctx context.Context, filter model.BookingFilter) ([]*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, buildSearchFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*model.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

func buildSearchFilter(filter model.BookingFilter) bson.M {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.ResortID != "" {
		query["resortId"] = filter.ResortID
	}
	if filter.StartDate != nil {
		query["startDate"] = bson.M{"$gte": *filter.StartDate}
	}
	if filter.EndDate != nil {
		query["endDate"] = bson.M{"$lte": *filter.EndDate}
	}
	return query
}

// CancelActive atomically transitions an active booking to cancelled.
// The status guard in the filter makes double-cancellation a store
// answer instead of a read-then-write race: a second caller matches
// nothing and gets ErrNotFound.
func (r *mongoBookingRepository) CancelActive(ctx context.Context, ref string, cancellation *model.Cancellation) (*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	filter := bson.M{
		"bookingId": ref,
		"status":    bson.M{"$ne": model.BookingStatusCancelled},
	}
	update := bson.M{
		"$set": bson.M{
			"status":       model.BookingStatusCancelled,
			"cancellation": cancellation,
			"updatedAt":    cancellation.CancelledAt,
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking model.Booking
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	return &booking, nil
}
