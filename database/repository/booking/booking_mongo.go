// File: database/repository/booking/booking_mongo.go
package booking

import (
	"context"
	"fmt"

	"concierge/config"
	"concierge/database"
	"concierge/models"

	"go.mongodb.org/mongo-driver/mongo"
)

const bookingsCollection = "bookings"

// Repository persists confirmed booking records.
type Repository interface {
	Save(ctx context.Context, record models.BookingRecord) error
}

// MongoBookingRepo implements Repository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

func NewMongoBookingRepo() *MongoBookingRepo {
	db := database.MongoClient.Database(config.AppConfig.MongoDatabase)
	return &MongoBookingRepo{coll: db.Collection(bookingsCollection)}
}

func (r *MongoBookingRepo) Save(ctx context.Context, record models.BookingRecord) error {
	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("insert booking record: %w", err)
	}
	return nil
}
