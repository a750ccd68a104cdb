package repositories

import (
	"context"
	"gin-manufacturer/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoBookingRepository struct {
	collection *mongo.Collection
}

func NewMongoBookingRepository(collection *mongo.Collection) IBookingRepository {
	return &MongoBookingRepository{collection: collection}
}

func (r *MongoBookingRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoBookingRepository) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *MongoBookingRepository) FindById(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.collection.FindOne(ctx, idFilter(bookingID)).Decode(&booking); err != nil {
		return nil, translate(err)
	}
	return &booking, nil
}

func (r *MongoBookingRepository) Create(ctx context.Context, newBooking models.Booking) (*models.InsertResult, error) {
	if newBooking.ID == "" {
		newBooking.ID = models.NewID()
	}
	if newBooking.CreatedAt.IsZero() {
		newBooking.CreatedAt = time.Now()
	}
	result, err := r.collection.InsertOne(ctx, newBooking)
	if err != nil {
		return nil, err
	}
	return insertResult(result), nil
}

func (r *MongoBookingRepository) MarkPaid(ctx context.Context, bookingID string, transactionID string) (*models.UpdateResult, error) {
	return r.set(ctx, bookingID, bson.M{"paid": true, "transactionId": transactionID})
}

func (r *MongoBookingRepository) MarkDelivered(ctx context.Context, bookingID string) (*models.UpdateResult, error) {
	return r.set(ctx, bookingID, bson.M{"delivered": true})
}

func (r *MongoBookingRepository) Delete(ctx context.Context, bookingID string) (*models.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, idFilter(bookingID))
	if err != nil {
		return nil, err
	}
	return deleteResult(result), nil
}

func (r *MongoBookingRepository) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *MongoBookingRepository) set(ctx context.Context, bookingID string, fields bson.M) (*models.UpdateResult, error) {
	result, err := r.collection.UpdateOne(ctx, idFilter(bookingID), bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	return updateResult(result), nil
}
