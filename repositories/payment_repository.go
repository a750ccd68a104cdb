package repositories

import (
	"context"
	"gin-manufacturer/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// IPaymentRepository 決済記録は書き込みのみ（読み出すAPIはない）
type IPaymentRepository interface {
	Create(ctx context.Context, newPayment models.Payment) (*models.InsertResult, error)
	CountByBooking(ctx context.Context, bookingID string) (int64, error)
}

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) IPaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, newPayment models.Payment) (*models.InsertResult, error) {
	if err := r.db.WithContext(ctx).Create(&newPayment).Error; err != nil {
		return nil, err
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: newPayment.ID}, nil
}

func (r *PaymentRepository) CountByBooking(ctx context.Context, bookingID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).Where("booking_id = ?", bookingID).Count(&count).Error
	return count, err
}

type MongoPaymentRepository struct {
	collection *mongo.Collection
}

func NewMongoPaymentRepository(collection *mongo.Collection) IPaymentRepository {
	return &MongoPaymentRepository{collection: collection}
}

func (r *MongoPaymentRepository) Create(ctx context.Context, newPayment models.Payment) (*models.InsertResult, error) {
	if newPayment.ID == "" {
		newPayment.ID = models.NewID()
	}
	if newPayment.CreatedAt.IsZero() {
		newPayment.CreatedAt = time.Now()
	}
	result, err := r.collection.InsertOne(ctx, newPayment)
	if err != nil {
		return nil, err
	}
	return insertResult(result), nil
}

func (r *MongoPaymentRepository) CountByBooking(ctx context.Context, bookingID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"bookingId": bookingID})
}
