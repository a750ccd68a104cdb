package repositories

import (
	"context"
	"gin-manufacturer/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

type IReviewRepository interface {
	FindRecent(ctx context.Context, limit int) ([]models.Review, error)
	Create(ctx context.Context, newReview models.Review) (*models.InsertResult, error)
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) IReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) FindRecent(ctx context.Context, limit int) ([]models.Review, error) {
	reviews := []models.Review{}
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) Create(ctx context.Context, newReview models.Review) (*models.InsertResult, error) {
	if err := r.db.WithContext(ctx).Create(&newReview).Error; err != nil {
		return nil, err
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: newReview.ID}, nil
}

type MongoReviewRepository struct {
	collection *mongo.Collection
}

func NewMongoReviewRepository(collection *mongo.Collection) IReviewRepository {
	return &MongoReviewRepository{collection: collection}
}

func (r *MongoReviewRepository) FindRecent(ctx context.Context, limit int) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *MongoReviewRepository) Create(ctx context.Context, newReview models.Review) (*models.InsertResult, error) {
	if newReview.ID == "" {
		newReview.ID = models.NewID()
	}
	if newReview.CreatedAt.IsZero() {
		newReview.CreatedAt = time.Now()
	}
	result, err := r.collection.InsertOne(ctx, newReview)
	if err != nil {
		return nil, err
	}
	return insertResult(result), nil
}
