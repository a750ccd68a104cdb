package infra

import (
	"context"
	"gin-manufacturer/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

func MigrateGorm(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Review{},
		&models.Booking{},
		&models.Payment{},
	)
}

// EnsureMongoIndexes emailの一意制約と新着順ソート用のインデックス
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"products": {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		"reviews": {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		"bookings": {
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
		"payments": {
			{Keys: bson.D{{Key: "bookingId", Value: 1}}},
		},
	}
	for collection, idx := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, idx); err != nil {
			return err
		}
	}
	return nil
}
