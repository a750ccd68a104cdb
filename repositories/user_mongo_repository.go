package repositories

import (
	"context"
	"gin-manufacturer/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(collection *mongo.Collection) IUserRepository {
	return &MongoUserRepository{collection: collection}
}

func (r *MongoUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoUserRepository) FindUser(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *MongoUserRepository) Upsert(ctx context.Context, email string, profile models.UserProfile) (*models.UpdateResult, error) {
	update := bson.M{
		"$setOnInsert": bson.M{"_id": models.NewID(), "createdAt": time.Now()},
	}
	if len(profile) > 0 {
		update["$set"] = bson.M(profile)
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return updateResult(result), nil
}

func (r *MongoUserRepository) SetRole(ctx context.Context, email string, role string) (*models.UpdateResult, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return nil, err
	}
	return updateResult(result), nil
}
