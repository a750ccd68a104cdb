package repositories

import (
	"context"
	"gin-manufacturer/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(collection *mongo.Collection) IProductRepository {
	return &MongoProductRepository{collection: collection}
}

func (r *MongoProductRepository) FindRecent(ctx context.Context, limit int) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoProductRepository) FindById(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	if err := r.collection.FindOne(ctx, idFilter(productID)).Decode(&product); err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *MongoProductRepository) Create(ctx context.Context, newProduct models.Product) (*models.InsertResult, error) {
	if newProduct.ID == "" {
		newProduct.ID = models.NewID()
	}
	if newProduct.CreatedAt.IsZero() {
		newProduct.CreatedAt = time.Now()
	}
	result, err := r.collection.InsertOne(ctx, newProduct)
	if err != nil {
		return nil, err
	}
	return insertResult(result), nil
}

// UpsertQuantity 既存のドキュメントは_idの型を問わず更新し、なければ文字列の_idで作成する
func (r *MongoProductRepository) UpsertQuantity(ctx context.Context, productID string, quantity int) (*models.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"quantity": quantity}}
	result, err := r.collection.UpdateOne(ctx, idFilter(productID), update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount > 0 {
		return updateResult(result), nil
	}
	result, err = r.collection.UpdateOne(ctx, bson.M{"_id": productID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return updateResult(result), nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, productID string) (*models.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, idFilter(productID))
	if err != nil {
		return nil, err
	}
	return deleteResult(result), nil
}
