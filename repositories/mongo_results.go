package repositories

import (
	"fmt"
	"gin-manufacturer/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func insertResult(r *mongo.InsertOneResult) *models.InsertResult {
	return &models.InsertResult{Acknowledged: true, InsertedID: idString(r.InsertedID)}
}

func updateResult(r *mongo.UpdateResult) *models.UpdateResult {
	out := &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  r.MatchedCount,
		ModifiedCount: r.ModifiedCount,
		UpsertedCount: r.UpsertedCount,
	}
	if r.UpsertedID != nil {
		id := idString(r.UpsertedID)
		out.UpsertedID = &id
	}
	return out
}

func deleteResult(r *mongo.DeleteResult) *models.DeleteResult {
	return &models.DeleteResult{Acknowledged: true, DeletedCount: r.DeletedCount}
}

// idString _idは文字列で保存しているが、手で入れたObjectIDのドキュメントにも対応する
func idString(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case primitive.ObjectID:
		return v.Hex()
	default:
		return fmt.Sprint(v)
	}
}

// idFilter 文字列の_idとObjectIDの_idのどちらのドキュメントにも一致するフィルター
func idFilter(id string) bson.M {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return bson.M{"_id": id}
	}
	return bson.M{"_id": bson.M{"$in": bson.A{id, oid}}}
}
