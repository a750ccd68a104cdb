package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// NewID ObjectIDの16進表現をIDとして採番する（MongoでもRDBでも同じ形式）
func NewID() string {
	return primitive.NewObjectID().Hex()
}

func IsValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}
