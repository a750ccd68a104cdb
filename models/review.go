package models

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID        string    `json:"_id" bson:"_id" gorm:"primaryKey;size:24"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email" gorm:"index"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment" bson:"comment"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt" gorm:"index"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = NewID()
	}
	return nil
}
