package models

import (
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	ID            string    `json:"_id" bson:"_id" gorm:"primaryKey;size:24"`
	Email         string    `json:"email" bson:"email" gorm:"not null;index"`
	ProductID     string    `json:"productId" bson:"productId" gorm:"size:24"`
	ProductName   string    `json:"productName" bson:"productName"`
	Quantity      int       `json:"quantity" bson:"quantity"`
	Price         float64   `json:"price" bson:"price"`
	Paid          bool      `json:"paid" bson:"paid"`
	TransactionID string    `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Delivered     bool      `json:"delivered" bson:"delivered"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = NewID()
	}
	return nil
}
