package models

import (
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	ID            string    `json:"_id" bson:"_id" gorm:"primaryKey;size:24"`
	BookingID     string    `json:"bookingId" bson:"bookingId" gorm:"size:24;index"`
	TransactionID string    `json:"transactionId" bson:"transactionId"`
	Amount        float64   `json:"amount" bson:"amount"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}
