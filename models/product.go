package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	ID           string            `json:"_id" bson:"_id" gorm:"primaryKey;size:24"`
	Name         string            `json:"name,omitempty" bson:"name,omitempty"`
	Description  string            `json:"description,omitempty" bson:"description,omitempty"`
	Image        string            `json:"image,omitempty" bson:"image,omitempty"`
	Price        float64           `json:"price" bson:"price"`
	Quantity     int               `json:"quantity" bson:"quantity"`
	MinimumOrder int               `json:"minimumOrder" bson:"minimumOrder"`
	CreatedAt    time.Time         `json:"createdAt" bson:"createdAt,omitempty" gorm:"index"`
	Extras       datatypes.JSONMap `json:"-" bson:",inline" gorm:"column:extras"`
}

var productKeys = keySet("name", "description", "image", "price", "quantity", "minimumOrder")

// ProductExtras 商品作成の本文から任意の説明フィールドだけを取り出す
func ProductExtras(raw map[string]interface{}) datatypes.JSONMap {
	return pickExtras(raw, productKeys)
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}

type productDocument Product

func (p Product) MarshalJSON() ([]byte, error) {
	return marshalWithExtras(productDocument(p), p.Extras)
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var doc productDocument
	extras, err := unmarshalWithExtras(data, &doc, productKeys)
	if err != nil {
		return err
	}
	*p = Product(doc)
	p.Extras = extras
	return nil
}
