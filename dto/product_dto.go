package dto

type CreateProductInput struct {
	Name         string  `json:"name" binding:"required,min=2"`
	Description  string  `json:"description"`
	Image        string  `json:"image" binding:"omitempty,url"`
	Price        float64 `json:"price" binding:"gte=0"`
	Quantity     int     `json:"quantity" binding:"gte=0"`
	MinimumOrder int     `json:"minimumOrder" binding:"gte=0"`
	// Extras 本文の名前付き以外のキー
	Extras map[string]interface{} `json:"-"`
}

type UpdateQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}
