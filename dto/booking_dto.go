package dto

type CreateBookingInput struct {
	ProductID   string  `json:"productId" binding:"required,objectid"`
	ProductName string  `json:"productName" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,gte=1"`
	Price       float64 `json:"price" binding:"gte=0"`
}

type MarkPaidInput struct {
	TransactionID string  `json:"transactionId" binding:"required"`
	Amount        float64 `json:"amount" binding:"gte=0"`
}
