package dto

type CreatePaymentIntentInput struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
