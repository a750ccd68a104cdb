package services

import (
	"context"
	"gin-manufacturer/constants"
	"math"
)

type PaymentProvider interface {
	// CreatePaymentIntent 作成したPaymentIntentのclient secretを返す
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}

type IPaymentService interface {
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
}

type PaymentService struct {
	provider PaymentProvider
}

// NewPaymentService providerがnilの場合はErrPaymentsDisabledを返すサービスになる
func NewPaymentService(provider PaymentProvider) IPaymentService {
	return &PaymentService{provider: provider}
}

func (s *PaymentService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	if s.provider == nil {
		return "", ErrPaymentsDisabled
	}
	return s.provider.CreatePaymentIntent(ctx, ToMinorUnits(price), constants.PaymentCurrency)
}

// ToMinorUnits 20.00 -> 2000。浮動小数点の誤差（19.99*100=1998.999...）は四捨五入で吸収する
func ToMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
