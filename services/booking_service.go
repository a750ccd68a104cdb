package services

import (
	"context"
	"gin-manufacturer/dto"
	"gin-manufacturer/infra"
	"gin-manufacturer/models"
	"gin-manufacturer/repositories"

	"go.uber.org/zap"
)

type IBookingService interface {
	Create(ctx context.Context, email string, input dto.CreateBookingInput) (*models.InsertResult, error)
	FindAll(ctx context.Context) ([]models.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindById(ctx context.Context, bookingID string) (*models.Booking, error)
	MarkPaid(ctx context.Context, bookingID string, input dto.MarkPaidInput) (*models.UpdateResult, error)
	MarkDelivered(ctx context.Context, bookingID string) (*models.UpdateResult, error)
	Delete(ctx context.Context, bookingID string) (*models.DeleteResult, error)
}

type BookingService struct {
	repository        repositories.IBookingRepository
	paymentRepository repositories.IPaymentRepository
	publisher         EventPublisher
}

func NewBookingService(repository repositories.IBookingRepository, paymentRepository repositories.IPaymentRepository, publisher EventPublisher) IBookingService {
	return &BookingService{
		repository:        repository,
		paymentRepository: paymentRepository,
		publisher:         publisher,
	}
}

func (s *BookingService) Create(ctx context.Context, email string, input dto.CreateBookingInput) (*models.InsertResult, error) {
	newBooking := models.Booking{
		Email:       email,
		ProductID:   input.ProductID,
		ProductName: input.ProductName,
		Quantity:    input.Quantity,
		Price:       input.Price,
	}
	result, err := s.repository.Create(ctx, newBooking)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.publisher, Event{Type: EventBookingCreated, ID: result.InsertedID, Email: email})
	return result, nil
}

func (s *BookingService) FindAll(ctx context.Context) ([]models.Booking, error) {
	return s.repository.FindAll(ctx)
}

func (s *BookingService) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.repository.FindByEmail(ctx, email)
}

func (s *BookingService) FindById(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.repository.FindById(ctx, bookingID)
}

// MarkPaid 決済記録の保存と予約の更新は別々の書き込み（トランザクションなし）
// 2つ目が失敗すると決済記録だけが残る。同時に呼ばれると決済記録は2件になる
// クライアントが切断しても途中で止まらないようにキャンセルは伝播させない
func (s *BookingService) MarkPaid(ctx context.Context, bookingID string, input dto.MarkPaidInput) (*models.UpdateResult, error) {
	writeCtx := context.WithoutCancel(ctx)

	payment := models.Payment{
		BookingID:     bookingID,
		TransactionID: input.TransactionID,
		Amount:        input.Amount,
	}
	if _, err := s.paymentRepository.Create(writeCtx, payment); err != nil {
		return nil, err
	}

	result, err := s.repository.MarkPaid(writeCtx, bookingID, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if count, err := s.paymentRepository.CountByBooking(writeCtx, bookingID); err == nil && count > 1 {
		infra.LoggerFromContext(ctx).Warn("booking has more than one payment",
			zap.String("booking_id", bookingID),
			zap.Int64("payments", count),
		)
	}

	publish(writeCtx, s.publisher, Event{Type: EventBookingPaid, ID: bookingID, TransactionID: input.TransactionID})
	return result, nil
}

func (s *BookingService) MarkDelivered(ctx context.Context, bookingID string) (*models.UpdateResult, error) {
	result, err := s.repository.MarkDelivered(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount > 0 {
		publish(ctx, s.publisher, Event{Type: EventBookingDelivered, ID: bookingID})
	}
	return result, nil
}

func (s *BookingService) Delete(ctx context.Context, bookingID string) (*models.DeleteResult, error) {
	return s.repository.Delete(ctx, bookingID)
}
