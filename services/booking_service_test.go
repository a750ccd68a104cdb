package services

import (
	"context"
	"errors"
	"testing"

	"gin-manufacturer/dto"
	"gin-manufacturer/infra"
	"gin-manufacturer/models"
	"gin-manufacturer/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestBookingService_MarkPaid(t *testing.T) {
	ctx := context.Background()
	repos := setupTestRepositories(t)
	publisher := &recordingPublisher{}
	svc := NewBookingService(repos.Bookings, repos.Payments, publisher)

	created, err := svc.Create(ctx, "buyer@example.com", dto.CreateBookingInput{
		ProductID:   models.NewID(),
		ProductName: "drill",
		Quantity:    2,
		Price:       40,
	})
	require.NoError(t, err)

	result, err := svc.MarkPaid(ctx, created.InsertedID, dto.MarkPaidInput{TransactionID: "pi_1", Amount: 40})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.MatchedCount)

	booking, err := svc.FindById(ctx, created.InsertedID)
	require.NoError(t, err)
	assert.True(t, booking.Paid)
	assert.Equal(t, "pi_1", booking.TransactionID)
	assert.Equal(t, "buyer@example.com", booking.Email)

	count, err := repos.Payments.CountByBooking(ctx, created.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	assert.Equal(t, []string{EventBookingCreated, EventBookingPaid}, publisher.Keys())
}

func TestBookingService_MarkPaidTwiceRecordsTwoPayments(t *testing.T) {
	ctx := context.Background()
	repos := setupTestRepositories(t)
	svc := NewBookingService(repos.Bookings, repos.Payments, NopPublisher{})

	created, err := svc.Create(ctx, "buyer@example.com", dto.CreateBookingInput{ProductID: models.NewID(), ProductName: "saw", Quantity: 1})
	require.NoError(t, err)

	core, logs := observer.New(zap.WarnLevel)
	logCtx := infra.WithLogger(ctx, zap.New(core))
	for i := 0; i < 2; i++ {
		_, err := svc.MarkPaid(logCtx, created.InsertedID, dto.MarkPaidInput{TransactionID: "pi_dup"})
		require.NoError(t, err)
	}

	count, err := repos.Payments.CountByBooking(ctx, created.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	warnings := logs.FilterMessage("booking has more than one payment").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, int64(2), warnings[0].ContextMap()["payments"])
}

func TestBookingService_MarkPaidCompletesAfterClientCancels(t *testing.T) {
	repos := setupTestRepositories(t)
	svc := NewBookingService(repos.Bookings, repos.Payments, NopPublisher{})

	created, err := repos.Bookings.Create(context.Background(), models.Booking{Email: "buyer@example.com", ProductName: "press", Quantity: 1})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.MarkPaid(ctx, created.InsertedID, dto.MarkPaidInput{TransactionID: "pi_gone"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.MatchedCount)

	booking, err := repos.Bookings.FindById(context.Background(), created.InsertedID)
	require.NoError(t, err)
	assert.True(t, booking.Paid)
	assert.Equal(t, "pi_gone", booking.TransactionID)
}

// failingBookings 予約の更新だけを失敗させる
type failingBookings struct {
	repositories.IBookingRepository
}

func (failingBookings) MarkPaid(context.Context, string, string) (*models.UpdateResult, error) {
	return nil, errors.New("write conflict")
}

func TestBookingService_MarkPaidLeavesPaymentWhenBookingUpdateFails(t *testing.T) {
	ctx := context.Background()
	repos := setupTestRepositories(t)
	svc := NewBookingService(failingBookings{repos.Bookings}, repos.Payments, NopPublisher{})

	created, err := repos.Bookings.Create(ctx, models.Booking{Email: "buyer@example.com", ProductName: "lathe", Quantity: 1})
	require.NoError(t, err)

	_, err = svc.MarkPaid(ctx, created.InsertedID, dto.MarkPaidInput{TransactionID: "pi_orphan"})
	require.Error(t, err)

	count, err := repos.Payments.CountByBooking(ctx, created.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	booking, err := repos.Bookings.FindById(ctx, created.InsertedID)
	require.NoError(t, err)
	assert.False(t, booking.Paid)
}

func TestBookingService_FindByIdMissing(t *testing.T) {
	repos := setupTestRepositories(t)
	svc := NewBookingService(repos.Bookings, repos.Payments, NopPublisher{})

	_, err := svc.FindById(context.Background(), models.NewID())
	assert.ErrorIs(t, err, ErrNotFound)
}
