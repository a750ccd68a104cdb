package repositories

import (
	"context"
	"testing"

	"gin-manufacturer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository(setupTestDB(t))

	created, err := repo.Create(ctx, models.Booking{
		Email:       "buyer@example.com",
		ProductID:   models.NewID(),
		ProductName: "drill",
		Quantity:    2,
		Price:       40,
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.Booking{Email: "other@example.com", ProductName: "saw", Quantity: 1})
	require.NoError(t, err)

	mine, err := repo.FindByEmail(ctx, "buyer@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.False(t, mine[0].Paid)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	paid, err := repo.MarkPaid(ctx, created.InsertedID, "pi_123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), paid.MatchedCount)

	delivered, err := repo.MarkDelivered(ctx, created.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), delivered.MatchedCount)

	booking, err := repo.FindById(ctx, created.InsertedID)
	require.NoError(t, err)
	assert.True(t, booking.Paid)
	assert.True(t, booking.Delivered)
	assert.Equal(t, "pi_123", booking.TransactionID)

	deleted, err := repo.Delete(ctx, created.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted.DeletedCount)

	_, err = repo.FindById(ctx, created.InsertedID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingRepository_RepeatedUpdatesModifyNothing(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository(setupTestDB(t))

	created, err := repo.Create(ctx, models.Booking{Email: "buyer@example.com", ProductName: "drill", Quantity: 1})
	require.NoError(t, err)

	first, err := repo.MarkDelivered(ctx, created.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.MatchedCount)
	assert.Equal(t, int64(1), first.ModifiedCount)

	second, err := repo.MarkDelivered(ctx, created.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.MatchedCount)
	assert.Equal(t, int64(0), second.ModifiedCount)

	paid, err := repo.MarkPaid(ctx, created.InsertedID, "pi_1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), paid.ModifiedCount)

	samePayment, err := repo.MarkPaid(ctx, created.InsertedID, "pi_1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), samePayment.MatchedCount)
	assert.Equal(t, int64(0), samePayment.ModifiedCount)

	newPayment, err := repo.MarkPaid(ctx, created.InsertedID, "pi_2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), newPayment.ModifiedCount)
}

func TestBookingRepository_MissingBooking(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository(setupTestDB(t))
	id := models.NewID()

	paid, err := repo.MarkPaid(ctx, id, "pi_missing")
	require.NoError(t, err)
	assert.Equal(t, int64(0), paid.MatchedCount)

	deleted, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted.DeletedCount)

	none, err := repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReviewRepository_FindRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(setupTestDB(t))

	for i := 1; i <= 7; i++ {
		_, err := repo.Create(ctx, models.Review{Name: "r", Email: "r@example.com", Rating: 1 + i%5, Comment: "ok"})
		require.NoError(t, err)
	}

	reviews, err := repo.FindRecent(ctx, 6)
	require.NoError(t, err)
	assert.Len(t, reviews, 6)
}

func TestPaymentRepository_CountByBooking(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentRepository(setupTestDB(t))
	bookingID := models.NewID()

	for i := 0; i < 2; i++ {
		_, err := repo.Create(ctx, models.Payment{BookingID: bookingID, TransactionID: "pi_dup", Amount: 20})
		require.NoError(t, err)
	}

	count, err := repo.CountByBooking(ctx, bookingID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
