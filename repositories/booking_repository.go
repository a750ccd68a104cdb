package repositories

import (
	"context"
	"fmt"
	"gin-manufacturer/models"
	"sort"
	"strings"

	"gorm.io/gorm"
)

type IBookingRepository interface {
	FindAll(ctx context.Context) ([]models.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindById(ctx context.Context, bookingID string) (*models.Booking, error)
	Create(ctx context.Context, newBooking models.Booking) (*models.InsertResult, error)
	MarkPaid(ctx context.Context, bookingID string, transactionID string) (*models.UpdateResult, error)
	MarkDelivered(ctx context.Context, bookingID string) (*models.UpdateResult, error)
	Delete(ctx context.Context, bookingID string) (*models.DeleteResult, error)
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) IBookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	bookings := []models.Booking{}
	if err := r.db.WithContext(ctx).Order("created_at").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	bookings := []models.Booking{}
	if err := r.db.WithContext(ctx).Where("email = ?", email).Order("created_at").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) FindById(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, "id = ?", bookingID).Error; err != nil {
		return nil, translate(err)
	}
	return &booking, nil
}

func (r *BookingRepository) Create(ctx context.Context, newBooking models.Booking) (*models.InsertResult, error) {
	if err := r.db.WithContext(ctx).Create(&newBooking).Error; err != nil {
		return nil, err
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: newBooking.ID}, nil
}

func (r *BookingRepository) MarkPaid(ctx context.Context, bookingID string, transactionID string) (*models.UpdateResult, error) {
	return r.update(ctx, bookingID, map[string]interface{}{
		"paid":           true,
		"transaction_id": transactionID,
	})
}

func (r *BookingRepository) MarkDelivered(ctx context.Context, bookingID string) (*models.UpdateResult, error) {
	return r.update(ctx, bookingID, map[string]interface{}{"delivered": true})
}

func (r *BookingRepository) Delete(ctx context.Context, bookingID string) (*models.DeleteResult, error) {
	result := r.db.WithContext(ctx).Delete(&models.Booking{}, "id = ?", bookingID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: result.RowsAffected}, nil
}

// update 一致した件数と、実際に値が変わった件数を別々に数える
func (r *BookingRepository) update(ctx context.Context, bookingID string, fields map[string]interface{}) (*models.UpdateResult, error) {
	out := models.UpdateResult{Acknowledged: true}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{}).Where("id = ?", bookingID).Count(&out.MatchedCount).Error; err != nil {
			return err
		}
		if out.MatchedCount == 0 {
			return nil
		}
		condition, args := differsFrom(fields)
		result := tx.Model(&models.Booking{}).Where("id = ?", bookingID).Where(condition, args...).Updates(fields)
		if result.Error != nil {
			return result.Error
		}
		out.ModifiedCount = result.RowsAffected
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// differsFrom いずれかのカラムがfieldsの値と異なる行に一致する条件
func differsFrom(fields map[string]interface{}) (string, []interface{}) {
	columns := make([]string, 0, len(fields))
	for column := range fields {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	conditions := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, column := range columns {
		conditions = append(conditions, fmt.Sprintf("(%s IS NULL OR %s <> ?)", column, column))
		args = append(args, fields[column])
	}
	return "(" + strings.Join(conditions, " OR ") + ")", args
}
