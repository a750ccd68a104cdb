package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/gorm"
)

// Repositories エンティティごとのリポジトリの束
type Repositories struct {
	Products IProductRepository
	Users    IUserRepository
	Reviews  IReviewRepository
	Bookings IBookingRepository
	Payments IPaymentRepository

	ping func(ctx context.Context) error
}

func (r *Repositories) Ping(ctx context.Context) error {
	if r.ping == nil {
		return nil
	}
	return r.ping(ctx)
}

func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Products: NewProductRepository(db),
		Users:    NewUserRepository(db),
		Reviews:  NewReviewRepository(db),
		Bookings: NewBookingRepository(db),
		Payments: NewPaymentRepository(db),
		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
}

// manufacturer_websiteデータベースのコレクション名
const (
	productsCollection = "products"
	usersCollection    = "users"
	reviewsCollection  = "reviews"
	bookingsCollection = "bookings"
	paymentsCollection = "payments"
)

func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Products: NewMongoProductRepository(db.Collection(productsCollection)),
		Users:    NewMongoUserRepository(db.Collection(usersCollection)),
		Reviews:  NewMongoReviewRepository(db.Collection(reviewsCollection)),
		Bookings: NewMongoBookingRepository(db.Collection(bookingsCollection)),
		Payments: NewMongoPaymentRepository(db.Collection(paymentsCollection)),
		ping: func(ctx context.Context) error {
			return db.Client().Ping(ctx, readpref.Primary())
		},
	}
}
