package repositories

import (
	"context"
	"errors"
	"gin-manufacturer/models"

	"gorm.io/gorm"
)

type IProductRepository interface {
	// FindRecent 新しい順。limitが0以下なら全件
	FindRecent(ctx context.Context, limit int) ([]models.Product, error)
	FindById(ctx context.Context, productID string) (*models.Product, error)
	Create(ctx context.Context, newProduct models.Product) (*models.InsertResult, error)
	// UpsertQuantity 存在しない場合はquantityだけを持つ商品として作成される
	UpsertQuantity(ctx context.Context, productID string, quantity int) (*models.UpdateResult, error)
	Delete(ctx context.Context, productID string) (*models.DeleteResult, error)
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) FindRecent(ctx context.Context, limit int) ([]models.Product, error) {
	products := []models.Product{}
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindById(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	result := r.db.WithContext(ctx).First(&product, "id = ?", productID)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, newProduct models.Product) (*models.InsertResult, error) {
	result := r.db.WithContext(ctx).Create(&newProduct)
	if result.Error != nil {
		return nil, result.Error
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: newProduct.ID}, nil
}

func (r *ProductRepository) UpsertQuantity(ctx context.Context, productID string, quantity int) (*models.UpdateResult, error) {
	var out models.UpdateResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		err := tx.Select("id", "quantity").Take(&existing, "id = ?", productID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(&models.Product{ID: productID, Quantity: quantity}).Error; err != nil {
				return err
			}
			out = models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &productID}
			return nil
		}
		if err != nil {
			return err
		}

		out = models.UpdateResult{Acknowledged: true, MatchedCount: 1}
		if existing.Quantity == quantity {
			return nil
		}
		result := tx.Model(&models.Product{}).Where("id = ?", productID).Update("quantity", quantity)
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

func (r *ProductRepository) Delete(ctx context.Context, productID string) (*models.DeleteResult, error) {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", productID)
	if result.Error != nil {
		return nil, result.Error
	}
	// 該当なしはエラーにせずdeletedCount=0を返す
	return &models.DeleteResult{Acknowledged: true, DeletedCount: result.RowsAffected}, nil
}
