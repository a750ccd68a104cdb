package services

import (
	"context"
	"gin-manufacturer/constants"
	"gin-manufacturer/dto"
	"gin-manufacturer/models"
	"gin-manufacturer/repositories"
)

type IProductService interface {
	// FindFeatured 新しい順に最大6件
	FindFeatured(ctx context.Context) ([]models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	FindById(ctx context.Context, productID string) (*models.Product, error)
	Create(ctx context.Context, input dto.CreateProductInput) (*models.InsertResult, error)
	// UpdateQuantity upsert。存在しない商品はquantityだけを持って作成される
	UpdateQuantity(ctx context.Context, productID string, quantity int) (*models.UpdateResult, error)
	Delete(ctx context.Context, productID string) (*models.DeleteResult, error)
}

type ProductService struct {
	repository repositories.IProductRepository
	publisher  EventPublisher
}

func NewProductService(repository repositories.IProductRepository, publisher EventPublisher) IProductService {
	return &ProductService{repository: repository, publisher: publisher}
}

func (s *ProductService) FindFeatured(ctx context.Context) ([]models.Product, error) {
	return s.repository.FindRecent(ctx, constants.FeaturedProductLimit)
}

func (s *ProductService) FindAll(ctx context.Context) ([]models.Product, error) {
	return s.repository.FindRecent(ctx, 0)
}

func (s *ProductService) FindById(ctx context.Context, productID string) (*models.Product, error) {
	return s.repository.FindById(ctx, productID)
}

func (s *ProductService) Create(ctx context.Context, input dto.CreateProductInput) (*models.InsertResult, error) {
	newProduct := models.Product{
		Name:         input.Name,
		Description:  input.Description,
		Image:        input.Image,
		Price:        input.Price,
		Quantity:     input.Quantity,
		MinimumOrder: input.MinimumOrder,
		Extras:       models.ProductExtras(input.Extras),
	}
	result, err := s.repository.Create(ctx, newProduct)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.publisher, Event{Type: EventProductCreated, ID: result.InsertedID})
	return result, nil
}

func (s *ProductService) UpdateQuantity(ctx context.Context, productID string, quantity int) (*models.UpdateResult, error) {
	return s.repository.UpsertQuantity(ctx, productID, quantity)
}

func (s *ProductService) Delete(ctx context.Context, productID string) (*models.DeleteResult, error) {
	result, err := s.repository.Delete(ctx, productID)
	if err != nil {
		return nil, err
	}
	if result.DeletedCount > 0 {
		publish(ctx, s.publisher, Event{Type: EventProductDeleted, ID: productID})
	}
	return result, nil
}
