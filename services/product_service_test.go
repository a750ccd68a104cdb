package services

import (
	"context"
	"testing"

	"gin-manufacturer/constants"
	"gin-manufacturer/dto"
	"gin-manufacturer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_FeaturedIsCapped(t *testing.T) {
	ctx := context.Background()
	repos := setupTestRepositories(t)
	svc := NewProductService(repos.Products, NopPublisher{})

	for i := 0; i < constants.FeaturedProductLimit+3; i++ {
		_, err := svc.Create(ctx, dto.CreateProductInput{Name: "widget", Quantity: i})
		require.NoError(t, err)
	}

	featured, err := svc.FindFeatured(ctx)
	require.NoError(t, err)
	assert.Len(t, featured, constants.FeaturedProductLimit)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, constants.FeaturedProductLimit+3)
}

func TestProductService_DeletePublishesOnlyWhenRemoved(t *testing.T) {
	ctx := context.Background()
	repos := setupTestRepositories(t)
	publisher := &recordingPublisher{}
	svc := NewProductService(repos.Products, publisher)

	created, err := svc.Create(ctx, dto.CreateProductInput{Name: "widget"})
	require.NoError(t, err)

	result, err := svc.Delete(ctx, created.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)

	result, err = svc.Delete(ctx, models.NewID())
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.DeletedCount)

	assert.Equal(t, []string{EventProductCreated, EventProductDeleted}, publisher.Keys())
}

func TestProductService_CreateKeepsExtraFields(t *testing.T) {
	ctx := context.Background()
	repos := setupTestRepositories(t)
	svc := NewProductService(repos.Products, NopPublisher{})

	created, err := svc.Create(ctx, dto.CreateProductInput{
		Name:  "widget",
		Price: 12,
		Extras: map[string]interface{}{
			"name":      "widget",
			"price":     12.0,
			"material":  "steel",
			"_id":       "forged",
			"createdAt": "yesterday",
		},
	})
	require.NoError(t, err)

	product, err := svc.FindById(ctx, created.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, created.InsertedID, product.ID)
	assert.Equal(t, "widget", product.Name)
	assert.Equal(t, map[string]interface{}{"material": "steel"}, map[string]interface{}(product.Extras))
}
