package services

import (
	"context"
	"gin-manufacturer/constants"
	"gin-manufacturer/dto"
	"gin-manufacturer/models"
	"gin-manufacturer/repositories"
)

type IReviewService interface {
	FindLatest(ctx context.Context) ([]models.Review, error)
	Create(ctx context.Context, email string, input dto.CreateReviewInput) (*models.InsertResult, error)
}

type ReviewService struct {
	repository repositories.IReviewRepository
}

func NewReviewService(repository repositories.IReviewRepository) IReviewService {
	return &ReviewService{repository: repository}
}

func (s *ReviewService) FindLatest(ctx context.Context) ([]models.Review, error) {
	return s.repository.FindRecent(ctx, constants.LatestReviewLimit)
}

func (s *ReviewService) Create(ctx context.Context, email string, input dto.CreateReviewInput) (*models.InsertResult, error) {
	return s.repository.Create(ctx, models.Review{
		Name:    input.Name,
		Email:   email,
		Rating:  input.Rating,
		Comment: input.Comment,
	})
}
