package services

import (
	"context"
	"errors"
	"gin-manufacturer/constants"
	"gin-manufacturer/models"
	"gin-manufacturer/repositories"
	"strings"
)

type IUserService interface {
	FindAll(ctx context.Context) ([]models.User, error)
	// Upsert ログインのたびに呼ばれる。プロフィールを$setし、毎回新しいトークンを発行する
	Upsert(ctx context.Context, email string, profile models.UserProfile) (*models.UpdateResult, string, error)
	MakeAdmin(ctx context.Context, email string) (*models.UpdateResult, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	// HasRole DBに保存されたロールで判定する（トークンにはロールを入れない）
	HasRole(ctx context.Context, email string, roles ...string) (bool, error)
}

type UserService struct {
	repository   repositories.IUserRepository
	tokenService ITokenService
}

func NewUserService(repository repositories.IUserRepository, tokenService ITokenService) IUserService {
	return &UserService{
		repository:   repository,
		tokenService: tokenService,
	}
}

func (s *UserService) FindAll(ctx context.Context) ([]models.User, error) {
	return s.repository.FindAll(ctx)
}

func (s *UserService) Upsert(ctx context.Context, email string, profile models.UserProfile) (*models.UpdateResult, string, error) {
	result, err := s.repository.Upsert(ctx, email, profile)
	if err != nil {
		return nil, "", err
	}
	token, err := s.tokenService.Issue(email)
	if err != nil {
		return nil, "", err
	}
	return result, token, nil
}

// MakeAdmin 対象ユーザーの存在以外は検証しない。存在しなければmatchedCount=0
func (s *UserService) MakeAdmin(ctx context.Context, email string) (*models.UpdateResult, error) {
	return s.repository.SetRole(ctx, email, constants.RoleAdmin)
}

func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.HasRole(ctx, email, constants.RoleAdmin)
}

func (s *UserService) HasRole(ctx context.Context, email string, roles ...string) (bool, error) {
	user, err := s.repository.FindUser(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	userRole := strings.TrimSpace(strings.ToLower(user.Role))
	if userRole == constants.RoleNone {
		return false, nil
	}
	for _, role := range roles {
		if userRole == strings.TrimSpace(strings.ToLower(role)) {
			return true, nil
		}
	}
	return false, nil
}

// EnsureAdmin 起動時の管理者ブートストラップ。ユーザーがいなければ作ってからadminにする
func EnsureAdmin(ctx context.Context, repository repositories.IUserRepository, email string) error {
	if _, err := repository.Upsert(ctx, email, models.UserProfile{}); err != nil {
		return err
	}
	_, err := repository.SetRole(ctx, email, constants.RoleAdmin)
	return err
}
