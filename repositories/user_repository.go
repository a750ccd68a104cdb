package repositories

import (
	"context"
	"errors"
	"gin-manufacturer/models"
	"reflect"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type IUserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindUser(ctx context.Context, email string) (*models.User, error)
	// Upsert emailをキーにプロフィールを$setする。存在しなければ作成
	Upsert(ctx context.Context, email string, profile models.UserProfile) (*models.UpdateResult, error)
	// SetRole 既存ユーザーのみ更新する（upsertしない）
	SetRole(ctx context.Context, email string, role string) (*models.UpdateResult, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindUser(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &user, nil
}

func (r *UserRepository) Upsert(ctx context.Context, email string, profile models.UserProfile) (*models.UpdateResult, error) {
	var out models.UpdateResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Take(&existing, "email = ?", email).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user := models.User{Email: email}
			profile.ApplyTo(&user)
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			out = models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &user.ID}
			return nil
		}
		if err != nil {
			return err
		}

		out = models.UpdateResult{Acknowledged: true, MatchedCount: 1}
		updates := profileUpdates(existing, profile)
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&models.User{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
			return err
		}
		out.ModifiedCount = 1
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SetRole 既に同じロールなら一致はするが変更はしない
func (r *UserRepository) SetRole(ctx context.Context, email string, role string) (*models.UpdateResult, error) {
	var matched int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&matched).Error; err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ? AND role <> ?", email, role).
		Update("role", role)
	if result.Error != nil {
		return nil, result.Error
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  matched,
		ModifiedCount: result.RowsAffected,
	}, nil
}

// profileUpdates 既存の値と異なる項目だけを返す。extrasは既存のものにマージする
func profileUpdates(existing models.User, profile models.UserProfile) map[string]interface{} {
	updates := map[string]interface{}{}
	columns, extras := profile.Split()
	current := existing.ProfileColumns()
	for k, v := range columns {
		if current[k] != v {
			updates[k] = v
		}
	}

	merged := datatypes.JSONMap{}
	for k, v := range existing.Extras {
		merged[k] = v
	}
	changed := false
	for k, v := range extras {
		if old, ok := merged[k]; !ok || !reflect.DeepEqual(old, v) {
			merged[k] = v
			changed = true
		}
	}
	if changed {
		updates["extras"] = merged
	}
	return updates
}
