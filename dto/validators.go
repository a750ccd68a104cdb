package dto

import (
	"gin-manufacturer/models"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators ginのバリデータにカスタムタグを登録する（objectid）
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
				return models.IsValidID(fl.Field().String())
			})
		}
	})
}
