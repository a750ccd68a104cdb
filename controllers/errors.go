package controllers

import (
	"errors"
	"io"
	"gin-manufacturer/constants"
	"gin-manufacturer/dto"
	"gin-manufacturer/infra"
	"gin-manufacturer/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// handleError サービスのエラーをステータスコードに変換する。想定外のものはログに残して500
// 見つからない場合はエラーにせず200でnullを返す
func handleError(ctx *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusOK, nil)
	case errors.Is(err, services.ErrPaymentsDisabled):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		_ = ctx.Error(err)
		infra.LoggerFromContext(ctx.Request.Context()).Error(action+" error", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
	}
}

func bindID(ctx *gin.Context) (string, bool) {
	var param dto.IDParam
	if err := ctx.ShouldBindUri(&param); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return "", false
	}
	return param.ID, true
}

func bindEmail(ctx *gin.Context) (string, bool) {
	var param dto.EmailParam
	if err := ctx.ShouldBindUri(&param); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidEmail})
		return "", false
	}
	return param.Email, true
}

// bindBody 本文をobjに読み込む。本文は何度でも読めるようにコンテキストに保持される
// optionalなら空の本文は{}として扱う
func bindBody(ctx *gin.Context, obj interface{}, optional bool) bool {
	err := ctx.ShouldBindBodyWith(obj, binding.JSON)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	return false
}
