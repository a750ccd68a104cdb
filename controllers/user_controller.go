package controllers

import (
	"gin-manufacturer/constants"
	"gin-manufacturer/dto"
	"gin-manufacturer/middlewares"
	"gin-manufacturer/models"
	"gin-manufacturer/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IUserController interface {
	FindAll(ctx *gin.Context)
	Upsert(ctx *gin.Context)
	MakeAdmin(ctx *gin.Context)
	MakeAdminLegacy(ctx *gin.Context)
	CheckAdmin(ctx *gin.Context)
}

type UserController struct {
	service services.IUserService
}

func NewUserController(service services.IUserService) IUserController {
	return &UserController{service: service}
}

func (c *UserController) FindAll(ctx *gin.Context) {
	users, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		handleError(ctx, "Find users", err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

func (c *UserController) Upsert(ctx *gin.Context) {
	email, ok := bindEmail(ctx)
	if !ok {
		return
	}
	var input dto.UpsertUserInput
	if !bindBody(ctx, &input, true) {
		return
	}
	body := map[string]interface{}{}
	if !bindBody(ctx, &body, true) {
		return
	}

	result, token, err := c.service.Upsert(ctx.Request.Context(), email, models.NewUserProfile(body))
	if err != nil {
		handleError(ctx, "Upsert user", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.UpsertUserResponse{Result: result, Token: token})
}

// MakeAdmin 管理者チェックはRequireRole(admin)側で済んでいる
func (c *UserController) MakeAdmin(ctx *gin.Context) {
	email, ok := bindEmail(ctx)
	if !ok {
		return
	}

	result, err := c.service.MakeAdmin(ctx.Request.Context(), email)
	if err != nil {
		handleError(ctx, "Make admin", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// MakeAdminLegacy 認証だけのルートに置き、リクエスト元のロールをハンドラー内で確認する
func (c *UserController) MakeAdminLegacy(ctx *gin.Context) {
	requester, ok := middlewares.AuthenticatedEmail(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": constants.MsgUnauthorized})
		return
	}
	email, ok := bindEmail(ctx)
	if !ok {
		return
	}

	isAdmin, err := c.service.IsAdmin(ctx.Request.Context(), requester)
	if err != nil {
		handleError(ctx, "Check requester role", err)
		return
	}
	if !isAdmin {
		ctx.JSON(http.StatusForbidden, gin.H{"message": constants.MsgForbidden})
		return
	}

	result, err := c.service.MakeAdmin(ctx.Request.Context(), email)
	if err != nil {
		handleError(ctx, "Make admin", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// CheckAdmin 存在しないユーザーは{admin: false}
func (c *UserController) CheckAdmin(ctx *gin.Context) {
	email, ok := bindEmail(ctx)
	if !ok {
		return
	}

	isAdmin, err := c.service.IsAdmin(ctx.Request.Context(), email)
	if err != nil {
		handleError(ctx, "Check admin", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.AdminStatusResponse{Admin: isAdmin})
}
