package controllers

import (
	"gin-manufacturer/constants"
	"gin-manufacturer/dto"
	"gin-manufacturer/middlewares"
	"gin-manufacturer/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IReviewController interface {
	FindLatest(ctx *gin.Context)
	Create(ctx *gin.Context)
}

type ReviewController struct {
	service services.IReviewService
}

func NewReviewController(service services.IReviewService) IReviewController {
	return &ReviewController{service: service}
}

func (c *ReviewController) FindLatest(ctx *gin.Context) {
	reviews, err := c.service.FindLatest(ctx.Request.Context())
	if err != nil {
		handleError(ctx, "Find reviews", err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

func (c *ReviewController) Create(ctx *gin.Context) {
	email, ok := middlewares.AuthenticatedEmail(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": constants.MsgUnauthorized})
		return
	}
	var input dto.CreateReviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.service.Create(ctx.Request.Context(), email, input)
	if err != nil {
		handleError(ctx, "Create review", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
