package controllers

import (
	"gin-manufacturer/dto"
	"gin-manufacturer/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IPaymentController interface {
	CreatePaymentIntent(ctx *gin.Context)
}

type PaymentController struct {
	service services.IPaymentService
}

func NewPaymentController(service services.IPaymentService) IPaymentController {
	return &PaymentController{service: service}
}

func (c *PaymentController) CreatePaymentIntent(ctx *gin.Context) {
	var input dto.CreatePaymentIntentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clientSecret, err := c.service.CreatePaymentIntent(ctx.Request.Context(), input.Price)
	if err != nil {
		handleError(ctx, "Create payment intent", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CreatePaymentIntentResponse{ClientSecret: clientSecret})
}
