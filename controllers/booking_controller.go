package controllers

import (
	"gin-manufacturer/constants"
	"gin-manufacturer/dto"
	"gin-manufacturer/middlewares"
	"gin-manufacturer/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IBookingController interface {
	Create(ctx *gin.Context)
	FindAll(ctx *gin.Context)
	FindByEmail(ctx *gin.Context)
	FindById(ctx *gin.Context)
	MarkPaid(ctx *gin.Context)
	MarkDelivered(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type BookingController struct {
	service services.IBookingService
}

func NewBookingController(service services.IBookingService) IBookingController {
	return &BookingController{service: service}
}

// Create 予約の持ち主はトークンのemail
func (c *BookingController) Create(ctx *gin.Context) {
	email, ok := middlewares.AuthenticatedEmail(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": constants.MsgUnauthorized})
		return
	}
	var input dto.CreateBookingInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.service.Create(ctx.Request.Context(), email, input)
	if err != nil {
		handleError(ctx, "Create booking", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *BookingController) FindAll(ctx *gin.Context) {
	bookings, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		handleError(ctx, "Find bookings", err)
		return
	}
	ctx.JSON(http.StatusOK, bookings)
}

func (c *BookingController) FindByEmail(ctx *gin.Context) {
	var query dto.EmailQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidEmail})
		return
	}

	bookings, err := c.service.FindByEmail(ctx.Request.Context(), query.Email)
	if err != nil {
		handleError(ctx, "Find bookings by email", err)
		return
	}
	ctx.JSON(http.StatusOK, bookings)
}

func (c *BookingController) FindById(ctx *gin.Context) {
	bookingID, ok := bindID(ctx)
	if !ok {
		return
	}

	booking, err := c.service.FindById(ctx.Request.Context(), bookingID)
	if err != nil {
		handleError(ctx, "Find booking", err)
		return
	}
	ctx.JSON(http.StatusOK, booking)
}

func (c *BookingController) MarkPaid(ctx *gin.Context) {
	bookingID, ok := bindID(ctx)
	if !ok {
		return
	}
	var input dto.MarkPaidInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.service.MarkPaid(ctx.Request.Context(), bookingID, input)
	if err != nil {
		handleError(ctx, "Mark booking paid", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *BookingController) MarkDelivered(ctx *gin.Context) {
	bookingID, ok := bindID(ctx)
	if !ok {
		return
	}

	result, err := c.service.MarkDelivered(ctx.Request.Context(), bookingID)
	if err != nil {
		handleError(ctx, "Mark booking delivered", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *BookingController) Delete(ctx *gin.Context) {
	bookingID, ok := bindID(ctx)
	if !ok {
		return
	}

	result, err := c.service.Delete(ctx.Request.Context(), bookingID)
	if err != nil {
		handleError(ctx, "Delete booking", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
