package controllers

import (
	"gin-manufacturer/constants"
	"gin-manufacturer/dto"
	"gin-manufacturer/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IProductController interface {
	FindFeatured(ctx *gin.Context)
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateQuantity(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ProductController struct {
	service services.IProductService
}

func NewProductController(service services.IProductService) IProductController {
	return &ProductController{service: service}
}

func (c *ProductController) FindFeatured(ctx *gin.Context) {
	products, err := c.service.FindFeatured(ctx.Request.Context())
	if err != nil {
		handleError(ctx, "Find featured products", err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (c *ProductController) FindAll(ctx *gin.Context) {
	products, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		handleError(ctx, "Find products", err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (c *ProductController) FindById(ctx *gin.Context) {
	productID, ok := bindID(ctx)
	if !ok {
		return
	}

	product, err := c.service.FindById(ctx.Request.Context(), productID)
	if err != nil {
		handleError(ctx, "Find product", err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

func (c *ProductController) Create(ctx *gin.Context) {
	var input dto.CreateProductInput
	if !bindBody(ctx, &input, false) {
		return
	}
	if !bindBody(ctx, &input.Extras, false) {
		return
	}

	result, err := c.service.Create(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, "Create product", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *ProductController) UpdateQuantity(ctx *gin.Context) {
	productID, ok := bindID(ctx)
	if !ok {
		return
	}
	var input dto.UpdateQuantityInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	result, err := c.service.UpdateQuantity(ctx.Request.Context(), productID, *input.Quantity)
	if err != nil {
		handleError(ctx, "Update quantity", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *ProductController) Delete(ctx *gin.Context) {
	productID, ok := bindID(ctx)
	if !ok {
		return
	}

	result, err := c.service.Delete(ctx.Request.Context(), productID)
	if err != nil {
		handleError(ctx, "Delete product", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
