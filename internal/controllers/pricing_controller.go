package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PricingController handles HTTP requests related to prices
type PricingController interface {
	ListPrices(c *gin.Context)
	CreatePrice(c *gin.Context)
}

type pricingController struct {
	service services.PricingService
	paging  Paging
}

func NewPricingController(service services.PricingService, paging Paging) PricingController {
	return &pricingController{service: service, paging: paging}
}

type createPriceRequest struct {
	Price decimal.Decimal `json:"price" swaggertype:"string" example:"9.99"`
}

// ListPrices godoc
// @Summary List prices
// @Tags pricing
// @Produce json
// @Param pageSize query int false "Page size"
// @Param pageNo query int false "Page number, starting at 1"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Router /pricing [get]
func (c *pricingController) ListPrices(ctx *gin.Context) {
	params, ok := pageParams(ctx, c.paging)
	if !ok {
		return
	}
	prices, meta, err := c.service.ListPrices(ctx.Request.Context(), params)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"prices": prices, "meta": meta})
}

// CreatePrice godoc
// @Summary Create a price
// @Description Create a price that products, options and order items can reference
// @Tags pricing
// @Accept json
// @Produce json
// @Param price body createPriceRequest true "Price"
// @Success 201 {object} models.Pricing
// @Failure 400 {object} models.APIError
// @Router /pricing [post]
func (c *pricingController) CreatePrice(ctx *gin.Context) {
	var req createPriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	price, err := c.service.CreatePrice(ctx.Request.Context(), models.Pricing{Price: req.Price})
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, price)
}
