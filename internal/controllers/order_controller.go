package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// OrderController handles HTTP requests related to orders
type OrderController interface {
	// ListOrders retrieves one page of orders with their details
	ListOrders(c *gin.Context)
	// CreateOrder creates an order together with its details
	CreateOrder(c *gin.Context)
	// AddItem adds an item to an existing order
	AddItem(c *gin.Context)
	// AssignItemOption links a product option to an order item
	AssignItemOption(c *gin.Context)
}

type orderController struct {
	service services.OrderService
	paging  Paging
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService, paging Paging) OrderController {
	return &orderController{service: service, paging: paging}
}

// createOrderRequest carries amounts computed by the caller; tax is a percentage
type createOrderRequest struct {
	Total    decimal.Decimal `json:"total" swaggertype:"string" example:"100.00"`
	Subtotal decimal.Decimal `json:"subtotal" swaggertype:"string" example:"90.00"`
	Tax      decimal.Decimal `json:"tax" swaggertype:"string" example:"10"`
}

type addItemRequest struct {
	ProductID *uint `json:"productId"`
	PriceID   *uint `json:"priceId"`
	Quantity  int   `json:"quantity"`
}

type assignItemOptionRequest struct {
	OptionID *uint `json:"optionId" binding:"required"`
	PriceID  *uint `json:"priceId"`
}

// ListOrders godoc
// @Summary List orders
// @Tags orders
// @Produce json
// @Param pageSize query int false "Page size"
// @Param pageNo query int false "Page number, starting at 1"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Router /orders [get]
func (c *orderController) ListOrders(ctx *gin.Context) {
	params, ok := pageParams(ctx, c.paging)
	if !ok {
		return
	}
	orders, meta, err := c.service.ListOrders(ctx.Request.Context(), params)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"orders": orders, "meta": meta})
}

// CreateOrder godoc
// @Summary Create an order
// @Description Create an order and its details from caller-computed amounts
// @Tags orders
// @Accept json
// @Produce json
// @Param order body createOrderRequest true "Order amounts"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.APIError
// @Router /orders/order [post]
func (c *orderController) CreateOrder(ctx *gin.Context) {
	var req createOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	order, err := c.service.CreateOrder(ctx.Request.Context(), models.OrderDetails{
		Total:    req.Total,
		Subtotal: req.Subtotal,
		Tax:      req.Tax,
	})
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, order)
}

// AddItem godoc
// @Summary Add an item to an order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param item body addItemRequest true "Order item"
// @Success 201 {object} models.OrderItem
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /orders/order/{id}/item [post]
func (c *orderController) AddItem(ctx *gin.Context) {
	orderID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req addItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	item, err := c.service.AddItem(ctx.Request.Context(), orderID, models.OrderItem{
		ProductID: req.ProductID,
		PriceID:   req.PriceID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

// AssignItemOption godoc
// @Summary Add an option to an order item
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order item ID"
// @Param option body assignItemOptionRequest true "Option reference"
// @Success 201 {object} models.OrderItemToOrderOptionLink
// @Failure 400 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /orders/item/{id}/option [patch]
func (c *orderController) AssignItemOption(ctx *gin.Context) {
	itemID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req assignItemOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "optionId is required")
		return
	}
	link, err := c.service.AssignItemOption(ctx.Request.Context(), itemID, *req.OptionID, req.PriceID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, link)
}
