package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ProductController handles HTTP requests related to products, tags and options
type ProductController interface {
	ListProducts(c *gin.Context)
	CreateProduct(c *gin.Context)
	// UpdateProduct applies a partial update to a product
	UpdateProduct(c *gin.Context)
	ListTags(c *gin.Context)
	CreateTag(c *gin.Context)
	ListOptions(c *gin.Context)
	CreateOption(c *gin.Context)
	// AssignTag links a tag to a product
	AssignTag(c *gin.Context)
	// AssignOption links an option to a product
	AssignOption(c *gin.Context)
}

type productController struct {
	service services.ProductService
	paging  Paging
}

// NewProductController creates a new instance of ProductController
func NewProductController(service services.ProductService, paging Paging) ProductController {
	return &productController{service: service, paging: paging}
}

type createProductRequest struct {
	Name        string `json:"name"`
	PriceID     *uint  `json:"priceId"`
	Discount    int    `json:"discount"`
	Calories    int    `json:"calories"`
	Description string `json:"description"`
	Image       string `json:"image"`
	CategoryID  *uint  `json:"categoryId"`
}

// updateProductRequest accepts the category under "category" and, for symmetry with
// creation, under "categoryId"
type updateProductRequest struct {
	Name        *string `json:"name"`
	PriceID     *uint   `json:"priceId"`
	Discount    *int    `json:"discount"`
	Calories    *int    `json:"calories"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Category    *uint   `json:"category"`
	CategoryID  *uint   `json:"categoryId"`
}

type createTagRequest struct {
	Name string `json:"name"`
}

type createOptionRequest struct {
	Name    string `json:"name"`
	PriceID *uint  `json:"priceId"`
}

type assignTagRequest struct {
	TagID *uint `json:"tagId" binding:"required"`
}

type assignOptionRequest struct {
	OptionID *uint `json:"optionId" binding:"required"`
}

// ListProducts godoc
// @Summary List products
// @Description Get one page of products in insertion order
// @Tags products
// @Produce json
// @Param pageSize query int false "Page size"
// @Param pageNo query int false "Page number, starting at 1"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Router /products [get]
func (c *productController) ListProducts(ctx *gin.Context) {
	params, ok := pageParams(ctx, c.paging)
	if !ok {
		return
	}
	products, meta, err := c.service.ListProducts(ctx.Request.Context(), params)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"products": products, "meta": meta})
}

// CreateProduct godoc
// @Summary Create a product
// @Description Create a product referencing an existing price and category
// @Tags products
// @Accept json
// @Produce json
// @Param product body createProductRequest true "Product"
// @Success 201 {object} models.Product
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /products [post]
func (c *productController) CreateProduct(ctx *gin.Context) {
	var req createProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	product, err := c.service.CreateProduct(ctx.Request.Context(), models.Product{
		Name:        req.Name,
		PriceID:     req.PriceID,
		Discount:    req.Discount,
		Calories:    req.Calories,
		Description: req.Description,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary Update a product
// @Description Update the given fields of a product, leaving the others untouched
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body updateProductRequest true "Fields to update"
// @Success 200 {object} models.Product
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /products/{id} [patch]
func (c *productController) UpdateProduct(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req updateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	category := req.Category
	if category == nil {
		category = req.CategoryID
	}
	product, err := c.service.UpdateProduct(ctx.Request.Context(), id, services.ProductPatch{
		Name:        req.Name,
		PriceID:     req.PriceID,
		Discount:    req.Discount,
		Calories:    req.Calories,
		Description: req.Description,
		Image:       req.Image,
		CategoryID:  category,
	})
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// ListTags godoc
// @Summary List product tags
// @Tags products
// @Produce json
// @Param pageSize query int false "Page size"
// @Param pageNo query int false "Page number, starting at 1"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Router /products/tag [get]
func (c *productController) ListTags(ctx *gin.Context) {
	params, ok := pageParams(ctx, c.paging)
	if !ok {
		return
	}
	tags, meta, err := c.service.ListTags(ctx.Request.Context(), params)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"tags": tags, "meta": meta})
}

// CreateTag godoc
// @Summary Create a product tag
// @Tags products
// @Accept json
// @Produce json
// @Param tag body createTagRequest true "Tag"
// @Success 201 {object} models.ProductTag
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /products/tag [post]
func (c *productController) CreateTag(ctx *gin.Context) {
	var req createTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	tag, err := c.service.CreateTag(ctx.Request.Context(), models.ProductTag{Name: req.Name})
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, tag)
}

// ListOptions godoc
// @Summary List product options
// @Tags products
// @Produce json
// @Param pageSize query int false "Page size"
// @Param pageNo query int false "Page number, starting at 1"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Router /products/option [get]
func (c *productController) ListOptions(ctx *gin.Context) {
	params, ok := pageParams(ctx, c.paging)
	if !ok {
		return
	}
	options, meta, err := c.service.ListOptions(ctx.Request.Context(), params)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"options": options, "meta": meta})
}

// CreateOption godoc
// @Summary Create a product option
// @Tags products
// @Accept json
// @Produce json
// @Param option body createOptionRequest true "Option"
// @Success 201 {object} models.ProductOption
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /products/option [post]
func (c *productController) CreateOption(ctx *gin.Context) {
	var req createOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	option, err := c.service.CreateOption(ctx.Request.Context(), models.ProductOption{Name: req.Name, PriceID: req.PriceID})
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, option)
}

// AssignTag godoc
// @Summary Tag a product
// @Description Link a tag to a product. Repeating the call creates another link.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param tag body assignTagRequest true "Tag reference"
// @Success 201 {object} models.ProductTagLink
// @Failure 400 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /products/{id}/tag [patch]
func (c *productController) AssignTag(ctx *gin.Context) {
	productID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req assignTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "tagId is required")
		return
	}
	link, err := c.service.AssignTag(ctx.Request.Context(), productID, *req.TagID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, link)
}

// AssignOption godoc
// @Summary Add an option to a product
// @Description Link an option to a product. Repeating the call creates another link.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param option body assignOptionRequest true "Option reference"
// @Success 201 {object} models.ProductOptionLink
// @Failure 400 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /products/{id}/option [patch]
func (c *productController) AssignOption(ctx *gin.Context) {
	productID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req assignOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "optionId is required")
		return
	}
	link, err := c.service.AssignOption(ctx.Request.Context(), productID, *req.OptionID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, link)
}
