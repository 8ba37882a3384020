package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
)

// MenuController handles HTTP requests related to menus and categories
type MenuController interface {
	// ListMenus retrieves one page of menus
	ListMenus(c *gin.Context)
	// CreateMenu creates a new menu
	CreateMenu(c *gin.Context)
	// ListCategories retrieves one page of categories
	ListCategories(c *gin.Context)
	// CreateCategory creates a new category
	CreateCategory(c *gin.Context)
}

type menuController struct {
	service services.MenuService
	paging  Paging
}

// NewMenuController creates a new instance of MenuController
func NewMenuController(service services.MenuService, paging Paging) MenuController {
	return &menuController{service: service, paging: paging}
}

type createMenuRequest struct {
	Name string `json:"name"`
}

type createCategoryRequest struct {
	Name   string `json:"name"`
	MenuID *uint  `json:"menuId"`
}

// ListMenus godoc
// @Summary List menus
// @Description Get one page of menus in insertion order
// @Tags menus
// @Produce json
// @Param pageSize query int false "Page size"
// @Param pageNo query int false "Page number, starting at 1"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /menus [get]
func (c *menuController) ListMenus(ctx *gin.Context) {
	params, ok := pageParams(ctx, c.paging)
	if !ok {
		return
	}
	menus, meta, err := c.service.ListMenus(ctx.Request.Context(), params)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"menus": menus, "meta": meta})
}

// CreateMenu godoc
// @Summary Create a menu
// @Description Create a new menu with a unique name
// @Tags menus
// @Accept json
// @Produce json
// @Param menu body createMenuRequest true "Menu"
// @Success 201 {object} models.Menu
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /menus [post]
func (c *menuController) CreateMenu(ctx *gin.Context) {
	var req createMenuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	menu, err := c.service.CreateMenu(ctx.Request.Context(), models.Menu{Name: req.Name})
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, menu)
}

// ListCategories godoc
// @Summary List categories
// @Description Get one page of product categories in insertion order
// @Tags products
// @Produce json
// @Param pageSize query int false "Page size"
// @Param pageNo query int false "Page number, starting at 1"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Router /products/category [get]
func (c *menuController) ListCategories(ctx *gin.Context) {
	params, ok := pageParams(ctx, c.paging)
	if !ok {
		return
	}
	categories, meta, err := c.service.ListCategories(ctx.Request.Context(), params)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": categories, "meta": meta})
}

// CreateCategory godoc
// @Summary Create a category
// @Description Create a category attached to an existing menu
// @Tags products
// @Accept json
// @Produce json
// @Param category body createCategoryRequest true "Category"
// @Success 201 {object} models.Category
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /products/category [post]
func (c *menuController) CreateCategory(ctx *gin.Context) {
	var req createCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	category, err := c.service.CreateCategory(ctx.Request.Context(), models.Category{Name: req.Name, MenuID: req.MenuID})
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}
