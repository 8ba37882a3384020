package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/pagination"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/schema"
	"github.com/gin-gonic/gin"
)

// Paging holds the paging defaults applied to list endpoints
type Paging struct {
	Default     pagination.Params
	MaxPageSize int
}

// respondWithError maps persistence errors onto API error responses
func respondWithError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)

	var (
		validationErr *schema.ValidationError
		conflictErr   *schema.ConflictError
		referenceErr  *schema.ReferenceError
		notFoundErr   *schema.NotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, validationErr.Error(), map[string]interface{}{
			"table": validationErr.Table,
			"field": validationErr.Field,
		}))
	case errors.As(err, &conflictErr):
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrConflict, conflictErr.Error(), map[string]interface{}{
			"table": conflictErr.Table,
			"field": conflictErr.Field,
		}))
	case errors.As(err, &referenceErr):
		ctx.JSON(http.StatusUnprocessableEntity, models.NewAPIError(models.ErrReferenceNotFound, referenceErr.Error(), map[string]interface{}{
			"table":      referenceErr.Table,
			"field":      referenceErr.Field,
			"references": referenceErr.References,
			"id":         referenceErr.ID,
		}))
	case errors.As(err, &notFoundErr):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, notFoundErr.Error(), map[string]interface{}{
			"table": notFoundErr.Table,
			"id":    notFoundErr.ID,
		}))
	default:
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error"))
	}
}

func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, message))
}

// pathID reads a positive integer identifier from the named path parameter
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		badRequest(ctx, "Invalid "+name+" format")
		return 0, false
	}
	return uint(id), true
}

// pageParams binds pageSize and pageNo, falling back to the configured defaults
func pageParams(ctx *gin.Context, paging Paging) (pagination.Params, bool) {
	params := paging.Default
	if err := ctx.ShouldBindQuery(&params); err != nil {
		badRequest(ctx, "pageSize and pageNo must be integers")
		return pagination.Params{}, false
	}
	return params.Clamp(paging.MaxPageSize), true
}
