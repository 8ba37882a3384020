package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
)

type OfferController interface {
	ListOffers(c *gin.Context)
	CreateOffer(c *gin.Context)
}

type offerController struct {
	service services.OfferService
	paging  Paging
}

func NewOfferController(service services.OfferService, paging Paging) OfferController {
	return &offerController{service: service, paging: paging}
}

type createOfferRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
}

// ListOffers godoc
// @Summary List offers
// @Tags offers
// @Produce json
// @Param pageSize query int false "Page size"
// @Param pageNo query int false "Page number, starting at 1"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Router /offers [get]
func (c *offerController) ListOffers(ctx *gin.Context) {
	params, ok := pageParams(ctx, c.paging)
	if !ok {
		return
	}
	offers, meta, err := c.service.ListOffers(ctx.Request.Context(), params)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"offers": offers, "meta": meta})
}

// CreateOffer godoc
// @Summary Create an offer
// @Tags offers
// @Accept json
// @Produce json
// @Param offer body createOfferRequest true "Offer"
// @Success 201 {object} models.Offer
// @Failure 400 {object} models.APIError
// @Router /offers [post]
func (c *offerController) CreateOffer(ctx *gin.Context) {
	var req createOfferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	offer, err := c.service.CreateOffer(ctx.Request.Context(), models.Offer{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Image:    req.Image,
	})
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, offer)
}
