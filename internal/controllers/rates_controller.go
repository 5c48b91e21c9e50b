package controllers

import (
	"errors"
	"net/http"

	"github.com/aurumtrade/aurum-api/internal/rates"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RatesController serves the live gold-rate widget.
type RatesController struct {
	service *rates.Service
}

// NewRatesController creates a new instance of RatesController
func NewRatesController(service *rates.Service) *RatesController {
	return &RatesController{service: service}
}

// GetGoldRate godoc
// @Summary Get the current gold spot rate
// @Description Spot price converted to the requested unit, cached upstream
// @Tags rates
// @Produce json
// @Param unit query string false "Weight unit: ounce, gram, tola, kilogram" default(gram)
// @Success 200 {object} rates.Rate
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/public/rates/gold [get]
func (rc *RatesController) GetGoldRate(c *gin.Context) {
	unit := rates.Unit(c.DefaultQuery("unit", string(rates.UnitGram)))

	rate, err := rc.service.GoldRate(c.Request.Context(), unit)
	if err != nil {
		if errors.Is(err, rates.ErrUnknownUnit) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Gold rate lookup failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch gold rate"})
		return
	}
	c.JSON(http.StatusOK, rate)
}
