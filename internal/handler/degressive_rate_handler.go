package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentalbilling/internal/service"
	"rentalbilling/pkg/response"
)

type DegressiveRateHandler struct {
	rateService service.DegressiveRateService
	crud        *CRUDHandler[service.DegressiveRateRequest, service.DegressiveRateResponse]
}

func NewDegressiveRateHandler(rateService service.DegressiveRateService) *DegressiveRateHandler {
	return &DegressiveRateHandler{
		rateService: rateService,
		crud:        NewCRUDHandler[service.DegressiveRateRequest, service.DegressiveRateResponse](rateService),
	}
}

func (h *DegressiveRateHandler) RegisterRoutes(router *gin.RouterGroup) {
	rates := router.Group("/api/degressive-rates")
	h.crud.mount(rates)
	rates.GET("/:id/preview", h.PreviewDegressiveRate)
}

// PreviewDegressiveRate computes the multiplier a curve yields for a number of days.
// @Summary      Preview a degressive rate
// @Description  Returns the degressive multiplier the curve applies for the given rental duration.
// @Tags         degressive-rates
// @Security     BearerAuth
// @Produce      json
// @Param        id    path      string  true  "Degressive rate ID"
// @Param        days  query     int     true  "Rental duration in days"
// @Success      200   {object}  response.Response{data=service.DegressiveRatePreview}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /api/degressive-rates/{id}/preview [get]
func (h *DegressiveRateHandler) PreviewDegressiveRate(c *gin.Context) {
	days, err := strconv.Atoi(c.Query("days"))
	if err != nil || days < 1 {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "days must be a positive integer"))
		return
	}

	preview, err := h.rateService.Preview(c.Request.Context(), c.Param("id"), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, preview))
}
