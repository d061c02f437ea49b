package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentalbilling/internal/observability"
	"rentalbilling/internal/service"
	"rentalbilling/pkg/pagination"
	"rentalbilling/pkg/response"
)

// DocumentHandler serves issued bills and estimates outside of their event.
type DocumentHandler struct {
	billService     service.BillService
	estimateService service.EstimateService
}

func NewDocumentHandler(billService service.BillService, estimateService service.EstimateService) *DocumentHandler {
	return &DocumentHandler{billService: billService, estimateService: estimateService}
}

func (h *DocumentHandler) RegisterRoutes(router *gin.RouterGroup) {
	bills := router.Group("/api/bills")
	{
		bills.GET("", h.ListBills)
		bills.GET("/:id", h.GetBill)
		bills.DELETE("/:id", h.DeleteBill)
	}
	router.DELETE("/api/estimates/:id", h.DeleteEstimate)
}

// ListBills returns issued bills, newest first.
// @Summary      List bills
// @Tags         bills
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=pagination.Page[service.DocumentResponse]}
// @Router       /api/bills [get]
func (h *DocumentHandler) ListBills(c *gin.Context) {
	params := pagination.Parse(c)

	bills, total, err := h.billService.ListBills(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, pagination.NewPage(bills, total, params)))
}

// GetBill
// @Summary      Get a bill
// @Tags         bills
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Bill ID"
// @Success      200  {object}  response.Response{data=service.DocumentResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/bills/{id} [get]
func (h *DocumentHandler) GetBill(c *gin.Context) {
	bill, err := h.billService.GetBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, bill))
}

// DeleteBill
// @Summary      Delete a bill
// @Tags         bills
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Bill ID"
// @Success      200  {object}  response.Response{data=object}
// @Failure      404  {object}  response.Response
// @Router       /api/bills/{id} [delete]
func (h *DocumentHandler) DeleteBill(c *gin.Context) {
	userID := c.GetString(observability.UserIDKey)
	if err := h.billService.DeleteBill(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Bill deleted successfully"}))
}

// DeleteEstimate
// @Summary      Delete an estimate
// @Tags         estimates
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  response.Response{data=object}
// @Failure      404  {object}  response.Response
// @Router       /api/estimates/{id} [delete]
func (h *DocumentHandler) DeleteEstimate(c *gin.Context) {
	userID := c.GetString(observability.UserIDKey)
	if err := h.estimateService.DeleteEstimate(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Estimate deleted successfully"}))
}
