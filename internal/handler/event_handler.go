package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"rentalbilling/internal/observability"
	"rentalbilling/internal/service"
	"rentalbilling/pkg/response"
)

// EventHandler serves the billing operations scoped to one event.
type EventHandler struct {
	quoteService    service.QuoteService
	billService     service.BillService
	estimateService service.EstimateService
	resyncService   service.ResyncService
	idempotent      gin.HandlerFunc
}

// NewEventHandler wires the event routes. idempotent guards the document creation
// routes and may be nil.
func NewEventHandler(
	quoteService service.QuoteService,
	billService service.BillService,
	estimateService service.EstimateService,
	resyncService service.ResyncService,
	idempotent gin.HandlerFunc,
) *EventHandler {
	if idempotent == nil {
		idempotent = func(c *gin.Context) { c.Next() }
	}
	return &EventHandler{
		quoteService:    quoteService,
		billService:     billService,
		estimateService: estimateService,
		resyncService:   resyncService,
		idempotent:      idempotent,
	}
}

func (h *EventHandler) RegisterRoutes(router *gin.RouterGroup) {
	events := router.Group("/api/events/:id")
	{
		events.GET("/quote", h.GetQuote)
		events.GET("/bill.pdf", h.GetBillPDF)
		events.POST("/bills", h.idempotent, h.CreateBill)
		events.GET("/estimates", h.ListEstimates)
		events.POST("/estimates", h.idempotent, h.CreateEstimate)
		events.PUT("/resync-taxes", h.ResyncTaxes)
		events.PUT("/resync-prices", h.ResyncPrices)
	}
}

// GetQuote computes the full billing breakdown of an event without persisting it.
// @Summary      Get event quote
// @Description  Computes totals, taxes and grouped materials for an event. The discount query overrides the event discount rate.
// @Tags         events
// @Security     BearerAuth
// @Produce      json
// @Param        id        path      string  true   "Event ID"
// @Param        discount  query     string  false  "Discount rate in percent, e.g. 33.33"
// @Success      200       {object}  response.Response{data=billing.TemplateData}
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /api/events/{id}/quote [get]
func (h *EventHandler) GetQuote(c *gin.Context) {
	data, err := h.quoteService.GetEventQuote(c.Request.Context(), c.Param("id"), c.Query("discount"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, data))
}

// GetBillPDF renders the latest bill of the event, or a quote when none was issued.
// @Summary      Download bill PDF
// @Tags         events
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        id        path      string  true   "Event ID"
// @Param        discount  query     string  false  "Discount rate in percent"
// @Success      200       {file}    file
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /api/events/{id}/bill.pdf [get]
func (h *EventHandler) GetBillPDF(c *gin.Context) {
	pdf, filename, err := h.billService.RenderBillPDF(c.Request.Context(), c.Param("id"), c.Query("discount"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// CreateBill freezes the current quote of an event into a numbered bill.
// @Summary      Create bill
// @Description  Allocates the next bill number of the year. Send X-Idempotency-Key to make retries safe.
// @Tags         events
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id                 path      string                         true   "Event ID"
// @Param        X-Idempotency-Key  header    string                         false  "Idempotency key"
// @Param        request            body      service.CreateDocumentRequest  false  "Optional discount override"
// @Success      201                {object}  response.Response{data=service.DocumentResponse}
// @Failure      400                {object}  response.Response
// @Failure      404                {object}  response.Response
// @Failure      409                {object}  response.Response
// @Router       /api/events/{id}/bills [post]
func (h *EventHandler) CreateBill(c *gin.Context) {
	req, ok := bindDocumentRequest(c)
	if !ok {
		return
	}

	userID := c.GetString(observability.UserIDKey)
	bill, err := h.billService.CreateBill(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, bill))
}

// CreateEstimate freezes the current quote of an event into an estimate.
// @Summary      Create estimate
// @Tags         events
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id                 path      string                         true   "Event ID"
// @Param        X-Idempotency-Key  header    string                         false  "Idempotency key"
// @Param        request            body      service.CreateDocumentRequest  false  "Optional discount override"
// @Success      201                {object}  response.Response{data=service.DocumentResponse}
// @Failure      400                {object}  response.Response
// @Failure      404                {object}  response.Response
// @Router       /api/events/{id}/estimates [post]
func (h *EventHandler) CreateEstimate(c *gin.Context) {
	req, ok := bindDocumentRequest(c)
	if !ok {
		return
	}

	userID := c.GetString(observability.UserIDKey)
	estimate, err := h.estimateService.CreateEstimate(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, estimate))
}

// ListEstimates
// @Summary      List event estimates
// @Tags         events
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  response.Response{data=[]service.DocumentResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/events/{id}/estimates [get]
func (h *EventHandler) ListEstimates(c *gin.Context) {
	estimates, err := h.estimateService.ListEstimatesForEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, estimates))
}

// ResyncTaxes re-derives the taxes stored on an event from its linked or default tax.
// @Summary      Resynchronize event taxes
// @Tags         events
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  response.Response{data=service.ResyncResponse}
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /api/events/{id}/resync-taxes [put]
func (h *EventHandler) ResyncTaxes(c *gin.Context) {
	userID := c.GetString(observability.UserIDKey)
	result, err := h.resyncService.ResyncEventTaxes(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// ResyncPrices copies current catalog prices onto the materials booked for an event.
// @Summary      Resynchronize material prices
// @Tags         events
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  response.Response{data=service.ResyncResponse}
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /api/events/{id}/resync-prices [put]
func (h *EventHandler) ResyncPrices(c *gin.Context) {
	userID := c.GetString(observability.UserIDKey)
	result, err := h.resyncService.ResyncMaterialPrices(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// bindDocumentRequest accepts an empty body.
func bindDocumentRequest(c *gin.Context) (service.CreateDocumentRequest, bool) {
	var req service.CreateDocumentRequest
	if c.Request.ContentLength == 0 {
		return req, true
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return req, false
	}
	return req, true
}
