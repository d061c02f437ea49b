package handler

import (
	"github.com/gin-gonic/gin"

	"rentalbilling/internal/service"
)

type TaxHandler struct {
	crud *CRUDHandler[service.TaxRequest, service.TaxResponse]
}

func NewTaxHandler(taxService service.TaxService) *TaxHandler {
	return &TaxHandler{crud: NewCRUDHandler[service.TaxRequest, service.TaxResponse](taxService)}
}

func (h *TaxHandler) RegisterRoutes(router *gin.RouterGroup) {
	taxes := router.Group("/api/taxes")
	{
		taxes.GET("", h.ListTaxes)
		taxes.GET("/:id", h.GetTax)
		taxes.POST("", h.CreateTax)
		taxes.PUT("/:id", h.UpdateTax)
		taxes.DELETE("/:id", h.DeleteTax)
	}
}

// ListTaxes returns every tax and tax group, default first.
// @Summary      List taxes
// @Tags         taxes
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.TaxResponse}
// @Router       /api/taxes [get]
func (h *TaxHandler) ListTaxes(c *gin.Context) { h.crud.List(c) }

// GetTax
// @Summary      Get a tax
// @Tags         taxes
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Tax ID"
// @Success      200  {object}  response.Response{data=service.TaxResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/taxes/{id} [get]
func (h *TaxHandler) GetTax(c *gin.Context) { h.crud.Get(c) }

// CreateTax creates a single tax or a group of component taxes.
// @Summary      Create a tax
// @Description  A group carries components and no own value. A rate value is a percentage, a fixed value an amount per day.
// @Tags         taxes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      service.TaxRequest  true  "Tax payload"
// @Success      201      {object}  response.Response{data=service.TaxResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/taxes [post]
func (h *TaxHandler) CreateTax(c *gin.Context) { h.crud.Create(c) }

// UpdateTax
// @Summary      Update a tax
// @Tags         taxes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Tax ID"
// @Param        request  body      service.TaxRequest  true  "Tax payload"
// @Success      200      {object}  response.Response{data=service.TaxResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/taxes/{id} [put]
func (h *TaxHandler) UpdateTax(c *gin.Context) { h.crud.Update(c) }

// DeleteTax refuses to delete the default tax or one still linked to events.
// @Summary      Delete a tax
// @Tags         taxes
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Tax ID"
// @Success      200  {object}  response.Response{data=object}
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /api/taxes/{id} [delete]
func (h *TaxHandler) DeleteTax(c *gin.Context) { h.crud.Delete(c) }
