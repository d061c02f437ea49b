package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"rentalbilling/internal/observability"
	"rentalbilling/pkg/response"
)

// CRUDService is the shape shared by the pricing reference data services.
type CRUDService[Req any, Resp any] interface {
	List(ctx context.Context) ([]Resp, error)
	Get(ctx context.Context, id string) (Resp, error)
	Create(ctx context.Context, userID string, req Req) (Resp, error)
	Update(ctx context.Context, userID, id string, req Req) (Resp, error)
	Delete(ctx context.Context, userID, id string) error
}

// CRUDHandler serves list/get/create/update/delete for a CRUDService.
type CRUDHandler[Req any, Resp any] struct {
	service CRUDService[Req, Resp]
}

func NewCRUDHandler[Req any, Resp any](svc CRUDService[Req, Resp]) *CRUDHandler[Req, Resp] {
	return &CRUDHandler[Req, Resp]{service: svc}
}

func (h *CRUDHandler[Req, Resp]) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

func (h *CRUDHandler[Req, Resp]) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

func (h *CRUDHandler[Req, Resp]) Create(c *gin.Context) {
	var req Req
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}

	userID := c.GetString(observability.UserIDKey)
	item, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, item))
}

func (h *CRUDHandler[Req, Resp]) Update(c *gin.Context) {
	var req Req
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}

	userID := c.GetString(observability.UserIDKey)
	item, err := h.service.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

func (h *CRUDHandler[Req, Resp]) Delete(c *gin.Context) {
	userID := c.GetString(observability.UserIDKey)
	if err := h.service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Deleted successfully"}))
}

func (h *CRUDHandler[Req, Resp]) mount(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}
