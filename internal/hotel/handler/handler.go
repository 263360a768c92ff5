package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hotelhub/hotel-service/internal/hotel"
	"github.com/hotelhub/hotel-service/internal/hotel/service"
	"github.com/hotelhub/hotel-service/pkg/logger"
)

const (
	msgCreated       = "Hotel successfully added!"
	msgDeleted       = "Hotel deleted successfully"
	msgNotFound      = "Hotel not found"
	msgInvalid       = "Hotel validation failed"
	msgInvalidBody   = "Invalid request body"
	msgInternalError = "Internal server error"
)

// Handler serves the /api/hotels endpoints. It holds no state besides the
// service it was built with.
type Handler struct {
	svc service.Service
}

func New(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterHotelRoutes mounts the four hotel endpoints on r.
func RegisterHotelRoutes(r gin.IRouter, svc service.Service) {
	h := New(svc)
	g := r.Group("/api/hotels")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.DELETE("/:id", h.Delete)
}

// internalError logs the underlying cause and answers with a body that
// carries no driver detail.
func internalError(c *gin.Context, op string, err error) {
	_ = c.Error(err)
	logger.L().Error().Err(err).Str("op", op).Str("request_id", c.GetString("request_id")).Msg("hotel store failure")
	c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternalError})
}

// Create accepts { name, location, price, rooms }.
func (h *Handler) Create(c *gin.Context) {
	var req hotel.Fields
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidBody, "error": err.Error()})
		return
	}
	created, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		var verr *hotel.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalid, "errors": verr.Fields()})
			return
		}
		internalError(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msgCreated, "hotel": created})
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		internalError(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	found, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgNotFound})
			return
		}
		internalError(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgNotFound})
			return
		}
		internalError(c, "delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgDeleted})
}
