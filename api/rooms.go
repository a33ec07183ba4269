package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Domenick1991/hotelconcierge/internal/domain"
	"github.com/Domenick1991/hotelconcierge/internal/service/rooms"
	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	service rooms.RoomUseCase
}

func NewRoomHandler(service rooms.RoomUseCase) *RoomHandler {
	return &RoomHandler{service: service}
}

func (h *RoomHandler) Register(router *gin.RouterGroup) {
	router.GET("/availability", h.availability)
	router.GET("/availability/:type", h.availabilityByType)
	router.GET("/price-range", h.priceRange)
	router.GET("/cheapest", h.cheapest)
	router.GET("/features", h.features)
	router.GET("/info", h.info)
}

func (h *RoomHandler) availability(c *gin.Context) {
	rows, err := h.service.Availability(c.Request.Context())
	respond(c, rows, err)
}

func (h *RoomHandler) availabilityByType(c *gin.Context) {
	roomType, err := domain.ParseRoomType(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room type"})
		return
	}
	rows, err := h.service.AvailabilityByType(c.Request.Context(), roomType)
	respond(c, rows, err)
}

func (h *RoomHandler) priceRange(c *gin.Context) {
	minPrice, err := strconv.ParseFloat(c.Query("min"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min"})
		return
	}
	maxPrice, err := strconv.ParseFloat(c.Query("max"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max"})
		return
	}
	rows, err := h.service.PriceRange(c.Request.Context(), minPrice, maxPrice)
	respond(c, rows, err)
}

func (h *RoomHandler) cheapest(c *gin.Context) {
	rows, err := h.service.Cheapest(c.Request.Context())
	respond(c, rows, err)
}

func (h *RoomHandler) features(c *gin.Context) {
	rows, err := h.service.Features(c.Request.Context())
	respond(c, rows, err)
}

func (h *RoomHandler) info(c *gin.Context) {
	rows, err := h.service.Info(c.Request.Context())
	respond(c, rows, err)
}

func respond(c *gin.Context, rows []domain.Row, err error) {
	if err != nil {
		var queryErr *domain.QueryError
		if errors.As(err, &queryErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
