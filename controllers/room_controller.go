package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"akkor-hotel-backend/models"
	"akkor-hotel-backend/services"
	"akkor-hotel-backend/utils"
)

type RoomController struct {
	rooms  *services.RoomService
	hotels *services.HotelService
}

func NewRoomController(rooms *services.RoomService, hotels *services.HotelService) *RoomController {
	return &RoomController{rooms: rooms, hotels: hotels}
}

type RoomCreateRequest struct {
	HotelID      uint    `json:"hotel_id" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	NumberOfBeds int     `json:"number_of_beds" binding:"required,gt=0"`
}

type RoomUpdateRequest struct {
	Price        *float64 `json:"price" binding:"omitempty,gt=0"`
	NumberOfBeds *int     `json:"number_of_beds" binding:"omitempty,gt=0"`
}

// ListByHotel handles GET /rooms/hotel/:hotel_id.
func (ctl *RoomController) ListByHotel(c *gin.Context) {
	hotelID, ok := parseID(c.Param("hotel_id"))
	if !ok {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid hotel id")
		return
	}
	h, err := ctl.hotels.GetByID(hotelID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if h == nil {
		utils.JSONError(c, http.StatusNotFound, "Hotel not found")
		return
	}
	rooms, err := ctl.rooms.ListByHotel(hotelID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// Get handles GET /rooms/:id.
func (ctl *RoomController) Get(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid room id")
		return
	}
	r, err := ctl.rooms.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if r == nil {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}
	c.JSON(http.StatusOK, r)
}

// Create handles POST /rooms. Admin only, enforced on the route. The
// parent hotel must exist.
func (ctl *RoomController) Create(c *gin.Context) {
	var req RoomCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	h, err := ctl.hotels.GetByID(req.HotelID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if h == nil {
		utils.JSONError(c, http.StatusNotFound, "Hotel not found")
		return
	}
	r := &models.Room{
		HotelID:      req.HotelID,
		Price:        req.Price,
		NumberOfBeds: req.NumberOfBeds,
	}
	if err := ctl.rooms.Create(r); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusCreated, r)
}

// Update handles PATCH /rooms/:id.
func (ctl *RoomController) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid room id")
		return
	}
	var req RoomUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	r, err := ctl.rooms.Update(id, services.RoomPatch{
		Price:        req.Price,
		NumberOfBeds: req.NumberOfBeds,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if r == nil {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}
	c.JSON(http.StatusOK, r)
}

// Delete handles DELETE /rooms/:id and cascades to the room's bookings.
func (ctl *RoomController) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid room id")
		return
	}
	deleted, err := ctl.rooms.Delete(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}
	c.Status(http.StatusNoContent)
}
