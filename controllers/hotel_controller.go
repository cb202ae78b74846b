package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"akkor-hotel-backend/models"
	"akkor-hotel-backend/services"
	"akkor-hotel-backend/utils"
)

type HotelController struct {
	hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) *HotelController {
	return &HotelController{hotels: hotels}
}

type HotelCreateRequest struct {
	Name        string   `json:"name" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	Description *string  `json:"description"`
	Rating      *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
	Breakfast   bool     `json:"breakfast"`
}

type HotelUpdateRequest struct {
	Name        *string         `json:"name"`
	Address     *string         `json:"address"`
	Description nullableString  `json:"description"`
	Rating      nullableFloat64 `json:"rating"`
	Breakfast   *bool           `json:"breakfast"`
}

type hotelListQuery struct {
	Name    string `form:"name"`
	Address string `form:"address"`
	Limit   int    `form:"limit"`
	Offset  int    `form:"offset"`
}

// List handles GET /hotels with optional name/address substring filters.
func (ctl *HotelController) List(c *gin.Context) {
	var q hotelListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	hotels, err := ctl.hotels.List(services.HotelFilter{
		Name:    q.Name,
		Address: q.Address,
		Limit:   q.Limit,
		Offset:  q.Offset,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// Get handles GET /hotels/:id.
func (ctl *HotelController) Get(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid hotel id")
		return
	}
	h, err := ctl.hotels.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if h == nil {
		utils.JSONError(c, http.StatusNotFound, "Hotel not found")
		return
	}
	c.JSON(http.StatusOK, h)
}

// Create handles POST /hotels. Admin only, enforced on the route.
func (ctl *HotelController) Create(c *gin.Context) {
	var req HotelCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	h := &models.Hotel{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Rating:      req.Rating,
		Breakfast:   req.Breakfast,
	}
	if err := ctl.hotels.Create(h); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusCreated, h)
}

// Update handles PATCH /hotels/:id.
func (ctl *HotelController) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid hotel id")
		return
	}
	var req HotelUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	// The nullable wrappers bypass binding validation, so the range
	// check runs here.
	if v := req.Rating.Value; req.Rating.Set && v != nil && (*v < 0 || *v > 5) {
		utils.JSONError(c, http.StatusUnprocessableEntity, "rating must be between 0 and 5")
		return
	}
	h, err := ctl.hotels.Update(id, services.HotelPatch{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description.NullableString,
		Rating:      req.Rating.NullableFloat64,
		Breakfast:   req.Breakfast,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if h == nil {
		utils.JSONError(c, http.StatusNotFound, "Hotel not found")
		return
	}
	c.JSON(http.StatusOK, h)
}

// Delete handles DELETE /hotels/:id and cascades to rooms and bookings.
func (ctl *HotelController) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid hotel id")
		return
	}
	deleted, err := ctl.hotels.Delete(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Hotel not found")
		return
	}
	c.Status(http.StatusNoContent)
}
