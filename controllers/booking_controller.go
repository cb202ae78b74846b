package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"akkor-hotel-backend/middleware"
	"akkor-hotel-backend/models"
	"akkor-hotel-backend/services"
	"akkor-hotel-backend/utils"
)

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

type BookingCreateRequest struct {
	RoomID    uint   `json:"room_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	NbrPeople int    `json:"nbr_people" binding:"required,gt=0"`
	Breakfast bool   `json:"breakfast"`
}

type BookingUpdateRequest struct {
	RoomID    *uint   `json:"room_id"`
	StartDate *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	NbrPeople *int    `json:"nbr_people" binding:"omitempty,gt=0"`
	Breakfast *bool   `json:"breakfast"`
}

type BookingResponse struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	RoomID    uint   `json:"room_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	NbrPeople int    `json:"nbr_people"`
	Breakfast bool   `json:"breakfast"`
}

func toBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		StartDate: formatDate(time.Time(b.StartDate)),
		EndDate:   formatDate(time.Time(b.EndDate)),
		NbrPeople: b.NbrPeople,
		Breakfast: b.Breakfast,
	}
}

func toBookingResponses(bookings []models.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	return out
}

// List handles GET /bookings. Admins see everything, everyone else only
// their own bookings.
func (ctl *BookingController) List(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)
	bookings, err := ctl.bookings.List(p.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// ListByUser handles GET /bookings/user/:user_id, restricted to the
// owner or an admin.
func (ctl *BookingController) ListByUser(c *gin.Context) {
	userID, ok := parseID(c.Param("user_id"))
	if !ok {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid user id")
		return
	}
	p, _ := middleware.GetPrincipal(c)
	if userID != p.ID && !p.IsAdmin {
		utils.JSONError(c, http.StatusForbidden, "Not authorized to view these bookings")
		return
	}
	bookings, err := ctl.bookings.ListByUser(userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// Get handles GET /bookings/:id, restricted to the owner or an admin.
func (ctl *BookingController) Get(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid booking id")
		return
	}
	b, err := ctl.bookings.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if b == nil {
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
		return
	}
	p, _ := middleware.GetPrincipal(c)
	if b.UserID != p.ID && !p.IsAdmin {
		utils.JSONError(c, http.StatusForbidden, "Not authorized to view this booking")
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

// Create handles POST /bookings. The booking is always owned by the
// caller and the referenced room must exist.
func (ctl *BookingController) Create(c *gin.Context) {
	var req BookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid start_date")
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid end_date")
		return
	}
	if end.Before(start) {
		utils.JSONError(c, http.StatusBadRequest, "end_date must not be before start_date")
		return
	}

	p, _ := middleware.GetPrincipal(c)
	b, err := ctl.bookings.Create(p.ID, req.RoomID, start, end, req.NbrPeople, req.Breakfast)
	if err != nil {
		if err == services.ErrRoomNotFound {
			utils.JSONError(c, http.StatusNotFound, "Room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusCreated, toBookingResponse(b))
}

// Update handles PATCH /bookings/:id, restricted to the owner or an
// admin.
func (ctl *BookingController) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid booking id")
		return
	}
	var req BookingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	b, err := ctl.bookings.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if b == nil {
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
		return
	}
	p, _ := middleware.GetPrincipal(c)
	if b.UserID != p.ID && !p.IsAdmin {
		utils.JSONError(c, http.StatusForbidden, "Not authorized to update this booking")
		return
	}

	patch := services.BookingPatch{
		RoomID:    req.RoomID,
		NbrPeople: req.NbrPeople,
		Breakfast: req.Breakfast,
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid start_date")
			return
		}
		patch.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid end_date")
			return
		}
		patch.EndDate = &end
	}

	updated, err := ctl.bookings.Update(id, patch)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if updated == nil {
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(updated))
}

// Delete handles DELETE /bookings/:id, restricted to the owner or an
// admin.
func (ctl *BookingController) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid booking id")
		return
	}
	b, err := ctl.bookings.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if b == nil {
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
		return
	}
	p, _ := middleware.GetPrincipal(c)
	if b.UserID != p.ID && !p.IsAdmin {
		utils.JSONError(c, http.StatusForbidden, "Not authorized to delete this booking")
		return
	}
	deleted, err := ctl.bookings.Delete(id)
	if err != nil || !deleted {
		utils.JSONError(c, http.StatusInternalServerError, "Error deleting booking")
		return
	}
	c.Status(http.StatusNoContent)
}
