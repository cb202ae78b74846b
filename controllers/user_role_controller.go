package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"akkor-hotel-backend/services"
	"akkor-hotel-backend/utils"
)

type UserRoleController struct {
	roles *services.UserRoleService
	users *services.UserService
}

func NewUserRoleController(roles *services.UserRoleService, users *services.UserService) *UserRoleController {
	return &UserRoleController{roles: roles, users: users}
}

type UserRoleRequest struct {
	UserID  uint  `json:"user_id" binding:"required"`
	IsAdmin *bool `json:"is_admin" binding:"required"`
}

type UserRoleResponse struct {
	UserID  uint `json:"user_id"`
	IsAdmin bool `json:"is_admin"`
}

// Get handles GET /user-roles/:user_id. A user with no role row is
// reported as not admin.
func (ctl *UserRoleController) Get(c *gin.Context) {
	userID, ok := parseID(c.Param("user_id"))
	if !ok {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid user id")
		return
	}
	u, err := ctl.users.GetByID(userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if u == nil {
		utils.JSONError(c, http.StatusNotFound, "User not found")
		return
	}
	role, err := ctl.roles.GetByUser(userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := UserRoleResponse{UserID: userID}
	if role != nil {
		resp.IsAdmin = role.IsAdmin
	}
	c.JSON(http.StatusOK, resp)
}

// Assign handles POST /user-roles. Creates or replaces the target user's
// single role row. Admin only, enforced on the route.
func (ctl *UserRoleController) Assign(c *gin.Context) {
	var req UserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	u, err := ctl.users.GetByID(req.UserID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if u == nil {
		utils.JSONError(c, http.StatusNotFound, "User not found")
		return
	}
	role, err := ctl.roles.Assign(req.UserID, *req.IsAdmin)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusCreated, UserRoleResponse{UserID: role.UserID, IsAdmin: role.IsAdmin})
}

// Delete handles DELETE /user-roles/:user_id. Admin only, enforced on
// the route.
func (ctl *UserRoleController) Delete(c *gin.Context) {
	userID, ok := parseID(c.Param("user_id"))
	if !ok {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid user id")
		return
	}
	deleted, err := ctl.roles.Delete(userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "User role not found")
		return
	}
	c.Status(http.StatusNoContent)
}
