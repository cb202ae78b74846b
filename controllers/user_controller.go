package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"akkor-hotel-backend/auth"
	"akkor-hotel-backend/middleware"
	"akkor-hotel-backend/services"
	"akkor-hotel-backend/utils"
)

type UserController struct {
	users *services.UserService
	roles *services.UserRoleService
	jwter *auth.JWTer
}

func NewUserController(users *services.UserService, roles *services.UserRoleService, jwter *auth.JWTer) *UserController {
	return &UserController{users: users, roles: roles, jwter: jwter}
}

type UserCreateRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Pseudo   string `json:"pseudo" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserUpdateRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Pseudo   *string `json:"pseudo"`
	Password *string `json:"password"`
	IsAdmin  *bool   `json:"is_admin"`
}

type UserResponse struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	Pseudo  string `json:"pseudo"`
	IsAdmin bool   `json:"is_admin"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Create handles POST /users. Signup is public and never grants admin.
func (ctl *UserController) Create(c *gin.Context) {
	var req UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	u, err := ctl.users.Create(req.Email, req.Pseudo, req.Password)
	if err != nil {
		switch err {
		case services.ErrDuplicateUser:
			utils.JSONError(c, http.StatusBadRequest, "This email or pseudo is already taken.")
		case services.ErrInvalidPassword:
			utils.JSONError(c, http.StatusBadRequest, "Invalid password.")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, UserResponse{ID: u.ID, Email: u.Email, Pseudo: u.Pseudo})
}

// Login handles POST /users/login. It consumes form fields username and
// password and answers a single 401 for both unknown users and wrong
// passwords.
func (ctl *UserController) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	if username == "" || password == "" {
		utils.JSONError(c, http.StatusUnprocessableEntity, "username and password are required")
		return
	}

	user, err := ctl.users.GetByPseudo(username)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil || !auth.CheckPassword(password, user.Password) {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := ctl.jwter.Issue(user.Pseudo)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not issue token")
		return
	}
	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me handles GET /users/me.
func (ctl *UserController) Me(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)
	c.JSON(http.StatusOK, UserResponse{ID: p.ID, Email: p.Email, Pseudo: p.Pseudo, IsAdmin: p.IsAdmin})
}

// List handles GET /users and includes each user's admin status.
func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.users.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:id.
func (ctl *UserController) Get(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid user id")
		return
	}
	view, err := ctl.users.GetWithRole(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if view == nil {
		utils.JSONError(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, view)
}

// Update handles PATCH /users/:id. Profile fields may be patched by any
// authenticated caller; touching is_admin requires admin privileges and
// is rejected before anything is written.
func (ctl *UserController) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid user id")
		return
	}
	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	p, _ := middleware.GetPrincipal(c)
	if req.IsAdmin != nil && !p.IsAdmin {
		utils.JSONError(c, http.StatusForbidden, "Only admins can change admin status.")
		return
	}

	u, err := ctl.users.Update(id, services.UserPatch{
		Email:    req.Email,
		Pseudo:   req.Pseudo,
		Password: req.Password,
	})
	if err != nil {
		switch err {
		case services.ErrDuplicateUser:
			utils.JSONError(c, http.StatusBadRequest, "This email or pseudo is already taken.")
		case services.ErrInvalidPassword:
			utils.JSONError(c, http.StatusBadRequest, "Invalid password.")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	if u == nil {
		utils.JSONError(c, http.StatusNotFound, "User not found")
		return
	}

	if req.IsAdmin != nil {
		if *req.IsAdmin {
			if _, err := ctl.roles.Assign(u.ID, true); err != nil {
				utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
				return
			}
		} else {
			if _, err := ctl.roles.Delete(u.ID); err != nil {
				utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
				return
			}
		}
	}

	isAdmin, err := ctl.roles.IsAdmin(u.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, UserResponse{ID: u.ID, Email: u.Email, Pseudo: u.Pseudo, IsAdmin: isAdmin})
}

// Delete handles DELETE /users/:id. Accounts can only be deleted by their
// owner.
func (ctl *UserController) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid user id")
		return
	}

	target, err := ctl.users.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if target == nil {
		utils.JSONError(c, http.StatusNotFound, "User not found")
		return
	}

	p, _ := middleware.GetPrincipal(c)
	if target.ID != p.ID {
		utils.JSONError(c, http.StatusForbidden, "You cannot delete this account.")
		return
	}

	deleted, err := ctl.users.Delete(id)
	if err != nil || !deleted {
		utils.JSONError(c, http.StatusInternalServerError, "Error deleting user")
		return
	}
	c.Status(http.StatusNoContent)
}
