package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dc-atlas-api-server/internal/auth"
	"dc-atlas-api-server/internal/models"
	"dc-atlas-api-server/internal/store"
)

// UserHandler is the admin-only account management surface.
type UserHandler struct {
	Users *store.UserStore
}

type UserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
	Country  string `json:"country" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=user admin"`
	Password string `json:"password"`
}

func (h *UserHandler) List(c *gin.Context) {
	users := h.Users.List()
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

func (h *UserHandler) Create(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		ID:        uuid.New().String(),
		Email:     req.Email,
		Name:      req.Name,
		Location:  req.Location,
		Country:   req.Country,
		Role:      req.Role,
		CreatedAt: time.Now().UTC(),
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user.Password = hash
	}

	if err := h.Users.Create(user); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Update replaces the account record at id. The stored password hash is kept
// unless the request carries a new password.
func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.Users.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user := models.User{
		ID:        id,
		Email:     req.Email,
		Name:      req.Name,
		Location:  req.Location,
		Country:   req.Country,
		Role:      req.Role,
		CreatedAt: existing.CreatedAt,
		LastLogin: existing.LastLogin,
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user.Password = hash
	}

	if err := h.Users.Replace(id, user); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Users.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
