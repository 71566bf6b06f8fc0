package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dc-atlas-api-server/internal/auth"
	"dc-atlas-api-server/internal/models"
	"dc-atlas-api-server/internal/session"
	"dc-atlas-api-server/internal/store"
)

type AuthHandler struct {
	Users    *store.UserStore
	Sessions *session.Mirror

	// mu serializes login/register/forgot-password. Register is a
	// check-then-insert against the user store, and the session mirror
	// must not interleave writes from overlapping requests.
	mu sync.Mutex
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
	Country  string `json:"country" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	user, err := h.Users.GetByEmail(req.Email)
	if err != nil || !auth.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid email or password"})
		return
	}

	now := time.Now().UTC()
	if err := h.Users.TouchLogin(user.ID, now); err == nil {
		user.LastLogin = &now
	}
	if err := h.Sessions.Save(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to persist session"})
		return
	}

	token, err := auth.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": user})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, err := h.Users.GetByEmail(req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "User already exists"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create account"})
		return
	}

	now := time.Now().UTC()
	user := models.User{
		ID:        uuid.New().String(),
		Email:     req.Email,
		Name:      req.Name,
		Location:  req.Location,
		Country:   req.Country,
		Role:      models.RoleUser,
		Password:  hash,
		CreatedAt: now,
		LastLogin: &now,
	}
	if err := h.Users.Create(user); err != nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "User already exists"})
		return
	}
	if err := h.Sessions.Save(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to persist session"})
		return
	}

	token, err := auth.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "token": token, "user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.Sessions.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

// ForgotPassword acknowledges a reset request for a known email. No mail is
// actually sent; the identity provider here is a stand-in for a real backend.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, err := h.Users.GetByEmail(req.Email); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Email not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset email sent"})
}
