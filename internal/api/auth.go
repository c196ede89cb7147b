package api

import (
	"errors"
	"net/http"
	"strings"

	"sportsbook_api/internal/config"
	"sportsbook_api/internal/domain"
	"sportsbook_api/internal/store"
	"sportsbook_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Request and Response structs
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`    // Username must be provided
	Password string `json:"password" binding:"required"`    // Password must be provided
	Email    string `json:"email" binding:"required,email"` // Contact email
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserView is the profile slice returned on login.
type UserView struct {
	Username string  `json:"username"`
	Wallet   float64 `json:"wallet"`
	Role     string  `json:"role"`
}

// Response struct for authentication
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// isValidPassword checks if the password length is between 8 and 64 characters
func isValidPassword(password string) bool {
	return len(password) >= 8 && len(password) <= 64
}

// RegisterHandler creates a new account with a hashed password and the
// default wallet balance. Registration does not log the user in.
func RegisterHandler(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if !isValidPassword(req.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be 8-64 characters"})
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user := domain.User{
			Username: strings.ToLower(req.Username),
			Password: string(hash),
			Email:    req.Email,
			Role:     domain.RoleUser,
			Wallet:   domain.DefaultWallet,
		}
		if err := users.CreateUser(c.Request.Context(), &user); err != nil {
			if errors.Is(err, store.ErrUsernameTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"username": user.Username,
				"error":    err.Error(),
			}).Error("Registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,
			"username": user.Username,
		}).Info("User registered")
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	}
}

// LoginHandler authenticates a user and returns a bearer token plus a
// view of the profile.
func LoginHandler(users store.UserStore, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := users.GetUserByUsername(c.Request.Context(), strings.ToLower(req.Username))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		token, err := utils.GenerateJWT(user.ID, cfg.JWTSecret, cfg.TokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, AuthResponse{
			Token: token,
			User: UserView{
				Username: user.Username,
				Wallet:   user.Wallet,
				Role:     user.Role,
			},
		})
	}
}
