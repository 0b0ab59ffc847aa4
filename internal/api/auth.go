package api

import (
	"net/http" // HTTP status codes
	"time"     // Token issue time

	"adept_play/internal/auth"       // Credential checks
	"adept_play/internal/ledger"     // Account mutations
	"adept_play/internal/middleware" // Context accessors
	"adept_play/internal/query"      // Read views
	"adept_play/internal/utils"      // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// SignupRequest is the body of POST /user
type SignupRequest struct {
	Username string `json:"username" binding:"required"`       // Unique username
	Email    string `json:"email" binding:"required,email"`    // Unique email address
	Password string `json:"password" binding:"required,min=6"` // Plain secret, hashed before storage
}

// LoginRequest is the body of both login endpoints
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// ChangePasswordRequest is the body of PUT /me/password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`   // Secret in use
	NewPassword     string `json:"newPassword" binding:"required,min=6"` // Replacement secret
}

// SignupHandler creates a player account with the welcome bonus
func SignupHandler(engine *ledger.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		profile, err := engine.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": profile})
	}
}

// LoginHandler authenticates an account of the given role and returns a JWT token
func LoginHandler(gate *auth.Gate, role, jwtSecret string, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		profile, err := gate.Authenticate(c.Request.Context(), req.Username, req.Password, role)
		if err != nil {
			respondError(c, err)
			return
		}
		token, err := utils.GenerateJWT(profile.ID, profile.Role, jwtSecret, now()) // Generate JWT token
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": profile.ID,  // Account ID
				"error":   err.Error(), // Error message
			}).Error("Failed to generate token")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "user": profile})
	}
}

// MeHandler returns the caller's sanitized account
func MeHandler(q *query.Queries) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		profile, err := q.Account(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": profile})
	}
}

// ChangePasswordHandler replaces the caller's password after checking the current one
func ChangePasswordHandler(engine *ledger.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		var req ChangePasswordRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		err := engine.ChangePassword(c.Request.Context(), userID, middleware.Role(c), req.CurrentPassword, req.NewPassword)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
	}
}
