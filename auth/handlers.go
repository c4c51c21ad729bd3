package auth

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/stitchlink-api/models"
	"github.com/junaidrashid-git/stitchlink-api/store"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler starts a session. Credentials are only checked for presence;
// the role comes from the email address.
func LoginHandler(s *store.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := s.Login(req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		respondWithToken(c, user, secret, "Login successful")
	}
}

// SignupHandler starts a session for a new customer account.
func SignupHandler(s *store.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := s.Signup(req.Name, req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("📝 New customer signed up: %s", user.Email)
		respondWithToken(c, user, secret, "Signup successful")
	}
}

func LogoutHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.Logout()
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// MeHandler returns the signed-in user.
func MeHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := s.CurrentUser()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": store.ErrNotLoggedIn.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

func respondWithToken(c *gin.Context, user models.User, secret, message string) {
	token, err := IssueToken(user, secret, time.Now())
	if err != nil {
		log.Printf("❌ Failed to sign JWT: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"token":   token,
		"user":    user,
	})
}
