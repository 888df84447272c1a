package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/config"
	"github.com/BruksfildServices01/barbershop-api/internal/dto"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests / Responses ---------

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	dto.ClientView
	Token string `json:"token"`
}

// --------- Handlers ---------

// Login verifies credentials and returns the client representation with a
// bearer token. Absent or wrong credentials answer 401 without revealing
// which part failed.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		httperr.Write(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var client models.Client
	err := h.db.
		Preload("Appointments.Barber").
		Preload("Appointments.Service").
		Preload("Reviews.Barber").
		Preload("Reviews.Appointment").
		Where("email = ?", req.Email).
		First(&client).Error

	if err != nil || !models.CheckPassword(req.Password, client.PasswordHash) {
		httperr.Write(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.generateToken(&client)
	if err != nil {
		httperr.Write(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		ClientView: dto.NewClientView(&client),
		Token:      token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(client *models.Client) (string, error) {
	claims := jwt.MapClaims{
		"sub": client.ID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
