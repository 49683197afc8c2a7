package controllers

import (
	"net/http"

	"mingo-hotel-api/config"
	"mingo-hotel-api/middleware"
	"mingo-hotel-api/models"
	"mingo-hotel-api/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthController issues and validates access tokens. Registration always
// assigns the Client role; admins are created through user management.
type AuthController struct {
	Cfg config.App
}

func NewAuthController(cfg config.App) *AuthController {
	return &AuthController{Cfg: cfg}
}

type registerPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (a *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", payload.Email).First(&existing).Error; err == nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "An account with this email already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	var clientRole models.Role
	if err := config.DB.Where("name = ?", models.RoleClient).First(&clientRole).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	user := models.User{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: string(hash),
		RoleID:   &clientRole.ID,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	user.Role = &clientRole
	token, err := utils.NewAccessToken(a.Cfg.JWTSecret, user.ID, user.RoleName(), a.Cfg.JWTExpireMin)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"user": user, "token": token})
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (a *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var user models.User
	if err := config.DB.Preload("Role").Where("email = ?", payload.Email).First(&user).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := utils.NewAccessToken(a.Cfg.JWTSecret, user.ID, user.RoleName(), a.Cfg.JWTExpireMin)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": user, "token": token})
}

// GetLoggedInUser confirms the bearer token still maps to a live account
// and returns it.
func (a *AuthController) GetLoggedInUser(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": user, "authenticated": true})
}
