package controllers

import (
	"net/http"

	"mingo-hotel-api/config"
	"mingo-hotel-api/models"
	"mingo-hotel-api/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func GetUsers(c *gin.Context) {
	query := config.DB.Model(&models.User{}).Preload("Role")

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	var users []models.User
	if err := query.Order("created_at desc").Find(&users).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

func GetUserByID(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.Preload("Role").First(&user, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "User not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

type userPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	PhotoURL string `json:"photo_url"`
	RoleID   *uint  `json:"role_id"`
}

func CreateUser(c *gin.Context) {
	var payload userPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if payload.Password == "" {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Password is required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user := models.User{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: string(hash),
		PhotoURL: payload.PhotoURL,
		RoleID:   payload.RoleID,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Failed to create user, email may already exist")
		return
	}

	config.DB.Preload("Role").First(&user, user.ID)
	utils.JSONSuccess(c, http.StatusCreated, user)
}

func UpdateUser(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "User not found")
		return
	}

	var payload userPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updates := map[string]any{
		"name":      payload.Name,
		"email":     payload.Email,
		"photo_url": payload.PhotoURL,
	}
	if payload.RoleID != nil {
		updates["role_id"] = *payload.RoleID
	}
	if payload.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update user")
			return
		}
		updates["password"] = string(hash)
	}

	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	config.DB.Preload("Role").First(&user, id)
	utils.JSONSuccess(c, http.StatusOK, user)
}

func DeleteUser(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	actor := actorFromContext(c)
	if actor.ID == id {
		utils.JSONError(c, http.StatusUnprocessableEntity, "You cannot delete your own account")
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "User not found")
		return
	}

	if err := config.DB.Delete(&user).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// BulkDestroyUsers removes accounts by id list; the caller's own account
// is silently excluded so admins cannot lock themselves out.
func BulkDestroyUsers(c *gin.Context) {
	ids, ok := parseItemsToDelete(c)
	if !ok {
		return
	}

	actor := actorFromContext(c)
	filtered := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id != actor.ID {
			filtered = append(filtered, id)
		}
	}
	if len(filtered) == 0 {
		utils.JSONError(c, http.StatusUnprocessableEntity, "You cannot delete your own account")
		return
	}

	if err := config.DB.Where("id IN ?", filtered).Delete(&models.User{}).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete users")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Users deleted successfully", "deleted_ids": filtered})
}

func GetRoles(c *gin.Context) {
	var roles []models.Role
	if err := config.DB.Find(&roles).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch roles")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, roles)
}
