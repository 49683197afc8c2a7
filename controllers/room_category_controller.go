package controllers

import (
	"net/http"

	"mingo-hotel-api/config"
	"mingo-hotel-api/models"
	"mingo-hotel-api/utils"

	"github.com/gin-gonic/gin"
)

func GetRoomCategories(c *gin.Context) {
	var categories []models.RoomCategory
	if err := config.DB.Order("name asc").Find(&categories).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch room categories")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, categories)
}

func GetRoomCategoryByID(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var category models.RoomCategory
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "Room category not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, category)
}

type roomCategoryPayload struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PhotoURL    string `json:"photo_url"`
}

func CreateRoomCategory(c *gin.Context) {
	var payload roomCategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	category := models.RoomCategory{
		Name:        payload.Name,
		Description: payload.Description,
		PhotoURL:    payload.PhotoURL,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Failed to create room category, name may already exist")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, category)
}

func UpdateRoomCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var category models.RoomCategory
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "Room category not found")
		return
	}

	var payload roomCategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updates := map[string]any{
		"name":        payload.Name,
		"description": payload.Description,
		"photo_url":   payload.PhotoURL,
	}
	if err := config.DB.Model(&category).Updates(updates).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update room category")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, category)
}

// BulkDestroyRoomCategories removes categories that no room references.
func BulkDestroyRoomCategories(c *gin.Context) {
	ids, ok := parseItemsToDelete(c)
	if !ok {
		return
	}

	var roomsInCategories int64
	config.DB.Model(&models.Room{}).Where("room_category_id IN ?", ids).Count(&roomsInCategories)
	if roomsInCategories > 0 {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Cannot delete categories that still have rooms")
		return
	}

	if err := config.DB.Where("id IN ?", ids).Delete(&models.RoomCategory{}).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete room categories")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room categories deleted successfully", "deleted_ids": ids})
}

func DeleteRoomCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var category models.RoomCategory
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "Room category not found")
		return
	}

	var roomsInCategory int64
	config.DB.Model(&models.Room{}).Where("room_category_id = ?", category.ID).Count(&roomsInCategory)
	if roomsInCategory > 0 {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Cannot delete a category that still has rooms")
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete room category")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room category deleted successfully"})
}
