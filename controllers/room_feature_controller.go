package controllers

import (
	"net/http"

	"mingo-hotel-api/config"
	"mingo-hotel-api/models"
	"mingo-hotel-api/utils"

	"github.com/gin-gonic/gin"
)

func GetRoomFeatures(c *gin.Context) {
	query := config.DB.Model(&models.RoomFeature{})
	if raw := c.Query("room_id"); raw != "" {
		query = query.Where("room_id = ?", raw)
	}

	var features []models.RoomFeature
	if err := query.Find(&features).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch room features")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, features)
}

type roomFeaturePayload struct {
	RoomID  uint   `json:"room_id" binding:"required"`
	Feature string `json:"feature" binding:"required"`
}

func CreateRoomFeature(c *gin.Context) {
	var payload roomFeaturePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var room models.Room
	if err := config.DB.First(&room, payload.RoomID).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}

	feature := models.RoomFeature{RoomID: payload.RoomID, Feature: payload.Feature}
	if err := config.DB.Create(&feature).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create room feature")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, feature)
}

func UpdateRoomFeature(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var feature models.RoomFeature
	if err := config.DB.First(&feature, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "Room feature not found")
		return
	}

	var payload struct {
		Feature string `json:"feature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := config.DB.Model(&feature).Update("feature", payload.Feature).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update room feature")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, feature)
}

func DeleteRoomFeature(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := config.DB.Delete(&models.RoomFeature{}, id).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete room feature")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room feature deleted successfully"})
}
