package controllers

import (
	"net/http"

	"mingo-hotel-api/config"
	"mingo-hotel-api/models"
	"mingo-hotel-api/utils"

	"github.com/gin-gonic/gin"
)

func GetHeroSliders(c *gin.Context) {
	query := config.DB.Model(&models.HeroSlider{})
	if c.Query("active") == "true" {
		query = query.Where("active = ?", true)
	}

	var sliders []models.HeroSlider
	if err := query.Order("created_at desc").Find(&sliders).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch hero sliders")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, sliders)
}

type heroSliderPayload struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	PhotoURL    string `json:"photo_url"`
	Active      *bool  `json:"active"`
}

func CreateHeroSlider(c *gin.Context) {
	var payload heroSliderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	slider := models.HeroSlider{
		Title:       payload.Title,
		Description: payload.Description,
		PhotoURL:    payload.PhotoURL,
		Active:      true,
	}
	if payload.Active != nil {
		slider.Active = *payload.Active
	}

	if err := config.DB.Create(&slider).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create hero slider")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, slider)
}

func UpdateHeroSlider(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var slider models.HeroSlider
	if err := config.DB.First(&slider, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "Hero slider not found")
		return
	}

	var payload heroSliderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updates := map[string]any{
		"title":       payload.Title,
		"description": payload.Description,
		"photo_url":   payload.PhotoURL,
	}
	if payload.Active != nil {
		updates["active"] = *payload.Active
	}

	if err := config.DB.Model(&slider).Updates(updates).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update hero slider")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, slider)
}

func GetHeroSliderByID(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var slider models.HeroSlider
	if err := config.DB.First(&slider, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "Hero slider not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, slider)
}

func BulkDestroyHeroSliders(c *gin.Context) {
	ids, ok := parseItemsToDelete(c)
	if !ok {
		return
	}

	if err := config.DB.Where("id IN ?", ids).Delete(&models.HeroSlider{}).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete hero sliders")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Hero sliders deleted successfully", "deleted_ids": ids})
}

func DeleteHeroSlider(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := config.DB.Delete(&models.HeroSlider{}, id).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete hero slider")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Hero slider deleted successfully"})
}
