package controllers

import (
	"net/http"

	"mingo-hotel-api/config"
	"mingo-hotel-api/models"
	"mingo-hotel-api/utils"

	"github.com/gin-gonic/gin"
)

func GetFaqs(c *gin.Context) {
	var faqs []models.Faq
	if err := config.DB.Order("created_at asc").Find(&faqs).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch FAQs")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, faqs)
}

type faqPayload struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

func CreateFaq(c *gin.Context) {
	var payload faqPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	faq := models.Faq{Question: payload.Question, Answer: payload.Answer}
	if err := config.DB.Create(&faq).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create FAQ")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, faq)
}

func UpdateFaq(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var faq models.Faq
	if err := config.DB.First(&faq, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "FAQ not found")
		return
	}

	var payload faqPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updates := map[string]any{"question": payload.Question, "answer": payload.Answer}
	if err := config.DB.Model(&faq).Updates(updates).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update FAQ")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, faq)
}

func DeleteFaq(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := config.DB.Delete(&models.Faq{}, id).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete FAQ")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "FAQ deleted successfully"})
}
