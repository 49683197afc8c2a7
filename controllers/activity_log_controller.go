package controllers

import (
	"net/http"
	"strconv"

	"mingo-hotel-api/config"
	"mingo-hotel-api/models"
	"mingo-hotel-api/utils"

	"github.com/gin-gonic/gin"
)

// GetActivityLogs lists audit rows, newest first, filterable by log name
// and causer, with optional pagination.
func GetActivityLogs(c *gin.Context) {
	query := config.DB.Model(&models.ActivityLog{})

	if logName := c.Query("log_name"); logName != "" {
		query = query.Where("log_name = ?", logName)
	}
	if raw := c.Query("causer_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			query = query.Where("causer_id = ?", id)
		}
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("description LIKE ? OR causer_name LIKE ? OR causer_email LIKE ?", like, like, like)
	}

	query = query.Order("created_at desc")

	if c.Query("paginate") == "true" {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		rows, _ := strconv.Atoi(c.DefaultQuery("rowsPerPage", "20"))
		if page < 1 {
			page = 1
		}
		if rows < 1 {
			rows = 20
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch activity logs")
			return
		}

		var logs []models.ActivityLog
		if err := query.Offset((page - 1) * rows).Limit(rows).Find(&logs).Error; err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch activity logs")
			return
		}

		utils.JSONSuccess(c, http.StatusOK, gin.H{
			"logs":        logs,
			"total":       total,
			"page":        page,
			"rowsPerPage": rows,
		})
		return
	}

	var logs []models.ActivityLog
	if err := query.Find(&logs).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch activity logs")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, logs)
}

// BulkDestroyActivityLogs removes audit rows by id list.
func BulkDestroyActivityLogs(c *gin.Context) {
	ids, ok := parseItemsToDelete(c)
	if !ok {
		return
	}

	if err := config.DB.Where("id IN ?", ids).Delete(&models.ActivityLog{}).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete activity logs")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Activity logs deleted successfully", "deleted_ids": ids})
}
