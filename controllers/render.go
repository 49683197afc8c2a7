package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"mingo-hotel-api/middleware"
	"mingo-hotel-api/services"
	"mingo-hotel-api/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service error taxonomy onto HTTP responses.
// Validation and conflict failures render field detail at 422, missing
// resources at 404; anything else is logged and returned as an opaque 500
// so internal detail never reaches clients.
func respondServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		utils.JSONValidation(c, vErr.Message, vErr.Errors)
		return
	}

	var nfErr *services.NotFoundError
	if errors.As(err, &nfErr) {
		utils.JSONNotFound(c, nfErr.Error())
		return
	}

	var cErr *services.ConflictError
	if errors.As(err, &cErr) {
		extra := gin.H{}
		if len(cErr.Errors) > 0 {
			extra["errors"] = cErr.Errors
		}
		if len(cErr.Conflicts) > 0 {
			extra["conflicts"] = cErr.Conflicts
		}
		if len(cErr.OffendingIDs) > 0 {
			extra["offending_ids"] = cErr.OffendingIDs
		}
		utils.JSONConflict(c, cErr.Code, cErr.Message, extra)
		return
	}

	log.Printf("[%s] internal error: %v", middleware.GetRequestID(c), err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Something went wrong. Please try again later.",
	})
}

func actorFromContext(c *gin.Context) services.Actor {
	user := middleware.CurrentUser(c)
	if user == nil {
		return services.Actor{}
	}
	return services.Actor{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.RoleName(),
	}
}

func requestMetaFromContext(c *gin.Context) services.RequestMeta {
	return services.RequestMeta{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		RequestID: middleware.GetRequestID(c),
	}
}

// parseDate accepts the date-only wire format first, then full RFC3339.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
}

// parseItemsToDelete reads the bulk-destroy wire shape
// {itemsToDelete: [{id}, ...]} shared by every bulk endpoint.
func parseItemsToDelete(c *gin.Context) ([]uint, bool) {
	var payload struct {
		ItemsToDelete []struct {
			ID uint `json:"id"`
		} `json:"itemsToDelete"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return nil, false
	}

	ids := make([]uint, 0, len(payload.ItemsToDelete))
	for _, item := range payload.ItemsToDelete {
		if item.ID != 0 {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "No valid IDs found"})
		return nil, false
	}
	return ids, true
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"message": fmt.Sprintf("Invalid %s parameter", name),
		})
		return 0, false
	}
	return uint(id), true
}
