package controllers

import (
	"net/http"
	"strconv"

	"mingo-hotel-api/config"
	"mingo-hotel-api/models"
	"mingo-hotel-api/utils"

	"github.com/gin-gonic/gin"
)

// Index lists rooms with category and features, filterable by type,
// category and a name search.
func GetRooms(c *gin.Context) {
	query := config.DB.Model(&models.Room{}).
		Preload("RoomCategory").
		Preload("RoomFeatures")

	if roomType := c.Query("room_type"); roomType != "" {
		query = query.Where("room_type = ?", roomType)
	}
	if raw := c.Query("room_category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			query = query.Where("room_category_id = ?", id)
		}
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var rooms []models.Room
	if err := query.Order("created_at desc").Find(&rooms).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func GetRoomByID(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var room models.Room
	err := config.DB.
		Preload("RoomCategory").
		Preload("RoomFeatures").
		First(&room, id).Error
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

type roomPayload struct {
	Name             string  `json:"name" binding:"required"`
	Description      string  `json:"description"`
	PhotoURL         string  `json:"photo_url"`
	RoomType         string  `json:"room_type"`
	RoomCategoryID   *uint   `json:"room_category_id"`
	Status           string  `json:"status"`
	Price            float64 `json:"price"`
	Stars            int     `json:"stars"`
	Capacity         int     `json:"capacity"`
	NumberOfAdults   int     `json:"number_of_adults"`
	NumberOfChildren int     `json:"number_of_children"`
}

func CreateRoom(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	room := models.Room{
		Name:             payload.Name,
		Description:      payload.Description,
		PhotoURL:         payload.PhotoURL,
		RoomType:         payload.RoomType,
		RoomCategoryID:   payload.RoomCategoryID,
		Status:           payload.Status,
		Price:            payload.Price,
		Stars:            payload.Stars,
		Capacity:         payload.Capacity,
		NumberOfAdults:   payload.NumberOfAdults,
		NumberOfChildren: payload.NumberOfChildren,
	}
	if user := actorFromContext(c); user.ID != 0 {
		id := user.ID
		room.CreatedBy = &id
		room.UpdatedBy = &id
	}

	if err := config.DB.Create(&room).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create room")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func UpdateRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The booked flag is owned by the booking lifecycle, not the room CRUD.
	delete(payload, "booked")
	delete(payload, "id")
	delete(payload, "created_by")
	if user := actorFromContext(c); user.ID != 0 {
		payload["updated_by"] = user.ID
	}

	if err := config.DB.Model(&room).Updates(payload).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update room")
		return
	}

	config.DB.Preload("RoomCategory").Preload("RoomFeatures").First(&room, id)
	utils.JSONSuccess(c, http.StatusOK, room)
}

func DeleteRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}

	var activeBookings int64
	config.DB.Model(&models.RoomBooking{}).
		Where("room_id = ? AND status != ?", room.ID, models.BookingStatusRejected).
		Count(&activeBookings)
	if activeBookings > 0 {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Cannot delete a room with active bookings")
		return
	}

	if err := config.DB.Delete(&room).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room deleted successfully"})
}

// BulkDestroyRooms removes a set of rooms; rejected outright if any of
// them still has an active booking.
func BulkDestroyRooms(c *gin.Context) {
	ids, ok := parseItemsToDelete(c)
	if !ok {
		return
	}

	var withBookings int64
	config.DB.Model(&models.RoomBooking{}).
		Where("room_id IN ? AND status != ?", ids, models.BookingStatusRejected).
		Count(&withBookings)
	if withBookings > 0 {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Cannot delete rooms that still have active bookings")
		return
	}

	if err := config.DB.Where("id IN ?", ids).Delete(&models.Room{}).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Rooms deleted successfully", "deleted_ids": ids})
}

// GetStatisticsCards powers the admin dashboard cards.
func GetStatisticsCards(c *gin.Context) {
	var totalRooms, bookedRooms, totalBookings, pendingBookings, acceptedBookings, totalUsers int64

	config.DB.Model(&models.Room{}).Count(&totalRooms)
	config.DB.Model(&models.Room{}).Where("booked = ?", true).Count(&bookedRooms)
	config.DB.Model(&models.RoomBooking{}).Count(&totalBookings)
	config.DB.Model(&models.RoomBooking{}).Where("status = ?", models.BookingStatusNew).Count(&pendingBookings)
	config.DB.Model(&models.RoomBooking{}).Where("status = ?", models.BookingStatusAccepted).Count(&acceptedBookings)
	config.DB.Model(&models.User{}).Count(&totalUsers)

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"total_rooms":       totalRooms,
		"booked_rooms":      bookedRooms,
		"total_bookings":    totalBookings,
		"pending_bookings":  pendingBookings,
		"accepted_bookings": acceptedBookings,
		"total_users":       totalUsers,
	})
}
