package controllers

import (
	"net/http"
	"strconv"
	"time"

	"mingo-hotel-api/config"
	"mingo-hotel-api/models"
	"mingo-hotel-api/services"
	"mingo-hotel-api/utils"

	"github.com/gin-gonic/gin"
)

// BookingController exposes the booking lifecycle over HTTP. All decisions
// live in the service; the controller parses wire shapes, injects the
// actor's row scope, and renders the error taxonomy.
type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{Service: service}
}

type bookingPayload struct {
	RoomID           *uint   `json:"room_id"`
	CheckIn          *string `json:"check_in"`
	CheckOut         *string `json:"check_out"`
	Status           *string `json:"status"`
	NumberOfAdults   *int    `json:"number_of_adults"`
	NumberOfChildren *int    `json:"number_of_children"`
	Description      *string `json:"description"`
}

func (p *bookingPayload) toInput() (services.BookingInput, *services.ValidationError) {
	in := services.BookingInput{
		RoomID:           p.RoomID,
		Status:           p.Status,
		NumberOfAdults:   p.NumberOfAdults,
		NumberOfChildren: p.NumberOfChildren,
		Description:      p.Description,
	}

	fieldErrs := services.FieldErrors{}
	if p.CheckIn != nil {
		t, err := parseDate(*p.CheckIn)
		if err != nil {
			fieldErrs["check_in"] = []string{"The check in date is not a valid date."}
		} else {
			in.CheckIn = &t
		}
	}
	if p.CheckOut != nil {
		t, err := parseDate(*p.CheckOut)
		if err != nil {
			fieldErrs["check_out"] = []string{"The check out date is not a valid date."}
		} else {
			in.CheckOut = &t
		}
	}
	if len(fieldErrs) > 0 {
		return in, &services.ValidationError{Message: "The given data was invalid", Errors: fieldErrs}
	}
	return in, nil
}

// Index lists bookings. Admin actors see every booking; client actors only
// their own. Supports room and date-range filters, free-text search, and
// optional pagination.
func (ctl *BookingController) Index(c *gin.Context) {
	actor := actorFromContext(c)

	params := services.ListParams{
		Search: c.Query("search"),
		Scope:  services.ScopeAll(),
	}
	if !actor.IsAdmin() {
		params.Scope = services.ScopeOwnedBy(actor.ID)
	}

	if raw := c.Query("room_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			roomID := uint(id)
			params.RoomID = &roomID
		}
	}
	if raw := c.Query("start_date"); raw != "" {
		if t, err := parseDate(raw); err == nil {
			params.StartDate = &t
		}
	}
	if raw := c.Query("end_date"); raw != "" {
		if t, err := parseDate(raw); err == nil {
			params.EndDate = &t
		}
	}
	if c.Query("paginate") == "true" {
		params.Paginate = true
		params.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		params.RowsPerPage, _ = strconv.Atoi(c.DefaultQuery("rowsPerPage", "10"))
	}

	result, err := ctl.Service.List(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if params.Paginate {
		utils.JSONSuccess(c, http.StatusOK, gin.H{
			"bookings":    result.Bookings,
			"total":       result.Total,
			"page":        result.Page,
			"rowsPerPage": result.RowsPerPage,
		})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result.Bookings)
}

// Show returns a single booking; client actors may only see their own.
func (ctl *BookingController) Show(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	booking, err := ctl.Service.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	actor := actorFromContext(c)
	if !actor.IsAdmin() && (booking.CreatedBy == nil || *booking.CreatedBy != actor.ID) {
		utils.JSONError(c, http.StatusForbidden, "You do not have permission to view this booking")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, booking)
}

// Create submits a booking request. The stored booking is always in "new"
// status; acceptance is a separate admin update.
func (ctl *BookingController) Create(c *gin.Context) {
	var payload bookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	in, vErr := payload.toInput()
	if vErr != nil {
		respondServiceError(c, vErr)
		return
	}

	booking, err := ctl.Service.Create(actorFromContext(c), requestMetaFromContext(c), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking request submitted successfully",
		"data":    booking,
	})
}

// Update merges the provided fields over the stored booking and re-runs the
// full guard chain. Admin only.
func (ctl *BookingController) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var payload bookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	in, vErr := payload.toInput()
	if vErr != nil {
		respondServiceError(c, vErr)
		return
	}

	booking, err := ctl.Service.Update(actorFromContext(c), requestMetaFromContext(c), id, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, booking)
}

// Destroy deletes one booking unless its stay has already started.
func (ctl *BookingController) Destroy(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	deleted, err := ctl.Service.Delete(actorFromContext(c), requestMetaFromContext(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message": "Booking deleted successfully",
		"deleted": deleted,
	})
}

type bulkDestroyPayload struct {
	ItemsToDelete []struct {
		ID uint `json:"id"`
	} `json:"itemsToDelete"`
}

// BulkDestroy deletes a set of bookings atomically; if any has started the
// whole call is rejected with the offending ids.
func (ctl *BookingController) BulkDestroy(c *gin.Context) {
	var payload bulkDestroyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	ids := make([]uint, 0, len(payload.ItemsToDelete))
	for _, item := range payload.ItemsToDelete {
		if item.ID != 0 {
			ids = append(ids, item.ID)
		}
	}

	deleted, err := ctl.Service.BulkDelete(actorFromContext(c), requestMetaFromContext(c), ids)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message": "Bookings deleted successfully",
		"deleted": deleted,
	})
}

type availabilityPayload struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
}

// CheckAvailability searches rooms that can host the party over the window.
// Public endpoint; an empty result list is a normal 200.
func (ctl *BookingController) CheckAvailability(c *gin.Context) {
	var payload availabilityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	fieldErrs := services.FieldErrors{}
	var checkIn, checkOut time.Time
	var err error
	if payload.CheckInDate == "" {
		fieldErrs["checkInDate"] = []string{"The check in date field is required."}
	} else if checkIn, err = parseDate(payload.CheckInDate); err != nil {
		fieldErrs["checkInDate"] = []string{"The check in date is not a valid date."}
	}
	if payload.CheckOutDate == "" {
		fieldErrs["checkOutDate"] = []string{"The check out date field is required."}
	} else if checkOut, err = parseDate(payload.CheckOutDate); err != nil {
		fieldErrs["checkOutDate"] = []string{"The check out date is not a valid date."}
	}
	if len(fieldErrs) > 0 {
		respondServiceError(c, &services.ValidationError{Message: "The given data was invalid", Errors: fieldErrs})
		return
	}

	result, err := ctl.Service.CheckAvailability(services.AvailabilityCriteria{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Adults:   payload.Adults,
		Children: payload.Children,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"available_rooms": result.AvailableRooms,
		"total":           result.Total,
		"search_criteria": result.SearchCriteria,
	})
}

// Calendar renders the day-by-day availability calendar for a room.
func (ctl *BookingController) Calendar(c *gin.Context) {
	roomID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	now := time.Now()
	start := now
	end := now.AddDate(0, 1, 0)
	if raw := c.Query("start_date"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			respondServiceError(c, &services.ValidationError{
				Message: "The given data was invalid",
				Errors:  services.FieldErrors{"start_date": {"The start date is not a valid date."}},
			})
			return
		}
		start = t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			respondServiceError(c, &services.ValidationError{
				Message: "The given data was invalid",
				Errors:  services.FieldErrors{"end_date": {"The end date is not a valid date."}},
			})
			return
		}
		end = t
	}
	if end.Before(start) {
		respondServiceError(c, &services.ValidationError{
			Message: "The given data was invalid",
			Errors:  services.FieldErrors{"end_date": {"The end date must be on or after the start date."}},
		})
		return
	}

	var room models.Room
	if err := config.DB.First(&room, roomID).Error; err != nil {
		respondServiceError(c, &services.NotFoundError{Resource: "room", ID: roomID})
		return
	}

	days, err := ctl.Service.Availability.RoomCalendar(roomID, start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"room_id":  roomID,
		"calendar": days,
	})
}
