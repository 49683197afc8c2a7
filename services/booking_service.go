package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"mingo-hotel-api/models"
	"mingo-hotel-api/utils"

	"gorm.io/gorm"
)

// BookingService orchestrates the booking lifecycle: it runs the guard
// chain (duplicate-pending, booked fast-path, capacity, overlap), persists
// bookings and the room's denormalized booked flag in one transaction, and
// fans out best-effort notifications after commit.
type BookingService struct {
	DB           *gorm.DB
	Availability *AvailabilityEngine
	Locks        *RoomLocks
	Notifier     Notifier
	Audit        *ActivityLogger
}

func NewBookingService(db *gorm.DB, engine *AvailabilityEngine, locks *RoomLocks, notifier Notifier, audit *ActivityLogger) *BookingService {
	return &BookingService{
		DB:           db,
		Availability: engine,
		Locks:        locks,
		Notifier:     notifier,
		Audit:        audit,
	}
}

// BookingInput carries a create or update payload. Nil fields on update
// mean "keep the existing value".
type BookingInput struct {
	RoomID           *uint
	CheckIn          *time.Time
	CheckOut         *time.Time
	Status           *string
	NumberOfAdults   *int
	NumberOfChildren *int
	Description      *string
}

func fmtDate(t time.Time) string { return t.Format("2006-01-02") }

// isPastDay reports whether t falls on a day strictly before today.
// A check-in earlier today is still bookable.
func isPastDay(t time.Time, now time.Time) bool {
	return startOfDay(t).Before(startOfDay(now))
}

func validStatus(s string) bool {
	switch s {
	case models.BookingStatusNew, models.BookingStatusAccepted, models.BookingStatusRejected:
		return true
	}
	return false
}

func (s *BookingService) loadRoom(db *gorm.DB, roomID uint) (*models.Room, error) {
	var room models.Room
	if err := db.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "room", ID: roomID}
		}
		return nil, fmt.Errorf("db error loading room %d: %w", roomID, err)
	}
	return &room, nil
}

func (s *BookingService) reload(id uint) (*models.RoomBooking, error) {
	var booking models.RoomBooking
	err := s.DB.
		Preload("Room").
		Preload("CreatedByUser").
		Preload("UpdatedByUser").
		First(&booking, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to reload booking %d: %w", id, err)
	}
	return &booking, nil
}

// Get returns a booking with its room and user references, or NotFoundError.
func (s *BookingService) Get(id uint) (*models.RoomBooking, error) {
	var booking models.RoomBooking
	err := s.DB.
		Preload("Room").
		Preload("CreatedByUser").
		Preload("UpdatedByUser").
		First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "booking", ID: id}
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", id, err)
	}
	return &booking, nil
}

// ---------------------------
// Create
// ---------------------------

// Create validates and persists a new booking request. The booking is
// always stored in "new" status regardless of any supplied status; only an
// admin update can accept or reject it. All guards run under the room's
// mutex so concurrent requests for the same room serialize.
func (s *BookingService) Create(actor Actor, meta RequestMeta, in BookingInput) (*models.RoomBooking, error) {
	fieldErrs := FieldErrors{}
	if in.RoomID == nil || *in.RoomID == 0 {
		fieldErrs["room_id"] = []string{"The room id field is required."}
	}
	if in.CheckIn == nil {
		fieldErrs["check_in"] = []string{"The check in field is required."}
	}
	if in.CheckOut == nil {
		fieldErrs["check_out"] = []string{"The check out field is required."}
	}
	if in.NumberOfAdults == nil || *in.NumberOfAdults < 1 {
		fieldErrs["number_of_adults"] = []string{"At least one adult is required."}
	}
	if in.NumberOfChildren != nil && *in.NumberOfChildren < 0 {
		fieldErrs["number_of_children"] = []string{"The number of children may not be negative."}
	}
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Message: "The given data was invalid", Errors: fieldErrs}
	}

	checkIn, checkOut := *in.CheckIn, *in.CheckOut
	if checkOut.Before(checkIn) {
		return nil, &ValidationError{
			Message: "The given data was invalid",
			Errors:  FieldErrors{"check_out": {"The check out date must be on or after the check in date."}},
		}
	}

	children := 0
	if in.NumberOfChildren != nil {
		children = *in.NumberOfChildren
	}
	roomID := *in.RoomID

	unlock := s.Locks.Lock(roomID)
	defer unlock()

	room, err := s.loadRoom(s.DB, roomID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if isPastDay(checkIn, now) {
		return nil, &ConflictError{
			Code:    ConflictPastCheckIn,
			Message: "Invalid check-in date",
			Details: "Check-in date cannot be in the past.",
			Errors:  FieldErrors{"check_in": {"Check-in date cannot be in the past."}},
		}
	}

	if err := s.runBookingGuards(room, actor, checkIn, checkOut, *in.NumberOfAdults, children, 0, false); err != nil {
		return nil, err
	}

	description := ""
	if in.Description != nil {
		description = *in.Description
	}

	booking := models.RoomBooking{
		RoomID:           roomID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Status:           models.BookingStatusNew,
		NumberOfAdults:   *in.NumberOfAdults,
		NumberOfChildren: children,
		Description:      description,
	}
	if actor.ID != 0 {
		id := actor.ID
		booking.CreatedBy = &id
		booking.UpdatedBy = &id
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		s.Audit.RecordTx(tx, actor, meta, "room_booking_created",
			fmt.Sprintf("Room booking created for room #%d from %s to %s", roomID, fmtDate(checkIn), fmtDate(checkOut)),
			map[string]any{"booking_id": booking.ID, "room_id": roomID},
		)
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	created, err := s.reload(booking.ID)
	if err != nil {
		return nil, err
	}

	s.notifyAdmins(utils.TemplateAdminBookingNotification, created, actor, meta)

	return created, nil
}

// runBookingGuards executes the conflict guard chain shared by Create and
// Update: duplicate-pending, booked-flag fast path, capacity, then the
// authoritative overlap scan. sameRoomUpdate exempts the booked fast path,
// since a booking being edited on its own room is what set the flag.
func (s *BookingService) runBookingGuards(room *models.Room, actor Actor, checkIn, checkOut time.Time, adults, children int, excludeBookingID uint, sameRoomUpdate bool) error {
	pending, err := s.Availability.HasPendingForActor(s.DB, room.ID, actor.ID, excludeBookingID)
	if err != nil {
		return err
	}
	if pending {
		return &ConflictError{
			Code:    ConflictDuplicatePending,
			Message: "You already have a pending booking for this room.",
			Details: fmt.Sprintf("Duplicate pending booking detected for room %s.", room.Name),
			Errors:  FieldErrors{"room_id": {"You already have a pending booking for this room. Please wait for confirmation."}},
		}
	}

	if room.Booked && !sameRoomUpdate {
		return &ConflictError{
			Code:    ConflictRoomBooked,
			Message: "Room is not available",
			Details: fmt.Sprintf("Room %s is currently marked as booked.", room.Name),
			Errors:  FieldErrors{"room_id": {"This room is currently not available for booking."}},
		}
	}

	if capErr := s.Availability.Capacity.Check(room, adults, children); capErr != nil {
		return capErr
	}

	conflicts, err := s.Availability.FindConflicts(s.DB, room.ID, checkIn, checkOut, excludeBookingID)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		ranges := make([]DateRange, 0, len(conflicts))
		for i := range conflicts {
			ranges = append(ranges, DateRange{
				CheckIn:  fmtDate(conflicts[i].CheckIn),
				CheckOut: fmtDate(conflicts[i].CheckOut),
			})
		}
		return &ConflictError{
			Code:      ConflictDateOverlap,
			Message:   "Room is already booked for the selected dates",
			Details:   fmt.Sprintf("Room %s has overlapping bookings for the selected period.", room.Name),
			Conflicts: ranges,
			Errors:    FieldErrors{"dates": {"This room is already booked during the selected period. Please choose different dates."}},
		}
	}

	return nil
}

// ---------------------------
// Update
// ---------------------------

// Update merges the provided fields over the stored booking, re-runs the
// guard chain against the effective values (excluding the booking's own
// row from the overlap scan), and applies status side effects: a new ->
// accepted transition marks the room booked, any other transition clears
// the flag. Booking write and room-flag write commit atomically.
func (s *BookingService) Update(actor Actor, meta RequestMeta, id uint, in BookingInput) (*models.RoomBooking, error) {
	booking, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	oldStatus := booking.Status

	roomID := booking.RoomID
	if in.RoomID != nil && *in.RoomID != 0 {
		roomID = *in.RoomID
	}
	checkIn := booking.CheckIn
	if in.CheckIn != nil {
		checkIn = *in.CheckIn
	}
	checkOut := booking.CheckOut
	if in.CheckOut != nil {
		checkOut = *in.CheckOut
	}
	adults := booking.NumberOfAdults
	if in.NumberOfAdults != nil {
		adults = *in.NumberOfAdults
	}
	children := booking.NumberOfChildren
	if in.NumberOfChildren != nil {
		children = *in.NumberOfChildren
	}
	status := booking.Status
	if in.Status != nil {
		status = *in.Status
	}

	fieldErrs := FieldErrors{}
	if adults < 1 {
		fieldErrs["number_of_adults"] = []string{"At least one adult is required."}
	}
	if children < 0 {
		fieldErrs["number_of_children"] = []string{"The number of children may not be negative."}
	}
	if checkOut.Before(checkIn) {
		fieldErrs["check_out"] = []string{"The check out date must be on or after the check in date."}
	}
	if s.Availability.Statuses.UsesStatus() && !validStatus(status) {
		fieldErrs["status"] = []string{"The status must be one of new, accepted or rejected."}
	}
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Message: "The given data was invalid", Errors: fieldErrs}
	}

	unlock := s.Locks.Lock(roomID)
	defer unlock()

	room, err := s.loadRoom(s.DB, roomID)
	if err != nil {
		return nil, err
	}

	sameRoomUpdate := roomID == booking.RoomID
	if err := s.runBookingGuards(room, actor, checkIn, checkOut, adults, children, booking.ID, sameRoomUpdate); err != nil {
		return nil, err
	}

	accepted := s.Availability.Statuses.UsesStatus() &&
		status == models.BookingStatusAccepted && oldStatus == models.BookingStatusNew
	rejected := s.Availability.Statuses.UsesStatus() &&
		status == models.BookingStatusRejected && oldStatus == models.BookingStatusNew

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"room_id":            roomID,
			"check_in":           checkIn,
			"check_out":          checkOut,
			"number_of_adults":   adults,
			"number_of_children": children,
		}
		if in.Description != nil {
			updates["description"] = *in.Description
		}
		if s.Availability.Statuses.UsesStatus() {
			updates["status"] = status
		}
		if actor.ID != 0 {
			updates["updated_by"] = actor.ID
		}

		if err := tx.Model(&models.RoomBooking{}).Where("id = ?", booking.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update booking %d: %w", booking.ID, err)
		}

		if s.Availability.Statuses.UsesStatus() {
			// Side effects are recomputed from the old/new status pair on
			// every update, not accumulated across calls.
			booked := accepted
			if err := tx.Model(&models.Room{}).Where("id = ?", roomID).Update("booked", booked).Error; err != nil {
				return fmt.Errorf("failed to update room %d booked flag: %w", roomID, err)
			}

			flagMsg := fmt.Sprintf("Room ID %d unbooked due to booking status change.", roomID)
			if booked {
				flagMsg = fmt.Sprintf("Room ID %d marked as booked due to accepted booking.", roomID)
			}
			s.Audit.RecordTx(tx, actor, meta, "room_status_updated", flagMsg,
				map[string]any{"room_id": roomID, "booking_id": booking.ID})
		}

		s.Audit.RecordTx(tx, actor, meta, "room_booking_updated",
			fmt.Sprintf("Room booking #%d updated for room #%d from %s to %s", booking.ID, roomID, fmtDate(checkIn), fmtDate(checkOut)),
			map[string]any{"booking_id": booking.ID, "room_id": roomID},
		)
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	updated, err := s.reload(booking.ID)
	if err != nil {
		return nil, err
	}

	if accepted {
		s.notifyCreator(utils.TemplateBookingAccepted, updated, actor, meta)
	} else if rejected {
		s.notifyCreator(utils.TemplateBookingRejected, updated, actor, meta)
	}
	s.notifyAdmins(utils.TemplateAdminUpdateNotification, updated, actor, meta)

	return updated, nil
}

// ---------------------------
// Delete / BulkDelete
// ---------------------------

// DeletedBookingDetails identifies a removed booking for audit purposes.
type DeletedBookingDetails struct {
	ID       uint   `json:"id"`
	RoomID   uint   `json:"room_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

func details(b *models.RoomBooking) DeletedBookingDetails {
	return DeletedBookingDetails{
		ID:       b.ID,
		RoomID:   b.RoomID,
		CheckIn:  fmtDate(b.CheckIn),
		CheckOut: fmtDate(b.CheckOut),
	}
}

// Delete removes a single booking. Bookings whose stay has started or
// completed (check_in at or before now) cannot be deleted.
func (s *BookingService) Delete(actor Actor, meta RequestMeta, id uint) (*DeletedBookingDetails, error) {
	booking, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if !booking.CheckIn.After(time.Now()) {
		return nil, &ConflictError{
			Code:         ConflictBookingStarted,
			Message:      "Cannot delete bookings that have already started or completed",
			OffendingIDs: []uint{booking.ID},
		}
	}

	d := details(booking)
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.RoomBooking{}, booking.ID).Error; err != nil {
			return fmt.Errorf("failed to delete booking %d: %w", booking.ID, err)
		}
		s.Audit.RecordTx(tx, actor, meta, "room_booking_deleted",
			fmt.Sprintf("Room booking #%d for room #%d from %s to %s was deleted", d.ID, d.RoomID, d.CheckIn, d.CheckOut),
			map[string]any{"booking_id": d.ID, "room_id": d.RoomID, "check_in": d.CheckIn, "check_out": d.CheckOut},
		)
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &d, nil
}

// BulkDelete removes a set of bookings atomically. If any booking in the
// set has started, the whole call is rejected and the offending ids are
// enumerated; nothing is partially deleted.
func (s *BookingService) BulkDelete(actor Actor, meta RequestMeta, ids []uint) ([]DeletedBookingDetails, error) {
	if len(ids) == 0 {
		return nil, &ValidationError{Message: "No valid booking IDs found"}
	}

	var bookings []models.RoomBooking
	if err := s.DB.Where("id IN ?", ids).Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to load bookings for bulk delete: %w", err)
	}
	if len(bookings) == 0 {
		return nil, &NotFoundError{Resource: "bookings"}
	}

	now := time.Now()
	var offending []uint
	var offendingDesc []string
	for i := range bookings {
		if !bookings[i].CheckIn.After(now) {
			offending = append(offending, bookings[i].ID)
			offendingDesc = append(offendingDesc, fmt.Sprintf("Booking #%d for %s", bookings[i].ID, fmtDate(bookings[i].CheckIn)))
		}
	}
	if len(offending) > 0 {
		return nil, &ConflictError{
			Code:         ConflictBookingStarted,
			Message:      "Cannot delete bookings that have already started or completed",
			Details:      fmt.Sprintf("Offending bookings: %v", offendingDesc),
			OffendingIDs: offending,
		}
	}

	deleted := make([]DeletedBookingDetails, 0, len(bookings))
	deletedIDs := make([]uint, 0, len(bookings))
	for i := range bookings {
		deleted = append(deleted, details(&bookings[i]))
		deletedIDs = append(deletedIDs, bookings[i].ID)
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id IN ?", deletedIDs).Delete(&models.RoomBooking{}).Error; err != nil {
			return fmt.Errorf("failed to bulk delete bookings: %w", err)
		}
		s.Audit.RecordTx(tx, actor, meta, "room_bookings_bulk_deleted",
			fmt.Sprintf("Room bookings deleted: %v", deletedIDs),
			map[string]any{"booking_ids": deletedIDs, "details": deleted},
		)
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return deleted, nil
}

// ---------------------------
// Availability search
// ---------------------------

// AvailabilityCriteria is a guest-facing room search request.
type AvailabilityCriteria struct {
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Children int
}

// AvailabilitySearchResult lists the rooms that can host the party for the
// window. An empty list is a normal outcome, not an error.
type AvailabilitySearchResult struct {
	AvailableRooms []models.Room  `json:"available_rooms"`
	Total          int            `json:"total"`
	SearchCriteria map[string]any `json:"search_criteria"`
}

// CheckAvailability scans rooms that satisfy the capacity policy and are
// not flagged booked, then drops any with an overlapping active booking.
// Read-only: identical inputs with no intervening writes yield identical
// results.
func (s *BookingService) CheckAvailability(criteria AvailabilityCriteria) (*AvailabilitySearchResult, error) {
	fieldErrs := FieldErrors{}
	if criteria.Adults < 1 {
		fieldErrs["adults"] = []string{"At least one adult is required."}
	}
	if criteria.Children < 0 {
		fieldErrs["children"] = []string{"The number of children may not be negative."}
	}
	if !criteria.CheckOut.After(criteria.CheckIn) {
		fieldErrs["checkOutDate"] = []string{"The check out date must be after the check in date."}
	}
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Message: "The given data was invalid", Errors: fieldErrs}
	}

	if isPastDay(criteria.CheckIn, time.Now()) {
		return nil, &ConflictError{
			Code:    ConflictPastCheckIn,
			Message: "Check-in date cannot be in the past",
			Errors:  FieldErrors{"checkInDate": {"Check-in date cannot be in the past."}},
		}
	}

	roomsQuery := s.Availability.Capacity.RoomFilter(s.DB.Model(&models.Room{}), criteria.Adults, criteria.Children).
		Where("booked = ?", false)

	var candidates []models.Room
	if err := roomsQuery.Preload("RoomCategory").Preload("RoomFeatures").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to load candidate rooms: %w", err)
	}

	available := make([]models.Room, 0, len(candidates))
	for i := range candidates {
		conflict, err := s.Availability.HasConflict(s.DB, candidates[i].ID, criteria.CheckIn, criteria.CheckOut)
		if err != nil {
			return nil, err
		}
		if !conflict {
			available = append(available, candidates[i])
		}
	}

	return &AvailabilitySearchResult{
		AvailableRooms: available,
		Total:          len(available),
		SearchCriteria: map[string]any{
			"check_in":  fmtDate(criteria.CheckIn),
			"check_out": fmtDate(criteria.CheckOut),
			"adults":    criteria.Adults,
			"children":  criteria.Children,
		},
	}, nil
}

// ---------------------------
// Listing
// ---------------------------

// ScopeAll applies no row restriction (admin view).
func ScopeAll() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB { return db }
}

// ScopeOwnedBy restricts the listing to bookings created by the given
// user (client view). Row scoping is an authorization concern injected by
// the controller, not decided inside the engine.
func ScopeOwnedBy(userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("room_bookings.created_by = ?", userID)
	}
}

// ListParams filters and pages the booking listing.
type ListParams struct {
	RoomID      *uint
	StartDate   *time.Time
	EndDate     *time.Time
	Search      string
	Paginate    bool
	Page        int
	RowsPerPage int
	Scope       func(*gorm.DB) *gorm.DB
}

// ListResult carries the rows plus pagination bookkeeping.
type ListResult struct {
	Bookings    []models.RoomBooking
	Total       int64
	Page        int
	RowsPerPage int
}

// List returns bookings sorted by check_in when a date-range filter is
// present, otherwise by recency.
func (s *BookingService) List(params ListParams) (*ListResult, error) {
	query := s.DB.Model(&models.RoomBooking{}).
		Preload("Room").
		Preload("CreatedByUser").
		Preload("UpdatedByUser")

	if params.Scope != nil {
		query = params.Scope(query)
	}

	if params.RoomID != nil && *params.RoomID != 0 {
		query = query.Where("room_bookings.room_id = ?", *params.RoomID)
	}

	dateFiltered := params.StartDate != nil && params.EndDate != nil
	if dateFiltered {
		start, end := *params.StartDate, *params.EndDate
		query = query.Where(
			"(check_in >= ? AND check_in <= ?) OR (check_out >= ? AND check_out <= ?) OR (check_in <= ? AND check_out >= ?)",
			start, end, start, end, start, end,
		)
	}

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.
			Joins("LEFT JOIN rooms ON rooms.id = room_bookings.room_id").
			Joins("LEFT JOIN users creators ON creators.id = room_bookings.created_by").
			Where("rooms.name LIKE ? OR creators.name LIKE ? OR creators.email LIKE ?", like, like, like)
	}

	if dateFiltered {
		query = query.Order("check_in asc")
	} else {
		query = query.Order("room_bookings.created_at desc")
	}

	result := &ListResult{Page: params.Page, RowsPerPage: params.RowsPerPage}

	if params.Paginate {
		if result.Page < 1 {
			result.Page = 1
		}
		if result.RowsPerPage < 1 {
			result.RowsPerPage = 10
		}
		if err := query.Count(&result.Total).Error; err != nil {
			return nil, fmt.Errorf("failed to count bookings: %w", err)
		}
		query = query.Offset((result.Page - 1) * result.RowsPerPage).Limit(result.RowsPerPage)
	}

	if err := query.Find(&result.Bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	if !params.Paginate {
		result.Total = int64(len(result.Bookings))
	}

	return result, nil
}

// ---------------------------
// Notifications
// ---------------------------

func bookingMailData(b *models.RoomBooking, actor Actor) map[string]any {
	clientName := ""
	if b.CreatedByUser != nil {
		clientName = b.CreatedByUser.Name
	}
	return map[string]any{
		"room_name":   b.Room.Name,
		"check_in":    fmtDate(b.CheckIn),
		"check_out":   fmtDate(b.CheckOut),
		"status":      b.Status,
		"client_name": clientName,
		"updated_by":  actor.Name,
	}
}

// notifyAdmins fans the notification out to every admin-role user. Each
// delivery failure is logged and audited individually; none aborts the
// already-committed booking operation.
func (s *BookingService) notifyAdmins(template string, booking *models.RoomBooking, actor Actor, meta RequestMeta) {
	var admins []models.User
	err := s.DB.
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", models.RoleSystemAdmin).
		Find(&admins).Error
	if err != nil {
		log.Printf("warning: failed to load admin users for notification: %v", err)
		return
	}

	for i := range admins {
		data := bookingMailData(booking, actor)
		data["recipient_name"] = admins[i].Name

		if err := s.Notifier.Send(template, admins[i].Email, data); err != nil {
			log.Printf("warning: failed to send %s to admin %s: %v", template, admins[i].Email, err)
			s.Audit.Record(actor, meta, "email_send_failed",
				fmt.Sprintf("Failed to send room booking notification email to admin: %s. Error: %v", admins[i].Email, err),
				map[string]any{"booking_id": booking.ID, "admin_id": admins[i].ID},
			)
		}
	}
}

// notifyCreator tells the booking's creator about an accept/reject
// decision. Best-effort, same policy as notifyAdmins.
func (s *BookingService) notifyCreator(template string, booking *models.RoomBooking, actor Actor, meta RequestMeta) {
	if booking.CreatedByUser == nil || booking.CreatedByUser.Email == "" {
		return
	}

	data := bookingMailData(booking, actor)
	data["recipient_name"] = booking.CreatedByUser.Name

	if err := s.Notifier.Send(template, booking.CreatedByUser.Email, data); err != nil {
		log.Printf("warning: failed to send %s to %s: %v", template, booking.CreatedByUser.Email, err)
		s.Audit.Record(actor, meta, "email_send_failed",
			fmt.Sprintf("Failed to send booking status notification to %s. Error: %v", booking.CreatedByUser.Email, err),
			map[string]any{"booking_id": booking.ID},
		)
		return
	}

	s.Audit.Record(actor, meta, "email_sent",
		fmt.Sprintf("Booking status notification sent to %s.", booking.CreatedByUser.Email),
		map[string]any{"booking_id": booking.ID},
	)
}
