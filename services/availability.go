package services

import (
	"fmt"
	"time"

	"mingo-hotel-api/models"

	"gorm.io/gorm"
)

// ---------------------------
// Capacity policies
// ---------------------------

// CapacityPolicy decides whether a party fits a room. Two policies exist in
// production: independent adult/child limits, and a single combined total.
// The policy is fixed at construction, never mixed per request.
type CapacityPolicy interface {
	Name() string
	// Check returns a ConflictError with code capacity_exceeded when the
	// party does not fit, nil otherwise.
	Check(room *models.Room, adults, children int) *ConflictError
	// RoomFilter narrows a rooms query to rooms that can hold the party.
	RoomFilter(db *gorm.DB, adults, children int) *gorm.DB
}

// IndependentLimits checks adults and children against separate room
// limits. A room with 2 adult slots and 0 child slots rejects one child
// even when an adult slot is free.
type IndependentLimits struct{}

func (IndependentLimits) Name() string { return "independent" }

func (IndependentLimits) Check(room *models.Room, adults, children int) *ConflictError {
	if adults > room.NumberOfAdults {
		return &ConflictError{
			Code:    ConflictCapacityExceeded,
			Message: "Room capacity exceeded",
			Details: fmt.Sprintf("Room %s can only accommodate %d adults.", room.Name, room.NumberOfAdults),
			Errors: FieldErrors{
				"number_of_adults": {fmt.Sprintf("This room can only accommodate %d adults.", room.NumberOfAdults)},
			},
		}
	}
	if children > room.NumberOfChildren {
		return &ConflictError{
			Code:    ConflictCapacityExceeded,
			Message: "Room capacity exceeded",
			Details: fmt.Sprintf("Room %s can only accommodate %d children.", room.Name, room.NumberOfChildren),
			Errors: FieldErrors{
				"number_of_children": {fmt.Sprintf("This room can only accommodate %d children.", room.NumberOfChildren)},
			},
		}
	}
	return nil
}

func (IndependentLimits) RoomFilter(db *gorm.DB, adults, children int) *gorm.DB {
	return db.Where("number_of_adults >= ? AND number_of_children >= ?", adults, children)
}

// CombinedTotal checks adults+children against the room's total capacity.
type CombinedTotal struct{}

func (CombinedTotal) Name() string { return "combined" }

func (CombinedTotal) Check(room *models.Room, adults, children int) *ConflictError {
	if adults+children > room.Capacity {
		msg := fmt.Sprintf("Total number of guests exceeds room capacity of %d", room.Capacity)
		return &ConflictError{
			Code:    ConflictCapacityExceeded,
			Message: "Number of guests exceeds room capacity",
			Details: msg,
			Errors: FieldErrors{
				"number_of_adults":   {msg},
				"number_of_children": {msg},
			},
		}
	}
	return nil
}

func (CombinedTotal) RoomFilter(db *gorm.DB, adults, children int) *gorm.DB {
	return db.Where("capacity >= ?", adults+children)
}

// CapacityPolicyByName resolves a policy from configuration; unknown names
// fall back to independent limits.
func CapacityPolicyByName(name string) CapacityPolicy {
	if name == "combined" {
		return CombinedTotal{}
	}
	return IndependentLimits{}
}

// ---------------------------
// Status models
// ---------------------------

// StatusModel abstracts the two booking status schemes: the tri-state
// new/accepted/rejected model where only non-rejected bookings occupy a
// room, and the statusless model where booking existence implies occupancy.
type StatusModel interface {
	Name() string
	UsesStatus() bool
	// ActiveStatuses returns the statuses that count for overlap purposes,
	// or nil when every booking counts.
	ActiveStatuses() []string
}

type TriStateStatus struct{}

func (TriStateStatus) Name() string      { return "tristate" }
func (TriStateStatus) UsesStatus() bool  { return true }
func (TriStateStatus) ActiveStatuses() []string {
	return []string{models.BookingStatusNew, models.BookingStatusAccepted}
}

type StatuslessModel struct{}

func (StatuslessModel) Name() string             { return "statusless" }
func (StatuslessModel) UsesStatus() bool         { return false }
func (StatuslessModel) ActiveStatuses() []string { return nil }

// StatusModelByName resolves a status model from configuration; unknown
// names fall back to tri-state.
func StatusModelByName(name string) StatusModel {
	if name == "statusless" {
		return StatuslessModel{}
	}
	return TriStateStatus{}
}

// ---------------------------
// Overlap predicate
// ---------------------------

// Overlaps reports whether an existing booking window conflicts with a new
// [checkIn, checkOut) window. It is the half-open interval test expressed
// as three boundary-sensitive cases; the inequalities are load-bearing:
// an existing check-out equal to the new check-in (and vice versa) is NOT a
// conflict, which is what allows same-day turnover.
func Overlaps(existingIn, existingOut, checkIn, checkOut time.Time) bool {
	// Case 1: the new check-in falls inside the existing booking.
	if !existingIn.After(checkIn) && existingOut.After(checkIn) {
		return true
	}
	// Case 2: the new check-out falls inside the existing booking.
	if existingIn.Before(checkOut) && !existingOut.Before(checkOut) {
		return true
	}
	// Case 3: the new window encompasses the existing booking.
	if !existingIn.Before(checkIn) && !existingOut.After(checkOut) {
		return true
	}
	return false
}

// overlapCondition is the SQL form of Overlaps, same three cases OR'd.
const overlapCondition = "(check_in <= ? AND check_out > ?)" +
	" OR (check_in < ? AND check_out >= ?)" +
	" OR (check_in >= ? AND check_out <= ?)"

// ---------------------------
// Availability engine
// ---------------------------

// AvailabilityEngine answers "may room R be booked for [checkIn, checkOut)"
// and produces day-by-day availability calendars. It returns conflict data,
// never HTTP-facing errors; the booking service converts findings into the
// error taxonomy at its boundary.
type AvailabilityEngine struct {
	DB       *gorm.DB
	Capacity CapacityPolicy
	Statuses StatusModel
}

func NewAvailabilityEngine(db *gorm.DB, capacity CapacityPolicy, statuses StatusModel) *AvailabilityEngine {
	return &AvailabilityEngine{DB: db, Capacity: capacity, Statuses: statuses}
}

func (e *AvailabilityEngine) activeScope(db *gorm.DB) *gorm.DB {
	if active := e.Statuses.ActiveStatuses(); len(active) > 0 {
		return db.Where("status IN ?", active)
	}
	return db
}

// FindConflicts returns every active booking for roomID that overlaps
// [checkIn, checkOut). excludeBookingID removes the booking being updated
// from its own conflict scan; pass 0 for creates.
func (e *AvailabilityEngine) FindConflicts(db *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) ([]models.RoomBooking, error) {
	if db == nil {
		db = e.DB
	}

	query := db.Model(&models.RoomBooking{}).
		Where("room_id = ?", roomID).
		Where(overlapCondition, checkIn, checkIn, checkOut, checkOut, checkIn, checkOut)
	query = e.activeScope(query)
	if excludeBookingID != 0 {
		query = query.Where("id != ?", excludeBookingID)
	}

	var conflicts []models.RoomBooking
	if err := query.Order("check_in asc").Find(&conflicts).Error; err != nil {
		return nil, fmt.Errorf("failed to scan for overlapping bookings: %w", err)
	}
	return conflicts, nil
}

// HasConflict is FindConflicts reduced to an existence check, used by the
// room search where the conflicting rows themselves are not needed.
func (e *AvailabilityEngine) HasConflict(db *gorm.DB, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	if db == nil {
		db = e.DB
	}

	query := db.Model(&models.RoomBooking{}).
		Where("room_id = ?", roomID).
		Where(overlapCondition, checkIn, checkIn, checkOut, checkOut, checkIn, checkOut)
	query = e.activeScope(query)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to scan for overlapping bookings: %w", err)
	}
	return count > 0, nil
}

// HasPendingForActor reports whether the actor already holds a booking in
// "new" status for the room. This is a per-actor business rule independent
// of date overlap, and only applies under the tri-state model.
func (e *AvailabilityEngine) HasPendingForActor(db *gorm.DB, roomID, actorID, excludeBookingID uint) (bool, error) {
	if !e.Statuses.UsesStatus() {
		return false, nil
	}
	if db == nil {
		db = e.DB
	}

	query := db.Model(&models.RoomBooking{}).
		Where("room_id = ? AND status = ? AND created_by = ?", roomID, models.BookingStatusNew, actorID)
	if excludeBookingID != 0 {
		query = query.Where("id != ?", excludeBookingID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check pending bookings: %w", err)
	}
	return count > 0, nil
}

// ---------------------------
// Availability calendar
// ---------------------------

// CalendarDay is one day of a room's availability calendar. BookingID
// carries the conflicting booking when the day is occupied.
type CalendarDay struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
	BookingID *uint  `json:"booking_id"`
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// BuildCalendar produces one entry per calendar day in [start, end]. A day
// is unavailable when it falls inside [check_in, check_out) of any supplied
// booking; the check-out day itself stays available for turnover. Pure:
// single pass, no input mutation, restartable.
func BuildCalendar(bookings []models.RoomBooking, start, end time.Time) []CalendarDay {
	days := make([]CalendarDay, 0)

	for current := startOfDay(start); !current.After(startOfDay(end)); current = current.AddDate(0, 0, 1) {
		day := CalendarDay{Date: current.Format("2006-01-02"), Available: true}

		for i := range bookings {
			bookingStart := startOfDay(bookings[i].CheckIn)
			bookingEnd := startOfDay(bookings[i].CheckOut)

			if !current.Before(bookingStart) && current.Before(bookingEnd) {
				day.Available = false
				id := bookings[i].ID
				day.BookingID = &id
				break
			}
		}

		days = append(days, day)
	}

	return days
}

// RoomCalendar loads the room's active bookings overlapping [start, end]
// and renders the day-by-day calendar. The queried range is inclusive of
// its end day, so the overlap filter runs against end+1 day.
func (e *AvailabilityEngine) RoomCalendar(roomID uint, start, end time.Time) ([]CalendarDay, error) {
	rangeStart := startOfDay(start)
	rangeEnd := startOfDay(end).AddDate(0, 0, 1)

	query := e.DB.Model(&models.RoomBooking{}).
		Where("room_id = ?", roomID).
		Where(overlapCondition, rangeStart, rangeStart, rangeEnd, rangeEnd, rangeStart, rangeEnd)
	query = e.activeScope(query)

	var bookings []models.RoomBooking
	if err := query.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to load bookings for calendar: %w", err)
	}

	return BuildCalendar(bookings, start, end), nil
}
