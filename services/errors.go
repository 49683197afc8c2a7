package services

import "fmt"

// FieldErrors maps a request field to its human-readable problems, the
// shape returned to clients on 422 responses.
type FieldErrors map[string][]string

// ValidationError signals malformed or out-of-range input. The caller must
// correct the request; retrying unchanged will fail again.
type ValidationError struct {
	Message string
	Errors  FieldErrors
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError signals a missing referenced resource (room or booking).
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Machine-readable conflict reason codes.
const (
	ConflictDateOverlap      = "date_overlap"
	ConflictDuplicatePending = "duplicate_pending"
	ConflictCapacityExceeded = "capacity_exceeded"
	ConflictRoomBooked       = "room_already_booked"
	ConflictPastCheckIn      = "past_check_in"
	ConflictBookingStarted   = "booking_started"
)

// DateRange is a conflicting occupancy window reported back to the client.
type DateRange struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

// ConflictError signals an expected business-rule rejection: overlapping
// dates, duplicate pending booking, capacity exceeded, room flagged booked,
// past check-in, or deleting a started booking. Conflicts are control flow,
// not infrastructure failures, and map to 422 with a reason code.
type ConflictError struct {
	Code         string
	Message      string
	Details      string
	Errors       FieldErrors
	Conflicts    []DateRange
	OffendingIDs []uint
}

func (e *ConflictError) Error() string { return e.Message }
