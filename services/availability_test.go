package services

import (
	"testing"
	"time"

	"mingo-hotel-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	existingIn := day("2025-06-10")
	existingOut := day("2025-06-15")

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{"new check-in inside existing", "2025-06-14", "2025-06-18", true},
		{"new check-out inside existing", "2025-06-08", "2025-06-12", true},
		{"new encompasses existing", "2025-06-09", "2025-06-16", true},
		{"identical window", "2025-06-10", "2025-06-15", true},
		{"existing inside new, shared start", "2025-06-10", "2025-06-20", true},
		{"back-to-back after checkout", "2025-06-15", "2025-06-20", false},
		{"back-to-back before checkin", "2025-06-05", "2025-06-10", false},
		{"fully before", "2025-06-01", "2025-06-05", false},
		{"fully after", "2025-06-20", "2025-06-25", false},
		{"single-night inside", "2025-06-12", "2025-06-13", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(existingIn, existingOut, day(tt.checkIn), day(tt.checkOut))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndependentLimits(t *testing.T) {
	room := &models.Room{Name: "Room 101", NumberOfAdults: 2, NumberOfChildren: 1}
	policy := IndependentLimits{}

	assert.Nil(t, policy.Check(room, 2, 1))
	assert.Nil(t, policy.Check(room, 1, 0))

	err := policy.Check(room, 3, 0)
	require.NotNil(t, err)
	assert.Equal(t, ConflictCapacityExceeded, err.Code)
	assert.Contains(t, err.Errors, "number_of_adults")

	// A free adult slot does not absorb an extra child.
	err = policy.Check(room, 1, 2)
	require.NotNil(t, err)
	assert.Equal(t, ConflictCapacityExceeded, err.Code)
	assert.Contains(t, err.Errors, "number_of_children")
}

func TestCombinedTotal(t *testing.T) {
	room := &models.Room{Name: "Hall A", Capacity: 4}
	policy := CombinedTotal{}

	assert.Nil(t, policy.Check(room, 2, 2))
	assert.Nil(t, policy.Check(room, 4, 0))

	err := policy.Check(room, 3, 2)
	require.NotNil(t, err)
	assert.Equal(t, ConflictCapacityExceeded, err.Code)
}

func TestCapacityPolicyByName(t *testing.T) {
	assert.Equal(t, "combined", CapacityPolicyByName("combined").Name())
	assert.Equal(t, "independent", CapacityPolicyByName("independent").Name())
	assert.Equal(t, "independent", CapacityPolicyByName("").Name())
}

func TestStatusModelByName(t *testing.T) {
	assert.True(t, StatusModelByName("tristate").UsesStatus())
	assert.False(t, StatusModelByName("statusless").UsesStatus())
	assert.True(t, StatusModelByName("").UsesStatus())

	active := StatusModelByName("tristate").ActiveStatuses()
	assert.ElementsMatch(t, []string{models.BookingStatusNew, models.BookingStatusAccepted}, active)
	assert.Nil(t, StatusModelByName("statusless").ActiveStatuses())
}

func TestBuildCalendar(t *testing.T) {
	bookings := []models.RoomBooking{
		{ID: 7, CheckIn: day("2025-06-10"), CheckOut: day("2025-06-12")},
	}

	days := BuildCalendar(bookings, day("2025-06-09"), day("2025-06-13"))
	require.Len(t, days, 5)

	assert.Equal(t, "2025-06-09", days[0].Date)
	assert.True(t, days[0].Available)
	assert.Nil(t, days[0].BookingID)

	assert.False(t, days[1].Available)
	require.NotNil(t, days[1].BookingID)
	assert.Equal(t, uint(7), *days[1].BookingID)

	assert.False(t, days[2].Available)

	// Checkout day stays available for turnover.
	assert.Equal(t, "2025-06-12", days[3].Date)
	assert.True(t, days[3].Available)
	assert.True(t, days[4].Available)
}

func TestBuildCalendarEmpty(t *testing.T) {
	days := BuildCalendar(nil, day("2025-06-01"), day("2025-06-03"))
	require.Len(t, days, 3)
	for _, d := range days {
		assert.True(t, d.Available)
		assert.Nil(t, d.BookingID)
	}
}

func TestBuildCalendarSingleDay(t *testing.T) {
	days := BuildCalendar(nil, day("2025-06-01"), day("2025-06-01"))
	require.Len(t, days, 1)
	assert.Equal(t, "2025-06-01", days[0].Date)
}

func TestBuildCalendarIsPure(t *testing.T) {
	bookings := []models.RoomBooking{
		{ID: 1, CheckIn: day("2025-06-10"), CheckOut: day("2025-06-12")},
	}

	first := BuildCalendar(bookings, day("2025-06-09"), day("2025-06-13"))
	second := BuildCalendar(bookings, day("2025-06-09"), day("2025-06-13"))
	assert.Equal(t, first, second)
	assert.Equal(t, day("2025-06-10"), bookings[0].CheckIn)
}
