package services

import (
	"fmt"
	"testing"
	"time"

	"mingo-hotel-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.RoomCategory{},
		&models.Room{},
		&models.RoomFeature{},
		&models.RoomBooking{},
		&models.ActivityLog{},
	))
	return db
}

type testEnv struct {
	db      *gorm.DB
	service *BookingService
	room    models.Room
	client  Actor
	admin   Actor
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := openTestDB(t)

	adminRole := models.Role{Name: models.RoleSystemAdmin}
	clientRole := models.Role{Name: models.RoleClient}
	require.NoError(t, db.Create(&adminRole).Error)
	require.NoError(t, db.Create(&clientRole).Error)

	adminUser := models.User{Name: "Admin", Email: "admin@test.local", RoleID: &adminRole.ID}
	clientUser := models.User{Name: "Jane Guest", Email: "jane@test.local", RoleID: &clientRole.ID}
	require.NoError(t, db.Create(&adminUser).Error)
	require.NoError(t, db.Create(&clientUser).Error)

	room := models.Room{
		Name:             "Room 101",
		RoomType:         "accommodation",
		Price:            120,
		Capacity:         3,
		NumberOfAdults:   2,
		NumberOfChildren: 1,
	}
	require.NoError(t, db.Create(&room).Error)

	engine := NewAvailabilityEngine(db, IndependentLimits{}, TriStateStatus{})
	service := NewBookingService(db, engine, NewRoomLocks(), NopNotifier{}, NewActivityLogger(db))

	return &testEnv{
		db:      db,
		service: service,
		room:    room,
		client:  Actor{ID: clientUser.ID, Name: clientUser.Name, Email: clientUser.Email, Role: models.RoleClient},
		admin:   Actor{ID: adminUser.ID, Name: adminUser.Name, Email: adminUser.Email, Role: models.RoleSystemAdmin},
	}
}

// futureDay returns midnight n days from now, so lifecycle tests never trip
// the past-check-in guard.
func futureDay(n int) time.Time {
	return startOfDay(time.Now().AddDate(0, 0, n))
}

func ptr[T any](v T) *T { return &v }

func (env *testEnv) input(roomID uint, in, out time.Time, adults, children int) BookingInput {
	return BookingInput{
		RoomID:           &roomID,
		CheckIn:          &in,
		CheckOut:         &out,
		NumberOfAdults:   &adults,
		NumberOfChildren: &children,
	}
}

func TestCreateBooking(t *testing.T) {
	env := newTestEnv(t)

	booking, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(30), futureDay(35), 2, 1))
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusNew, booking.Status)
	require.NotNil(t, booking.CreatedBy)
	assert.Equal(t, env.client.ID, *booking.CreatedBy)
	assert.Equal(t, "Room 101", booking.Room.Name)

	var audits int64
	env.db.Model(&models.ActivityLog{}).Where("log_name = ?", "room_booking_created").Count(&audits)
	assert.Equal(t, int64(1), audits)
}

func TestCreateBookingIgnoresSuppliedStatus(t *testing.T) {
	env := newTestEnv(t)

	in := env.input(env.room.ID, futureDay(30), futureDay(32), 1, 0)
	in.Status = ptr(models.BookingStatusAccepted)

	booking, err := env.service.Create(env.client, RequestMeta{}, in)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusNew, booking.Status)
}

func TestCreateBookingValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.Create(env.client, RequestMeta{}, BookingInput{})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "room_id")
	assert.Contains(t, vErr.Errors, "check_in")
	assert.Contains(t, vErr.Errors, "check_out")
	assert.Contains(t, vErr.Errors, "number_of_adults")
}

func TestCreateBookingRoomNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.Create(env.client, RequestMeta{}, env.input(9999, futureDay(30), futureDay(32), 1, 0))
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "room", nfErr.Resource)
}

func TestCreateBookingPastCheckIn(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(-2), futureDay(3), 1, 0))
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, ConflictPastCheckIn, cErr.Code)
}

func TestCreateBookingTodayCheckInAllowed(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(0), futureDay(2), 1, 0))
	require.NoError(t, err)
}

func TestCreateBookingOverlapRejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(10), futureDay(15), 1, 0))
	require.NoError(t, err)

	other := Actor{ID: env.admin.ID, Name: env.admin.Name, Role: models.RoleClient}
	_, err = env.service.Create(other, RequestMeta{}, env.input(env.room.ID, futureDay(14), futureDay(18), 1, 0))

	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, ConflictDateOverlap, cErr.Code)
	require.Len(t, cErr.Conflicts, 1)
	assert.Equal(t, futureDay(10).Format("2006-01-02"), cErr.Conflicts[0].CheckIn)

	var count int64
	env.db.Model(&models.RoomBooking{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateBookingBackToBackTurnover(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(10), futureDay(15), 1, 0))
	require.NoError(t, err)

	// Checkout day equals the new check-in day: not a conflict.
	other := Actor{ID: env.admin.ID, Name: env.admin.Name, Role: models.RoleClient}
	_, err = env.service.Create(other, RequestMeta{}, env.input(env.room.ID, futureDay(15), futureDay(20), 1, 0))
	require.NoError(t, err)
}

func TestCreateBookingCapacityExceeded(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(10), futureDay(12), 3, 0))
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, ConflictCapacityExceeded, cErr.Code)
	assert.Contains(t, cErr.Errors, "number_of_adults")
}

func TestCreateBookingDuplicatePending(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(10), futureDay(12), 1, 0))
	require.NoError(t, err)

	// Same actor, same room, non-overlapping dates: still rejected.
	_, err = env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(20), futureDay(22), 1, 0))
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, ConflictDuplicatePending, cErr.Code)
}

func TestCreateBookingBookedFlagFastPath(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.db.Model(&models.Room{}).Where("id = ?", env.room.ID).Update("booked", true).Error)

	_, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(10), futureDay(12), 1, 0))
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, ConflictRoomBooked, cErr.Code)
}

func TestUpdateAcceptSetsRoomBooked(t *testing.T) {
	env := newTestEnv(t)

	booking, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(10), futureDay(15), 1, 0))
	require.NoError(t, err)

	updated, err := env.service.Update(env.admin, RequestMeta{}, booking.ID, BookingInput{Status: ptr(models.BookingStatusAccepted)})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, updated.Status)

	var room models.Room
	require.NoError(t, env.db.First(&room, env.room.ID).Error)
	assert.True(t, room.Booked)
}

func TestUpdateRejectClearsRoomBookedAndFreesDates(t *testing.T) {
	env := newTestEnv(t)

	booking, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(10), futureDay(15), 1, 0))
	require.NoError(t, err)

	_, err = env.service.Update(env.admin, RequestMeta{}, booking.ID, BookingInput{Status: ptr(models.BookingStatusRejected)})
	require.NoError(t, err)

	var room models.Room
	require.NoError(t, env.db.First(&room, env.room.ID).Error)
	assert.False(t, room.Booked)

	// Rejected bookings never conflict.
	other := Actor{ID: env.admin.ID, Name: env.admin.Name, Role: models.RoleClient}
	_, err = env.service.Create(other, RequestMeta{}, env.input(env.room.ID, futureDay(11), futureDay(14), 1, 0))
	require.NoError(t, err)
}

func TestUpdateSameRoomExemptFromBookedFastPath(t *testing.T) {
	env := newTestEnv(t)

	booking, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(10), futureDay(15), 1, 0))
	require.NoError(t, err)

	_, err = env.service.Update(env.admin, RequestMeta{}, booking.ID, BookingInput{Status: ptr(models.BookingStatusAccepted)})
	require.NoError(t, err)

	// Room is now flagged booked; editing the booking on its own room must
	// not trip the fast-path rejection.
	in, out := futureDay(11), futureDay(16)
	updated, err := env.service.Update(env.admin, RequestMeta{}, booking.ID, BookingInput{CheckIn: &in, CheckOut: &out})
	require.NoError(t, err)
	assert.Equal(t, in.Format("2006-01-02"), updated.CheckIn.Format("2006-01-02"))
}

func TestUpdateExcludesOwnRowFromOverlapScan(t *testing.T) {
	env := newTestEnv(t)

	booking, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(10), futureDay(15), 1, 0))
	require.NoError(t, err)

	// Shifting the window over itself is not a conflict.
	in, out := futureDay(12), futureDay(17)
	_, err = env.service.Update(env.admin, RequestMeta{}, booking.ID, BookingInput{CheckIn: &in, CheckOut: &out})
	require.NoError(t, err)
}

func TestUpdateNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.Update(env.admin, RequestMeta{}, 424242, BookingInput{Status: ptr(models.BookingStatusAccepted)})
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestUpdateInvalidStatus(t *testing.T) {
	env := newTestEnv(t)

	booking, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(10), futureDay(12), 1, 0))
	require.NoError(t, err)

	_, err = env.service.Update(env.admin, RequestMeta{}, booking.ID, BookingInput{Status: ptr("cancelled")})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "status")
}

func TestDeleteBooking(t *testing.T) {
	env := newTestEnv(t)

	booking, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(10), futureDay(12), 1, 0))
	require.NoError(t, err)

	deleted, err := env.service.Delete(env.admin, RequestMeta{}, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, deleted.ID)
	assert.Equal(t, env.room.ID, deleted.RoomID)

	_, err = env.service.Get(booking.ID)
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestDeleteStartedBookingRejected(t *testing.T) {
	env := newTestEnv(t)

	started := models.RoomBooking{
		RoomID:         env.room.ID,
		CheckIn:        futureDay(-3),
		CheckOut:       futureDay(2),
		Status:         models.BookingStatusAccepted,
		NumberOfAdults: 1,
	}
	require.NoError(t, env.db.Create(&started).Error)

	_, err := env.service.Delete(env.admin, RequestMeta{}, started.ID)
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, ConflictBookingStarted, cErr.Code)
	assert.Equal(t, []uint{started.ID}, cErr.OffendingIDs)
}

func TestBulkDeleteRejectsWhenAnyStarted(t *testing.T) {
	env := newTestEnv(t)

	future, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(10), futureDay(12), 1, 0))
	require.NoError(t, err)

	started := models.RoomBooking{
		RoomID:         env.room.ID,
		CheckIn:        futureDay(-3),
		CheckOut:       futureDay(-1),
		Status:         models.BookingStatusAccepted,
		NumberOfAdults: 1,
	}
	require.NoError(t, env.db.Create(&started).Error)

	_, err = env.service.BulkDelete(env.admin, RequestMeta{}, []uint{future.ID, started.ID})
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, ConflictBookingStarted, cErr.Code)
	assert.Equal(t, []uint{started.ID}, cErr.OffendingIDs)

	// No partial delete.
	var count int64
	env.db.Model(&models.RoomBooking{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestBulkDelete(t *testing.T) {
	env := newTestEnv(t)

	first, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(10), futureDay(12), 1, 0))
	require.NoError(t, err)
	other := Actor{ID: env.admin.ID, Name: env.admin.Name, Role: models.RoleClient}
	second, err := env.service.Create(other, RequestMeta{}, env.input(env.room.ID, futureDay(20), futureDay(22), 1, 0))
	require.NoError(t, err)

	deleted, err := env.service.BulkDelete(env.admin, RequestMeta{}, []uint{first.ID, second.ID})
	require.NoError(t, err)
	assert.Len(t, deleted, 2)

	var count int64
	env.db.Model(&models.RoomBooking{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestBulkDeleteNoMatches(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.BulkDelete(env.admin, RequestMeta{}, []uint{9001, 9002})
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestCheckAvailability(t *testing.T) {
	env := newTestEnv(t)

	small := models.Room{Name: "Room 102", NumberOfAdults: 1, NumberOfChildren: 0, Capacity: 1}
	require.NoError(t, env.db.Create(&small).Error)

	_, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(10), futureDay(15), 1, 0))
	require.NoError(t, err)

	// Two adults: Room 102 fails capacity; Room 101 has a conflict.
	result, err := env.service.CheckAvailability(AvailabilityCriteria{
		CheckIn: futureDay(12), CheckOut: futureDay(14), Adults: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.AvailableRooms)

	// Outside the booked window Room 101 is back.
	result, err = env.service.CheckAvailability(AvailabilityCriteria{
		CheckIn: futureDay(15), CheckOut: futureDay(18), Adults: 2,
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Room 101", result.AvailableRooms[0].Name)
}

func TestCheckAvailabilityIdempotent(t *testing.T) {
	env := newTestEnv(t)

	criteria := AvailabilityCriteria{CheckIn: futureDay(10), CheckOut: futureDay(12), Adults: 1}
	first, err := env.service.CheckAvailability(criteria)
	require.NoError(t, err)
	second, err := env.service.CheckAvailability(criteria)
	require.NoError(t, err)

	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, len(first.AvailableRooms), len(second.AvailableRooms))
}

func TestCheckAvailabilityValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.CheckAvailability(AvailabilityCriteria{
		CheckIn: futureDay(12), CheckOut: futureDay(10), Adults: 0,
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "adults")
	assert.Contains(t, vErr.Errors, "checkOutDate")
}

func TestCheckAvailabilitySkipsBookedFlaggedRooms(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.db.Model(&models.Room{}).Where("id = ?", env.room.ID).Update("booked", true).Error)

	result, err := env.service.CheckAvailability(AvailabilityCriteria{
		CheckIn: futureDay(10), CheckOut: futureDay(12), Adults: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
}

func TestListScopedToOwner(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(10), futureDay(12), 1, 0))
	require.NoError(t, err)
	other := Actor{ID: env.admin.ID, Name: env.admin.Name, Role: models.RoleClient}
	_, err = env.service.Create(other, RequestMeta{}, env.input(env.room.ID, futureDay(20), futureDay(22), 1, 0))
	require.NoError(t, err)

	all, err := env.service.List(ListParams{Scope: ScopeAll()})
	require.NoError(t, err)
	assert.Len(t, all.Bookings, 2)

	mine, err := env.service.List(ListParams{Scope: ScopeOwnedBy(env.client.ID)})
	require.NoError(t, err)
	require.Len(t, mine.Bookings, 1)
	assert.Equal(t, env.client.ID, *mine.Bookings[0].CreatedBy)
}

func TestListDateRangeFilterSortsByCheckIn(t *testing.T) {
	env := newTestEnv(t)

	other := Actor{ID: env.admin.ID, Name: env.admin.Name, Role: models.RoleClient}
	_, err := env.service.Create(other, RequestMeta{}, env.input(env.room.ID, futureDay(20), futureDay(22), 1, 0))
	require.NoError(t, err)
	_, err = env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(10), futureDay(12), 1, 0))
	require.NoError(t, err)

	start, end := futureDay(5), futureDay(30)
	result, err := env.service.List(ListParams{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, result.Bookings, 2)
	assert.True(t, result.Bookings[0].CheckIn.Before(result.Bookings[1].CheckIn))
}

func TestListPagination(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 3; i++ {
		b := models.RoomBooking{
			RoomID:         env.room.ID,
			CheckIn:        futureDay(10 + i*5),
			CheckOut:       futureDay(12 + i*5),
			Status:         models.BookingStatusNew,
			NumberOfAdults: 1,
		}
		require.NoError(t, env.db.Create(&b).Error)
	}

	result, err := env.service.List(ListParams{Paginate: true, Page: 1, RowsPerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Total)
	assert.Len(t, result.Bookings, 2)

	result, err = env.service.List(ListParams{Paginate: true, Page: 2, RowsPerPage: 2})
	require.NoError(t, err)
	assert.Len(t, result.Bookings, 1)
}

func TestRoomCalendarMarksOccupiedDays(t *testing.T) {
	env := newTestEnv(t)

	booking, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(10), futureDay(12), 1, 0))
	require.NoError(t, err)

	days, err := env.service.Availability.RoomCalendar(env.room.ID, futureDay(9), futureDay(12))
	require.NoError(t, err)
	require.Len(t, days, 4)

	assert.True(t, days[0].Available)
	assert.False(t, days[1].Available)
	require.NotNil(t, days[1].BookingID)
	assert.Equal(t, booking.ID, *days[1].BookingID)
	assert.False(t, days[2].Available)
	assert.True(t, days[3].Available)
}

// failingNotifier simulates an unreachable mail channel.
type failingNotifier struct {
	attempts int
}

func (f *failingNotifier) Send(string, string, map[string]any) error {
	f.attempts++
	return fmt.Errorf("smtp unreachable")
}

func TestCreateSucceedsWhenNotificationFails(t *testing.T) {
	env := newTestEnv(t)
	notifier := &failingNotifier{}
	env.service.Notifier = notifier

	booking, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(10), futureDay(12), 1, 0))
	require.NoError(t, err)

	// The booking row committed despite the delivery failure.
	var count int64
	env.db.Model(&models.RoomBooking{}).Where("id = ?", booking.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	// One admin is seeded, so one delivery was attempted and audited.
	assert.Equal(t, 1, notifier.attempts)
	var failed int64
	env.db.Model(&models.ActivityLog{}).Where("log_name = ?", "email_send_failed").Count(&failed)
	assert.Equal(t, int64(1), failed)
}

func TestAcceptSucceedsWhenNotificationFails(t *testing.T) {
	env := newTestEnv(t)

	booking, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(10), futureDay(12), 1, 0))
	require.NoError(t, err)

	notifier := &failingNotifier{}
	env.service.Notifier = notifier

	updated, err := env.service.Update(env.admin, RequestMeta{}, booking.ID, BookingInput{Status: ptr(models.BookingStatusAccepted)})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, updated.Status)

	// Status transition and room flag committed before any delivery ran.
	var stored models.RoomBooking
	require.NoError(t, env.db.First(&stored, booking.ID).Error)
	assert.Equal(t, models.BookingStatusAccepted, stored.Status)
	var room models.Room
	require.NoError(t, env.db.First(&room, env.room.ID).Error)
	assert.True(t, room.Booked)

	// Creator acceptance mail plus the admin fan-out both failed and were
	// audited individually.
	assert.Equal(t, 2, notifier.attempts)
	var failed int64
	env.db.Model(&models.ActivityLog{}).Where("log_name = ?", "email_send_failed").Count(&failed)
	assert.Equal(t, int64(2), failed)
}

func TestStatuslessModelCountsEveryBooking(t *testing.T) {
	env := newTestEnv(t)
	env.service.Availability.Statuses = StatuslessModel{}

	rejected := models.RoomBooking{
		RoomID:         env.room.ID,
		CheckIn:        futureDay(10),
		CheckOut:       futureDay(15),
		Status:         models.BookingStatusRejected,
		NumberOfAdults: 1,
	}
	require.NoError(t, env.db.Create(&rejected).Error)

	// Under the statusless model even a rejected row occupies the room.
	_, err := env.service.Create(env.client, RequestMeta{}, env.input(env.room.ID, futureDay(11), futureDay(14), 1, 0))
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, ConflictDateOverlap, cErr.Code)
}
