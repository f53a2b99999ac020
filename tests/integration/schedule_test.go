//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/fitzone/gym-booking/internal/models"
	"github.com/fitzone/gym-booking/internal/repository"
	"github.com/fitzone/gym-booking/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduleService() service.ScheduleService {
	scheduleRepo := repository.NewScheduleRepository(testDB)
	classRepo := repository.NewClassRepository(testDB)
	bookingRepo := repository.NewBookingRepository(testDB)
	return service.NewScheduleService(scheduleRepo, classRepo, bookingRepo)
}

// Shrinking capacity below the confirmed booking count is rejected; a valid
// shrink keeps available_spots consistent with the bookings already taken.
func TestUpdateScheduleCapacityGuard(t *testing.T) {
	cleanTables()
	schedule := createTestSchedule(t, 10)
	bookingSvc := newBookingService()
	scheduleSvc := newScheduleService()

	for i := 0; i < 4; i++ {
		user := createTestCustomer(t, string(rune('a'+i))+"-cap@example.com")
		_, err := bookingSvc.CreateBooking(context.Background(), user.ID, schedule.ID)
		require.NoError(t, err)
	}

	tooSmall := 3
	_, err := scheduleSvc.UpdateSchedule(context.Background(), schedule.ID, service.ScheduleUpdate{TotalSpots: &tooSmall})
	assert.ErrorIs(t, err, service.ErrCapacityBelowBooked)

	newTotal := 6
	updated, err := scheduleSvc.UpdateSchedule(context.Background(), schedule.ID, service.ScheduleUpdate{TotalSpots: &newTotal})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.TotalSpots)
	assert.Equal(t, 2, updated.AvailableSpots, "available = total - confirmed")
}

func TestDeleteScheduleBlockedByBookings(t *testing.T) {
	cleanTables()
	schedule := createTestSchedule(t, 5)
	user := createTestCustomer(t, "blocker@example.com")
	bookingSvc := newBookingService()
	scheduleSvc := newScheduleService()

	booking, err := bookingSvc.CreateBooking(context.Background(), user.ID, schedule.ID)
	require.NoError(t, err)

	err = scheduleSvc.DeleteSchedule(context.Background(), schedule.ID)
	assert.ErrorIs(t, err, service.ErrScheduleHasBookings)

	_, err = bookingSvc.CancelBooking(context.Background(), booking.ID, user.ID)
	require.NoError(t, err)

	assert.NoError(t, scheduleSvc.DeleteSchedule(context.Background(), schedule.ID))
}

func TestCreateScheduleValidation(t *testing.T) {
	cleanTables()
	scheduleSvc := newScheduleService()

	// Unknown class
	s := &models.Schedule{ClassID: 99999, TotalSpots: 10}
	err := scheduleSvc.CreateSchedule(context.Background(), s)
	assert.ErrorIs(t, err, service.ErrClassNotFound)
}
