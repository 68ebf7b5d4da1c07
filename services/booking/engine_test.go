package booking

import (
	"context"
	"testing"

	"fitbook/models"
	"fitbook/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingSlot() models.Slot {
	return models.Slot{
		ID:               "slot-1",
		TrainerID:        "trainer-1",
		SpecializationID: "spec-1",
		StartDate:        "2026-03-10",
		StartTime:        "09:00",
		EndTime:          "10:00",
		IsSingleSession:  true,
		Price:            80,
		Status:           models.SlotStatusPending,
	}
}

func TestFinalizeBookingConfirmsSlotAndWritesBooking(t *testing.T) {
	f := newFixture(pendingSlot())

	b, err := f.svc.FinalizeBooking(context.Background(), "slot-1", "user-1", "cs_test_1")
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusConfirmed, b.PaymentStatus)
	assert.Equal(t, "pi_test_1", b.PaymentIntent)
	assert.Equal(t, models.SessionTypeSingle, b.SessionType)
	assert.Equal(t, "Strength Training", b.Specialization)
	assert.InDelta(t, 80, b.Amount, 1e-9)

	slot, err := f.slots.GetByID(context.Background(), "slot-1")
	require.NoError(t, err)
	assert.True(t, slot.IsBooked)
	assert.Equal(t, models.SlotStatusConfirmed, slot.Status)

	assert.Equal(t, []string{b.ID}, f.notifier.confirmed)
}

func TestFinalizeBookingIsIdempotent(t *testing.T) {
	f := newFixture(pendingSlot())

	first, err := f.svc.FinalizeBooking(context.Background(), "slot-1", "user-1", "cs_test_1")
	require.NoError(t, err)

	second, err := f.svc.FinalizeBooking(context.Background(), "slot-1", "user-1", "cs_test_1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, f.bookings.bookings, 1, "a retry must not write a second booking")
	assert.Len(t, f.notifier.confirmed, 1, "a retry must not re-notify")
}

func TestFinalizeBookingDuplicateInsertFallsBackToExisting(t *testing.T) {
	f := newFixture(pendingSlot())

	// A concurrent finalize already inserted for this (slot, user).
	existing := models.Booking{
		ID:            "booking-race",
		SlotID:        "slot-1",
		UserID:        "user-1",
		TrainerID:     "trainer-1",
		PaymentStatus: models.BookingStatusConfirmed,
	}
	require.NoError(t, f.bookings.Insert(context.Background(), &existing))

	b, err := f.svc.FinalizeBooking(context.Background(), "slot-1", "user-1", "cs_test_1")
	require.NoError(t, err)
	assert.Equal(t, "booking-race", b.ID)
	assert.Len(t, f.bookings.bookings, 1)
	assert.Empty(t, f.notifier.confirmed)
}

func TestFinalizeBookingUnknownSlot(t *testing.T) {
	f := newFixture()

	_, err := f.svc.FinalizeBooking(context.Background(), "missing", "user-1", "cs_test_1")
	assert.ErrorIs(t, err, scheduling.ErrSlotNotFound)
}

func TestFinalizeBookingDifferentUsersGetDistinctBookings(t *testing.T) {
	f := newFixture(pendingSlot())

	b1, err := f.svc.FinalizeBooking(context.Background(), "slot-1", "user-1", "cs_test_1")
	require.NoError(t, err)
	b2, err := f.svc.FinalizeBooking(context.Background(), "slot-1", "user-2", "cs_test_2")
	require.NoError(t, err)

	assert.NotEqual(t, b1.ID, b2.ID)
	assert.Len(t, f.bookings.bookings, 2)
}

func TestFinalizeBookingPackageSnapshot(t *testing.T) {
	slot := pendingSlot()
	slot.IsSingleSession = false
	slot.EndDate = "2026-03-12"
	f := newFixture(slot)

	b, err := f.svc.FinalizeBooking(context.Background(), "slot-1", "user-1", "cs_test_1")
	require.NoError(t, err)

	assert.Equal(t, models.SessionTypePackage, b.SessionType)
	assert.Equal(t, "2026-03-10", b.StartDate)
	assert.Equal(t, "2026-03-12", b.EndDate)
}

func TestInitiateCheckoutUnknownSlot(t *testing.T) {
	f := newFixture()

	_, err := f.svc.InitiateCheckout(context.Background(), "missing", "user-1")
	assert.ErrorIs(t, err, scheduling.ErrSlotNotFound)
}

func TestInitiateCheckout(t *testing.T) {
	f := newFixture(pendingSlot())

	co, err := f.svc.InitiateCheckout(context.Background(), "slot-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", co.ID)
}
