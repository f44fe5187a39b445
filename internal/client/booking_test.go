package client

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"professor-booking-server/internal/dto"
	"professor-booking-server/internal/slots"
)

const (
	bookPath = "/api/user/book-appointment"
	listPath = "/api/professor/list"
)

// A Tuesday before opening hours.
var bookingNow = time.Date(2025, time.June, 3, 7, 0, 0, 0, time.UTC)

func newSubmitter(backend *fakeBackend, token string) (*BookingSubmitter, *AppState, *recorder) {
	rec := &recorder{}
	api := backend.client()
	state := NewAppState(api, token, zap.NewNop())
	return NewBookingSubmitter(api, state, rec, rec, zap.NewNop()), state, rec
}

func TestBookingSubmitter_Unauthenticated(t *testing.T) {
	backend := newFakeBackend(t)
	submitter, _, rec := newSubmitter(backend, "")
	days := slots.Generate(bookingNow, nil)

	err := submitter.Submit(context.Background(), "p1", days, 0, "10:00 AM")

	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, 0, backend.callsTo(bookPath))
	assert.Equal(t, []string{"Login to book appointment"}, rec.warnings)
	assert.Equal(t, []string{LoginPath}, rec.paths)
}

func TestBookingSubmitter_Success(t *testing.T) {
	backend := newFakeBackend(t)
	backend.professors = []dto.Professor{
		{ID: "p1", Department: "Math", Available: true, SlotsBooked: map[string][]string{"4_6_2025": {"10:00 AM"}}},
	}
	submitter, state, rec := newSubmitter(backend, "user-token")
	days := slots.Generate(bookingNow, nil)
	require.Equal(t, "4_6_2025", days[1].DateKey())

	err := submitter.Submit(context.Background(), "p1", days, 1, "10:00 AM")
	require.NoError(t, err)

	assert.Equal(t, 1, backend.callsTo(bookPath))
	booking, _, token := backend.last()
	assert.Equal(t, "user-token", token)
	assert.Equal(t, dto.BookAppointmentRequest{ProfID: "p1", SlotDate: "4_6_2025", SlotTime: "10:00 AM"}, booking)

	assert.Equal(t, []string{"Appointment Booked"}, rec.successes)
	assert.Equal(t, 1, backend.callsTo(listPath))
	p, ok := state.Professor("p1")
	require.True(t, ok)
	assert.Equal(t, []string{"10:00 AM"}, p.SlotsBooked["4_6_2025"])
	assert.Equal(t, []string{AppointmentsPath}, rec.paths)
}

func TestBookingSubmitter_BackendFailure(t *testing.T) {
	backend := newFakeBackend(t)
	backend.bookReply = reply{status: http.StatusConflict, success: false, message: "Slot not available"}
	submitter, state, rec := newSubmitter(backend, "user-token")
	days := slots.Generate(bookingNow, nil)

	err := submitter.Submit(context.Background(), "p1", days, 0, "09:00 AM")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Slot not available", apiErr.Message)
	assert.Equal(t, []string{"Slot not available"}, rec.errors)
	assert.Empty(t, rec.paths)
	assert.Equal(t, 0, backend.callsTo(listPath))
	assert.Empty(t, state.Professors())
}

func TestBookingSubmitter_TransportFailure(t *testing.T) {
	backend := newFakeBackend(t)
	submitter, _, rec := newSubmitter(backend, "user-token")
	backend.server.Close()
	days := slots.Generate(bookingNow, nil)

	err := submitter.Submit(context.Background(), "p1", days, 0, "09:00 AM")

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Len(t, rec.errors, 1)
	assert.Empty(t, rec.paths)
}

func TestBookingSubmitter_NoSlotSelected(t *testing.T) {
	backend := newFakeBackend(t)
	submitter, _, rec := newSubmitter(backend, "user-token")
	days := slots.Generate(bookingNow, nil)

	assert.ErrorIs(t, submitter.Submit(context.Background(), "p1", days, len(days), "09:00 AM"), ErrNoSlotSelected)
	assert.ErrorIs(t, submitter.Submit(context.Background(), "p1", days, 0, ""), ErrNoSlotSelected)

	// Tuesday after closing still yields a bucket, but with nothing in it.
	late := slots.Generate(time.Date(2025, time.June, 3, 19, 0, 0, 0, time.UTC), nil)
	assert.ErrorIs(t, submitter.Submit(context.Background(), "p1", late, 0, "09:00 AM"), ErrNoSlotSelected)

	assert.Equal(t, 0, backend.callsTo(bookPath))
	assert.Len(t, rec.warnings, 3)
}

func TestBookingSubmitter_OnlyOfferedSlots(t *testing.T) {
	backend := newFakeBackend(t)
	submitter, _, rec := newSubmitter(backend, "user-token")
	days := slots.Generate(bookingNow, map[string][]string{"3_6_2025": {"09:00 AM"}})

	tests := []struct {
		name     string
		dayIndex int
		slotTime string
	}{
		{"already booked", 0, "09:00 AM"},
		{"after closing", 0, "11:30 PM"},
		{"before opening", 0, "03:00 AM"},
		{"off the half hour", 1, "10:15 AM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := submitter.Submit(context.Background(), "p1", days, tt.dayIndex, tt.slotTime)
			assert.ErrorIs(t, err, ErrNoSlotSelected)
		})
	}

	assert.Equal(t, 0, backend.callsTo(bookPath))
	assert.Len(t, rec.warnings, len(tests))

	// the neighbouring slot is still offered
	require.NoError(t, submitter.Submit(context.Background(), "p1", days, 0, "09:30 AM"))
	booking, _, _ := backend.last()
	assert.Equal(t, "3_6_2025", booking.SlotDate)
	assert.Equal(t, "09:30 AM", booking.SlotTime)
}

func TestFilterByDepartment(t *testing.T) {
	professors := []dto.Professor{
		{ID: "a", Department: "Math"},
		{ID: "b", Department: "Art"},
		{ID: "c", Department: "Math"},
		{ID: "d", Department: "math"},
	}

	got := FilterByDepartment(professors, "Math")
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)

	assert.Len(t, FilterByDepartment(professors, ""), 4)
	assert.Empty(t, FilterByDepartment(professors, "Science"))
}
