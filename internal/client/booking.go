package client

import (
	"context"
	"errors"

	"professor-booking-server/internal/dto"
	"professor-booking-server/internal/slots"

	"go.uber.org/zap"
)

// Views the submitter navigates to.
const (
	LoginPath        = "/login"
	AppointmentsPath = "/my-appointments"
)

// ErrNoSlotSelected is returned when the selected day or time does not name a slot.
var ErrNoSlotSelected = errors.New("no slot selected")

// Notifier surfaces non-blocking messages to the person using the client.
type Notifier interface {
	Success(message string)
	Warning(message string)
	Error(message string)
}

// Navigator moves the client to another view.
type Navigator interface {
	Navigate(path string)
}

// BookingAPI submits bookings.
type BookingAPI interface {
	BookAppointment(ctx context.Context, token string, req dto.BookAppointmentRequest) (string, error)
}

// BookingSubmitter turns a slot selection into a booking request.
type BookingSubmitter struct {
	api    BookingAPI
	state  *AppState
	notify Notifier
	nav    Navigator
	logger *zap.Logger
}

func NewBookingSubmitter(api BookingAPI, state *AppState, notify Notifier, nav Navigator, logger *zap.Logger) *BookingSubmitter {
	return &BookingSubmitter{api: api, state: state, notify: notify, nav: nav, logger: logger}
}

// Submit books slotTime on days[dayIndex] with the professor profID. Only a
// time offered in that day's slots can be submitted.
//
// Without a user token it warns, navigates to the login view and returns
// ErrUnauthenticated without sending anything. On success the professor list
// is refreshed and the client navigates to the appointments view. Failures are
// notified and returned; local state is left as it was.
func (b *BookingSubmitter) Submit(ctx context.Context, profID string, days []slots.Day, dayIndex int, slotTime string) error {
	token := b.state.Token()
	if token == "" {
		b.notify.Warning("Login to book appointment")
		b.nav.Navigate(LoginPath)
		return ErrUnauthenticated
	}

	slot, ok := selectSlot(days, dayIndex, slotTime)
	if !ok {
		b.notify.Warning("Select an available time slot")
		return ErrNoSlotSelected
	}

	req := dto.BookAppointmentRequest{
		ProfID:   profID,
		SlotDate: slots.DateKey(slot.Time),
		SlotTime: slot.Display,
	}

	message, err := b.api.BookAppointment(ctx, token, req)
	if err != nil {
		b.logger.Warn("Booking failed",
			zap.String("professor_id", profID),
			zap.String("slot_date", req.SlotDate),
			zap.String("slot_time", req.SlotTime),
			zap.Error(err),
		)
		b.notify.Error(err.Error())
		return err
	}

	b.notify.Success(message)
	if err := b.state.RefreshProfessors(ctx); err != nil {
		b.notify.Error(err.Error())
	}
	b.nav.Navigate(AppointmentsPath)
	return nil
}

// selectSlot finds slotTime among the slots offered on days[dayIndex].
func selectSlot(days []slots.Day, dayIndex int, slotTime string) (slots.Slot, bool) {
	if dayIndex < 0 || dayIndex >= len(days) {
		return slots.Slot{}, false
	}
	for _, s := range days[dayIndex].Slots {
		if s.Display == slotTime {
			return s, true
		}
	}
	return slots.Slot{}, false
}
