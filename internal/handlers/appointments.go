package handlers

import (
	"context"
	"errors"
	"time"

	"professor-booking-server/internal/dto"
	"professor-booking-server/internal/middleware"
	"professor-booking-server/internal/models"
	"professor-booking-server/internal/repository"
	"professor-booking-server/internal/slots"
	"professor-booking-server/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler handles booking, cancelling and listing appointments.
type AppointmentHandler struct {
	Appointments *repository.AppointmentRepository
	Professors   *repository.ProfessorRepository
	Users        *repository.UserRepository
	Location     *time.Location
	Logger       *zap.Logger

	now func() time.Time
}

// NewAppointmentHandler creates a new AppointmentHandler. Slot keys are
// interpreted in loc.
func NewAppointmentHandler(
	appointments *repository.AppointmentRepository,
	professors *repository.ProfessorRepository,
	users *repository.UserRepository,
	loc *time.Location,
	logger *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		Appointments: appointments,
		Professors:   professors,
		Users:        users,
		Location:     loc,
		Logger:       logger,
		now:          time.Now,
	}
}

// Book handles POST /api/user/book-appointment.
func (h *AppointmentHandler) Book(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "Not Authorized Login Again")
		return
	}

	var req dto.BookAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	start, err := slots.ParseSlot(req.SlotDate, req.SlotTime, h.Location)
	if err != nil {
		utils.BadRequest(c, "Invalid slot: "+err.Error())
		return
	}
	now := h.now().In(h.Location)
	if !slots.IsWeekday(start) {
		utils.BadRequest(c, "Appointments cannot be booked on weekends")
		return
	}
	if start.Before(now.Truncate(time.Minute)) {
		utils.BadRequest(c, "Appointment slot is in the past")
		return
	}
	if !slots.WithinOpeningHours(start) {
		utils.BadRequest(c, "Appointment slot is outside opening hours")
		return
	}
	if !start.Before(slots.WindowEnd(now)) {
		utils.BadRequest(c, "Appointment slot is beyond the booking window")
		return
	}

	ctx := c.Request.Context()

	professor, err := h.Professors.GetByID(ctx, req.ProfID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Professor not found")
		} else {
			utils.InternalServerError(c, "Database error verifying professor: "+err.Error())
		}
		return
	}
	if !professor.Available {
		utils.BadRequest(c, "Professor not available")
		return
	}

	user, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Database error verifying user: "+err.Error())
		}
		return
	}

	appointment, err := h.Appointments.Book(ctx, professor, user, req.SlotDate, req.SlotTime, start)
	if err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			utils.Conflict(c, "Slot not available")
			return
		}
		utils.InternalServerError(c, "Failed to book appointment: "+err.Error())
		return
	}

	h.Logger.Info("Slot booked",
		zap.String("appointment_id", appointment.ID),
		zap.String("professor_id", professor.ID),
		zap.String("user_id", user.ID),
		zap.String("slot_date", req.SlotDate),
		zap.String("slot_time", req.SlotTime),
	)
	utils.Success(c, "Appointment Booked", appointment.Sanitize())
}

// Cancel handles POST /api/user/cancel-appointment for the owning user.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "Not Authorized Login Again")
		return
	}

	var req dto.CancelAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment, err := h.Appointments.Cancel(c.Request.Context(), userID, req.AppointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Failed to cancel appointment: "+err.Error())
		}
		return
	}

	h.Logger.Info("Appointment cancelled",
		zap.String("appointment_id", appointment.ID),
		zap.String("user_id", userID),
	)
	utils.Success(c, "Appointment Cancelled", appointment.Sanitize())
}

// ListForUser returns the authenticated user's appointments, newest first.
func (h *AppointmentHandler) ListForUser(c *gin.Context) {
	h.listFor(c, h.Appointments.ListForUser)
}

// ListForProfessor returns the authenticated professor's appointments.
func (h *AppointmentHandler) ListForProfessor(c *gin.Context) {
	h.listFor(c, h.Appointments.ListForProfessor)
}

// ListAll returns every appointment. Admin only.
func (h *AppointmentHandler) ListAll(c *gin.Context) {
	appointments, err := h.Appointments.ListAll(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}
	utils.Success(c, "Appointments fetched successfully", models.SanitizeAppointments(appointments))
}

func (h *AppointmentHandler) listFor(c *gin.Context, list func(ctx context.Context, id string) ([]models.Appointment, error)) {
	id, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "Not Authorized Login Again")
		return
	}

	appointments, err := list(c.Request.Context(), id)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}
	utils.Success(c, "Appointments fetched successfully", models.SanitizeAppointments(appointments))
}
