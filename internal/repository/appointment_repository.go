package repository

import (
	"context"
	"fmt"
	"time"

	"professor-booking-server/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Book reserves the slot and records the appointment in one transaction. The
// slot row is inserted only if absent; when another booking already holds it
// ErrSlotTaken is returned and nothing is written.
func (r *AppointmentRepository) Book(
	ctx context.Context,
	professor *models.Professor,
	user *models.User,
	slotDate, slotTime string,
	start time.Time,
) (*models.Appointment, error) {
	appointment := models.Appointment{
		UserID:              user.ID,
		ProfessorID:         professor.ID,
		SlotDate:            slotDate,
		SlotTime:            slotTime,
		StartTime:           start,
		ProfessorName:       professor.Name,
		ProfessorDepartment: professor.Department,
		UserName:            user.Name,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slot := models.BookedSlot{
			ProfessorID: professor.ID,
			SlotDate:    slotDate,
			SlotTime:    slotTime,
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&slot)
		if res.Error != nil {
			if isDuplicateKey(res.Error) {
				return ErrSlotTaken
			}
			return fmt.Errorf("reserve slot: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrSlotTaken
		}

		if err := tx.Create(&appointment).Error; err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// Cancel marks the user's appointment cancelled and releases its slot.
// Cancelling an already cancelled appointment is a no-op.
func (r *AppointmentRepository) Cancel(ctx context.Context, userID, appointmentID string) (*models.Appointment, error) {
	var appointment models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND user_id = ?", appointmentID, userID).First(&appointment).Error
		if err != nil {
			return notFound(err)
		}
		if appointment.Cancelled {
			return nil
		}

		appointment.Cancelled = true
		if err := tx.Model(&appointment).Update("cancelled", true).Error; err != nil {
			return fmt.Errorf("cancel appointment: %w", err)
		}

		err = tx.Where("professor_id = ? AND slot_date = ? AND slot_time = ?",
			appointment.ProfessorID, appointment.SlotDate, appointment.SlotTime).
			Delete(&models.BookedSlot{}).Error
		if err != nil {
			return fmt.Errorf("release slot: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentRepository) ListForUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	return r.list(ctx, r.db.Where("user_id = ?", userID))
}

func (r *AppointmentRepository) ListForProfessor(ctx context.Context, professorID string) ([]models.Appointment, error) {
	return r.list(ctx, r.db.Where("professor_id = ?", professorID))
}

func (r *AppointmentRepository) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return r.list(ctx, r.db)
}

func (r *AppointmentRepository) list(ctx context.Context, query *gorm.DB) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := query.WithContext(ctx).Order("created_at desc").Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}
