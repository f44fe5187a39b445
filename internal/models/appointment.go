package models

import (
	"time"

	"professor-booking-server/internal/dto"
)

// BookedSlot is one entry of a professor's booked-slots map. The
// (professor_id, slot_date, slot_time) triple is unique.
type BookedSlot struct {
	BaseModel
	ProfessorID string `gorm:"size:36;uniqueIndex:idx_booked_slots_slot" json:"profId"`
	SlotDate    string `gorm:"size:16;uniqueIndex:idx_booked_slots_slot" json:"slotDate"`
	SlotTime    string `gorm:"size:16;uniqueIndex:idx_booked_slots_slot" json:"slotTime"`
}

// Appointment represents a user's booking of a professor slot
type Appointment struct {
	BaseModel
	UserID              string    `gorm:"size:36;index" json:"userId"`
	ProfessorID         string    `gorm:"size:36;index" json:"profId"`
	SlotDate            string    `gorm:"size:16" json:"slotDate"`
	SlotTime            string    `gorm:"size:16" json:"slotTime"`
	StartTime           time.Time `json:"startTime"`
	ProfessorName       string    `gorm:"size:255" json:"professorName"`
	ProfessorDepartment string    `gorm:"size:100" json:"professorDepartment"`
	UserName            string    `gorm:"size:255" json:"userName"`
	Cancelled           bool      `json:"cancelled"`
}

// Sanitize creates the public view of an appointment.
func (a *Appointment) Sanitize() dto.Appointment {
	return dto.Appointment{
		ID:                  a.ID,
		UserID:              a.UserID,
		ProfID:              a.ProfessorID,
		SlotDate:            a.SlotDate,
		SlotTime:            a.SlotTime,
		ProfessorName:       a.ProfessorName,
		ProfessorDepartment: a.ProfessorDepartment,
		UserName:            a.UserName,
		Cancelled:           a.Cancelled,
		CreatedAt:           a.CreatedAt,
	}
}

// SanitizeAppointments maps a slice of appointments to their public views.
func SanitizeAppointments(appointments []Appointment) []dto.Appointment {
	out := make([]dto.Appointment, len(appointments))
	for i := range appointments {
		out[i] = appointments[i].Sanitize()
	}
	return out
}
