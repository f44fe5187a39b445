// Package dto holds the JSON shapes exchanged between the API server and its clients.
package dto

import "time"

// Response is the envelope of every API response.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// Professor is the public view of a professor record.
type Professor struct {
	ID          string              `json:"_id"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Image       string              `json:"image"`
	Department  string              `json:"department"`
	About       string              `json:"about"`
	Available   bool                `json:"available"`
	SlotsBooked map[string][]string `json:"slots_booked"`
	Date        int64               `json:"date"`
}

// User is the public view of a user account.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  int64  `json:"date"`
}

// Appointment is one booking as listed to users, professors and admins.
type Appointment struct {
	ID                  string    `json:"_id"`
	UserID              string    `json:"userId"`
	ProfID              string    `json:"profId"`
	SlotDate            string    `json:"slotDate"`
	SlotTime            string    `json:"slotTime"`
	ProfessorName       string    `json:"professorName"`
	ProfessorDepartment string    `json:"professorDepartment"`
	UserName            string    `json:"userName"`
	Cancelled           bool      `json:"cancelled"`
	CreatedAt           time.Time `json:"createdAt"`
}

// BookAppointmentRequest is the body of POST /api/user/book-appointment.
type BookAppointmentRequest struct {
	ProfID   string `json:"profId" binding:"required" validate:"required"`
	SlotDate string `json:"slotDate" binding:"required" validate:"required"`
	SlotTime string `json:"slotTime" binding:"required" validate:"required"`
}

// CancelAppointmentRequest is the body of POST /api/user/cancel-appointment.
type CancelAppointmentRequest struct {
	AppointmentID string `json:"appointmentId" binding:"required" validate:"required"`
}

// UpdateProfileRequest is the body of POST /api/professor/update-profile.
type UpdateProfileRequest struct {
	About     string `json:"about"`
	Available bool   `json:"available"`
}

// LoginRequest is shared by the user, professor and admin login endpoints.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest is the body of POST /api/user/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" validate:"required"`
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Password string `json:"password" binding:"required,min=8" validate:"required,min=8"`
}

// AddProfessorRequest is the body of POST /api/admin/add-professor.
type AddProfessorRequest struct {
	Name       string `json:"name" binding:"required" validate:"required"`
	Email      string `json:"email" binding:"required,email" validate:"required,email"`
	Password   string `json:"password" binding:"required,min=8" validate:"required,min=8"`
	Image      string `json:"image" binding:"required,url" validate:"required,url"`
	Department string `json:"department" binding:"required" validate:"required"`
	About      string `json:"about" binding:"required" validate:"required"`
}

// ChangeAvailabilityRequest is the body of POST /api/admin/change-availability.
type ChangeAvailabilityRequest struct {
	ProfID string `json:"profId" binding:"required" validate:"required"`
}
