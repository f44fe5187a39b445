package models

import (
	"professor-booking-server/internal/dto"

	"golang.org/x/crypto/bcrypt"
)

// Professor represents a bookable professor account
type Professor struct {
	BaseModel
	Name       string `gorm:"size:255;not null" json:"name"`
	Email      string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password   string `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	Image      string `gorm:"size:512;not null" json:"image"`
	Department string `gorm:"size:100;index;not null" json:"department"`
	About      string `gorm:"type:text;not null" json:"about"`
	Available  bool   `json:"available"`

	// Relations (not always preloaded)
	BookedSlots []BookedSlot `gorm:"foreignKey:ProfessorID" json:"-"`
}

// SetPassword hashes a password and sets it on the professor
func (p *Professor) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Password = string(hashed)
	return nil
}

// CheckPassword compares a password with the professor's hashed password
func (p *Professor) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(password)) == nil
}

// SlotsBooked folds the preloaded BookedSlots rows into the booked-slots map.
// The map is never nil so that it serializes as {}.
func (p *Professor) SlotsBooked() map[string][]string {
	booked := make(map[string][]string)
	for _, s := range p.BookedSlots {
		booked[s.SlotDate] = append(booked[s.SlotDate], s.SlotTime)
	}
	return booked
}

// Sanitize creates the public view of a professor, excluding sensitive data.
func (p *Professor) Sanitize() dto.Professor {
	return dto.Professor{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		Image:       p.Image,
		Department:  p.Department,
		About:       p.About,
		Available:   p.Available,
		SlotsBooked: p.SlotsBooked(),
		Date:        p.CreatedAt.UnixMilli(),
	}
}
