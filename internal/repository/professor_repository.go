package repository

import (
	"context"
	"fmt"

	"professor-booking-server/internal/models"

	"gorm.io/gorm"
)

type ProfessorRepository struct {
	db *gorm.DB
}

func NewProfessorRepository(db *gorm.DB) *ProfessorRepository {
	return &ProfessorRepository{db: db}
}

// List returns every professor with its booked slots, oldest account first.
func (r *ProfessorRepository) List(ctx context.Context) ([]models.Professor, error) {
	var professors []models.Professor
	err := r.db.WithContext(ctx).
		Preload("BookedSlots").
		Order("created_at asc").
		Find(&professors).Error
	if err != nil {
		return nil, fmt.Errorf("list professors: %w", err)
	}
	return professors, nil
}

func (r *ProfessorRepository) GetByID(ctx context.Context, id string) (*models.Professor, error) {
	var professor models.Professor
	err := r.db.WithContext(ctx).Preload("BookedSlots").First(&professor, "id = ?", id).Error
	if err != nil {
		return nil, fmt.Errorf("get professor %s: %w", id, notFound(err))
	}
	return &professor, nil
}

func (r *ProfessorRepository) GetByEmail(ctx context.Context, email string) (*models.Professor, error) {
	var professor models.Professor
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&professor).Error
	if err != nil {
		return nil, fmt.Errorf("get professor by email: %w", notFound(err))
	}
	return &professor, nil
}

func (r *ProfessorRepository) Create(ctx context.Context, professor *models.Professor) error {
	if err := r.db.WithContext(ctx).Create(professor).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create professor: %w", err)
	}
	return nil
}

// UpdateProfile writes the self-service fields. A map is used so that
// available=false is written rather than skipped as a zero value.
func (r *ProfessorRepository) UpdateProfile(ctx context.Context, id, about string, available bool) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var professor models.Professor
		if err := tx.Select("id").First(&professor, "id = ?", id).Error; err != nil {
			return notFound(err)
		}
		return tx.Model(&professor).
			Updates(map[string]interface{}{"about": about, "available": available}).Error
	})
	if err != nil {
		return fmt.Errorf("update professor %s: %w", id, err)
	}
	return nil
}

// ToggleAvailability flips the available flag and returns the updated record.
func (r *ProfessorRepository) ToggleAvailability(ctx context.Context, id string) (*models.Professor, error) {
	var professor models.Professor
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&professor, "id = ?", id).Error; err != nil {
			return notFound(err)
		}
		professor.Available = !professor.Available
		return tx.Model(&professor).Update("available", professor.Available).Error
	})
	if err != nil {
		return nil, fmt.Errorf("toggle availability of %s: %w", id, err)
	}
	return &professor, nil
}
