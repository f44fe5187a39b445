package handlers

import (
	"errors"

	"professor-booking-server/internal/dto"
	"professor-booking-server/internal/middleware"
	"professor-booking-server/internal/models"
	"professor-booking-server/internal/repository"
	"professor-booking-server/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfessorHandler serves the professor directory and the professor's own profile.
type ProfessorHandler struct {
	Professors *repository.ProfessorRepository
	Logger     *zap.Logger
}

// NewProfessorHandler creates a new ProfessorHandler.
func NewProfessorHandler(professors *repository.ProfessorRepository, logger *zap.Logger) *ProfessorHandler {
	return &ProfessorHandler{Professors: professors, Logger: logger}
}

// List returns every professor with its booked slots. Used by the user front end.
func (h *ProfessorHandler) List(c *gin.Context) {
	professors, err := h.Professors.List(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch professors: "+err.Error())
		return
	}
	utils.Success(c, "Professors fetched successfully", sanitizeProfessors(professors))
}

// Profile returns the authenticated professor's record.
func (h *ProfessorHandler) Profile(c *gin.Context) {
	professorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "Not Authorized Login Again")
		return
	}

	professor, err := h.Professors.GetByID(c.Request.Context(), professorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Professor profile not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	utils.Success(c, "Profile fetched successfully", professor.Sanitize())
}

// UpdateProfile writes the professor's about text and availability flag.
func (h *ProfessorHandler) UpdateProfile(c *gin.Context) {
	professorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "Not Authorized Login Again")
		return
	}

	var req dto.UpdateProfileRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := h.Professors.UpdateProfile(c.Request.Context(), professorID, req.About, req.Available); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Professor profile not found")
		} else {
			utils.InternalServerError(c, "Failed to update profile: "+err.Error())
		}
		return
	}

	h.Logger.Info("Professor profile updated",
		zap.String("professor_id", professorID),
		zap.Bool("available", req.Available),
	)
	utils.Success(c, "Profile Updated", nil)
}

func sanitizeProfessors(professors []models.Professor) []dto.Professor {
	out := make([]dto.Professor, len(professors))
	for i := range professors {
		out[i] = professors[i].Sanitize()
	}
	return out
}
