package handlers

import (
	"errors"

	"professor-booking-server/internal/dto"
	"professor-booking-server/internal/models"
	"professor-booking-server/internal/repository"
	"professor-booking-server/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler handles professor management from the admin front end.
type AdminHandler struct {
	Professors *repository.ProfessorRepository
	Logger     *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(professors *repository.ProfessorRepository, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Professors: professors, Logger: logger}
}

// AddProfessor creates a professor account. New professors start available
// with an empty booked-slots map.
func (h *AdminHandler) AddProfessor(c *gin.Context) {
	var req dto.AddProfessorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	professor := models.Professor{
		Name:       req.Name,
		Email:      req.Email,
		Image:      req.Image,
		Department: req.Department,
		About:      req.About,
		Available:  true,
	}
	if err := professor.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}

	if err := h.Professors.Create(c.Request.Context(), &professor); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			utils.BadRequest(c, "Professor with this email already exists")
			return
		}
		utils.InternalServerError(c, "Failed to create professor: "+err.Error())
		return
	}

	h.Logger.Info("Professor added",
		zap.String("professor_id", professor.ID),
		zap.String("department", professor.Department),
	)
	utils.Created(c, "Professor Added", professor.Sanitize())
}

// AllProfessors returns every professor.
func (h *AdminHandler) AllProfessors(c *gin.Context) {
	professors, err := h.Professors.List(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch professors: "+err.Error())
		return
	}
	utils.Success(c, "Professors fetched successfully", sanitizeProfessors(professors))
}

// ChangeAvailability flips a professor's available flag.
func (h *AdminHandler) ChangeAvailability(c *gin.Context) {
	var req dto.ChangeAvailabilityRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	professor, err := h.Professors.ToggleAvailability(c.Request.Context(), req.ProfID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Professor not found")
		} else {
			utils.InternalServerError(c, "Failed to change availability: "+err.Error())
		}
		return
	}

	h.Logger.Info("Professor availability changed",
		zap.String("professor_id", professor.ID),
		zap.Bool("available", professor.Available),
	)
	utils.Success(c, "Availability Changed", nil)
}
