package handlers

import (
	"crypto/subtle"
	"errors"

	"professor-booking-server/internal/config"
	"professor-booking-server/internal/dto"
	"professor-booking-server/internal/models"
	"professor-booking-server/internal/repository"
	"professor-booking-server/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles registration and login for users, professors and the admin.
type AuthHandler struct {
	Users      *repository.UserRepository
	Professors *repository.ProfessorRepository
	Cfg        *config.Config
	Logger     *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users *repository.UserRepository, professors *repository.ProfessorRepository, cfg *config.Config, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Users: users, Professors: professors, Cfg: cfg, Logger: logger}
}

// RegisterUser handles user registration and logs the new user in.
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterRequest
	if !utils.BindAndValidate(c, &req) {
		return // Error response handled by BindAndValidate
	}

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
	}
	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}

	if err := h.Users.Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			utils.BadRequest(c, "User with this email already exists")
			return
		}
		utils.InternalServerError(c, "Failed to create user: "+err.Error())
		return
	}

	token, err := utils.GenerateToken(user.ID, models.RoleUser, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token: "+err.Error())
		return
	}

	h.Logger.Info("User registered", zap.String("user_id", user.ID))
	utils.Created(c, "User registered successfully", dto.LoginResponse{Token: token})
}

// LoginUser handles user login.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req dto.LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user, err := h.Users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.loginFailed(c, err)
		return
	}
	if !user.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	h.issue(c, user.ID, models.RoleUser)
}

// LoginProfessor handles professor login from the admin front end.
func (h *AuthHandler) LoginProfessor(c *gin.Context) {
	var req dto.LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	professor, err := h.Professors.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.loginFailed(c, err)
		return
	}
	if !professor.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	h.issue(c, professor.ID, models.RoleProfessor)
}

// LoginAdmin checks the configured admin credentials.
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req dto.LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	admin := h.Cfg.Admin
	if admin.Email == "" || admin.Password == "" {
		utils.Forbidden(c, "Admin login is not configured")
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(admin.Email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(admin.Password)) == 1
	if !emailOK || !passwordOK {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	h.issue(c, admin.Email, models.RoleAdmin)
}

func (h *AuthHandler) issue(c *gin.Context, subject string, role models.Role) {
	token, err := utils.GenerateToken(subject, role, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token: "+err.Error())
		return
	}
	utils.Success(c, "Login successful", dto.LoginResponse{Token: token})
}

func (h *AuthHandler) loginFailed(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}
	utils.InternalServerError(c, "Database error: "+err.Error())
}
