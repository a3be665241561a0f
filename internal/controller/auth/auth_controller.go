package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lanhoang/perfreview/internal/dto"
	"github.com/lanhoang/perfreview/internal/model"
	"github.com/rs/zerolog/log"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// Login godoc
// @Summary Log in as a student or staff member
// @Description Students log in with their registration number plus the staff access code; staff log in by name. The access code is only carried here, it is verified at submission time.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Name, role, and (for students) access code"
// @Success 200 {object} dto.UserDTO
// @Failure 400 {object} dto.ErrorResponse "Missing name or access code"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Login: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	role := model.UserRole(req.Role)
	if role == model.RoleStudent && strings.TrimSpace(req.AccessCode) == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Please enter the access code provided by staff"})
		return
	}

	user := model.User{Name: req.Name, Role: role, AccessCode: req.AccessCode}
	if role == model.RoleStudent {
		user.ID = normalizeStudentID(req.Name)
	} else {
		user.ID = randomStaffID()
	}

	log.Info().Str("role", req.Role).Str("userID", user.ID).Msg("User logged in")
	ctx.JSON(http.StatusOK, dto.UserDTO{ID: user.ID, Name: user.Name, Role: string(user.Role)})
}

// normalizeStudentID forces the STU- registration prefix so submissions and
// the seeded collection agree on identity.
func normalizeStudentID(name string) string {
	if strings.Contains(name, "STU") {
		return name
	}
	return "STU-" + name
}

func randomStaffID() string {
	b := make([]byte, 5)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("staff id generation: %v", err))
	}
	return hex.EncodeToString(b)
}
