package controllers

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/UdaraDananjaya/Restaurant-System-Backend/models"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/utils"
)

type PasswordController struct {
	DB *gorm.DB
}

func NewPasswordController(db *gorm.DB) *PasswordController {
	return &PasswordController{DB: db}
}

func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// RequestReset issues a reset token valid for 15 minutes. The response is the
// same whether or not the email exists.
func (pc *PasswordController) RequestReset(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := pc.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.RespondJSON(c, http.StatusOK, "If account exists, reset link sent.", nil)
		return
	}

	rawToken := uuid.NewString()
	tokenHash := hashResetToken(rawToken)
	expires := time.Now().Add(15 * time.Minute)

	user.ResetToken = &tokenHash
	user.ResetTokenExpiry = &expires
	if err := pc.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("reset request failed"))
		return
	}

	// No mail delivery wired up yet; return the raw token for development.
	utils.RespondJSON(c, http.StatusOK, "Reset token generated", gin.H{
		"resetToken": rawToken,
	})
}

// ResetPassword consumes a reset token and sets the new password.
func (pc *PasswordController) ResetPassword(c *gin.Context) {
	var input struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tokenHash := hashResetToken(input.Token)

	var user models.User
	if err := pc.DB.Where("reset_token = ?", tokenHash).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid or expired token"))
		return
	}

	if user.ResetTokenExpiry == nil || user.ResetTokenExpiry.Before(time.Now()) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid or expired token"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user.Password = string(hashed)
	user.ResetToken = nil
	user.ResetTokenExpiry = nil
	if err := pc.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("password reset failed"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Password reset successful", nil)
}
