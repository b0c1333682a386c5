package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/UdaraDananjaya/Restaurant-System-Backend/models"
	"github.com/UdaraDananjaya/Restaurant-System-Backend/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`

	// Customer fields
	Age             int               `json:"age"`
	Gender          string            `json:"gender"`
	GenderOtherText string            `json:"genderOtherText"`
	DietaryPref     models.StringList `json:"dietaryPref"`
	FavoriteCuisine string            `json:"favoriteCuisine"`

	// Seller fields
	RestaurantName     string            `json:"restaurantName"`
	ContactNumber      string            `json:"contactNumber"`
	RestaurantAddress  string            `json:"restaurantAddress"`
	RestaurantCuisines models.StringList `json:"restaurantCuisines"`
}

func (r *registerRequest) validateRole() error {
	switch r.Role {
	case models.RoleCustomer:
		if r.Age <= 0 {
			return errors.New("valid age is required")
		}
		if r.Gender == "" {
			return errors.New("gender is required")
		}
		if r.Gender == models.GenderOther && r.GenderOtherText == "" {
			return errors.New("please specify your gender")
		}
		if len(r.DietaryPref) == 0 {
			return errors.New("select at least one dietary preference")
		}
		if r.FavoriteCuisine == "" {
			return errors.New("favorite cuisine is required")
		}
	case models.RoleSeller:
		if r.RestaurantName == "" {
			return errors.New("restaurant name is required")
		}
		if r.ContactNumber == "" {
			return errors.New("contact number is required")
		}
		if r.RestaurantAddress == "" {
			return errors.New("restaurant address is required")
		}
		if len(r.RestaurantCuisines) == 0 {
			return errors.New("select at least one restaurant cuisine")
		}
	default:
		return errors.New("role must be CUSTOMER or SELLER")
	}
	return nil
}

// Register creates the user plus its role-specific records in one
// transaction: a preference profile for customers, an inactive restaurant
// shell for sellers. Sellers start PENDING and wait for admin approval.
func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := req.validateRole(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, errors.New("email already registered"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	status := models.StatusApproved
	if req.Role == models.RoleSeller {
		status = models.StatusPending
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
		Status:   status,
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		if req.Role == models.RoleCustomer {
			genderOther := ""
			if req.Gender == models.GenderOther {
				genderOther = req.GenderOtherText
			}
			profile := models.Customer{
				UserID:             user.ID,
				Age:                req.Age,
				Gender:             req.Gender,
				GenderOtherText:    genderOther,
				DietaryPreferences: req.DietaryPref,
				FavoriteCuisine:    req.FavoriteCuisine,
				OrderHistory:       models.StringList{},
			}
			return tx.Create(&profile).Error
		}

		// Restaurant stays INACTIVE until the admin approves the seller.
		restaurant := models.Restaurant{
			SellerID:      user.ID,
			Name:          req.RestaurantName,
			ContactNumber: req.ContactNumber,
			Address:       req.RestaurantAddress,
			Cuisines:      req.RestaurantCuisines,
			Status:        models.RestaurantInactive,
		}
		return tx.Create(&restaurant).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("registration failed"))
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s, status=%s)", user.Email, user.Role, user.Status)

	message := "Customer registered successfully."
	if req.Role == models.RoleSeller {
		message = "Seller registered successfully. Awaiting admin approval."
	}
	utils.RespondJSON(c, http.StatusCreated, message, gin.H{"user_id": user.ID})
}

// Login checks credentials first, then the account status, so a wrong
// password never reveals whether the account is pending or suspended.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid email or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid email or password"))
		return
	}

	switch user.Status {
	case models.StatusPending:
		utils.RespondError(c, http.StatusForbidden, errors.New("your account is waiting for admin approval"))
		return
	case models.StatusRejected:
		utils.RespondError(c, http.StatusForbidden, errors.New("your registration was rejected by admin"))
		return
	case models.StatusSuspended:
		utils.RespondError(c, http.StatusForbidden, errors.New("your account has been suspended, contact admin"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.Status)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":  token,
		"id":     user.ID,
		"name":   user.Name,
		"role":   user.Role,
		"status": user.Status,
	})
}
