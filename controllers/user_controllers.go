package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/dinehub/reservation-app/models"
	"github.com/dinehub/reservation-app/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Register -> POST /register, creates a staff account.
func (uc *UserController) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required"` // admin, manager, host
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestf("%s", err.Error()))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
	}
	if err := uc.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Email, user.Role)
	utils.RespondData(c, http.StatusCreated, gin.H{"user_id": user.ID})
}

// Login -> POST /login, returns a JWT.
func (uc *UserController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequestf("%s", err.Error()))
		return
	}

	var user models.User
	if err := uc.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		respondInvalidCredentials(c)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		respondInvalidCredentials(c)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("User %s logged in", user.Email)
	utils.RespondData(c, http.StatusOK, gin.H{
		"token": token,
		"role":  user.Role,
	})
}

func respondInvalidCredentials(c *gin.Context) {
	utils.RespondError(c, &utils.APIError{
		Status:  http.StatusUnauthorized,
		Message: "invalid credentials",
	})
}
