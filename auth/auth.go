package auth

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/GIZZN/TechnoShop/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const CookieName = "auth-token"

const tokenTTL = 24 * time.Hour

// Claims carried in the auth token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GenerateToken signs a JWT for the user.
func GenerateToken(userID, email string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// -------- Core Logic --------

// RegisterUser creates an account with a bcrypt-hashed password.
func RegisterUser(db *gorm.DB, input RegisterInput) (*models.User, error) {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, models.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Phone:    input.Phone,
	}
	if err := db.Create(&user).Error; err != nil {
		// A concurrent registration can slip past the count check; the
		// unique index on email reports it here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser checks credentials and returns the matching account.
func AuthenticateUser(db *gorm.DB, input LoginInput) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}
	return &user, nil
}

// -------- Handlers --------

func setAuthCookie(c *gin.Context, token string) {
	c.SetCookie(CookieName, token, int(tokenTTL.Seconds()), "/", "", false, true)
}

// POST /auth/register
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := RegisterUser(db, input)
		if err != nil {
			if errors.Is(err, models.ErrEmailTaken) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
				return
			}
			log.Printf("auth: register failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
			return
		}

		token, err := GenerateToken(user.ID, user.Email)
		if err != nil {
			log.Printf("auth: token generation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
			return
		}
		setAuthCookie(c, token)
		c.JSON(http.StatusCreated, gin.H{"user": user})
	}
}

// POST /auth/login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := AuthenticateUser(db, input)
		if err != nil {
			if errors.Is(err, models.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
				return
			}
			log.Printf("auth: login failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}

		token, err := GenerateToken(user.ID, user.Email)
		if err != nil {
			log.Printf("auth: token generation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}
		setAuthCookie(c, token)
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// POST /auth/logout
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(CookieName, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
